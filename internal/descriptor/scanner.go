package descriptor

import (
	"strings"

	"github.com/pkg/errors"
)

// Stream scans a method descriptor one structural element at a time.
// Parameter elements are yielded in declaration order, then the return
// element (marked AtReturn), after which the stream is exhausted.
type Stream struct {
	desc     string
	pos      int  // scan position within desc
	atReturn bool // ')' has been consumed
	done     bool // return element has been yielded
}

// New creates a Stream for the given descriptor.
// The descriptor must start with '('.
func New(desc string) (*Stream, error) {
	if len(desc) == 0 || desc[0] != '(' {
		return nil, errors.Errorf("descriptor %q: missing '('", desc)
	}
	return &Stream{desc: desc, pos: 1}, nil
}

// Next yields the next structural element.
// After the return element has been yielded, Next reports an error.
func (s *Stream) Next() (Element, error) {
	if s.done {
		return Element{}, errors.Errorf("descriptor %q: read past return type", s.desc)
	}

	if !s.atReturn {
		if s.pos >= len(s.desc) {
			return Element{}, errors.Errorf("descriptor %q: missing ')'", s.desc)
		}
		if s.desc[s.pos] == ')' {
			s.atReturn = true
			s.pos++
		}
	}

	elem, err := s.scanFieldType()
	if err != nil {
		return Element{}, err
	}
	elem.AtReturn = s.atReturn

	if s.atReturn {
		if s.pos != len(s.desc) {
			return Element{}, errors.Errorf("descriptor %q: trailing text after return type", s.desc)
		}
		s.done = true
	}
	return elem, nil
}

// scanFieldType scans one field type at the current position.
func (s *Stream) scanFieldType() (Element, error) {
	start := s.pos

	// Count array dimensions.
	dims := 0
	for s.pos < len(s.desc) && s.desc[s.pos] == '[' {
		dims++
		s.pos++
	}
	if s.pos >= len(s.desc) {
		return Element{}, errors.Errorf("descriptor %q: unexpected end at offset %d", s.desc, s.pos)
	}

	tag := s.desc[s.pos]
	elem := Element{Tag: tag, Dims: dims}

	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		elem.Kind = Primitive
		s.pos++

	case 'V':
		if !s.atReturn || dims > 0 {
			return Element{}, errors.Errorf("descriptor %q: 'V' is only valid as a return type", s.desc)
		}
		elem.Kind = Primitive
		s.pos++

	case 'L', 'Q':
		elem.Kind = Reference
		s.pos++
		end := strings.IndexByte(s.desc[s.pos:], ';')
		if end < 0 {
			return Element{}, errors.Errorf("descriptor %q: missing ';' after class name", s.desc)
		}
		if end == 0 {
			return Element{}, errors.Errorf("descriptor %q: empty class name at offset %d", s.desc, s.pos)
		}
		elem.ClassName = s.desc[s.pos : s.pos+end]
		s.pos += end + 1
		// Only a plain (non-array) Q reference carries the never-null fact.
		elem.ValueNotNull = tag == 'Q' && dims == 0

	default:
		return Element{}, errors.Errorf("descriptor %q: unrecognized tag %q at offset %d", s.desc, tag, s.pos)
	}

	if dims > 0 {
		elem.Kind = Array
	}
	elem.Text = s.desc[start:s.pos]
	return elem, nil
}

// Validate scans the whole descriptor and reports the first grammar error.
func Validate(desc string) error {
	s, err := New(desc)
	if err != nil {
		return err
	}
	for {
		elem, err := s.Next()
		if err != nil {
			return err
		}
		if elem.AtReturn {
			return nil
		}
	}
}

// ReturnsValue reports whether the raw return element carries the 'Q' tag.
// This inspects only the descriptor text; the class may not be loaded yet.
func ReturnsValue(desc string) bool {
	i := strings.IndexByte(desc, ')')
	return i >= 0 && i+1 < len(desc) && desc[i+1] == 'Q'
}

// ParamString returns the raw parameter-list text of desc, without the
// surrounding parentheses. It returns "" when the descriptor has no
// parenthesized parameter list.
func ParamString(desc string) string {
	i := strings.IndexByte(desc, ')')
	if len(desc) == 0 || desc[0] != '(' || i < 0 {
		return ""
	}
	return desc[1:i]
}

// ReturnString returns the raw return-element text of desc.
// It returns "" when the descriptor has no return element.
func ReturnString(desc string) string {
	i := strings.IndexByte(desc, ')')
	if i < 0 {
		return ""
	}
	return desc[i+1:]
}
