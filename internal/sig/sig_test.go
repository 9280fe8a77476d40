package sig

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwanowww/valhalla/internal/resolve"
	"github.com/iwanowww/valhalla/internal/types"
)

// testWorld is a class table with a resolver and one accessing context,
// preloaded with the classes the tests reference.
type testWorld struct {
	table    *resolve.ClassTable
	resolver *resolve.Resolver
	ctx      *resolve.Context
}

func newWorld(t *testing.T) *testWorld {
	t.Helper()
	table := resolve.NewClassTable()
	table.Define("Foo", false)
	table.Define("Point", true)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testWorld{
		table:    table,
		resolver: resolve.NewResolver(table, logger),
		ctx:      resolve.NewContext(table.Define("Caller", false)),
	}
}

func (w *testWorld) sig(t *testing.T, desc string) *Signature {
	t.Helper()
	s, err := New(w.resolver, w.ctx, desc)
	require.NoError(t, err)
	return s
}

func TestPrimitiveSignature(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(II)I")

	require.Equal(t, 2, s.Count())
	require.Equal(t, 2, s.Size())
	require.Same(t, types.Type(types.Typ[types.Int]), s.MustTypeAt(0))
	require.Same(t, types.Type(types.Typ[types.Int]), s.MustTypeAt(1))
	require.Same(t, types.Type(types.Typ[types.Int]), s.ReturnType())
	require.False(t, s.MustNeverNullAt(0))
	require.False(t, s.ReturnsNeverNull())
}

func TestWideSlots(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(JDI)V")

	require.Equal(t, 3, s.Count())
	require.Equal(t, 5, s.Size(), "long and double take two slots each")
	require.Same(t, types.Type(types.Typ[types.Void]), s.ReturnType())
}

func TestZeroParams(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "()V")

	require.Equal(t, 0, s.Count())
	require.Equal(t, 0, s.Size())
	require.Same(t, types.Type(types.Typ[types.Void]), s.ReturnType())
}

func TestLoadedReference(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(LFoo;)V")

	require.Equal(t, 1, s.Count())
	require.Equal(t, 1, s.Size())

	foo, ok := w.table.Lookup("Foo")
	require.True(t, ok)
	require.Same(t, types.Type(foo), s.MustTypeAt(0))
	require.False(t, s.ReturnsNeverNull())
}

func TestUnresolvedReference(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(LMissing;)V")

	got := s.MustTypeAt(0)
	require.True(t, types.IsUnresolved(got))
	// Identity of the placeholder is stable across constructions.
	again := w.sig(t, "(LMissing;)V")
	require.Same(t, got, again.MustTypeAt(0))
	require.True(t, s.Equals(again))
}

func TestValueTypeNeverNull(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(QPoint;)QPoint;")

	require.Equal(t, 1, s.Count())
	require.Equal(t, 1, s.Size())
	require.True(t, s.MustNeverNullAt(0))
	require.True(t, s.ReturnsNeverNull())
	require.True(t, s.MaybeReturnsNeverNull())

	// The queries unwrap: both sides are the same base Point instance.
	point, ok := w.table.Lookup("Point")
	require.True(t, ok)
	require.Same(t, types.Type(point), s.MustTypeAt(0))
	require.Same(t, types.Type(point), s.ReturnType())
	require.False(t, types.IsNeverNull(s.ReturnType()), "queries return the unwrapped base")
}

func TestUnresolvedValueTypeNotWrapped(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(QLazy;)V")

	// Whether Lazy is a value class is unknown until it loads, so the
	// parameter is not never-null wrapped.
	require.False(t, s.MustNeverNullAt(0))
	require.True(t, types.IsUnresolved(s.MustTypeAt(0)))
}

func TestMaybeReturnsNeverNull(t *testing.T) {
	w := newWorld(t)

	// Unresolved return with a Q tag: optimistic answer pending loading.
	s := w.sig(t, "(I)QLazy;")
	require.False(t, s.ReturnsNeverNull())
	require.True(t, s.MaybeReturnsNeverNull())

	// Unresolved return with an L tag: no.
	s = w.sig(t, "(I)LLazy;")
	require.False(t, s.MaybeReturnsNeverNull())

	// Loaded never-null return implies the weaker query.
	s = w.sig(t, "(I)QPoint;")
	require.True(t, s.ReturnsNeverNull())
	require.True(t, s.MaybeReturnsNeverNull())

	// Primitive return: neither.
	s = w.sig(t, "(I)I")
	require.False(t, s.ReturnsNeverNull())
	require.False(t, s.MaybeReturnsNeverNull())
}

func TestArrayParameter(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "([I[LFoo;)[[D")

	require.Equal(t, 2, s.Count())
	require.Equal(t, 2, s.Size())
	require.IsType(t, &types.Array{}, s.MustTypeAt(0))
	require.IsType(t, &types.Array{}, s.ReturnType())

	// Array types are interned, so a second construction agrees.
	require.True(t, s.Equals(w.sig(t, "([I[LFoo;)[[D")))
}

func TestIndexQueries(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(I)I")

	_, ok := s.TypeAt(1)
	require.False(t, ok)
	_, ok = s.TypeAt(-1)
	require.False(t, ok)
	_, ok = s.NeverNullAt(1)
	require.False(t, ok)

	require.Panics(t, func() { s.MustTypeAt(1) })
	require.Panics(t, func() { s.MustNeverNullAt(-1) })
}

func TestEquals(t *testing.T) {
	w := newWorld(t)
	a := w.sig(t, "(LFoo;)I")
	b := w.sig(t, "(LFoo;)I")

	require.True(t, a.Equals(a), "reflexive")
	require.True(t, a.Equals(b))
	require.True(t, b.Equals(a), "symmetric")
	require.False(t, a.Equals(nil))

	// Same resolved types, different descriptor text: unequal.
	require.False(t, a.Equals(w.sig(t, "(LFoo;)V")))
	require.False(t, a.Equals(w.sig(t, "(II)I")))
}

func TestEqualsAcrossContexts(t *testing.T) {
	w := newWorld(t)
	other := resolve.NewContext(w.table.Define("Elsewhere", false))

	a := w.sig(t, "(QPoint;LFoo;)LFoo;")
	b, err := New(w.resolver, other, "(QPoint;LFoo;)LFoo;")
	require.NoError(t, err)

	// Contexts differ but every element resolved to the same instance.
	require.True(t, a.Equals(b))
}

func TestEqualsAcrossTables(t *testing.T) {
	w := newWorld(t)
	a := w.sig(t, "(LFoo;)V")

	// An independently populated table interns its own Foo, so the
	// resolved types are not identical and the signatures are unequal.
	table := resolve.NewClassTable()
	table.Define("Foo", false)
	r := resolve.NewResolver(table, slog.New(slog.NewTextHandler(io.Discard, nil)))
	b, err := New(r, resolve.NewContext(nil), "(LFoo;)V")
	require.NoError(t, err)

	require.False(t, a.Equals(b))
}

// Array types are interned process-wide by their raw element text, not per
// class table, so array-only signatures from independent tables compare
// equal even where instance parameters (TestEqualsAcrossTables) would not.
func TestArrayEqualsAcrossTables(t *testing.T) {
	w := newWorld(t)
	a := w.sig(t, "([I[LFoo;)[[D")

	table := resolve.NewClassTable()
	r := resolve.NewResolver(table, slog.New(slog.NewTextHandler(io.Discard, nil)))
	b, err := New(r, resolve.NewContext(nil), "([I[LFoo;)[[D")
	require.NoError(t, err)

	require.True(t, a.Equals(b))
	require.Same(t, a.MustTypeAt(1), b.MustTypeAt(1))
}

func TestGrammarViolation(t *testing.T) {
	w := newWorld(t)
	for _, desc := range []string{"", "II", "(X)V", "(I)", "(V)V", "(LFoo)V"} {
		_, err := New(w.resolver, w.ctx, desc)
		require.Error(t, err, desc)
	}
}

func TestString(t *testing.T) {
	w := newWorld(t)
	s := w.sig(t, "(II)I")
	require.Equal(t, "<signature (II)I of Caller>", s.String())

	bare, err := New(w.resolver, resolve.NewContext(nil), "(II)I")
	require.NoError(t, err)
	require.Equal(t, "<signature (II)I of <none>>", bare.String())
}
