package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iwanowww/valhalla/internal/resolve"
)

// universe describes the classes known to the class table. Entries are
// defined (loaded) up front unless marked load, in which case they are
// supplied by the table's loader on demand.
//
// Example:
//
//	classes:
//	  - name: java/lang/String
//	  - name: Point
//	    value: true
//	  - name: Lazy
//	    value: true
//	    load: true
type universe struct {
	Classes []classEntry `yaml:"classes"`
}

type classEntry struct {
	Name  string `yaml:"name"`
	Value bool   `yaml:"value"`
	Load  bool   `yaml:"load"` // loadable on demand instead of predefined
}

// loadUniverse populates the class table from the YAML file at path.
func loadUniverse(table *resolve.ClassTable, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading universe file")
	}
	var u universe
	if err := yaml.Unmarshal(data, &u); err != nil {
		return errors.Wrapf(err, "parsing universe file %s", path)
	}

	loadable := make(map[string]resolve.ClassInfo)
	for _, c := range u.Classes {
		if c.Name == "" {
			return errors.Errorf("universe file %s: class entry with empty name", path)
		}
		if c.Load {
			loadable[c.Name] = resolve.ClassInfo{Name: c.Name, Value: c.Value}
		} else {
			table.Define(c.Name, c.Value)
		}
	}
	if len(loadable) > 0 {
		table.SetLoader(func(name string) (resolve.ClassInfo, bool) {
			info, ok := loadable[name]
			return info, ok
		})
	}
	return nil
}
