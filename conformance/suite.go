// Package conformance runs grouped assertions against the functions of the
// catalog. A suite is a list of named groups of named cases, each case being
// a list of checks that invoke a function with literal arguments and compare
// the result with a literal expected value.
package conformance

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCases []byte

// Suite is a set of groups of cases.
type Suite struct {
	Groups []Group `yaml:"groups"`
}

// Group is a named list of cases.
type Group struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a named list of checks. The first failing check aborts the case.
type Case struct {
	Name   string  `yaml:"name"`
	Checks []Check `yaml:"checks"`
}

// Check is a single assertion. Exactly one of Call or New must be set: Call
// invokes the named function with the ordinary call protocol, New with the
// new-instance protocol. For New, Attr optionally selects the field of the
// constructed object to compare with Want; otherwise the whole object is
// compared and Want must be a mapping.
type Check struct {
	Call string `yaml:"call"`
	New  string `yaml:"new"`
	Attr string `yaml:"attr"`
	Args []any  `yaml:"args"`
	Want any    `yaml:"want"`
}

// Default returns the built-in suite.
func Default() *Suite {
	s, err := Load(bytes.NewReader(defaultCases))
	if err != nil {
		panic(err)
	}
	return s
}

// LoadFile loads a suite from the YAML file at path.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	return s, errors.WithMessage(err, path)
}

// Load decodes and validates a suite from YAML.
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty suite")
		}
		return nil, errors.Wrap(err, "decode suite")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the suite is well-formed: named groups and cases,
// unique names within their parent, and checks that specify exactly one of
// call or new.
func (s *Suite) Validate() error {
	groups := make(map[string]bool, len(s.Groups))
	for gi, g := range s.Groups {
		if g.Name == "" {
			return errors.Errorf("group %d: missing name", gi+1)
		}
		if groups[g.Name] {
			return errors.Errorf("group %s: duplicate name", g.Name)
		}
		groups[g.Name] = true

		cases := make(map[string]bool, len(g.Cases))
		for ci, c := range g.Cases {
			if c.Name == "" {
				return errors.Errorf("group %s: case %d: missing name", g.Name, ci+1)
			}
			if cases[c.Name] {
				return errors.Errorf("group %s: case %s: duplicate name", g.Name, c.Name)
			}
			cases[c.Name] = true

			if len(c.Checks) == 0 {
				return errors.Errorf("group %s: case %s: no check", g.Name, c.Name)
			}
			for ki, k := range c.Checks {
				if err := k.validate(); err != nil {
					return errors.Wrapf(err, "group %s: case %s: check %d", g.Name, c.Name, ki+1)
				}
			}
		}
	}
	return nil
}

func (k Check) validate() error {
	switch {
	case k.Call == "" && k.New == "":
		return errors.New("one of call or new is required")
	case k.Call != "" && k.New != "":
		return errors.New("call and new are mutually exclusive")
	case k.Attr != "" && k.New == "":
		return errors.New("attr is only valid with new")
	}
	return nil
}

// Len returns the number of cases in the suite.
func (s *Suite) Len() int {
	var n int
	for _, g := range s.Groups {
		n += len(g.Cases)
	}
	return n
}

// Filter returns a suite with only the named groups, in their original order.
// With no name, it returns s.
func (s *Suite) Filter(names ...string) (*Suite, error) {
	if len(names) == 0 {
		return s, nil
	}

	want := make(map[string]bool, len(names))
	for _, nm := range names {
		want[nm] = true
	}
	var fs Suite
	for _, g := range s.Groups {
		if want[g.Name] {
			fs.Groups = append(fs.Groups, g)
			delete(want, g.Name)
		}
	}
	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for _, nm := range names {
			if want[nm] {
				missing = append(missing, nm)
				want[nm] = false
			}
		}
		return nil, errors.Errorf("unknown group: %s", strings.Join(missing, ", "))
	}
	return &fs, nil
}

// expr formats the invocation of the check, e.g. add(2, 2) or
// new shoes(6.5, "adidas").size.
func (k Check) expr(args types.Tuple) string {
	if k.Call != "" {
		return k.Call + args.String()
	}
	s := "new " + k.New + args.String()
	if k.Attr != "" {
		s += "." + k.Attr
	}
	return s
}
