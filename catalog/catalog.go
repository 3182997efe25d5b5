// Package catalog implements a fixed set of named functions, each one
// standing for one of the four ways a function can be declared in a dynamic
// scripting language: arrow (lambda), statement, expression and constructor.
//
// Every function is available both as a typed Go function (Add, Subtract,
// StringLowerUpper, ...) and as a dynamic value registered under its exact
// exported name (add, subtract, stringLowerUpper, ...) in Exports, callable
// through the lang/machine package.
package catalog

import (
	"fmt"

	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Number is the set of types supported by the arithmetic functions. They use
// the native operators of the type, so integer overflow wraps and float
// results follow IEEE-754.
type Number interface {
	constraints.Integer | constraints.Float
}

// Idiom identifies the declaration style a catalog function demonstrates.
type Idiom int

const (
	Arrow Idiom = iota
	Statement
	Expression
	Constructor
)

var idiomNames = [...]string{
	Arrow:       "arrow",
	Statement:   "statement",
	Expression:  "expression",
	Constructor: "constructor",
}

func (i Idiom) String() string {
	if i >= 0 && int(i) < len(idiomNames) {
		return idiomNames[i]
	}
	return fmt.Sprintf("idiom(%d)", int(i))
}

// Idioms returns all idioms, in declaration order.
func Idioms() []Idiom {
	return []Idiom{Arrow, Statement, Expression, Constructor}
}

// Entry describes a function of the catalog.
type Entry struct {
	Name  string
	Idiom Idiom
	Arity int
	Value types.Value // a machine.Callable, or a machine.Constructor for the Constructor idiom
}

var (
	exports = machine.NewMap(7)
	entries = make(map[string]Entry, 7)
)

func register(idiom Idiom, v interface {
	types.Value
	Name() string
	Arity() int
}) {
	name := v.Name()
	if _, ok := entries[name]; ok {
		panic(fmt.Sprintf("catalog: function %s registered twice", name))
	}
	if err := exports.SetKey(types.String(name), v); err != nil {
		panic(err)
	}
	entries[name] = Entry{Name: name, Idiom: idiom, Arity: v.Arity(), Value: v}
}

func init() {
	register(Arrow, addFn)
	register(Arrow, stringLowerUpperFn)
	register(Statement, subtractFn)
	register(Statement, getBookFn)
	register(Expression, multiplyFn)
	register(Expression, firstletterFn)
	register(Constructor, shoesFn)
	exports.Freeze()
}

// Exports returns the frozen table of catalog functions, keyed by their
// exported name in registration order.
func Exports() *machine.Map { return exports }

// Lookup returns the catalog entry registered under name.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// Names returns the sorted names of all catalog functions.
func Names() []string {
	names := make([]string, 0, len(entries))
	for nm := range entries {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

// Entries returns the catalog entries in registration order, which groups
// them by idiom.
func Entries() []Entry {
	list := make([]Entry, 0, exports.Len())
	for _, k := range exports.Keys() {
		list = append(list, entries[string(k)])
	}
	return list
}
