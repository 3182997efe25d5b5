package machine

import (
	"fmt"

	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
)

// A Builtin is a Callable implemented in Go.
type Builtin struct {
	name  string
	arity int
	fn    func(th *Thread, args types.Tuple) (types.Value, error)
}

var (
	_ types.Value = (*Builtin)(nil)
	_ Callable    = (*Builtin)(nil)
)

// NewBuiltin returns a Builtin with the given name that takes exactly arity
// arguments and runs fn when called.
func NewBuiltin(name string, arity int, fn func(*Thread, types.Tuple) (types.Value, error)) *Builtin {
	return &Builtin{name: name, arity: arity, fn: fn}
}

func (b *Builtin) String() string { return fmt.Sprintf("builtin(%s/%d)", b.name, b.arity) }
func (b *Builtin) Type() string   { return "function" }
func (b *Builtin) Name() string   { return b.name }
func (b *Builtin) Arity() int     { return b.arity }
func (b *Builtin) CallInternal(th *Thread, args types.Tuple) (types.Value, error) {
	return b.fn(th, args)
}

// A BuiltinConstructor is a Constructor implemented in Go.
type BuiltinConstructor struct {
	name  string
	arity int
	fn    func(th *Thread, recv *types.Object, args types.Tuple) error
}

var (
	_ types.Value = (*BuiltinConstructor)(nil)
	_ Constructor = (*BuiltinConstructor)(nil)
)

// NewBuiltinConstructor returns a Constructor with the given name that takes
// exactly arity arguments and runs fn to initialize the receiver.
func NewBuiltinConstructor(name string, arity int, fn func(*Thread, *types.Object, types.Tuple) error) *BuiltinConstructor {
	return &BuiltinConstructor{name: name, arity: arity, fn: fn}
}

func (c *BuiltinConstructor) String() string { return fmt.Sprintf("constructor(%s/%d)", c.name, c.arity) }
func (c *BuiltinConstructor) Type() string   { return "constructor" }
func (c *BuiltinConstructor) Name() string   { return c.name }
func (c *BuiltinConstructor) Arity() int     { return c.arity }
func (c *BuiltinConstructor) Construct(th *Thread, recv *types.Object, args types.Tuple) error {
	return c.fn(th, recv, args)
}

// NumberArg returns the i-th argument as a float64, failing if it is not a
// number.
func NumberArg(args types.Tuple, i int) (float64, error) {
	f, ok := AsFloat(args[i])
	if !ok {
		return 0, errors.Errorf("argument %d: want number, got %s", i+1, args[i].Type())
	}
	return f, nil
}

// StringArg returns the i-th argument as a string, failing if it is not a
// string.
func StringArg(args types.Tuple, i int) (string, error) {
	s, ok := AsString(args[i])
	if !ok {
		return "", errors.Errorf("argument %d: want string, got %s", i+1, args[i].Type())
	}
	return s, nil
}
