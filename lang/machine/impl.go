package machine

import (
	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
)

// Some machine operations need to be exposed via a low-level interface to be
// available for higher-level APIs. Those functions belong in this file.

var (
	// ErrNotInstantiable is returned when a constructor is invoked with an
	// ordinary call instead of the new-instance protocol.
	ErrNotInstantiable = errors.New("constructor must be invoked with new")

	// ErrNotConstructor is returned when the new-instance protocol is applied
	// to a value that is not a constructor.
	ErrNotConstructor = errors.New("not a constructor")

	// ErrNotCallable is returned when a value that is neither a Callable nor a
	// Constructor is called.
	ErrNotCallable = errors.New("not callable")

	// ErrArity is returned when a call provides the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// A Callable value f may be the operand of a function call, f(x). Clients
// should use the Call function, never the CallInternal method.
type Callable interface {
	types.Value
	Name() string
	Arity() int
	CallInternal(th *Thread, args types.Tuple) (types.Value, error)
}

// A Constructor value may only be the operand of the new-instance protocol,
// new f(x). The machine allocates the receiver and Construct initializes its
// fields. Clients should use the New function, never the Construct method.
type Constructor interface {
	types.Value
	Name() string
	Arity() int
	Construct(th *Thread, recv *types.Object, args types.Tuple) error
}

// Equal reports whether x and y are equal. Values of different types are
// never equal. Objects are equal if they have the same set of fields with
// equal values, regardless of field order and constructor name.
func Equal(x, y types.Value) (bool, error) {
	if !sameType(x, y) {
		return false, nil
	}

	switch x := x.(type) {
	case types.Ordered:
		cmp, err := x.Cmp(y)
		return cmp == 0, err

	case types.NilType:
		return true, nil

	case types.Tuple:
		yt := y.(types.Tuple)
		if len(x) != len(yt) {
			return false, nil
		}
		for i := range x {
			if eq, err := Equal(x[i], yt[i]); !eq || err != nil {
				return eq, err
			}
		}
		return true, nil

	case *types.Object:
		yo := y.(*types.Object)
		xnames, ynames := x.AttrNames(), yo.AttrNames()
		if len(xnames) != len(ynames) {
			return false, nil
		}
		for _, nm := range xnames {
			yv, err := yo.Attr(nm)
			if err != nil {
				// field missing in y
				return false, nil
			}
			xv, _ := x.Attr(nm)
			if eq, err := Equal(xv, yv); !eq || err != nil {
				return eq, err
			}
		}
		return true, nil

	default:
		return x == y, nil
	}
}

func sameType(x, y types.Value) bool {
	return x.Type() == y.Type()
}

// AsFloat returns the float64 value of v if it is a number.
func AsFloat(v types.Value) (float64, bool) {
	f, ok := v.(types.Float)
	return float64(f), ok
}

// AsString returns the native string value of v if it is a string.
func AsString(v types.Value) (string, bool) {
	s, ok := v.(types.String)
	return string(s), ok
}
