package machine

import (
	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
)

// Call calls the Callable value v with the specified arguments using the
// ordinary call protocol. Calling a Constructor this way fails with
// ErrNotInstantiable: the receiver such a call would mutate is undefined.
func Call(th *Thread, v types.Value, args types.Tuple) (types.Value, error) {
	var cb Callable
	switch v := v.(type) {
	case Callable:
		cb = v
	case Constructor:
		return nil, errors.WithMessage(ErrNotInstantiable, v.Name())
	default:
		return nil, errors.Wrapf(ErrNotCallable, "invalid call of %s", v.Type())
	}

	if err := checkArity(cb.Name(), cb.Arity(), args); err != nil {
		return nil, err
	}
	if err := th.push(&Frame{callable: cb, args: args}); err != nil {
		return nil, err
	}
	defer th.pop()

	res, err := cb.CallInternal(th, args)
	if err != nil {
		return nil, errors.WithMessage(err, cb.Name())
	}
	if res == nil {
		res = types.Nil
	}
	return res, nil
}

// New applies the new-instance protocol to the Constructor value v: a fresh
// empty object is allocated, the constructor runs with it bound as receiver,
// and the receiver is returned, frozen. Applying New to anything else fails
// with ErrNotConstructor.
func New(th *Thread, v types.Value, args types.Tuple) (*types.Object, error) {
	ctor, ok := v.(Constructor)
	if !ok {
		return nil, errors.Wrapf(ErrNotConstructor, "invalid new of %s", v.Type())
	}

	if err := checkArity(ctor.Name(), ctor.Arity(), args); err != nil {
		return nil, err
	}

	recv := types.NewObject(ctor.Name())
	if err := th.push(&Frame{callable: ctor, args: args, recv: recv}); err != nil {
		return nil, err
	}
	defer th.pop()

	if err := ctor.Construct(th, recv, args); err != nil {
		return nil, errors.WithMessage(err, ctor.Name())
	}
	recv.Freeze()
	return recv, nil
}

func checkArity(name string, arity int, args types.Tuple) error {
	if len(args) != arity {
		return errors.Wrapf(ErrArity, "%s: want %d, got %d", name, arity, len(args))
	}
	return nil
}

func (th *Thread) push(fr *Frame) error {
	if err := th.Context().Err(); err != nil {
		return errors.Wrap(err, "thread cancelled")
	}
	if th.MaxCallStackDepth > 0 && len(th.callStack) >= th.MaxCallStackDepth {
		return errors.Errorf("call stack depth limit of %d exceeded", th.MaxCallStackDepth)
	}
	th.callStack = append(th.callStack, fr)
	return nil
}

func (th *Thread) pop() {
	th.callStack[len(th.callStack)-1] = nil
	th.callStack = th.callStack[:len(th.callStack)-1]
}
