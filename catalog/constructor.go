package catalog

import (
	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
)

// Field names of the object built by the shoes constructor.
const (
	FieldSize = "size"
	FieldMark = "mark"
)

// Shoes is the value built by the shoes constructor.
type Shoes struct {
	Size float64
	Mark string
}

// NewShoes returns a new Shoes value with both fields set.
func NewShoes(size float64, mark string) *Shoes {
	return &Shoes{Size: size, Mark: mark}
}

// ShoesFromObject converts an object built by the shoes constructor to a
// Shoes value.
func ShoesFromObject(o *types.Object) (*Shoes, error) {
	sz, err := o.Attr(FieldSize)
	if err != nil {
		return nil, err
	}
	mk, err := o.Attr(FieldMark)
	if err != nil {
		return nil, err
	}
	size, ok := machine.AsFloat(sz)
	if !ok {
		return nil, errors.Errorf("field %s: want number, got %s", FieldSize, sz.Type())
	}
	mark, ok := machine.AsString(mk)
	if !ok {
		return nil, errors.Errorf("field %s: want string, got %s", FieldMark, mk.Type())
	}
	return NewShoes(size, mark), nil
}

// shoesFn validates all arguments before it assigns any field, so a receiver
// is either fully initialized or discarded.
var shoesFn = machine.NewBuiltinConstructor("shoes", 2, func(_ *machine.Thread, this *types.Object, args types.Tuple) error {
	size, err := machine.NumberArg(args, 0)
	if err != nil {
		return err
	}
	mark, err := machine.StringArg(args, 1)
	if err != nil {
		return err
	}
	shoes := NewShoes(size, mark)
	if err := this.SetField(FieldSize, types.Float(shoes.Size)); err != nil {
		return err
	}
	return this.SetField(FieldMark, types.String(shoes.Mark))
})
