package types

// Value is the interface implemented by any value manipulated by the machine.
type Value interface {
	// String returns the string representation of the value.
	String() string

	// Type returns a short string describing the value's type.
	Type() string
}

// An Ordered type is a type whose values are ordered:
// if x and y are of the same Ordered type, then x must be less than y, greater
// than y, or equal to y.
type Ordered interface {
	Value
	// Cmp compares two values x and y of the same ordered type. It returns
	// negative if x < y, positive if x > y, and zero if the values are equal.
	//
	// Client code should not call this method. Instead, use the standalone
	// machine.Equal function, which is defined for all pairs of operands.
	Cmp(y Value) (int, error)
}

// An Indexable is a sequence of known length that supports efficient random
// access.
type Indexable interface {
	Value
	// Index returns the value at the specified index, which must satisfy 0 <= i
	// < Len().
	Index(i int) Value
	Len() int
}

// A HasAttrs value has fields that may be read by a dot expression (y = x.f).
// For implementation convenience, a result of (nil, nil) from Attr is
// interpreted as a "no such field" error. Implementations are free to return
// a more precise error.
type HasAttrs interface {
	Value
	// Attr returns the field value corresponding to the attribute name. A
	// return value of (nil, nil) is interpreted as a "no such field" error.
	Attr(name string) (Value, error)
	// AttrNames returns a slice of strings of valid attribute names. The caller
	// must not modify the results.
	AttrNames() []string
}

// A HasSetField value has fields that may be written by a dot expression (x.f
// = y). An implementation of SetField may return a NoSuchAttrError.
type HasSetField interface {
	HasAttrs
	SetField(name string, val Value) error
}

// A NoSuchAttrError may be returned by an implementation of HasAttrs.Attr or
// HasSetField.SetField to indicate that no such field exists.
type NoSuchAttrError string

func (e NoSuchAttrError) Error() string { return string(e) }
