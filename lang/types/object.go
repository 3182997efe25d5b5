package types

import (
	"fmt"
	"strings"
)

// An Object is a value with named fields, in insertion order. It is the
// receiver allocated by the new-instance protocol. Once frozen, its fields
// can no longer be assigned.
type Object struct {
	class  string
	names  []string
	fields map[string]Value
	frozen bool
}

var (
	_ Value       = (*Object)(nil)
	_ HasAttrs    = (*Object)(nil)
	_ HasSetField = (*Object)(nil)
)

// NewObject returns an empty object created by the constructor named class.
func NewObject(class string) *Object {
	return &Object{class: class, fields: make(map[string]Value)}
}

func (o *Object) Type() string        { return "object" }
func (o *Object) Class() string       { return o.class }
func (o *Object) AttrNames() []string { return o.names }
func (o *Object) Freeze()             { o.frozen = true }
func (o *Object) Frozen() bool        { return o.frozen }

func (o *Object) Attr(name string) (Value, error) {
	v, ok := o.fields[name]
	if !ok {
		return nil, NoSuchAttrError(fmt.Sprintf("%s has no field %q", o.class, name))
	}
	return v, nil
}

func (o *Object) SetField(name string, val Value) error {
	if o.frozen {
		return fmt.Errorf("cannot set field %q of frozen %s", name, o.class)
	}
	if _, ok := o.fields[name]; !ok {
		o.names = append(o.names, name)
	}
	o.fields[name] = val
	return nil
}

func (o *Object) String() string {
	var sb strings.Builder
	if o.class != "" {
		sb.WriteString(o.class)
		sb.WriteByte(' ')
	}
	sb.WriteByte('{')
	for i, nm := range o.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(nm)
		sb.WriteString(": ")
		sb.WriteString(o.fields[nm].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
