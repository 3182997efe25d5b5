package types

import "strings"

// A Tuple represents an immutable list of values, used to pass arguments to
// callables.
type Tuple []Value

var (
	_ Value     = Tuple(nil)
	_ Indexable = Tuple(nil)
)

func (t Tuple) Type() string      { return "tuple" }
func (t Tuple) Len() int          { return len(t) }
func (t Tuple) Index(i int) Value { return t[i] }

func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
