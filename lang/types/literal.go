package types

import (
	"fmt"
	"sort"
	"strconv"
)

// ParseLiteral converts a command-line argument to a Value: "true" and
// "false" are booleans, "nil" is Nil, anything that parses as a number is a
// Float, a Go-quoted string is unquoted, and everything else is taken
// verbatim as a String.
func ParseLiteral(s string) Value {
	switch s {
	case "true":
		return True
	case "false":
		return False
	case "nil":
		return Nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	if len(s) >= 2 && (s[0] == '"' || s[0] == '`') {
		if uq, err := strconv.Unquote(s); err == nil {
			return String(uq)
		}
	}
	return String(s)
}

// FromGo converts a decoded Go value (as produced by a YAML or JSON decoder)
// to a Value. Mappings become Objects with fields sorted by name, sequences
// become Tuples.
func FromGo(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Nil, nil
	case bool:
		return Bool(v), nil
	case int:
		return Float(v), nil
	case int64:
		return Float(v), nil
	case uint64:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case Value:
		return v, nil
	case []any:
		t := make(Tuple, 0, len(v))
		for i, e := range v {
			ev, err := FromGo(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			t = append(t, ev)
		}
		return t, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		o := NewObject("")
		for _, k := range keys {
			fv, err := FromGo(v[k])
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", k, err)
			}
			_ = o.SetField(k, fv)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unsupported literal of type %T", v)
	}
}
