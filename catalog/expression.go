package catalog

import (
	"unicode/utf8"

	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
)

// ErrEmptyString is returned by Firstletter when there is no first letter.
var ErrEmptyString = errors.New("index out of range: empty string")

// Multiply returns a * b.
func Multiply[T Number](a, b T) T {
	product := a * b
	return product
}

// Firstletter returns the first character (rune) of s. It fails with
// ErrEmptyString if s is empty. An invalid UTF-8 leading byte is returned as
// is.
func Firstletter(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyString
	}
	_, n := utf8.DecodeRuneInString(s)
	first := s[:n]
	return first, nil
}

var multiplyFn = machine.NewBuiltin("multiply", 2, func(_ *machine.Thread, args types.Tuple) (types.Value, error) {
	a, b, err := numberPair(args)
	if err != nil {
		return nil, err
	}
	return types.Float(Multiply(a, b)), nil
})

var firstletterFn = machine.NewBuiltin("firstletter", 1, func(_ *machine.Thread, args types.Tuple) (types.Value, error) {
	s, err := machine.StringArg(args, 0)
	if err != nil {
		return nil, err
	}
	first, err := Firstletter(s)
	if err != nil {
		return nil, err
	}
	return types.String(first), nil
})
