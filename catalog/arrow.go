package catalog

import (
	"strings"

	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
	"go.uber.org/zap"
)

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// LowerUpper is the pure core of StringLowerUpper: s in upper case if its
// first character is a lowercase 'a', in lower case otherwise. The returned
// boolean reports which branch was taken.
func LowerUpper(s string) (string, bool) {
	if strings.HasPrefix(s, "a") {
		return strings.ToUpper(s), true
	}
	return strings.ToLower(s), false
}

// StringLowerUpper is LowerUpper with a diagnostic line written to log
// before returning. If log is nil, the global zap logger is used.
func StringLowerUpper(log *zap.Logger, s string) string {
	if log == nil {
		log = zap.L()
	}
	res, startsWithA := LowerUpper(s)
	if startsWithA {
		log.Info("starts with a")
	} else {
		log.Info("does not start with a")
	}
	return res
}

var addFn = machine.NewBuiltin("add", 2, func(_ *machine.Thread, args types.Tuple) (types.Value, error) {
	a, b, err := numberPair(args)
	if err != nil {
		return nil, err
	}
	return types.Float(Add(a, b)), nil
})

var stringLowerUpperFn = machine.NewBuiltin("stringLowerUpper", 1, func(th *machine.Thread, args types.Tuple) (types.Value, error) {
	s, err := machine.StringArg(args, 0)
	if err != nil {
		return nil, err
	}
	return types.String(StringLowerUpper(th.Log(), s)), nil
})

func numberPair(args types.Tuple) (float64, float64, error) {
	a, err := machine.NumberArg(args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := machine.NumberArg(args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
