package catalog

import (
	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
)

// Subtract returns a - b.
func Subtract[T Number](a, b T) T {
	difference := a - b
	return difference
}

// Book is the fixed record built by GetBook.
type Book struct {
	ID        int
	Title     string
	Price     float64
	Available bool
}

// GetBook builds a fixed book record and returns its availability, which is
// always true.
func GetBook() bool {
	book := Book{
		ID:        1,
		Title:     "Notes on an Execution",
		Price:     30,
		Available: true,
	}
	return book.Available
}

var subtractFn = machine.NewBuiltin("subtract", 2, func(_ *machine.Thread, args types.Tuple) (types.Value, error) {
	a, b, err := numberPair(args)
	if err != nil {
		return nil, err
	}
	return types.Float(Subtract(a, b)), nil
})

var getBookFn = machine.NewBuiltin("getBook", 0, func(_ *machine.Thread, _ types.Tuple) (types.Value, error) {
	return types.Bool(GetBook()), nil
})
