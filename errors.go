package expressions

import (
	"math"
	"strconv"
)

// InvalidVariableError is an error indicating a variable name that is not
// one or more ASCII letters.
type InvalidVariableError struct {
	// Name is the rejected name.
	Name string
}

func (err *InvalidVariableError) Error() string {
	return "invalid variable name " + strconv.Quote(err.Name)
}

// InvalidConstantError is an error indicating a constant value that is
// negative, NaN, or infinite.
type InvalidConstantError struct {
	// Value is the rejected value.
	Value float64
}

func (err *InvalidConstantError) Error() string {
	return "invalid constant " + strconv.FormatFloat(err.Value, 'g', -1, 64)
}

// validName reports whether name is a legal variable name, one or more ASCII
// letters.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		r := name[i]
		if ('a' > r || r > 'z') && ('A' > r || r > 'Z') {
			return false
		}
	}
	return true
}

// validValue reports whether v is a legal constant value, nonnegative and
// finite.
func validValue(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
