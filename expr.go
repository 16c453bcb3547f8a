package expressions

import "strings"

// Expression is an immutable algebraic expression over nonnegative constants
// and named variables. The implementations are Constant, Variable, Sum, and
// Product.
//
// Combining methods never modify their receiver or operand. They return a new
// expression which may share subtrees with the inputs. The methods taking a
// variable name or a constant value exist so that an expression can combine
// itself with another without inspecting the other's type; most code wants
// AddExpr and MultiplyExpr.
type Expression interface {
	// AddExpr returns the sum of this expression and e, simplified where a
	// rule applies. Adding zero is always an identity.
	AddExpr(e Expression) Expression
	// MultiplyExpr returns the product of this expression and e, simplified
	// where a rule applies. Multiplying by zero always gives zero, and
	// multiplying by one is always an identity.
	MultiplyExpr(e Expression) Expression
	// AddVariable returns the sum with the named variable prepended as the
	// left addend. The name must be one or more ASCII letters; anything else
	// panics with an error of type *InvalidVariableError.
	AddVariable(name string) Expression
	// MultiplyVariable returns the product with the named variable prepended
	// as the left factor, under the same name rules as AddVariable.
	MultiplyVariable(name string) Expression
	// AddConstant returns the sum with the value prepended as a constant
	// addend. The value is truncated to five decimal places before use and
	// must be nonnegative and finite; anything else panics with an error of
	// type *InvalidConstantError.
	AddConstant(value float64) Expression
	// AppendCoefficient returns the product with the value prepended as a
	// constant coefficient, under the same value rules as AddConstant.
	// Appending a coefficient to a sum distributes it over the addends.
	AppendCoefficient(value float64) Expression
	// Equal reports whether this expression equals e. Constants compare by
	// value to five decimal places, variables by name, and sums and products
	// by kind and canonical rendering, so sums compare insensitive to
	// associativity while products distinguish grouping.
	Equal(e Expression) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64
	// Kind returns the variant of this expression.
	Kind() Kind
	// String returns the canonical rendering of this expression. Parse
	// accepts every rendering, though reparsing one may merge addends this
	// expression's construction left apart.
	String() string

	// fmt appends the canonical rendering to b.
	fmt(b *strings.Builder)
}

// Kind identifies one of the four expression variants.
type Kind int8

const (
	KindConstant Kind = iota
	KindVariable
	KindSum
	KindProduct
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// zero, one, and two are the constants the simplification rules test against
// and insert. Comparisons go through Equal, so any constant rendering "0" or
// "1" triggers the corresponding rule.
var (
	zero = &Constant{}
	one  = &Constant{value: 1}
	two  = &Constant{value: 2}
)

// Hash values are 64-bit FNV-1a over the canonical rendering, computed
// inline to avoid the hash.Hash64 allocation. Renderings of distinct
// variants never coincide: constants begin with a digit, variables with a
// letter, sums contain a top-level " + ", and products parenthesize both
// factors.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

func hashString(s string) uint64 {
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

var (
	_ Expression = (*Constant)(nil)
	_ Expression = (*Variable)(nil)
	_ Expression = (*Sum)(nil)
	_ Expression = (*Product)(nil)
)
