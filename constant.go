package expressions

import "strings"

// Constant is a nonnegative finite number.
//
// The raw value given at construction is retained, but rendering and
// comparison see it truncated to five decimal places, and so does any
// expression it is combined with.
type Constant struct {
	value float64
}

// NewConstant creates a constant. It returns an error of type
// *InvalidConstantError if value is negative, NaN, or infinite.
func NewConstant(value float64) (*Constant, error) {
	if !validValue(value) {
		return nil, &InvalidConstantError{Value: value}
	}
	return &Constant{value: value}, nil
}

// MustConstant is like NewConstant but panics on an invalid value.
func MustConstant(value float64) *Constant {
	c, err := NewConstant(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the constant's raw value, without truncation.
func (c *Constant) Value() float64 {
	return c.value
}

// Kind returns KindConstant.
func (c *Constant) Kind() Kind {
	return KindConstant
}

// AddExpr returns the sum of c and e. Adding an equal constant doubles c,
// adding zero on either side is an identity, and otherwise the operand
// absorbs c through AddConstant, so adding two constants always folds.
func (c *Constant) AddExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if e.Equal(c) {
		return &Constant{value: saturate(2 * c.value)}
	}
	if c.Equal(zero) {
		return e
	}
	if e.Equal(zero) {
		return c
	}
	return e.AddConstant(c.value)
}

// MultiplyExpr returns the product of c and e. Zero on either side
// annihilates and one on either side is an identity; otherwise the operand
// absorbs c through AppendCoefficient.
func (c *Constant) MultiplyExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if c.Equal(zero) || e.Equal(zero) {
		return zero
	}
	if c.Equal(one) {
		return e
	}
	if e.Equal(one) {
		return c
	}
	return e.AppendCoefficient(c.value)
}

// AddVariable returns the sum with the named variable prepended, or the
// variable alone if c is zero.
func (c *Constant) AddVariable(name string) Expression {
	v := MustVariable(name)
	if c.Equal(zero) {
		return v
	}
	return &Sum{left: v, right: c}
}

// MultiplyVariable returns the product with the named variable prepended;
// zero annihilates and one gives the variable alone.
func (c *Constant) MultiplyVariable(name string) Expression {
	v := MustVariable(name)
	if c.Equal(zero) {
		return zero
	}
	if c.Equal(one) {
		return v
	}
	return &Product{left: v, right: c}
}

// AddConstant returns a constant holding the sum of the truncated value and
// c. A sum too large for float64 saturates to the largest finite value.
func (c *Constant) AddConstant(value float64) Expression {
	if !validValue(value) {
		panic(&InvalidConstantError{Value: value})
	}
	t := saturate(truncate5(value))
	return &Constant{value: saturate(t + c.value)}
}

// AppendCoefficient returns a constant holding the product of the truncated
// value and c. A product too large for float64 saturates to the largest
// finite value.
func (c *Constant) AppendCoefficient(value float64) Expression {
	if !validValue(value) {
		panic(&InvalidConstantError{Value: value})
	}
	t := saturate(truncate5(value))
	return &Constant{value: saturate(t * c.value)}
}

// Equal reports whether e is a constant with the same value to five decimal
// places.
func (c *Constant) Equal(e Expression) bool {
	o, ok := e.(*Constant)
	if !ok {
		return false
	}
	d := canonicalValue(c.value) - canonicalValue(o.value)
	return -epsilon < d && d < epsilon
}

// Hash returns the hash of the canonical rendering, so constants rendering
// alike hash alike.
func (c *Constant) Hash() uint64 {
	return hashString(c.String())
}

// String renders the value truncated to five decimal places, with trailing
// zeros dropped and never in exponent notation.
func (c *Constant) String() string {
	return formatValue(c.value)
}

func (c *Constant) fmt(b *strings.Builder) {
	b.WriteString(formatValue(c.value))
}
