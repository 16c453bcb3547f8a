package expressions

import "strings"

// Variable is a named indeterminate. Names are one or more ASCII letters and
// are case sensitive.
type Variable struct {
	name string
}

// NewVariable creates a variable. It returns an error of type
// *InvalidVariableError if name is empty or contains anything other than
// ASCII letters.
func NewVariable(name string) (*Variable, error) {
	if !validName(name) {
		return nil, &InvalidVariableError{Name: name}
	}
	return &Variable{name: name}, nil
}

// MustVariable is like NewVariable but panics on an invalid name.
func MustVariable(name string) *Variable {
	v, err := NewVariable(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the variable's name.
func (v *Variable) Name() string {
	return v.name
}

// Kind returns KindVariable.
func (v *Variable) Kind() Kind {
	return KindVariable
}

// AddExpr returns the sum of v and e. Adding zero is an identity; otherwise
// the operand absorbs v through AddVariable. Like terms are not collected,
// so adding a variable to itself builds x + x rather than a product.
func (v *Variable) AddExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if e.Equal(zero) {
		return v
	}
	return e.AddVariable(v.name)
}

// MultiplyExpr returns the product of v and e. Zero annihilates and one is
// an identity; otherwise the operand absorbs v through MultiplyVariable.
func (v *Variable) MultiplyExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if e.Equal(zero) {
		return zero
	}
	if e.Equal(one) {
		return v
	}
	return e.MultiplyVariable(v.name)
}

// AddVariable returns the sum of the named variable and v, even when the
// name is v's own.
func (v *Variable) AddVariable(name string) Expression {
	return &Sum{left: MustVariable(name), right: v}
}

// MultiplyVariable returns the product of the named variable and v.
func (v *Variable) MultiplyVariable(name string) Expression {
	return &Product{left: MustVariable(name), right: v}
}

// AddConstant returns the sum with the value prepended as a constant, or v
// alone if the value truncates to zero.
func (v *Variable) AddConstant(value float64) Expression {
	c := MustConstant(value)
	if c.Equal(zero) {
		return v
	}
	return &Sum{left: c, right: v}
}

// AppendCoefficient returns the product with the value prepended as a
// coefficient; zero annihilates and one is an identity.
func (v *Variable) AppendCoefficient(value float64) Expression {
	c := MustConstant(value)
	if c.Equal(zero) {
		return zero
	}
	if c.Equal(one) {
		return v
	}
	return &Product{left: c, right: v}
}

// Equal reports whether e is a variable with the same name.
func (v *Variable) Equal(e Expression) bool {
	o, ok := e.(*Variable)
	return ok && v.name == o.name
}

// Hash returns the hash of the name.
func (v *Variable) Hash() uint64 {
	return hashString(v.name)
}

// String returns the variable's name.
func (v *Variable) String() string {
	return v.name
}

func (v *Variable) fmt(b *strings.Builder) {
	b.WriteString(v.name)
}
