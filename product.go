package expressions

import "strings"

// Product is the product of two subexpressions. Products render with both
// factors parenthesized, so equality, which compares renderings,
// distinguishes grouping: x*(2*y) is not (x*2)*y.
type Product struct {
	left, right Expression
}

// Left returns the left factor.
func (p *Product) Left() Expression {
	return p.left
}

// Right returns the right factor.
func (p *Product) Right() Expression {
	return p.right
}

// Kind returns KindProduct.
func (p *Product) Kind() Kind {
	return KindProduct
}

// AddExpr returns the sum of p and e. Adding zero is an identity, and
// adding an expression equal to p doubles it into (p)*(2). Otherwise e
// becomes the right addend.
func (p *Product) AddExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if e.Equal(zero) {
		return p
	}
	if p.Equal(e) {
		return p.MultiplyExpr(two)
	}
	return &Sum{left: p, right: e}
}

// MultiplyExpr returns the product of p and e. Zero annihilates and one is
// an identity; otherwise e becomes the right factor.
func (p *Product) MultiplyExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if e.Equal(zero) {
		return zero
	}
	if e.Equal(one) {
		return p
	}
	return &Product{left: p, right: e}
}

// AddVariable returns the sum of the named variable and p.
func (p *Product) AddVariable(name string) Expression {
	return &Sum{left: MustVariable(name), right: p}
}

// MultiplyVariable returns the product of the named variable and p.
func (p *Product) MultiplyVariable(name string) Expression {
	return &Product{left: MustVariable(name), right: p}
}

// AddConstant returns the sum with the value prepended as a constant, or p
// alone if the value truncates to zero.
func (p *Product) AddConstant(value float64) Expression {
	c := MustConstant(value)
	if c.Equal(zero) {
		return p
	}
	return &Sum{left: c, right: p}
}

// AppendCoefficient returns the product with the value prepended as a
// coefficient; zero annihilates and one is an identity. Unlike sums,
// products do not distribute the coefficient.
func (p *Product) AppendCoefficient(value float64) Expression {
	c := MustConstant(value)
	if c.Equal(zero) {
		return zero
	}
	if c.Equal(one) {
		return p
	}
	return &Product{left: c, right: p}
}

// Equal reports whether e is a product with the same rendering.
func (p *Product) Equal(e Expression) bool {
	o, ok := e.(*Product)
	return ok && p.String() == o.String()
}

// Hash returns the hash of the rendering.
func (p *Product) Hash() uint64 {
	return hashString(p.String())
}

// String renders both factors parenthesized and joined by "*".
func (p *Product) String() string {
	var b strings.Builder
	p.fmt(&b)
	return b.String()
}

func (p *Product) fmt(b *strings.Builder) {
	b.WriteByte('(')
	p.left.fmt(b)
	b.WriteString(")*(")
	p.right.fmt(b)
	b.WriteByte(')')
}
