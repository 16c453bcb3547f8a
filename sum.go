package expressions

import "strings"

// Sum is the sum of two subexpressions. Sums render without parentheses, so
// equality, which compares renderings, ignores how nested sums associate but
// keeps addend order.
type Sum struct {
	left, right Expression
}

// Left returns the left addend.
func (s *Sum) Left() Expression {
	return s.left
}

// Right returns the right addend.
func (s *Sum) Right() Expression {
	return s.right
}

// Kind returns KindSum.
func (s *Sum) Kind() Kind {
	return KindSum
}

// AddExpr returns the sum of s and e. Adding zero is an identity. Adding an
// expression equal to s doubles both addends, and adding one equal to a
// single addend doubles that addend in place. Otherwise e is appended as the
// right addend.
func (s *Sum) AddExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if e.Equal(zero) {
		return s
	}
	if s.Equal(e) {
		return &Sum{left: s.left.MultiplyExpr(two), right: s.right.MultiplyExpr(two)}
	}
	if s.left.Equal(e) {
		return &Sum{left: s.left.MultiplyExpr(two), right: s.right}
	}
	if s.right.Equal(e) {
		return &Sum{left: s.left, right: s.right.MultiplyExpr(two)}
	}
	return &Sum{left: s, right: e}
}

// MultiplyExpr returns the product of s and e. Zero annihilates and one is
// an identity; otherwise e becomes the right factor.
func (s *Sum) MultiplyExpr(e Expression) Expression {
	if e == nil {
		panic("expressions: nil operand")
	}
	if e.Equal(zero) {
		return zero
	}
	if e.Equal(one) {
		return s
	}
	return &Product{left: s, right: e}
}

// AddVariable returns the sum of the named variable and s.
func (s *Sum) AddVariable(name string) Expression {
	return &Sum{left: MustVariable(name), right: s}
}

// MultiplyVariable returns the product of the named variable and s.
func (s *Sum) MultiplyVariable(name string) Expression {
	return &Product{left: MustVariable(name), right: s}
}

// AddConstant returns the sum with the value prepended as a constant. A
// value that truncates to zero is an identity, and a value equal to either
// addend folds into that addend instead of widening the sum.
func (s *Sum) AddConstant(value float64) Expression {
	c := MustConstant(value)
	if c.Equal(zero) {
		return s
	}
	if s.left.Equal(c) {
		return &Sum{left: s.left.AddConstant(value), right: s.right}
	}
	if s.right.Equal(c) {
		return &Sum{left: s.left, right: s.right.AddConstant(value)}
	}
	return &Sum{left: c, right: s}
}

// AppendCoefficient distributes the coefficient over both addends, combining
// the scaled halves with AddExpr. Zero annihilates and one is an identity.
func (s *Sum) AppendCoefficient(value float64) Expression {
	c := MustConstant(value)
	if c.Equal(zero) {
		return zero
	}
	if c.Equal(one) {
		return s
	}
	return s.left.AppendCoefficient(value).AddExpr(s.right.AppendCoefficient(value))
}

// Equal reports whether e is a sum with the same rendering.
func (s *Sum) Equal(e Expression) bool {
	o, ok := e.(*Sum)
	return ok && s.String() == o.String()
}

// Hash returns the hash of the rendering, so sums associated differently
// hash alike when they render alike.
func (s *Sum) Hash() uint64 {
	return hashString(s.String())
}

// String renders both addends joined by " + ", without parentheses.
func (s *Sum) String() string {
	var b strings.Builder
	s.fmt(&b)
	return b.String()
}

func (s *Sum) fmt(b *strings.Builder) {
	s.left.fmt(b)
	b.WriteString(" + ")
	s.right.fmt(b)
}
