package expressions_test

import (
	"fmt"

	exprs "github.com/ImaanIbrar/PS3-Representing-Expressions"
)

func ExampleParse() {
	e, err := exprs.Parse("3 + 4*x*x")
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	// Output:
	// 3 + ((4)*(x))*(x)
}

func ExampleParse_simplification() {
	e, err := exprs.Parse("x*0 + 2 + 2")
	if err != nil {
		panic(err)
	}
	fmt.Println(e, e.Kind())
	// Output:
	// 4 Constant
}

func ExampleParse_invalid() {
	_, err := exprs.Parse("3 + * 4")
	fmt.Println(err)
	// Output:
	// 5: operator "*" missing an operand
}

func ExampleExpression_AddExpr() {
	x := exprs.MustVariable("x")
	y := exprs.MustVariable("y")
	sum := x.AddExpr(y)
	fmt.Println(sum)
	fmt.Println(sum.AddExpr(sum))
	// Output:
	// x + y
	// (x)*(2) + (y)*(2)
}

func ExampleExpression_Equal() {
	a, _ := exprs.Parse("(x + y) + z")
	b, _ := exprs.Parse("x + (y + z)")
	fmt.Println(a.Equal(b))
	c, _ := exprs.Parse("x*(y*z)")
	d, _ := exprs.Parse("(x*y)*z")
	fmt.Println(c.Equal(d))
	// Output:
	// true
	// false
}

func ExampleConstant_String() {
	fmt.Println(exprs.MustConstant(1.123456))
	fmt.Println(exprs.MustConstant(0.000001))
	// Output:
	// 1.12345
	// 0
}
