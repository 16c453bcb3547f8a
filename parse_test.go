package expressions

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
		kind Kind
	}{
		{"integer", "3", "3", KindConstant},
		{"decimal", "2.4", "2.4", KindConstant},
		{"truncated", "1.123456", "1.12345", KindConstant},
		{"leadingdot", ".5", "0.5", KindConstant},
		{"trailingdot", "5.", "5", KindConstant},
		{"leadingzeros", "007", "7", KindConstant},
		{"collapse", "0.000001", "0", KindConstant},
		{"variable", "x", "x", KindVariable},
		{"longvariable", "Foo", "Foo", KindVariable},
		{"add", "x + y", "x + y", KindSum},
		{"addnum", "3 + x", "3 + x", KindSum},
		{"fold", "1 + 2", "3", KindConstant},
		{"foldleft", "(3 + 4) + 5", "12", KindConstant},
		{"foldright", "3 + (4 + 5)", "12", KindConstant},
		{"zeroright", "x + 0", "x", KindVariable},
		{"zeroleft", "0 + x", "x", KindVariable},
		{"zerosum", "0 + 0", "0", KindConstant},
		{"mul", "x * y", "(x)*(y)", KindProduct},
		{"mulzero", "x * 0", "0", KindConstant},
		{"mulzeroleft", "0 * x", "0", KindConstant},
		{"mulone", "x * 1", "x", KindVariable},
		{"muloneleft", "1 * x", "x", KindVariable},
		{"mulfold", "1000000 * 1000000", "1000000000000", KindConstant},
		{"coefficient", "2 * x", "(2)*(x)", KindProduct},
		{"coefficientright", "x * 2", "(x)*(2)", KindProduct},
		{"mulchain", "x*y*z", "((x)*(y))*(z)", KindProduct},
		{"groupright", "x*(2*y)", "(x)*((2)*(y))", KindProduct},
		{"groupleft", "(x*2)*y", "((x)*(2))*(y)", KindProduct},
		{"precedence", "x + y*z", "x + (y)*(z)", KindSum},
		{"precedenceleft", "x*y + z", "(x)*(y) + z", KindSum},
		{"brackets", "(((x)))", "x", KindVariable},
		{"whitespace", "  x  +  y ", "x + y", KindSum},
		{"nospace", "x+y", "x + y", KindSum},
		{"selfadd", "x + x", "x + x", KindSum},
		{"selffold", "2 + 2", "4", KindConstant},
		{"doublesum", "(x + y) + (x + y)", "(x)*(2) + (y)*(2)", KindSum},
		{"doubleproduct", "x*y + x*y", "((x)*(y))*(2)", KindProduct},
		{"mergeleft", "3 + x + 3", "6 + x", KindSum},
		{"mergeright", "3 + (x + 3)", "x + 6", KindSum},
		{"distribute", "3 * (x + y)", "(3)*(x) + (3)*(y)", KindSum},
		{"nodistribute", "(x + y) * 3", "(x + y)*(3)", KindProduct},
		{"annihilate", "x*0 + 2 + 2", "4", KindConstant},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("parsing %q failed: %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("parsing %q gave %q, expected %q", c.src, got, c.want)
			}
			if e.Kind() != c.kind {
				t.Errorf("parsing %q gave kind %v, expected %v", c.src, e.Kind(), c.kind)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	srcs := []string{
		"0",
		"12",
		"2.5",
		"0.00001",
		"0.000001",
		"1.999999",
		"123456789.54321",
		strings.Repeat("9", 300),
		"x",
		"someVariableName",
		"x + y",
		"x + x",
		"x + x + x",
		"2 + x + 2",
		"x * y",
		"x*y*z",
		"x*(2*y)",
		"x + y*z",
		"3 * (x + y)",
		"(x + y) * 3",
		"(x + y) + (x + y)",
		"x*y + x*y",
		"3 + x + 3",
		"x*0 + 2 + 2",
	}
	for _, src := range srcs {
		src := src
		t.Run(src, func(t *testing.T) {
			e, err := Parse(src)
			if err != nil {
				t.Fatalf("parsing %q failed: %v", src, err)
			}
			r := e.String()
			e2, err := Parse(r)
			if err != nil {
				t.Fatalf("%q renders as %q, which does not parse: %v", src, r, err)
			}
			if !e.Equal(e2) {
				t.Errorf("%q renders as %q, which parses unequal", src, r)
			}
			if !e2.Equal(e) {
				t.Errorf("%q renders as %q, which compares unequal in reverse", src, r)
			}
			if e2.Kind() != e.Kind() {
				t.Errorf("%q has kind %v but its rendering parses to kind %v", src, e.Kind(), e2.Kind())
			}
			if got := e2.String(); got != r {
				t.Errorf("%q renders as %q, which re-renders as %q", src, r, got)
			}
			if e.Hash() != e2.Hash() {
				t.Errorf("%q and its reparse hash to %#x and %#x", src, e.Hash(), e2.Hash())
			}
		})
	}
}

func TestParseReparseMerges(t *testing.T) {
	// Brackets can nest a repeated addend where the doubling rule cannot
	// see it: x + (y + x) keeps both x terms. The rendering flattens the
	// grouping, so reparsing folds left to right and merges them. One more
	// round is stable.
	e, err := Parse("x + (y + x)")
	if err != nil {
		t.Fatal(err)
	}
	r := e.String()
	if r != "x + y + x" {
		t.Fatalf("x + (y + x) renders %q, expected %q", r, "x + y + x")
	}
	e2, err := Parse(r)
	if err != nil {
		t.Fatal(err)
	}
	if got := e2.String(); got != "(x)*(2) + y" {
		t.Errorf("reparsing %q gave %q, expected %q", r, got, "(x)*(2) + y")
	}
	e3, err := Parse(e2.String())
	if err != nil {
		t.Fatal(err)
	}
	if !e3.Equal(e2) {
		t.Errorf("%v reparses unequal", e2)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		pos  int
		res  []string
	}{
		{"empty", "", new(EmptyExpressionError), 1, []string{`no expression`}},
		{"blank", "   ", new(EmptyExpressionError), 4, []string{`no expression`}},
		{"emptybrackets", "()", new(EmptyExpressionError), 2, []string{`\)`}},
		{"danglingadd", "x +", new(EmptyExpressionError), 4, []string{`end`}},
		{"danglingmul", "x *", new(EmptyExpressionError), 4, []string{`end`}},
		{"emptyoperand", "(x + )", new(EmptyExpressionError), 6, []string{`\)`}},
		{"open", "(x", new(BracketError), 3, []string{`\(`, `close`}},
		{"opennested", "((x)", new(BracketError), 5, []string{`\(`}},
		{"close", "x)", new(BracketError), 2, []string{`\)`, `open`}},
		{"closeonly", ")", new(BracketError), 1, []string{`\)`}},
		{"leadingop", "* x", new(OperatorError), 1, []string{`\*`, `operand`}},
		{"leadingplus", "+x", new(OperatorError), 1, []string{`\+`, `operand`}},
		{"doubleop", "x + + y", new(OperatorError), 5, []string{`\+`, `operand`}},
		{"juxtvars", "x y", new(OperatorError), 3, []string{`missing operator`, `"y"`}},
		{"juxtnum", "2 x", new(OperatorError), 3, []string{`missing operator`}},
		{"juxtbrackets", "(x)(y)", new(OperatorError), 4, []string{`missing operator`}},
		{"juxtnums", "2 2", new(OperatorError), 3, []string{`missing operator`}},
		{"negative", "-1", new(LexError), 1, []string{`-`}},
		{"minus", "x - y", new(LexError), 3, []string{`-`}},
		{"divide", "x / y", new(LexError), 3, []string{`/`}},
		{"power", "x ^ 2", new(LexError), 3, []string{`\^`}},
		{"underscore", "a_b", new(LexError), 2, []string{`_`}},
		{"baredot", ".", new(LexError), 1, []string{`number`}},
		{"twodots", "1.2.3", new(LexError), 1, []string{`number`}},
		{"outofrange", strings.Repeat("9", 400), new(NumberError), 1, []string{`range`}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if e != nil {
				t.Errorf("parsing %q gave a result: %v", c.src, e)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("parsing %q gave error type %T, expected %T: %v", c.src, err, c.err, err)
			}
			var perr ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("parsing %q gave %T, which is not a ParseError", c.src, err)
			}
			if perr.Pos() != c.pos {
				t.Errorf("parsing %q gave an error at %d, expected %d: %v", c.src, perr.Pos(), c.pos, err)
			}
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(err.Error()) {
					t.Errorf("parsing %q gave error %q with no match for %q", c.src, err, re)
				}
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"constant", "12345.6789"},
		{"variable", "someVariableName"},
		{"fold", "1 + 2 + 3 + 4 + 5"},
		{"poly", "((3)*(x))*(x) + (2)*(x) + 1"},
		{"deep", "((((((x))))))"},
		{"wide", "a + b + c + d + e + f + g + h"},
	}
	for _, c := range cases {
		c := c
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Parse(c.src)
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	e, err := Parse("((3)*(x))*(x) + (2)*(y) + 1")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.String()
	}
}
