package expressions

import (
	"strconv"
	"strings"
)

// Expr   = Term {("+" | "*") Term}
// Term   = number | variable | "(" Expr ")"
// number = digits | digits "." digits | digits "." | "." digits
// variable = one or more ASCII letters
//
// "*" binds tighter than "+", and both group to the left. There are no unary
// operators and no implicit multiplication.

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operator rune, + or *.
	op byte
}

// moreBinding reports whether p is more binding than than.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token string. The lexer only emits
// operator tokens for runes in Operators, so an unknown string panics.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{prec: 1, op: '+'}
	case "*":
		return operator{prec: 5, op: '*'}
	default:
		panic("expressions: no operator " + strconv.Quote(text))
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{prec: -128, right: true}

// combine reduces a parsed binary operation through the combining methods,
// so that parsed expressions simplify exactly as ones built by client code.
func combine(op byte, l, r Expression) Expression {
	switch op {
	case '+':
		return l.AddExpr(r)
	case '*':
		return l.MultiplyExpr(r)
	default:
		panic("expressions: no operator " + strconv.QuoteRune(rune(op)))
	}
}

// Parse parses an expression. The grammar has addition, multiplication,
// brackets for grouping, nonnegative decimal numerals, and variable names
// made of ASCII letters, with any amount of whitespace between tokens.
// Multiplication binds tighter than addition, and both group to the left.
// An error from invalid input is of type ParseError.
//
// The result is built bottom-up with the same combining methods client code
// uses, so it carries the same simplifications: Parse("x*0 + 2 + 2") is the
// constant 4.
func Parse(input string) (Expression, error) {
	scan := lex(strings.NewReader(input))
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok)
	}
	return n, nil
}

// parseterm parses a full term, including any binary operations of
// sufficient precedence. If there is no error, then parseterm pushes the
// last token it scans, including EOF. If the term is an empty subexpression,
// the result is nil with no error; the caller must create an error if an
// empty subexpression is illegal in its context.
func parseterm(scan *lexer, until operator) (Expression, error) {
	n, err := parselhs(scan)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = combine(prec.op, n, rhs)
		case tokenNum, tokenIdent, tokenOpen:
			// A term straight after another term. There is no implicit
			// multiplication, so this is always an error.
			return nil, &OperatorError{Col: tok.pos, Token: tok.text, Missing: true}
		case tokenClose, tokenEOF:
			scan.push(tok)
			return n, nil
		default:
			panic("expressions: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first operand of a term. If the input is an empty
// subexpression ended by a close bracket, the result is nil with no error
// and the bracket is pushed.
func parselhs(scan *lexer) (Expression, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// The lexer validated the syntax, so the value is out of range.
			return nil, &NumberError{Col: tok.pos, Literal: tok.text}
		}
		return &Constant{value: v}, nil
	case tokenIdent:
		return &Variable{name: tok.text}, nil
	case tokenOp:
		return nil, &OperatorError{Col: tok.pos, Token: tok.text}
	case tokenOpen:
		rhs, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return rhs, nil
	case tokenClose:
		// Might be the end of an enclosing subexpression. Let the caller
		// decide what to do with it.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("expressions: unknown token: " + tok.String())
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for a token that
// ends a subexpression where it shouldn't.
func itShouldNotHaveEndedThisWay(tok lexToken) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF means an open bracket was never closed.
		return &BracketError{Col: tok.pos, Left: "("}
	case tokenClose:
		// A close bracket the enclosing terms didn't consume has no matching
		// open bracket.
		return &BracketError{Col: tok.pos, Right: tok.text}
	default:
		panic("expressions: it really should not have ended this way: " + tok.String())
	}
}
