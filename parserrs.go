package expressions

import "strconv"

// OperatorError is an error indicating a missing or misplaced operator:
// either an operator token where an operand was expected, or an operand token
// with no operator before it. It implements ParseError.
type OperatorError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the text of the offending token.
	Token string
	// Missing indicates that the parser expected an operator, i.e. the
	// offending token begins a new term with no operator joining it to the
	// previous one.
	Missing bool
}

func (err *OperatorError) Error() string {
	if err.Missing {
		return errpos(err.Col, "missing operator before "+strconv.Quote(err.Token))
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Token)+" missing an operand")
}

// Pos returns the position of the offending token.
func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched bracket. It implements
// ParseError.
type BracketError struct {
	// Col is the position of the unmatched bracket, or of the end of the
	// input if a close bracket was missing.
	Col int
	// Left is the opening bracket, if one was open.
	Left string
	// Right is the closing bracket encountered, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

// Pos returns the position of the unmatched bracket or of the end of the
// input.
func (err *BracketError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeral too large for a float64. It
// implements ParseError.
type NumberError struct {
	// Col is the position of the numeral.
	Col int
	// Literal is the text of the numeral.
	Literal string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "number "+strconv.Quote(err.Literal)+" out of range")
}

// Pos returns the position of the numeral.
func (err *NumberError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression. It implements ParseError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the text of the token that ended the subexpression, or the
	// empty string if the subexpression was ended by the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

// Pos returns the position of the token that ended the subexpression.
func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// ParseError is an error with position information. Every error from Parse
// on invalid expression text implements ParseError, including LexError.
type ParseError interface {
	error
	// Pos returns the rune column, starting at 1, of the offending token.
	Pos() int
}

var (
	_ ParseError = (*OperatorError)(nil)
	_ ParseError = (*BracketError)(nil)
	_ ParseError = (*NumberError)(nil)
	_ ParseError = (*EmptyExpressionError)(nil)
	_ ParseError = (*LexError)(nil)
)
