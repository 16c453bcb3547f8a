// Package expressions implements immutable algebraic expressions over
// nonnegative constants and named variables, closed under addition and
// multiplication.
//
// Expressions are built by Parse or by combining existing expressions, and
// they simplify opportunistically as they are combined: constants fold, zero
// and one identities vanish, adding an expression to an equal one doubles it,
// and a constant coefficient distributes over a sum. Every expression renders
// to a canonical string which Parse accepts. Reparsing a rendering can merge
// addends the original construction left apart, because Parse folds terms
// left to right; once the rendering is stable under reparsing, the parsed
// expression is equal to the rendered one.
//
// Expressions are immutable and safe for concurrent use without locking.
// Combining expressions shares subtrees rather than copying them.
//
package expressions
