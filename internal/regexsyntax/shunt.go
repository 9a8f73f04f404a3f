package regexsyntax

import "github.com/rrozansk/spag-go/internal/spagerr"

// precedence gives the binding power of each operator for the shunting-yard
// algorithm; higher binds tighter. assocLeft is true for left-associative
// operators (union, concat) and false for the right-associative postfix
// unary operators (star, plus, question), per the design note that all
// three postfix operators are unambiguous as right-associative since they
// are unary.
type opInfo struct {
	precedence int
	assocLeft  bool
}

var precedence = map[Op]opInfo{
	OpQuestion: {2, false},
	OpStar:     {2, false},
	OpPlus:     {2, false},
	OpConcat:   {1, true},
	OpUnion:    {0, true},
}

// Shunt converts an infix regular expression (with explicit concatenation)
// to postfix (reverse Polish) notation via Dijkstra's shunting-yard
// algorithm, dropping all parentheses.
func Shunt(expr []Symbol) ([]Symbol, error) {
	var stack []Symbol
	queue := make([]Symbol, 0, len(expr))

	for _, sym := range expr {
		switch {
		case sym.Is(OpLParen):
			stack = append(stack, sym)

		case sym.Is(OpRParen):
			for len(stack) > 0 && !stack[len(stack)-1].Is(OpLParen) {
				queue = append(queue, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, spagerr.ErrUnbalancedParen
			}
			stack = stack[:len(stack)-1] // discard '('

		case sym.IsOperator():
			info, ok := precedence[sym.Operator()]
			if !ok {
				return nil, spagerr.ErrMalformedExpression
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Is(OpLParen) {
					break
				}
				topInfo := precedence[top.Operator()]
				if !(info.precedence <= topInfo.precedence && info.assocLeft) {
					break
				}
				queue = append(queue, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, sym)

		default: // literal character
			queue = append(queue, sym)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Is(OpLParen) {
			return nil, spagerr.ErrUnbalancedParen
		}
		queue = append(queue, top)
	}

	return queue, nil
}
