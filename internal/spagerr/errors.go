// Package spagerr defines the categorical failure conditions shared by the
// scanner and parser compilation pipelines. Every failure raised during
// construction wraps one of these sentinels so callers can distinguish
// categories with errors.Is instead of matching on message text.
package spagerr

import "errors"

var (
	// ErrInvalidName indicates a required name string was empty.
	ErrInvalidName = errors.New("spag: invalid name")

	// ErrInvalidSpecification indicates an expressions/productions mapping
	// was the wrong shape or empty.
	ErrInvalidSpecification = errors.New("spag: invalid specification")

	// ErrEmptyPattern indicates a token's regular expression was empty.
	ErrEmptyPattern = errors.New("spag: empty pattern")

	// ErrEmptyNonterminal indicates a production's nonterminal name was empty.
	ErrEmptyNonterminal = errors.New("spag: empty nonterminal")

	// ErrEmptyRuleSymbol indicates a production rule contained an empty
	// [non]terminal symbol.
	ErrEmptyRuleSymbol = errors.New("spag: empty rule symbol")

	// ErrUnrecognizedCharacter indicates input outside the accepted alphabet.
	ErrUnrecognizedCharacter = errors.New("spag: unrecognized character")

	// ErrInvalidEscape indicates a malformed \X escape sequence.
	ErrInvalidEscape = errors.New("spag: invalid escape sequence")

	// ErrEmptyEscape indicates a trailing lone backslash.
	ErrEmptyEscape = errors.New("spag: empty escape sequence")

	// ErrUnmatchedBracket indicates '[' or ']' nesting failure.
	ErrUnmatchedBracket = errors.New("spag: unmatched bracket")

	// ErrUnbalancedParen indicates '(' or ')' nesting failure.
	ErrUnbalancedParen = errors.New("spag: unbalanced parenthesis")

	// ErrMalformedExpression indicates an operator lacked operands during
	// postfix evaluation, or evaluation left more than one fragment.
	ErrMalformedExpression = errors.New("spag: malformed expression")

	// ErrStartNotInProductions indicates the start nonterminal is absent
	// from the production map.
	ErrStartNotInProductions = errors.New("spag: start symbol not in productions")
)
