package regexsyntax

import (
	"fmt"

	"github.com/rrozansk/spag-go/internal/spagerr"
)

// Lex tokenizes a regex surface string into an internal symbol stream:
// literal characters, bracketed-class markers, and operator tags. Escape
// sequences are resolved here so downstream stages never see a backslash.
//
// Accepted escapes are an operator literal (yielding that literal), a
// backslash (yielding backslash), or one of s t n r f v (yielding the
// corresponding whitespace character). Anything else is ErrInvalidEscape,
// and a trailing lone backslash is ErrEmptyEscape.
func Lex(expr string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(expr))
	escape := false
	for _, r := range expr {
		switch {
		case escape:
			escape = false
			if op, ok := operatorLiterals[r]; ok {
				out = append(out, Char(opLiteral(op)))
				continue
			}
			if r == '\\' {
				out = append(out, Char('\\'))
				continue
			}
			if ws, ok := whitespaceEscapes[r]; ok {
				out = append(out, Char(ws))
				continue
			}
			return nil, fmt.Errorf("%w: \\%c", spagerr.ErrInvalidEscape, r)
		case r == '\\':
			escape = true
		case isOperatorLiteral(r):
			out = append(out, Operator(operatorLiterals[r]))
		case IsAccepted(r):
			out = append(out, Char(r))
		default:
			return nil, fmt.Errorf("%w: %q", spagerr.ErrUnrecognizedCharacter, r)
		}
	}
	if escape {
		return nil, spagerr.ErrEmptyEscape
	}
	return out, nil
}

func isOperatorLiteral(r rune) bool {
	_, ok := operatorLiterals[r]
	return ok
}

// opLiteral is the inverse of operatorLiterals, used to recover the literal
// character an escaped operator denotes (e.g. '\*' -> '*').
func opLiteral(op Op) rune {
	for lit, o := range operatorLiterals {
		if o == op {
			return lit
		}
	}
	panic("regexsyntax: unreachable: every Op has a literal")
}
