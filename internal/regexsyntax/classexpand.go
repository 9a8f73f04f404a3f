package regexsyntax

import (
	"sort"

	"github.com/rrozansk/spag-go/internal/spagerr"
)

// ExpandClasses rewrites every bracketed class/range form [...] in the
// symbol stream as a parenthesized alternation of its literal characters,
// eliminating OpLBracket/OpRBracket from the stream entirely.
//
//   - A class may mix individual characters and ranges (a-b expands to every
//     character between min(a,b) and max(a,b) inclusive; ranges are
//     order-insensitive).
//   - '^' immediately after '[' negates the class against the full accepted
//     alphabet; '^' anywhere else is a literal.
//   - A class containing only '^' denotes the full accepted alphabet.
//   - A trailing '-' immediately before ']' is a literal, not a dangling
//     range (see Open Question (a) in the design notes).
//   - Duplicate characters in the expanded set are removed.
func ExpandClasses(expr []Symbol) ([]Symbol, error) {
	out := make([]Symbol, 0, len(expr))
	var literals []rune
	expansion, negation, pendingRange := false, false, false

	for _, sym := range expr {
		switch {
		case sym.Is(OpLBracket) && !expansion:
			expansion = true
			literals = literals[:0]
			negation, pendingRange = false, false

		case sym.Is(OpRBracket):
			if !expansion {
				return nil, spagerr.ErrUnmatchedBracket
			}
			expansion = false
			if pendingRange {
				pendingRange = false
				literals = append(literals, '-')
			}
			if negation {
				negation = false
				literals = complement(literals)
			}
			literals = dedupe(literals)
			out = append(out, classToAlternation(literals)...)

		case !expansion:
			out = append(out, sym)

		case sym.Char() == '^' && len(literals) == 0 && !negation:
			negation = true

		case sym.Char() == '-' && len(literals) > 0 && !pendingRange:
			pendingRange = true

		case pendingRange:
			pendingRange = false
			from := literals[len(literals)-1]
			literals = literals[:len(literals)-1]
			literals = append(literals, expandRange(from, sym.Char())...)

		default:
			literals = append(literals, symbolLiteral(sym))
		}
	}

	if expansion {
		return nil, spagerr.ErrUnmatchedBracket
	}
	return out, nil
}

// symbolLiteral returns the literal character a symbol denotes inside a
// bracketed class: an operator tag not otherwise handled above is treated
// as its surface literal (e.g. a bare '(' written inside a class).
func symbolLiteral(sym Symbol) rune {
	if !sym.IsOperator() {
		return sym.Char()
	}
	return opLiteral(sym.Operator())
}

func expandRange(a, b rune) []rune {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

func complement(literals []rune) []rune {
	excluded := make(map[rune]bool, len(literals))
	for _, r := range literals {
		excluded[r] = true
	}
	var out []rune
	for _, r := range Alphabet() {
		if !excluded[r] {
			out = append(out, r)
		}
	}
	return out
}

func dedupe(literals []rune) []rune {
	seen := make(map[rune]bool, len(literals))
	out := make([]rune, 0, len(literals))
	for _, r := range literals {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// classToAlternation builds "(c1|c2|...|ck)" from a literal set. The order
// is sorted only for deterministic output; the language recognized is
// order-independent.
func classToAlternation(literals []rune) []Symbol {
	if len(literals) == 0 {
		return nil
	}
	sorted := append([]rune(nil), literals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := make([]Symbol, 0, 2*len(sorted)+1)
	out = append(out, Operator(OpLParen))
	for i, r := range sorted {
		if i > 0 {
			out = append(out, Operator(OpUnion))
		}
		out = append(out, Char(r))
	}
	out = append(out, Operator(OpRParen))
	return out
}
