package regexsyntax

import (
	"errors"
	"testing"

	"github.com/rrozansk/spag-go/internal/spagerr"
)

func postfixString(symbols []Symbol) string {
	out := make([]byte, 0, len(symbols))
	for _, s := range symbols {
		if s.IsOperator() {
			switch s.Operator() {
			case OpConcat:
				out = append(out, '.')
			case OpUnion:
				out = append(out, '|')
			case OpStar:
				out = append(out, '*')
			case OpPlus:
				out = append(out, '+')
			case OpQuestion:
				out = append(out, '?')
			}
			continue
		}
		out = append(out, byte(s.Char()))
	}
	return string(out)
}

func shuntPipeline(t *testing.T, expr string) string {
	t.Helper()
	symbols, err := Lex(expr)
	if err != nil {
		t.Fatalf("Lex(%q) failed: %v", expr, err)
	}
	symbols, err = ExpandClasses(symbols)
	if err != nil {
		t.Fatalf("ExpandClasses(%q) failed: %v", expr, err)
	}
	symbols = InsertConcat(symbols)
	postfix, err := Shunt(symbols)
	if err != nil {
		t.Fatalf("Shunt(%q) failed: %v", expr, err)
	}
	return postfixString(postfix)
}

func TestShuntConcatBindsTighterThanUnion(t *testing.T) {
	got := shuntPipeline(t, "a|bc")
	want := "abc.|" // a | (b.c) -> postfix: a b c . |
	if got != want {
		t.Errorf("Shunt(%q) = %q, want %q", "a|bc", got, want)
	}
}

func TestShuntParensOverridePrecedence(t *testing.T) {
	got := shuntPipeline(t, "(a|b)c")
	want := "ab|c."
	if got != want {
		t.Errorf("Shunt(%q) = %q, want %q", "(a|b)c", got, want)
	}
}

func TestShuntPostfixOperator(t *testing.T) {
	got := shuntPipeline(t, "a*b")
	want := "a*b."
	if got != want {
		t.Errorf("Shunt(%q) = %q, want %q", "a*b", got, want)
	}
}

func TestShuntUnbalancedParen(t *testing.T) {
	symbols, err := Lex("(a")
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if _, err := Shunt(symbols); !errors.Is(err, spagerr.ErrUnbalancedParen) {
		t.Fatalf("got %v, want ErrUnbalancedParen", err)
	}

	symbols, err = Lex("a)")
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	if _, err := Shunt(symbols); !errors.Is(err, spagerr.ErrUnbalancedParen) {
		t.Fatalf("got %v, want ErrUnbalancedParen", err)
	}
}
