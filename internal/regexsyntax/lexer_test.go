package regexsyntax

import (
	"errors"
	"testing"

	"github.com/rrozansk/spag-go/internal/spagerr"
)

func TestLexLiteralsAndOperators(t *testing.T) {
	symbols, err := Lex("a|b*")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	want := []Symbol{Char('a'), Operator(OpUnion), Char('b'), Operator(OpStar)}
	if len(symbols) != len(want) {
		t.Fatalf("got %d symbols, want %d", len(symbols), len(want))
	}
	for i := range want {
		if symbols[i] != want[i] {
			t.Errorf("symbol %d: got %v, want %v", i, symbols[i], want[i])
		}
	}
}

func TestLexEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want rune
	}{
		{`\*`, '*'},
		{`\\`, '\\'},
		{`\s`, ' '},
		{`\n`, '\n'},
	}
	for _, tc := range cases {
		symbols, err := Lex(tc.in)
		if err != nil {
			t.Fatalf("Lex(%q) returned error: %v", tc.in, err)
		}
		if len(symbols) != 1 || symbols[0].IsOperator() || symbols[0].Char() != tc.want {
			t.Errorf("Lex(%q) = %v, want single literal %q", tc.in, symbols, tc.want)
		}
	}
}

func TestLexInvalidEscape(t *testing.T) {
	_, err := Lex(`\z`)
	if !errors.Is(err, spagerr.ErrInvalidEscape) {
		t.Fatalf("got %v, want ErrInvalidEscape", err)
	}
}

func TestLexEmptyEscape(t *testing.T) {
	_, err := Lex(`a\`)
	if !errors.Is(err, spagerr.ErrEmptyEscape) {
		t.Fatalf("got %v, want ErrEmptyEscape", err)
	}
}

func TestLexUnrecognizedCharacter(t *testing.T) {
	_, err := Lex("a\x01b")
	if !errors.Is(err, spagerr.ErrUnrecognizedCharacter) {
		t.Fatalf("got %v, want ErrUnrecognizedCharacter", err)
	}
}

func TestLexBracketsPassThrough(t *testing.T) {
	symbols, err := Lex("[a-z]")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	if !symbols[0].Is(OpLBracket) || !symbols[len(symbols)-1].Is(OpRBracket) {
		t.Errorf("Lex(%q) = %v, want brackets preserved", "[a-z]", symbols)
	}
}
