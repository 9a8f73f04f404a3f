package automata

import (
	"errors"
	"testing"

	"github.com/rrozansk/spag-go/internal/idgen"
	"github.com/rrozansk/spag-go/internal/regexsyntax"
	"github.com/rrozansk/spag-go/internal/spagerr"
)

func compile(t *testing.T, pattern string) []regexsyntax.Symbol {
	t.Helper()
	symbols, err := regexsyntax.Lex(pattern)
	if err != nil {
		t.Fatalf("Lex(%q) failed: %v", pattern, err)
	}
	symbols, err = regexsyntax.ExpandClasses(symbols)
	if err != nil {
		t.Fatalf("ExpandClasses(%q) failed: %v", pattern, err)
	}
	symbols = regexsyntax.InsertConcat(symbols)
	postfix, err := regexsyntax.Shunt(symbols)
	if err != nil {
		t.Fatalf("Shunt(%q) failed: %v", pattern, err)
	}
	return postfix
}

func buildDfa(t *testing.T, tokens map[string]string) *Dfa {
	t.Helper()
	gen := &idgen.Gen{}
	fragments := make(map[string]*Nfa, len(tokens))
	for name, pattern := range tokens {
		frag, err := BuildFragment(gen, name, compile(t, pattern))
		if err != nil {
			t.Fatalf("BuildFragment(%q) failed: %v", pattern, err)
		}
		fragments[name] = frag
	}
	merged := Union(gen, fragments)
	raw := SubsetConstruct(merged)
	total := Totalize(raw, gen)
	minimized := Minimize(total)
	return Rename(minimized, gen)
}

// TestBuildFragmentMalformedExpression covers §4.5's operand-count check:
// an operator with too few operands on the stack fails.
func TestBuildFragmentMalformedExpression(t *testing.T) {
	gen := &idgen.Gen{}
	_, err := BuildFragment(gen, "x", []regexsyntax.Symbol{regexsyntax.Operator(regexsyntax.OpUnion)})
	if !errors.Is(err, spagerr.ErrMalformedExpression) {
		t.Fatalf("got %v, want ErrMalformedExpression", err)
	}
}

func TestBuildFragmentLeavesExactlyOneFragment(t *testing.T) {
	gen := &idgen.Gen{}
	postfix := compile(t, "ab")
	frag, err := BuildFragment(gen, "tok", postfix)
	if err != nil {
		t.Fatalf("BuildFragment failed: %v", err)
	}
	if len(frag.Finals) != 1 {
		t.Fatalf("expected exactly one final state, got %d", len(frag.Finals))
	}
	if !frag.Types["tok"][mustOnlyFinal(t, frag)] {
		t.Errorf("Types[tok] does not tag the fragment's final state")
	}
}

func mustOnlyFinal(t *testing.T, frag *Nfa) StateID {
	t.Helper()
	for f := range frag.Finals {
		return f
	}
	t.Fatal("fragment has no final state")
	return 0
}

// TestSingleLiteralDfa is §8 scenario 1: {alpha: "a"} compiles to a 3-state
// totalized DFA (start, accept, sink) over a 1-symbol alphabet.
func TestSingleLiteralDfa(t *testing.T) {
	dfa := buildDfa(t, map[string]string{"alpha": "a"})

	if len(dfa.States) != 3 {
		t.Fatalf("|Q| = %d, want 3", len(dfa.States))
	}
	if len(dfa.Alphabet) != 1 {
		t.Fatalf("|V| = %d, want 1", len(dfa.Alphabet))
	}
	if len(dfa.Finals) != 1 {
		t.Fatalf("|F| = %d, want 1", len(dfa.Finals))
	}
	if len(dfa.Types["alpha"]) != 1 {
		t.Fatalf("G[alpha] = %v, want a single accepting state", dfa.Types["alpha"])
	}
	if len(dfa.Types["_sink"]) != 1 {
		t.Fatalf("G[_sink] = %v, want a single sink state", dfa.Types["_sink"])
	}
}

// TestAlternationMergesAccepts is §8 scenario 2: {alt: "a|b"} minimizes to
// 3 states (start, combined accept, sink); both a and b lead to the same
// accept state, and everything from accept/sink goes to sink.
func TestAlternationMergesAccepts(t *testing.T) {
	dfa := buildDfa(t, map[string]string{"alt": "a|b"})

	if len(dfa.States) != 3 {
		t.Fatalf("|Q| = %d, want 3", len(dfa.States))
	}
	if len(dfa.Alphabet) != 2 {
		t.Fatalf("|V| = %d, want 2", len(dfa.Alphabet))
	}
	if len(dfa.Finals) != 1 {
		t.Fatalf("|F| = %d, want 1 (a and b share the same accept state)", len(dfa.Finals))
	}

	aSym, bSym := rune('a'), rune('b')
	aCol, bCol := dfa.SymIdx[aSym], dfa.SymIdx[bSym]
	startIdx := dfa.StateIdx[dfa.Start]
	destOnA := dfa.Table[aCol][startIdx]
	destOnB := dfa.Table[bCol][startIdx]
	if destOnA != destOnB {
		t.Errorf("transitions on 'a' and 'b' from start should land on the same accept state, got %s and %s", destOnA, destOnB)
	}
	if !dfa.Finals[destOnA] {
		t.Errorf("destination state %s should be accepting", destOnA)
	}

	// Every transition out of the accept state and the sink goes to the sink.
	sinkState := onlySinkState(t, dfa)
	for _, col := range []int{aCol, bCol} {
		if dfa.Table[col][dfa.StateIdx[destOnA]] != sinkState {
			t.Errorf("accept state should trap to sink on further input")
		}
		if dfa.Table[col][dfa.StateIdx[sinkState]] != sinkState {
			t.Errorf("sink state should self-loop")
		}
	}
}

func onlySinkState(t *testing.T, dfa *Dfa) string {
	t.Helper()
	for s := range dfa.Types["_sink"] {
		return s
	}
	t.Fatal("no sink state present")
	return ""
}

// TestKleeneStarIsOneState is §8 scenario 3: {star: "a*"} needs no sink
// because the table is already total with a single self-looping state.
func TestKleeneStarIsOneState(t *testing.T) {
	dfa := buildDfa(t, map[string]string{"star": "a*"})

	if len(dfa.States) != 1 {
		t.Fatalf("|Q| = %d, want 1", len(dfa.States))
	}
	if !dfa.Finals[dfa.Start] {
		t.Errorf("the single state must be accepting")
	}
	if len(dfa.Types["_sink"]) != 0 {
		t.Errorf("no sink state should be introduced when the table is already total, got %v", dfa.Types["_sink"])
	}
	aCol := dfa.SymIdx['a']
	if dfa.Table[aCol][dfa.StateIdx[dfa.Start]] != dfa.Start {
		t.Errorf("'a' from the single state must loop back to itself")
	}
}

// TestClassNegationIsWhitespace is §8 scenario 4: {white: "[^!-~]*"} accepts
// exactly strings of printable whitespace, as a single self-looping state.
func TestClassNegationIsWhitespace(t *testing.T) {
	dfa := buildDfa(t, map[string]string{"white": "[^!-~]*"})

	if len(dfa.States) != 1 {
		t.Fatalf("|Q| = %d, want 1", len(dfa.States))
	}
	if !dfa.Finals[dfa.Start] {
		t.Errorf("the single state must be accepting")
	}
	for _, ws := range []rune{' ', '\t', '\n', '\r', '\f', '\v'} {
		col, ok := dfa.SymIdx[ws]
		if !ok {
			t.Fatalf("alphabet missing whitespace rune %q", ws)
		}
		if dfa.Table[col][dfa.StateIdx[dfa.Start]] != dfa.Start {
			t.Errorf("whitespace rune %q should self-loop", ws)
		}
	}
	if len(dfa.Alphabet) != 6 {
		t.Errorf("|V| = %d, want exactly the 6 whitespace runes", len(dfa.Alphabet))
	}
}

// TestTotalizeProducesTotalFunction is testable-property invariant 1.
func TestTotalizeProducesTotalFunction(t *testing.T) {
	dfa := buildDfa(t, map[string]string{"a": "a", "b": "b|c", "rep": "d+"})
	want := len(dfa.Alphabet) * len(dfa.States)
	got := 0
	for _, row := range dfa.Table {
		got += len(row)
	}
	if got != want {
		t.Fatalf("transition table has %d entries, want %d (|V|*|Q|)", got, want)
	}
}

// TestMinimizeReducesEquivalentStates checks that two syntactically
// different but semantically identical token definitions still collapse
// under Hopcroft minimization (testable-property invariant 2, the
// contrapositive: equivalent states are merged, not merely "not
// incorrectly split").
func TestMinimizeReducesEquivalentStates(t *testing.T) {
	dfa := buildDfa(t, map[string]string{"same": "(a|a)|a"})
	// (a|a)|a accepts exactly the one-character string "a": start, accept,
	// sink, same as the plain literal "a" scenario.
	if len(dfa.States) != 3 {
		t.Fatalf("|Q| = %d, want 3 for a redundantly-expressed single literal", len(dfa.States))
	}
}
