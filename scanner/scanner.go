// Package scanner compiles a named set of regular expressions into a
// minimal, totalized DFA: the full ExprLexer -> ClassExpander ->
// ConcatInserter -> Shunter -> ThompsonBuilder -> NfaUnion ->
// SubsetConstructor -> Totalizer -> Hopcroft -> AlphaRenamer pipeline,
// exposed as a single immutable ScannerArtifact.
package scanner

import (
	"fmt"

	"github.com/rrozansk/spag-go/internal/automata"
	"github.com/rrozansk/spag-go/internal/idgen"
	"github.com/rrozansk/spag-go/internal/regexsyntax"
	"github.com/rrozansk/spag-go/internal/spagerr"
)

// ScannerArtifact is the immutable, thread-safe result of compiling a
// scanner specification. Every accessor returns a freshly copied view; no
// caller can observe another caller's mutation of the returned value.
type ScannerArtifact struct {
	name        string
	expressions map[string]string
	dfa         *automata.Dfa
}

// New compiles name and expressions (token name -> pattern) into a
// ScannerArtifact. Both name and every key/value of expressions must be
// non-empty.
func New(name string, expressions map[string]string) (*ScannerArtifact, error) {
	if name == "" {
		return nil, spagerr.ErrInvalidName
	}
	if len(expressions) == 0 {
		return nil, spagerr.ErrInvalidSpecification
	}

	gen := idgen.Default
	fragments := make(map[string]*automata.Nfa, len(expressions))

	for tokenName, pattern := range expressions {
		if tokenName == "" {
			return nil, spagerr.ErrInvalidName
		}
		if pattern == "" {
			return nil, spagerr.ErrEmptyPattern
		}

		symbols, err := regexsyntax.Lex(pattern)
		if err != nil {
			return nil, fmt.Errorf("scanner: token %q: %w", tokenName, err)
		}
		symbols, err = regexsyntax.ExpandClasses(symbols)
		if err != nil {
			return nil, fmt.Errorf("scanner: token %q: %w", tokenName, err)
		}
		symbols = regexsyntax.InsertConcat(symbols)
		postfix, err := regexsyntax.Shunt(symbols)
		if err != nil {
			return nil, fmt.Errorf("scanner: token %q: %w", tokenName, err)
		}

		frag, err := automata.BuildFragment(gen, tokenName, postfix)
		if err != nil {
			return nil, fmt.Errorf("scanner: token %q: %w", tokenName, err)
		}
		fragments[tokenName] = frag
	}

	merged := automata.Union(gen, fragments)
	raw := automata.SubsetConstruct(merged)
	total := automata.Totalize(raw, gen)
	minimized := automata.Minimize(total)
	dfa := automata.Rename(minimized, gen)

	exprCopy := make(map[string]string, len(expressions))
	for k, v := range expressions {
		exprCopy[k] = v
	}

	return &ScannerArtifact{name: name, expressions: exprCopy, dfa: dfa}, nil
}

// Name returns the scanner's name.
func (a *ScannerArtifact) Name() string { return a.name }

// Expressions returns a copy of the original token-name -> pattern map.
func (a *ScannerArtifact) Expressions() map[string]string {
	out := make(map[string]string, len(a.expressions))
	for k, v := range a.expressions {
		out[k] = v
	}
	return out
}

// Q returns a copy of the DFA's state set.
func (a *ScannerArtifact) Q() []string {
	out := make([]string, len(a.dfa.States))
	copy(out, a.dfa.States)
	return out
}

// V returns a copy of the DFA's alphabet.
func (a *ScannerArtifact) V() []rune {
	out := make([]rune, len(a.dfa.Alphabet))
	copy(out, a.dfa.Alphabet)
	return out
}

// T returns copies of the transition table's state index, symbol index,
// and dense table, indexed as Table[symIdx][stateIdx].
func (a *ScannerArtifact) T() (stateIdx map[string]int, symIdx map[rune]int, table [][]string) {
	stateIdx = make(map[string]int, len(a.dfa.StateIdx))
	for k, v := range a.dfa.StateIdx {
		stateIdx[k] = v
	}
	symIdx = make(map[rune]int, len(a.dfa.SymIdx))
	for k, v := range a.dfa.SymIdx {
		symIdx[k] = v
	}
	table = make([][]string, len(a.dfa.Table))
	for i, row := range a.dfa.Table {
		table[i] = make([]string, len(row))
		copy(table[i], row)
	}
	return stateIdx, symIdx, table
}

// S returns the start state.
func (a *ScannerArtifact) S() string { return a.dfa.Start }

// F returns a copy of the accepting state set.
func (a *ScannerArtifact) F() map[string]bool {
	out := make(map[string]bool, len(a.dfa.Finals))
	for k, v := range a.dfa.Finals {
		out[k] = v
	}
	return out
}

// G returns a copy of the token-name -> accepting-state-set map, including
// the "_sink" entry when the transition function required totalization.
func (a *ScannerArtifact) G() map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(a.dfa.Types))
	for name, states := range a.dfa.Types {
		cp := make(map[string]bool, len(states))
		for s := range states {
			cp[s] = true
		}
		out[name] = cp
	}
	return out
}
