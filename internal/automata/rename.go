package automata

import (
	"fmt"

	"github.com/rrozansk/spag-go/internal/idgen"
)

// Dfa is the fully minimized, totalized, alpha-renamed DFA produced by the
// scanner pipeline: a dense transition table over opaque state labels,
// ready to back a ScannerArtifact.
type Dfa struct {
	States   []string
	StateIdx map[string]int
	Alphabet []rune
	SymIdx   map[rune]int
	Table    [][]string // Table[symIdx][stateIdx] -> dest state label
	Start    string
	Finals   map[string]bool
	Types    map[string]map[string]bool
}

// Rename replaces every partition-index identity with a fresh opaque
// label, so consumers see stable short names unrelated to the bitset
// partitions used internally during minimization.
func Rename(m *MinimizedDFA, gen *idgen.Gen) *Dfa {
	labels := make([]string, len(m.Partitions))
	for i := range m.Partitions {
		labels[i] = fmt.Sprintf("q%d", gen.Next())
	}

	stateIdx := make(map[string]int, len(labels))
	for i, l := range labels {
		stateIdx[l] = i
	}

	table := make([][]string, len(m.Alphabet))
	for symIdx := range m.Alphabet {
		table[symIdx] = make([]string, len(labels))
		for pIdx := range labels {
			table[symIdx][pIdx] = labels[m.Table[symIdx][pIdx]]
		}
	}

	finals := map[string]bool{}
	for i := range m.Finals {
		finals[labels[i]] = true
	}

	types := map[string]map[string]bool{}
	for name, idxSet := range m.Types {
		types[name] = map[string]bool{}
		for i := range idxSet {
			types[name][labels[i]] = true
		}
	}

	return &Dfa{
		States:   labels,
		StateIdx: stateIdx,
		Alphabet: m.Alphabet,
		SymIdx:   m.SymIdx,
		Table:    table,
		Start:    labels[m.Start],
		Finals:   finals,
		Types:    types,
	}
}
