package automata

import (
	"fmt"
	"sort"

	"github.com/rrozansk/spag-go/internal/idgen"
)

const sinkTypeName = "_sink"

// TotalDFA is a DFA with a guaranteed-total transition function, expressed
// as a dense table indexed by interned state and symbol positions.
type TotalDFA struct {
	States   []string
	StateIdx map[string]int
	Alphabet []rune
	SymIdx   map[rune]int
	Table    [][]string // Table[symIdx][stateIdx] -> dest state key
	Start    string
	Finals   map[string]bool
	Types    map[string]map[string]bool
}

// Totalize extends a RawDFA's transition function to be total by routing
// every previously-unmapped (state, symbol) pair to a single fresh sink
// state. If the table was already total, no sink is added.
func Totalize(d *RawDFA, gen *idgen.Gen) *TotalDFA {
	alphabet := make([]rune, 0, len(d.alphabet))
	for r := range d.alphabet {
		alphabet = append(alphabet, r)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	defined := 0
	for _, byChar := range d.trans {
		defined += len(byChar)
	}

	states := append([]string(nil), d.order...)
	types := copyTypes(d.types)

	sink := ""
	if defined != len(states)*len(alphabet) {
		sink = fmt.Sprintf("sink#%d", gen.Next())
		states = append(states, sink)
		types[sinkTypeName] = map[string]bool{sink: true}
	}

	stateIdx := make(map[string]int, len(states))
	for i, s := range states {
		stateIdx[s] = i
	}
	symIdx := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		symIdx[r] = i
	}

	table := make([][]string, len(alphabet))
	for i := range table {
		table[i] = make([]string, len(states))
		for j := range table[i] {
			table[i][j] = sink
		}
	}
	for state, byChar := range d.trans {
		for on, dest := range byChar {
			table[symIdx[on]][stateIdx[state]] = dest
		}
	}

	return &TotalDFA{
		States:   states,
		StateIdx: stateIdx,
		Alphabet: alphabet,
		SymIdx:   symIdx,
		Table:    table,
		Start:    d.start,
		Finals:   d.finals,
		Types:    types,
	}
}

func copyTypes(in map[string]map[string]bool) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(in))
	for name, states := range in {
		cp := make(map[string]bool, len(states))
		for s := range states {
			cp[s] = true
		}
		out[name] = cp
	}
	return out
}
