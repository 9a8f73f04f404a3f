package ll1

import (
	"sort"

	"github.com/rrozansk/spag-go/internal/grammar"
)

// cell is the parse table's payload type: a set of rule indices. Cardinality
// greater than one marks an LL(1) conflict at that (nonterminal, terminal)
// coordinate.
type cell map[int]bool

// Table is the LL(1) predictive parse table. Rows are nonterminals;
// columns are terminals plus END_OF_INPUT.
type Table struct {
	cells map[string]map[grammar.Symbol]cell
}

// Get returns the set of rule indices at (nonterminal, lookahead).
func (t *Table) Get(nonterminal string, lookahead grammar.Symbol) map[int]bool {
	return t.cells[nonterminal][lookahead]
}

// Conflict names one (nonterminal, lookahead) coordinate whose cell holds
// more than one rule index.
type Conflict struct {
	Nonterminal string
	Lookahead   grammar.Symbol
	Rules       []int
}

// BuildTable constructs the LL(1) parse table via predict sets, per §4.14.
// The table is always returned in full, even when conflicts exist; callers
// inspect conflicts to decide whether the grammar is LL(1).
func BuildTable(g *grammar.Cfg, first *FirstSets, follow *FollowSets) (*Table, []Conflict) {
	t := &Table{cells: make(map[string]map[grammar.Symbol]cell, len(g.Nonterminals))}
	for nt := range g.Nonterminals {
		t.cells[nt] = map[grammar.Symbol]cell{}
	}

	for k, p := range g.Productions {
		predict := first.OfSequence(p.Rule)
		nullable := predict[grammar.Epsilon]
		delete(predict, grammar.Epsilon)
		if nullable {
			for s := range follow.Get(p.Nonterminal) {
				predict[s] = true
			}
		}
		for lookahead := range predict {
			row := t.cells[p.Nonterminal]
			if row[lookahead] == nil {
				row[lookahead] = cell{}
			}
			row[lookahead][k] = true
		}
	}

	var conflicts []Conflict
	for nt, row := range t.cells {
		for lookahead, c := range row {
			if len(c) > 1 {
				rules := make([]int, 0, len(c))
				for k := range c {
					rules = append(rules, k)
				}
				sort.Ints(rules)
				conflicts = append(conflicts, Conflict{Nonterminal: nt, Lookahead: lookahead, Rules: rules})
			}
		}
	}

	return t, conflicts
}
