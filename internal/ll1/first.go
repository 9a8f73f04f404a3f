// Package ll1 computes FIRST and FOLLOW sets over a grammar.Cfg and builds
// the resulting LL(1) predictive parse table.
package ll1

import "github.com/rrozansk/spag-go/internal/grammar"

// FirstSets holds FIRST(A) for every nonterminal A of a grammar.
type FirstSets struct {
	sets map[string]map[grammar.Symbol]bool
}

// Get returns FIRST(nonterminal).
func (f *FirstSets) Get(nonterminal string) map[grammar.Symbol]bool {
	return f.sets[nonterminal]
}

// OfSequence computes FIRST(rule) per §4.12: seed with {EPSILON}; for each
// symbol in order add FIRST(symbol); stop accumulating once a symbol whose
// FIRST set excludes EPSILON is reached, discarding EPSILON from the
// result in that case.
func (f *FirstSets) OfSequence(rule []grammar.Symbol) map[grammar.Symbol]bool {
	out := map[grammar.Symbol]bool{grammar.Epsilon: true}
	for _, sym := range rule {
		firstOfSym := f.of(sym)
		nullable := firstOfSym[grammar.Epsilon]
		for s := range firstOfSym {
			if s != grammar.Epsilon {
				out[s] = true
			}
		}
		if !nullable {
			delete(out, grammar.Epsilon)
			return out
		}
	}
	return out
}

func (f *FirstSets) of(sym grammar.Symbol) map[grammar.Symbol]bool {
	if sym.IsTerminal() {
		return map[grammar.Symbol]bool{sym: true}
	}
	return f.sets[sym.Name()]
}

// ComputeFirstSets runs the fixed-point FIRST computation to convergence.
// A single dirty flag per outer pass is sufficient since the recurrence is
// monotone.
func ComputeFirstSets(g *grammar.Cfg) *FirstSets {
	f := &FirstSets{sets: make(map[string]map[grammar.Symbol]bool, len(g.Nonterminals))}
	for nt := range g.Nonterminals {
		f.sets[nt] = map[grammar.Symbol]bool{}
	}

	for {
		changed := false
		for _, p := range g.Productions {
			for sym := range f.OfSequence(p.Rule) {
				if !f.sets[p.Nonterminal][sym] {
					f.sets[p.Nonterminal][sym] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return f
}
