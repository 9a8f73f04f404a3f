package ll1

import "github.com/rrozansk/spag-go/internal/grammar"

// FollowSets holds FOLLOW(A) for every nonterminal A of a grammar.
type FollowSets struct {
	sets map[string]map[grammar.Symbol]bool
}

// Get returns FOLLOW(nonterminal).
func (f *FollowSets) Get(nonterminal string) map[grammar.Symbol]bool {
	return f.sets[nonterminal]
}

// ComputeFollowSets runs the fixed-point FOLLOW computation per §4.13.
func ComputeFollowSets(g *grammar.Cfg, first *FirstSets) *FollowSets {
	f := &FollowSets{sets: make(map[string]map[grammar.Symbol]bool, len(g.Nonterminals))}
	for nt := range g.Nonterminals {
		f.sets[nt] = map[grammar.Symbol]bool{}
	}
	f.sets[g.Start][grammar.EndOfInput] = true

	for {
		changed := false
		for _, p := range g.Productions {
			for i, sym := range p.Rule {
				if !sym.IsNonterminal() {
					continue
				}
				tail := first.OfSequence(p.Rule[i+1:])
				nullableTail := tail[grammar.Epsilon]

				for t := range tail {
					if t == grammar.Epsilon {
						continue
					}
					if !f.sets[sym.Name()][t] {
						f.sets[sym.Name()][t] = true
						changed = true
					}
				}
				if nullableTail {
					for t := range f.sets[p.Nonterminal] {
						if !f.sets[sym.Name()][t] {
							f.sets[sym.Name()][t] = true
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return f
}
