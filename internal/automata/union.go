package automata

import "github.com/rrozansk/spag-go/internal/idgen"

// Union merges a set of per-token NFA fragments into a single automaton
// with a fresh start state epsilon-connected to every fragment's start,
// per the scanner's merge step.
func Union(gen *idgen.Gen, fragments map[string]*Nfa) *Nfa {
	merged := newNfa()
	start := StateID(gen.Next())
	merged.States[start] = true
	merged.Start = start

	for _, frag := range fragments {
		for id := range frag.States {
			merged.States[id] = true
		}
		for on := range frag.Alphabet {
			merged.Alphabet[on] = true
		}
		for from, byChar := range frag.Trans {
			for on, tos := range byChar {
				for _, to := range tos {
					merged.addTrans(from, on, to)
				}
			}
		}
		for from, tos := range frag.Epsilon {
			merged.Epsilon[from] = append(merged.Epsilon[from], tos...)
		}
		merged.addEpsilon(start, frag.Start)
		for f := range frag.Finals {
			merged.Finals[f] = true
		}
		for name, states := range frag.Types {
			if merged.Types[name] == nil {
				merged.Types[name] = map[StateID]bool{}
			}
			for s := range states {
				merged.Types[name][s] = true
			}
		}
	}
	return merged
}
