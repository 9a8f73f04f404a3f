package automata

import "github.com/bits-and-blooms/bitset"

// MinimizedDFA mirrors TotalDFA's shape after Hopcroft partition
// refinement: each partition of equivalent TotalDFA states becomes one
// new state, indexed by its position in Partitions.
type MinimizedDFA struct {
	Partitions []*bitset.BitSet // index = new state id; bits = old TotalDFA state indices
	Alphabet   []rune
	SymIdx     map[rune]int
	Table      [][]int // Table[symIdx][partitionIdx] -> partitionIdx
	Start      int
	Finals     map[int]bool
	Types      map[string]map[int]bool
}

// Minimize collapses equivalent states of a total DFA via Hopcroft's
// partition-refinement algorithm, preserving the sink state's distinct
// identity whenever it is not equivalent to another state.
func Minimize(d *TotalDFA) *MinimizedDFA {
	n := uint(len(d.States))

	finals := bitset.New(n)
	for s := range d.Finals {
		finals.Set(uint(d.StateIdx[s]))
	}
	all := bitset.New(n)
	for i := uint(0); i < n; i++ {
		all.Set(i)
	}
	nonFinals := all.Difference(finals)

	var partitions []*bitset.BitSet
	var worklist []*bitset.BitSet
	if finals.Count() > 0 {
		partitions = append(partitions, finals)
		worklist = append(worklist, finals)
	}
	if nonFinals.Count() > 0 {
		partitions = append(partitions, nonFinals)
	}

	indexOf := func(set []*bitset.BitSet, b *bitset.BitSet) int {
		for i, p := range set {
			if p.Equal(b) {
				return i
			}
		}
		return -1
	}

	for len(worklist) > 0 {
		selector := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for symIdx := range d.Alphabet {
			x := bitset.New(n)
			for q := uint(0); q < n; q++ {
				dest := d.Table[symIdx][q]
				if selector.Test(uint(d.StateIdx[dest])) {
					x.Set(q)
				}
			}
			if x.Count() == 0 {
				continue
			}

			var refined []*bitset.BitSet
			for _, part := range partitions {
				split1 := part.Intersection(x)
				split2 := part.Difference(x)
				if split1.Count() == 0 || split2.Count() == 0 {
					refined = append(refined, part)
					continue
				}
				refined = append(refined, split1, split2)
				if wi := indexOf(worklist, part); wi >= 0 {
					worklist[wi] = split1
					worklist = append(worklist, split2)
				} else if split1.Count() <= split2.Count() {
					worklist = append(worklist, split1)
				} else {
					worklist = append(worklist, split2)
				}
			}
			partitions = refined
		}
	}

	partIndexOf := func(oldStateIdx uint) int {
		for i, p := range partitions {
			if p.Test(oldStateIdx) {
				return i
			}
		}
		return -1
	}

	table := make([][]int, len(d.Alphabet))
	for symIdx := range d.Alphabet {
		table[symIdx] = make([]int, len(partitions))
		for pIdx, part := range partitions {
			first, ok := part.NextSet(0)
			if !ok {
				continue
			}
			dest := d.Table[symIdx][first]
			table[symIdx][pIdx] = partIndexOf(uint(d.StateIdx[dest]))
		}
	}

	start := partIndexOf(uint(d.StateIdx[d.Start]))

	finalsOut := map[int]bool{}
	for i, part := range partitions {
		if part.IntersectionCardinality(finals) > 0 {
			finalsOut[i] = true
		}
	}

	types := map[string]map[int]bool{}
	for name, oldStates := range d.Types {
		types[name] = map[int]bool{}
		for oldKey := range oldStates {
			pIdx := partIndexOf(uint(d.StateIdx[oldKey]))
			types[name][pIdx] = true
		}
	}

	return &MinimizedDFA{
		Partitions: partitions,
		Alphabet:   d.Alphabet,
		SymIdx:     d.SymIdx,
		Table:      table,
		Start:      start,
		Finals:     finalsOut,
		Types:      types,
	}
}
