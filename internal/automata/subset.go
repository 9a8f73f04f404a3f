package automata

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// nfaIndex interns a fragment's arbitrary 64-bit StateIDs into a dense
// 0..n-1 index space, letting epsilon closures be represented as bitsets
// rather than hash sets of unbounded labels.
type nfaIndex struct {
	idToIdx map[StateID]uint
	idxToID []StateID
}

func newNfaIndex(n *Nfa) *nfaIndex {
	idx := &nfaIndex{idToIdx: make(map[StateID]uint, len(n.States))}
	ids := make([]StateID, 0, len(n.States))
	for id := range n.States {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		idx.idToIdx[id] = uint(i)
		idx.idxToID = append(idx.idxToID, id)
	}
	return idx
}

// closureCache memoizes the epsilon closure of each individual NFA state,
// expressed as a bitset over the interned index space.
type closureCache struct {
	idx   *nfaIndex
	nfa   *Nfa
	cache map[uint]*bitset.BitSet
}

func newClosureCache(n *Nfa, idx *nfaIndex) *closureCache {
	return &closureCache{idx: idx, nfa: n, cache: map[uint]*bitset.BitSet{}}
}

func (c *closureCache) of(q StateID) *bitset.BitSet {
	start := c.idx.idToIdx[q]
	if b, ok := c.cache[start]; ok {
		return b
	}
	n := uint(len(c.idx.idxToID))
	closure := bitset.New(n)
	closure.Set(start)
	stack := []StateID{q}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range c.nfa.Epsilon[cur] {
			ni := c.idx.idToIdx[next]
			if !closure.Test(ni) {
				closure.Set(ni)
				stack = append(stack, next)
			}
		}
	}
	c.cache[start] = closure
	return closure
}

func bitsetKey(b *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		sb.WriteByte(',')
	}
	return sb.String()
}

// RawDFA is the pre-totalization DFA produced by subset construction:
// states are epsilon-closure bitsets over interned NFA indices, and the
// transition function need not yet be total.
type RawDFA struct {
	order    []string // discovery order; order[0] is the start state's key
	alphabet map[rune]bool
	trans    map[string]map[rune]string // state key -> symbol -> dest key
	start    string
	finals   map[string]bool
	types    map[string]map[string]bool // token name -> set of state keys
}

// SubsetConstruct computes the DFA reachable from the epsilon closure of
// merged.Start via the classic worklist powerset algorithm.
func SubsetConstruct(merged *Nfa) *RawDFA {
	idx := newNfaIndex(merged)
	closures := newClosureCache(merged, idx)
	n := uint(len(idx.idxToID))

	d := &RawDFA{
		alphabet: merged.Alphabet,
		trans:    map[string]map[rune]string{},
		finals:   map[string]bool{},
		types:    map[string]map[string]bool{},
	}

	startClosure := closures.of(merged.Start)
	d.start = bitsetKey(startClosure)

	type pending struct {
		key string
		set *bitset.BitSet
	}
	queue := []pending{{d.start, startClosure}}
	seen := map[string]bool{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur.key] {
			continue
		}
		seen[cur.key] = true
		d.order = append(d.order, cur.key)

		for f := range merged.Finals {
			if cur.set.Test(idx.idToIdx[f]) {
				d.finals[cur.key] = true
				break
			}
		}
		for name, nfaFinals := range merged.Types {
			for f := range nfaFinals {
				if cur.set.Test(idx.idToIdx[f]) {
					if d.types[name] == nil {
						d.types[name] = map[string]bool{}
					}
					d.types[name][cur.key] = true
					break
				}
			}
		}

		buckets := map[rune]*bitset.BitSet{}
		for i, ok := cur.set.NextSet(0); ok; i, ok = cur.set.NextSet(i + 1) {
			nfaState := idx.idxToID[i]
			for on, tos := range merged.Trans[nfaState] {
				if buckets[on] == nil {
					buckets[on] = bitset.New(n)
				}
				for _, to := range tos {
					buckets[on].InPlaceUnion(closures.of(to))
				}
			}
		}

		if len(buckets) > 0 {
			d.trans[cur.key] = map[rune]string{}
		}
		for on, bucket := range buckets {
			destKey := bitsetKey(bucket)
			d.trans[cur.key][on] = destKey
			if !seen[destKey] {
				queue = append(queue, pending{destKey, bucket})
			}
		}
	}

	return d
}
