// Package automata implements the NFA/DFA half of the scanner pipeline:
// Thompson construction per token, NFA union, subset construction,
// totalization with a sink state, Hopcroft minimization, and the final
// alpha-rename pass that gives consumers opaque state labels.
package automata

import (
	"github.com/rrozansk/spag-go/internal/idgen"
	"github.com/rrozansk/spag-go/internal/regexsyntax"
	"github.com/rrozansk/spag-go/internal/spagerr"
)

// StateID uniquely labels a state within an Nfa under construction.
type StateID uint64

// Nfa is a Thompson-constructed epsilon-NFA fragment (single start/final),
// or the merged automaton produced by Union (single start, many finals).
type Nfa struct {
	States   map[StateID]bool
	Alphabet map[rune]bool
	Trans    map[StateID]map[rune][]StateID
	Epsilon  map[StateID][]StateID
	Start    StateID
	Finals   map[StateID]bool
	Types    map[string]map[StateID]bool // token name -> final state(s)
}

func newNfa() *Nfa {
	return &Nfa{
		States:   map[StateID]bool{},
		Alphabet: map[rune]bool{},
		Trans:    map[StateID]map[rune][]StateID{},
		Epsilon:  map[StateID][]StateID{},
		Finals:   map[StateID]bool{},
		Types:    map[string]map[StateID]bool{},
	}
}

func (n *Nfa) addEpsilon(from, to StateID) {
	n.Epsilon[from] = append(n.Epsilon[from], to)
}

func (n *Nfa) addTrans(from StateID, on rune, to StateID) {
	n.Alphabet[on] = true
	if n.Trans[from] == nil {
		n.Trans[from] = map[rune][]StateID{}
	}
	n.Trans[from][on] = append(n.Trans[from][on], to)
}

// fragment is one operand on the evaluation stack: the start/final pair of
// a partially-built machine.
type fragment struct{ start, final StateID }

// BuildFragment evaluates a postfix regular expression on a fragment stack,
// per Thompson's construction, and tags the sole remaining fragment's final
// state with tokenName.
func BuildFragment(gen *idgen.Gen, tokenName string, postfix []regexsyntax.Symbol) (*Nfa, error) {
	n := newNfa()
	var stack []fragment

	fresh := func() StateID {
		id := StateID(gen.Next())
		n.States[id] = true
		return id
	}
	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}
	pop2 := func() (fragment, fragment, bool) {
		b, ok := pop()
		if !ok {
			return fragment{}, fragment{}, false
		}
		a, ok := pop()
		return a, b, ok
	}

	for _, sym := range postfix {
		if !sym.IsOperator() {
			s, f := fresh(), fresh()
			n.addTrans(s, sym.Char(), f)
			stack = append(stack, fragment{s, f})
			continue
		}

		switch sym.Operator() {
		case regexsyntax.OpConcat:
			a, b, ok := pop2()
			if !ok {
				return nil, spagerr.ErrMalformedExpression
			}
			n.addEpsilon(a.final, b.start)
			stack = append(stack, fragment{a.start, b.final})

		case regexsyntax.OpUnion:
			a, b, ok := pop2()
			if !ok {
				return nil, spagerr.ErrMalformedExpression
			}
			s, f := fresh(), fresh()
			n.addEpsilon(s, a.start)
			n.addEpsilon(s, b.start)
			n.addEpsilon(a.final, f)
			n.addEpsilon(b.final, f)
			stack = append(stack, fragment{s, f})

		case regexsyntax.OpStar:
			a, ok := pop()
			if !ok {
				return nil, spagerr.ErrMalformedExpression
			}
			s, f := fresh(), fresh()
			n.addEpsilon(s, a.start)
			n.addEpsilon(a.final, a.start)
			n.addEpsilon(a.final, f)
			n.addEpsilon(s, f)
			stack = append(stack, fragment{s, f})

		case regexsyntax.OpPlus:
			a, ok := pop()
			if !ok {
				return nil, spagerr.ErrMalformedExpression
			}
			s, f := fresh(), fresh()
			n.addEpsilon(s, a.start)
			n.addEpsilon(a.final, a.start)
			n.addEpsilon(a.final, f)
			stack = append(stack, fragment{s, f})

		case regexsyntax.OpQuestion:
			a, ok := pop()
			if !ok {
				return nil, spagerr.ErrMalformedExpression
			}
			s, f := fresh(), fresh()
			n.addEpsilon(s, a.start)
			n.addEpsilon(s, f)
			n.addEpsilon(a.final, f)
			stack = append(stack, fragment{s, f})

		default:
			return nil, spagerr.ErrMalformedExpression
		}
	}

	if len(stack) != 1 {
		return nil, spagerr.ErrMalformedExpression
	}
	top := stack[0]
	n.Start = top.start
	n.Finals[top.final] = true
	n.Types[tokenName] = map[StateID]bool{top.final: true}
	return n, nil
}
