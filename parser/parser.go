// Package parser compiles a named BNF-style context-free grammar into an
// LL(1) predictive parse table: CfgIngest -> FirstSolver -> FollowSolver ->
// TableBuilder, exposed as a single immutable ParserArtifact.
package parser

import (
	"github.com/rrozansk/spag-go/internal/grammar"
	"github.com/rrozansk/spag-go/internal/ll1"
)

// ParserArtifact is the immutable, thread-safe result of compiling a
// grammar specification. Every accessor returns a freshly copied view.
// The artifact is produced even when the grammar is not LL(1); callers
// use Conflicts to detect that case.
type ParserArtifact struct {
	name  string
	cfg   *grammar.Cfg
	first *ll1.FirstSets
	follow *ll1.FollowSets
	table *ll1.Table
	conflicts []ll1.Conflict
}

// New compiles name, productions (nonterminal -> ordered rule list, each
// rule an ordered list of symbol names), and start into a ParserArtifact.
func New(name string, productions map[string][][]string, start string) (*ParserArtifact, error) {
	cfg, err := grammar.Ingest(name, start, productions)
	if err != nil {
		return nil, err
	}

	first := ll1.ComputeFirstSets(cfg)
	follow := ll1.ComputeFollowSets(cfg, first)
	table, conflicts := ll1.BuildTable(cfg, first, follow)

	return &ParserArtifact{
		name:      name,
		cfg:       cfg,
		first:     first,
		follow:    follow,
		table:     table,
		conflicts: conflicts,
	}, nil
}

// Name returns the grammar's name.
func (a *ParserArtifact) Name() string { return a.name }

// Start returns the start nonterminal.
func (a *ParserArtifact) Start() string { return a.cfg.Start }

// Terminals returns a copy of the terminal set.
func (a *ParserArtifact) Terminals() map[string]bool {
	return copyStringSet(a.cfg.Terminals)
}

// Nonterminals returns a copy of the nonterminal set.
func (a *ParserArtifact) Nonterminals() map[string]bool {
	return copyStringSet(a.cfg.Nonterminals)
}

// Rules returns a copy of the flattened production list; the slice index
// is the rule's numeric identifier used by Table.
func (a *ParserArtifact) Rules() []grammar.Production {
	out := make([]grammar.Production, len(a.cfg.Productions))
	for i, p := range a.cfg.Productions {
		out[i] = grammar.Production{Nonterminal: p.Nonterminal, Rule: append([]grammar.Symbol(nil), p.Rule...)}
	}
	return out
}

// First returns a copy of FIRST(nonterminal).
func (a *ParserArtifact) First(nonterminal string) map[grammar.Symbol]bool {
	return copySymbolSet(a.first.Get(nonterminal))
}

// Follow returns a copy of FOLLOW(nonterminal).
func (a *ParserArtifact) Follow(nonterminal string) map[grammar.Symbol]bool {
	return copySymbolSet(a.follow.Get(nonterminal))
}

// Table returns a copy of the rule-index set at (nonterminal, lookahead).
func (a *ParserArtifact) Table(nonterminal string, lookahead grammar.Symbol) map[int]bool {
	cell := a.table.Get(nonterminal, lookahead)
	out := make(map[int]bool, len(cell))
	for k := range cell {
		out[k] = true
	}
	return out
}

// Conflicts returns a copy of the offending (nonterminal, lookahead, rules)
// coordinates where the table's cell cardinality exceeds one. An empty
// result means the grammar is LL(1).
func (a *ParserArtifact) Conflicts() []ll1.Conflict {
	out := make([]ll1.Conflict, len(a.conflicts))
	copy(out, a.conflicts)
	for i := range out {
		out[i].Rules = append([]int(nil), a.conflicts[i].Rules...)
	}
	return out
}

func copyStringSet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copySymbolSet(in map[grammar.Symbol]bool) map[grammar.Symbol]bool {
	out := make(map[grammar.Symbol]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
