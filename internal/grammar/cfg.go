package grammar

import (
	"sort"

	"github.com/rrozansk/spag-go/internal/spagerr"
)

// Production is one grammar rule (nonterminal, rule-hand-side). An empty
// Rule denotes epsilon. A production's position in Cfg.Productions doubles
// as its numeric identifier in the parse table.
type Production struct {
	Nonterminal string
	Rule        []Symbol
}

// Cfg is a validated, flattened context-free grammar: the output of
// production ingestion and the shared input to FirstSolver, FollowSolver,
// and TableBuilder.
type Cfg struct {
	Name         string
	Start        string
	Productions  []Production
	Terminals    map[string]bool
	Nonterminals map[string]bool
}

// Ingest validates a raw grammar specification and flattens it into a Cfg.
// raw maps each nonterminal to its ordered list of rules; each rule is a
// (possibly empty) ordered list of symbol names.
func Ingest(name, start string, raw map[string][][]string) (*Cfg, error) {
	if name == "" || start == "" {
		return nil, spagerr.ErrInvalidName
	}
	if len(raw) == 0 {
		return nil, spagerr.ErrInvalidSpecification
	}

	nonterminals := make(map[string]bool, len(raw))
	for nt, rules := range raw {
		if nt == "" {
			return nil, spagerr.ErrEmptyNonterminal
		}
		if len(rules) == 0 {
			return nil, spagerr.ErrInvalidSpecification
		}
		nonterminals[nt] = true
	}
	if !nonterminals[start] {
		return nil, spagerr.ErrStartNotInProductions
	}

	keys := make([]string, 0, len(raw))
	for nt := range raw {
		keys = append(keys, nt)
	}
	sort.Strings(keys)

	var productions []Production
	terminals := map[string]bool{}
	for _, nt := range keys {
		for _, rawRule := range raw[nt] {
			rule := make([]Symbol, 0, len(rawRule))
			for _, sym := range rawRule {
				if sym == "" {
					return nil, spagerr.ErrEmptyRuleSymbol
				}
				if nonterminals[sym] {
					rule = append(rule, Nonterminal(sym))
				} else {
					rule = append(rule, Terminal(sym))
					terminals[sym] = true
				}
			}
			productions = append(productions, Production{Nonterminal: nt, Rule: rule})
		}
	}

	return &Cfg{
		Name:         name,
		Start:        start,
		Productions:  productions,
		Terminals:    terminals,
		Nonterminals: nonterminals,
	}, nil
}
