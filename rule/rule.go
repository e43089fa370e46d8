/*
Package rule implements the rule table: an indexed, insertion-ordered store
of grammar productions.

A Rule is an immutable triple (Index, Label, RHS). Index is the rule's
zero-based position in the table it was added to, and doubles as the
precedence key used by package earley when it resolves ambiguous
derivations (lower index wins, see Table.Add). Equality and hashing of a
Rule are defined purely in terms of Index.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rule

import (
	"fmt"
	"strings"
)

// Rule is one production Label ::= RHS[0] RHS[1] … RHS[n-1]. RHS may be
// empty (an epsilon production).
type Rule[L comparable] struct {
	Index int
	Label L
	RHS   []L
}

// Equal compares two rules by index only, per the data model's identity
// rule: "Equality and hashing use index only."
func (r *Rule[L]) Equal(other *Rule[L]) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Index == other.Index
}

func (r *Rule[L]) String() string {
	parts := make([]string, len(r.RHS))
	for i, l := range r.RHS {
		parts[i] = fmt.Sprint(l)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%v ::= ε", r.Label)
	}
	return fmt.Sprintf("%v ::= %s", r.Label, strings.Join(parts, " "))
}

// Table is an ordered collection of rules, indexed both by insertion order
// (Rules) and by left-hand-side label (byLabel), for fast prediction
// lookups during recognition.
type Table[L comparable] struct {
	rules   []*Rule[L]
	byLabel map[L][]*Rule[L]
}

// NewTable creates an empty rule table.
func NewTable[L comparable]() *Table[L] {
	return &Table[L]{byLabel: make(map[L][]*Rule[L])}
}

// Add appends one production for label, assigning it the next index. This
// insertion order is the sole carrier of precedence information (§4.3):
// earlier-added alternatives outrank later ones.
func (t *Table[L]) Add(label L, rhs []L) *Rule[L] {
	r := &Rule[L]{Index: len(t.rules), Label: label, RHS: rhs}
	t.rules = append(t.rules, r)
	t.byLabel[label] = append(t.byLabel[label], r)
	return r
}

// AddAll appends one production per rhs in rhss, in order, all for the same
// label.
func (t *Table[L]) AddAll(label L, rhss [][]L) []*Rule[L] {
	added := make([]*Rule[L], 0, len(rhss))
	for _, rhs := range rhss {
		added = append(added, t.Add(label, rhs))
	}
	return added
}

// Rules returns every rule in the table, in insertion order. The returned
// slice must not be mutated by callers.
func (t *Table[L]) Rules() []*Rule[L] {
	return t.rules
}

// ByLabel returns the rules whose left-hand side is label, in insertion
// order. The returned slice must not be mutated by callers.
func (t *Table[L]) ByLabel(label L) []*Rule[L] {
	return t.byLabel[label]
}

// Len returns the number of rules in the table.
func (t *Table[L]) Len() int {
	return len(t.rules)
}

// Rule returns the rule at position index, as assigned by Add.
func (t *Table[L]) Rule(index int) *Rule[L] {
	return t.rules[index]
}
