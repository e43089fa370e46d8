package earley

import (
	"fmt"
	"strings"

	"github.com/rfielding/gramma/rule"
)

// itemKey is the identity of an Earley item: (rule.index, origin, dot).
// Item equality and hashing use this triple only (§3) -- the ambiguity
// reference is deliberately excluded.
type itemKey struct {
	ruleIndex, origin, dot int
}

// Item is an Earley item: a production, a dot position, the set index at
// which it was predicted ("origin"), and a shared reference to an
// ambiguity arena.
type Item[L comparable] struct {
	Rule   *rule.Rule[L]
	Dot    int
	Origin int
	arena  *Ambiguity[L]
}

func newItem[L comparable](r *rule.Rule[L], origin int) *Item[L] {
	return &Item[L]{Rule: r, Dot: 0, Origin: origin, arena: newAmbiguity[L]()}
}

func (it *Item[L]) key() itemKey {
	return itemKey{it.Rule.Index, it.Origin, it.Dot}
}

// IsComplete reports whether the dot has reached the end of the rule's rhs.
func (it *Item[L]) IsComplete() bool {
	return it.Dot == len(it.Rule.RHS)
}

// NextLabel returns the symbol immediately after the dot, if any.
func (it *Item[L]) NextLabel() (label L, ok bool) {
	if it.IsComplete() {
		return label, false
	}
	return it.Rule.RHS[it.Dot], true
}

// Advance returns the item with its dot moved one position to the right.
// It inherits the same arena reference as it: "predict creates one fresh
// arena per (rule, origin) pair", and every advancement of an item must go
// on sharing it (§9, open question resolution).
func (it *Item[L]) Advance() *Item[L] {
	return &Item[L]{Rule: it.Rule, Dot: it.Dot + 1, Origin: it.Origin, arena: it.arena}
}

// AsCompleted snapshots it -- which must be complete -- as a CompletedItem
// spanning [it.Origin, end).
func (it *Item[L]) AsCompleted(end int) *CompletedItem[L] {
	return &CompletedItem[L]{Rule: it.Rule, arena: it.arena, Start: it.Origin, End: end}
}

func (it *Item[L]) String() string {
	parts := make([]string, len(it.Rule.RHS))
	for i, l := range it.Rule.RHS {
		parts[i] = fmt.Sprint(l)
	}
	dotted := append(append([]string{}, parts[:it.Dot]...), "•")
	dotted = append(dotted, parts[it.Dot:]...)
	return fmt.Sprintf("%v -> %s (%d)", it.Rule.Label, strings.Join(dotted, " "), it.Origin)
}
