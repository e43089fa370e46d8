/*
Package earley implements an Earley recognizer over a generic grammar
(§1–§4): given a rule table, its nullable-symbol witness map and a token
sequence, Recognize builds the sequence of Earley sets S0…Sn, one per
input position, by repeatedly applying Predict, Scan and Complete to
every item in a set until no more can be added (§2).

Earley parsing handles any context-free grammar, including ambiguous and
left-recursive ones, at the cost of cubic worst-case time. Completed
items fold every alternative derivation they admit into a shared
Ambiguity arena (see ambiguity.go) rather than discarding all but one:
resolving that arena into a single syntax tree is a separate,
deliberately decoupled step (see parsetree.go), driven by declaration
order and longest-match precedence (§4).

Grounded on earley_recognizer.rs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/rfielding/gramma/lr/iteratable"
	"github.com/rfielding/gramma/nullable"
	"github.com/rfielding/gramma/rule"
	"github.com/rfielding/gramma/token"
)

// tracer traces with key 'gramma.earley'.
func tracer() tracing.Trace {
	return tracing.Select("gramma.earley")
}

// Sets is the sequence of Earley sets produced by Recognize: one set per
// input position, plus one trailing set (S0…Sn for n tokens).
type Sets[L comparable] []*iteratable.Set[*Item[L], itemKey]

// recognizer carries the state threaded through Predict/Scan/Complete for
// one run. Its methods mutate sets in place, mirroring the way the
// original recognizer builds its state list incrementally (§2).
type recognizer[L comparable] struct {
	sets      Sets[L]
	rules     *rule.Table[L]
	nullables nullable.Map[L]
	tokens    []token.Token[L]
}

func newItemSet[L comparable]() *iteratable.Set[*Item[L], itemKey] {
	return iteratable.NewSet(func(it *Item[L]) itemKey { return it.key() })
}

// Recognize builds the Earley sets for tokens against rules, starting
// from entry, using nullables (as computed by package nullable) to
// perform Aycock & Horspool's "magic completion" for nullable symbols
// (§4.2). The returned Sets has len(tokens)+1 entries unless recognition
// stalls early for lack of any viable scan.
func Recognize[L comparable](entry L, rules *rule.Table[L], nullables nullable.Map[L], tokens []token.Token[L]) Sets[L] {
	rec := &recognizer[L]{rules: rules, nullables: nullables, tokens: tokens}
	rec.sets = make(Sets[L], 1, len(tokens)+1)
	rec.sets[0] = newItemSet[L]()
	for _, r := range rules.ByLabel(entry) {
		rec.sets[0].Add(newItem(r, 0))
	}

	for i := 0; i < len(rec.sets); i++ {
		S := rec.sets[i]
		for j := 0; j < S.Len(); j++ {
			item := S.At(j)
			if label, ok := item.NextLabel(); ok {
				rec.predict(i, item, label)
				rec.scan(i, item, label)
			} else {
				rec.complete(i, item)
			}
		}
		dumpState(rec.sets, i)
	}
	return rec.sets
}

// ensureSet grows rec.sets so that index i is valid, lazily: a set is
// only ever created once a scan needs to place an item in it.
func (rec *recognizer[L]) ensureSet(i int) {
	for len(rec.sets) <= i {
		rec.sets = append(rec.sets, newItemSet[L]())
	}
}

// predict: for [A→…•B…, j] in Si, add [B→•γ, i] for every rule B→γ. If B
// is nullable, additionally advance the dot past B in place ("magic
// completion", §4.2) and record the witness completion in item's arena.
func (rec *recognizer[L]) predict(i int, item *Item[L], label L) {
	for _, r := range rec.rules.ByLabel(label) {
		rec.sets[i].Add(newItem(r, i))
	}
	if witness, ok := rec.nullables[label]; ok {
		completed := newNullableCompletion(witness, i)
		item.arena.add(completed, item.Dot)
		rec.sets[i].Add(item.Advance())
	}
}

// scan: for [A→…•a…, j] in Si with a the label of token i, add
// [A→…a•…, j] to Si+1.
func (rec *recognizer[L]) scan(i int, item *Item[L], label L) {
	if i >= len(rec.tokens) || rec.tokens[i].Label != label {
		return
	}
	rec.ensureSet(i + 1)
	rec.sets[i+1].Add(item.Advance())
}

// complete: for a completed [A→γ•, j] in Si, add [B→…A•…, k] to Si for
// every [B→…•A…, k] waiting in Sj, and record the completion in the
// waiting item's arena at the position A occupied.
//
// n snapshots origin.Len() before the loop so that, when j == i (a
// zero-length derivation completing in the set it started in), items
// advanced by this very completion are not re-examined in the same pass.
func (rec *recognizer[L]) complete(i int, item *Item[L]) {
	completed := item.AsCompleted(i)
	origin := rec.sets[completed.Start]
	tracer().Debugf("search predecessors in origin(%d): %s", completed.Start, itemSetString(origin))
	n := origin.Len()
	for k := 0; k < n; k++ {
		waiting := origin.At(k)
		label, ok := waiting.NextLabel()
		if !ok || label != completed.Rule.Label {
			continue
		}
		waiting.arena.add(completed, waiting.Dot)
		rec.sets[i].Add(waiting.Advance())
	}
}
