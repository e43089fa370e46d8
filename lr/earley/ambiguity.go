package earley

import (
	"sort"

	"github.com/rfielding/gramma/nullable"
	"github.com/rfielding/gramma/rule"
)

// Ambiguity is the per-item accumulator of alternative derivations
// discovered during recognition (§3). For each right-hand-side position k
// of the rule shared by a family of items at (rule, origin), it stores
// every completed item that has, during recognition, been consumed at
// that position. Multiple Earley items sharing (rule, origin) share the
// same Ambiguity by reference (§3, invariant 3).
type Ambiguity[L comparable] struct {
	buckets [][]*CompletedItem[L]
	sorted  bool
}

func newAmbiguity[L comparable]() *Ambiguity[L] {
	return &Ambiguity[L]{}
}

// add records that completed was consumed at right-hand-side position pos.
func (a *Ambiguity[L]) add(completed *CompletedItem[L], pos int) {
	for len(a.buckets) <= pos {
		a.buckets = append(a.buckets, nil)
	}
	a.buckets[pos] = append(a.buckets[pos], completed)
	a.sorted = false
}

// CompletedItem is a snapshot of an Earley item whose dot has reached the
// end of its rule: the rule, the arena it shares with every item advanced
// from the same (rule, origin) pair, and the [Start, End) span (in
// Earley-set-index space) the derivation covers.
type CompletedItem[L comparable] struct {
	Rule       *rule.Rule[L]
	arena      *Ambiguity[L]
	Start, End int
}

// newNullableCompletion builds the synthetic completed item "magic
// completion" creates when predicting a nullable symbol (§4.2).
func newNullableCompletion[L comparable](witness *rule.Rule[L], at int) *CompletedItem[L] {
	return &CompletedItem[L]{Rule: witness, arena: newAmbiguity[L](), Start: at, End: at}
}

func (c *CompletedItem[L]) equal(other *CompletedItem[L]) bool {
	return c.Rule.Index == other.Rule.Index && c.Start == other.Start && c.End == other.End
}

// resolve performs the depth-first search of §4.3: it picks one
// interpretation per right-hand-side position of rule such that the
// chosen derivations jointly span [start, end), preferring
// lower-rule-index (declaration order) alternatives and, among those of
// equal precedence, longer matches. visited holds completed items already
// on the tree-builder's call stack, and may not be re-chosen -- this is
// what keeps a cyclic arena graph from recursing forever (§4.3, §5).
//
// The returned slice has one entry per rhs position: nil for a terminal
// (or an unrealised nullable) position, the chosen CompletedItem otherwise.
func (a *Ambiguity[L]) resolve(nullables nullable.Map[L], visited []*CompletedItem[L], r *rule.Rule[L], start, end int) []*CompletedItem[L] {
	for len(a.buckets) < len(r.RHS) {
		a.buckets = append(a.buckets, nil)
	}
	if !a.sorted {
		for _, bucket := range a.buckets {
			sort.SliceStable(bucket, func(i, j int) bool {
				if bucket[i].Rule.Index != bucket[j].Rule.Index {
					return bucket[i].Rule.Index < bucket[j].Rule.Index
				}
				return bucket[i].End > bucket[j].End
			})
		}
		a.sorted = true
	}

	type workItem struct{ start, index int }
	work := []workItem{{start: start}}

	isVisited := func(c *CompletedItem[L]) bool {
		for _, v := range visited {
			if v.equal(c) {
				return true
			}
		}
		return false
	}

	for {
		rhsIndex := len(work) - 1
		top := &work[rhsIndex]

		if rhsIndex >= len(a.buckets) {
			work = work[:rhsIndex]
			output := make([]*CompletedItem[L], len(work))
			for i, wi := range work {
				if bucket := a.buckets[i]; len(bucket) > 0 {
					output[i] = bucket[wi.index]
				}
			}
			return output
		}

		isLast := rhsIndex == len(a.buckets)-1
		bucket := a.buckets[rhsIndex]

		if len(bucket) == 0 && top.index == 0 {
			next := top.start + 1
			if nullables.IsNullable(r.RHS[rhsIndex]) {
				next = top.start
			}
			if isLast && next != end {
				work = work[:rhsIndex]
				if len(work) == 0 {
					return nil
				}
				work[len(work)-1].index++
				continue
			}
			work = append(work, workItem{start: next})
			continue
		}

		if top.index >= len(bucket) {
			work = work[:rhsIndex]
			if len(work) == 0 {
				return nil
			}
			work[len(work)-1].index++
			continue
		}

		candidate := bucket[top.index]
		startOK := top.start == candidate.Start
		endOK := !isLast || candidate.End == end
		freshOK := !isVisited(candidate)

		if !startOK || !endOK || !freshOK {
			top.index++
			continue
		}

		work = append(work, workItem{start: candidate.End})
	}
}
