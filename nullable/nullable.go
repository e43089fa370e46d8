/*
Package nullable computes, for a rule table, the set of non-terminals that
can derive the empty string, together with a witness rule for each.

The algorithm is a fixed-point work-list iteration: seed with every
epsilon-production (keeping the lowest-indexed one per label), index rules
by the symbols appearing on their right-hand side, then repeatedly pop a
newly-discovered nullable symbol off the work list and check whether it
completes any rule whose other right-hand-side symbols are already known
nullable.

Grounded on find_nullables.rs (Loup Vaillant's approach, as adapted by
jeffreykegler/kollos): https://github.com/jeffreykegler/kollos/blob/master/notes/misc/loup2.md

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package nullable

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/rfielding/gramma/rule"
)

// Map associates every nullable label with the lowest-indexed rule that
// witnesses its nullability.
type Map[L comparable] map[L]*rule.Rule[L]

// Analyze computes the nullable map for rules. Calling it twice on the same
// rule slice yields an identical map (§8, nullable idempotence): the
// algorithm is a deterministic total function with no dependency on
// external state.
func Analyze[L comparable](rules []*rule.Rule[L]) Map[L] {
	rulesByRHS := make(map[L][]*rule.Rule[L])
	nullables := make(Map[L])

	work := arraystack.New()
	seen := make(map[L]bool)

	push := func(label L) {
		if !seen[label] {
			seen[label] = true
			work.Push(label)
		}
	}

	for _, r := range rules {
		if len(r.RHS) == 0 {
			if _, already := nullables[r.Label]; !already {
				nullables[r.Label] = r
				push(r.Label)
			}
			continue
		}
		for _, symbol := range r.RHS {
			rulesByRHS[symbol] = append(rulesByRHS[symbol], r)
		}
	}

	for !work.Empty() {
		top, _ := work.Pop()
		workSymbol := top.(L)

		candidates, ok := rulesByRHS[workSymbol]
		if !ok {
			continue
		}

	ruleLoop:
		for _, candidate := range candidates {
			if _, already := nullables[candidate.Label]; already {
				continue
			}
			for _, symbol := range candidate.RHS {
				if _, isNullable := nullables[symbol]; !isNullable {
					continue ruleLoop
				}
			}
			nullables[candidate.Label] = candidate
			push(candidate.Label)
		}
	}

	return nullables
}

// IsNullable reports whether label derives the empty string.
func (m Map[L]) IsNullable(label L) bool {
	_, ok := m[label]
	return ok
}
