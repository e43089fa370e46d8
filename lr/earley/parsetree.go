package earley

import (
	"github.com/rfielding/gramma/nullable"
	"github.com/rfielding/gramma/rule"
	"github.com/rfielding/gramma/token"
	"github.com/rfielding/gramma/tree"
)

// asNodeWork tracks progress materialising one completed item into a
// syntax-tree branch: the resolved vector of child derivations (one per
// rhs position, nil for terminals), and how far along it construction has
// progressed.
type asNodeWork[L comparable] struct {
	children []*tree.Node[L]
	rule     *rule.Rule[L]
	items    []*CompletedItem[L]
	start    int
	index    int
}

func newAsNodeWork[L comparable](nullables nullable.Map[L], item *CompletedItem[L], visited []*CompletedItem[L]) *asNodeWork[L] {
	return &asNodeWork[L]{
		rule:  item.Rule,
		items: item.arena.resolve(nullables, visited, item.Rule, item.Start, item.End),
		start: item.Start,
	}
}

// currentStart locates the Earley-set index at which the symbol at
// w.index begins, by walking back to the end of the previous resolved
// rhs position (or counting the terminals consumed since it, for
// positions with no resolved predecessor).
func (w *asNodeWork[L]) currentStart() int {
	if w.index == 0 {
		return w.start
	}
	start := w.start
	tokenCount := 0
	for i := w.index - 1; i >= 0; i-- {
		if w.items[i] != nil {
			start = w.items[i].End
			break
		}
		tokenCount++
	}
	return start + tokenCount
}

func (w *asNodeWork[L]) intoNode() *tree.Node[L] {
	return tree.NewBranch(w.rule.Label, w.children)
}

// AsNode materialises a single, unambiguous syntax tree rooted at c by
// resolving its ambiguity arena -- and that of every completed item it
// transitively references -- via an explicit work stack, rather than
// recursion. This is essential, not cosmetic: the arena graph can contain
// cycles (nullable self-reference, §5), and the accompanying visited list
// is what turns those cycles into a bounded search instead of unbounded
// recursion (§4.3).
//
// hidden-labelled branches are flattened: their children are spliced into
// the parent's child list in their place, and a hidden branch with no
// children vanishes entirely.
func (c *CompletedItem[L]) AsNode(hidden map[L]bool, nullables nullable.Map[L], tokens []token.Token[L]) *tree.Node[L] {
	var visited []*CompletedItem[L]
	work := []*asNodeWork[L]{newAsNodeWork(nullables, c, visited)}
	visited = append(visited, c)

	for {
		top := work[len(work)-1]

		if top.index >= len(top.items) {
			node := top.intoNode()
			work = work[:len(work)-1]
			visited = visited[:len(visited)-1]

			if len(work) == 0 {
				return node
			}
			parent := work[len(work)-1]
			if hidden[node.Label()] {
				parent.children = append(parent.children, node.Children()...)
			} else {
				parent.children = append(parent.children, node)
			}
			parent.index++
			continue
		}

		if completed := top.items[top.index]; completed != nil {
			child := newAsNodeWork(nullables, completed, visited)
			visited = append(visited, completed)
			work = append(work, child)
			continue
		}

		tok := tokens[top.currentStart()]
		top.children = append(top.children, tree.NewLeaf(tok))
		top.index++
	}
}
