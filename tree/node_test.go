package tree

import (
	"testing"

	"github.com/rfielding/gramma/token"
)

func leaf(label, content string, offset int) *Node[string] {
	return NewLeaf(token.Token[string]{Label: label, Content: content, Offset: offset})
}

func TestSpanUnion(t *testing.T) {
	a := leaf("num", "12", 0)
	b := leaf("+", "+", 2)
	c := leaf("num", "34", 3)
	branch := NewBranch("Sum", []*Node[string]{a, b, c})

	span := branch.Span()
	if span.From != 0 || span.To != 5 {
		t.Fatalf("expected span [0,5), got [%d,%d)", span.From, span.To)
	}
}

func TestSpanVanishedBranch(t *testing.T) {
	empty := NewBranch[string]("Tail", nil)
	span := empty.Span()
	if span.From != 0 || span.To != 0 {
		t.Fatalf("expected zero span for childless branch, got [%d,%d)", span.From, span.To)
	}
}

func TestWalkVisitsPreOrderWithPaths(t *testing.T) {
	a := leaf("num", "1", 0)
	b := leaf("num", "2", 1)
	root := NewBranch("Sum", []*Node[string]{a, b})

	var labels []string
	var paths [][]int
	root.Walk(func(n *Node[string], path []int) {
		labels = append(labels, n.Label())
		paths = append(paths, append([]int{}, path...))
	})

	wantLabels := []string{"Sum", "num", "num"}
	for i, l := range wantLabels {
		if labels[i] != l {
			t.Fatalf("label %d: expected %s, got %s", i, l, labels[i])
		}
	}
	if len(paths[0]) != 0 {
		t.Fatalf("expected root path to be empty, got %v", paths[0])
	}
	if len(paths[1]) != 1 || paths[1][0] != 0 {
		t.Fatalf("expected first child path [0], got %v", paths[1])
	}
	if len(paths[2]) != 1 || paths[2][0] != 1 {
		t.Fatalf("expected second child path [1], got %v", paths[2])
	}
}

func TestNodeAt(t *testing.T) {
	a := leaf("num", "1", 0)
	b := leaf("num", "2", 1)
	root := NewBranch("Sum", []*Node[string]{a, b})

	if got := root.NodeAt([]int{1}); got != b {
		t.Fatalf("expected NodeAt([1]) to return b, got %v", got)
	}
	if got := root.NodeAt(nil); got != root {
		t.Fatalf("expected NodeAt(nil) to return root itself")
	}
	if got := root.NodeAt([]int{5}); got != nil {
		t.Fatalf("expected out-of-range NodeAt to return nil, got %v", got)
	}
}
