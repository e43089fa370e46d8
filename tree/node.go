/*
Package tree implements the syntax tree produced by resolving an
ambiguous Earley parse into a single, deterministic derivation (§4).

A Node is either a leaf, carrying the token it was matched from, or a
branch, carrying the label of the rule it was derived by and its ordered
children. Hidden rules never appear as branches in a finished tree: their
children are spliced into the parent at construction time (see
earley.CompletedItem.AsNode).

Grounded on ast.rs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import "github.com/rfielding/gramma/token"

// Node is a syntax tree node, parametric in the grammar's label type.
type Node[L comparable] struct {
	label    L
	tok      *token.Token[L]
	children []*Node[L]
}

// NewLeaf wraps a matched token as a leaf node.
func NewLeaf[L comparable](tok token.Token[L]) *Node[L] {
	return &Node[L]{label: tok.Label, tok: &tok}
}

// NewBranch creates a branch labelled by a rule's left-hand side, with the
// given children in rule order.
func NewBranch[L comparable](label L, children []*Node[L]) *Node[L] {
	return &Node[L]{label: label, children: children}
}

// Label reports the node's label: a token label for a leaf, a rule label
// for a branch.
func (n *Node[L]) Label() L {
	return n.label
}

// IsLeaf reports whether n is a leaf (matched directly from a token).
func (n *Node[L]) IsLeaf() bool {
	return n.tok != nil
}

// Token returns the token a leaf was matched from, or nil for a branch.
func (n *Node[L]) Token() *token.Token[L] {
	return n.tok
}

// Children returns n's children in rule order. Empty for a leaf.
func (n *Node[L]) Children() []*Node[L] {
	return n.children
}

// Span reports the source span n covers: the token's own span for a leaf,
// the union of every child's span for a branch. A branch with no children
// (a vanished nullable) reports a zero-length span at offset 0.
func (n *Node[L]) Span() token.Span {
	if n.IsLeaf() {
		return token.Span{From: n.tok.Offset, To: n.tok.End()}
	}
	if len(n.children) == 0 {
		return token.Span{}
	}
	span := n.children[0].Span()
	for _, child := range n.children[1:] {
		span = span.Extend(child.Span())
	}
	return span
}

// Walk visits n and every descendant, depth-first, pre-order. fn receives
// the node and the path of child indices from the root to it.
func (n *Node[L]) Walk(fn func(node *Node[L], path []int)) {
	n.walk(fn, nil)
}

func (n *Node[L]) walk(fn func(node *Node[L], path []int), path []int) {
	fn(n, path)
	for i, child := range n.children {
		child.walk(fn, append(append([]int{}, path...), i))
	}
}

// NodeAt resolves a path of child indices from n, returning nil if the path
// runs past a leaf or out of range at any step.
func (n *Node[L]) NodeAt(path []int) *Node[L] {
	node := n
	for _, idx := range path {
		if idx < 0 || idx >= len(node.children) {
			return nil
		}
		node = node.children[idx]
	}
	return node
}
