package earley

import (
	"testing"

	"github.com/rfielding/gramma/nullable"
	"github.com/rfielding/gramma/rule"
	"github.com/rfielding/gramma/token"
)

// We use a small unambiguous expression grammar for testing, adapted from
//
//      http://loup-vaillant.fr/tutorials/earley-parsing/recogniser
//
//     Sum     = Sum     '+' Product
//             | Product
//     Product = Product '*' Factor
//             | Factor
//     Factor  = '(' Sum ')'
//             | num
const (
	symSum     = "Sum"
	symProduct = "Product"
	symFactor  = "Factor"
	symPlus    = "+"
	symTimes   = "*"
	symLParen  = "("
	symRParen  = ")"
	symNum     = "num"
)

func exprGrammar() (*rule.Table[string], nullable.Map[string]) {
	t := rule.NewTable[string]()
	t.Add(symSum, []string{symSum, symPlus, symProduct})
	t.Add(symSum, []string{symProduct})
	t.Add(symProduct, []string{symProduct, symTimes, symFactor})
	t.Add(symProduct, []string{symFactor})
	t.Add(symFactor, []string{symLParen, symSum, symRParen})
	t.Add(symFactor, []string{symNum})
	return t, nullable.Analyze(t.Rules())
}

// tok builds a token of the given label whose content and offset don't
// matter for recognition (only scan compares labels).
func tok(label string) token.Token[string] {
	return token.Token[string]{Label: label, Content: label}
}

// accepted looks for a completed item in the final set that spans the
// whole input from the start and is labelled entry.
func accepted[L comparable](sets Sets[L], entry L) *CompletedItem[L] {
	final := sets[len(sets)-1]
	for i := 0; i < final.Len(); i++ {
		item := final.At(i)
		if item.IsComplete() && item.Origin == 0 && item.Rule.Label == entry {
			return item.AsCompleted(len(sets) - 1)
		}
	}
	return nil
}

func TestRecognizeAccepts(t *testing.T) {
	rules, nullables := exprGrammar()
	cases := [][]string{
		{symNum},
		{symNum, symPlus, symNum},
		{symNum, symTimes, symNum},
		{symNum, symPlus, symNum, symTimes, symNum},
		{symNum, symTimes, symLParen, symNum, symPlus, symNum, symRParen},
		{symNum, symPlus, symNum, symPlus, symNum, symPlus, symNum},
	}
	for _, labels := range cases {
		tokens := make([]token.Token[string], len(labels))
		for i, l := range labels {
			tokens[i] = tok(l)
		}
		sets := Recognize(symSum, rules, nullables, tokens)
		if len(sets) != len(tokens)+1 {
			t.Errorf("%v: expected %d sets, got %d", labels, len(tokens)+1, len(sets))
			continue
		}
		if accepted(sets, symSum) == nil {
			t.Errorf("%v: input not accepted", labels)
		}
	}
}

func TestRecognizeRejectsUnexpectedToken(t *testing.T) {
	rules, nullables := exprGrammar()
	// "num + +" -- a Product can never start with '+'.
	tokens := []token.Token[string]{tok(symNum), tok(symPlus), tok(symPlus)}
	sets := Recognize(symSum, rules, nullables, tokens)
	// recognition stalls: the set following the unconsumable token is
	// never created, so no completed Sum spans the whole input.
	if accepted(sets, symSum) != nil {
		t.Errorf("expected rejection, got an accepting derivation")
	}
}

func TestRecognizeRejectsIncompleteInput(t *testing.T) {
	rules, nullables := exprGrammar()
	// "num +" -- a dangling operator, valid as a prefix but not whole input.
	tokens := []token.Token[string]{tok(symNum), tok(symPlus)}
	sets := Recognize(symSum, rules, nullables, tokens)
	if accepted(sets, symSum) != nil {
		t.Errorf("expected rejection of incomplete input")
	}
}

func TestAsNodeShape(t *testing.T) {
	rules, nullables := exprGrammar()
	labels := []string{symNum, symPlus, symNum, symTimes, symNum}
	tokens := make([]token.Token[string], len(labels))
	for i, l := range labels {
		tokens[i] = tok(l)
	}
	sets := Recognize(symSum, rules, nullables, tokens)
	root := accepted(sets, symSum)
	if root == nil {
		t.Fatalf("input not accepted")
	}
	// Precedence via declaration order (Sum before Product) means "+"
	// binds loosest: root is Sum -> Sum '+' Product, not a flat list.
	node := root.AsNode(nil, nullables, tokens)
	if node.Label() != symSum {
		t.Fatalf("expected root label %v, got %v", symSum, node.Label())
	}
	children := node.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children (Sum + Product), got %d", len(children))
	}
	if children[1].Label() != symPlus || !children[1].IsLeaf() {
		t.Errorf("expected middle child to be a '+' leaf, got %v (leaf=%v)", children[1].Label(), children[1].IsLeaf())
	}
	if children[2].Label() != symProduct {
		t.Errorf("expected last child to be a Product, got %v", children[2].Label())
	}
	productChildren := children[2].Children()
	if len(productChildren) != 3 {
		t.Fatalf("expected Product -> Product '*' Factor, got %d children", len(productChildren))
	}
}

func TestAsNodeHiddenFlatten(t *testing.T) {
	// A hidden auxiliary rule List -> Item Tail, Tail -> (hidden, vanishes
	// when empty). Models the EBNF compiler's auxiliary non-terminals
	// (§6): a hidden branch with no children disappears, one with
	// children splices in place.
	const (
		symList = "List"
		symTail = "Tail"
		symItem = "item"
	)
	rules := rule.NewTable[string]()
	rules.Add(symList, []string{symItem, symTail})
	rules.Add(symTail, []string{symItem, symTail})
	rules.Add(symTail, []string{})
	nullables := nullable.Analyze(rules.Rules())

	tokens := []token.Token[string]{tok(symItem), tok(symItem), tok(symItem)}
	sets := Recognize(symList, rules, nullables, tokens)
	root := accepted(sets, symList)
	if root == nil {
		t.Fatalf("input not accepted")
	}
	hidden := map[string]bool{symTail: true}
	node := root.AsNode(hidden, nullables, tokens)
	if len(node.Children()) != 3 {
		t.Fatalf("expected Tail to flatten into 3 item leaves, got %d children", len(node.Children()))
	}
	for _, child := range node.Children() {
		if child.Label() != symItem {
			t.Errorf("expected flattened child labelled %v, got %v", symItem, child.Label())
		}
	}
}
