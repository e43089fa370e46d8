package parser

import (
	"testing"

	"github.com/cnf/structhash"

	"github.com/rfielding/gramma/errs"
	"github.com/rfielding/gramma/token"
	"github.com/rfielding/gramma/tree"
)

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

func exprParser() *Parser[string] {
	p := NewParser[string](symSum)
	p.AddRules(symSum, [][]string{
		{symSum, symPlus, symProduct},
		{symProduct},
	})
	p.AddRules(symProduct, [][]string{
		{symProduct, symTimes, symFactor},
		{symFactor},
	})
	p.AddRules(symFactor, [][]string{
		{symLParen, symSum, symRParen},
		{symNum},
	})
	return p
}

func tok(label string) token.Token[string] {
	return token.Token[string]{Label: label, Content: label}
}

func TestParseAccepts(t *testing.T) {
	p := exprParser()
	tokens := []token.Token[string]{tok(symNum), tok(symPlus), tok(symNum), tok(symTimes), tok(symNum)}
	node, err := p.Parse("num+num*num", tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Label() != symSum {
		t.Fatalf("expected root %v, got %v", symSum, node.Label())
	}
}

func TestParseUnexpectedToken(t *testing.T) {
	p := exprParser()
	tokens := []token.Token[string]{tok(symNum), tok(symPlus), tok(symPlus)}
	_, err := p.Parse("num++", tokens)
	if _, ok := err.(*errs.UnexpectedToken[string]); !ok {
		t.Fatalf("expected *errs.UnexpectedToken, got %T (%v)", err, err)
	}
}

func TestParseUnexpectedEOF(t *testing.T) {
	p := exprParser()
	tokens := []token.Token[string]{tok(symNum), tok(symPlus)}
	_, err := p.Parse("num+", tokens)
	if _, ok := err.(*errs.UnexpectedEOF); !ok {
		t.Fatalf("expected *errs.UnexpectedEOF, got %T (%v)", err, err)
	}
}

// nodeSnapshot is a flattened, hashable view of one tree node, used to
// verify that two parses of the same input always yield the same
// derivation (§4.3: resolution must be a deterministic function of
// the grammar and input, not of e.g. map iteration order).
type nodeSnapshot struct {
	Label string
	Leaf  bool
	Token string
}

func snapshot(n *tree.Node[string]) []nodeSnapshot {
	var out []nodeSnapshot
	n.Walk(func(node *tree.Node[string], path []int) {
		s := nodeSnapshot{Label: node.Label(), Leaf: node.IsLeaf()}
		if node.IsLeaf() {
			s.Token = node.Token().Content
		}
		out = append(out, s)
	})
	return out
}

func TestParseIsDeterministic(t *testing.T) {
	p := exprParser()
	tokens := []token.Token[string]{tok(symNum), tok(symPlus), tok(symNum), tok(symTimes), tok(symNum)}

	node1, err := p.Parse("num+num*num", tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node2, err := p.Parse("num+num*num", tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h1, err := structhash.Hash(snapshot(node1), 1)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	h2, err := structhash.Hash(snapshot(node2), 1)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if h1 != h2 {
		t.Errorf("expected identical derivations to hash the same: %s vs %s", h1, h2)
	}
}

func TestParseHiddenRuleFlattens(t *testing.T) {
	const (
		symList = "List"
		symTail = "Tail"
		symItem = "item"
	)
	p := NewParser[string](symList)
	p.AddRule(symList, []string{symItem, symTail})
	p.AddRules(symTail, [][]string{
		{symItem, symTail},
		{},
	})
	p.HideRule(symTail)

	tokens := []token.Token[string]{tok(symItem), tok(symItem), tok(symItem)}
	node, err := p.Parse("iii", tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(node.Children()) != 3 {
		t.Fatalf("expected Tail to flatten into 3 item leaves, got %d", len(node.Children()))
	}
}
