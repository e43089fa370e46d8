package ebnf

import (
	"testing"

	"github.com/rfielding/gramma/token"
	"github.com/rfielding/gramma/tree"
)

const exprEBNF = `
expr := term { ("+" | "-") term } ;
term := "num" ;
`

func tok(label string) token.Token[string] {
	return token.Token[string]{Label: label, Content: label}
}

func TestCompileAndParse(t *testing.T) {
	p, err := NewParser(exprEBNF, "expr")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	tokens := []token.Token[string]{tok("num"), tok("+"), tok("num"), tok("-"), tok("num")}
	node, err := p.Parse("num+num-num", tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if node.Label() != "expr" {
		t.Fatalf("expected root label 'expr', got %v", node.Label())
	}

	leaves := 0
	node.Walk(func(n *tree.Node[string], path []int) {
		if n.IsLeaf() {
			leaves++
		}
	})
	if leaves != 5 {
		t.Errorf("expected 5 leaf tokens, got %d", leaves)
	}
}

func TestCompileRejectsBadInput(t *testing.T) {
	p, err := NewParser(exprEBNF, "expr")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	tokens := []token.Token[string]{tok("num"), tok("+"), tok("+")}
	if _, err := p.Parse("num++", tokens); err == nil {
		t.Fatalf("expected a parse error for malformed input")
	}
}
