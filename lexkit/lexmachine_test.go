package lexkit

import (
	"testing"
	"unicode"

	"github.com/rfielding/gramma/lexer"
)

func TestSubLexerMatchesNumbersAndIdents(t *testing.T) {
	a := New[string]()
	a.Add(`[0-9]+`, "number")
	a.Add(`[a-zA-Z_][a-zA-Z0-9_]*`, "ident")
	if err := a.Compile(); err != nil {
		t.Fatalf("compile error: %v", err)
	}

	lx := lexer.New[string]()
	lx.AddLexer(a.SubLexer())
	lx.AddIgnorer(func(source string, offset int) int {
		n := 0
		for _, r := range source[offset:] {
			if !unicode.IsSpace(r) {
				break
			}
			n++
		}
		return n
	})

	tokens, err := lx.Analyze("x1 42 foo")
	if err != nil {
		t.Fatalf("analyze error: %v", err)
	}
	want := []string{"ident", "number", "ident"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(tokens), tokens)
	}
	for i, label := range want {
		if tokens[i].Label != label {
			t.Errorf("token %d: expected label %q, got %q", i, label, tokens[i].Label)
		}
	}
}
