/*
Package lexkit adapts github.com/timtadh/lexmachine's regex-DFA scanner
into a lexer.SubLexer, so token classes that are painful to hand-roll as
a single (source, offset) matcher -- numbers, identifiers, quoted strings
with escapes -- can instead be described as lexmachine patterns and
plugged into a gramma Lexer alongside literal tokens and other sub-lexers.

Grounded on gorgo's lr/scanner/lexmach/lexmachine.go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexkit

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/rfielding/gramma/lexer"
)

// tracer traces with key 'gramma.lexkit'.
func tracer() tracing.Trace {
	return tracing.Select("gramma.lexkit")
}

// Adapter accumulates lexmachine patterns and, once Compile'd, exposes
// them as a lexer.SubLexer.
type Adapter[L comparable] struct {
	lx  *lexmachine.Lexer
	ids map[int]L
}

// New creates an empty Adapter.
func New[L comparable]() *Adapter[L] {
	return &Adapter[L]{lx: lexmachine.NewLexer(), ids: make(map[int]L)}
}

// Add registers a lexmachine pattern (lexmachine's own regex dialect, not
// Go's) that, when matched, yields a token labelled label.
func (a *Adapter[L]) Add(pattern string, label L) {
	id := len(a.ids)
	a.ids[id] = label
	a.lx.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	})
}

// Compile builds the DFA from every pattern registered so far. It must
// be called exactly once, after the last Add and before SubLexer is used.
func (a *Adapter[L]) Compile() error {
	return a.lx.Compile()
}

// SubLexer returns a lexer.SubLexer backed by this adapter's DFA.
//
// Each call re-scans from offset: lexmachine scans a whole byte buffer
// rather than probing a single position, so bridging it to the
// per-offset SubLexer contract means re-slicing and re-scanning source
// on every invocation. This trades some redundant work for letting
// lexmachine sub-lexers compose with hand-written ones and literal
// tokens inside the same Lexer, tried in the same left-to-right order.
//
// Adapter deliberately has no Skip (whitespace/comment consumption):
// lexmachine's own skip actions consume their match and then have the
// scanner continue matching further into the buffer before Next()
// returns, so the returned match no longer necessarily starts at
// offset -- exactly what the SubLexer contract requires. Skipping
// belongs to lexer.Ignorer, one layer up, which already runs before
// every sub-lexer is tried (§4.4); registering whitespace/comments
// there instead keeps every match this adapter reports anchored at
// offset.
func (a *Adapter[L]) SubLexer() lexer.SubLexer[L] {
	return func(source string, offset int) (L, int) {
		var zero L
		scan, err := a.lx.Scanner([]byte(source[offset:]))
		if err != nil {
			tracer().Errorf("lexkit: failed to create scanner: %v", err)
			return zero, 0
		}
		tok, err, eof := scan.Next()
		if err != nil {
			if _, isUnconsumed := err.(*machines.UnconsumedInput); isUnconsumed {
				return zero, 0
			}
			tracer().Errorf("lexkit: scan error: %v", err)
			return zero, 0
		}
		if eof {
			return zero, 0
		}
		matched := tok.(*lexmachine.Token)
		label, ok := a.ids[matched.Type]
		if !ok {
			return zero, 0
		}
		return label, len(matched.Lexeme)
	}
}
