/*
Package lexer converts a source string into a sequence of typed tokens by
dispatching to caller-supplied sub-lexers and ignorers.

A Lexer is configured with three kinds of collaborators, tried in this
order at every position: ignorers (whitespace, comments — return a length
to skip), sub-lexers (arbitrary (source, offset) -> (label, length)
functions), and literal tokens (kept sorted longest-first so that e.g. "<="
is preferred over "<"). The mechanism for registering and dispatching these
is the in-scope part of lexing; the sub-lexers themselves are the
caller's external collaborators (§1).

Grounded on lexer.rs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexer

import (
	"sort"

	"github.com/npillmayer/schuko/tracing"

	"github.com/rfielding/gramma/errs"
	"github.com/rfielding/gramma/token"
)

// tracer traces with key 'gramma.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("gramma.lexer")
}

// SubLexer inspects source starting at offset and reports the label and
// length of a token match there, or a length of 0 for no match.
type SubLexer[L comparable] func(source string, offset int) (L, int)

// Ignorer inspects source starting at offset and reports how many bytes to
// skip (whitespace, comments, …), or 0 for nothing to skip.
type Ignorer func(source string, offset int) int

type literal[L comparable] struct {
	label L
	value string
}

// Lexer is a configurable tokenizer: an ordered list of ignorers, an
// ordered list of sub-lexers, and a set of literal tokens matched by
// descending length (longest-match precedence).
type Lexer[L comparable] struct {
	literals []literal[L]
	subs     []SubLexer[L]
	ignorers []Ignorer
}

// New creates an empty Lexer.
func New[L comparable]() *Lexer[L] {
	return &Lexer[L]{}
}

// AddIgnorer registers an ignorer, tried before every sub-lexer and literal
// match at a given offset.
func (lx *Lexer[L]) AddIgnorer(ignorer Ignorer) {
	lx.ignorers = append(lx.ignorers, ignorer)
}

// AddLexer registers a sub-lexer. Sub-lexers are tried in registration
// order, after ignorers and before literal tokens.
func (lx *Lexer[L]) AddLexer(sub SubLexer[L]) {
	lx.subs = append(lx.subs, sub)
}

// AddCharLexer registers a sub-lexer operating on a single rune at a time:
// fn is called with the rune at offset and reports the label to assign and
// whether it matched (consuming exactly that one rune).
func (lx *Lexer[L]) AddCharLexer(fn func(r rune) (L, bool)) {
	lx.AddLexer(func(source string, offset int) (L, int) {
		r := []rune(source[offset:])[0]
		label, ok := fn(r)
		if !ok {
			var zero L
			return zero, 0
		}
		return label, len(string(r))
	})
}

// AddToken registers a literal token. Literals are kept sorted so that
// longer values are matched before shorter ones that are a prefix of them.
func (lx *Lexer[L]) AddToken(label L, value string) {
	i := sort.Search(len(lx.literals), func(i int) bool {
		return len(lx.literals[i].value) <= len(value)
	})
	lx.literals = append(lx.literals, literal[L]{})
	copy(lx.literals[i+1:], lx.literals[i:])
	lx.literals[i] = literal[L]{label: label, value: value}
}

// Analyze scans source into a token sequence. It fails on the first
// character no ignorer, sub-lexer or literal can account for, or on a
// sub-lexer/ignorer that reports a match running past end of source.
//
// Guarantee: token.Content == source[token.Offset : token.Offset+len(token.Content)].
func (lx *Lexer[L]) Analyze(source string) ([]token.Token[L], error) {
	literalMatcher := func(source string, offset int) (L, int) {
		for _, lit := range lx.literals {
			end := offset + len(lit.value)
			if end <= len(source) && source[offset:end] == lit.value {
				return lit.label, len(lit.value)
			}
		}
		var zero L
		return zero, 0
	}

	var tokens []token.Token[L]
	skip := 0

	for skip < len(source) {
		if length, ok := lx.tryIgnorers(source, skip); ok {
			if skip+length > len(source) {
				line, col := errs.LineCol(source, skip)
				return nil, &errs.BadIgnorer{Offset: skip, Line: line, Col: col, FinalOffset: skip + length}
			}
			skip += length
			continue
		}

		label, length, matched := lx.trySubLexers(source, skip)
		if !matched && len(lx.literals) > 0 {
			if l, n := literalMatcher(source, skip); n > 0 {
				label, length, matched = l, n, true
			}
		}

		if matched {
			if skip+length > len(source) {
				line, col := errs.LineCol(source, skip)
				return nil, &errs.BadLexer[L]{Label: label, Offset: skip, Line: line, Col: col, FinalOffset: skip + length}
			}
			tok := token.Token[L]{Label: label, Content: source[skip : skip+length], Offset: skip}
			tracer().Debugf("lexed %v", tok)
			tokens = append(tokens, tok)
			skip += length
			continue
		}

		line, col := errs.LineCol(source, skip)
		return nil, &errs.UnexpectedCharacter{Offset: skip, Line: line, Col: col}
	}

	return tokens, nil
}

func (lx *Lexer[L]) tryIgnorers(source string, offset int) (int, bool) {
	for _, ignorer := range lx.ignorers {
		if length := ignorer(source, offset); length > 0 {
			return length, true
		}
	}
	return 0, false
}

func (lx *Lexer[L]) trySubLexers(source string, offset int) (L, int, bool) {
	for _, sub := range lx.subs {
		if label, length := sub(source, offset); length > 0 {
			return label, length, true
		}
	}
	var zero L
	return zero, 0, false
}
