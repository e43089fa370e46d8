/*
Package token defines the token and span types shared by the lexer, the
Earley recogniser and the syntax tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package token

import "fmt"

// Token is a single lexeme produced by a lexer run: the label assigned to
// it, the exact source slice it was matched from, and the byte offset at
// which it begins. Token.Content always equals
// source[Token.Offset : Token.Offset+len(Token.Content)].
type Token[L comparable] struct {
	Label   L
	Content string
	Offset  int
}

// End returns the offset just behind the token's content.
func (t Token[L]) End() int {
	return t.Offset + len(t.Content)
}

func (t Token[L]) String() string {
	return fmt.Sprintf("%v(%q)@%d", t.Label, t.Content, t.Offset)
}

// Span denotes a half-open interval [From, To) of byte offsets (for
// syntax-tree nodes) or of Earley-set indices (internally, within the
// recogniser). It is a small value type, modelled after gorgo.Span.
type Span struct {
	From, To int
}

// Len returns the length of the span.
func (s Span) Len() int {
	return s.To - s.From
}

// Extend widens s so that it also covers other.
func (s Span) Extend(other Span) Span {
	if other.From < s.From {
		s.From = other.From
	}
	if other.To > s.To {
		s.To = other.To
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s.From, s.To)
}
