/*
Package errs defines the error taxonomy surfaced by the lexer and parser
packages, plus the byte-offset-to-line/column conversion they share.

None of these errors are recovered locally: a lexer or parser run returns on
the first one encountered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package errs

import (
	"fmt"
	"strings"

	"github.com/rfielding/gramma/token"
)

// UnexpectedCharacter is returned by a lexer run when no ignorer, sub-lexer
// or literal token matches at the current offset.
type UnexpectedCharacter struct {
	Offset, Line, Col int
}

func (e *UnexpectedCharacter) Error() string {
	return fmt.Sprintf("lexing error %d:%d: unexpected character", e.Line, e.Col)
}

// BadLexer is returned when a sub-lexer reports a match length that would
// run past the end of the source.
type BadLexer[L any] struct {
	Label             L
	Offset, Line, Col int
	FinalOffset       int
}

func (e *BadLexer[L]) Error() string {
	return fmt.Sprintf("lexing error %d:%d: a lexer creating %v tokens returned a length that would include characters past end", e.Line, e.Col, e.Label)
}

// BadIgnorer is returned when an ignorer reports a length that would run
// past the end of the source.
type BadIgnorer struct {
	Offset, Line, Col int
	FinalOffset       int
}

func (e *BadIgnorer) Error() string {
	return fmt.Sprintf("lexing error %d:%d: an ignorer returned a length that would include characters past end", e.Line, e.Col)
}

// UndefinedRule reports a label for which no production was ever installed.
// No function in this module returns it: the EBNF compiler leaves a
// referenced label that has no rule of its own in place as a terminal.
type UndefinedRule[L any] struct {
	Label L
}

func (e *UndefinedRule[L]) Error() string {
	return fmt.Sprintf("parsing error: %v has no rule defined", e.Label)
}

// UnexpectedToken is returned when scanning halts before the end of the
// token stream: no item active in the Earley set expected the token found
// at that position.
type UnexpectedToken[L comparable] struct {
	Token     token.Token[L]
	Line, Col int
}

func (e *UnexpectedToken[L]) Error() string {
	return fmt.Sprintf("parsing error %d:%d: unexpected %v", e.Line, e.Col, e.Token.Label)
}

// UnexpectedEOF is returned when the recogniser consumed every token but no
// item spanning the whole input completes the entry rule.
type UnexpectedEOF struct{}

func (e *UnexpectedEOF) Error() string {
	return "parsing error: unexpected EOF"
}

// LineCol computes 1-based (line, column) for a byte offset into source, by
// counting newlines in the prefix up to offset. Empty source maps any offset
// to (1, 1).
func LineCol(source string, offset int) (line, col int) {
	if len(source) == 0 {
		return 1, 1
	}
	if offset > len(source) {
		offset = len(source)
	}
	prefix := source[:offset]
	line = strings.Count(prefix, "\n") + 1
	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		col = offset - idx
	} else {
		col = offset + 1
	}
	return line, col
}
