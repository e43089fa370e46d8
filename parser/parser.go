/*
Package parser exposes the public grammar-construction and parsing API:
add rules (or groups of alternatives) for a label, mark some labels
hidden (their branches flatten into their parent at tree-construction
time), then Parse a token sequence into a single syntax tree.

Grounded on earley_parser.rs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parser

import (
	"github.com/rfielding/gramma/errs"
	"github.com/rfielding/gramma/lr/earley"
	"github.com/rfielding/gramma/nullable"
	"github.com/rfielding/gramma/rule"
	"github.com/rfielding/gramma/token"
	"github.com/rfielding/gramma/tree"
)

// Parser accumulates a rule table for one entry label and parses token
// sequences against it.
type Parser[L comparable] struct {
	entry  L
	rules  *rule.Table[L]
	hidden map[L]bool
}

// NewParser creates an empty parser whose start symbol is entry.
func NewParser[L comparable](entry L) *Parser[L] {
	return &Parser[L]{entry: entry, rules: rule.NewTable[L](), hidden: make(map[L]bool)}
}

// AddRule appends one production label ::= rhs.
func (p *Parser[L]) AddRule(label L, rhs []L) {
	p.rules.Add(label, rhs)
}

// AddRules appends one production per entry of rhss, all for label, in
// order -- later alternatives are lower precedence (§4.3).
func (p *Parser[L]) AddRules(label L, rhss [][]L) {
	p.rules.AddAll(label, rhss)
}

// HideRule marks label as hidden: at tree-construction time, a branch
// labelled this way is spliced into its parent's children rather than
// kept as a node of its own (empty if it derived nothing). Used for
// auxiliary non-terminals introduced by EBNF desugaring (§6).
func (p *Parser[L]) HideRule(label L) {
	p.hidden[label] = true
}

// Rules exposes the underlying rule table, e.g. for diagnostics or for
// grafting rules produced by ebnf.ApplyEBNF.
func (p *Parser[L]) Rules() *rule.Table[L] {
	return p.rules
}

// Parse recognises tokens against the accumulated grammar and resolves
// the result into a single syntax tree (§4). source is used only to
// compute line/column information for error messages.
//
// It fails with *errs.UnexpectedToken if recognition stalls before
// consuming every token, or *errs.UnexpectedEOF if every token was
// consumed but no derivation of the entry rule spans the whole input.
func (p *Parser[L]) Parse(source string, tokens []token.Token[L]) (*tree.Node[L], error) {
	nullables := nullable.Analyze(p.rules.Rules())
	sets := earley.Recognize(p.entry, p.rules, nullables, tokens)

	if len(sets)-1 < len(tokens) {
		tok := tokens[len(sets)-1]
		line, col := errs.LineCol(source, tok.Offset)
		return nil, &errs.UnexpectedToken[L]{Token: tok, Line: line, Col: col}
	}

	final := sets[len(sets)-1]
	var root *earley.Item[L]
	for i := 0; i < final.Len(); i++ {
		item := final.At(i)
		if item.Origin == 0 && item.IsComplete() && item.Rule.Label == p.entry {
			if root == nil || item.Rule.Index < root.Rule.Index {
				root = item
			}
		}
	}
	if root == nil {
		return nil, &errs.UnexpectedEOF{}
	}

	completed := root.AsCompleted(len(sets) - 1)
	return completed.AsNode(p.hidden, nullables, tokens), nil
}
