/*
Package ebnf compiles an EBNF grammar description into rules for package
parser: optional ([ ]), repetition ({ }), grouping (( )), alternation (|)
and concatenation are desugared into plain context-free productions, with
auxiliary non-terminals introduced as needed and named after the verbatim
source span they were parsed from (so that two occurrences of the exact
same sub-expression share one auxiliary rule).

The compiler bootstraps on itself: bootstrapParser, the Earley parser for the
EBNF notation, is itself built by hand from the same parser package used
for everything else.

Grounded on ebnf.rs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ebnf

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rfielding/gramma/lexer"
	"github.com/rfielding/gramma/parser"
	"github.com/rfielding/gramma/token"
	"github.com/rfielding/gramma/tree"
)

const (
	labelDefinition   = "definition"
	labelOptional     = "optional"
	labelRepetition   = "repetition"
	labelGroup        = "group"
	labelAlternation  = "alternation"
	labelConcat       = "concatenation"
	labelGrammar      = "grammar"
	labelRule         = "rule"
	labelRHS          = "rhs"
	labelNonTerm      = "non_term"
	labelTerm         = "term"
)

var literals = []string{"::=", ":=", "=", "|", "[", "]", "{", "}", "(", ")", ";"}

func bootstrapLexer() *lexer.Lexer[string] {
	lx := lexer.New[string]()
	for _, lit := range literals {
		lx.AddToken(lit, lit)
	}
	lx.AddLexer(termSubLexer)
	lx.AddLexer(nonTermSubLexer)
	lx.AddIgnorer(commentIgnorer)
	lx.AddIgnorer(whitespaceIgnorer)
	return lx
}

// termSubLexer matches a single- or double-quoted literal, e.g. "+" or
// 'begin'. The closing delimiter need not match the opening one -- only
// that it is one of the two quote characters, mirroring the original's
// leniency.
func termSubLexer(source string, start int) (string, int) {
	if start >= len(source) {
		return "", 0
	}
	first := source[start]
	if first != '"' && first != '\'' {
		return "", 0
	}
	rest := source[start+1:]
	idx := strings.IndexAny(rest, "\r\n\"'")
	if idx < 0 {
		return "", 0
	}
	if rest[idx] != '"' && rest[idx] != '\'' {
		return "", 0
	}
	return "term", idx + 2
}

func nonTermSubLexer(source string, start int) (string, int) {
	rest := []rune(source[start:])
	if len(rest) == 0 || !unicode.IsLetter(rest[0]) {
		return "", 0
	}
	n := 1
	for n < len(rest) && (unicode.IsLetter(rest[n]) || unicode.IsDigit(rest[n]) || rest[n] == '_') {
		n++
	}
	return "non_term", len(string(rest[:n]))
}

// commentIgnorer skips (* ... *) comments, consuming to end of source if
// the comment is never closed.
func commentIgnorer(source string, start int) int {
	if !strings.HasPrefix(source[start:], "(*") {
		return 0
	}
	rest := source[start+2:]
	if idx := strings.Index(rest, "*)"); idx >= 0 {
		return idx + 4
	}
	return len(source) - start
}

func whitespaceIgnorer(source string, start int) int {
	n := 0
	for _, r := range source[start:] {
		if !unicode.IsSpace(r) {
			break
		}
		n += utf8.RuneLen(r)
	}
	return n
}

// bootstrapParser builds the Earley parser for EBNF notation itself,
// following https://en.wikipedia.org/wiki/Extended_Backus%E2%80%93Naur_form.
func bootstrapParser() *parser.Parser[string] {
	p := parser.NewParser[string](labelGrammar)

	p.AddRules(labelDefinition, [][]string{{"::="}, {":="}, {"="}})
	p.AddRules(labelOptional, [][]string{{"[", labelRHS, "]"}})
	p.AddRules(labelRepetition, [][]string{{"{", labelRHS, "}"}})
	p.AddRules(labelGroup, [][]string{{"(", labelRHS, ")"}})
	p.AddRules(labelAlternation, [][]string{{labelRHS, "|", labelRHS}})
	p.AddRules(labelConcat, [][]string{{labelRHS, labelRHS}})

	p.AddRules(labelGrammar, [][]string{{labelRule}, {labelRule, labelGrammar}})
	p.AddRules(labelRule, [][]string{{labelNonTerm, labelDefinition, labelRHS, ";"}})
	p.AddRules(labelRHS, [][]string{
		{labelNonTerm},
		{labelTerm},
		{labelOptional},
		{labelRepetition},
		{labelGroup},
		{labelAlternation},
		{labelConcat},
	})
	return p
}

// rulesMap accumulates, per label, the list of alternative right-hand
// sides discovered so far.
type rulesMap map[string][][]string

func (rules rulesMap) appendAlt(label string) {
	rules[label] = append(rules[label], nil)
}

func (rules rulesMap) appendSymbol(label, symbol string) {
	alts := rules[label]
	alts[len(alts)-1] = append(alts[len(alts)-1], symbol)
}

// rhsParser walks one rhs subtree, appending symbols to the alternative
// currently open for ruleLabel (or, when appendRule is set, opening a
// fresh one first). It is driven from an explicit work stack rather than
// recursion so that alternation and concatenation -- which each spawn two
// further rhsParsers -- can be processed without growing the Go call
// stack with the grammar's nesting depth.
type rhsParser struct {
	appendRule bool
	ruleLabel  string
	children   []*tree.Node[string]
	firstRun   bool
}

func newRHSParser(appendRule bool, ruleLabel string, children []*tree.Node[string]) *rhsParser {
	return &rhsParser{appendRule: appendRule, ruleLabel: ruleLabel, children: children, firstRun: true}
}

// parse processes children until it either runs out (returning nil) or
// hits a node requiring further, independent rhsParsers of its own
// (alternation, concatenation, or a bracketed construct introducing an
// auxiliary rule), which it returns for the caller to push onto the
// stack ahead of whatever remains of this one.
func (rp *rhsParser) parse(source string, rules rulesMap) []*rhsParser {
	if rp.firstRun {
		rp.firstRun = false
		if rp.appendRule {
			rules.appendAlt(rp.ruleLabel)
		}
	}

	for len(rp.children) > 0 {
		node := rp.children[0]
		rp.children = rp.children[1:]
		span := node.Span()

		if node.IsLeaf() {
			switch node.Label() {
			case labelTerm:
				content := node.Token().Content
				rules.appendSymbol(rp.ruleLabel, content[1:len(content)-1])
			case labelNonTerm:
				rules.appendSymbol(rp.ruleLabel, node.Token().Content)
			}
			continue
		}

		switch node.Label() {
		case labelOptional:
			name := source[span.From:span.To]
			rules.appendSymbol(rp.ruleLabel, name)
			rules[name] = [][]string{{}} // seed the "absent" alternative
			return []*rhsParser{newRHSParser(true, name, node.Children()[1].Children())}

		case labelRepetition:
			repName := source[span.From:span.To]
			innerName := source[span.From : span.To-1]
			rules.appendSymbol(rp.ruleLabel, repName)
			rules[repName] = [][]string{{}, {repName, innerName}}
			return []*rhsParser{newRHSParser(true, innerName, node.Children()[1].Children())}

		case labelGroup:
			name := source[span.From:span.To]
			rules.appendSymbol(rp.ruleLabel, name)
			return []*rhsParser{newRHSParser(true, name, node.Children()[1].Children())}

		case labelAlternation:
			label := rp.ruleLabel
			left := node.Children()[0].Children()
			right := node.Children()[2].Children()
			return []*rhsParser{
				newRHSParser(false, label, left),
				newRHSParser(true, label, right),
			}

		case labelConcat:
			label := rp.ruleLabel
			left := node.Children()[0].Children()
			right := node.Children()[1].Children()
			return []*rhsParser{
				newRHSParser(false, label, left),
				newRHSParser(false, label, right),
			}
		}
	}
	return nil
}

// parseEBNF lexes and parses source as an EBNF document, then desugars
// every rule's rhs into flat productions.
func parseEBNF(source string) (rulesMap, error) {
	tokens, err := bootstrapLexer().Analyze(source)
	if err != nil {
		return nil, err
	}
	ast, err := bootstrapParser().Parse(source, tokens)
	if err != nil {
		return nil, err
	}

	rules := make(rulesMap)
	var stack []*rhsParser

	next := ast
	for next != nil {
		current := next
		next = nil
		for _, node := range current.Children() {
			switch node.Label() {
			case labelRule:
				children := node.Children() // non_term, definition, rhs, ;
				label := children[0].Token().Content
				rules[label] = nil
				stack = append(stack, newRHSParser(true, label, children[2].Children()))
			case labelGrammar:
				next = node
			}
		}
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		top := stack[n]
		stack = stack[:n]
		more := top.parse(source, rules)
		for i := len(more) - 1; i >= 0; i-- {
			stack = append(stack, more[i])
		}
	}
	return rules, nil
}

// ApplyEBNF desugars source and grafts every resulting rule onto parser.
// Auxiliary non-terminals -- those named after a source span beginning
// with '{', '[' or '(' -- are marked hidden, so their tree branches
// flatten into their parent instead of appearing as nodes in their own
// right.
func ApplyEBNF(p *parser.Parser[string], source string) error {
	rules, err := parseEBNF(source)
	if err != nil {
		return err
	}
	for label, rhss := range rules {
		p.AddRules(label, rhss)
		if strings.HasPrefix(label, "{") || strings.HasPrefix(label, "[") || strings.HasPrefix(label, "(") {
			p.HideRule(label)
		}
	}
	return nil
}

// Parser wraps a parser.Parser built entirely from an EBNF description.
type Parser struct {
	inner *parser.Parser[string]
}

// NewParser compiles source as an EBNF grammar and returns a Parser whose
// start symbol is entry.
func NewParser(source, entry string) (*Parser, error) {
	p := parser.NewParser[string](entry)
	if err := ApplyEBNF(p, source); err != nil {
		return nil, err
	}
	return &Parser{inner: p}, nil
}

// Parse recognises tokens (lexed from source by the caller's own lexer)
// against the compiled grammar.
func (e *Parser) Parse(source string, tokens []token.Token[string]) (*tree.Node[string], error) {
	return e.inner.Parse(source, tokens)
}

// Inner exposes the underlying parser.Parser, e.g. to add further rules
// programmatically or to inspect the compiled rule table.
func (e *Parser) Inner() *parser.Parser[string] {
	return e.inner
}
