/*
Command gramma is an interactive sandbox for experimenting with the
parser: type an arithmetic expression and it is parsed and rendered as a
tree. Pass -grammar to compile an EBNF file instead and parse input
against that grammar's entry symbol (-entry), using a lexer derived from
the grammar's own terminals rather than the built-in arithmetic one (see
grammarLexer).

Grounded on terex/terexlang/trepl/repl.go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/rfielding/gramma/ebnf"
	"github.com/rfielding/gramma/lexer"
	"github.com/rfielding/gramma/lexkit"
	"github.com/rfielding/gramma/parser"
	"github.com/rfielding/gramma/tree"
)

// tracer traces with key 'gramma.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("gramma.cmd")
}

const (
	symSum     = "Sum"
	symProduct = "Product"
	symFactor  = "Factor"
	symPlus    = "+"
	symMinus   = "-"
	symTimes   = "*"
	symDivide  = "/"
	symLParen  = "("
	symRParen  = ")"
	symNum     = "num"
)

// builtinParser builds the demo arithmetic grammar:
//
//	Sum     = Sum ('+'|'-') Product | Product
//	Product = Product ('*'|'/') Factor | Factor
//	Factor  = '(' Sum ')' | num
func builtinParser() *parser.Parser[string] {
	p := parser.NewParser[string](symSum)
	p.AddRules(symSum, [][]string{
		{symSum, symPlus, symProduct},
		{symSum, symMinus, symProduct},
		{symProduct},
	})
	p.AddRules(symProduct, [][]string{
		{symProduct, symTimes, symFactor},
		{symProduct, symDivide, symFactor},
		{symFactor},
	})
	p.AddRules(symFactor, [][]string{
		{symLParen, symSum, symRParen},
		{symNum},
	})
	return p
}

// builtinLexer recognises digit runs as "num" and each of + - * / ( ) as
// itself, skipping whitespace.
func builtinLexer() *lexer.Lexer[string] {
	lx := lexer.New[string]()
	for _, op := range []string{symPlus, symMinus, symTimes, symDivide, symLParen, symRParen} {
		lx.AddToken(op, op)
	}
	lx.AddLexer(func(source string, offset int) (string, int) {
		n := 0
		for _, r := range source[offset:] {
			if !unicode.IsDigit(r) {
				break
			}
			n++
		}
		return symNum, n
	})
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
	return lx
}

// grammarLexer builds a lexer for an externally loaded EBNF grammar: every
// label that never appears as a rule's left-hand side is a terminal, and is
// registered either as a lexmachine-backed class (identifiers, numbers) or
// as a literal token matched verbatim (operators, punctuation, keywords --
// anything an EBNF quoted literal produces, since the compiler's rewrite
// rule uses the unquoted content itself as the label). Whitespace is
// skipped by a plain lexer.Ignorer, not by the lexmachine adapter: see
// lexkit.Adapter.SubLexer's doc comment for why the two must not mix.
func grammarLexer(p *parser.Parser[string]) (*lexer.Lexer[string], error) {
	nonTerminals := make(map[string]bool)
	for _, r := range p.Rules().Rules() {
		nonTerminals[r.Label] = true
	}
	terminals := make(map[string]bool)
	for _, r := range p.Rules().Rules() {
		for _, sym := range r.RHS {
			if !nonTerminals[sym] {
				terminals[sym] = true
			}
		}
	}

	a := lexkit.New[string]()
	lx := lexer.New[string]()
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

	haveClass := false
	for term := range terminals {
		switch term {
		case "ident", "identifier", "name":
			a.Add(`[a-zA-Z_][a-zA-Z0-9_]*`, term)
			haveClass = true
		case "num", "number", "integer":
			a.Add(`[0-9]+`, term)
			haveClass = true
		default:
			lx.AddToken(term, term)
		}
	}
	if haveClass {
		if err := a.Compile(); err != nil {
			return nil, err
		}
		lx.AddLexer(a.SubLexer())
	}
	return lx, nil
}

func main() {
	gtraceLevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	grammarFile := flag.String("grammar", "", "Path to an EBNF grammar file (default: built-in arithmetic grammar)")
	entry := flag.String("entry", symSum, "Entry (start) symbol, when -grammar is given")
	flag.Parse()

	gtrace.SyntaxTracer = gologadapter.New()
	tracing.Select("gramma.cmd").SetTraceLevel(tracing.TraceLevelFromString(*gtraceLevel))

	initDisplay()

	var p *parser.Parser[string]
	var lx *lexer.Lexer[string]
	if *grammarFile != "" {
		src, err := os.ReadFile(*grammarFile)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		e, err := ebnf.NewParser(string(src), *entry)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		p = e.Inner()
		lx, err = grammarLexer(p)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
	} else {
		p = builtinParser()
		lx = builtinLexer()
	}

	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		runOnce(p, lx, input)
		return
	}

	repl, err := readline.New("gramma> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to gramma. Quit with <ctrl>D.")
	for {
		line, err := repl.Readline()
		if err != nil {
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		runOnce(p, lx, line)
	}
	pterm.Info.Println("Good bye!")
}

func runOnce(p *parser.Parser[string], lx *lexer.Lexer[string], input string) {
	tokens, err := lx.Analyze(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	node, err := p.Parse(input, tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	root := treeToPterm(node)
	pterm.DefaultTree.WithRoot(root).Render()
}

func treeToPterm(n *tree.Node[string]) pterm.TreeNode {
	if n.IsLeaf() {
		return pterm.TreeNode{Text: fmt.Sprintf("%s %q", n.Label(), n.Token().Content)}
	}
	children := make([]pterm.TreeNode, 0, len(n.Children()))
	for _, c := range n.Children() {
		children = append(children, treeToPterm(c))
	}
	return pterm.TreeNode{Text: n.Label(), Children: children}
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
