/*
Package gramma is a context-free grammar engine: an Earley recognizer
that accepts any context-free grammar, ambiguous or left-recursive,
ambiguity resolution by declaration order and longest match, and an
EBNF-to-rule compiler so grammars can be written instead of assembled
call by call. Package structure is as follows:

■ token: the token and span types shared by every other package.

■ rule: the rule table -- an indexed, insertion-ordered store of grammar
productions, parametric in a comparable label type.

■ nullable: fixed-point analysis of which non-terminals derive the empty
string, a prerequisite for correct Earley prediction.

■ lexer: a configurable tokenizer combining ignorers, sub-lexers and
literal tokens.

■ lexkit: an adapter letting github.com/timtadh/lexmachine regex-DFA
patterns serve as lexer sub-lexers.

■ lr/earley: the Earley recognizer and its ambiguity-resolution and
tree-materialization machinery.

■ tree: the syntax tree produced by resolving an ambiguous parse into one
derivation.

■ parser: the public grammar-construction and parsing API built atop the
above.

■ ebnf: compiles an EBNF grammar description into rules for package
parser.

■ errs: the error taxonomy shared by the lexer and parser.

■ cmd/gramma: an interactive command-line sandbox.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gramma
