package lexer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

var _def *stateful.Definition

func init() {
	// Pattern text is one composed line: the rule-file reader has already
	// replaced action blocks by single private-use runes and joined lines
	// with spaces. Quoted literals and whole character classes lex as one
	// token each; their innards are decoded by the parser.
	_def = stateful.Must(stateful.Rules{
		"Root": {
			{Name: `Quoted`, Pattern: `'(\\.|[^'\\])*'|"(\\.|[^"\\])*"`},
			{Name: `Class`, Pattern: `\[\^?(\\.|[^\]\\])*\]`},
			{Name: `Repeat`, Pattern: `\{\d+(,\d*)?\}`},
			{Name: `Action`, Pattern: `[\x{E000}-\x{F8FF}]`},
			{Name: `Op`, Pattern: `[|*+?()]`},
			{Name: `Ident`, Pattern: `[a-zA-Z]\w*`},
			{Name: `ws`, Pattern: `\s+`},
			{Name: `Char`, Pattern: `\\.|.`},
		},
	})
}

// Tokenize lexes one pattern string. Whitespace outside quotes separates
// tokens and is dropped here; the trailing EOF token is kept.
func Tokenize(s string) ([]Token, error) {
	lex, err := Def().Lex("", strings.NewReader(s))
	if err != nil {
		return nil, err
	}

	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	ws := Symbol("ws")
	mytoks := make([]Token, 0, len(toks))
	for _, t := range toks {
		if t.Type == ws {
			continue
		}
		mytoks = append(mytoks, Token(t))
	}

	return mytoks, nil
}

func Def() *stateful.Definition {
	return _def
}

func Symbols() map[string]rune {
	return Def().Symbols()
}

func Symbol(name string) rune {
	t := Symbols()[name]
	if t == 0 {
		panic("unknown symbol: " + name)
	}
	return t
}

var typeToName map[rune]string

func init() {
	typeToName = map[rune]string{}
	for s, k := range Symbols() {
		typeToName[k] = s
	}
}

func SymbolName(t rune) string {
	return typeToName[t]
}
