package lexer

import (
	"fmt"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

type Token plexer.Token

var EOF = plexer.EOF

var NilToken = Token{Type: EOF}

// Rune returns the token value as a single rune. Only meaningful for
// one-rune tokens such as Action placeholders and Op characters.
func (t Token) Rune() rune {
	for _, r := range t.Value {
		return r
	}
	return 0
}

func (t Token) StringAlign() string {
	return fmt.Sprintf("%-10v %7v %q", SymbolName(t.Type), t.Pos, t.Value)
}

func (t Token) String() string {
	return fmt.Sprintf("%v %v %q", SymbolName(t.Type), t.Pos, t.Value)
}
