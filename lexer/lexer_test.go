package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, s string) []Token {
	toks, err := Tokenize(s)
	require.NoError(t, err)

	require.NotEmpty(t, toks)
	last := toks[len(toks)-1]
	require.Equal(t, EOF, last.Type)

	return toks[:len(toks)-1]
}

func kinds(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = SymbolName(t.Type) + " " + t.Value
	}
	return out
}

func TestTokenizePattern(t *testing.T) {
	toks := tokenize(t, `'a{b}' [0-9]+ | word{2,3} `+"")

	assert.Equal(t, []string{
		"Quoted 'a{b}'",
		"Class [0-9]",
		"Op +",
		"Op |",
		"Ident word",
		"Repeat {2,3}",
		"Action ",
	}, kinds(toks))
}

func TestTokenizeQuotedEscapes(t *testing.T) {
	toks := tokenize(t, `'don\'t' "say \"hi\""`)

	assert.Equal(t, []string{
		`Quoted 'don\'t'`,
		`Quoted "say \"hi\""`,
	}, kinds(toks))
}

func TestTokenizeNegatedClass(t *testing.T) {
	toks := tokenize(t, `[^a-z\]]`)

	assert.Equal(t, []string{`Class [^a-z\]]`}, kinds(toks))
}

func TestTokenizeEscapedChar(t *testing.T) {
	toks := tokenize(t, `\+\n.`)

	assert.Equal(t, []string{
		`Char \+`,
		`Char \n`,
		"Char .",
	}, kinds(toks))
}

func TestTokenizeUnboundedRepeat(t *testing.T) {
	toks := tokenize(t, "x{12,}")

	assert.Equal(t, []string{
		"Ident x",
		"Repeat {12,}",
	}, kinds(toks))
}

func TestWhitespaceIsDropped(t *testing.T) {
	toks := tokenize(t, "  a   b  ")

	assert.Equal(t, []string{"Ident a", "Ident b"}, kinds(toks))
}
