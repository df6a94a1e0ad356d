package parser

import (
	"strconv"
	"strings"

	"github.com/controlj/regexc/lexer"
	"github.com/controlj/regexc/rulefile"
)

// Parse turns one fully composed pattern string into a syntax tree.
// Identifier tokens are macro references resolved through names; each
// resolved fragment is parsed in place as a parenthesized group, so
// expansion is recursive and happens lazily at the leaf.
func Parse(pattern string, names map[string]string) (Node, error) {
	toks, err := lexer.Tokenize(pattern)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		tokens: toks,
		names:  names,
	}

	n, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if t := p.peekn(0); t.Type != lexer.EOF {
		return nil, p.errat(t, "unbalanced group")
	}

	return n, nil
}

type Parser struct {
	tokens []lexer.Token
	c      int
	names  map[string]string

	// macro names currently being expanded, outermost first
	expanding []string
}

func (p *Parser) alternation() (_ Node, rerr error) {
	defer func() {
		if rerr != nil {
			rerr = p.wrap("alt", rerr)
		}
	}()

	left, err := p.concat()
	if err != nil {
		return nil, err
	}

	for p.eat(lexer.NewMatcher("Op", "|")) {
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		left = &Alt{Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) concat() (_ Node, rerr error) {
	defer func() {
		if rerr != nil {
			rerr = p.wrap("cat", rerr)
		}
	}()

	var left Node
	for {
		t := p.peekn(0)
		if t.Type == lexer.EOF || lexer.NewMatcher("Op", "|", ")").Is(t) {
			break
		}

		n, err := p.quantified()
		if err != nil {
			return nil, err
		}

		if left == nil {
			left = n
		} else {
			left = &Concat{Left: left, Right: n}
		}
	}

	if left == nil {
		return nil, p.errat(p.peekn(0), "empty alternation branch")
	}
	return left, nil
}

func (p *Parser) quantified() (Node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peekn(0)
		switch {
		case lexer.NewMatcher("Op", "*").Is(t):
			p.advance()
			n = &Star{Inner: n}
		case lexer.NewMatcher("Op", "+").Is(t):
			p.advance()
			n = &Plus{Inner: n}
		case lexer.NewMatcher("Op", "?").Is(t):
			p.advance()
			n = &Opt{Inner: n}
		case lexer.NewMatcher("Repeat").Is(t):
			p.advance()
			min, max, err := p.bounds(t)
			if err != nil {
				return nil, err
			}
			n = &Repeat{Inner: n, Min: min, Max: max}
		default:
			return n, nil
		}
	}
}

func (p *Parser) atom() (_ Node, rerr error) {
	defer func() {
		if rerr != nil {
			rerr = p.wrap("atom", rerr)
		}
	}()

	t := p.advance()
	switch t.Type {
	case lexer.EOF:
		return nil, p.errat(t, "unexpected end of pattern")
	case lexer.Symbol("Op"):
		if t.Value == "(" {
			inner, err := p.alternation()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.NewMatcher("Op", ")")); err != nil {
				return nil, p.errat(t, "unbalanced group")
			}
			return &Group{Inner: inner}, nil
		}
		return nil, p.errat(t, "dangling quantifier %q", t.Value)
	case lexer.Symbol("Repeat"):
		return nil, p.errat(t, "dangling quantifier %q", t.Value)
	case lexer.Symbol("Quoted"):
		return p.literals(t)
	case lexer.Symbol("Class"):
		return p.class(t)
	case lexer.Symbol("Action"):
		return &Action{ID: int(t.Rune() - rulefile.ActionBase)}, nil
	case lexer.Symbol("Ident"):
		return p.macro(t)
	case lexer.Symbol("Char"):
		c, err := p.char(t)
		if err != nil {
			return nil, err
		}
		return &Literal{Ch: c}, nil
	}

	return nil, p.errat(t, "unexpected token %v", t)
}

// char decodes a Char token: either a bare rune or a backslash escape.
func (p *Parser) char(t lexer.Token) (rune, error) {
	runes := []rune(t.Value)
	c := runes[0]
	if c == '\\' {
		if len(runes) == 1 {
			return 0, p.errat(t, "trailing backslash")
		}
		return unescape(runes[1]), nil
	}
	switch c {
	case '[', ']':
		return 0, p.errat(t, "unbalanced character class")
	case '{', '}':
		return 0, p.errat(t, "malformed repeat bounds")
	}
	return c, nil
}

// literals expands a quoted segment into a concatenation of literal
// leaves. Metacharacters inside quotes have no special meaning.
func (p *Parser) literals(t lexer.Token) (Node, error) {
	body := []rune(t.Value)
	body = body[1 : len(body)-1]
	if len(body) == 0 {
		return nil, p.errat(t, "empty literal")
	}

	var left Node
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			i++
			c = unescape(body[i])
		}
		leaf := &Literal{Ch: c}
		if left == nil {
			left = leaf
		} else {
			left = &Concat{Left: left, Right: leaf}
		}
	}
	return left, nil
}

// class decodes a whole [...] token into a Class node.
func (p *Parser) class(t lexer.Token) (Node, error) {
	body := []rune(t.Value)
	body = body[1 : len(body)-1]

	cls := &Class{}
	if len(body) > 0 && body[0] == '^' {
		cls.Negated = true
		body = body[1:]
	}

	next := func(i int) (rune, int) {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			return unescape(body[i+1]), i + 2
		}
		return c, i + 1
	}

	for i := 0; i < len(body); {
		var lo rune
		lo, i = next(i)
		hi := lo
		if i+1 < len(body) && body[i] == '-' {
			hi, i = next(i + 1)
			if hi < lo {
				return nil, p.errat(t, "bad range in character class")
			}
		}
		cls.Ranges = append(cls.Ranges, Range{Lo: lo, Hi: hi})
	}

	if len(cls.Ranges) == 0 {
		return nil, p.errat(t, "empty character class")
	}
	return cls, nil
}

func (p *Parser) bounds(t lexer.Token) (int, int, error) {
	body := strings.Trim(t.Value, "{}")
	parts := strings.SplitN(body, ",", 2)

	min, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, p.errat(t, "malformed repeat bounds %q", t.Value)
	}

	max := min
	if len(parts) == 2 {
		if parts[1] == "" {
			max = -1
		} else if max, err = strconv.Atoi(parts[1]); err != nil {
			return 0, 0, p.errat(t, "malformed repeat bounds %q", t.Value)
		}
	}

	if max >= 0 && max < min {
		return 0, 0, p.errat(t, "malformed repeat bounds %q", t.Value)
	}
	return min, max, nil
}

// macro resolves an identifier through the name table and parses its
// fragment in place.
func (p *Parser) macro(t lexer.Token) (_ Node, rerr error) {
	defer func() {
		if rerr != nil {
			rerr = p.wrap("macro "+t.Value, rerr)
		}
	}()

	frag, ok := p.names[t.Value]
	if !ok {
		return nil, p.errat(t, "undefined macro %q", t.Value)
	}
	for _, name := range p.expanding {
		if name == t.Value {
			return nil, p.errat(t, "circular macro %q", t.Value)
		}
	}

	toks, err := lexer.Tokenize(frag)
	if err != nil {
		return nil, err
	}

	sub := &Parser{
		tokens:    toks,
		names:     p.names,
		expanding: append(append([]string{}, p.expanding...), t.Value),
	}

	n, err := sub.alternation()
	if err != nil {
		return nil, err
	}
	if tt := sub.peekn(0); tt.Type != lexer.EOF {
		return nil, sub.errat(tt, "unbalanced group")
	}

	return &Group{Inner: n}, nil
}

var escapes = map[rune]rune{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'f': '\f',
	'v': '\v',
	'a': '\a',
	'b': '\b',
	'0': 0,
}

func unescape(c rune) rune {
	if r, ok := escapes[c]; ok {
		return r
	}
	return c
}
