package parser

import (
	"github.com/pkg/errors"

	"github.com/controlj/regexc/lexer"
)

func (p *Parser) advance() lexer.Token {
	if p.c > len(p.tokens)-1 {
		return lexer.NilToken
	}

	t := p.tokens[p.c]
	p.c++
	return t
}

func (p *Parser) peekn(i int) lexer.Token {
	if p.c+i > len(p.tokens)-1 {
		return lexer.NilToken
	}

	return p.tokens[p.c+i]
}

func (p *Parser) errat(t lexer.Token, f string, arg ...interface{}) error {
	args := append(arg, t.Pos)
	return p.err(f+" at %v", args...)
}

func (p *Parser) err(f string, args ...interface{}) error {
	return errors.Errorf(f, args...)
}

func (p *Parser) wrap(name string, err error) error {
	return Wrap(name, err)
}

func (p *Parser) expect(matcher lexer.Matcher) (lexer.Token, error) {
	t := p.advance()
	return t, matcher.Validate(t)
}

func (p *Parser) eat(matcher lexer.Matcher) bool {
	if matcher.Is(p.peekn(0)) {
		p.advance()
		return true
	}

	return false
}
