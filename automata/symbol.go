package automata

import (
	"fmt"
	"strings"

	"github.com/controlj/regexc/parser"
)

type SymbolKind int

// The automaton alphabet is typed: real input symbols (single runes or
// class tests) and reserved action symbols are distinct variants, never
// overlapping code-point tricks.
const (
	Epsilon SymbolKind = iota
	Char
	Class
	Action
)

type Symbol struct {
	Kind    SymbolKind
	Ch      rune
	Negated bool
	Ranges  []parser.Range
	Action  int
}

func Eps() Symbol {
	return Symbol{Kind: Epsilon}
}

func CharSym(r rune) Symbol {
	return Symbol{Kind: Char, Ch: r}
}

func ClassSym(c *parser.Class) Symbol {
	return Symbol{Kind: Class, Negated: c.Negated, Ranges: c.Ranges}
}

func ActionSym(id int) Symbol {
	return Symbol{Kind: Action, Action: id}
}

// Matches reports whether an input rune is consumed by this symbol.
// Epsilon and action symbols never consume input.
func (s Symbol) Matches(r rune) bool {
	switch s.Kind {
	case Char:
		return s.Ch == r
	case Class:
		in := false
		for _, rg := range s.Ranges {
			if rg.Lo <= r && r <= rg.Hi {
				in = true
				break
			}
		}
		if s.Negated {
			return !in
		}
		return in
	}
	return false
}

// Key is the canonical identity used to deduplicate alphabet members.
func (s Symbol) Key() string {
	switch s.Kind {
	case Epsilon:
		return "eps"
	case Char:
		return fmt.Sprintf("c%U", s.Ch)
	case Action:
		return fmt.Sprintf("a%d", s.Action)
	}

	var b strings.Builder
	b.WriteByte('[')
	if s.Negated {
		b.WriteByte('^')
	}
	for _, rg := range s.Ranges {
		fmt.Fprintf(&b, "%U-%U;", rg.Lo, rg.Hi)
	}
	b.WriteByte(']')
	return b.String()
}

func (s Symbol) String() string {
	switch s.Kind {
	case Epsilon:
		return "ε"
	case Char:
		return fmt.Sprintf("%q", s.Ch)
	case Action:
		return fmt.Sprintf("action(%d)", s.Action)
	}

	var b strings.Builder
	b.WriteByte('[')
	if s.Negated {
		b.WriteByte('^')
	}
	for _, rg := range s.Ranges {
		if rg.Lo == rg.Hi {
			fmt.Fprintf(&b, "%c", rg.Lo)
		} else {
			fmt.Fprintf(&b, "%c-%c", rg.Lo, rg.Hi)
		}
	}
	b.WriteByte(']')
	return b.String()
}
