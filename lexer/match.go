package lexer

import (
	"fmt"
)

// Matcher tests a token against a symbol name and, optionally, a set of
// accepted values.
type Matcher interface {
	Is(t Token) bool
	Validate(t Token) error
}

func NewMatcher(name string, values ...string) Matcher {
	return crit{
		Name:   name,
		Values: values,
	}
}

type crit struct {
	Name   string
	Values []string
}

func (c crit) Is(t Token) bool {
	if t.Type != Symbol(c.Name) {
		return false
	}

	if len(c.Values) == 0 {
		return true
	}

	for _, v := range c.Values {
		if t.Value == v {
			return true
		}
	}

	return false
}

func (c crit) Validate(t Token) error {
	if !c.Is(t) {
		if len(c.Values) > 0 {
			return fmt.Errorf("expected `%v` with value in %v, got %v", c.Name, c.Values, t)
		}
		return fmt.Errorf("expected `%v`, got %v", c.Name, t)
	}
	return nil
}
