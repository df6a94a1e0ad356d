package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlj/regexc/automata"
)

const example = `%prefix example
#include <file.h>
static char buffer[128];
%names
digit = [0-9]
letter = [A-Fa-f]
word = letter (digit|letter)*
%rule
word { emit(); }
%rule
digit{1,3}','
`

func compile(t *testing.T, src string) *Result {
	res, err := Compile(strings.NewReader(src))
	require.NoError(t, err)
	return res
}

// drive runs the DFA over the input, following action transitions
// unconditionally, and reports whether it ends on an accepting state.
func drive(d *automata.DFA, input string) bool {
	s := d.Start
	for _, r := range input {
		if s = d.Step(s, r); s == nil {
			return false
		}
	}
	for {
		if s.Accept {
			return true
		}
		edges := s.ActionEdges()
		if len(edges) == 0 {
			return false
		}
		s = edges[0].To
	}
}

func TestCompileExample(t *testing.T) {
	res := compile(t, example)

	assert.Equal(t, "example", res.Actions.Prefix())
	assert.Equal(t, []string{"#include <file.h>", "static char buffer[128];"}, res.Actions.Headers())
	require.Equal(t, 1, res.Actions.Len())
	assert.Equal(t, "{ emit(); }", res.Actions.Get(0))

	assert.True(t, res.NFAStates > 0)
	require.NotNil(t, res.DFA)
}

func TestCompiledLanguage(t *testing.T) {
	res := compile(t, example)
	d := res.DFA

	// first rule: a word followed by the emit action
	assert.True(t, drive(d, "a"))
	assert.True(t, drive(d, "f00d"))

	// second rule: one to three digits and a comma
	assert.True(t, drive(d, "1,"))
	assert.True(t, drive(d, "123,"))

	assert.False(t, drive(d, ""))
	assert.False(t, drive(d, "1234,"))
	assert.False(t, drive(d, "z"))
}

func TestRulePriorityOrderIsPreserved(t *testing.T) {
	assert.Equal(t, "([0-9]+ )|([a-z]+ )", Compose([]string{"[0-9]+ ", "[a-z]+ "}))
	assert.Equal(t, "([0-9]+ )", Compose([]string{"[0-9]+ "}))
}

func TestCompileNoRules(t *testing.T) {
	_, err := Compile(strings.NewReader("%names\ndigit = [0-9]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rules")
}

func TestCompileUndefinedMacro(t *testing.T) {
	_, err := Compile(strings.NewReader("%rule\nnope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined macro")
}

func TestCompilePropagatesRuleFileErrors(t *testing.T) {
	_, err := Compile(strings.NewReader("header only\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}
