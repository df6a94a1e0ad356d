package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dfa(t *testing.T, pattern string, names map[string]string) *DFA {
	return BuildDFA(BuildNFA(tree(t, pattern, names)))
}

// run drives the DFA over the input, one rune at a time. It returns nil
// if the automaton jams.
func run(d *DFA, input string) *DState {
	s := d.Start
	for _, r := range input {
		if s = d.Step(s, r); s == nil {
			return nil
		}
	}
	return s
}

func accepts(d *DFA, input string) bool {
	s := run(d, input)
	return s != nil && s.Accept
}

func TestDFATwoRules(t *testing.T) {
	names := map[string]string{
		"digit":  "[0-9]",
		"letter": "[A-Fa-f]",
	}

	d := dfa(t, "(digit+)|(letter+)", names)

	assert.True(t, accepts(d, "123"))
	assert.True(t, accepts(d, "abc"))
	assert.True(t, accepts(d, "1"))

	// a digit run cannot continue with a letter
	assert.Nil(t, run(d, "1a"))
	assert.False(t, accepts(d, ""))
	assert.False(t, accepts(d, "z"))
}

func TestDFAQuantifiers(t *testing.T) {
	d := dfa(t, `'a'*'b'`, nil)

	assert.True(t, accepts(d, "b"))
	assert.True(t, accepts(d, "aaab"))
	assert.False(t, accepts(d, "aaa"))
	assert.Nil(t, run(d, "ba"))
}

func TestDFABoundedRepeat(t *testing.T) {
	d := dfa(t, `[0-9]{2,3}`, nil)

	assert.False(t, accepts(d, "1"))
	assert.True(t, accepts(d, "12"))
	assert.True(t, accepts(d, "123"))
	assert.Nil(t, run(d, "1234"))
}

func TestDFAUnboundedRepeat(t *testing.T) {
	d := dfa(t, `'a'{2,}`, nil)

	assert.False(t, accepts(d, "a"))
	assert.True(t, accepts(d, "aa"))
	assert.True(t, accepts(d, "aaaaa"))
}

func TestDFACharAndClassOverlap(t *testing.T) {
	// '1' is both a literal and a class member; the char transition must
	// fold the class edge in, so both inputs keep matching
	d := dfa(t, `('1''x')|([0-9]'y')`, nil)

	assert.True(t, accepts(d, "1x"))
	assert.True(t, accepts(d, "1y"))
	assert.True(t, accepts(d, "7y"))
	assert.Nil(t, run(d, "7x"))
}

func TestDFAActionTransition(t *testing.T) {
	d := dfa(t, "'a''b'", nil)

	s := run(d, "ab")
	require.NotNil(t, s)
	assert.False(t, s.Accept)

	edges := s.ActionEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, 0, edges[0].Sym.Action)
	assert.True(t, edges[0].To.Accept)
}

func TestDFAMidPatternAction(t *testing.T) {
	d := dfa(t, "'a''b'", nil)

	s := run(d, "a")
	require.NotNil(t, s)

	edges := s.ActionEdges()
	require.Len(t, edges, 1)

	next := d.Step(edges[0].To, 'b')
	require.NotNil(t, next)
	assert.True(t, next.Accept)
}

func TestDFASubsetConstructionIsPure(t *testing.T) {
	nfa := BuildNFA(tree(t, "(([0-9]+)|([A-Fa-f]+))", nil))

	d1 := BuildDFA(nfa)
	d2 := BuildDFA(nfa)

	require.Equal(t, len(d1.States), len(d2.States))
	assert.Equal(t, d1.String(), d2.String())
	for i := range d1.States {
		assert.Equal(t, d1.States[i].Set, d2.States[i].Set)
	}
}

func TestDFAStatesAreClosedSubsets(t *testing.T) {
	nfa := BuildNFA(tree(t, `'a'|'b'`, nil))
	d := BuildDFA(nfa)

	// the start subset is the ε-closure of the NFA start state
	assert.Contains(t, d.Start.Set, nfa.Start.ID)
	assert.True(t, len(d.Start.Set) > 1)
}
