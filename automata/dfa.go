package automata

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// DState is one DFA state: the set of NFA state IDs it stands for, its
// acceptance marking and the outgoing transitions.
type DState struct {
	ID     int
	Set    []int
	Accept bool
	Edges  []DEdge
}

type DEdge struct {
	Sym Symbol
	To  *DState
}

// DFA is the deterministic automaton obtained by subset construction.
//
// Transitions labeled with an action symbol do not correspond to consumed
// input: the consumer of this automaton must take such a transition
// unconditionally, firing the stored snippet with that action id. This is
// the one contract the code emitter has to honor; everything else about
// totalization and failure states is the emitter's concern.
type DFA struct {
	States []*DState
	Start  *DState
}

type converter struct {
	nfa    *NFA
	byID   map[int]*State
	states map[string]*DState
}

// BuildDFA runs the subset construction. The result is uniquely determined
// by the NFA: alphabet order follows NFA state order and subsets are kept
// sorted, so rebuilding from the same NFA yields an isomorphic DFA.
func BuildDFA(n *NFA) *DFA {
	c := &converter{
		nfa:    n,
		byID:   map[int]*State{},
		states: map[string]*DState{},
	}
	for _, s := range n.States {
		c.byID[s.ID] = s
	}

	alphabet := c.alphabet()

	d := &DFA{}
	start := c.closure(treeset.NewWithIntComparator(n.Start.ID))
	d.Start = c.dstate(d, start)

	queue := []*DState{d.Start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, sym := range alphabet {
			next := c.closure(c.move(v, sym))
			if next.Size() == 0 {
				continue
			}

			t, seen := c.states[subsetKey(next)]
			if !seen {
				t = c.dstate(d, next)
				queue = append(queue, t)
			}
			v.Edges = append(v.Edges, DEdge{Sym: sym, To: t})
		}
	}

	return d
}

// alphabet collects the distinct non-ε symbols observed in the NFA, plus
// every action symbol present, in first-observation order.
func (c *converter) alphabet() []Symbol {
	var out []Symbol
	seen := map[string]bool{}
	for _, s := range c.nfa.States {
		for _, e := range s.Edges {
			if e.Sym.Kind == Epsilon {
				continue
			}
			k := e.Sym.Key()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, e.Sym)
		}
	}
	return out
}

// closure extends the subset with everything reachable over ε edges.
func (c *converter) closure(set *treeset.Set) *treeset.Set {
	stack := set.Values()
	for len(stack) > 0 {
		id := stack[len(stack)-1].(int)
		stack = stack[:len(stack)-1]

		for _, e := range c.byID[id].Edges {
			if e.Sym.Kind != Epsilon {
				continue
			}
			if !set.Contains(e.To.ID) {
				set.Add(e.To.ID)
				stack = append(stack, e.To.ID)
			}
		}
	}
	return set
}

// move gathers the targets reachable from the subset on one alphabet
// symbol. A char symbol also follows class edges containing that rune;
// the runtime resolves chars before classes, so the two stay consistent.
func (c *converter) move(v *DState, sym Symbol) *treeset.Set {
	out := treeset.NewWithIntComparator()
	for _, id := range v.Set {
		for _, e := range c.byID[id].Edges {
			if includes(e.Sym, sym) {
				out.Add(e.To.ID)
			}
		}
	}
	return out
}

// includes reports whether an NFA edge participates in the move on one
// alphabet symbol.
func includes(edge, alpha Symbol) bool {
	switch alpha.Kind {
	case Char:
		if edge.Kind == Char {
			return edge.Ch == alpha.Ch
		}
		return edge.Kind == Class && edge.Matches(alpha.Ch)
	case Class:
		return edge.Kind == Class && edge.Key() == alpha.Key()
	case Action:
		return edge.Kind == Action && edge.Action == alpha.Action
	}
	return false
}

func (c *converter) dstate(d *DFA, set *treeset.Set) *DState {
	ids := make([]int, 0, set.Size())
	accept := false
	for _, v := range set.Values() {
		id := v.(int)
		ids = append(ids, id)
		accept = accept || c.byID[id].Accept
	}

	s := &DState{ID: len(d.States), Set: ids, Accept: accept}
	d.States = append(d.States, s)
	c.states[subsetKey(set)] = s
	return s
}

func subsetKey(set *treeset.Set) string {
	var b strings.Builder
	for _, v := range set.Values() {
		b.WriteString(strconv.Itoa(v.(int)))
		b.WriteByte('.')
	}
	return b.String()
}

// Step consumes one input rune from a state. Char transitions are checked
// before class transitions, mirroring how the subset construction folds
// class edges into char symbols.
func (d *DFA) Step(s *DState, r rune) *DState {
	for _, e := range s.Edges {
		if e.Sym.Kind == Char && e.Sym.Ch == r {
			return e.To
		}
	}
	for _, e := range s.Edges {
		if e.Sym.Kind == Class && e.Sym.Matches(r) {
			return e.To
		}
	}
	return nil
}

// ActionEdges returns the unconditional action transitions out of a state.
func (s *DState) ActionEdges() []DEdge {
	var out []DEdge
	for _, e := range s.Edges {
		if e.Sym.Kind == Action {
			out = append(out, e)
		}
	}
	return out
}

func (d *DFA) String() string {
	var b strings.Builder
	for _, s := range d.States {
		b.WriteString(strconv.Itoa(s.ID))
		if s.Accept {
			b.WriteByte('*')
		}
		b.WriteString(":")
		for _, e := range s.Edges {
			b.WriteString(" " + e.Sym.String() + "->" + strconv.Itoa(e.To.ID))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
