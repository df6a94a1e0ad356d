package automata

import (
	"github.com/controlj/regexc/parser"
)

type State struct {
	ID     int
	Accept bool
	Edges  []Edge
}

type Edge struct {
	Sym Symbol
	To  *State
}

// NFA is the structural automaton built from a syntax tree. State IDs are
// assigned in construction order, so the same tree always yields the same
// automaton.
type NFA struct {
	States []*State
	Start  *State
}

// frag is a sub-automaton under construction with a single entry and a
// single dangling exit.
type frag struct {
	start, end *State
}

type nfaBuilder struct {
	states []*State
}

func (b *nfaBuilder) newState() *State {
	s := &State{ID: len(b.states)}
	b.states = append(b.states, s)
	return s
}

func (b *nfaBuilder) edge(from, to *State, sym Symbol) {
	from.Edges = append(from.Edges, Edge{Sym: sym, To: to})
}

// BuildNFA runs the Thompson construction over the tree.
func BuildNFA(root parser.Node) *NFA {
	b := &nfaBuilder{}
	f := b.build(root)
	f.end.Accept = true
	return &NFA{States: b.states, Start: f.start}
}

func (b *nfaBuilder) leaf(sym Symbol) frag {
	start, end := b.newState(), b.newState()
	b.edge(start, end, sym)
	return frag{start, end}
}

func (b *nfaBuilder) build(n parser.Node) frag {
	switch n := n.(type) {
	case *parser.Literal:
		return b.leaf(CharSym(n.Ch))
	case *parser.Class:
		return b.leaf(ClassSym(n))
	case *parser.Action:
		return b.leaf(ActionSym(n.ID))
	case *parser.Group:
		return b.build(n.Inner)
	case *parser.Concat:
		f1 := b.build(n.Left)
		f2 := b.build(n.Right)
		b.edge(f1.end, f2.start, Eps())
		return frag{f1.start, f2.end}
	case *parser.Alt:
		f1 := b.build(n.Left)
		f2 := b.build(n.Right)
		start, end := b.newState(), b.newState()
		b.edge(start, f1.start, Eps())
		b.edge(start, f2.start, Eps())
		b.edge(f1.end, end, Eps())
		b.edge(f2.end, end, Eps())
		return frag{start, end}
	case *parser.Star:
		return b.star(n.Inner)
	case *parser.Plus:
		f := b.build(n.Inner)
		end := b.newState()
		b.edge(f.end, f.start, Eps())
		b.edge(f.end, end, Eps())
		return frag{f.start, end}
	case *parser.Opt:
		f := b.build(n.Inner)
		start, end := b.newState(), b.newState()
		b.edge(start, f.start, Eps())
		b.edge(start, end, Eps())
		b.edge(f.end, end, Eps())
		return frag{start, end}
	case *parser.Repeat:
		return b.repeat(n)
	}

	panic("unknown syntax tree node")
}

func (b *nfaBuilder) star(inner parser.Node) frag {
	f := b.build(inner)
	start, end := b.newState(), b.newState()
	b.edge(start, f.start, Eps())
	b.edge(start, end, Eps())
	b.edge(f.end, f.start, Eps())
	b.edge(f.end, end, Eps())
	return frag{start, end}
}

// repeat unrolls {m,n} into m mandatory copies followed by n-m optional
// ones, or a starred tail when there is no upper bound.
func (b *nfaBuilder) repeat(n *parser.Repeat) frag {
	cur := frag{}
	cur.start = b.newState()
	cur.end = cur.start

	chain := func(f frag) {
		b.edge(cur.end, f.start, Eps())
		cur.end = f.end
	}

	for i := 0; i < n.Min; i++ {
		chain(b.build(n.Inner))
	}

	if n.Max < 0 {
		chain(b.star(n.Inner))
		return cur
	}

	for i := n.Min; i < n.Max; i++ {
		f := b.build(n.Inner)
		end := b.newState()
		b.edge(cur.end, f.start, Eps())
		b.edge(cur.end, end, Eps())
		b.edge(f.end, end, Eps())
		cur.end = end
	}
	return cur
}
