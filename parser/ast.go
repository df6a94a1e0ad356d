package parser

// Node is one syntax-tree node of a parsed pattern.
type Node interface {
	node()
}

// Literal matches exactly one rune.
type Literal struct {
	Ch rune
}

// Range is an inclusive rune range. A single rune is Lo == Hi.
type Range struct {
	Lo, Hi rune
}

// Class matches one rune against a set of ranges, optionally negated.
type Class struct {
	Negated bool
	Ranges  []Range
}

func (c *Class) Contains(r rune) bool {
	in := false
	for _, rg := range c.Ranges {
		if rg.Lo <= r && r <= rg.Hi {
			in = true
			break
		}
	}
	if c.Negated {
		return !in
	}
	return in
}

type Concat struct {
	Left, Right Node
}

type Alt struct {
	Left, Right Node
}

type Star struct {
	Inner Node
}

type Plus struct {
	Inner Node
}

type Opt struct {
	Inner Node
}

// Repeat is a bounded quantifier {m}, {m,n} or {m,}. Max < 0 means no
// upper bound.
type Repeat struct {
	Inner    Node
	Min, Max int
}

type Group struct {
	Inner Node
}

// Action marks the firing point of the stored snippet with the given id.
type Action struct {
	ID int
}

func (*Literal) node() {}
func (*Class) node()   {}
func (*Concat) node()  {}
func (*Alt) node()     {}
func (*Star) node()    {}
func (*Plus) node()    {}
func (*Opt) node()     {}
func (*Repeat) node()  {}
func (*Group) node()   {}
func (*Action) node()  {}
