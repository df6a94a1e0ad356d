package compiler

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/controlj/regexc/automata"
	"github.com/controlj/regexc/parser"
	"github.com/controlj/regexc/rulefile"
)

// Result is what the pipeline hands to a code emitter: the finished DFA
// and the actions extracted alongside it.
type Result struct {
	DFA     *automata.DFA
	Actions *rulefile.Actions

	NFAStates int
}

// Compile runs the whole pipeline over one rule source: read the rule
// file, compose the rules into a single alternated pattern, parse it and
// build the NFA then the DFA. The first error aborts; there are no
// partial results.
func Compile(r io.Reader) (*Result, error) {
	file, err := rulefile.New(r).Read()
	if err != nil {
		return nil, err
	}
	return build(file)
}

// CompileFile is Compile over a file on disk.
func CompileFile(path string) (*Result, error) {
	file, err := rulefile.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return build(file)
}

func build(file *rulefile.File) (*Result, error) {
	if len(file.Rules) == 0 {
		return nil, errors.New("no rules")
	}

	root, err := parser.Parse(Compose(file.Rules), file.Names)
	if err != nil {
		return nil, err
	}

	nfa := automata.BuildNFA(root)
	log.Infof("NFA has %d states", len(nfa.States))

	return &Result{
		DFA:       automata.BuildDFA(nfa),
		Actions:   file.Actions,
		NFAStates: len(nfa.States),
	}, nil
}

// Compose joins the rule patterns into one alternation, each rule
// parenthesized, in file order. Earlier rules win ties downstream, so the
// order is load-bearing.
func Compose(rules []string) string {
	var b strings.Builder
	for i, rule := range rules {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteByte('(')
		b.WriteString(rule)
		b.WriteByte(')')
	}
	return b.String()
}
