package rulefile

import (
	"github.com/pkg/errors"
)

// ActionBase is the first code point of the private use area reserved for
// action placeholders. Action id n is smuggled through the pattern text as
// the single rune ActionBase+n until the parser turns it back into a typed
// action leaf.
const ActionBase rune = 0xE000

// Actions collects everything extracted from a rule file besides the
// patterns themselves: header lines, the %prefix/%args/%state values and
// the embedded action snippets, in first-insertion order.
type Actions struct {
	prefix    string
	args      string
	state     string
	hasPrefix bool
	hasArgs   bool
	hasState  bool
	headers   []string
	actions   []string
}

func NewActions() *Actions {
	return &Actions{}
}

func (a *Actions) AddHeader(line string) {
	a.headers = append(a.headers, line)
}

// Add registers an action snippet verbatim and returns its id. Ids are
// dense, zero-based and never reused.
func (a *Actions) Add(text string) int {
	a.actions = append(a.actions, text)
	return len(a.actions) - 1
}

func (a *Actions) SetPrefix(prefix string) error {
	if a.hasPrefix {
		return errors.New("duplicate prefix")
	}
	a.prefix = prefix
	a.hasPrefix = true
	return nil
}

func (a *Actions) SetArgs(args string) error {
	if a.hasArgs {
		return errors.New("duplicate args")
	}
	a.args = args
	a.hasArgs = true
	return nil
}

func (a *Actions) SetState(state string) error {
	if a.hasState {
		return errors.New("duplicate state")
	}
	a.state = state
	a.hasState = true
	return nil
}

func (a *Actions) Prefix() string {
	return a.prefix
}

func (a *Actions) Args() string {
	return a.args
}

func (a *Actions) State() string {
	return a.state
}

func (a *Actions) Headers() []string {
	return a.headers
}

// Get returns the snippet registered under id.
func (a *Actions) Get(id int) string {
	return a.actions[id]
}

func (a *Actions) Len() int {
	return len(a.actions)
}

// All returns the snippets in id order.
func (a *Actions) All() []string {
	return a.actions
}
