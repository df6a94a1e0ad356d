package rulefile

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	directivePrefix = "%prefix"
	directiveRule   = "%rule"
	directiveNames  = "%names"
	directiveArgs   = "%args"
	directiveState  = "%state"
)

var (
	nameLine = regexp.MustCompile(`^([a-zA-Z]\w*)[ \t]*=[ \t]*(.*)$`)

	// Bounds of a repeat quantifier. A '{' introducing these is pattern
	// syntax, not the start of an action block.
	repeatBounds = regexp.MustCompile(`^\{\d+(,\d*)?\}`)
)

// File is everything extracted from one rule source: the macro name table,
// the raw rule patterns in file order (order encodes rule priority) and the
// collected actions. Patterns contain one placeholder rune per embedded
// action block.
type File struct {
	Names   map[string]string
	Rules   []string
	Actions *Actions
}

type Parser struct {
	scanner *bufio.Scanner
	line    int
	tok     tokenizer
}

func New(r io.Reader) *Parser {
	return &Parser{
		scanner: bufio.NewScanner(r),
	}
}

// ParseFile reads a rule file from disk. The file is closed whether or not
// parsing succeeds.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return New(f).Read()
}

// Read consumes the whole source: header block, optional %names block, then
// %rule blocks. It stops at the first error.
func (p *Parser) Read() (*File, error) {
	file := &File{
		Names:   map[string]string{},
		Actions: NewActions(),
	}

	last, err := p.readHeader(file)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(last, directiveNames) {
		if err := p.readNames(file); err != nil {
			return nil, err
		}
	}

	if err := p.readRules(file); err != nil {
		return nil, err
	}

	return file, nil
}

func (p *Parser) nextLine() (string, bool) {
	if !p.scanner.Scan() {
		return "", false
	}
	p.line++
	return p.scanner.Text(), true
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return errors.Errorf(format+" at line %d", append(args, p.line)...)
}

func (p *Parser) wrap(err error) error {
	return errors.Wrapf(err, "line %d", p.line)
}

// readHeader routes lines until the %names or %rule directive and returns
// that directive line.
func (p *Parser) readHeader(file *File) (string, error) {
	for {
		s, ok := p.nextLine()
		if !ok {
			if err := p.scanner.Err(); err != nil {
				return "", err
			}
			return "", errors.New("unexpected EOF looking for header")
		}

		switch {
		case strings.HasPrefix(s, directiveState):
			if err := file.Actions.SetState("(" + strings.TrimSpace(s[len(directiveState):]) + ")"); err != nil {
				return "", p.wrap(err)
			}
		case strings.HasPrefix(s, directiveArgs):
			if err := file.Actions.SetArgs(strings.TrimSpace(s[len(directiveArgs):])); err != nil {
				return "", p.wrap(err)
			}
		case strings.HasPrefix(s, directivePrefix):
			if err := file.Actions.SetPrefix(strings.TrimSpace(s[len(directivePrefix):])); err != nil {
				return "", p.wrap(err)
			}
		case strings.HasPrefix(s, directiveNames), strings.HasPrefix(s, directiveRule):
			return s, nil
		default:
			file.Actions.AddHeader(s)
		}
	}
}

// readNames consumes `identifier = fragment` lines until the %rule
// directive or end of input.
func (p *Parser) readNames(file *File) error {
	for {
		s, ok := p.nextLine()
		if !ok {
			return p.scanner.Err()
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if strings.HasPrefix(s, directiveRule) {
			return nil
		}

		m := nameLine.FindStringSubmatch(s)
		if m == nil {
			return p.errorf("syntax error in name definition")
		}
		if _, dup := file.Names[m[1]]; dup {
			return p.errorf("duplicate name %q", m[1])
		}
		file.Names[m[1]] = strings.TrimSpace(m[2])
	}
}

func (p *Parser) readRules(file *File) error {
	p.tok = tokenizer{actions: file.Actions}

	for {
		s, ok := p.nextLine()
		if !ok {
			break
		}
		if strings.TrimSpace(s) == directiveRule {
			p.endRule(file)
		} else {
			p.tok.addLine(s)
		}
	}
	if err := p.scanner.Err(); err != nil {
		return err
	}
	if p.tok.depth != 0 {
		return p.errorf("unterminated action")
	}
	p.endRule(file)
	return nil
}

func (p *Parser) endRule(file *File) {
	s := p.tok.pattern.String()
	p.tok.pattern.Reset()
	if strings.TrimSpace(s) == "" {
		return
	}
	file.Rules = append(file.Rules, s)
}

type sink int

const (
	inPattern sink = iota
	inAction
)

// tokenizer splits rule-block lines between the growing pattern buffer and
// transient action blocks. Quote scanning runs first, so quoted text never
// opens or closes an action block.
type tokenizer struct {
	pattern strings.Builder
	action  strings.Builder
	depth   int
	actions *Actions
}

func (t *tokenizer) state() sink {
	if t.depth > 0 {
		return inAction
	}
	return inPattern
}

func (t *tokenizer) append(c rune) {
	if t.state() == inAction {
		t.action.WriteRune(c)
	} else {
		t.pattern.WriteRune(c)
	}
}

func (t *tokenizer) addLine(line string) {
	line = strings.TrimSpace(line)
	if t.depth == 0 && strings.HasPrefix(line, "#") {
		return
	}

	runes := []rune(line)
	var delimiter rune
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if delimiter != 0 {
			t.append(c)
			if c == '\\' && i+1 < len(runes) {
				i++
				t.append(runes[i])
				continue
			}
			if c == delimiter {
				delimiter = 0
			}
			continue
		}

		if c == '\'' || c == '"' {
			// The quote itself is pattern syntax, it falls through to the
			// ordinary append below.
			delimiter = c
		}

		switch t.state() {
		case inAction:
			switch c {
			case '{':
				t.depth++
				t.action.WriteRune(c)
			case '}':
				t.action.WriteRune(c)
				t.depth--
				if t.depth == 0 {
					id := t.actions.Add(t.action.String())
					t.pattern.WriteRune(ActionBase + rune(id))
				}
			default:
				t.action.WriteRune(c)
			}
		case inPattern:
			if c == '{' && !repeatBounds.MatchString(string(runes[i:])) {
				t.depth++
				t.action.Reset()
				t.action.WriteRune(c)
				continue
			}
			t.pattern.WriteRune(c)
		}
	}

	// Rules and actions spanning multiple lines stay token-separated.
	t.append(' ')
}
