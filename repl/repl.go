// Package repl provides a read/merge/print loop for calendrical fields.
//
// It supports readline-style command editing, and interrupts through
// Control-C.
//
// Each input line either adds Name=value field assignments to the
// session's working set, or runs a colon command. The :merge command
// resolves the working set under the session's context and prints the
// resulting date, time and leftover fields; :help lists the rest.
package repl // import "go.calendrical.net/repl"

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"go.calendrical.net/calendrical"
)

const helpText = `Enter field assignments such as "Year=2008 MonthOfYear=6 DayOfMonth=30".
Commands:
  :merge    resolve the working set and print the outcome
  :reset    clear the working set
  :strict   reject out-of-range values (default)
  :lenient  normalize out-of-range values arithmetically
  :check    report leftover fields that contradict the result (default)
  :discard  silently drop leftover fields that contradict the result
  :rules    list the known field rules
  :dump     dump the session state
  :help     show this help`

// A Session is the state of one interactive merge session: the working
// field set and the merge context in force.
type Session struct {
	ctx    calendrical.Context
	fields *calendrical.Fields
}

// NewSession returns a session with an empty working set.
func NewSession(ctx calendrical.Context) *Session {
	return &Session{ctx: ctx, fields: calendrical.EmptyFields()}
}

// Context returns the merge context currently in force.
func (s *Session) Context() calendrical.Context { return s.ctx }

// Fields returns the working field set.
func (s *Session) Fields() *calendrical.Fields { return s.fields }

// Exec processes one line of input and returns the text to display,
// which may be empty.
func (s *Session) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", nil
	case strings.HasPrefix(line, ":"):
		return s.command(line)
	default:
		return s.assign(line)
	}
}

func (s *Session) command(line string) (string, error) {
	switch cmd := strings.Fields(line)[0]; cmd {
	case ":merge":
		return s.merge()
	case ":reset":
		s.fields = calendrical.EmptyFields()
		return "fields cleared", nil
	case ":strict":
		s.ctx = calendrical.NewContext(true, s.ctx.IsCheckUnusedFields())
		return "context: " + s.ctx.String(), nil
	case ":lenient":
		s.ctx = calendrical.NewContext(false, s.ctx.IsCheckUnusedFields())
		return "context: " + s.ctx.String(), nil
	case ":check":
		s.ctx = calendrical.NewContext(s.ctx.IsStrict(), true)
		return "context: " + s.ctx.String(), nil
	case ":discard":
		s.ctx = calendrical.NewContext(s.ctx.IsStrict(), false)
		return "context: " + s.ctx.String(), nil
	case ":rules":
		return strings.Join(calendrical.RuleNames(), "\n"), nil
	case ":dump":
		return strings.TrimRight(spew.Sdump(s), "\n"), nil
	case ":help":
		return helpText, nil
	default:
		return "", fmt.Errorf("unknown command %s (try :help)", cmd)
	}
}

// assign parses whitespace-separated Name=value tokens and adds them to
// the working set. Assigning a rule twice overwrites the earlier value.
func (s *Session) assign(line string) (string, error) {
	fields := s.fields
	for _, tok := range strings.Fields(line) {
		name, value, ok := strings.Cut(tok, "=")
		if !ok {
			return "", fmt.Errorf("expected Name=value, got %q", tok)
		}
		rule, err := calendrical.LookupRule(name)
		if err != nil {
			return "", err
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("invalid value in %q: %v", tok, err)
		}
		fields = fields.WithValue(rule, v)
	}
	s.fields = fields
	return fields.String(), nil
}

func (s *Session) merge() (string, error) {
	m, err := s.fields.Merge(s.ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if d, ok := m.MergedDate(); ok {
		fmt.Fprintf(&b, "date:   %v\n", d)
	}
	if o, ok := m.MergedTime(); ok {
		fmt.Fprintf(&b, "time:   %v\n", o)
	}
	if off, ok := m.MergedOffset(); ok {
		fmt.Fprintf(&b, "offset: %v\n", off)
	}
	if rest := m.MergedFields(); rest.Len() > 0 {
		fmt.Fprintf(&b, "fields: %v\n", rest)
	}
	if b.Len() == 0 {
		return "nothing to merge", nil
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// REPL executes a read, merge, print loop over the session.
//
// During Readline calls, Control-C causes Readline to return ErrInterrupt,
// which clears the current line and continues the loop.
func REPL(s *Session) {
	rl, err := readline.New("merge> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
		out, err := s.Exec(line)
		if err != nil {
			PrintError(err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	fmt.Println()
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
