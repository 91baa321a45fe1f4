package checker

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"twocheck/internal/config"
	"twocheck/internal/executil"
	"twocheck/internal/logging"
	"twocheck/internal/queries"
)

// foundMarker is how the search tool labels a single-result hit. Its presence
// anywhere in stdout is the whole success signal; nothing else in the output
// is interpreted.
const foundMarker = "[1]"

// Outcome is the result of checking one word pair.
type Outcome struct {
	Query  queries.Query
	Output string
	Found  bool
}

// Handler receives each outcome right after its subprocess finishes and
// before the next pair starts. A returned error stops the run. Pausing,
// logging or alerting policy lives entirely in the handler.
type Handler interface {
	OnResult(Outcome) error
}

type HandlerFunc func(Outcome) error

func (f HandlerFunc) OnResult(o Outcome) error { return f(o) }

type Checker struct {
	tool config.SearchTool
	exec func(name string, args ...string) (executil.Result, error)
}

func New(tool config.SearchTool) *Checker {
	return &Checker{tool: tool, exec: executil.Run}
}

// BuildArgs composes the three-element argv for one pair. The phrase argument
// keeps its outer single quotes exactly as the tool has always been invoked;
// words pass through without any escaping.
func BuildArgs(tool config.SearchTool, q queries.Query) []string {
	phrase := fmt.Sprintf(`'"%s %s"~%d'`, q.Word1, q.Word2, tool.Fuzz())
	return []string{tool.Program, tool.Subcommand, phrase}
}

// Classify reports whether captured stdout signals exactly one hit. Position
// independent, stderr never consulted.
func Classify(output string) bool { return strings.Contains(output, foundMarker) }

// Check runs the search for one pair and classifies its stdout. The tool's
// exit code is surfaced in debug output but never branched on.
func (c *Checker) Check(q queries.Query) (Outcome, error) {
	args := BuildArgs(c.tool, q)
	logging.Debug("running: " + shellquote.Join(args...))
	res, err := c.exec(args[0], args[1:]...)
	if err != nil {
		return Outcome{}, fmt.Errorf("pair %s/%s: %w", q.Word1, q.Word2, err)
	}
	if res.Code != 0 {
		logging.Debug(fmt.Sprintf("%s exited %d: %s", c.tool.Program, res.Code, strings.TrimSpace(res.Stderr)))
	}
	return Outcome{Query: q, Output: res.Stdout, Found: Classify(res.Stdout)}, nil
}

// Run processes the pairs strictly in order, one subprocess at a time, handing
// each outcome to h before the next pair starts. An empty list completes
// without spawning anything.
func (c *Checker) Run(qs []queries.Query, h Handler) error {
	for _, q := range qs {
		out, err := c.Check(q)
		if err != nil {
			return err
		}
		if err := h.OnResult(out); err != nil {
			return fmt.Errorf("pair %s/%s: %w", q.Word1, q.Word2, err)
		}
	}
	return nil
}
