package console

import (
	"fmt"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"twocheck/internal/checker"
	"twocheck/internal/logging"
)

// Reporter is the interactive checker.Handler. It mirrors every pair and its
// raw tool output to the console; on a miss it blocks until the operator
// acknowledges, so each unexpected result can be inspected before the run
// moves on.
type Reporter struct {
	gate     func() error
	outcomes []checker.Outcome
}

// NewReporter returns a console handler. With interactive set, misses block
// on an operator prompt; otherwise they are only reported.
func NewReporter(interactive bool) *Reporter {
	r := &Reporter{}
	if interactive {
		r.gate = promptGate
	}
	return r
}

func (r *Reporter) OnResult(o checker.Outcome) error {
	logging.Info(fmt.Sprintf("checking: %s", o.Query.Phrase()))
	logging.Raw("OUTPUT: " + o.Output)
	r.outcomes = append(r.outcomes, o)
	if o.Found {
		return nil
	}
	logging.Error("NOT FOUND!!")
	if r.gate == nil {
		return nil
	}
	return r.gate()
}

// promptGate blocks for one line of operator input; the content is discarded,
// only its arrival matters.
func promptGate() error {
	var ack string
	return survey.AskOne(&survey.Input{Message: "press enter to continue"}, &ack)
}

// Summary renders the per-pair results collected so far plus a one-line
// count, for printing after the loop finishes.
func (r *Reporter) Summary() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Word1", "Word2", "Status"})
	missed := 0
	for _, o := range r.outcomes {
		status := text.FgGreen.Sprint("found")
		if !o.Found {
			status = text.FgRed.Sprint("MISSING")
			missed++
		}
		tw.AppendRow(table.Row{o.Query.Word1, o.Query.Word2, status})
	}
	var b strings.Builder
	b.WriteString(tw.Render())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d checked, %d missing\n", len(r.outcomes), missed))
	return b.String()
}
