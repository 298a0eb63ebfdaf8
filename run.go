package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/routecli/cli/pkg/style"
)

// RunOptions specifies the output streams for [App.Run]. Nil fields fall back to
// [os.Stdout] and [os.Stderr].
type RunOptions struct {
	Stdout, Stderr io.Writer
}

// Run executes the argument vector and performs the library's only output: help
// text goes to stdout, failures render as a context chain on stderr, and a
// plain success produces no output at all. The runner's return value is
// discarded; callers that need it should use [App.Execute] directly.
//
// The options parameter may be nil, in which case the default streams are used.
func (a *App) Run(ctx context.Context, args []string, options *RunOptions) error {
	options = checkAndSetRunOptions(options)
	outcome, err := a.Execute(ctx, args)
	if err != nil {
		fmt.Fprintln(options.Stderr, a.renderError(err))
		return err
	}
	if outcome.Kind == OutcomeHelp {
		fmt.Fprintln(options.Stdout, outcome.Help)
	}
	return nil
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}

// renderError flattens the error's context chain into one line per cause. With a
// styling config set, the first line gets the error heading treatment and the
// cause lines are dimmed.
func (a *App) renderError(err error) string {
	chain := flattenChain(err)
	lines := make([]string, 0, len(chain))
	for i, msg := range chain {
		switch {
		case i == 0 && a.config != nil:
			lines = append(lines, style.ErrorHeading("Error: "+msg))
		case i == 0:
			lines = append(lines, "Error: "+msg)
		case a.config != nil:
			lines = append(lines, style.Dim("  caused by: "+msg))
		default:
			lines = append(lines, "  caused by: "+msg)
		}
	}
	return strings.Join(lines, "\n")
}

// flattenChain splits a wrapped error into one message per layer, outermost
// first, stripping each layer's repetition of its cause.
func flattenChain(err error) []string {
	var msgs []string
	for cur := err; cur != nil; {
		next := errors.Unwrap(cur)
		msg := cur.Error()
		if next != nil {
			if trimmed, ok := strings.CutSuffix(msg, ": "+next.Error()); ok {
				msg = trimmed
			}
		}
		msgs = append(msgs, msg)
		cur = next
	}
	return msgs
}
