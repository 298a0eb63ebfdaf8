package cli

import (
	"context"
	"fmt"
	"strings"
)

// flagPrefix is the two-character prefix that marks a token as a flag.
const flagPrefix = "--"

// helpToken is the literal that requests help. It is recognized anywhere in the
// argument vector and removed before flag/positional partitioning, so the flag
// prefix test never sees it.
const helpToken = "--help"

// OutcomeKind tags the variant held by an [Outcome].
type OutcomeKind int

const (
	// OutcomeValue carries the selected runner's return value.
	OutcomeValue OutcomeKind = iota + 1
	// OutcomeHelp carries a rendered help document.
	OutcomeHelp
)

// Outcome is the tagged result of [App.Execute]: either the value returned by
// the selected command's runner or the help text for the resolved node.
type Outcome struct {
	Kind  OutcomeKind
	Value any
	Help  string
}

// Execute routes the argument vector through the command tree and dispatches
// the selected command.
//
// Tokens starting with "--" are flag tokens; the rest are positional and are
// consumed left to right as child-name lookups. When a positional token matches
// no child, descent stops and the nearest matched ancestor runs with the
// remaining positional tokens, unmatched token included, as its arguments. A
// literal "--help" anywhere in the vector turns the deepest resolvable node into
// a help request instead of an execution.
//
// Errors produced by tree and flag resolution come back wrapped with a
// "failed to run command" context; errors returned by the runner itself pass
// through unchanged. Execute never prints, see [App.Run] for that.
func (a *App) Execute(ctx context.Context, args []string) (Outcome, error) {
	rest, helpRequested := extractHelp(args)
	flagTokens, positionals := partition(rest)

	current := a.root
	var commandPath []string
	for i, arg := range positionals {
		child, ok := current.child(arg)
		if !ok {
			// No deeper match: the remaining tokens are literal arguments to
			// the nearest matched ancestor.
			if helpRequested {
				return a.helpOutcome(commandPath, current), nil
			}
			return a.dispatch(ctx, commandPath, current, positionals[i:], flagTokens)
		}
		commandPath = append(commandPath, arg)
		current = child
	}
	if helpRequested {
		return a.helpOutcome(commandPath, current), nil
	}
	return a.dispatch(ctx, commandPath, current, nil, flagTokens)
}

func (a *App) dispatch(ctx context.Context, commandPath []string, n *node, args, flagTokens []string) (Outcome, error) {
	if n.contents == nil {
		return Outcome{}, fmt.Errorf("failed to run command: %w", &NoExecError{Path: commandPath})
	}
	resolved, err := a.globals.merge(n.contents.flags).parseAll(flagTokens)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to run command: %w", err)
	}
	if args == nil {
		args = []string{}
	}
	value, err := n.contents.run(ctx, &Input{Args: args, Flags: resolved})
	if err != nil {
		// Runner failures are the caller's own, pass them through untouched.
		return Outcome{}, err
	}
	return Outcome{Kind: OutcomeValue, Value: value}, nil
}

func (a *App) helpOutcome(commandPath []string, n *node) Outcome {
	return Outcome{Kind: OutcomeHelp, Help: a.usage(commandPath, n)}
}

// extractHelp reports whether the argument vector requests help, returning the
// vector with the first help token removed.
func extractHelp(args []string) ([]string, bool) {
	for i, arg := range args {
		if arg == helpToken {
			rest := make([]string, 0, len(args)-1)
			rest = append(rest, args[:i]...)
			rest = append(rest, args[i+1:]...)
			return rest, true
		}
	}
	return args, false
}

// partition splits the vector into flag tokens and positional tokens, preserving
// relative order within each class. Flags are parsed independently of where they
// appear, so the two classes need not stay interleaved.
func partition(args []string) (flagTokens, positionals []string) {
	for _, arg := range args {
		if strings.HasPrefix(arg, flagPrefix) {
			flagTokens = append(flagTokens, arg)
		} else {
			positionals = append(positionals, arg)
		}
	}
	return flagTokens, positionals
}
