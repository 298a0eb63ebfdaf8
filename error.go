package cli

import (
	"fmt"
	"strings"
)

// NoExecError is returned when routing terminates at a node that has no
// execution function, such as a bare namespace invoked without a subcommand.
type NoExecError struct {
	Path []string
}

func (e *NoExecError) Error() string {
	if len(e.Path) == 0 {
		return "root command has no execution function"
	}
	return fmt.Sprintf("command %q has no execution function", strings.Join(e.Path, " "))
}

// UnknownFlagError is returned when a flag token names a flag absent from the
// effective registry. Suggestions holds near matches, best first.
type UnknownFlagError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownFlagError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown flag %q. Did you mean one of these?\n\t--%s",
			e.Name,
			strings.Join(e.Suggestions, "\n\t--"))
	}
	return fmt.Sprintf("unknown flag %q", e.Name)
}

// InvalidFlagValueError is returned when a flag token's value cannot be coerced
// to the flag's declared kind. Raw is empty when the token carried no value at
// all, which only bool flags are allowed to do.
type InvalidFlagValueError struct {
	Name string
	Raw  string
	Kind Kind
}

func (e *InvalidFlagValueError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("missing value for flag --%s (expected %s)", e.Name, e.Kind)
	}
	return fmt.Sprintf("invalid value %q for flag --%s: expected %s", e.Raw, e.Name, e.Kind)
}
