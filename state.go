package cli

import "fmt"

// Input carries the per-execution data handed to a runner: the positional
// arguments left over after routing and the resolved flag registry (global flags
// merged with the command's local flags, overridden by values parsed from the
// command line). A fresh Input is built for every execution.
type Input struct {
	Args  []string
	Flags Flags
}

// GetFlag retrieves a flag value by name, with type inference. Example usage:
//
//	verbose := cli.GetFlag[bool](in, "verbose")
//	count := cli.GetFlag[int](in, "count")
//	tags := cli.GetFlag[[]string](in, "tags")
//
// If the flag isn't in the resolved registry, or the requested type doesn't
// match the flag's kind, it panics.
//
// Why panic? Because a missing flag is a programming error, a definition that
// was never added, and it's better to fail LOUD and EARLY than to silently
// return a zero value and cause unexpected behavior.
func GetFlag[T any](in *Input, name string) T {
	f, ok := in.Flags[name]
	if !ok {
		panic(fmt.Sprintf("internal error: flag %q not found in resolved registry", name))
	}
	v, ok := f.value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for flag %q: registered %T, requested %T", name, f.value, *new(T)))
	}
	return v
}
