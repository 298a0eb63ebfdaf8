package cli

import (
	"context"
	"strings"

	"github.com/routecli/cli/pkg/style"
)

// Runner is the execution function bound to a command. The returned value is
// opaque to the library and surfaces unchanged in the Value outcome; a non-nil
// error is handed back to the caller without reinterpretation.
type Runner func(ctx context.Context, in *Input) (any, error)

// Stub bundles a command registration into one declarative value, for callers
// that want to keep command definitions next to their runners. Register it with
// [App.AddStub].
type Stub struct {
	Path        []string
	Run         Runner
	Flags       []Flag
	Description string
}

// HeadingStyler decorates a help heading with a color. Implementations live
// outside the core; [style.Heading] is the lipgloss-backed default.
type HeadingStyler func(heading, color string) string

// Config controls help styling: one foreground color per heading and the hook
// applied to each heading. A nil Styler falls back to [style.Heading].
type Config struct {
	UsageColor       string
	FlagsColor       string
	SubcommandsColor string
	Styler           HeadingStyler
}

// Default heading colors, ANSI-256.
const (
	defaultUsageColor       = "39"
	defaultFlagsColor       = "214"
	defaultSubcommandsColor = "170"
)

// App is the root container: the command tree, the global flag registry, and the
// optional help styling configuration. Build one with [New], register commands,
// then execute; the tree is treated as read-only once execution starts.
type App struct {
	name    string
	config  *Config
	root    *node
	globals Flags
}

// node is one addressable point in the command hierarchy. A node with nil
// contents is a pure routing node, a namespace with no default action.
type node struct {
	contents *contents
	children map[string]*node
}

// contents is the executable unit bound to a node.
type contents struct {
	run         Runner
	flags       Flags
	description string
}

// New returns an empty container with plain (unstyled) help.
func New() *App {
	return &App{
		name:    "app",
		root:    &node{children: map[string]*node{}},
		globals: Flags{},
	}
}

// WithName sets the program name shown in the usage line.
func (a *App) WithName(name string) *App {
	a.name = name
	return a
}

// AddCommand registers a runner at the given path. Path segments are trimmed of
// surrounding whitespace and empty segments dropped, so the root is addressable
// with an empty path. Missing intermediate nodes are created as routing nodes.
// Registering at an existing path replaces its contents without touching its
// children.
func (a *App) AddCommand(path []string, run Runner, flags []Flag, description string) *App {
	a.root.insert(sanitizePath(path), &contents{
		run:         run,
		flags:       NewFlags(flags...),
		description: description,
	})
	return a
}

// AddStub registers a command from a declarative [Stub].
func (a *App) AddStub(s Stub) *App {
	return a.AddCommand(s.Path, s.Run, s.Flags, s.Description)
}

// WithGlobalFlags merges definitions into the global registry. Global flags are
// available to every command; a same-named local flag takes precedence.
func (a *App) WithGlobalFlags(flags ...Flag) *App {
	a.globals = a.globals.merge(NewFlags(flags...))
	return a
}

// WithConfig sets the help styling configuration.
func (a *App) WithConfig(cfg Config) *App {
	a.config = &cfg
	return a
}

// WithPrettyHelp enables styled help headings with the default colors.
func (a *App) WithPrettyHelp() *App {
	return a.WithConfig(Config{
		UsageColor:       defaultUsageColor,
		FlagsColor:       defaultFlagsColor,
		SubcommandsColor: defaultSubcommandsColor,
		Styler:           style.Heading,
	})
}

// WithoutPrettyHelp clears the styling configuration; headings render as plain
// text.
func (a *App) WithoutPrettyHelp() *App {
	a.config = nil
	return a
}

// sanitizePath trims each segment and drops the empty ones, so
// ["", " ", " cmd", "sub\t"] addresses the same node as ["cmd", "sub"].
func sanitizePath(path []string) []string {
	out := make([]string, 0, len(path))
	for _, seg := range path {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func (n *node) insert(path []string, c *contents) {
	if len(path) == 0 {
		n.contents = c
		return
	}
	child, ok := n.children[path[0]]
	if !ok {
		child = &node{children: map[string]*node{}}
		n.children[path[0]] = child
	}
	child.insert(path[1:], c)
}

// child returns the sub-node registered under name, if any.
func (n *node) child(name string) (*node, bool) {
	c, ok := n.children[name]
	return c, ok
}
