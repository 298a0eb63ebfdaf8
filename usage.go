package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/routecli/cli/pkg/style"
	"github.com/routecli/cli/pkg/textutil"
)

const helpWidth = 80

// usage renders the help document for a node: header, usage line, flags block,
// and subcommands block, joined with blank lines and omitting empty sections.
// Flags and subcommands are sorted lexicographically so the output is stable
// across registration orders.
func (a *App) usage(commandPath []string, n *node) string {
	effective := a.globals
	var description string
	if n.contents != nil {
		effective = a.globals.merge(n.contents.flags)
		description = n.contents.description
	}

	usageHeading, flagsHeading, subHeading := "Usage:", "Flags:", "Subcommands:"
	if cfg := a.config; cfg != nil {
		styler := cfg.Styler
		if styler == nil {
			styler = style.Heading
		}
		usageHeading = styler(usageHeading, cfg.UsageColor)
		flagsHeading = styler(flagsHeading, cfg.FlagsColor)
		subHeading = styler(subHeading, cfg.SubcommandsColor)
	}

	var sections []string
	if header := renderHeader(commandPath, description); header != "" {
		sections = append(sections, header)
	}
	sections = append(sections, a.renderUsageLine(usageHeading, commandPath, effective))
	sections = append(sections, renderFlagsBlock(flagsHeading, effective))
	if block := renderSubcommandsBlock(subHeading, n); block != "" {
		sections = append(sections, block)
	}
	return strings.Join(sections, "\n\n")
}

// renderHeader emits the command path and the node's own description, each on
// its own line, blank lines omitted.
func renderHeader(commandPath []string, description string) string {
	var lines []string
	if p := strings.Join(commandPath, " "); p != "" {
		lines = append(lines, p)
	}
	if description != "" {
		lines = append(lines, strings.Join(textutil.Wrap(description, helpWidth), "\n"))
	}
	return strings.Join(lines, "\n")
}

// renderUsageLine emits the invocation pattern: program name, command path, the
// [ ARGS ] marker, and a bracketed sorted list of the effective flags.
func (a *App) renderUsageLine(heading string, commandPath []string, effective Flags) string {
	parts := make([]string, 0, len(commandPath)+3)
	parts = append(parts, a.name)
	parts = append(parts, commandPath...)
	parts = append(parts, "[ ARGS ]")
	if len(effective) > 0 {
		summaries := make([]string, 0, len(effective))
		for name := range effective {
			summaries = append(summaries, flagPrefix+name)
		}
		slices.Sort(summaries)
		parts = append(parts, "[ "+strings.Join(summaries, " ")+" ]")
	}
	return heading + "\n  " + strings.Join(parts, " ")
}

// helpEntry is one row of an aligned help block.
type helpEntry struct {
	name   string
	usage  string
	defval string
}

func renderFlagsBlock(heading string, effective Flags) string {
	entries := []helpEntry{{name: helpToken, usage: "show help for the command"}}
	for _, f := range effective {
		entries = append(entries, helpEntry{
			name:   flagPrefix + f.name,
			usage:  f.description,
			defval: formatValue(f.kind, f.def),
		})
	}
	for i, e := range entries {
		if e.defval != "" && e.defval != "false" {
			if e.usage != "" {
				e.usage += " "
			}
			e.usage += fmt.Sprintf("(default: %s)", e.defval)
			entries[i] = e
		}
	}
	return heading + "\n" + renderAligned(entries)
}

func renderSubcommandsBlock(heading string, n *node) string {
	if len(n.children) == 0 {
		return ""
	}
	entries := make([]helpEntry, 0, len(n.children))
	for name, child := range n.children {
		var description string
		if child.contents != nil {
			description = child.contents.description
		}
		entries = append(entries, helpEntry{name: name, usage: description})
	}
	return heading + "\n" + renderAligned(entries)
}

// renderAligned sorts the entries lexicographically and writes them in two
// columns, wrapping descriptions at the help width.
func renderAligned(entries []helpEntry) string {
	slices.SortFunc(entries, func(a, b helpEntry) int {
		return cmp.Compare(a.name, b.name)
	})

	maxLen := 0
	for _, e := range entries {
		maxLen = max(maxLen, len(e.name))
	}
	nameWidth := maxLen + 4
	wrapWidth := helpWidth - nameWidth

	var b strings.Builder
	for _, e := range entries {
		if e.usage == "" {
			fmt.Fprintf(&b, "  %s\n", e.name)
			continue
		}
		lines := textutil.Wrap(e.usage, wrapWidth)
		padding := strings.Repeat(" ", maxLen-len(e.name)+4)
		fmt.Fprintf(&b, "  %s%s%s\n", e.name, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
