package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpFor(t *testing.T, app *App, args []string) string {
	t.Helper()
	outcome, err := app.Execute(context.Background(), args)
	require.NoError(t, err)
	require.Equal(t, OutcomeHelp, outcome.Kind)
	return outcome.Help
}

func TestUsage(t *testing.T) {
	t.Parallel()

	newApp := func() *App {
		return New().
			WithName("task").
			WithGlobalFlags(Bool("verbose", false, "enable verbose mode")).
			AddCommand([]string{"z"}, nopRunner, nil, "registered first").
			AddCommand([]string{"a"}, nopRunner, nil, "registered second").
			AddCommand(nil, nopRunner, []Flag{
				String("output", "text", "output format"),
				Bool("all", false, "show everything"),
			}, "a tiny task manager")
	}

	t.Run("usage line lists sorted flags", func(t *testing.T) {
		t.Parallel()
		help := helpFor(t, newApp(), []string{"--help"})
		assert.Contains(t, help, "Usage:\n  task [ ARGS ] [ --all --output --verbose ]")
	})
	t.Run("flags block is sorted and includes help", func(t *testing.T) {
		t.Parallel()
		help := helpFor(t, newApp(), []string{"--help"})
		start := strings.Index(help, "Flags:")
		require.NotEqual(t, -1, start)
		block := help[start:]
		all := strings.Index(block, "--all")
		helpFlag := strings.Index(block, "--help")
		output := strings.Index(block, "--output")
		verbose := strings.Index(block, "--verbose")
		require.NotEqual(t, -1, all)
		require.NotEqual(t, -1, helpFlag)
		require.NotEqual(t, -1, output)
		require.NotEqual(t, -1, verbose)
		assert.Less(t, all, helpFlag)
		assert.Less(t, helpFlag, output)
		assert.Less(t, output, verbose)
		assert.Contains(t, block, "(default: text)")
	})
	t.Run("subcommands block is sorted regardless of registration order", func(t *testing.T) {
		t.Parallel()
		help := helpFor(t, newApp(), []string{"--help"})
		require.Contains(t, help, "Subcommands:")
		a := strings.Index(help, "\n  a ")
		z := strings.Index(help, "\n  z ")
		require.NotEqual(t, -1, a)
		require.NotEqual(t, -1, z)
		assert.Less(t, a, z)
	})
	t.Run("header holds path and description", func(t *testing.T) {
		t.Parallel()
		help := helpFor(t, newApp(), []string{"a", "--help"})
		assert.True(t, strings.HasPrefix(help, "a\nregistered second"), help)
		assert.Contains(t, help, "task a [ ARGS ]")
	})
	t.Run("leaf omits subcommands block", func(t *testing.T) {
		t.Parallel()
		help := helpFor(t, newApp(), []string{"a", "--help"})
		assert.NotContains(t, help, "Subcommands:")
	})
	t.Run("no flags omits bracketed list", func(t *testing.T) {
		t.Parallel()
		app := New().WithName("bare").AddCommand(nil, nopRunner, nil, "")
		help := helpFor(t, app, []string{"--help"})
		assert.Contains(t, help, "Usage:\n  bare [ ARGS ]")
		assert.NotContains(t, help, "[ --")
		// The built-in help flag is still documented.
		assert.Contains(t, help, "--help")
	})
	t.Run("styler hook receives headings and colors", func(t *testing.T) {
		t.Parallel()
		var calls [][2]string
		app := newApp().WithConfig(Config{
			UsageColor:       "1",
			FlagsColor:       "2",
			SubcommandsColor: "3",
			Styler: func(heading, color string) string {
				calls = append(calls, [2]string{heading, color})
				return "<" + heading + ">"
			},
		})
		help := helpFor(t, app, []string{"--help"})
		assert.Contains(t, help, "<Usage:>")
		assert.Contains(t, help, "<Flags:>")
		assert.Contains(t, help, "<Subcommands:>")
		assert.Contains(t, calls, [2]string{"Usage:", "1"})
		assert.Contains(t, calls, [2]string{"Flags:", "2"})
		assert.Contains(t, calls, [2]string{"Subcommands:", "3"})
	})
	t.Run("pretty help renders every section", func(t *testing.T) {
		t.Parallel()
		help := helpFor(t, newApp().WithPrettyHelp(), []string{"--help"})
		assert.Contains(t, help, "Usage:")
		assert.Contains(t, help, "Flags:")
		assert.Contains(t, help, "Subcommands:")
	})
	t.Run("WithoutPrettyHelp restores plain headings", func(t *testing.T) {
		t.Parallel()
		help := helpFor(t, newApp().WithPrettyHelp().WithoutPrettyHelp(), []string{"--help"})
		assert.Contains(t, help, "Usage:\n  task")
	})
	t.Run("help on a pure routing node", func(t *testing.T) {
		t.Parallel()
		app := New().WithName("svc").AddCommand([]string{"ns", "child"}, nopRunner, nil, "the child")
		help := helpFor(t, app, []string{"ns", "--help"})
		assert.Contains(t, help, "svc ns [ ARGS ]")
		assert.Contains(t, help, "child")
	})
}
