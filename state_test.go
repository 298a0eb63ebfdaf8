package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFlag(t *testing.T) {
	t.Parallel()

	in := &Input{Flags: NewFlags(
		Int("count", 7, "number of items"),
		StringList("tags", []string{"a"}, "tags to attach"),
	)}

	t.Run("typed access", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 7, GetFlag[int](in, "count"))
		assert.Equal(t, []string{"a"}, GetFlag[[]string](in, "tags"))
	})
	t.Run("flag not found", func(t *testing.T) {
		t.Parallel()
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Contains(t, fmt.Sprint(r), `flag "missing" not found`)
		}()
		// Panic because the author asked for a flag that was never defined.
		_ = GetFlag[string](in, "missing")
	})
	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Contains(t, fmt.Sprint(r), `type mismatch for flag "tags"`)
		}()
		// Panic because the author asked for a registered flag with the wrong type.
		_ = GetFlag[int](in, "tags")
	})
}
