package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_WritesToInitializedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Close() })

	Log("folded %d frames", 3)
	Logf("evicted %s", "abc")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "folded 3 frames")
	assert.Contains(t, lines[1], "evicted abc")
	assert.True(t, strings.HasPrefix(lines[0], "["), "line should start with a timestamp: %q", lines[0])
}

func TestLog_NoopAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, Init(path))
	require.NoError(t, Close())

	// envTried is left as-is so the environment cannot reopen a file here.
	mu.Lock()
	envTried = true
	mu.Unlock()

	Log("dropped")
	assert.False(t, Enabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
