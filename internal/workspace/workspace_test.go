package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtkit/retab/internal/workspace"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func TestFormatWritesBack(t *testing.T) {
	path := writeFile(t, "page.html", "<div><p>Hi</p></div>")

	ws := workspace.New(false)

	changed, err := ws.Format(path)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<div>\n  <p>\n    Hi\n  </p>\n</div>\n", string(got))

	// The second run sees already-formatted text and must not report a
	// change.
	changed, err = ws.Format(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFormatKeepsFileMode(t *testing.T) {
	path := writeFile(t, "page.html", "<div><p>Hi</p></div>")
	require.NoError(t, os.Chmod(path, 0600))

	ws := workspace.New(false)

	changed, err := ws.Format(path)
	require.NoError(t, err)
	assert.True(t, changed)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFormatDryRun(t *testing.T) {
	const original = "<div><p>Hi</p></div>"
	path := writeFile(t, "page.html", original)

	ws := workspace.New(true)

	changed, err := ws.Format(path)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(got), "dry run must not rewrite the file")
}

func TestFormatFallback(t *testing.T) {
	path := writeFile(t, "notes.txt", "a\tb\n")

	ws := workspace.New(false)

	changed, err := ws.Format(path)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a  b\n", string(got))
}

func TestFormatMissingFile(t *testing.T) {
	ws := workspace.New(false)

	_, err := ws.Format(filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
}
