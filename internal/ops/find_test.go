package ops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHeaderListsTerms(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "email"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "email", "work.gpg"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "email", "personal.gpg"), []byte("x"), 0o644))

	c, _, _ := newTestContext(t, root)
	out, err := c.Find([]string{"work"})
	require.NoError(t, err)
	assert.Contains(t, out, "Search Terms: work")
	assert.Contains(t, out, "work")
	assert.NotContains(t, out, "personal")
}
