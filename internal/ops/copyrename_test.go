package ops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/ops"
	"github.com/kennycyb/pars/internal/store"
)

func TestCopyOrRenameRequiresExistingDirectoryForTrailingSlash(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "work.gpg"), []byte("x"), 0o644))

	c, _, _ := newTestContext(t, root)
	err := c.CopyOrRename("work", "nonexistent-dir/", ops.CopyRenameOptions{})
	require.Error(t, err)
	assert.Equal(t, store.KindIsDirectory, store.KindOf(err))
}
