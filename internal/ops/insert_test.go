package ops_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/ops"
	"github.com/kennycyb/pars/internal/store"
)

func newTestContext(t *testing.T, root string) (*ops.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return &ops.Context{
		Root:      root,
		Extension: "gpg",
		Stdin:     bytes.NewReader(nil),
		Stdout:    &stdout,
		Stderr:    &stderr,
	}, &stdout, &stderr
}

func TestInsertRefusesOverwriteWithoutForce(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "existing.gpg"), []byte("x"), 0o644))

	c, _, _ := newTestContext(t, root)
	err := c.Insert("existing", ops.InsertOptions{})
	require.Error(t, err)
	assert.Equal(t, store.KindInvalidFlags, store.KindOf(err))
}
