package store_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/store"
)

func writeTree(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "email"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "email", "work.gpg"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "email", "personal.gpg"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "banking"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "banking", "checking.gpg"), []byte("x"), 0o644))
}

func TestBuildAndRenderDisableMode(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	tree, err := store.Build(store.BuildConfig{FSRoot: root, Name: "Password Store", FilterType: store.FilterDisable})
	require.NoError(t, err)

	out := store.Render(tree, store.ColorConfig{}, store.StripExt{Ext: "gpg"})
	assert.Contains(t, out, "├── banking")
	assert.Contains(t, out, "└── email")
	assert.Contains(t, out, "checking")
	assert.NotContains(t, out, "checking.gpg")
}

func TestBuildExcludeMode(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	tree, err := store.Build(store.BuildConfig{
		FSRoot:     root,
		Name:       "Password Store",
		FilterType: store.FilterExclude,
		Filters:    []*regexp.Regexp{regexp.MustCompile("^banking$")},
	})
	require.NoError(t, err)

	out := store.Render(tree, store.ColorConfig{}, store.StripExt{Ext: "gpg"})
	assert.NotContains(t, out, "banking")
	assert.Contains(t, out, "email")
}

func TestBuildIncludeModeKeepsAncestors(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	tree, err := store.Build(store.BuildConfig{
		FSRoot:     root,
		Name:       "Password Store",
		FilterType: store.FilterInclude,
		Filters:    []*regexp.Regexp{regexp.MustCompile("work")},
	})
	require.NoError(t, err)

	out := store.Render(tree, store.ColorConfig{}, store.StripExt{Ext: "gpg"})
	assert.Contains(t, out, "email")
	assert.Contains(t, out, "work")
	assert.NotContains(t, out, "personal")
	assert.NotContains(t, out, "banking")
}

func TestBuildDetectsSymlinkCycle(t *testing.T) {
	if os.Getenv("CI_NO_SYMLINKS") != "" {
		t.Skip("symlinks unsupported in this environment")
	}
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "loop"), 0o755))
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop", "back")))

	tree, err := store.Build(store.BuildConfig{FSRoot: root, Name: "Password Store", FilterType: store.FilterDisable})
	require.NoError(t, err)

	out := store.Render(tree, store.ColorConfig{}, store.StripExt{Ext: "gpg"})
	assert.Contains(t, out, "[recursive]")
}

func TestBuildDetectsSymlinkCycleThroughNonRootDir(t *testing.T) {
	if os.Getenv("CI_NO_SYMLINKS") != "" {
		t.Skip("symlinks unsupported in this environment")
	}
	root := t.TempDir()
	sub := filepath.Join(root, "A")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.Symlink(sub, filepath.Join(sub, "link")))

	tree, err := store.Build(store.BuildConfig{FSRoot: root, Name: "Password Store", FilterType: store.FilterDisable})
	require.NoError(t, err)

	out := store.Render(tree, store.ColorConfig{}, store.StripExt{Ext: "gpg"})
	assert.Contains(t, out, "link")
	assert.Contains(t, out, "[recursive]")
	// The cycle must be flagged on its first occurrence and not descended
	// into, so the "link -> " label appears exactly once. (A bare "link"
	// also occurs in the target path, since the temp dir is named after
	// this test.)
	assert.Equal(t, 1, strings.Count(out, "link -> "))
}
