package store

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve translates a logical password name into an absolute path inside
// root, lexically cleaning the join and rejecting any result that escapes
// root. It never touches the filesystem; only the exists/ResolveSecret
// helpers below do.
func Resolve(root, logicalName string) (string, error) {
	root = filepath.Clean(root)
	joined := filepath.Join(root, logicalName)
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		return "", Newf(KindPathEscapesRoot, "%s escapes store root %s", logicalName, root)
	}
	return joined, nil
}

// ResolveSecret resolves a logical name to the path of its encrypted file,
// trying the bare name first (for directory targets) and then name+"."+ext.
// Fails with KindNotFound if neither exists.
func ResolveSecret(root, name, ext string) (string, error) {
	bare, err := Resolve(root, name)
	if err != nil {
		return "", err
	}
	if exists(bare) {
		return bare, nil
	}
	withExt, err := Resolve(root, name+"."+ext)
	if err != nil {
		return "", err
	}
	if exists(withExt) {
		return withExt, nil
	}
	return "", Newf(KindNotFound, "no entry named %s", name)
}

// ResolveNoExtension resolves a destination path with no automatic
// extension appended — used by copy/move's `to` argument.
func ResolveNoExtension(root, name string) (string, error) {
	return Resolve(root, name)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// HasTrailingSeparator reports whether a logical name ends with a path
// separator, signalling "this is a directory target" per spec.md §4.1.
func HasTrailingSeparator(name string) bool {
	return strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator))
}
