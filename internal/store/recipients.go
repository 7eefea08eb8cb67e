package store

import (
	"os"
	"path/filepath"
	"strings"
)

// GPGIDFilename is the name of the per-directory recipient override file.
const GPGIDFilename = ".gpg-id"

// RecipientsFor walks upward from path's directory toward root looking for
// the nearest .gpg-id file and returns its trimmed, non-empty lines in
// file order. The first .gpg-id found wins entirely — there is no
// inheritance/merging across directory levels.
func RecipientsFor(root, path string) ([]string, error) {
	root = filepath.Clean(root)
	dir := path
	if !IsDir(path) {
		dir = filepath.Dir(path)
	}
	dir = filepath.Clean(dir)

	if dir != root && !strings.HasPrefix(dir, root+string(filepath.Separator)) {
		return nil, Newf(KindPathEscapesRoot, "%s escapes store root %s", path, root)
	}

	for {
		candidate := filepath.Join(dir, GPGIDFilename)
		if ids, ok, err := readGPGID(candidate); err != nil {
			return nil, err
		} else if ok {
			return ids, nil
		}
		if dir == root {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, Newf(KindNoRecipients, "no %s found from %s up to %s", GPGIDFilename, path, root)
}

// readGPGID reads and parses a .gpg-id file if it exists and is a regular
// file. ok is false (with no error) if the file does not exist.
func readGPGID(path string) (ids []string, ok bool, err error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, false, nil
	}
	if !info.Mode().IsRegular() {
		return nil, false, nil
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, false, Wrap(KindIOError, path, readErr)
	}
	return ParseGPGID(string(data)), true, nil
}

// ParseGPGID splits .gpg-id content on newlines, trims each line, and
// drops empty lines.
func ParseGPGID(content string) []string {
	var ids []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids
}

// WriteGPGID writes one recipient identifier per line, with no trailing
// newline after the last line, matching spec.md §4.6.1.
func WriteGPGID(path string, ids []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Wrap(KindIOError, path, err)
	}
	content := strings.Join(ids, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Wrap(KindIOError, path, err)
	}
	return nil
}

// SameRecipientSet reports whether two recipient lists are equal when
// compared set-wise (order-independent, duplicates collapsed).
func SameRecipientSet(a, b []string) bool {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for k := range setA {
		if !setB[k] {
			return false
		}
	}
	return true
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
