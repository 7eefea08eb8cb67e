// Package ops implements the Operation Layer: the init/insert/edit/
// generate/remove/copy/move/list/find/grep operations described in
// spec.md §4, each built on internal/store's path resolver, recipient
// resolver, backup guard and tree engine, internal/pgp's Client, and
// internal/vcs's Git collaborator.
package ops

import "fmt"

// CommitMessage is the small algebraic message builder from spec.md §4.6:
// every mutating operation commits through the VCS collaborator with one
// of these fixed shapes.
type CommitMessage struct {
	text string
}

// String returns the literal commit message text.
func (m CommitMessage) String() string { return m.text }

// InitMessage builds "Init <keys>" for a store (re-)initialisation, keys
// joined by ", " in the order given.
func InitMessage(keys []string) CommitMessage {
	return CommitMessage{text: fmt.Sprintf("Init %s", joinKeys(keys))}
}

// GenerateMessage builds "Generate password for <name>".
func GenerateMessage(name string) CommitMessage {
	return CommitMessage{text: fmt.Sprintf("Generate password for %s", name)}
}

// UpdateMessage builds "Update password for <name>", used by edit and by
// insert-over-existing.
func UpdateMessage(name string) CommitMessage {
	return CommitMessage{text: fmt.Sprintf("Update password for %s", name)}
}

// InsertMessage builds "Add password for <name>" for inserting a brand
// new entry (no prior ciphertext at the target path).
func InsertMessage(name string) CommitMessage {
	return CommitMessage{text: fmt.Sprintf("Add password for %s", name)}
}

// RemoveMessage builds "Remove <name>".
func RemoveMessage(name string) CommitMessage {
	return CommitMessage{text: fmt.Sprintf("Remove %s", name)}
}

// CopyMessage builds "Copy <src> to <dst>".
func CopyMessage(src, dst string) CommitMessage {
	return CommitMessage{text: fmt.Sprintf("Copy %s to %s", src, dst)}
}

// RenameMessage builds "Rename <src> to <dst>", used by move.
func RenameMessage(src, dst string) CommitMessage {
	return CommitMessage{text: fmt.Sprintf("Rename %s to %s", src, dst)}
}

func joinKeys(keys []string) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}
