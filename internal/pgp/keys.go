// Package pgp drives an external PGP executable (conventionally gpg2) in
// batch mode for encryption, decryption, and key-identifier resolution.
// It never implements cryptography itself — it only shells out, the same
// "external-tool polymorphism" the teacher's internal/service/encrypt
// package uses for its own GPG calls.
package pgp

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kennycyb/pars/internal/store"
)

// Key is a resolved recipient: fingerprint, real name, and email, parsed
// from `gpg --list-keys --with-colons <identifier>` output.
type Key struct {
	Identifier  string
	Fingerprint string
	Name        string
	Email       string
}

// resolveKey runs `<exe> --list-keys --with-colons <id>` and parses the
// colon-delimited output: a `fpr` record's field 10 is the fingerprint; a
// `uid` record's field 10 is "Real Name <email>", split on " <" and ">".
func resolveKey(executable, identifier string) (Key, error) {
	cmd := exec.Command(executable, "--list-keys", "--with-colons", identifier)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Key{}, &store.Error{Kind: store.KindKeyLookup, Msg: fmt.Sprintf("gpg --list-keys %s", identifier), Stderr: stderr.String(), Err: err}
	}

	key := Key{Identifier: identifier}
	for _, line := range strings.Split(stdout.String(), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "fpr":
			if len(fields) > 9 && key.Fingerprint == "" {
				key.Fingerprint = fields[9]
			}
		case "uid":
			if len(fields) > 9 && key.Name == "" && key.Email == "" {
				key.Name, key.Email = splitUID(fields[9])
			}
		}
	}

	if key.Fingerprint == "" {
		return Key{}, &store.Error{Kind: store.KindKeyLookup, Msg: fmt.Sprintf("no fingerprint resolved for %s", identifier), Stderr: stderr.String()}
	}
	return key, nil
}

// splitUID extracts the real name (up to " <") and the email (between
// "<" and ">") from a gpg uid field such as "Alice Smith <alice@ex.com>".
func splitUID(uid string) (name, email string) {
	start := strings.LastIndex(uid, "<")
	end := strings.LastIndex(uid, ">")
	if start == -1 || end == -1 || end < start {
		return strings.TrimSpace(uid), ""
	}
	name = strings.TrimSpace(uid[:start])
	email = uid[start+1 : end]
	return name, email
}
