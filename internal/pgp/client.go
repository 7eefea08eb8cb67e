package pgp

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/kennycyb/pars/internal/logging"
	"github.com/kennycyb/pars/internal/store"
)

// Client wraps one external PGP executable together with a resolved set
// of recipient keys. It is constructed fresh for each operation, the same
// lifetime the spec assigns a Key Record (spec.md §3 "Key Record").
type Client struct {
	Executable string
	Keys       []Key
	log        *logging.Logger
}

// New constructs a Client, resolving every recipient identifier via
// --list-keys --with-colons. Any lookup failure aborts construction with
// KindKeyLookup.
func New(executable string, recipients []string, log *logging.Logger) (*Client, error) {
	if executable == "" {
		executable = "gpg2"
	}
	keys := make([]Key, 0, len(recipients))
	for _, id := range recipients {
		key, err := resolveKey(executable, id)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		if log != nil {
			log.Debug("resolved recipient %s -> %s", id, key.Fingerprint)
		}
	}
	return &Client{Executable: executable, Keys: keys, log: log}, nil
}

// Fingerprints returns the resolved recipient fingerprints in key order.
func (c *Client) Fingerprints() []string {
	fprs := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		fprs[i] = k.Fingerprint
	}
	return fprs
}

func (c *Client) recipientArgs() []string {
	args := make([]string, 0, len(c.Keys)*2)
	for _, k := range c.Keys {
		args = append(args, "--recipient", k.Fingerprint)
	}
	return args
}

// Encrypt spawns `<exe> --batch --yes --encrypt (--recipient FPR)…
// --output outputPath`, feeding plaintext on stdin. stdout/stderr are captured to
// memory, never inherited, so a secret can never leak to an ambient
// terminal. Non-zero exit is KindEncryptFailed carrying captured stderr.
func (c *Client) Encrypt(plaintext []byte, outputPath string) error {
	args := append([]string{"--batch", "--yes", "--encrypt"}, c.recipientArgs()...)
	args = append(args, "--output", outputPath)

	cmd := exec.Command(c.Executable, args...)
	cmd.Stdin = bytes.NewReader(plaintext)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if c.log != nil {
		c.log.Debug("gpg %v", args)
	}

	if err := cmd.Run(); err != nil {
		return &store.Error{Kind: store.KindEncryptFailed, Path: outputPath, Stderr: stderr.String(), Err: err}
	}
	return nil
}

// DecryptFile spawns `<exe> --batch --decrypt (--recipient FPR)… <filePath>` with
// current_dir = workDir, capturing stdout as the secret plaintext.
// Non-zero exit is KindDecryptFailed.
func (c *Client) DecryptFile(workDir, filePath string) (*store.Secret, error) {
	args := append([]string{"--batch", "--decrypt"}, c.recipientArgs()...)
	args = append(args, filePath)

	cmd := exec.Command(c.Executable, args...)
	cmd.Dir = workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if c.log != nil {
		c.log.Debug("gpg %v (cwd=%s)", args, workDir)
	}

	if err := cmd.Run(); err != nil {
		return nil, &store.Error{Kind: store.KindDecryptFailed, Path: filePath, Stderr: stderr.String(), Err: err}
	}
	return store.NewSecret(stdout.Bytes()), nil
}

// DecryptWithPassword decrypts filePath using pinentry loopback mode,
// feeding passphrase on stdin (then zeroising it) instead of relying on
// an agent prompt.
func (c *Client) DecryptWithPassword(filePath string, passphrase *store.Secret) (*store.Secret, error) {
	defer passphrase.Zero()

	args := append([]string{"--batch", "--pinentry-mode", "loopback", "--passphrase-fd", "0", "--decrypt"}, c.recipientArgs()...)
	args = append(args, filePath)

	cmd := exec.Command(c.Executable, args...)
	cmd.Stdin = bytes.NewReader(passphrase.Expose())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &store.Error{Kind: store.KindDecryptFailed, Path: filePath, Stderr: stderr.String(), Err: err}
	}
	return store.NewSecret(stdout.Bytes()), nil
}

// KeyGenBatch pipes a batch document to `<exe> --batch --gen-key`.
// Interactive key operations may inherit stdio per spec.md §4.3.
func (c *Client) KeyGenBatch(batchDoc string) error {
	cmd := exec.Command(c.Executable, "--batch", "--gen-key")
	cmd.Stdin = bytes.NewReader([]byte(batchDoc))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &store.Error{Kind: store.KindKeyLookup, Msg: "gpg --gen-key", Stderr: stderr.String(), Err: err}
	}
	return nil
}

// KeyEditBatch pipes a batch document to `<exe> --edit-key <fpr>` for the
// Client's first resolved key.
func (c *Client) KeyEditBatch(batchDoc string) error {
	if len(c.Keys) == 0 {
		return &store.Error{Kind: store.KindKeyLookup, Msg: "no key to edit"}
	}
	cmd := exec.Command(c.Executable, "--command-fd", "0", "--edit-key", c.Keys[0].Fingerprint)
	cmd.Stdin = bytes.NewReader([]byte(batchDoc))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &store.Error{Kind: store.KindKeyLookup, Msg: fmt.Sprintf("gpg --edit-key %s", c.Keys[0].Fingerprint), Stderr: stderr.String(), Err: err}
	}
	return nil
}
