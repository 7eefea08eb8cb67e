package ops

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/kennycyb/pars/internal/store"
)

// GenerateOptions controls Generate per spec.md §4.6.4. InPlace and Force
// are validated as mutually exclusive before anything else runs.
type GenerateOptions struct {
	Length    int
	NoSymbols bool
	InPlace   bool
	Force     bool
}

const (
	upperAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet   = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet   = "23456789"
	symbolAlphabet  = "!#$%&()*+-./:;<=>?@[]^_{|}~"
	maxGenerateTries = 100
)

// Generate implements spec.md §4.6.4. It returns the generated secret, or
// a nil secret if the caller declined an overwrite prompt on stdin.
func (c *Context) Generate(name string, opts GenerateOptions) (*store.Secret, error) {
	if opts.InPlace && opts.Force {
		return nil, store.New(store.KindInvalidFlags, "--in-place and --force are mutually exclusive")
	}

	path, err := store.Resolve(c.Root, name+"."+c.Extension)
	if err != nil {
		return nil, err
	}
	existed := store.IsFile(path)

	if existed && !opts.Force && !opts.InPlace {
		ok, err := c.confirm(name + " already exists, overwrite it? [y/N] ")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}

	password, err := generatePassword(opts.Length, opts.NoSymbols)
	if err != nil {
		return nil, err
	}

	if opts.InPlace && existed {
		client, err := c.clientFor(path)
		if err != nil {
			return nil, err
		}
		secret, err := client.DecryptFile(c.Root, path)
		if err != nil {
			return nil, err
		}
		defer secret.Zero()

		newContent := replaceFirstLine(secret.String(), password)
		if err := store.WithGuard(path, func() error {
			return client.Encrypt([]byte(newContent), path)
		}); err != nil {
			return nil, err
		}
	} else {
		if err := c.encryptTo(path, existed, []byte(password)); err != nil {
			return nil, err
		}
	}

	if err := c.commit(GenerateMessage(name)); err != nil {
		return nil, err
	}
	return store.NewSecret([]byte(password)), nil
}

// replaceFirstLine swaps content's first line for replacement, keeping
// every subsequent line untouched.
func replaceFirstLine(content, replacement string) string {
	idx := strings.IndexByte(content, '\n')
	if idx == -1 {
		return replacement
	}
	return replacement + content[idx:]
}

// generatePassword builds an alphabet from uppercase/lowercase/digit
// (plus symbol, unless noSymbols) categories with visually similar
// characters excluded, then samples length characters, rejecting and
// retrying any draw that fails to include at least one character from
// every enabled category (strict mode, per spec.md §4.6.4).
func generatePassword(length int, noSymbols bool) (string, error) {
	categories := [][]byte{[]byte(upperAlphabet), []byte(lowerAlphabet), []byte(digitAlphabet)}
	if !noSymbols {
		categories = append(categories, []byte(symbolAlphabet))
	}

	var alphabet []byte
	for _, cat := range categories {
		alphabet = append(alphabet, cat...)
	}

	for attempt := 0; attempt < maxGenerateTries; attempt++ {
		candidate, err := sample(alphabet, length)
		if err != nil {
			return "", err
		}
		if satisfiesCategories(candidate, categories) {
			return candidate, nil
		}
	}
	return "", store.New(store.KindIOError, "failed to generate a password satisfying all character categories")
}

func sample(alphabet []byte, length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

func satisfiesCategories(candidate string, categories [][]byte) bool {
	for _, cat := range categories {
		found := false
		for _, r := range []byte(candidate) {
			if containsByte(cat, r) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsByte(haystack []byte, b byte) bool {
	for _, h := range haystack {
		if h == b {
			return true
		}
	}
	return false
}
