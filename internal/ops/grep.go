package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// GrepColors holds the two colours grep output uses: Pass colours the
// path header, Match colours the literal matched substring within a
// line.
type GrepColors struct {
	Pass  string
	Match string
}

// Grep implements spec.md §4.6.8: walk every secret file under the
// store, decrypt it with its own effective recipients, and collect lines
// containing searchStr as a literal substring. Matching is literal
// substring; the optional colourisation step re-finds the same text via
// a regex built from the escaped search string, matching the original
// implementation's split between match-test and match-highlight.
func (c *Context) Grep(searchStr string) (string, error) {
	var highlighter *regexp.Regexp
	if c.GrepColors.Match != "" {
		highlighter = regexp.MustCompile(regexp.QuoteMeta(searchStr))
	}

	var b strings.Builder
	err := filepath.WalkDir(c.Root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(path) != "."+c.Extension {
			return nil
		}

		client, err := c.clientFor(path)
		if err != nil {
			return err
		}
		secret, err := client.DecryptFile(c.Root, path)
		if err != nil {
			return err
		}
		defer secret.Zero()

		var matches []string
		for _, line := range strings.Split(secret.String(), "\n") {
			if strings.Contains(line, searchStr) {
				matches = append(matches, line)
			}
		}
		if len(matches) == 0 {
			return nil
		}

		rel, relErr := filepath.Rel(c.Root, path)
		if relErr != nil {
			rel = path
		}
		rel = strings.TrimSuffix(rel, "."+c.Extension)

		fmt.Fprintln(&b, colorize(rel+":", c.GrepColors.Pass))
		for _, line := range matches {
			fmt.Fprintln(&b, "  "+highlight(line, highlighter, c.GrepColors.Match))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func highlight(line string, re *regexp.Regexp, color string) string {
	if re == nil || color == "" {
		return line
	}
	return re.ReplaceAllStringFunc(line, func(m string) string {
		return colorize(m, color)
	})
}

func colorize(s, code string) string {
	if code == "" {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}
