package ops

import (
	"regexp"
	"strings"

	"github.com/kennycyb/pars/internal/store"
)

// Find implements spec.md §4.6.8: render the store tree in Include
// (whitelist) mode against the given search terms, compiled as regexes,
// and prefix the result with a header listing the terms.
func (c *Context) Find(terms []string) (string, error) {
	filters := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		re, err := regexp.Compile(term)
		if err != nil {
			return "", store.Wrap(store.KindIOError, term, err)
		}
		filters = append(filters, re)
	}

	tree, err := store.Build(store.BuildConfig{
		FSRoot:     c.Root,
		Name:       "Password Store",
		FilterType: store.FilterInclude,
		Filters:    filters,
	})
	if err != nil {
		return "", err
	}

	rendered := store.Render(tree, c.Colors, store.StripExt{Ext: c.Extension})
	header := "Search Terms: " + strings.Join(terms, ", ")
	return header + "\n" + rendered, nil
}
