package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// NodeKind classifies a TreeNode's filesystem kind.
type NodeKind int

const (
	// KindFile is a regular file.
	KindFile NodeKind = iota
	// KindDir is a directory.
	KindDir
	// KindSymlink is a symbolic link (to a file or to a directory).
	KindSymlink
	// KindOther is anything else (device, socket, fifo, ...).
	KindOther
	// KindInvalid should never be emitted by Render; its presence is a bug.
	KindInvalid
)

// TreeNode is one entry in a DirTree's arena. Children are arena indices,
// not owning pointers, and Parent is -1 only for the root.
type TreeNode struct {
	Name          string
	Parent        int
	Children      []int
	Kind          NodeKind
	SymlinkTarget string
	Recursive     bool
	Visible       bool
}

// DirTree is an arena-backed, in-memory directory tree built from a real
// filesystem subtree. Nodes live in a single contiguous slice; there is no
// shared ownership or back-pointer other than the integer Parent index.
type DirTree struct {
	Nodes []TreeNode
	Root  int
}

// FilterType selects how Filters are applied during Build.
type FilterType int

const (
	// FilterDisable applies no filtering; every node is visible.
	FilterDisable FilterType = iota
	// FilterExclude drops any entry whose name matches a filter at build time.
	FilterExclude
	// FilterInclude builds the whole tree, then whitelists nodes whose name
	// matches a filter (plus their ancestors) in a second pass.
	FilterInclude
)

// BuildConfig parametrizes Build.
type BuildConfig struct {
	// FSRoot is the real filesystem directory to walk.
	FSRoot string
	// Name is used as the synthetic root node's name (e.g. the sub-path
	// the caller asked to render).
	Name string
	FilterType FilterType
	Filters    []*regexp.Regexp
}

type frame struct {
	parent  int
	dirPath string
	entries []os.DirEntry
	idx     int
	read    bool
}

// Build walks cfg.FSRoot iteratively (no recursion) and returns the
// resulting DirTree. Children within each directory are visited in
// lexicographic order, established once at build time; Render relies on
// that order rather than re-sorting.
func Build(cfg BuildConfig) (*DirTree, error) {
	rootCanonical, err := canonicalPath(cfg.FSRoot)
	if err != nil {
		return nil, Wrap(KindIOError, cfg.FSRoot, err)
	}

	tree := &DirTree{Nodes: []TreeNode{{Name: cfg.Name, Parent: -1, Kind: KindDir}}, Root: 0}
	visited := map[string]bool{rootCanonical: true}

	stack := []frame{{parent: 0, dirPath: cfg.FSRoot}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.read {
			entries, err := os.ReadDir(top.dirPath)
			if err != nil {
				return nil, Wrap(KindIOError, top.dirPath, err)
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
			top.entries = entries
			top.read = true
		}
		if top.idx >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.idx]
		top.idx++
		name := entry.Name()

		if cfg.FilterType == FilterExclude && matchesAny(cfg.Filters, name) {
			continue
		}

		fullPath := filepath.Join(top.dirPath, name)
		node, descendInto, err := classify(fullPath, top.parent, visited)
		if err != nil {
			return nil, err
		}
		node.Name = name

		childIdx := len(tree.Nodes)
		tree.Nodes = append(tree.Nodes, node)
		tree.Nodes[top.parent].Children = append(tree.Nodes[top.parent].Children, childIdx)

		if descendInto != "" {
			stack = append(stack, frame{parent: childIdx, dirPath: descendInto})
		}
	}

	applyVisibility(tree, cfg)
	shrink(tree)
	return tree, nil
}

// classify Lstat's fullPath and decides its NodeKind, following symlinks
// (repeatedly, via EvalSymlinks) to detect recursion against the visited
// set. It returns the node (sans Name) and, if the entry should be
// descended into, the real filesystem path to read next.
func classify(fullPath string, parent int, visited map[string]bool) (TreeNode, string, error) {
	info, err := os.Lstat(fullPath)
	if err != nil {
		return TreeNode{}, "", Wrap(KindIOError, fullPath, err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, evalErr := filepath.EvalSymlinks(fullPath)
		if evalErr != nil {
			// Dangling symlink: render it, do not descend.
			raw, _ := os.Readlink(fullPath)
			return TreeNode{Parent: parent, Kind: KindSymlink, SymlinkTarget: raw}, "", nil
		}
		canonical, canonErr := canonicalPath(target)
		if canonErr != nil {
			canonical = target
		}
		if visited[canonical] {
			return TreeNode{Parent: parent, Kind: KindSymlink, SymlinkTarget: target, Recursive: true}, "", nil
		}
		targetInfo, statErr := os.Stat(target)
		node := TreeNode{Parent: parent, Kind: KindSymlink, SymlinkTarget: target}
		if statErr == nil && targetInfo.IsDir() {
			visited[canonical] = true
			return node, target, nil
		}
		return node, "", nil
	case info.IsDir():
		if canonical, canonErr := canonicalPath(fullPath); canonErr == nil {
			visited[canonical] = true
		}
		return TreeNode{Parent: parent, Kind: KindDir}, fullPath, nil
	case info.Mode().IsRegular():
		return TreeNode{Parent: parent, Kind: KindFile}, "", nil
	default:
		return TreeNode{Parent: parent, Kind: KindOther}, "", nil
	}
}

func canonicalPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

func matchesAny(filters []*regexp.Regexp, name string) bool {
	for _, f := range filters {
		if f.MatchString(name) {
			return true
		}
	}
	return false
}

// applyVisibility marks nodes visible per cfg.FilterType. The root is
// always visible. In Include mode, a node survives iff its own name
// matches a filter or it is an ancestor of a node that does; everything
// else defaults to visible in Exclude/Disable mode, since exclusion
// already happened (or never applies) at build time.
func applyVisibility(tree *DirTree, cfg BuildConfig) {
	if cfg.FilterType != FilterInclude {
		for i := range tree.Nodes {
			tree.Nodes[i].Visible = true
		}
		return
	}

	tree.Nodes[tree.Root].Visible = true
	for i, n := range tree.Nodes {
		if i == tree.Root {
			continue
		}
		if matchesAny(cfg.Filters, n.Name) {
			markVisibleUpward(tree, i)
		}
	}
}

// markVisibleUpward marks idx and its ancestors visible, stopping as soon
// as it reaches an already-visible node (which, by induction, already has
// a fully-visible ancestor chain up to the root).
func markVisibleUpward(tree *DirTree, idx int) {
	for idx != -1 && !tree.Nodes[idx].Visible {
		tree.Nodes[idx].Visible = true
		idx = tree.Nodes[idx].Parent
	}
}

// shrink compacts every node's Children to only its visible children.
func shrink(tree *DirTree) {
	for i := range tree.Nodes {
		if len(tree.Nodes[i].Children) == 0 {
			continue
		}
		kept := tree.Nodes[i].Children[:0:0]
		for _, c := range tree.Nodes[i].Children {
			if tree.Nodes[c].Visible {
				kept = append(kept, c)
			}
		}
		tree.Nodes[i].Children = kept
	}
}

// ColorConfig maps node kinds to ANSI color codes for Render. An empty
// string means "no color"; colors are resolved once via a small lookup
// (see ansiColor in app/cmd/colors.go) and applied at render time only —
// stored data is colour-free.
type ColorConfig struct {
	Dir    string
	File   string
	Symbol string
	Tree   string
}

// StripExt is applied to each rendered leaf name, stripping a trailing
// ".<ext>" the way `ls`/`find` hide the secret extension from the user.
type StripExt struct {
	Ext string
}

// Render produces the canonical ASCII tree for the visible nodes below
// root (root itself is not printed, matching `tree`/`pass ls` output).
func Render(tree *DirTree, colors ColorConfig, strip StripExt) string {
	var b strings.Builder
	renderChildren(&b, tree, tree.Root, "", colors, strip)
	return strings.TrimRight(b.String(), "\n")
}

func renderChildren(b *strings.Builder, tree *DirTree, nodeIdx int, prefix string, colors ColorConfig, strip StripExt) {
	children := tree.Nodes[nodeIdx].Children
	for i, childIdx := range children {
		last := i == len(children)-1
		connector := "├── "
		nextPrefix := prefix + "│   "
		if last {
			connector = "└── "
			nextPrefix = prefix + "    "
		}
		b.WriteString(prefix)
		b.WriteString(colorize(connector, colors.Tree))
		b.WriteString(renderLabel(tree.Nodes[childIdx], colors, strip))
		b.WriteString("\n")
		renderChildren(b, tree, childIdx, nextPrefix, colors, strip)
	}
}

func renderLabel(n TreeNode, colors ColorConfig, strip StripExt) string {
	name := n.Name
	switch n.Kind {
	case KindFile:
		if strip.Ext != "" && strings.HasSuffix(name, "."+strip.Ext) {
			name = strings.TrimSuffix(name, "."+strip.Ext)
		}
		return colorize(name, colors.File)
	case KindDir:
		return colorize(name, colors.Dir)
	case KindSymlink:
		label := fmt.Sprintf("%s -> %s", name, n.SymlinkTarget)
		if n.Recursive {
			label += " [recursive]"
		}
		return colorize(label, colors.Symbol)
	case KindOther:
		return colorize(name, colors.Symbol)
	default:
		// KindInvalid never reaches Render; a call here is a bug.
		return "<invalid:" + name + ">"
	}
}

func colorize(s, code string) string {
	if code == "" {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}
