// Package vcs wraps an external version-control executable (conventionally
// git). It is the Message & Commit Collaborator from spec.md §4.7: it
// performs the equivalent of `<vcs> add -A` then `<vcs> commit -m
// <message>` and nothing more — it never manages the repository's
// internal state beyond that, per spec.md §1 Non-goal (b). Adapted from
// the teacher's internal/service/git package, which shells out to git the
// same way for status/branch/pull checks.
package vcs

import (
	"bytes"
	"os/exec"

	"github.com/kennycyb/pars/internal/store"
)

// Git is the add-all-and-commit collaborator the Operation Layer depends
// on. Executable defaults to "git".
type Git struct {
	Executable string
}

// New constructs a Git collaborator. An empty executable defaults to "git".
func New(executable string) *Git {
	if executable == "" {
		executable = "git"
	}
	return &Git{Executable: executable}
}

// IsRepo reports whether repoRoot is (the root of) a git working tree.
func (g *Git) IsRepo(repoRoot string) bool {
	cmd := exec.Command(g.Executable, "-C", repoRoot, "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// AddAllAndCommit runs `git add -A` then `git commit -m message` in
// repoRoot. Errors are surfaced as KindVCSError; per spec.md §4.7 they do
// not roll back the filesystem mutation that already happened — the user
// reconciles manually.
func (g *Git) AddAllAndCommit(repoRoot, message string) error {
	if !g.IsRepo(repoRoot) {
		return nil
	}

	if out, err := g.run(repoRoot, "add", "-A"); err != nil {
		return &store.Error{Kind: store.KindVCSError, Msg: "git add -A", Stderr: out, Err: err}
	}
	if out, err := g.run(repoRoot, "commit", "-m", message); err != nil {
		return &store.Error{Kind: store.KindVCSError, Msg: "git commit", Stderr: out, Err: err}
	}
	return nil
}

// Passthrough runs the VCS executable with args in repoRoot, capturing its
// stdout and stderr into the given buffers, for the `pars git`
// passthrough subcommand (spec.md §6).
func (g *Git) Passthrough(repoRoot string, args []string, stdout, stderr *bytes.Buffer) error {
	cmd := exec.Command(g.Executable, args...)
	cmd.Dir = repoRoot
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return &store.Error{Kind: store.KindVCSError, Msg: "git", Stderr: stderr.String(), Err: err}
	}
	return nil
}

func (g *Git) run(dir string, args ...string) (string, error) {
	cmd := exec.Command(g.Executable, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}
