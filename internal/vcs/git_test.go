package vcs_test

import (
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kennycyb/pars/internal/vcs"
)

func runGit(dir string, args ...string) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	Expect(cmd.Run()).To(Succeed())
}

var _ = Describe("Git", func() {
	var tmpDir string
	var g *vcs.Git

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "pars-vcs-test")
		Expect(err).NotTo(HaveOccurred())
		g = vcs.New("")
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("IsRepo", func() {
		It("returns false for a plain directory", func() {
			Expect(g.IsRepo(tmpDir)).To(BeFalse())
		})

		It("returns true once git init has run", func() {
			runGit(tmpDir, "init")
			Expect(g.IsRepo(tmpDir)).To(BeTrue())
		})
	})

	Describe("AddAllAndCommit", func() {
		It("is a no-op outside a repository", func() {
			Expect(g.AddAllAndCommit(tmpDir, "message")).To(Succeed())
		})

		It("commits every untracked file", func() {
			runGit(tmpDir, "init")
			runGit(tmpDir, "config", "user.email", "test@example.com")
			runGit(tmpDir, "config", "user.name", "Test User")

			Expect(os.WriteFile(filepath.Join(tmpDir, "a.gpg"), []byte("x"), 0o644)).To(Succeed())
			Expect(g.AddAllAndCommit(tmpDir, "Add password for a")).To(Succeed())

			cmd := exec.Command("git", "log", "--oneline")
			cmd.Dir = tmpDir
			out, err := cmd.Output()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(ContainSubstring("Add password for a"))
		})
	})
})
