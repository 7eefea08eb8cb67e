package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// gitCmd passes its arguments straight through to the VCS executable in
// the store root.
var gitCmd = &cobra.Command{
	Use:                "git -- <args...>",
	Short:              "Pass arguments through to the version-control tool in the store root",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var stdout, stderr bytes.Buffer
		err := opsCtx.Git.Passthrough(opsCtx.Root, args, &stdout, &stderr)
		fmt.Fprint(os.Stdout, stdout.String())
		fmt.Fprint(os.Stderr, stderr.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(gitCmd)
}
