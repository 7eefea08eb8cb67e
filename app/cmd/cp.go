package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennycyb/pars/internal/ops"
)

var cpForce bool

// cpCmd copies an entry, re-encrypting it if the source and destination
// directories have different recipients.
var cpCmd = &cobra.Command{
	Use:     "cp <old> <new>",
	Aliases: []string{"copy"},
	Short:   "Copy a password entry",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opsCtx.CopyOrRename(args[0], args[1], ops.CopyRenameOptions{Copy: true, Force: cpForce})
	},
}

func init() {
	cpCmd.Flags().BoolVarP(&cpForce, "force", "f", false, "overwrite an existing destination without prompting")
	rootCmd.AddCommand(cpCmd)
}
