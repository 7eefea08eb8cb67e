package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennycyb/pars/internal/ops"
)

var mvForce bool

// mvCmd renames (moves) an entry, re-encrypting it if the source and
// destination directories have different recipients.
var mvCmd = &cobra.Command{
	Use:     "mv <old> <new>",
	Aliases: []string{"rename"},
	Short:   "Rename or move a password entry",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opsCtx.CopyOrRename(args[0], args[1], ops.CopyRenameOptions{Force: mvForce})
	},
}

func init() {
	mvCmd.Flags().BoolVarP(&mvForce, "force", "f", false, "overwrite an existing destination without prompting")
	rootCmd.AddCommand(mvCmd)
}
