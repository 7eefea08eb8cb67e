package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kennycyb/pars/internal/ops"
)

var (
	rmRecursive bool
	rmForce     bool
)

// rmCmd removes an entry or, recursively, a directory of entries.
var rmCmd = &cobra.Command{
	Use:     "rm <pass-name>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a password entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opsCtx.Remove(args[0], ops.RemoveOptions{
			Recursive: rmRecursive,
			Force:     rmForce,
		})
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmRecursive, "recursive", "r", false, "remove a directory and everything beneath it")
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "do not prompt before removing")
	rootCmd.AddCommand(rmCmd)
}
