package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lsCmd renders a password store directory tree.
var lsCmd = &cobra.Command{
	Use:     "ls [subfolder]",
	Aliases: []string{"list"},
	Short:   "List the password store, or a sub-folder, as a tree",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		result, err := opsCtx.Show(name)
		if err != nil {
			return err
		}
		fmt.Println(result.Tree)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
