package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// editCmd decrypts an entry, spawns the configured editor, and
// re-encrypts it if the content changed.
var editCmd = &cobra.Command{
	Use:   "edit <pass-name>",
	Short: "Edit a password entry in the configured editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		changed, err := opsCtx.Edit(args[0], editorExecutableFlag)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("Password unchanged")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
