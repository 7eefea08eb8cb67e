package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initPath string

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [gpg-ids...]",
	Short: "Initialize the store, or a sub-folder, with one or more recipients",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := opsCtx.Init(initPath, args)
		if err != nil {
			return err
		}
		switch {
		case result.Unchanged:
			fmt.Println("New fingerprints are the same as the old ones, no need to update.")
		case result.FirstInit:
			fmt.Printf("Password store initialized for %v\n", args)
		default:
			fmt.Printf("Password store re-encrypted for %v (%d entries)\n", args, len(result.Reencrypted))
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "path", "p", "", "sub-folder to initialize")
	rootCmd.AddCommand(initCmd)
}
