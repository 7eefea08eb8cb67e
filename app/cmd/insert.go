package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennycyb/pars/internal/ops"
)

var (
	insertEcho      bool
	insertMultiline bool
	insertForce     bool
)

// insertCmd reads a new secret from stdin and encrypts it.
var insertCmd = &cobra.Command{
	Use:     "insert <pass-name>",
	Aliases: []string{"add"},
	Short:   "Insert a new password, reading it from stdin",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if insertEcho && insertMultiline {
			return fmt.Errorf("--echo and --multiline are mutually exclusive")
		}
		return opsCtx.Insert(args[0], ops.InsertOptions{
			Echo:      insertEcho,
			Multiline: insertMultiline,
			Force:     insertForce,
		})
	},
}

func init() {
	insertCmd.Flags().BoolVarP(&insertEcho, "echo", "e", false, "echo the password to stdout as it is entered")
	insertCmd.Flags().BoolVarP(&insertMultiline, "multiline", "m", false, "read until EOF instead of a single line")
	insertCmd.Flags().BoolVarP(&insertForce, "force", "f", false, "overwrite an existing entry without prompting")
	rootCmd.AddCommand(insertCmd)
}
