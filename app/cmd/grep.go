package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// grepCmd searches decrypted entry content for a literal substring.
var grepCmd = &cobra.Command{
	Use:   "grep <terms...>",
	Short: "Search decrypted entry content for a literal string",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := opsCtx.Grep(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grepCmd)
}
