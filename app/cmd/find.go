package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// findCmd searches entry names against a whitelist of regex terms.
var findCmd = &cobra.Command{
	Use:     "find <names...>",
	Aliases: []string{"search"},
	Short:   "Search the store tree by entry name",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := opsCtx.Find(args)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
