package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kennycyb/pars/internal/clip"
	"github.com/kennycyb/pars/internal/ops"
)

var (
	generateNoSymbols bool
	generateClip      bool
	generateInPlace   bool
	generateForce     bool
)

// generateCmd creates or replaces a password with a randomly generated
// one.
var generateCmd = &cobra.Command{
	Use:   "generate <pass-name> [length]",
	Short: "Generate a new random password",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		length := cfg.PasswordLength
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[1], err)
			}
			length = n
		}

		secret, err := opsCtx.Generate(args[0], ops.GenerateOptions{
			Length:    length,
			NoSymbols: generateNoSymbols,
			InPlace:   generateInPlace,
			Force:     generateForce,
		})
		if err != nil {
			return err
		}
		if secret == nil {
			return nil
		}
		defer secret.Zero()

		if generateClip {
			if err := clip.New().Copy(secret.String()); err != nil {
				return err
			}
			fmt.Println("Copied to clipboard.")
			return nil
		}
		fmt.Println(secret.String())
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&generateNoSymbols, "no-symbols", "n", false, "exclude symbol characters")
	generateCmd.Flags().BoolVarP(&generateClip, "clip", "c", false, "copy the generated password to the clipboard instead of printing")
	generateCmd.Flags().BoolVarP(&generateInPlace, "in-place", "i", false, "replace only the first line of an existing multi-line entry")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "overwrite an existing entry without prompting")
	rootCmd.AddCommand(generateCmd)
}
