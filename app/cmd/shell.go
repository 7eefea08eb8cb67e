package cmd

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// shellCmd spawns a shell (or the given command) with its working
// directory set to the store root, inheriting stdio, so the user can
// poke around the raw ciphertext tree directly.
var shellCmd = &cobra.Command{
	Use:                "shell [command...]",
	Short:              "Spawn a shell (or command) with the store root as its working directory",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := os.Getenv("SHELL")
		if name == "" {
			name = "/bin/sh"
		}
		cmdArgs := args
		if len(args) > 0 {
			name = args[0]
			cmdArgs = args[1:]
		}

		sub := exec.Command(name, cmdArgs...)
		sub.Dir = opsCtx.Root
		sub.Stdin = os.Stdin
		sub.Stdout = os.Stdout
		sub.Stderr = os.Stderr
		return sub.Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
