package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kennycyb/pars/internal/clip"
	"github.com/kennycyb/pars/internal/qrcode"
)

var (
	showClipLine   int
	showQRCodeLine int
)

// showCmd decrypts and prints, clips, or QR-codes a password entry. -c/-q
// take an optional line number (default 0, the first line) via
// NoOptDefVal, matching the `-c/--clip [N]` CLI surface.
var showCmd = &cobra.Command{
	Use:   "show <pass-name>",
	Short: "Decrypt a password entry and print, clip, or QR-code one of its lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := opsCtx.Show(args[0])
		if err != nil {
			return err
		}
		if result.IsDir {
			fmt.Println(result.Tree)
			return nil
		}
		defer result.Secret.Zero()

		lines := strings.Split(result.Secret.String(), "\n")

		switch {
		case cmd.Flags().Changed("clip"):
			return clipLine(lines, showClipLine)
		case cmd.Flags().Changed("qrcode"):
			return qrcodeLine(lines, showQRCodeLine)
		default:
			fmt.Println(result.Secret.String())
			return nil
		}
	},
}

func clipLine(lines []string, n int) error {
	if n < 0 || n >= len(lines) {
		n = 0
	}
	if err := clip.New().Copy(lines[n]); err != nil {
		return err
	}
	clipSeconds := cfg.ClipTime
	fmt.Printf("Copied to clipboard, will clear in %d seconds.\n", clipSeconds)
	time.Sleep(time.Duration(clipSeconds) * time.Second)
	return clip.New().Copy("")
}

func qrcodeLine(lines []string, n int) error {
	if n < 0 || n >= len(lines) {
		n = 0
	}
	rendered, err := qrcode.Render(lines[n])
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}

func init() {
	showCmd.Flags().IntVarP(&showClipLine, "clip", "c", 0, "copy the N-th line (0-indexed) to the clipboard")
	showCmd.Flags().Lookup("clip").NoOptDefVal = "0"
	showCmd.Flags().IntVarP(&showQRCodeLine, "qrcode", "q", 0, "render the N-th line (0-indexed) as a QR code")
	showCmd.Flags().Lookup("qrcode").NoOptDefVal = "0"
	rootCmd.AddCommand(showCmd)
}
