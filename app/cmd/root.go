package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennycyb/pars/internal/config"
	"github.com/kennycyb/pars/internal/logging"
	"github.com/kennycyb/pars/internal/ops"
	"github.com/kennycyb/pars/internal/vcs"
)

const secretExtension = "gpg"

var (
	// Version is set during build.
	Version string

	cfgFile string
	baseDir string

	cfg     *config.Config
	opsCtx  *ops.Context
	logger  *logging.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pars",
	Short: "A command-line PGP-encrypted password manager",
	Long: `pars
====
A command-line password manager that stores every secret as a PGP
message in a plain directory tree, re-encrypting automatically when a
directory's recipient set changes.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadContext,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute(version string) {
	Version = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pars version {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", os.Getenv("PARS_CONFIG_PATH"), "configuration file (default $HOME/.config/pars/pars.toml)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "store root directory (default the configured default_repo)")
}

// loadContext reads the TOML configuration and builds the shared
// ops.Context every subcommand operates through, the same
// "load config once, in a PersistentPreRun" shape the teacher used for
// its own --config flag.
func loadContext(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + "/.config/pars/pars.toml"
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	root := baseDir
	if root == "" {
		root = cfg.Path.DefaultRepo
	}

	logger = logging.New(os.Stderr, logging.ParseLevel(os.Getenv("PARS_LOG_LEVEL")))

	editor := os.Getenv("PARS_EDITOR")
	if editor == "" {
		editor = cfg.Executable.EditorExecutable
	}

	opsCtx = &ops.Context{
		Root:          root,
		Extension:     secretExtension,
		PGPExecutable: cfg.Executable.PGPExecutable,
		Git:           vcs.New(cfg.Executable.GitExecutable),
		Log:           logger,
		Colors: colorConfigFrom(cfg),
		GrepColors: ops.GrepColors{
			Pass:  ansiColor(cfg.Print.GrepPassColor),
			Match: ansiColor(cfg.Print.GrepMatchColor),
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	editorExecutableFlag = editor
	return nil
}

// editorExecutableFlag carries the resolved editor executable from
// loadContext to the edit command, which needs it but is not itself part
// of ops.Context (editing spawns its own subprocess rather than going
// through a collaborator struct).
var editorExecutableFlag string
