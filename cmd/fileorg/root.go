package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/esdraskololo/File-Organizer-Tool/internal/config"
	"github.com/esdraskololo/File-Organizer-Tool/internal/locale"
	"github.com/esdraskololo/File-Organizer-Tool/internal/output"
	"github.com/esdraskololo/File-Organizer-Tool/internal/ui"
)

// errOperationFailed signals a failed run whose details were already
// reported; main exits 1 without printing it again.
var errOperationFailed = errors.New("operation failed")

// options holds the parsed command-line flags.
type options struct {
	separator    string
	removePrefix bool
	verbose      bool
	assumeYes    bool
	reverse      bool
	watch        bool
	lang         string
	configPath   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "fileorg [directory]",
		Short: "Organize files into subdirectories by filename prefix",
		Long: "fileorg groups the files of a directory into subdirectories named " +
			"after each file's prefix (the part before the first separator), and " +
			"can reverse a previous organization. Without a directory argument it " +
			"starts an interactive session.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := config.LoadOrDefault(preferencesPath(opts.configPath))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("separator") && prefs.Separator != "" {
				opts.separator = prefs.Separator
			}
			langPref := opts.lang
			if langPref == "" {
				langPref = prefs.Language
			}
			loc := locale.New(langPref)

			cfg := output.DefaultConfig()
			cfg.Verbose = opts.verbose
			out := output.New(cfg)

			if len(args) == 0 {
				session := ui.New(os.Stdin, os.Stdout, loc, out, planRenderer())
				return session.Run()
			}
			return run(args[0], opts, prefs, loc, out)
		},
	}

	rootCmd.Flags().StringVarP(&opts.separator, "separator", "s", "-",
		"Character that separates prefix from filename")
	rootCmd.Flags().BoolVarP(&opts.removePrefix, "remove-prefix", "r", false,
		"Remove the prefix from filenames when organizing")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Show detailed information about the operations")
	rootCmd.Flags().BoolVarP(&opts.assumeYes, "yes", "y", false,
		"Skip confirmation prompts")
	rootCmd.Flags().BoolVar(&opts.reverse, "reverse", false,
		"Reverse a previous organization, moving files back from subdirectories")
	rootCmd.Flags().BoolVar(&opts.watch, "watch", false,
		"Keep running and organize files as they arrive")
	rootCmd.Flags().StringVar(&opts.lang, "lang", "",
		"Display language (e.g. en, tr)")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"Preferences file path")

	return rootCmd
}

// preferencesPath resolves the preferences file location: the explicit
// flag when given, otherwise the per-user config directory.
func preferencesPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".fileorg.toml")
	}
	return filepath.Join(base, "fileorg", "config.toml")
}
