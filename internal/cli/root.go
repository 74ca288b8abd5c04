// Package cli defines the minigrep command-line surface.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/corymccarty/minigrep/internal/app"
	"github.com/corymccarty/minigrep/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "minigrep [-i] <query> <file_path>",
	Short: "Print lines of a file containing a query string",
	Long: `minigrep scans a newline-delimited text file and prints every line
containing the query string, in file order. Matching is case-sensitive
unless the -i flag is given or the IGNORE_CASE environment variable is set
(to any value, including the empty string).`,
	Example: `  minigrep to poem.txt
  minigrep -i rUsT poem.txt
  IGNORE_CASE= minigrep to poem.txt`,
	// config.Build does its own scan of the raw argument vector so that -i
	// is recognized anywhere after the program name.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runRoot,
}

func init() {
	// Presence of IGNORE_CASE enables case-insensitive search regardless of
	// its value. AllowEmptyEnv makes IsSet honor set-but-empty variables.
	viper.AllowEmptyEnv(true)
	viper.BindEnv("ignore_case", "IGNORE_CASE")
	viper.BindEnv("verbose", "MINIGREP_VERBOSE")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}

	logger := newLogger()

	argv := append([]string{cmd.Name()}, args...)
	cfg, err := config.Build(argv, viper.IsSet("ignore_case"))
	if err != nil {
		return err
	}
	logger.Debug("configuration built",
		"query", cfg.Query, "file", cfg.FilePath, "ignore_case", cfg.IgnoreCase)

	return app.New(cfg, cmd.OutOrStdout(), logger).Run()
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "minigrep"})
	if viper.IsSet("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
