// Package commands implements fsidx's CLI commands.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"fsidx/internal/config"
	"fsidx/internal/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	configFile string
	verbose    bool
	helpCount  int
	showVer    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fsidx",
	Short: "Locate-style filename search over a delta-compressed pathname database",
	Long: `fsidx indexes configured root folders into a compact, delta-compressed
pathname database and answers filename queries against it without touching
the filesystem at query time.

Use "fsidx [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if showVer {
			cmd.Println(versionString())
			os.Exit(0)
		}
		if helpCount > 0 {
			return cmd.Help()
		}
		level := "INFO"
		if verbose {
			level = "DEBUG"
		}
		return logger.Init(logger.Config{Level: level})
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command, for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config-file", "c", "", "path to fsidx.toml (overrides the search order)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVer, "version", "V", false, "print version and exit")
	rootCmd.PersistentFlags().CountVarP(&helpCount, "help", "h", "show help (repeat for more detail)")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func versionString() string {
	return "fsidx " + Version + " (commit " + Commit + ", built " + Date + ")"
}

// loadConfig resolves and loads the configuration using the --config-file
// flag set on the root command.
func loadConfig() (*config.Config, error) {
	return config.Load(configFile)
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
}
