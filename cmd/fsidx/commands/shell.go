package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fsidx/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive locate shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		history := ""
		if home, err := os.UserHomeDir(); err == nil {
			history = filepath.Join(home, ".fsidx", "history")
		}

		return shell.Run(cmd.Context(), shell.Options{
			Config:      cfg,
			HistoryFile: history,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
	},
}
