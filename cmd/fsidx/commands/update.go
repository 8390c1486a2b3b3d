package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"fsidx/internal/cli/prompt"
	"fsidx/internal/fsdb"
	"fsidx/internal/updater"
)

var updateForce bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rebuild the pathname database for every configured root",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if existing := existingDatabases(cfg.DBDir, cfg.Roots); len(existing) > 0 {
			label := fmt.Sprintf("Replace %d existing database(s)?", len(existing))
			ok, err := prompt.ConfirmWithForce(label, updateForce)
			if err != nil {
				if prompt.IsAborted(err) {
					return nil
				}
				return err
			}
			if !ok {
				cmd.Println("aborted")
				return nil
			}
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()

		results, err := updater.All(ctx, cfg.DBDir, cfg.Roots)
		for _, res := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries (%d warnings)\n", res.Root, res.Count, res.Warnings)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "replace existing databases without confirmation")
}

// existingDatabases returns the subset of roots that already have a
// database file under dbDir.
func existingDatabases(dbDir string, roots []string) []string {
	var found []string
	for _, root := range roots {
		if _, err := os.Stat(fsdb.PathForRoot(dbDir, root)); err == nil {
			found = append(found, root)
		}
	}
	return found
}
