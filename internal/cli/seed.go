package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/gamesreviewer/internal/demo"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample catalog",
	Long: `Load a small sample catalog of games, companies, genres, outlets, reviews
and system requirements. Rows that already exist are left alone, so the
command can be run more than once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		summary, err := demo.Seed(a.catalog)
		if a.cfg.Audit.Enabled {
			a.audit.Record(entities.AuditEventSeed, "catalog", 0, "Seeded sample catalog: "+summary.String(), err)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
