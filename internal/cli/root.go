package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	driver  string
	dbPath  string
	dsn     string
	verbose bool
)

// rootCmd opens the interactive console when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "gamesreviewer",
	Short: "Games Reviewer - catalog of games, companies and critic reviews",
	Long: `Games Reviewer manages a catalog of video games with their production
companies, genres, critic reviews, media outlets and per-tier system
requirements, stored in SQLite or PostgreSQL.

Run without a command to open the interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

// Execute runs the root command
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Database driver: sqlite or postgres (default from DATABASE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (default from DATABASE_PATH)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (default from DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every SQL statement")
}
