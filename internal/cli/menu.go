package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/gamesreviewer/internal/console"
	"github.com/mrlokans/gamesreviewer/internal/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse games in a full screen list",
	Long: `Browse games in a full screen list. Type / to filter by title and
press enter to see genres, companies and the average critic score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return tui.RunBrowser(a.catalog.Games)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(browseCmd)
}

func runMenu(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	shell := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.catalog, console.WithColor(a.cfg.UI.Color))
	return shell.Run()
}
