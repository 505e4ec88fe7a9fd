package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one catalog record in detail",
}

var showGameCmd = &cobra.Command{
	Use:   "game <id>",
	Short: "Show a game with genres, average score, reviews and requirements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || gameID <= 0 {
			return fmt.Errorf("invalid game id %q", args[0])
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		game, ok, err := a.catalog.Games.GetGameWithFullDetails(gameID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("game with ID %d not found", gameID)
		}
		reviews, err := a.catalog.Reviews.GetReviewsByGameID(gameID)
		if err != nil {
			return err
		}
		reqs, err := a.catalog.Games.GetGameSystemRequirements(gameID)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		row(w, "ID:", strconv.FormatInt(game.ID, 10))
		row(w, "Title:", game.Title)
		row(w, "Release year:", strconv.Itoa(game.ReleaseYear))
		row(w, "Developer:", str(game.DeveloperName))
		row(w, "Publisher:", str(game.PublisherName))
		row(w, "Description:", str(game.Description))
		row(w, "Genres:", strings.Join(game.Genres, ", "))
		if game.AverageRating.Valid {
			row(w, "Average score:", fmt.Sprintf("%.2f", game.AverageRating.V))
		} else {
			row(w, "Average score:", "-")
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(reviews) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\nReviews:")
			row(w, "OUTLET", "SCORE", "SUMMARY")
			for _, r := range reviews {
				row(w, str(r.MediaOutletName), strconv.Itoa(r.Score), str(r.Summary))
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}
		if len(reqs) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\nSystem requirements:")
			row(w, "TIER", "STORAGE_GB", "RAM_GB", "CPU_GHZ", "GPU_TFLOPS", "VRAM_GB")
			for _, r := range reqs {
				row(w, str(r.RequirementType), strconv.Itoa(r.StorageGB), strconv.Itoa(r.RAMGB), str(r.CPUGHz), str(r.GPUTflops), str(r.VRAMGB))
			}
		}
		return w.Flush()
	},
}

func init() {
	showCmd.AddCommand(showGameCmd)
	rootCmd.AddCommand(showCmd)
}
