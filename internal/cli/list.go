package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/services"
)

// listers print one catalog table each, keyed by the argument of "list".
var listers = map[string]func(io.Writer, *services.Catalog) error{
	"games":             listGames,
	"companies":         listCompanies,
	"genres":            listGenres,
	"outlets":           listOutlets,
	"reviews":           listReviews,
	"requirements":      listRequirements,
	"company-types":     listCompanyTypes,
	"requirement-types": listRequirementTypes,
}

var listCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "Print a catalog table",
	Long: `Print every row of a catalog table, ordered by id.

Entities: games, companies, genres, outlets, reviews, requirements,
company-types, requirement-types.

Examples:
  gamesreviewer list games
  gamesreviewer list reviews --db ./demo/demo.db`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"games", "companies", "genres", "outlets", "reviews", "requirements", "company-types", "requirement-types"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		if err := listers[args[0]](w, a.catalog); err != nil {
			return err
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func row(w io.Writer, cells ...string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

func str[T any](v datatypes.Null[T]) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprint(v.V)
}

func listGames(w io.Writer, c *services.Catalog) error {
	games, err := c.Games.GetAllGames()
	if err != nil {
		return err
	}
	row(w, "ID", "TITLE", "YEAR", "DEVELOPER", "PUBLISHER")
	for _, g := range games {
		row(w, strconv.FormatInt(g.ID, 10), g.Title, strconv.Itoa(g.ReleaseYear), str(g.DeveloperName), str(g.PublisherName))
	}
	return nil
}

func listCompanies(w io.Writer, c *services.Catalog) error {
	companies, err := c.Companies.GetAllCompanies()
	if err != nil {
		return err
	}
	row(w, "ID", "NAME", "FOUNDED", "TYPE", "WEBSITE", "CEO")
	for _, co := range companies {
		row(w, strconv.FormatInt(co.ID, 10), co.Name, str(co.FoundedYear), str(co.CompanyTypeName), str(co.WebsiteURL), str(co.CEO))
	}
	return nil
}

func listGenres(w io.Writer, c *services.Catalog) error {
	genres, err := c.Genres.GetAllGenres()
	if err != nil {
		return err
	}
	row(w, "ID", "NAME")
	for _, g := range genres {
		row(w, strconv.FormatInt(g.ID, 10), g.Name)
	}
	return nil
}

func listOutlets(w io.Writer, c *services.Catalog) error {
	outlets, err := c.MediaOutlets.GetAllMediaOutlets()
	if err != nil {
		return err
	}
	row(w, "ID", "NAME", "FOUNDED", "WEBSITE")
	for _, o := range outlets {
		row(w, strconv.FormatInt(o.ID, 10), o.Name, str(o.FoundedYear), str(o.WebsiteURL))
	}
	return nil
}

func listReviews(w io.Writer, c *services.Catalog) error {
	reviews, err := c.Reviews.GetAllReviews()
	if err != nil {
		return err
	}
	row(w, "ID", "GAME", "OUTLET", "SCORE", "SUMMARY")
	for _, r := range reviews {
		row(w, strconv.FormatInt(r.ID, 10), str(r.GameTitle), str(r.MediaOutletName), strconv.Itoa(r.Score), str(r.Summary))
	}
	return nil
}

func listRequirements(w io.Writer, c *services.Catalog) error {
	reqs, err := c.Requirements.GetAllRequirements()
	if err != nil {
		return err
	}
	row(w, "ID", "GAME", "TIER", "STORAGE_GB", "RAM_GB", "CPU_GHZ", "GPU_TFLOPS", "VRAM_GB")
	for _, r := range reqs {
		row(w, strconv.FormatInt(r.ID, 10), str(r.GameTitle), str(r.RequirementType),
			strconv.Itoa(r.StorageGB), strconv.Itoa(r.RAMGB), str(r.CPUGHz), str(r.GPUTflops), str(r.VRAMGB))
	}
	return nil
}

func listCompanyTypes(w io.Writer, c *services.Catalog) error {
	types, err := c.CompanyTypes.GetAllCompanyTypes()
	if err != nil {
		return err
	}
	row(w, "ID", "NAME")
	for _, t := range types {
		row(w, strconv.FormatInt(t.ID, 10), t.Name)
	}
	return nil
}

func listRequirementTypes(w io.Writer, c *services.Catalog) error {
	types, err := c.RequirementTypes.GetAllRequirementTypes()
	if err != nil {
		return err
	}
	row(w, "ID", "NAME")
	for _, t := range types {
		row(w, strconv.FormatInt(t.ID, 10), t.Name)
	}
	return nil
}
