// Package demo fills a catalog with a small sample of well known games.
package demo

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
	"github.com/mrlokans/gamesreviewer/internal/services"
)

type CompanyConfig struct {
	Name    string
	Founded int64 // 0 when unknown
	Website string
	CEO     string
	Type    string
}

type OutletConfig struct {
	Name    string
	Website string
	Founded int64
}

type ReviewConfig struct {
	Outlet  string
	Score   int
	Summary string
}

type RequirementConfig struct {
	Tier      string
	StorageGB int
	RAMGB     int
	CPUGHz    float64 // 0 when not specified
	GPUTflops float64
	VRAMGB    int64 // -1 when not specified
}

// GameConfig holds a game together with the names it references, resolved
// to ids while seeding.
type GameConfig struct {
	Title        string
	Year         int
	Description  string
	Developer    string
	Publisher    string
	Genres       []string
	Reviews      []ReviewConfig
	Requirements []RequirementConfig
}

// Summary counts the rows Seed created.
type Summary struct {
	Companies    int
	Genres       int
	MediaOutlets int
	Games        int
	Reviews      int
	Requirements int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d companies, %d genres, %d media outlets, %d games, %d reviews, %d requirement profiles",
		s.Companies, s.Genres, s.MediaOutlets, s.Games, s.Reviews, s.Requirements)
}

// Seed inserts the sample catalog. Rows that already exist by name (or by
// title and year for games) are reused, so running it twice adds nothing.
func Seed(catalog *services.Catalog) (Summary, error) {
	var summary Summary

	companyIDs, err := seedCompanies(catalog, &summary)
	if err != nil {
		return summary, err
	}
	genreIDs, err := seedGenres(catalog, &summary)
	if err != nil {
		return summary, err
	}
	outletIDs, err := seedOutlets(catalog, &summary)
	if err != nil {
		return summary, err
	}

	tiers, err := catalog.RequirementTypes.GetAllRequirementTypes()
	if err != nil {
		return summary, fmt.Errorf("load requirement tiers: %w", err)
	}
	tierIDs := make(map[string]int64, len(tiers))
	for _, t := range tiers {
		tierIDs[t.Name] = t.ID
	}

	existing, err := catalog.Games.GetAllGames()
	if err != nil {
		return summary, fmt.Errorf("load games: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, g := range existing {
		seen[gameKey(g.Title, g.ReleaseYear)] = true
	}

	for _, cfg := range SampleGames() {
		if seen[gameKey(cfg.Title, cfg.Year)] {
			continue
		}
		if err := seedGame(catalog, cfg, companyIDs, genreIDs, outletIDs, tierIDs, &summary); err != nil {
			return summary, err
		}
	}

	log.Printf("Demo catalog seeded: %s", summary)
	return summary, nil
}

func gameKey(title string, year int) string {
	return fmt.Sprintf("%s/%d", title, year)
}

func seedCompanies(catalog *services.Catalog, summary *Summary) (map[string]int64, error) {
	types, err := catalog.CompanyTypes.GetAllCompanyTypes()
	if err != nil {
		return nil, fmt.Errorf("load company types: %w", err)
	}
	typeIDs := make(map[string]int64, len(types))
	for _, t := range types {
		typeIDs[t.Name] = t.ID
	}

	all, err := catalog.Companies.GetAllCompanies()
	if err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}
	ids := make(map[string]int64, len(all))
	for _, c := range all {
		ids[c.Name] = c.ID
	}

	for _, cfg := range SampleCompanies() {
		if _, ok := ids[cfg.Name]; ok {
			continue
		}
		typeID := datatypes.Null[int64]{}
		if id, ok := typeIDs[cfg.Type]; ok {
			typeID = datatypes.NewNull(id)
		}
		company, err := entities.NewProductionCompany(cfg.Name, optionalInt(cfg.Founded), optionalString(cfg.Website), optionalString(cfg.CEO), typeID)
		if err != nil {
			return nil, err
		}
		id, err := catalog.Companies.CreateCompany(company)
		if err != nil {
			return nil, fmt.Errorf("create company %s: %w", cfg.Name, err)
		}
		ids[cfg.Name] = id
		summary.Companies++
	}
	return ids, nil
}

func seedGenres(catalog *services.Catalog, summary *Summary) (map[string]int64, error) {
	all, err := catalog.Genres.GetAllGenres()
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	ids := make(map[string]int64, len(all))
	for _, g := range all {
		ids[g.Name] = g.ID
	}

	for _, name := range SampleGenres() {
		if _, ok := ids[name]; ok {
			continue
		}
		genre, err := entities.NewGenre(name)
		if err != nil {
			return nil, err
		}
		id, err := catalog.Genres.CreateGenre(genre)
		if err != nil {
			return nil, fmt.Errorf("create genre %s: %w", name, err)
		}
		ids[name] = id
		summary.Genres++
	}
	return ids, nil
}

func seedOutlets(catalog *services.Catalog, summary *Summary) (map[string]int64, error) {
	all, err := catalog.MediaOutlets.GetAllMediaOutlets()
	if err != nil {
		return nil, fmt.Errorf("load media outlets: %w", err)
	}
	ids := make(map[string]int64, len(all))
	for _, o := range all {
		ids[o.Name] = o.ID
	}

	for _, cfg := range SampleOutlets() {
		if _, ok := ids[cfg.Name]; ok {
			continue
		}
		outlet, err := entities.NewMediaOutlet(cfg.Name, optionalString(cfg.Website), optionalInt(cfg.Founded))
		if err != nil {
			return nil, err
		}
		id, err := catalog.MediaOutlets.CreateMediaOutlet(outlet)
		if err != nil {
			return nil, fmt.Errorf("create media outlet %s: %w", cfg.Name, err)
		}
		ids[cfg.Name] = id
		summary.MediaOutlets++
	}
	return ids, nil
}

func seedGame(catalog *services.Catalog, cfg GameConfig, companyIDs, genreIDs, outletIDs, tierIDs map[string]int64, summary *Summary) error {
	game, err := entities.NewGame(cfg.Title, cfg.Year, optionalString(cfg.Description), lookup(companyIDs, cfg.Developer), lookup(companyIDs, cfg.Publisher))
	if err != nil {
		return err
	}

	var genres []int64
	for _, name := range cfg.Genres {
		if id, ok := genreIDs[name]; ok {
			genres = append(genres, id)
		}
	}

	gameID, err := catalog.Games.CreateGameWithGenres(game, genres)
	if err != nil {
		return fmt.Errorf("create game %s: %w", cfg.Title, err)
	}
	summary.Games++
	log.Printf("Saved: %s (%d reviews, %d requirement profiles)", cfg.Title, len(cfg.Reviews), len(cfg.Requirements))

	for _, r := range cfg.Reviews {
		outletID, ok := outletIDs[r.Outlet]
		if !ok {
			continue
		}
		review, err := entities.NewReview(gameID, outletID, r.Score, optionalString(r.Summary))
		if err != nil {
			return err
		}
		if _, err := catalog.Reviews.CreateReview(review); err != nil {
			if errors.Is(err, database.ErrDuplicateEntry) {
				continue
			}
			return fmt.Errorf("create review of %s by %s: %w", cfg.Title, r.Outlet, err)
		}
		summary.Reviews++
	}

	for _, r := range cfg.Requirements {
		tierID, ok := tierIDs[r.Tier]
		if !ok {
			continue
		}
		cpu := datatypes.Null[float64]{}
		if r.CPUGHz > 0 {
			cpu = datatypes.NewNull(r.CPUGHz)
		}
		gpu := datatypes.Null[float64]{}
		if r.GPUTflops > 0 {
			gpu = datatypes.NewNull(r.GPUTflops)
		}
		vram := datatypes.Null[int64]{}
		if r.VRAMGB >= 0 {
			vram = datatypes.NewNull(r.VRAMGB)
		}
		req, err := entities.NewSystemRequirement(gameID, tierID, r.StorageGB, r.RAMGB, cpu, gpu, vram)
		if err != nil {
			return err
		}
		if _, err := catalog.Requirements.CreateRequirement(req); err != nil {
			return fmt.Errorf("create %s requirements of %s: %w", r.Tier, cfg.Title, err)
		}
		summary.Requirements++
	}
	return nil
}

func lookup(ids map[string]int64, name string) datatypes.Null[int64] {
	if id, ok := ids[name]; ok && name != "" {
		return datatypes.NewNull(id)
	}
	return datatypes.Null[int64]{}
}

func optionalString(s string) datatypes.Null[string] {
	if s == "" {
		return datatypes.Null[string]{}
	}
	return datatypes.NewNull(s)
}

func optionalInt(n int64) datatypes.Null[int64] {
	if n == 0 {
		return datatypes.Null[int64]{}
	}
	return datatypes.NewNull(n)
}
