package console

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

func (s *Shell) gamesMenu() error {
	return s.menu("GAMES", "Back to main menu", []menuItem{
		{"List all games", s.listGames},
		{"Game details", s.gameDetails},
		{"Search games by title", s.searchGames},
		{"Add a new game", s.createGame},
		{"Edit a game", s.editGame},
		{"Edit game genres", s.editGameGenres},
		{"Delete a game", s.deleteGame},
	})
}

func (s *Shell) listGames() error {
	s.subHeader("All games")
	games, err := s.catalog.Games.GetAllGames()
	if err != nil {
		s.report("list games", err)
		return nil
	}
	s.printGames(games)
	return nil
}

func (s *Shell) searchGames() error {
	s.subHeader("Search games")
	query, err := s.prompt.ReadNonEmpty("Title contains: ")
	if err != nil {
		return err
	}
	games, err := s.catalog.Games.SearchGames(query)
	if err != nil {
		s.report("search games", err)
		return nil
	}
	s.printGames(games)
	return nil
}

func (s *Shell) printGames(games []entities.Game) {
	if len(games) == 0 {
		s.warning("No games found.")
		return
	}
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, []string{
			fmtID(g.ID),
			truncate(g.Title, 30),
			fmt.Sprint(g.ReleaseYear),
			truncate(nullString(g.DeveloperName), 20),
			truncate(nullString(g.PublisherName), 20),
		})
	}
	s.renderTable([]string{"ID", "Title", "Year", "Developer", "Publisher"}, rows)
	s.info("Total games: %d", len(games))
}

func (s *Shell) gameDetails() error {
	s.subHeader("Game details")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}
	return s.gameDetailsWithNavigation(gameID)
}

func (s *Shell) gameDetailsWithNavigation(gameID int64) error {
	for {
		game, ok, err := s.catalog.Games.GetGameWithFullDetails(gameID)
		if err != nil {
			s.report("load game details", err)
			return nil
		}
		if !ok {
			s.notFound("Game", gameID)
			return nil
		}

		s.printGameDetails(game)

		fmt.Fprintln(s.out, "\nNavigation:")
		fmt.Fprintln(s.out, "1. Reviews of this game")
		fmt.Fprintln(s.out, "2. Developer details")
		fmt.Fprintln(s.out, "3. Publisher details")
		fmt.Fprintln(s.out, "0. Back")

		choice, err := s.prompt.ReadInt("\nYour choice: ", 0, 3)
		if err != nil {
			return err
		}
		switch choice {
		case 0:
			return nil
		case 1:
			err = s.gameReviews(gameID)
		case 2:
			s.companyOfGame("developer", game.DeveloperID)
		case 3:
			s.companyOfGame("publisher", game.PublisherID)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) printGameDetails(game entities.Game) {
	s.header("Game details")
	s.field("ID", fmtID(game.ID))
	s.field("Title", game.Title)
	s.field("Release year", fmt.Sprint(game.ReleaseYear))
	s.field("Developer", companyRef(game.DeveloperID, game.DeveloperName))
	s.field("Publisher", companyRef(game.PublisherID, game.PublisherName))
	if game.Description.Valid && game.Description.V != "" {
		s.field("Description", game.Description.V)
	}
	if len(game.Genres) > 0 {
		s.field("Genres", strings.Join(game.Genres, ", "))
	} else {
		s.field("Genres", "not set")
	}
	s.field("Average rating", formatRating(game.AverageRating))

	reqs, err := s.catalog.Games.GetGameSystemRequirements(game.ID)
	if err != nil {
		s.report("load system requirements", err)
		return
	}
	if len(reqs) > 0 {
		fmt.Fprintln(s.out, "\nSystem requirements:")
		for _, r := range reqs {
			s.printRequirementProfile(r)
		}
	}
	s.separator()
}

func companyRef(companyID datatypes.Null[int64], name datatypes.Null[string]) string {
	switch {
	case companyID.Valid && name.Valid:
		return fmt.Sprintf("%s (ID: %d)", name.V, companyID.V)
	case companyID.Valid:
		return fmt.Sprintf("ID: %d", companyID.V)
	default:
		return "not set"
	}
}

func (s *Shell) gameReviews(gameID int64) error {
	s.header("Reviews of the game")
	reviews, err := s.catalog.Reviews.GetReviewsByGameID(gameID)
	if err != nil {
		s.report("load reviews", err)
		return nil
	}
	if len(reviews) == 0 {
		s.warning("No reviews for this game.")
		return nil
	}

	avg, err := s.catalog.Reviews.GetAverageScoreForGame(gameID)
	if err != nil {
		s.report("compute the average score", err)
		return nil
	}
	s.field("Average rating", formatRating(avg))
	s.field("Total reviews", fmt.Sprint(len(reviews)))
	for _, r := range reviews {
		s.separator()
		s.field("Outlet", fmt.Sprintf("%s (ID: %d)", nullString(r.MediaOutletName), r.MediaOutletID))
		s.field("Score", fmt.Sprintf("%d/100", r.Score))
		if r.Summary.Valid && r.Summary.V != "" {
			s.field("Summary", r.Summary.V)
		}
	}
	s.separator()

	fmt.Fprintln(s.out, "\nNavigation:")
	fmt.Fprintln(s.out, "1. Media outlet details")
	fmt.Fprintln(s.out, "0. Back")
	choice, err := s.prompt.ReadInt("\nYour choice: ", 0, 1)
	if err != nil || choice == 0 {
		return err
	}
	outletID, err := s.prompt.ReadID("Media outlet ID: ")
	if err != nil {
		return err
	}
	s.showOutlet(outletID)
	return nil
}

func (s *Shell) companyOfGame(role string, companyID datatypes.Null[int64]) {
	if !companyID.Valid {
		s.warning("The game has no %s.", role)
		return
	}
	s.showCompany(companyID.V)
}

func (s *Shell) createGame() error {
	s.subHeader("Add a new game")

	title, err := s.prompt.ReadNonEmpty("Title: ")
	if err != nil {
		return err
	}
	year, err := s.prompt.ReadInt("Release year: ", entities.MinReleaseYear, entities.MaxYear)
	if err != nil {
		return err
	}
	description, err := s.prompt.ReadOptionalString("Description (Enter to skip): ")
	if err != nil {
		return err
	}
	developerID, publisherID, err := s.pickCompanies()
	if err != nil {
		return err
	}

	game, err := entities.NewGame(title, int(year), description, developerID, publisherID)
	if err != nil {
		s.report("create the game", err)
		return nil
	}

	genreIDs, err := s.pickGenres("Genre IDs, comma separated (Enter to skip): ")
	if err != nil {
		return err
	}

	gameID, err := s.catalog.Games.CreateGameWithGenres(game, genreIDs)
	switch {
	case err != nil && gameID == 0:
		s.report("create the game", err)
		return nil
	case err != nil:
		s.warning("Game created with ID %d but its genres were not saved.", gameID)
		s.report("save the genres", err)
	default:
		s.success("Game created with ID %d", gameID)
	}

	add, err := s.prompt.ReadYesNo("\nAdd system requirements?")
	if err != nil || !add {
		return err
	}
	return s.addRequirementProfiles(gameID)
}

func (s *Shell) pickCompanies() (developer, publisher datatypes.Null[int64], err error) {
	companies, err := s.catalog.Companies.GetAllCompanies()
	if err != nil {
		s.report("list companies", err)
		return developer, publisher, nil
	}
	if len(companies) == 0 {
		s.warning("There are no companies. The game is created without developer and publisher.")
		return developer, publisher, nil
	}

	s.printCompanyChoices(companies)
	developer, err = s.readCompanyChoice("\nDeveloper ID (0 or Enter to skip): ")
	if err != nil {
		return developer, publisher, err
	}
	publisher, err = s.readCompanyChoice("Publisher ID (0 or Enter to skip): ")
	return developer, publisher, err
}

func (s *Shell) printCompanyChoices(companies []entities.ProductionCompany) {
	fmt.Fprintln(s.out, "\nAvailable companies:")
	for _, c := range companies {
		typeName := "Unknown"
		if c.CompanyTypeName.Valid {
			typeName = c.CompanyTypeName.V
		}
		fmt.Fprintf(s.out, "%d. %s (%s)\n", c.ID, c.Name, typeName)
	}
}

// readCompanyChoice maps 0 and empty input to no company.
func (s *Shell) readCompanyChoice(prompt string) (datatypes.Null[int64], error) {
	choice, err := s.prompt.ReadOptionalInt(prompt, 0, maxID)
	if err != nil || !choice.Valid || choice.V == 0 {
		return datatypes.Null[int64]{}, err
	}
	return choice, nil
}

// pickGenres lists the genres and reads a selection. It returns nil when
// there are no genres or the operator skips.
func (s *Shell) pickGenres(prompt string) ([]int64, error) {
	genres, err := s.catalog.Genres.GetAllGenres()
	if err != nil {
		s.report("list genres", err)
		return nil, nil
	}
	if len(genres) == 0 {
		s.warning("There are no genres.")
		return nil, nil
	}
	fmt.Fprintln(s.out, "\nAvailable genres:")
	for _, g := range genres {
		fmt.Fprintf(s.out, "%d. %s\n", g.ID, g.Name)
	}
	return s.prompt.ReadIDList(prompt)
}

func (s *Shell) editGame() error {
	s.subHeader("Edit a game")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}
	game, ok, err := s.catalog.Games.GetGameByID(gameID)
	if err != nil {
		s.report("load the game", err)
		return nil
	}
	if !ok {
		s.notFound("Game", gameID)
		return nil
	}

	fmt.Fprintln(s.out, "\nCurrent values:")
	s.field("Title", game.Title)
	s.field("Year", fmt.Sprint(game.ReleaseYear))
	s.field("Description", nullString(game.Description))
	s.field("Developer", companyRef(game.DeveloperID, game.DeveloperName))
	s.field("Publisher", companyRef(game.PublisherID, game.PublisherName))
	fmt.Fprintln(s.out, "\nLeave a field empty to keep its value.")

	title, err := s.prompt.ReadString("New title: ")
	if err != nil {
		return err
	}
	if title == "" {
		title = game.Title
	}
	year, err := s.prompt.ReadOptionalInt("New release year: ", entities.MinReleaseYear, entities.MaxYear)
	if err != nil {
		return err
	}
	releaseYear := game.ReleaseYear
	if year.Valid {
		releaseYear = int(year.V)
	}
	description, err := s.prompt.ReadOptionalString("New description: ")
	if err != nil {
		return err
	}
	if !description.Valid {
		description = game.Description
	}

	developerID, err := s.changeCompany("developer", game.DeveloperID)
	if err != nil {
		return err
	}
	publisherID, err := s.changeCompany("publisher", game.PublisherID)
	if err != nil {
		return err
	}

	updated, err := entities.NewGame(title, releaseYear, description, developerID, publisherID)
	if err != nil {
		s.report("update the game", err)
		return nil
	}
	if err := s.catalog.Games.UpdateGame(updated.WithID(gameID)); err != nil {
		s.report("update the game", err)
		return nil
	}
	s.success("Game updated.")

	change, err := s.prompt.ReadYesNo("\nChange genres?")
	if err != nil || !change {
		return err
	}
	return s.replaceGenres(gameID)
}

// changeCompany keeps current unless the operator asks to change it; 0
// clears the reference.
func (s *Shell) changeCompany(role string, current datatypes.Null[int64]) (datatypes.Null[int64], error) {
	change, err := s.prompt.ReadYesNo(fmt.Sprintf("\nChange %s?", role))
	if err != nil || !change {
		return current, err
	}
	companies, err := s.catalog.Companies.GetAllCompanies()
	if err != nil {
		s.report("list companies", err)
		return current, nil
	}
	if len(companies) == 0 {
		s.warning("There are no companies.")
		return current, nil
	}
	s.printCompanyChoices(companies)
	fmt.Fprintf(s.out, "0. Remove the %s\n", role)

	choice, err := s.prompt.ReadOptionalInt(fmt.Sprintf("%s ID (0 to remove, Enter to keep): ", capitalize(role)), 0, maxID)
	switch {
	case err != nil:
		return current, err
	case !choice.Valid:
		return current, nil
	case choice.V == 0:
		return datatypes.Null[int64]{}, nil
	default:
		return choice, nil
	}
}

func (s *Shell) editGameGenres() error {
	s.subHeader("Edit game genres")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}
	game, ok, err := s.catalog.Games.GetGameWithFullDetails(gameID)
	if err != nil {
		s.report("load the game", err)
		return nil
	}
	if !ok {
		s.notFound("Game", gameID)
		return nil
	}
	current := "none"
	if len(game.Genres) > 0 {
		current = strings.Join(game.Genres, ", ")
	}
	s.field("Current genres of "+game.Title, current)
	return s.replaceGenres(gameID)
}

// replaceGenres reads a new genre set; "0" clears it and empty input keeps it.
func (s *Shell) replaceGenres(gameID int64) error {
	genres, err := s.catalog.Genres.GetAllGenres()
	if err != nil {
		s.report("list genres", err)
		return nil
	}
	fmt.Fprintln(s.out, "\nAvailable genres:")
	for _, g := range genres {
		fmt.Fprintf(s.out, "%d. %s\n", g.ID, g.Name)
	}

	raw, err := s.prompt.ReadString("Genre IDs, comma separated (0 clears, Enter keeps): ")
	if err != nil {
		return err
	}
	var genreIDs []int64
	switch raw {
	case "":
		s.info("Genres unchanged.")
		return nil
	case "0":
	default:
		genreIDs = parseIDList(raw, func(bad string) { s.warning("Skipped invalid ID: %s", bad) })
		if len(genreIDs) == 0 {
			s.info("Genres unchanged.")
			return nil
		}
	}

	if err := s.catalog.Games.UpdateGameGenres(gameID, genreIDs); err != nil {
		s.report("update the genres", err)
		return nil
	}
	s.success("Genres updated.")
	return nil
}

func (s *Shell) deleteGame() error {
	s.subHeader("Delete a game")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}
	game, ok, err := s.catalog.Games.GetGameByID(gameID)
	if err != nil {
		s.report("load the game", err)
		return nil
	}
	if !ok {
		s.notFound("Game", gameID)
		return nil
	}
	confirmed, err := s.confirm("the game: " + game.Title)
	if err != nil || !confirmed {
		return err
	}
	if err := s.catalog.Games.DeleteGame(gameID); err != nil {
		s.report("delete the game", err)
		return nil
	}
	s.success("Game deleted.")
	return nil
}
