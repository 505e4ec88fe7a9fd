// Package tui implements the interactive game browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

// GameSource is the part of the game service the browser reads from.
type GameSource interface {
	GetAllGames() ([]entities.Game, error)
	GetGameWithFullDetails(id int64) (entities.Game, bool, error)
}

type Mode int

const (
	ModeList Mode = iota
	ModeDetails
	ModeError
)

// GameItem is one game in the list.
type GameItem struct {
	Game entities.Game
}

func (i GameItem) FilterValue() string { return i.Game.Title }
func (i GameItem) Title() string {
	return fmt.Sprintf("%s (%d)", i.Game.Title, i.Game.ReleaseYear)
}
func (i GameItem) Description() string {
	parts := []string{}
	if i.Game.DeveloperName.Valid {
		parts = append(parts, "dev: "+i.Game.DeveloperName.V)
	}
	if i.Game.PublisherName.Valid {
		parts = append(parts, "pub: "+i.Game.PublisherName.V)
	}
	if len(parts) == 0 {
		return "no companies"
	}
	return strings.Join(parts, " • ")
}

// BrowseModel lists the catalog and shows the full details of a game.
type BrowseModel struct {
	source  GameSource
	mode    Mode
	list    list.Model
	details entities.Game
	err     error
	width   int
	height  int
}

func NewBrowseModel(source GameSource) BrowseModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 80, 20)
	l.Title = "Games"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return BrowseModel{
		source: source,
		mode:   ModeList,
		list:   l,
	}
}

type gamesLoadedMsg struct {
	games []entities.Game
}

type detailsLoadedMsg struct {
	game  entities.Game
	found bool
}

type errorMsg struct {
	err error
}

func loadGamesCmd(source GameSource) tea.Cmd {
	return func() tea.Msg {
		games, err := source.GetAllGames()
		if err != nil {
			return errorMsg{err: fmt.Errorf("failed to load games: %w", err)}
		}
		return gamesLoadedMsg{games: games}
	}
}

func loadDetailsCmd(source GameSource, gameID int64) tea.Cmd {
	return func() tea.Msg {
		game, ok, err := source.GetGameWithFullDetails(gameID)
		if err != nil {
			return errorMsg{err: fmt.Errorf("failed to load game %d: %w", gameID, err)}
		}
		return detailsLoadedMsg{game: game, found: ok}
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return loadGamesCmd(m.source)
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case gamesLoadedMsg:
		items := make([]list.Item, len(msg.games))
		for i, g := range msg.games {
			items[i] = GameItem{Game: g}
		}
		return m, m.list.SetItems(items)

	case detailsLoadedMsg:
		if !msg.found {
			m.list.NewStatusMessage("Game no longer exists")
			return m, loadGamesCmd(m.source)
		}
		m.details = msg.game
		m.mode = ModeDetails
		return m, nil

	case errorMsg:
		m.err = msg.err
		m.mode = ModeError
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeList:
			if m.list.FilterState() == list.Filtering {
				break
			}
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter":
				item, ok := m.list.SelectedItem().(GameItem)
				if !ok {
					return m, nil
				}
				return m, loadDetailsCmd(m.source, item.Game.ID)
			}

		case ModeDetails:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "backspace", "enter":
				m.mode = ModeList
				return m, nil
			}
			return m, nil

		case ModeError:
			return m, tea.Quit
		}
	}

	if m.mode == ModeList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowseModel) View() string {
	switch m.mode {
	case ModeDetails:
		return boxStyle.Render(renderDetails(m.details)) + "\n" +
			helpStyle.Render(FormatKey("esc", "back")+" • "+FormatKey("q", "quit"))
	case ModeError:
		return boxStyle.Render(errorStyle.Render(m.err.Error())) + "\n" +
			helpStyle.Render(FormatKey("any key", "exit"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		helpStyle.Render(FormatKey("enter", "details")+" • "+FormatKey("/", "filter")+" • "+FormatKey("q", "quit")),
	)
}

func renderDetails(g entities.Game) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", g.Title, g.ReleaseYear)))
	b.WriteString("\n")

	line := func(label, value string) {
		b.WriteString(labelStyle.Render(label+": ") + value + "\n")
	}
	if g.DeveloperName.Valid {
		line("Developer", g.DeveloperName.V)
	}
	if g.PublisherName.Valid {
		line("Publisher", g.PublisherName.V)
	}
	if len(g.Genres) > 0 {
		line("Genres", strings.Join(g.Genres, ", "))
	} else {
		line("Genres", "not set")
	}
	if g.AverageRating.Valid {
		line("Average rating", ratingStyle.Render(fmt.Sprintf("%.2f/100", g.AverageRating.V)))
	} else {
		line("Average rating", "no reviews")
	}
	if g.Description.Valid && g.Description.V != "" {
		b.WriteString("\n" + g.Description.V + "\n")
	}
	return b.String()
}

// RunBrowser starts the interactive browser.
func RunBrowser(source GameSource) error {
	p := tea.NewProgram(NewBrowseModel(source), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
