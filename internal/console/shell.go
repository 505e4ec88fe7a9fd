// Package console is the interactive text shell over the catalog services.
package console

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/entities"
	"github.com/mrlokans/gamesreviewer/internal/services"
)

// Shell runs the menu loop. It reads choices from in and renders to out.
type Shell struct {
	catalog *services.Catalog
	prompt  *prompter
	out     io.Writer
	styles  styles
}

type Option func(*Shell)

// WithColor toggles lipgloss colours. Colours are on by default.
func WithColor(enabled bool) Option {
	return func(s *Shell) {
		s.styles = newStyles(enabled)
	}
}

func New(in io.Reader, out io.Writer, catalog *services.Catalog, opts ...Option) *Shell {
	s := &Shell{
		catalog: catalog,
		out:     out,
		styles:  newStyles(true),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.prompt = newPrompter(in, out, s.styles)
	return s
}

// menuItem is one numbered entry. Choice 0 always leaves the menu.
type menuItem struct {
	label  string
	action func() error
}

// Run shows the main menu until the operator exits or the input ends.
func (s *Shell) Run() error {
	err := s.menu("GAMES REVIEWER - Catalog Management", "Exit", []menuItem{
		{"Games", s.gamesMenu},
		{"Companies", s.companiesMenu},
		{"Genres", s.genresMenu},
		{"Media outlets", s.outletsMenu},
		{"Reviews", s.reviewsMenu},
		{"System requirements", s.requirementsMenu},
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(s.out)
	s.info("Goodbye!")
	return nil
}

func (s *Shell) menu(title, exitLabel string, items []menuItem) error {
	for {
		s.header(title)
		for i, item := range items {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, item.label)
		}
		fmt.Fprintf(s.out, "0. %s\n", exitLabel)

		choice, err := s.prompt.ReadInt("\nYour choice: ", 0, int64(len(items)))
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if err := items[choice-1].action(); err != nil {
			return err
		}
	}
}

// report prints an operator-facing message for a failed operation. Only
// the typed errors carry a message worth showing verbatim.
func (s *Shell) report(action string, err error) {
	var verr *entities.ValidationError
	var dup *database.DuplicateEntryError
	var fk *database.ForeignKeyViolationError

	switch {
	case errors.As(err, &verr):
		s.failure("%s", verr.Error())
	case errors.As(err, &dup):
		s.failure("%s", dup.Message)
	case errors.As(err, &fk):
		s.failure("%s", fk.Message)
	case errors.Is(err, database.ErrDuplicateEntry), errors.Is(err, database.ErrForeignKeyViolation):
		s.failure("%v", err)
	default:
		log.Printf("Failed to %s: %v", action, err)
		s.failure("Failed to %s: %v", action, err)
	}
}

func (s *Shell) notFound(entity string, id int64) {
	s.failure("%s with ID %d not found.", entity, id)
}

// confirm asks before a destructive action and reports a cancellation.
func (s *Shell) confirm(what string) (bool, error) {
	fmt.Fprintf(s.out, "\nYou are about to delete %s\n", what)
	ok, err := s.prompt.ReadYesNo("Confirm deletion")
	if err != nil {
		return false, err
	}
	if !ok {
		s.info("Deletion cancelled.")
	}
	return ok, nil
}
