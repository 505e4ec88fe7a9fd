package console

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

func (s *Shell) reviewsMenu() error {
	return s.menu("REVIEWS", "Back to main menu", []menuItem{
		{"List all reviews", s.listReviews},
		{"List reviews for a game", s.listGameReviews},
		{"Find a review by ID", s.findReview},
		{"Add a new review", s.createReview},
		{"Edit a review", s.editReview},
		{"Delete a review", s.deleteReview},
	})
}

func (s *Shell) listReviews() error {
	s.subHeader("All reviews")
	reviews, err := s.catalog.Reviews.GetAllReviews()
	if err != nil {
		s.report("list reviews", err)
		return nil
	}
	s.printReviews(reviews)
	return nil
}

func (s *Shell) listGameReviews() error {
	s.subHeader("Reviews for a game")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}
	reviews, err := s.catalog.Reviews.GetReviewsByGameID(gameID)
	if err != nil {
		s.report("list reviews", err)
		return nil
	}
	s.printReviews(reviews)
	if len(reviews) > 0 {
		avg, err := s.catalog.Reviews.GetAverageScoreForGame(gameID)
		if err != nil {
			s.report("compute the average score", err)
			return nil
		}
		s.field("Average rating", formatRating(avg))
	}
	return nil
}

func (s *Shell) printReviews(reviews []entities.Review) {
	if len(reviews) == 0 {
		s.warning("No reviews found.")
		return
	}
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			fmtID(r.ID),
			truncate(nullString(r.GameTitle), 25),
			truncate(nullString(r.MediaOutletName), 20),
			fmt.Sprint(r.Score),
			truncate(nullString(r.Summary), 30),
		})
	}
	s.renderTable([]string{"ID", "Game", "Outlet", "Score", "Summary"}, rows)
	s.info("Total reviews: %d", len(reviews))
}

func (s *Shell) findReview() error {
	reviewID, err := s.prompt.ReadID("Review ID: ")
	if err != nil {
		return err
	}
	review, ok, err := s.catalog.Reviews.GetReviewByID(reviewID)
	if err != nil {
		s.report("load the review", err)
		return nil
	}
	if !ok {
		s.notFound("Review", reviewID)
		return nil
	}
	s.printReview(review)
	return nil
}

func (s *Shell) printReview(r entities.Review) {
	s.header("Review details")
	s.field("ID", fmtID(r.ID))
	s.field("Game", fmt.Sprintf("%s (ID: %d)", nullString(r.GameTitle), r.GameID))
	s.field("Outlet", fmt.Sprintf("%s (ID: %d)", nullString(r.MediaOutletName), r.MediaOutletID))
	s.field("Score", fmt.Sprintf("%d/100", r.Score))
	s.field("Summary", nullString(r.Summary))
	s.separator()
}

func (s *Shell) createReview() error {
	s.subHeader("Add a new review")
	gameID, err := s.prompt.ReadID("Game ID: ")
	if err != nil {
		return err
	}

	outlets, err := s.catalog.MediaOutlets.GetAllMediaOutlets()
	if err != nil {
		s.report("list media outlets", err)
		return nil
	}
	if len(outlets) == 0 {
		s.warning("There are no media outlets. Add one first.")
		return nil
	}
	fmt.Fprintln(s.out, "\nAvailable media outlets:")
	for _, o := range outlets {
		fmt.Fprintf(s.out, "%d. %s\n", o.ID, o.Name)
	}
	outletID, err := s.prompt.ReadID("Media outlet ID: ")
	if err != nil {
		return err
	}
	score, err := s.prompt.ReadInt("Score (0-100): ", entities.MinScore, entities.MaxScore)
	if err != nil {
		return err
	}
	summary, err := s.prompt.ReadOptionalString("Summary (Enter to skip): ")
	if err != nil {
		return err
	}

	review, err := entities.NewReview(gameID, outletID, int(score), summary)
	if err != nil {
		s.report("create the review", err)
		return nil
	}
	reviewID, err := s.catalog.Reviews.CreateReview(review)
	if err != nil {
		s.report("create the review", err)
		return nil
	}
	s.success("Review created with ID %d", reviewID)
	return nil
}

// editReview changes score and summary only; the game and outlet of a
// review are fixed.
func (s *Shell) editReview() error {
	s.subHeader("Edit a review")
	reviewID, err := s.prompt.ReadID("Review ID: ")
	if err != nil {
		return err
	}
	review, ok, err := s.catalog.Reviews.GetReviewByID(reviewID)
	if err != nil {
		s.report("load the review", err)
		return nil
	}
	if !ok {
		s.notFound("Review", reviewID)
		return nil
	}
	s.printReview(review)
	fmt.Fprintln(s.out, "\nLeave a field empty to keep its value.")

	score, err := s.prompt.ReadOptionalInt("New score (0-100): ", entities.MinScore, entities.MaxScore)
	if err != nil {
		return err
	}
	summary, err := s.prompt.ReadOptionalString("New summary: ")
	if err != nil {
		return err
	}

	newScore := keepInt(score, datatypes.NewNull(int64(review.Score)))
	updated, err := entities.NewReview(review.GameID, review.MediaOutletID, int(newScore.V), keepString(summary, review.Summary))
	if err != nil {
		s.report("update the review", err)
		return nil
	}
	if err := s.catalog.Reviews.UpdateReview(updated.WithID(reviewID)); err != nil {
		s.report("update the review", err)
		return nil
	}
	s.success("Review updated.")
	return nil
}

func (s *Shell) deleteReview() error {
	s.subHeader("Delete a review")
	reviewID, err := s.prompt.ReadID("Review ID: ")
	if err != nil {
		return err
	}
	review, ok, err := s.catalog.Reviews.GetReviewByID(reviewID)
	if err != nil {
		s.report("load the review", err)
		return nil
	}
	if !ok {
		s.notFound("Review", reviewID)
		return nil
	}
	what := fmt.Sprintf("the review of %s by %s", nullString(review.GameTitle), nullString(review.MediaOutletName))
	confirmed, err := s.confirm(what)
	if err != nil || !confirmed {
		return err
	}
	if err := s.catalog.Reviews.DeleteReview(reviewID); err != nil {
		s.report("delete the review", err)
		return nil
	}
	s.success("Review deleted.")
	return nil
}
