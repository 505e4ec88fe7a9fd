package services

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

type ReviewService struct {
	recorder
	reviews ReviewStore
}

func NewReviewService(reviews ReviewStore, audit AuditRecorder) *ReviewService {
	return &ReviewService{recorder: recorder{audit: audit}, reviews: reviews}
}

// GetAllReviews returns every review ordered by id.
func (s *ReviewService) GetAllReviews() ([]entities.Review, error) {
	reviews, err := s.reviews.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(reviews, func(r entities.Review) int64 { return r.ID }), nil
}

func (s *ReviewService) GetReviewByID(id int64) (entities.Review, bool, error) {
	return s.reviews.FindByID(id)
}

// GetReviewsByGameID keeps the store order: best score first.
func (s *ReviewService) GetReviewsByGameID(gameID int64) ([]entities.Review, error) {
	return s.reviews.FindByGameID(gameID)
}

func (s *ReviewService) GetAverageScoreForGame(gameID int64) (datatypes.Null[float64], error) {
	return s.reviews.AverageScore(gameID)
}

func (s *ReviewService) CreateReview(review entities.Review) (int64, error) {
	id, err := s.reviews.Create(review)
	s.record(entities.AuditEventCreate, EntityReview, id,
		fmt.Sprintf("Created review of game %d by outlet %d", review.GameID, review.MediaOutletID), err)
	return id, err
}

func (s *ReviewService) UpdateReview(review entities.Review) error {
	err := s.reviews.Update(review)
	s.record(entities.AuditEventUpdate, EntityReview, review.ID, fmt.Sprintf("Updated review score to %d", review.Score), err)
	return err
}

func (s *ReviewService) DeleteReview(id int64) error {
	err := s.reviews.Delete(id)
	s.record(entities.AuditEventDelete, EntityReview, id, fmt.Sprintf("Deleted review %d", id), err)
	return err
}
