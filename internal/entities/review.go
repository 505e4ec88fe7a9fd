package entities

import (
	"fmt"

	"gorm.io/datatypes"
)

// Review is one outlet's score for one game. A game has at most one
// review per outlet.
type Review struct {
	ID            int64                  `gorm:"primaryKey"`
	GameID        int64                  `gorm:"column:game_id"`
	MediaOutletID int64                  `gorm:"column:media_outlet_id"`
	Score         int                    `gorm:"column:score"`
	Summary       datatypes.Null[string] `gorm:"column:summary"`

	MediaOutletName datatypes.Null[string] `gorm:"->;column:media_outlet_name"`
	GameTitle       datatypes.Null[string] `gorm:"->;column:game_title"`
}

func (Review) TableName() string {
	return "reviews"
}

func NewReview(gameID, mediaOutletID int64, score int, summary datatypes.Null[string]) (Review, error) {
	r := Review{
		GameID:        gameID,
		MediaOutletID: mediaOutletID,
		Score:         score,
		Summary:       summary,
	}
	if err := r.Validate(); err != nil {
		return Review{}, err
	}
	return r, nil
}

func (r Review) Validate() error {
	if r.Score < MinScore || r.Score > MaxScore {
		return invalid("review", "score", fmt.Sprintf("must be between %d and %d", MinScore, MaxScore))
	}
	return nil
}

func (r Review) WithID(id int64) Review {
	r.ID = id
	return r
}
