package services

import (
	"cmp"
	"slices"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

// Entity type names written to the audit trail.
const (
	EntityGame        = "game"
	EntityGenre       = "genre"
	EntityCompany     = "company"
	EntityMediaOutlet = "media_outlet"
	EntityReview      = "review"
	EntityRequirement = "system_requirement"
)

type recorder struct {
	audit AuditRecorder
}

func (r recorder) record(eventType entities.AuditEventType, entityType string, entityID int64, description string, err error) {
	if r.audit == nil {
		return
	}
	r.audit.Record(eventType, entityType, entityID, description, err)
}

func sortByID[T any](items []T, id func(T) int64) []T {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(id(a), id(b))
	})
	return items
}
