// Package audit records catalog mutations made through the service layer.
package audit

import (
	"fmt"
	"log"
	"time"

	"github.com/mrlokans/gamesreviewer/internal/database/audit"
	"github.com/mrlokans/gamesreviewer/internal/entities"
)

const maxTextLen = 500

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Record stores the outcome of one mutation. A non-nil opErr marks the
// event as failed. Storage errors are logged and swallowed so that the
// audited operation never fails because of its trail.
func (s *Service) Record(eventType entities.AuditEventType, entityType string, entityID int64, description string, opErr error) {
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      fmt.Sprintf("%s_%s", entityType, eventType),
		Description: truncate(description, maxTextLen),
		EntityType:  entityType,
		Status:      entities.AuditStatusSuccess,
	}
	if entityID > 0 {
		event.EntityID = &entityID
	}
	if opErr != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(opErr.Error(), maxTextLen)
	}

	if err := s.repo.LogEvent(event); err != nil {
		log.Printf("Failed to log audit event %s: %v", event.Action, err)
	}
}

// GetEvents retrieves paginated audit events, optionally for one entity type.
func (s *Service) GetEvents(entityType string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(entityType, limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, limit, offset)
}

// History lists the recorded events of one row, oldest first.
func (s *Service) History(entityType string, entityID int64) ([]entities.AuditEvent, error) {
	return s.repo.GetEntityHistory(entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
