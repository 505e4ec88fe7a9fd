package entities

import "time"

type AuditEventType string

const (
	AuditEventCreate AuditEventType = "create"
	AuditEventUpdate AuditEventType = "update"
	AuditEventDelete AuditEventType = "delete"
	AuditEventSeed   AuditEventType = "seed"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent records one catalog mutation made through the service layer.
type AuditEvent struct {
	ID          int64          `gorm:"primaryKey"`
	EventType   AuditEventType `gorm:"index;size:20"`
	Action      string         `gorm:"size:100"` // e.g. "game_create", "review_delete"
	Description string         `gorm:"size:500"`
	EntityType  string         `gorm:"index;size:50"`
	EntityID    *int64         `gorm:"index"`
	Status      AuditStatus    `gorm:"size:20"`
	ErrorMsg    string         `gorm:"size:500"`
	CreatedAt   time.Time      `gorm:"index"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
