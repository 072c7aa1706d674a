package models

import (
	"time"

	"gorm.io/gorm"
)

// WebhookEvent records every processed payment event. The unique index on
// EventID is what makes redelivered events harmless: the insert fails and
// the surrounding transaction rolls back.
type WebhookEvent struct {
	gorm.Model
	EventID     string    `json:"eventId" gorm:"uniqueIndex;size:191"`
	EventType   string    `json:"eventType"`
	ProcessedAt time.Time `json:"processedAt"`
}
