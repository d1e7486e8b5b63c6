package entities

import (
	"github.com/google/uuid"
	"time"
)

type Reminder struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Type           string    `json:"type"` // defrost, expiration
	Message        string    `json:"message"`
	ScheduledFor   time.Time `json:"scheduled_for"`
	NotificationID string    `json:"notification_id,omitempty"`

	Timestamp
}
