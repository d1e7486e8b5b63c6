package entities

import (
	"github.com/google/uuid"
	"time"
)

type PantryItem struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	Name              string     `json:"name"`
	Quantity          string     `json:"quantity,omitempty"`
	RemainingQuantity string     `json:"remaining_quantity,omitempty"` // e.g. "half", "2 cups left"
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	BestByDate        *time.Time `json:"best_by_date,omitempty"`
	Source            string     `json:"source"` // manual, grocery, assumed, receipt_scan
	ScanID            *string    `json:"scan_id,omitempty"`

	Timestamp
}
