package entities

import (
	"github.com/google/uuid"
)

type Scan struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Kind     string    `json:"kind"`   // receipt, bestby, recipe
	Status   string    `json:"status"` // Pending, Processed, Failed, Completed
	ImageURL string    `json:"image_url"`
	Results  string    `json:"results,omitempty" gorm:"type:text"`

	PantryItems []*PantryItem `gorm:"foreignKey:ScanID"`
	Timestamp
}
