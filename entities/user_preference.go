package entities

import (
	"github.com/google/uuid"
)

type UserPreference struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Allergies     string    `json:"allergies" gorm:"type:text"`      // JSON array of strings
	StandardItems string    `json:"standard_items" gorm:"type:text"` // JSON map of meal slot to items

	Timestamp
}
