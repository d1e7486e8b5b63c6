package entities

import (
	"github.com/google/uuid"
)

type GroceryList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Type   string    `json:"type"`                   // manual, recipe, compiled
	Items  string    `json:"items" gorm:"type:text"` // JSON array of grocery items

	Timestamp
}
