package entities

import (
	"github.com/google/uuid"
	"time"
)

type MealPlan struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Date            time.Time `json:"date"`
	MealName        string    `json:"meal_name"`
	IngredientsUsed string    `json:"ingredients_used" gorm:"type:text"` // JSON array of ingredient names

	Timestamp
}
