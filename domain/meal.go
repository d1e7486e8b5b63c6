package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddMealPlan    = "meal plan created successfully"
	MessageSuccessUpdateMealPlan = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"
	MessageSuccessGetMealPlans   = "meal plans retrieved successfully"

	MessageFailedAddMealPlan    = "failed to create meal plan"
	MessageFailedUpdateMealPlan = "failed to update meal plan"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"
	MessageFailedGetMealPlans   = "failed to retrieve meal plans"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidMealDate  = errors.New("invalid meal date")
)

type (
	AddMealPlanRequest struct {
		Date            string   `json:"date" validate:"required"`
		MealName        string   `json:"meal_name" validate:"required"`
		IngredientsUsed []string `json:"ingredients_used" validate:"omitempty"`
		// Name of a frozen ingredient to schedule a defrost reminder for,
		// triggered one day before the meal date.
		DefrostItem string `json:"defrost_item" validate:"omitempty"`
	}

	UpdateMealPlanRequest struct {
		Date            string   `json:"date" validate:"omitempty"`
		MealName        string   `json:"meal_name" validate:"omitempty"`
		IngredientsUsed []string `json:"ingredients_used" validate:"omitempty"`
	}

	MealPlanResponse struct {
		ID              string    `json:"id"`
		Date            time.Time `json:"date"`
		MealName        string    `json:"meal_name"`
		IngredientsUsed []string  `json:"ingredients_used"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
