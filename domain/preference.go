package domain

import (
	"errors"
)

const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnacks    = "snacks"
)

var MealSlots = []string{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

var (
	MessageSuccessGetPreferences   = "preferences retrieved successfully"
	MessageSuccessAddAllergy       = "allergy added successfully"
	MessageSuccessRemoveAllergy    = "allergy removed successfully"
	MessageSuccessAddStandardItems = "standard items added successfully"
	MessageSuccessSetStandardItems = "standard items updated successfully"

	MessageFailedGetPreferences   = "failed to retrieve preferences"
	MessageFailedAddAllergy       = "failed to add allergy"
	MessageFailedRemoveAllergy    = "failed to remove allergy"
	MessageFailedAddStandardItems = "failed to add standard items"
	MessageFailedSetStandardItems = "failed to update standard items"

	ErrEmptyAllergy = errors.New("allergy must not be empty")
)

type (
	StandardItem struct {
		Name      string `json:"name"`
		Quantity  string `json:"quantity,omitempty"`
		Frequency string `json:"frequency,omitempty"` // e.g. "weekly", "daily"
	}

	AddAllergyRequest struct {
		Allergy string `json:"allergy" validate:"required"`
	}

	RemoveAllergyRequest struct {
		Allergy string `json:"allergy" validate:"required"`
	}

	AddStandardItemsRequest struct {
		Slot string `json:"slot" validate:"required,oneof=breakfast lunch dinner snacks"`
		// Free text, comma or semicolon separated item names.
		Items string `json:"items" validate:"required"`
	}

	SetStandardItemsRequest struct {
		Slot  string         `json:"slot" validate:"required,oneof=breakfast lunch dinner snacks"`
		Items []StandardItem `json:"items" validate:"omitempty,dive"`
	}

	PreferencesResponse struct {
		Allergies     []string                  `json:"allergies"`
		StandardItems map[string][]StandardItem `json:"standard_items"`
	}
)
