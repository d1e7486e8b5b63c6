package domain

import (
	"errors"
	"time"
)

// Urgency buckets for pantry items, derived from the expiration date only.
// A best-by date never feeds classification.
const (
	UrgencyNoDate       = "no-date"
	UrgencyExpired      = "expired"
	UrgencyExpiringSoon = "expiring-soon"
	UrgencyOk           = "ok"
)

const (
	SourceManual      = "manual"
	SourceGrocery     = "grocery"
	SourceAssumed     = "assumed"
	SourceReceiptScan = "receipt_scan"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessGetExpiringSoon  = "expiring items retrieved successfully"
	MessageSuccessGetPantryStats   = "pantry statistics retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedGetExpiringSoon  = "failed to retrieve expiring items"
	MessageFailedGetPantryStats   = "failed to retrieve pantry statistics"

	ErrPantryItemNotFound    = errors.New("pantry item not found")
	ErrEmptyItemName         = errors.New("item name must not be empty")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrInvalidBestByDate     = errors.New("invalid best by date")
	ErrInvalidSource         = errors.New("invalid pantry item source")
)

type (
	AddPantryItemRequest struct {
		Name              string `json:"name" validate:"required"`
		Quantity          string `json:"quantity" validate:"omitempty"`
		RemainingQuantity string `json:"remaining_quantity" validate:"omitempty"`
		ExpirationDate    string `json:"expiration_date" validate:"omitempty"`
		BestByDate        string `json:"best_by_date" validate:"omitempty"`
		Source            string `json:"source" validate:"omitempty,oneof=manual grocery assumed receipt_scan"`
	}

	UpdatePantryItemRequest struct {
		Name              string `json:"name" validate:"omitempty"`
		Quantity          string `json:"quantity" validate:"omitempty"`
		RemainingQuantity string `json:"remaining_quantity" validate:"omitempty"`
		ExpirationDate    string `json:"expiration_date" validate:"omitempty"`
		BestByDate        string `json:"best_by_date" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID                string     `json:"id"`
		Name              string     `json:"name"`
		Quantity          string     `json:"quantity,omitempty"`
		RemainingQuantity string     `json:"remaining_quantity,omitempty"`
		ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
		BestByDate        *time.Time `json:"best_by_date,omitempty"`
		Source            string     `json:"source"`
		Urgency           string     `json:"urgency"`
		CreatedAt         time.Time  `json:"created_at"`
	}

	PantryStatsResponse struct {
		TotalItems        int `json:"total_items"`
		ExpiredItems      int `json:"expired_items"`
		ExpiringSoonItems int `json:"expiring_soon_items"`
		OkItems           int `json:"ok_items"`
		NoDateItems       int `json:"no_date_items"`
	}
)
