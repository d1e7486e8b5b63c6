package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	ScanKindReceipt = "receipt"
	ScanKindBestBy  = "bestby"
	ScanKindRecipe  = "recipe"
)

const (
	ScanStatusPending   = "Pending"
	ScanStatusProcessed = "Processed"
	ScanStatusFailed    = "Failed"
	ScanStatusCompleted = "Completed"
)

var (
	MessageSuccessScanReceipt     = "receipt scanned successfully"
	MessageSuccessScanBestBy      = "best by date scanned successfully"
	MessageSuccessScanRecipe      = "recipe photo scanned successfully"
	MessageSuccessGetScan         = "scan retrieved successfully"
	MessageSuccessSaveScanedItems = "scanned items saved successfully"

	MessageFailedScanReceipt     = "failed to scan receipt"
	MessageFailedScanBestBy      = "failed to scan best by date"
	MessageFailedScanRecipe      = "failed to scan recipe photo"
	MessageFailedGetScan         = "failed to retrieve scan"
	MessageFailedSaveScanedItems = "failed to save scanned items"

	ErrScanNotFound = errors.New("scan not found")
)

type (
	UploadScanRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ReceiptLine struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity,omitempty"`
		Price    string `json:"price,omitempty"`
	}

	BestByResult struct {
		ItemName   string `json:"itemName,omitempty"`
		BestByDate string `json:"bestByDate"` // YYYY-MM-DD
		RawText    string `json:"rawText,omitempty"`
	}

	ScanReceiptResponse struct {
		ScanID   string        `json:"scan_id"`
		ImageURL string        `json:"image_url"`
		Status   string        `json:"status"`
		Items    []ReceiptLine `json:"items"`
	}

	ScanBestByResponse struct {
		ScanID   string         `json:"scan_id"`
		ImageURL string         `json:"image_url"`
		Status   string         `json:"status"`
		Results  []BestByResult `json:"results"`
	}

	ScanRecipeResponse struct {
		ScanID      string        `json:"scan_id"`
		ImageURL    string        `json:"image_url"`
		Status      string        `json:"status"`
		Ingredients []GroceryItem `json:"ingredients"`
	}

	SavedReceiptItem struct {
		Name           string `json:"name" validate:"required"`
		Quantity       string `json:"quantity" validate:"omitempty"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty"`
		BestByDate     string `json:"best_by_date" validate:"omitempty"`
	}

	SaveScannedItemsRequest struct {
		ScanID string             `json:"scan_id" validate:"required,uuid"`
		Items  []SavedReceiptItem `json:"items" validate:"required,dive"`
	}

	ScanResponse struct {
		ScanID    string    `json:"scan_id"`
		Kind      string    `json:"kind"`
		ImageURL  string    `json:"image_url"`
		Status    string    `json:"status"`
		Results   string    `json:"results"`
		CreatedAt time.Time `json:"created_at"`
	}
)
