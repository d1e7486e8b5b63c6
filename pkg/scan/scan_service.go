package scan

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"Sue-Backend/internal/utils/storage"
	"Sue-Backend/pkg/openai"
	"Sue-Backend/pkg/pantry"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const receiptPrompt = `Extract all purchased grocery items from this receipt image. Return them as a JSON array of objects with "name", "quantity" (optional), and "price" (optional) fields. Only return the JSON array, no other text.`

const bestByPrompt = `Find the best by, best before or expiration date printed on this product packaging. Return a JSON array of objects with "itemName" (optional), "bestByDate" (format YYYY-MM-DD) and "rawText" (optional, the text as printed) fields. Only return the JSON array, no other text.`

const recipeImagePrompt = `Extract all ingredients from this recipe image. Return them as a JSON array of objects with "name", "quantity" (optional), and "category" (optional) fields. Only return the JSON array, no other text.`

type (
	ScanService interface {
		ScanReceipt(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.ScanReceiptResponse, error)
		ScanBestBy(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.ScanBestByResponse, error)
		ScanRecipeImage(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.ScanRecipeResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error
		GetScans(ctx context.Context, userID string) ([]domain.ScanResponse, error)
		GetScanByID(ctx context.Context, id string, userID string) (domain.ScanResponse, error)
	}

	scanService struct {
		scanRepository   ScanRepository
		pantryRepository pantry.PantryRepository
		aiClient         openai.Client
		s3               storage.AwsS3
	}
)

func NewScanService(scanRepository ScanRepository, pantryRepository pantry.PantryRepository, aiClient openai.Client, s3 storage.AwsS3) ScanService {
	return &scanService{
		scanRepository:   scanRepository,
		pantryRepository: pantryRepository,
		aiClient:         aiClient,
		s3:               s3,
	}
}

// ScanReceipt uploads the image, runs vision extraction and stores the parsed
// lines on the scan record. A reply that is not valid JSON yields an empty
// item list, not an error.
func (s *scanService) ScanReceipt(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.ScanReceiptResponse, error) {
	scan, imageData, mimeType, err := s.createScan(ctx, req, userID, domain.ScanKindReceipt, "receipts")
	if err != nil {
		return domain.ScanReceiptResponse{}, err
	}

	items := []domain.ReceiptLine{}
	content, err := s.aiClient.VisionCompletion(ctx, receiptPrompt, imageData, mimeType)
	if err != nil {
		scan.Status = domain.ScanStatusFailed
		scan.Results = fmt.Sprintf("Error: %s", err.Error())
	} else {
		if raw := openai.ExtractJSONArray(content); raw != "" {
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				items = []domain.ReceiptLine{}
			}
		}
		resultsJSON, _ := json.Marshal(items)
		scan.Status = domain.ScanStatusProcessed
		scan.Results = string(resultsJSON)
	}

	if err := s.scanRepository.UpdateScan(ctx, scan); err != nil {
		return domain.ScanReceiptResponse{}, err
	}

	return domain.ScanReceiptResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
		Items:    items,
	}, nil
}

// ScanBestBy reads a printed best-by date off product packaging. Like receipt
// scanning, unparseable replies degrade to an empty result.
func (s *scanService) ScanBestBy(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.ScanBestByResponse, error) {
	scan, imageData, mimeType, err := s.createScan(ctx, req, userID, domain.ScanKindBestBy, "bestby")
	if err != nil {
		return domain.ScanBestByResponse{}, err
	}

	results := []domain.BestByResult{}
	content, err := s.aiClient.VisionCompletion(ctx, bestByPrompt, imageData, mimeType)
	if err != nil {
		scan.Status = domain.ScanStatusFailed
		scan.Results = fmt.Sprintf("Error: %s", err.Error())
	} else {
		if raw := openai.ExtractJSONArray(content); raw != "" {
			if err := json.Unmarshal([]byte(raw), &results); err != nil {
				results = []domain.BestByResult{}
			}
		}
		resultsJSON, _ := json.Marshal(results)
		scan.Status = domain.ScanStatusProcessed
		scan.Results = string(resultsJSON)
	}

	if err := s.scanRepository.UpdateScan(ctx, scan); err != nil {
		return domain.ScanBestByResponse{}, err
	}

	return domain.ScanBestByResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
		Results:  results,
	}, nil
}

// ScanRecipeImage extracts ingredients from a recipe photo. Unlike the other
// scans this path is strict: a malformed reply is an invalid-response error.
func (s *scanService) ScanRecipeImage(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.ScanRecipeResponse, error) {
	scan, imageData, mimeType, err := s.createScan(ctx, req, userID, domain.ScanKindRecipe, "recipes")
	if err != nil {
		return domain.ScanRecipeResponse{}, err
	}

	content, err := s.aiClient.VisionCompletion(ctx, recipeImagePrompt, imageData, mimeType)
	if err != nil {
		scan.Status = domain.ScanStatusFailed
		scan.Results = fmt.Sprintf("Error: %s", err.Error())
		_ = s.scanRepository.UpdateScan(ctx, scan)
		return domain.ScanRecipeResponse{}, err
	}

	raw := openai.ExtractJSONArray(content)
	if raw == "" {
		scan.Status = domain.ScanStatusFailed
		scan.Results = "Error: no JSON array in vision reply"
		_ = s.scanRepository.UpdateScan(ctx, scan)
		return domain.ScanRecipeResponse{}, domain.ErrInvalidAIResponse
	}

	var ingredients []domain.GroceryItem
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		scan.Status = domain.ScanStatusFailed
		scan.Results = fmt.Sprintf("Error parsing vision reply: %s", err.Error())
		_ = s.scanRepository.UpdateScan(ctx, scan)
		return domain.ScanRecipeResponse{}, domain.ErrInvalidAIResponse
	}

	resultsJSON, _ := json.Marshal(ingredients)
	scan.Status = domain.ScanStatusProcessed
	scan.Results = string(resultsJSON)
	if err := s.scanRepository.UpdateScan(ctx, scan); err != nil {
		return domain.ScanRecipeResponse{}, err
	}

	return domain.ScanRecipeResponse{
		ScanID:      scan.ID.String(),
		ImageURL:    scan.ImageURL,
		Status:      scan.Status,
		Ingredients: ingredients,
	}, nil
}

// SaveScannedItems writes the user-confirmed receipt lines into the pantry
// and marks the scan completed.
func (s *scanService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error {
	scan, err := s.scanRepository.GetScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScanNotFound
		}
		return err
	}

	if scan.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	scanID := scan.ID.String()
	for _, item := range req.Items {
		expirationDate, err := parseOptionalDate(item.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpirationDate
		}
		bestByDate, err := parseOptionalDate(item.BestByDate)
		if err != nil {
			return domain.ErrInvalidBestByDate
		}

		pantryItem := &entities.PantryItem{
			ID:             uuid.New(),
			UserID:         userUUID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			ExpirationDate: expirationDate,
			BestByDate:     bestByDate,
			Source:         domain.SourceReceiptScan,
			ScanID:         &scanID,
		}

		if err := s.pantryRepository.AddItem(ctx, pantryItem); err != nil {
			return err
		}
	}

	scan.Status = domain.ScanStatusCompleted
	return s.scanRepository.UpdateScan(ctx, scan)
}

func (s *scanService) GetScans(ctx context.Context, userID string) ([]domain.ScanResponse, error) {
	scans, err := s.scanRepository.GetScans(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ScanResponse, 0, len(scans))
	for _, scan := range scans {
		res = append(res, toScanResponse(scan))
	}

	return res, nil
}

func (s *scanService) GetScanByID(ctx context.Context, id string, userID string) (domain.ScanResponse, error) {
	scan, err := s.scanRepository.GetScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanResponse{}, domain.ErrScanNotFound
		}
		return domain.ScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ScanResponse{}, domain.ErrUnauthorizedAccess
	}

	return toScanResponse(scan), nil
}

func toScanResponse(scan *entities.Scan) domain.ScanResponse {
	return domain.ScanResponse{
		ScanID:    scan.ID.String(),
		Kind:      scan.Kind,
		ImageURL:  scan.ImageURL,
		Status:    scan.Status,
		Results:   scan.Results,
		CreatedAt: scan.CreatedAt,
	}
}

func (s *scanService) createScan(ctx context.Context, req domain.UploadScanRequest, userID, kind, dir string) (*entities.Scan, []byte, string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, "", domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("%s-%s", kind, scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, dir, storage.AllowImage...)
	if err != nil {
		return nil, nil, "", err
	}

	scan := &entities.Scan{
		ID:       scanID,
		UserID:   userUUID,
		Kind:     kind,
		Status:   domain.ScanStatusPending,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}

	if err := s.scanRepository.CreateScan(ctx, scan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return nil, nil, "", err
	}

	file, err := req.Image.Open()
	if err != nil {
		return nil, nil, "", err
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, "", err
	}

	return scan, imageData, req.Image.Header.Get("Content-Type"), nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
