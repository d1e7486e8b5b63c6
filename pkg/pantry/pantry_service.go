package pantry

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error
		DeletePantryItem(ctx context.Context, id string, userID string) error
		GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)
		GetExpiringSoon(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.PantryItemResponse{}, domain.ErrEmptyItemName
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	expirationDate, err := parseOptionalDate(req.ExpirationDate)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrInvalidExpirationDate
	}

	bestByDate, err := parseOptionalDate(req.BestByDate)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrInvalidBestByDate
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}

	item := &entities.PantryItem{
		ID:                uuid.New(),
		UserID:            userUUID,
		Name:              strings.TrimSpace(req.Name),
		Quantity:          req.Quantity,
		RemainingQuantity: req.RemainingQuantity,
		ExpirationDate:    expirationDate,
		BestByDate:        bestByDate,
		Source:            source,
	}

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toPantryItemResponse(item, time.Now()), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		item.Name = strings.TrimSpace(req.Name)
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.RemainingQuantity != "" {
		item.RemainingQuantity = req.RemainingQuantity
	}
	if req.ExpirationDate != "" {
		expirationDate, err := parseOptionalDate(req.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = expirationDate
	}
	if req.BestByDate != "" {
		bestByDate, err := parseOptionalDate(req.BestByDate)
		if err != nil {
			return domain.ErrInvalidBestByDate
		}
		item.BestByDate = bestByDate
	}

	return s.pantryRepository.UpdateItem(ctx, item)
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.pantryRepository.DeleteItem(ctx, id)
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	SortByExpiry(items)

	now := time.Now()
	response := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toPantryItemResponse(item, now))
	}

	return response, nil
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.PantryItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return toPantryItemResponse(item, time.Now()), nil
}

func (s *pantryService) GetExpiringSoon(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.PantryItemResponse, 0)
	for _, item := range items {
		if IsExpiringSoon(now, item.ExpirationDate) {
			response = append(response, toPantryItemResponse(item, now))
		}
	}

	return response, nil
}

func (s *pantryService) GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error) {
	items, err := s.pantryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	now := time.Now()
	stats := domain.PantryStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		switch ClassifyExpiry(now, item.ExpirationDate) {
		case domain.UrgencyExpired:
			stats.ExpiredItems++
		case domain.UrgencyExpiringSoon:
			stats.ExpiringSoonItems++
		case domain.UrgencyOk:
			stats.OkItems++
		default:
			stats.NoDateItems++
		}
	}

	return stats, nil
}

func toPantryItemResponse(item *entities.PantryItem, now time.Time) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:                item.ID.String(),
		Name:              item.Name,
		Quantity:          item.Quantity,
		RemainingQuantity: item.RemainingQuantity,
		ExpirationDate:    item.ExpirationDate,
		BestByDate:        item.BestByDate,
		Source:            item.Source,
		Urgency:           ClassifyExpiry(now, item.ExpirationDate),
		CreatedAt:         item.CreatedAt,
	}
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
