package preference

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PreferenceService interface {
		GetPreferences(ctx context.Context, userID string) (domain.PreferencesResponse, error)
		AddAllergy(ctx context.Context, req domain.AddAllergyRequest, userID string) (domain.PreferencesResponse, error)
		RemoveAllergy(ctx context.Context, req domain.RemoveAllergyRequest, userID string) (domain.PreferencesResponse, error)
		AddStandardItems(ctx context.Context, req domain.AddStandardItemsRequest, userID string) (domain.PreferencesResponse, error)
		SetStandardItems(ctx context.Context, req domain.SetStandardItemsRequest, userID string) (domain.PreferencesResponse, error)
	}

	preferenceService struct {
		preferenceRepository PreferenceRepository
	}
)

func NewPreferenceService(preferenceRepository PreferenceRepository) PreferenceService {
	return &preferenceService{preferenceRepository: preferenceRepository}
}

func (s *preferenceService) GetPreferences(ctx context.Context, userID string) (domain.PreferencesResponse, error) {
	allergies, standardItems, err := s.load(ctx, userID)
	if err != nil {
		return domain.PreferencesResponse{}, err
	}

	return domain.PreferencesResponse{Allergies: allergies, StandardItems: standardItems}, nil
}

func (s *preferenceService) AddAllergy(ctx context.Context, req domain.AddAllergyRequest, userID string) (domain.PreferencesResponse, error) {
	if strings.TrimSpace(req.Allergy) == "" {
		return domain.PreferencesResponse{}, domain.ErrEmptyAllergy
	}

	allergies, standardItems, err := s.load(ctx, userID)
	if err != nil {
		return domain.PreferencesResponse{}, err
	}

	allergies = MergeAllergy(allergies, req.Allergy)

	return s.persist(ctx, userID, allergies, standardItems)
}

func (s *preferenceService) RemoveAllergy(ctx context.Context, req domain.RemoveAllergyRequest, userID string) (domain.PreferencesResponse, error) {
	allergies, standardItems, err := s.load(ctx, userID)
	if err != nil {
		return domain.PreferencesResponse{}, err
	}

	allergies = RemoveAllergy(allergies, req.Allergy)

	return s.persist(ctx, userID, allergies, standardItems)
}

// AddStandardItems appends the parsed names to the slot. Existing entries are
// kept as-is; duplicates are allowed.
func (s *preferenceService) AddStandardItems(ctx context.Context, req domain.AddStandardItemsRequest, userID string) (domain.PreferencesResponse, error) {
	allergies, standardItems, err := s.load(ctx, userID)
	if err != nil {
		return domain.PreferencesResponse{}, err
	}

	standardItems[req.Slot] = append(standardItems[req.Slot], SplitStandardItems(req.Items)...)

	return s.persist(ctx, userID, allergies, standardItems)
}

func (s *preferenceService) SetStandardItems(ctx context.Context, req domain.SetStandardItemsRequest, userID string) (domain.PreferencesResponse, error) {
	allergies, standardItems, err := s.load(ctx, userID)
	if err != nil {
		return domain.PreferencesResponse{}, err
	}

	items := req.Items
	if items == nil {
		items = []domain.StandardItem{}
	}
	standardItems[req.Slot] = items

	return s.persist(ctx, userID, allergies, standardItems)
}

func (s *preferenceService) load(ctx context.Context, userID string) ([]string, map[string][]domain.StandardItem, error) {
	preference, err := s.preferenceRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, defaultStandardItems(), nil
		}
		return nil, nil, err
	}

	var allergies []string
	if err := json.Unmarshal([]byte(preference.Allergies), &allergies); err != nil {
		allergies = []string{}
	}

	standardItems := defaultStandardItems()
	var stored map[string][]domain.StandardItem
	if err := json.Unmarshal([]byte(preference.StandardItems), &stored); err == nil {
		for slot, items := range stored {
			standardItems[slot] = items
		}
	}

	return allergies, standardItems, nil
}

func (s *preferenceService) persist(ctx context.Context, userID string, allergies []string, standardItems map[string][]domain.StandardItem) (domain.PreferencesResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PreferencesResponse{}, domain.ErrParseUUID
	}

	encodedAllergies, err := json.Marshal(allergies)
	if err != nil {
		return domain.PreferencesResponse{}, err
	}
	encodedItems, err := json.Marshal(standardItems)
	if err != nil {
		return domain.PreferencesResponse{}, err
	}

	preference := &entities.UserPreference{
		ID:            uuid.New(),
		UserID:        userUUID,
		Allergies:     string(encodedAllergies),
		StandardItems: string(encodedItems),
	}

	if err := s.preferenceRepository.Save(ctx, preference); err != nil {
		return domain.PreferencesResponse{}, err
	}

	return domain.PreferencesResponse{Allergies: allergies, StandardItems: standardItems}, nil
}

func defaultStandardItems() map[string][]domain.StandardItem {
	items := make(map[string][]domain.StandardItem, len(domain.MealSlots))
	for _, slot := range domain.MealSlots {
		items[slot] = []domain.StandardItem{}
	}
	return items
}
