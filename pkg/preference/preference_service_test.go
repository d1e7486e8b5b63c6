package preference

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePreferenceRepository struct {
	byUser map[string]*entities.UserPreference
}

func newFakePreferenceRepository() *fakePreferenceRepository {
	return &fakePreferenceRepository{byUser: make(map[string]*entities.UserPreference)}
}

func (r *fakePreferenceRepository) GetByUserID(_ context.Context, userID string) (*entities.UserPreference, error) {
	preference, ok := r.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return preference, nil
}

func (r *fakePreferenceRepository) Save(_ context.Context, preference *entities.UserPreference) error {
	r.byUser[preference.UserID.String()] = preference
	return nil
}

func TestGetPreferencesDefaultsWhenUnset(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository())

	res, err := service.GetPreferences(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.Empty(t, res.Allergies)
	for _, slot := range domain.MealSlots {
		assert.Empty(t, res.StandardItems[slot])
	}
}

func TestAddAllergyKeepsLatestCasing(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository())
	userID := uuid.New().String()

	_, err := service.AddAllergy(context.Background(), domain.AddAllergyRequest{Allergy: "Peanuts"}, userID)
	require.NoError(t, err)

	res, err := service.AddAllergy(context.Background(), domain.AddAllergyRequest{Allergy: "peanuts"}, userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"peanuts"}, res.Allergies)
}

func TestAddAllergyRejectsBlank(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository())

	_, err := service.AddAllergy(context.Background(), domain.AddAllergyRequest{Allergy: "   "}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrEmptyAllergy)
}

func TestRemoveAllergyPersists(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository())
	userID := uuid.New().String()

	_, err := service.AddAllergy(context.Background(), domain.AddAllergyRequest{Allergy: "Peanuts"}, userID)
	require.NoError(t, err)

	res, err := service.RemoveAllergy(context.Background(), domain.RemoveAllergyRequest{Allergy: "PEANUTS"}, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Allergies)

	reloaded, err := service.GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Allergies)
}

func TestAddStandardItemsAppendsToSlot(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository())
	userID := uuid.New().String()

	_, err := service.AddStandardItems(context.Background(), domain.AddStandardItemsRequest{
		Slot:  domain.SlotBreakfast,
		Items: "eggs, bread",
	}, userID)
	require.NoError(t, err)

	res, err := service.AddStandardItems(context.Background(), domain.AddStandardItemsRequest{
		Slot:  domain.SlotBreakfast,
		Items: "milk",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, []domain.StandardItem{
		{Name: "eggs"},
		{Name: "bread"},
		{Name: "milk"},
	}, res.StandardItems[domain.SlotBreakfast])
	assert.Empty(t, res.StandardItems[domain.SlotDinner])
}

func TestSetStandardItemsReplacesSlot(t *testing.T) {
	service := NewPreferenceService(newFakePreferenceRepository())
	userID := uuid.New().String()

	_, err := service.AddStandardItems(context.Background(), domain.AddStandardItemsRequest{
		Slot:  domain.SlotLunch,
		Items: "eggs, bread",
	}, userID)
	require.NoError(t, err)

	res, err := service.SetStandardItems(context.Background(), domain.SetStandardItemsRequest{
		Slot:  domain.SlotLunch,
		Items: []domain.StandardItem{{Name: "salad", Frequency: "daily"}},
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, []domain.StandardItem{{Name: "salad", Frequency: "daily"}}, res.StandardItems[domain.SlotLunch])
}
