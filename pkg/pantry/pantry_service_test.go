package pantry

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePantryRepository struct {
	items map[string]*entities.PantryItem
	order []string
}

func newFakePantryRepository() *fakePantryRepository {
	return &fakePantryRepository{items: make(map[string]*entities.PantryItem)}
}

func (r *fakePantryRepository) AddItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	r.order = append(r.order, item.ID.String())
	return nil
}

func (r *fakePantryRepository) GetItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakePantryRepository) UpdateItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) DeleteItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakePantryRepository) GetItems(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	items := make([]*entities.PantryItem, 0)
	for _, id := range r.order {
		item, ok := r.items[id]
		if ok && item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakePantryRepository) GetItemsByExpiryRange(_ context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error) {
	items := make([]*entities.PantryItem, 0)
	for _, id := range r.order {
		item, ok := r.items[id]
		if !ok || item.UserID.String() != userID || item.ExpirationDate == nil {
			continue
		}
		if !item.ExpirationDate.Before(startDate) && !item.ExpirationDate.After(endDate) {
			items = append(items, item)
		}
	}
	return items, nil
}

func TestAddPantryItemDefaultsToManualSource(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "  Milk  ",
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, "Milk", res.Name)
	assert.Equal(t, domain.SourceManual, res.Source)
	assert.Equal(t, domain.UrgencyNoDate, res.Urgency)
}

func TestAddPantryItemRejectsBlankName(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())

	_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{Name: "   "}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrEmptyItemName)
}

func TestAddPantryItemRejectsBadExpirationDate(t *testing.T) {
	service := NewPantryService(newFakePantryRepository())

	_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name:           "Milk",
		ExpirationDate: "03/14/2026",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestGetExpiringSoonFiltersWindow(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	userID := uuid.New()

	addItem := func(name string, daysOut *int) {
		item := &entities.PantryItem{
			ID:     uuid.New(),
			UserID: userID,
			Name:   name,
			Source: domain.SourceManual,
		}
		if daysOut != nil {
			date := time.Now().AddDate(0, 0, *daysOut)
			item.ExpirationDate = &date
		}
		require.NoError(t, repo.AddItem(context.Background(), item))
	}

	two := 2
	ten := 10
	negTwo := -2
	addItem("Yogurt", &two)
	addItem("Canned beans", &ten)
	addItem("Old lettuce", &negTwo)
	addItem("Rice", nil)

	items, err := service.GetExpiringSoon(context.Background(), userID.String())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Yogurt", items[0].Name)
}

func TestGetPantryStatsCountsBuckets(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)
	userID := uuid.New()

	addItem := func(name string, daysOut *int) {
		item := &entities.PantryItem{
			ID:     uuid.New(),
			UserID: userID,
			Name:   name,
			Source: domain.SourceManual,
		}
		if daysOut != nil {
			date := time.Now().AddDate(0, 0, *daysOut)
			item.ExpirationDate = &date
		}
		require.NoError(t, repo.AddItem(context.Background(), item))
	}

	one := 1
	ten := 10
	negOne := -1
	addItem("Yogurt", &one)
	addItem("Canned beans", &ten)
	addItem("Old lettuce", &negOne)
	addItem("Rice", nil)

	stats, err := service.GetPantryStats(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Equal(t, 1, stats.ExpiringSoonItems)
	assert.Equal(t, 1, stats.OkItems)
	assert.Equal(t, 1, stats.NoDateItems)
}

func TestUpdatePantryItemOwnershipEnforced(t *testing.T) {
	repo := newFakePantryRepository()
	service := NewPantryService(repo)

	owner := uuid.New()
	item := &entities.PantryItem{ID: uuid.New(), UserID: owner, Name: "Milk", Source: domain.SourceManual}
	require.NoError(t, repo.AddItem(context.Background(), item))

	err := service.UpdatePantryItem(context.Background(), item.ID.String(), domain.UpdatePantryItemRequest{Name: "Oat milk"}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}
