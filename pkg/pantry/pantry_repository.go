package pantry

import (
	"Sue-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddItem(ctx context.Context, item *entities.PantryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetItems(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiration_date asc NULLS LAST").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *pantryRepository) GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiration_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}
