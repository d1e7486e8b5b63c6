package grocery

import (
	"Sue-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		CreateList(ctx context.Context, list *entities.GroceryList) error
		GetListByID(ctx context.Context, id string) (*entities.GroceryList, error)
		UpdateList(ctx context.Context, list *entities.GroceryList) error
		DeleteList(ctx context.Context, id string) error
		GetLists(ctx context.Context, userID string) ([]*entities.GroceryList, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) CreateList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *groceryRepository) GetListByID(ctx context.Context, id string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) UpdateList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *groceryRepository) DeleteList(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryList{}).Error
}

func (r *groceryRepository) GetLists(ctx context.Context, userID string) ([]*entities.GroceryList, error) {
	var lists []*entities.GroceryList

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&lists).Error; err != nil {
		return nil, err
	}

	return lists, nil
}
