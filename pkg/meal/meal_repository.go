package meal

import (
	"Sue-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		AddMealPlan(ctx context.Context, meal *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, meal *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id string) error
		GetMealPlans(ctx context.Context, userID string) ([]*entities.MealPlan, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) AddMealPlan(ctx context.Context, meal *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var meal entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) UpdateMealPlan(ctx context.Context, meal *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealPlan{}).Error
}

func (r *mealRepository) GetMealPlans(ctx context.Context, userID string) ([]*entities.MealPlan, error) {
	var meals []*entities.MealPlan

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	return meals, nil
}
