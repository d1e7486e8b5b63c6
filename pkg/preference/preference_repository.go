package preference

import (
	"Sue-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	PreferenceRepository interface {
		GetByUserID(ctx context.Context, userID string) (*entities.UserPreference, error)
		Save(ctx context.Context, preference *entities.UserPreference) error
	}

	preferenceRepository struct {
		db *gorm.DB
	}
)

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (*entities.UserPreference, error) {
	var preference entities.UserPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&preference).Error; err != nil {
		return nil, err
	}
	return &preference, nil
}

// Save upserts the whole preferences document keyed by user.
func (r *preferenceRepository) Save(ctx context.Context, preference *entities.UserPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(preference).Error
}
