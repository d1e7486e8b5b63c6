package reminder

import (
	"Sue-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ReminderRepository interface {
		AddReminder(ctx context.Context, reminder *entities.Reminder) error
		GetReminderByID(ctx context.Context, id string) (*entities.Reminder, error)
		DeleteReminder(ctx context.Context, id string) error
		GetUpcomingReminders(ctx context.Context, userID string, after time.Time) ([]*entities.Reminder, error)
	}

	reminderRepository struct {
		db *gorm.DB
	}
)

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) AddReminder(ctx context.Context, reminder *entities.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) GetReminderByID(ctx context.Context, id string) (*entities.Reminder, error) {
	var reminder entities.Reminder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) DeleteReminder(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Reminder{}).Error
}

func (r *reminderRepository) GetUpcomingReminders(ctx context.Context, userID string, after time.Time) ([]*entities.Reminder, error) {
	var reminders []*entities.Reminder

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_for > ?", userID, after).
		Order("scheduled_for asc").
		Find(&reminders).Error; err != nil {
		return nil, err
	}

	return reminders, nil
}
