package reminder

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"Sue-Backend/pkg/notification"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReminderService interface {
		ScheduleDefrost(ctx context.Context, req domain.ScheduleDefrostRequest, userID, email string) (domain.ReminderResponse, error)
		ScheduleExpiration(ctx context.Context, req domain.ScheduleExpirationRequest, userID, email string) (domain.ReminderResponse, error)
		GetUpcomingReminders(ctx context.Context, userID string, limit int) ([]domain.ReminderResponse, error)
		CancelReminder(ctx context.Context, id string, userID string) error
	}

	reminderService struct {
		reminderRepository ReminderRepository
		notifier           notification.Notifier
	}
)

func NewReminderService(reminderRepository ReminderRepository, notifier notification.Notifier) ReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		notifier:           notifier,
	}
}

func (s *reminderService) ScheduleDefrost(ctx context.Context, req domain.ScheduleDefrostRequest, userID, email string) (domain.ReminderResponse, error) {
	useDate, err := time.Parse("2006-01-02", req.UseDate)
	if err != nil {
		return domain.ReminderResponse{}, domain.ErrInvalidReminderDate
	}

	scheduledFor := DefrostReminderDate(useDate)
	body := fmt.Sprintf("Don't forget to defrost %s for tomorrow!", req.ItemName)

	return s.schedule(ctx, userID, email, domain.ReminderTypeDefrost, "Defrost Reminder", body, DefrostMessage(req.ItemName), scheduledFor)
}

func (s *reminderService) ScheduleExpiration(ctx context.Context, req domain.ScheduleExpirationRequest, userID, email string) (domain.ReminderResponse, error) {
	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.ReminderResponse{}, domain.ErrInvalidReminderDate
	}

	scheduledFor := ExpirationReminderDate(expirationDate)
	body := fmt.Sprintf("%s expires in 2 days. Use it soon!", req.ItemName)

	return s.schedule(ctx, userID, email, domain.ReminderTypeExpiration, "Expiring Soon", body, ExpirationMessage(req.ItemName), scheduledFor)
}

// schedule performs the dual write: notification first, reminder record
// second. The two are not transactional; a failed record write leaves the
// notification pending and is only logged.
func (s *reminderService) schedule(ctx context.Context, userID, email, reminderType, title, body, message string, scheduledFor time.Time) (domain.ReminderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReminderResponse{}, domain.ErrParseUUID
	}

	notificationID, err := s.notifier.Schedule(email, title, body, scheduledFor)
	if err != nil {
		return domain.ReminderResponse{}, err
	}

	reminder := &entities.Reminder{
		ID:             uuid.New(),
		UserID:         userUUID,
		Type:           reminderType,
		Message:        message,
		ScheduledFor:   scheduledFor,
		NotificationID: notificationID,
	}

	if err := s.reminderRepository.AddReminder(ctx, reminder); err != nil {
		log.Printf("Error persisting reminder after scheduling notification %s: %v", notificationID, err)
		return domain.ReminderResponse{}, err
	}

	return toReminderResponse(reminder), nil
}

func (s *reminderService) GetUpcomingReminders(ctx context.Context, userID string, limit int) ([]domain.ReminderResponse, error) {
	reminders, err := s.reminderRepository.GetUpcomingReminders(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(reminders) > limit {
		reminders = reminders[:limit]
	}

	response := make([]domain.ReminderResponse, 0, len(reminders))
	for _, reminder := range reminders {
		response = append(response, toReminderResponse(reminder))
	}

	return response, nil
}

func (s *reminderService) CancelReminder(ctx context.Context, id string, userID string) error {
	reminder, err := s.reminderRepository.GetReminderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReminderNotFound
		}
		return err
	}

	if reminder.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if reminder.NotificationID != "" {
		if err := s.notifier.Cancel(reminder.NotificationID); err != nil {
			log.Printf("Error cancelling notification %s: %v", reminder.NotificationID, err)
		}
	}

	return s.reminderRepository.DeleteReminder(ctx, id)
}

func toReminderResponse(reminder *entities.Reminder) domain.ReminderResponse {
	return domain.ReminderResponse{
		ID:           reminder.ID.String(),
		Type:         reminder.Type,
		Message:      reminder.Message,
		ScheduledFor: reminder.ScheduledFor,
		CreatedAt:    reminder.CreatedAt,
	}
}
