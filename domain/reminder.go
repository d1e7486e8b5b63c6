package domain

import (
	"errors"
	"time"
)

const (
	ReminderTypeDefrost    = "defrost"
	ReminderTypeExpiration = "expiration"
)

var (
	MessageSuccessScheduleReminder = "reminder scheduled successfully"
	MessageSuccessGetReminders     = "reminders retrieved successfully"
	MessageSuccessCancelReminder   = "reminder cancelled successfully"

	MessageFailedScheduleReminder = "failed to schedule reminder"
	MessageFailedGetReminders     = "failed to retrieve reminders"
	MessageFailedCancelReminder   = "failed to cancel reminder"

	ErrReminderNotFound    = errors.New("reminder not found")
	ErrInvalidReminderDate = errors.New("invalid reminder date")
)

type (
	ScheduleDefrostRequest struct {
		ItemName string `json:"item_name" validate:"required"`
		UseDate  string `json:"use_date" validate:"required"`
	}

	ScheduleExpirationRequest struct {
		ItemName       string `json:"item_name" validate:"required"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
	}

	ReminderResponse struct {
		ID           string    `json:"id"`
		Type         string    `json:"type"`
		Message      string    `json:"message"`
		ScheduledFor time.Time `json:"scheduled_for"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
