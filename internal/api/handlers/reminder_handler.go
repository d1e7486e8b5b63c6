package handlers

import (
	"Sue-Backend/domain"
	"Sue-Backend/internal/api/presenters"
	"Sue-Backend/pkg/reminder"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type (
	ReminderHandler interface {
		ScheduleDefrost(c *fiber.Ctx) error
		ScheduleExpiration(c *fiber.Ctx) error
		GetUpcomingReminders(c *fiber.Ctx) error
		CancelReminder(c *fiber.Ctx) error
	}

	reminderHandler struct {
		reminderService reminder.ReminderService
		validator       *validator.Validate
	}
)

func NewReminderHandler(reminderService reminder.ReminderService, validator *validator.Validate) ReminderHandler {
	return &reminderHandler{
		reminderService: reminderService,
		validator:       validator,
	}
}

func (h *reminderHandler) ScheduleDefrost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	email := c.Locals("user_email").(string)
	req := new(domain.ScheduleDefrostRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleReminder, err)
	}

	res, err := h.reminderService.ScheduleDefrost(c.Context(), *req, userID, email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleReminder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessScheduleReminder)
}

func (h *reminderHandler) ScheduleExpiration(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	email := c.Locals("user_email").(string)
	req := new(domain.ScheduleExpirationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleReminder, err)
	}

	res, err := h.reminderService.ScheduleExpiration(c.Context(), *req, userID, email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleReminder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessScheduleReminder)
}

func (h *reminderHandler) GetUpcomingReminders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	reminders, err := h.reminderService.GetUpcomingReminders(c.Context(), userID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReminders, err)
	}

	return presenters.SuccessResponse(c, reminders, fiber.StatusOK, domain.MessageSuccessGetReminders)
}

func (h *reminderHandler) CancelReminder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reminderID := c.Params("id")

	if err := h.reminderService.CancelReminder(c.Context(), reminderID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelReminder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelReminder)
}
