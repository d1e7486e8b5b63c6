package handlers

import (
	"Sue-Backend/domain"
	"Sue-Backend/internal/api/presenters"
	"Sue-Backend/pkg/preference"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PreferenceHandler interface {
		GetPreferences(c *fiber.Ctx) error
		AddAllergy(c *fiber.Ctx) error
		RemoveAllergy(c *fiber.Ctx) error
		AddStandardItems(c *fiber.Ctx) error
		SetStandardItems(c *fiber.Ctx) error
	}

	preferenceHandler struct {
		preferenceService preference.PreferenceService
		validator         *validator.Validate
	}
)

func NewPreferenceHandler(preferenceService preference.PreferenceService, validator *validator.Validate) PreferenceHandler {
	return &preferenceHandler{
		preferenceService: preferenceService,
		validator:         validator,
	}
}

func (h *preferenceHandler) GetPreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.preferenceService.GetPreferences(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPreferences, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *preferenceHandler) AddAllergy(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddAllergyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddAllergy, err)
	}

	res, err := h.preferenceService.AddAllergy(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddAllergy, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddAllergy)
}

func (h *preferenceHandler) RemoveAllergy(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RemoveAllergyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveAllergy, err)
	}

	res, err := h.preferenceService.RemoveAllergy(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveAllergy, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveAllergy)
}

func (h *preferenceHandler) AddStandardItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddStandardItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddStandardItems, err)
	}

	res, err := h.preferenceService.AddStandardItems(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddStandardItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddStandardItems)
}

func (h *preferenceHandler) SetStandardItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetStandardItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetStandardItems, err)
	}

	res, err := h.preferenceService.SetStandardItems(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetStandardItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetStandardItems)
}
