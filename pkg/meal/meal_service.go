package meal

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"Sue-Backend/pkg/reminder"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest, userID, email string) (domain.MealPlanResponse, error)
		UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) error
		DeleteMealPlan(ctx context.Context, id string, userID string) error
		GetMealPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error)
		GetThisWeekMealPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error)
	}

	mealService struct {
		mealRepository  MealRepository
		reminderService reminder.ReminderService
	}
)

func NewMealService(mealRepository MealRepository, reminderService reminder.ReminderService) MealService {
	return &mealService{
		mealRepository:  mealRepository,
		reminderService: reminderService,
	}
}

func (s *mealService) AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest, userID, email string) (domain.MealPlanResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidMealDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	ingredients := req.IngredientsUsed
	if ingredients == nil {
		ingredients = []string{}
	}
	encoded, err := json.Marshal(ingredients)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	meal := &entities.MealPlan{
		ID:              uuid.New(),
		UserID:          userUUID,
		Date:            date,
		MealName:        req.MealName,
		IngredientsUsed: string(encoded),
	}

	if err := s.mealRepository.AddMealPlan(ctx, meal); err != nil {
		return domain.MealPlanResponse{}, err
	}

	// Frozen ingredients get a defrost reminder one day ahead. The meal plan
	// stands even when scheduling fails.
	if req.DefrostItem != "" {
		_, err := s.reminderService.ScheduleDefrost(ctx, domain.ScheduleDefrostRequest{
			ItemName: req.DefrostItem,
			UseDate:  req.Date,
		}, userID, email)
		if err != nil {
			log.Printf("Error scheduling defrost reminder for meal %s: %v", meal.ID, err)
		}
	}

	return toMealPlanResponse(meal), nil
}

func (s *mealService) UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) error {
	meal, err := s.getOwnedMealPlan(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.ErrInvalidMealDate
		}
		meal.Date = date
	}
	if req.MealName != "" {
		meal.MealName = req.MealName
	}
	if req.IngredientsUsed != nil {
		encoded, err := json.Marshal(req.IngredientsUsed)
		if err != nil {
			return err
		}
		meal.IngredientsUsed = string(encoded)
	}

	return s.mealRepository.UpdateMealPlan(ctx, meal)
}

func (s *mealService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	meal, err := s.getOwnedMealPlan(ctx, id, userID)
	if err != nil {
		return err
	}

	return s.mealRepository.DeleteMealPlan(ctx, meal.ID.String())
}

func (s *mealService) GetMealPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error) {
	meals, err := s.mealRepository.GetMealPlans(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealPlanResponse, 0, len(meals))
	for _, meal := range meals {
		response = append(response, toMealPlanResponse(meal))
	}

	return response, nil
}

// GetThisWeekMealPlans windows meal plans to today <= date < today+7.
func (s *mealService) GetThisWeekMealPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error) {
	meals, err := s.mealRepository.GetMealPlans(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	weekFromNow := today.AddDate(0, 0, 7)

	response := make([]domain.MealPlanResponse, 0)
	for _, meal := range meals {
		if !meal.Date.Before(today) && meal.Date.Before(weekFromNow) {
			response = append(response, toMealPlanResponse(meal))
		}
	}

	return response, nil
}

func (s *mealService) getOwnedMealPlan(ctx context.Context, id string, userID string) (*entities.MealPlan, error) {
	meal, err := s.mealRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}

	if meal.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return meal, nil
}

func toMealPlanResponse(meal *entities.MealPlan) domain.MealPlanResponse {
	var ingredients []string
	if err := json.Unmarshal([]byte(meal.IngredientsUsed), &ingredients); err != nil {
		ingredients = []string{}
	}

	return domain.MealPlanResponse{
		ID:              meal.ID.String(),
		Date:            meal.Date,
		MealName:        meal.MealName,
		IngredientsUsed: ingredients,
		CreatedAt:       meal.CreatedAt,
	}
}
