package meal

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMealRepository struct {
	meals map[string]*entities.MealPlan
	order []string
}

func newFakeMealRepository() *fakeMealRepository {
	return &fakeMealRepository{meals: make(map[string]*entities.MealPlan)}
}

func (r *fakeMealRepository) AddMealPlan(_ context.Context, meal *entities.MealPlan) error {
	r.meals[meal.ID.String()] = meal
	r.order = append(r.order, meal.ID.String())
	return nil
}

func (r *fakeMealRepository) GetMealPlanByID(_ context.Context, id string) (*entities.MealPlan, error) {
	meal, ok := r.meals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return meal, nil
}

func (r *fakeMealRepository) UpdateMealPlan(_ context.Context, meal *entities.MealPlan) error {
	r.meals[meal.ID.String()] = meal
	return nil
}

func (r *fakeMealRepository) DeleteMealPlan(_ context.Context, id string) error {
	delete(r.meals, id)
	return nil
}

func (r *fakeMealRepository) GetMealPlans(_ context.Context, userID string) ([]*entities.MealPlan, error) {
	meals := make([]*entities.MealPlan, 0)
	for _, id := range r.order {
		meal, ok := r.meals[id]
		if ok && meal.UserID.String() == userID {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

type fakeReminderService struct {
	defrostRequests []domain.ScheduleDefrostRequest
}

func (s *fakeReminderService) ScheduleDefrost(_ context.Context, req domain.ScheduleDefrostRequest, _, _ string) (domain.ReminderResponse, error) {
	s.defrostRequests = append(s.defrostRequests, req)
	return domain.ReminderResponse{ID: uuid.New().String()}, nil
}

func (s *fakeReminderService) ScheduleExpiration(_ context.Context, _ domain.ScheduleExpirationRequest, _, _ string) (domain.ReminderResponse, error) {
	return domain.ReminderResponse{}, nil
}

func (s *fakeReminderService) GetUpcomingReminders(_ context.Context, _ string, _ int) ([]domain.ReminderResponse, error) {
	return nil, nil
}

func (s *fakeReminderService) CancelReminder(_ context.Context, _, _ string) error {
	return nil
}

func TestAddMealPlanSchedulesDefrostReminder(t *testing.T) {
	reminders := &fakeReminderService{}
	service := NewMealService(newFakeMealRepository(), reminders)

	res, err := service.AddMealPlan(context.Background(), domain.AddMealPlanRequest{
		Date:            "2026-03-10",
		MealName:        "Chicken stir fry",
		IngredientsUsed: []string{"chicken", "broccoli"},
		DefrostItem:     "chicken",
	}, uuid.New().String(), "cook@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Chicken stir fry", res.MealName)
	require.Len(t, reminders.defrostRequests, 1)
	assert.Equal(t, "chicken", reminders.defrostRequests[0].ItemName)
	assert.Equal(t, "2026-03-10", reminders.defrostRequests[0].UseDate)
}

func TestAddMealPlanWithoutDefrostItem(t *testing.T) {
	reminders := &fakeReminderService{}
	service := NewMealService(newFakeMealRepository(), reminders)

	_, err := service.AddMealPlan(context.Background(), domain.AddMealPlanRequest{
		Date:     "2026-03-10",
		MealName: "Salad",
	}, uuid.New().String(), "cook@example.com")
	require.NoError(t, err)

	assert.Empty(t, reminders.defrostRequests)
}

func TestAddMealPlanRejectsBadDate(t *testing.T) {
	service := NewMealService(newFakeMealRepository(), &fakeReminderService{})

	_, err := service.AddMealPlan(context.Background(), domain.AddMealPlanRequest{
		Date:     "10-03-2026",
		MealName: "Salad",
	}, uuid.New().String(), "cook@example.com")

	assert.ErrorIs(t, err, domain.ErrInvalidMealDate)
}

func TestGetThisWeekMealPlansWindow(t *testing.T) {
	repo := newFakeMealRepository()
	service := NewMealService(repo, &fakeReminderService{})
	userID := uuid.New()

	today := time.Now().Truncate(24 * time.Hour)
	addMeal := func(name string, date time.Time) {
		require.NoError(t, repo.AddMealPlan(context.Background(), &entities.MealPlan{
			ID:              uuid.New(),
			UserID:          userID,
			Date:            date,
			MealName:        name,
			IngredientsUsed: "[]",
		}))
	}

	addMeal("yesterday", today.AddDate(0, 0, -1))
	addMeal("today", today)
	addMeal("in six days", today.AddDate(0, 0, 6))
	addMeal("in seven days", today.AddDate(0, 0, 7))

	meals, err := service.GetThisWeekMealPlans(context.Background(), userID.String())
	require.NoError(t, err)

	names := make([]string, 0, len(meals))
	for _, meal := range meals {
		names = append(names, meal.MealName)
	}
	assert.Equal(t, []string{"today", "in six days"}, names)
}

func TestMealPlanOwnershipEnforced(t *testing.T) {
	repo := newFakeMealRepository()
	service := NewMealService(repo, &fakeReminderService{})

	owner := uuid.New()
	meal := &entities.MealPlan{
		ID:              uuid.New(),
		UserID:          owner,
		Date:            time.Now(),
		MealName:        "Tacos",
		IngredientsUsed: "[]",
	}
	require.NoError(t, repo.AddMealPlan(context.Background(), meal))

	err := service.DeleteMealPlan(context.Background(), meal.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}
