package assistant

import (
	"Sue-Backend/domain"
	"Sue-Backend/pkg/openai"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAIClient struct {
	configured bool
	reply      string
	err        error
	requests   [][]openai.Message
}

func (c *fakeAIClient) Configured() bool {
	return c.configured
}

func (c *fakeAIClient) ChatCompletion(_ context.Context, messages []openai.Message, _ float64, _ int) (string, error) {
	c.requests = append(c.requests, messages)
	return c.reply, c.err
}

func (c *fakeAIClient) VisionCompletion(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return c.reply, c.err
}

type fakePantryService struct {
	items    []domain.PantryItemResponse
	expiring []domain.PantryItemResponse
}

func (s *fakePantryService) AddPantryItem(_ context.Context, _ domain.AddPantryItemRequest, _ string) (domain.PantryItemResponse, error) {
	return domain.PantryItemResponse{}, nil
}
func (s *fakePantryService) UpdatePantryItem(_ context.Context, _ string, _ domain.UpdatePantryItemRequest, _ string) error {
	return nil
}
func (s *fakePantryService) DeletePantryItem(_ context.Context, _ string, _ string) error {
	return nil
}
func (s *fakePantryService) GetPantryItems(_ context.Context, _ string) ([]domain.PantryItemResponse, error) {
	return s.items, nil
}
func (s *fakePantryService) GetPantryItemByID(_ context.Context, _ string, _ string) (domain.PantryItemResponse, error) {
	return domain.PantryItemResponse{}, nil
}
func (s *fakePantryService) GetExpiringSoon(_ context.Context, _ string) ([]domain.PantryItemResponse, error) {
	return s.expiring, nil
}
func (s *fakePantryService) GetPantryStats(_ context.Context, _ string) (domain.PantryStatsResponse, error) {
	return domain.PantryStatsResponse{}, nil
}

type fakeMealService struct{}

func (s *fakeMealService) AddMealPlan(_ context.Context, _ domain.AddMealPlanRequest, _, _ string) (domain.MealPlanResponse, error) {
	return domain.MealPlanResponse{}, nil
}
func (s *fakeMealService) UpdateMealPlan(_ context.Context, _ string, _ domain.UpdateMealPlanRequest, _ string) error {
	return nil
}
func (s *fakeMealService) DeleteMealPlan(_ context.Context, _ string, _ string) error {
	return nil
}
func (s *fakeMealService) GetMealPlans(_ context.Context, _ string) ([]domain.MealPlanResponse, error) {
	return nil, nil
}
func (s *fakeMealService) GetThisWeekMealPlans(_ context.Context, _ string) ([]domain.MealPlanResponse, error) {
	return nil, nil
}

type fakeGroceryService struct{}

func (s *fakeGroceryService) CreateGroceryList(_ context.Context, _ domain.CreateGroceryListRequest, _ string) (domain.GroceryListResponse, error) {
	return domain.GroceryListResponse{}, nil
}
func (s *fakeGroceryService) UpdateGroceryList(_ context.Context, _ string, _ domain.UpdateGroceryListRequest, _ string) error {
	return nil
}
func (s *fakeGroceryService) DeleteGroceryList(_ context.Context, _ string, _ string) error {
	return nil
}
func (s *fakeGroceryService) GetGroceryLists(_ context.Context, _ string) ([]domain.GroceryListResponse, error) {
	return nil, nil
}
func (s *fakeGroceryService) GetGroceryListByID(_ context.Context, _ string, _ string) (domain.GroceryListResponse, error) {
	return domain.GroceryListResponse{}, nil
}
func (s *fakeGroceryService) AddItem(_ context.Context, _ string, _ domain.AddGroceryItemRequest, _ string) error {
	return nil
}
func (s *fakeGroceryService) RemoveItem(_ context.Context, _ string, _ domain.RemoveGroceryItemRequest, _ string) error {
	return nil
}
func (s *fakeGroceryService) CompileLists(_ context.Context, _ domain.CompileListsRequest, _ string) (domain.GroceryListResponse, error) {
	return domain.GroceryListResponse{}, nil
}

type fakePreferenceService struct {
	preferences domain.PreferencesResponse
}

func (s *fakePreferenceService) GetPreferences(_ context.Context, _ string) (domain.PreferencesResponse, error) {
	return s.preferences, nil
}
func (s *fakePreferenceService) AddAllergy(_ context.Context, _ domain.AddAllergyRequest, _ string) (domain.PreferencesResponse, error) {
	return s.preferences, nil
}
func (s *fakePreferenceService) RemoveAllergy(_ context.Context, _ domain.RemoveAllergyRequest, _ string) (domain.PreferencesResponse, error) {
	return s.preferences, nil
}
func (s *fakePreferenceService) AddStandardItems(_ context.Context, _ domain.AddStandardItemsRequest, _ string) (domain.PreferencesResponse, error) {
	return s.preferences, nil
}
func (s *fakePreferenceService) SetStandardItems(_ context.Context, _ domain.SetStandardItemsRequest, _ string) (domain.PreferencesResponse, error) {
	return s.preferences, nil
}

func newTestService(client *fakeAIClient, pantryService *fakePantryService, preferenceService *fakePreferenceService) AssistantService {
	if pantryService == nil {
		pantryService = &fakePantryService{}
	}
	if preferenceService == nil {
		preferenceService = &fakePreferenceService{}
	}
	return NewAssistantService(client, pantryService, &fakeMealService{}, &fakeGroceryService{}, preferenceService)
}

func TestChatUnconfiguredReturnsApology(t *testing.T) {
	client := &fakeAIClient{configured: false}
	service := newTestService(client, nil, nil)

	res, err := service.Chat(context.Background(), domain.ChatRequest{Message: "What should I cook?"}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, domain.MessageNotConfigured, res.Reply)
	assert.Empty(t, client.requests, "no API call should be made")
}

func TestChatSendsSystemPromptAndContext(t *testing.T) {
	client := &fakeAIClient{configured: true, reply: "Try a stir fry."}
	preferences := &fakePreferenceService{preferences: domain.PreferencesResponse{Allergies: []string{"Peanuts"}}}
	service := newTestService(client, nil, preferences)

	res, err := service.Chat(context.Background(), domain.ChatRequest{Message: "What should I cook?"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Try a stir fry.", res.Reply)

	require.Len(t, client.requests, 1)
	messages := client.requests[0]
	require.Len(t, messages, 3)
	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "You are Sue")
	assert.Contains(t, messages[1].Content, "- Peanuts")
	assert.Equal(t, "What should I cook?", messages[2].Content)
}

func TestExtractIngredientsUnconfiguredFails(t *testing.T) {
	service := newTestService(&fakeAIClient{configured: false}, nil, nil)

	_, err := service.ExtractIngredients(context.Background(), domain.ExtractIngredientsRequest{RecipeText: "pasta"})
	assert.ErrorIs(t, err, domain.ErrAIKeyMissing)
}

func TestExtractIngredientsParsesFencedArray(t *testing.T) {
	client := &fakeAIClient{
		configured: true,
		reply:      "```json\n[{\"name\": \"Flour\", \"quantity\": \"200g\", \"category\": \"baking\"}]\n```",
	}
	service := newTestService(client, nil, nil)

	res, err := service.ExtractIngredients(context.Background(), domain.ExtractIngredientsRequest{RecipeText: "pancakes"})
	require.NoError(t, err)

	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, "Flour", res.Ingredients[0].Name)
	assert.Equal(t, "200g", res.Ingredients[0].Quantity)
}

func TestExtractIngredientsRejectsMalformedReply(t *testing.T) {
	client := &fakeAIClient{configured: true, reply: "Sure! Here are the ingredients you need."}
	service := newTestService(client, nil, nil)

	_, err := service.ExtractIngredients(context.Background(), domain.ExtractIngredientsRequest{RecipeText: "pancakes"})
	assert.ErrorIs(t, err, domain.ErrInvalidAIResponse)
}

func TestGenerateCookingStepsSegmentsReply(t *testing.T) {
	client := &fakeAIClient{
		configured: true,
		reply:      "1. Boil the pasta\n2. Make the sauce\n3. Combine and serve",
	}
	service := newTestService(client, nil, nil)

	res, err := service.GenerateCookingSteps(context.Background(), domain.CookingStepsRequest{Recipe: "carbonara"}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Boil the pasta", "Make the sauce", "Combine and serve"}, res.Steps)
}

func TestSuggestUseUpIncludesExpiringAndAllergies(t *testing.T) {
	client := &fakeAIClient{configured: true, reply: "Make a spinach omelette."}
	pantryService := &fakePantryService{
		expiring: []domain.PantryItemResponse{{Name: "Spinach"}},
	}
	preferences := &fakePreferenceService{preferences: domain.PreferencesResponse{Allergies: []string{"Shellfish"}}}
	service := newTestService(client, pantryService, preferences)

	res, err := service.SuggestUseUp(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Make a spinach omelette.", res.Suggestion)

	require.Len(t, client.requests, 1)
	prompt := client.requests[0][1].Content
	assert.Contains(t, prompt, "Spinach")
	assert.Contains(t, prompt, "Shellfish")
}
