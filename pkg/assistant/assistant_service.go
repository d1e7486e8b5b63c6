package assistant

import (
	"Sue-Backend/domain"
	"Sue-Backend/pkg/grocery"
	"Sue-Backend/pkg/meal"
	"Sue-Backend/pkg/openai"
	"Sue-Backend/pkg/pantry"
	"Sue-Backend/pkg/preference"
	"context"
	"encoding/json"
	"log"
)

type (
	AssistantService interface {
		Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
		ExtractIngredients(ctx context.Context, req domain.ExtractIngredientsRequest) (domain.ExtractIngredientsResponse, error)
		GenerateCookingSteps(ctx context.Context, req domain.CookingStepsRequest, userID string) (domain.CookingStepsResponse, error)
		SuggestUseUp(ctx context.Context, userID string) (domain.UseUpSuggestionResponse, error)
	}

	assistantService struct {
		aiClient          openai.Client
		pantryService     pantry.PantryService
		mealService       meal.MealService
		groceryService    grocery.GroceryService
		preferenceService preference.PreferenceService
	}
)

func NewAssistantService(
	aiClient openai.Client,
	pantryService pantry.PantryService,
	mealService meal.MealService,
	groceryService grocery.GroceryService,
	preferenceService preference.PreferenceService,
) AssistantService {
	return &assistantService{
		aiClient:          aiClient,
		pantryService:     pantryService,
		mealService:       mealService,
		groceryService:    groceryService,
		preferenceService: preferenceService,
	}
}

// Chat answers a free-form message with the user's pantry, meal plans,
// grocery lists and preferences as context. When no API key is configured
// the fixed apology reply is returned instead of an error.
func (s *assistantService) Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	if !s.aiClient.Configured() {
		return domain.ChatResponse{Reply: domain.MessageNotConfigured}, nil
	}

	messages := []openai.Message{
		{Role: "system", Content: sueSystemPrompt},
		{Role: "system", Content: s.buildUserContext(ctx, userID)},
		{Role: "user", Content: req.Message},
	}

	reply, err := s.aiClient.ChatCompletion(ctx, messages, 0.7, 500)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	if reply == "" {
		reply = domain.MessageFallbackReply
	}

	return domain.ChatResponse{Reply: reply}, nil
}

// ExtractIngredients turns pasted recipe text into structured grocery items.
// The model must return a bare JSON array; anything else is rejected.
func (s *assistantService) ExtractIngredients(ctx context.Context, req domain.ExtractIngredientsRequest) (domain.ExtractIngredientsResponse, error) {
	if !s.aiClient.Configured() {
		return domain.ExtractIngredientsResponse{}, domain.ErrAIKeyMissing
	}

	messages := []openai.Message{
		{Role: "system", Content: extractIngredientsPrompt},
		{Role: "user", Content: req.RecipeText},
	}

	content, err := s.aiClient.ChatCompletion(ctx, messages, 0.3, 1000)
	if err != nil {
		return domain.ExtractIngredientsResponse{}, err
	}

	raw := openai.ExtractJSONArray(content)
	if raw == "" {
		return domain.ExtractIngredientsResponse{}, domain.ErrInvalidAIResponse
	}

	var ingredients []domain.GroceryItem
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return domain.ExtractIngredientsResponse{}, domain.ErrInvalidAIResponse
	}

	return domain.ExtractIngredientsResponse{Ingredients: ingredients}, nil
}

func (s *assistantService) GenerateCookingSteps(ctx context.Context, req domain.CookingStepsRequest, userID string) (domain.CookingStepsResponse, error) {
	if !s.aiClient.Configured() {
		return domain.CookingStepsResponse{}, domain.ErrAIKeyMissing
	}

	messages := []openai.Message{
		{Role: "system", Content: sueSystemPrompt},
		{Role: "system", Content: s.buildUserContext(ctx, userID)},
		{Role: "user", Content: cookingStepsPromptPrefix + req.Recipe},
	}

	reply, err := s.aiClient.ChatCompletion(ctx, messages, 0.7, 500)
	if err != nil {
		return domain.CookingStepsResponse{}, err
	}

	return domain.CookingStepsResponse{Steps: SegmentSteps(reply)}, nil
}

// SuggestUseUp asks for a recipe around items expiring within the soon
// window, honoring recorded allergies.
func (s *assistantService) SuggestUseUp(ctx context.Context, userID string) (domain.UseUpSuggestionResponse, error) {
	if !s.aiClient.Configured() {
		return domain.UseUpSuggestionResponse{Suggestion: domain.MessageNotConfigured}, nil
	}

	expiring, err := s.pantryService.GetExpiringSoon(ctx, userID)
	if err != nil {
		return domain.UseUpSuggestionResponse{}, err
	}

	preferences, err := s.preferenceService.GetPreferences(ctx, userID)
	if err != nil {
		return domain.UseUpSuggestionResponse{}, err
	}

	messages := []openai.Message{
		{Role: "system", Content: sueSystemPrompt},
		{Role: "user", Content: BuildUseUpPrompt(expiring, preferences.Allergies)},
	}

	suggestion, err := s.aiClient.ChatCompletion(ctx, messages, 0.7, 500)
	if err != nil {
		return domain.UseUpSuggestionResponse{}, err
	}
	if suggestion == "" {
		suggestion = domain.MessageFallbackReply
	}

	return domain.UseUpSuggestionResponse{Suggestion: suggestion}, nil
}

// buildUserContext gathers state best-effort: a failing lookup degrades to an
// empty section rather than failing the whole conversation.
func (s *assistantService) buildUserContext(ctx context.Context, userID string) string {
	pantryItems, err := s.pantryService.GetPantryItems(ctx, userID)
	if err != nil {
		log.Printf("Error loading pantry for assistant context: %v", err)
	}

	meals, err := s.mealService.GetMealPlans(ctx, userID)
	if err != nil {
		log.Printf("Error loading meal plans for assistant context: %v", err)
	}

	lists, err := s.groceryService.GetGroceryLists(ctx, userID)
	if err != nil {
		log.Printf("Error loading grocery lists for assistant context: %v", err)
	}

	preferences, err := s.preferenceService.GetPreferences(ctx, userID)
	if err != nil {
		log.Printf("Error loading preferences for assistant context: %v", err)
	}

	return BuildContext(pantryItems, meals, lists, preferences)
}
