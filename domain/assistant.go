package domain

import (
	"errors"
)

// Returned on the conversational path when no API key is configured. The
// structured-extraction paths return ErrAIKeyMissing instead.
const MessageNotConfigured = "I'm sorry, but I'm not properly configured. Please add your OpenAI API key to continue."

const MessageFallbackReply = "I'm sorry, I couldn't process that request."

var (
	MessageSuccessChat               = "assistant reply generated successfully"
	MessageSuccessExtractIngredients = "ingredients extracted successfully"
	MessageSuccessCookingSteps       = "cooking steps generated successfully"
	MessageSuccessUseUpSuggestion    = "use-up suggestion generated successfully"

	MessageFailedChat               = "failed to generate assistant reply"
	MessageFailedExtractIngredients = "failed to extract ingredients"
	MessageFailedCookingSteps       = "failed to generate cooking steps"
	MessageFailedUseUpSuggestion    = "failed to generate use-up suggestion"

	ErrAIKeyMissing      = errors.New("openai api key not configured")
	ErrAIRequestFailed   = errors.New("openai request failed")
	ErrInvalidAIResponse = errors.New("invalid AI response shape")
)

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}

	ExtractIngredientsRequest struct {
		RecipeText string `json:"recipe_text" validate:"required"`
	}

	ExtractIngredientsResponse struct {
		Ingredients []GroceryItem `json:"ingredients"`
	}

	CookingStepsRequest struct {
		Recipe string `json:"recipe" validate:"required"`
	}

	CookingStepsResponse struct {
		Steps []string `json:"steps"`
	}

	UseUpSuggestionResponse struct {
		Suggestion string `json:"suggestion"`
	}
)
