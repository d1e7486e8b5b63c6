package assistant

import (
	"Sue-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildContextEmptyState(t *testing.T) {
	context := BuildContext(nil, nil, nil, domain.PreferencesResponse{})

	assert.Contains(t, context, "No items in pantry")
	assert.Contains(t, context, "No meals planned")
	assert.Contains(t, context, "No grocery lists")
	assert.NotContains(t, context, "Allergies")
}

func TestBuildContextRendersPantryAndMeals(t *testing.T) {
	expiry := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	pantry := []domain.PantryItemResponse{
		{Name: "Milk", Quantity: "1L", ExpirationDate: &expiry},
		{Name: "Rice"},
	}
	meals := []domain.MealPlanResponse{
		{MealName: "Tacos", Date: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)},
	}
	lists := []domain.GroceryListResponse{
		{Name: "Weekly", Items: []domain.GroceryItem{{Name: "Eggs"}, {Name: "Bread"}}},
	}

	context := BuildContext(pantry, meals, lists, domain.PreferencesResponse{})

	assert.Contains(t, context, "- Milk (1L) - expires 3/14/2026")
	assert.Contains(t, context, "- Rice")
	assert.Contains(t, context, "- Tacos on 3/12/2026")
	assert.Contains(t, context, "- Weekly (2 items)")
}

func TestBuildContextIncludesAllergiesWhenPresent(t *testing.T) {
	preferences := domain.PreferencesResponse{Allergies: []string{"Peanuts", "Shellfish"}}

	context := BuildContext(nil, nil, nil, preferences)

	assert.Contains(t, context, "- Peanuts")
	assert.Contains(t, context, "- Shellfish")
	assert.Contains(t, context, "never suggest these ingredients")
}

func TestBuildUseUpPromptCarriesAllergies(t *testing.T) {
	expiring := []domain.PantryItemResponse{
		{Name: "Spinach", RemainingQuantity: "half a bag"},
	}

	prompt := BuildUseUpPrompt(expiring, []string{"Peanuts"})

	assert.Contains(t, prompt, "- Spinach (half a bag remaining)")
	assert.Contains(t, prompt, "allergic to: Peanuts")
}

func TestBuildUseUpPromptWithoutAllergies(t *testing.T) {
	prompt := BuildUseUpPrompt(nil, nil)

	assert.NotContains(t, prompt, "allergic")
	assert.Contains(t, prompt, "pantry staples")
}
