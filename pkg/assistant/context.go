package assistant

import (
	"Sue-Backend/domain"
	"fmt"
	"strings"
)

// BuildContext renders the user's current state into the system context block
// sent alongside every conversational request. Sections with no data fall back
// to a fixed placeholder line; the allergies section is included whenever at
// least one allergy is recorded.
func BuildContext(pantry []domain.PantryItemResponse, meals []domain.MealPlanResponse, lists []domain.GroceryListResponse, preferences domain.PreferencesResponse) string {
	var sb strings.Builder

	sb.WriteString("\nCurrent Pantry Items:\n")
	if len(pantry) == 0 {
		sb.WriteString("No items in pantry")
	} else {
		lines := make([]string, 0, len(pantry))
		for _, item := range pantry {
			line := "- " + item.Name
			if item.Quantity != "" {
				line += fmt.Sprintf(" (%s)", item.Quantity)
			}
			if item.ExpirationDate != nil {
				line += " - expires " + item.ExpirationDate.Format("1/2/2006")
			}
			lines = append(lines, line)
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	sb.WriteString("\n\nUpcoming Meals:\n")
	if len(meals) == 0 {
		sb.WriteString("No meals planned")
	} else {
		lines := make([]string, 0, len(meals))
		for _, meal := range meals {
			lines = append(lines, fmt.Sprintf("- %s on %s", meal.MealName, meal.Date.Format("1/2/2006")))
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	sb.WriteString("\n\nGrocery Lists:\n")
	if len(lists) == 0 {
		sb.WriteString("No grocery lists")
	} else {
		lines := make([]string, 0, len(lists))
		for _, list := range lists {
			lines = append(lines, fmt.Sprintf("- %s (%d items)", list.Name, len(list.Items)))
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	if len(preferences.Allergies) > 0 {
		sb.WriteString("\n\nUser Allergies (never suggest these ingredients):\n")
		lines := make([]string, 0, len(preferences.Allergies))
		for _, allergy := range preferences.Allergies {
			lines = append(lines, "- "+allergy)
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	if standardItems := renderStandardItems(preferences.StandardItems); standardItems != "" {
		sb.WriteString("\n\nStandard Grocery Items:\n")
		sb.WriteString(standardItems)
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderStandardItems(standardItems map[string][]domain.StandardItem) string {
	lines := make([]string, 0)
	for _, slot := range domain.MealSlots {
		for _, item := range standardItems[slot] {
			line := fmt.Sprintf("- %s (%s)", item.Name, slot)
			if item.Quantity != "" {
				line += " x" + item.Quantity
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// BuildUseUpPrompt asks for a recipe built around items that are expiring or
// already opened, carrying the allergy constraint in the prompt itself.
func BuildUseUpPrompt(expiring []domain.PantryItemResponse, allergies []string) string {
	var sb strings.Builder

	sb.WriteString("Suggest a simple recipe that uses up these ingredients before they go bad:\n")
	if len(expiring) == 0 {
		sb.WriteString("- nothing is expiring right now, suggest something from common pantry staples\n")
	} else {
		for _, item := range expiring {
			line := "- " + item.Name
			if item.RemainingQuantity != "" {
				line += fmt.Sprintf(" (%s remaining)", item.RemainingQuantity)
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(allergies) > 0 {
		sb.WriteString("The user is allergic to: " + strings.Join(allergies, ", ") + ". Do not use these ingredients.\n")
	}

	return sb.String()
}
