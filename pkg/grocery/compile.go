package grocery

import (
	"Sue-Backend/domain"
	"strings"
)

// CompileItems merges the items of several lists into one de-duplicated
// sequence. Items are matched case-insensitively by name; the first
// occurrence fixes the output position and the category. Quantities are free
// text, so merging concatenates them into a readable "<existing> + <new>"
// string with either side defaulting to "1" when absent.
func CompileItems(lists [][]domain.GroceryItem) []domain.GroceryItem {
	itemMap := make(map[string]*domain.GroceryItem)
	order := make([]string, 0)

	for _, items := range lists {
		for _, item := range items {
			key := strings.ToLower(item.Name)
			existing, seen := itemMap[key]
			if !seen {
				merged := item
				if merged.Quantity == "" {
					merged.Quantity = "1"
				}
				itemMap[key] = &merged
				order = append(order, key)
				continue
			}

			quantity := item.Quantity
			if quantity == "" {
				quantity = "1"
			}
			existing.Quantity = existing.Quantity + " + " + quantity
		}
	}

	compiled := make([]domain.GroceryItem, 0, len(order))
	for _, key := range order {
		compiled = append(compiled, *itemMap[key])
	}

	return compiled
}
