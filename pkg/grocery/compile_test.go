package grocery

import (
	"Sue-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileItemsMergesDuplicatesByName(t *testing.T) {
	lists := [][]domain.GroceryItem{
		{
			{Name: "Milk", Quantity: "2", Category: "dairy"},
			{Name: "Eggs"},
		},
		{
			{Name: "milk", Quantity: "1"},
			{Name: "Bread"},
		},
	}

	compiled := CompileItems(lists)

	assert.Len(t, compiled, 3)
	assert.Equal(t, "Milk", compiled[0].Name)
	assert.Equal(t, "2 + 1", compiled[0].Quantity)
	assert.Equal(t, "Eggs", compiled[1].Name)
	assert.Equal(t, "1", compiled[1].Quantity)
	assert.Equal(t, "Bread", compiled[2].Name)
	assert.Equal(t, "1", compiled[2].Quantity)
}

func TestCompileItemsFirstOccurrenceWinsCategoryAndCasing(t *testing.T) {
	lists := [][]domain.GroceryItem{
		{{Name: "Flour", Category: "baking"}},
		{{Name: "FLOUR", Quantity: "500g", Category: "pantry"}},
	}

	compiled := CompileItems(lists)

	assert.Len(t, compiled, 1)
	assert.Equal(t, "Flour", compiled[0].Name)
	assert.Equal(t, "baking", compiled[0].Category)
	assert.Equal(t, "1 + 500g", compiled[0].Quantity)
}

func TestCompileItemsMissingQuantitiesDefaultToOne(t *testing.T) {
	lists := [][]domain.GroceryItem{
		{{Name: "Butter"}},
		{{Name: "butter"}},
	}

	compiled := CompileItems(lists)

	assert.Len(t, compiled, 1)
	assert.Equal(t, "1 + 1", compiled[0].Quantity)
}

func TestCompileItemsEmptyInput(t *testing.T) {
	assert.Empty(t, CompileItems(nil))
	assert.Empty(t, CompileItems([][]domain.GroceryItem{{}, {}}))
}
