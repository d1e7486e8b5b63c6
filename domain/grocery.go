package domain

import (
	"errors"
	"time"
)

const (
	ListTypeManual   = "manual"
	ListTypeRecipe   = "recipe"
	ListTypeCompiled = "compiled"

	// Every compiled list is persisted under this name.
	CompiledListName = "Master List"
)

var (
	MessageSuccessCreateList   = "grocery list created successfully"
	MessageSuccessUpdateList   = "grocery list updated successfully"
	MessageSuccessDeleteList   = "grocery list deleted successfully"
	MessageSuccessGetLists     = "grocery lists retrieved successfully"
	MessageSuccessCompileLists = "grocery lists compiled successfully"
	MessageSuccessAddItem      = "grocery item added successfully"
	MessageSuccessRemoveItem   = "grocery item removed successfully"

	MessageFailedCreateList   = "failed to create grocery list"
	MessageFailedUpdateList   = "failed to update grocery list"
	MessageFailedDeleteList   = "failed to delete grocery list"
	MessageFailedGetLists     = "failed to retrieve grocery lists"
	MessageFailedCompileLists = "failed to compile grocery lists"
	MessageFailedAddItem      = "failed to add grocery item"
	MessageFailedRemoveItem   = "failed to remove grocery item"

	ErrGroceryListNotFound = errors.New("grocery list not found")
	ErrNotEnoughLists      = errors.New("at least 2 lists are required to compile")
	ErrItemIndexOutOfRange = errors.New("grocery item index out of range")
)

type (
	GroceryItem struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity,omitempty" validate:"omitempty"`
		Category string `json:"category,omitempty" validate:"omitempty"`
	}

	CreateGroceryListRequest struct {
		Name  string        `json:"name" validate:"required"`
		Type  string        `json:"type" validate:"required,oneof=manual recipe compiled"`
		Items []GroceryItem `json:"items" validate:"omitempty,dive"`
	}

	UpdateGroceryListRequest struct {
		Name string `json:"name" validate:"omitempty"`
	}

	CompileListsRequest struct {
		ListIDs []string `json:"list_ids" validate:"required,min=2,dive,uuid"`
	}

	AddGroceryItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"omitempty"`
		Category string `json:"category" validate:"omitempty"`
	}

	RemoveGroceryItemRequest struct {
		Index int `json:"index" validate:"min=0"`
	}

	GroceryListResponse struct {
		ID        string        `json:"id"`
		Name      string        `json:"name"`
		Type      string        `json:"type"`
		Items     []GroceryItem `json:"items"`
		CreatedAt time.Time     `json:"created_at"`
	}
)
