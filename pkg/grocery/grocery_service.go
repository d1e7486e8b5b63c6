package grocery

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		CreateGroceryList(ctx context.Context, req domain.CreateGroceryListRequest, userID string) (domain.GroceryListResponse, error)
		UpdateGroceryList(ctx context.Context, id string, req domain.UpdateGroceryListRequest, userID string) error
		DeleteGroceryList(ctx context.Context, id string, userID string) error
		GetGroceryLists(ctx context.Context, userID string) ([]domain.GroceryListResponse, error)
		GetGroceryListByID(ctx context.Context, id string, userID string) (domain.GroceryListResponse, error)
		AddItem(ctx context.Context, listID string, req domain.AddGroceryItemRequest, userID string) error
		RemoveItem(ctx context.Context, listID string, req domain.RemoveGroceryItemRequest, userID string) error
		CompileLists(ctx context.Context, req domain.CompileListsRequest, userID string) (domain.GroceryListResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
	}
)

func NewGroceryService(groceryRepository GroceryRepository) GroceryService {
	return &groceryService{groceryRepository: groceryRepository}
}

func (s *groceryService) CreateGroceryList(ctx context.Context, req domain.CreateGroceryListRequest, userID string) (domain.GroceryListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryListResponse{}, domain.ErrParseUUID
	}

	items := req.Items
	if items == nil {
		items = []domain.GroceryItem{}
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	list := &entities.GroceryList{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
		Type:   req.Type,
		Items:  string(encoded),
	}

	if err := s.groceryRepository.CreateList(ctx, list); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list), nil
}

func (s *groceryService) UpdateGroceryList(ctx context.Context, id string, req domain.UpdateGroceryListRequest, userID string) error {
	list, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		list.Name = req.Name
	}

	return s.groceryRepository.UpdateList(ctx, list)
}

func (s *groceryService) DeleteGroceryList(ctx context.Context, id string, userID string) error {
	list, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return err
	}

	return s.groceryRepository.DeleteList(ctx, list.ID.String())
}

func (s *groceryService) GetGroceryLists(ctx context.Context, userID string) ([]domain.GroceryListResponse, error) {
	lists, err := s.groceryRepository.GetLists(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toGroceryListResponse(list))
	}

	return response, nil
}

func (s *groceryService) GetGroceryListByID(ctx context.Context, id string, userID string) (domain.GroceryListResponse, error) {
	list, err := s.getOwnedList(ctx, id, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list), nil
}

func (s *groceryService) AddItem(ctx context.Context, listID string, req domain.AddGroceryItemRequest, userID string) error {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	items := decodeItems(list.Items)
	items = append(items, domain.GroceryItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		Category: req.Category,
	})

	encoded, err := json.Marshal(items)
	if err != nil {
		return err
	}
	list.Items = string(encoded)

	return s.groceryRepository.UpdateList(ctx, list)
}

func (s *groceryService) RemoveItem(ctx context.Context, listID string, req domain.RemoveGroceryItemRequest, userID string) error {
	list, err := s.getOwnedList(ctx, listID, userID)
	if err != nil {
		return err
	}

	items := decodeItems(list.Items)
	if req.Index < 0 || req.Index >= len(items) {
		return domain.ErrItemIndexOutOfRange
	}
	items = append(items[:req.Index], items[req.Index+1:]...)

	encoded, err := json.Marshal(items)
	if err != nil {
		return err
	}
	list.Items = string(encoded)

	return s.groceryRepository.UpdateList(ctx, list)
}

// CompileLists merges the selected lists into a new compiled "Master List".
// Duplicate ids in the selection count once; ids that do not resolve to one
// of the caller's lists are skipped silently. Selecting fewer than 2 lists is
// rejected before anything is read or written.
func (s *groceryService) CompileLists(ctx context.Context, req domain.CompileListsRequest, userID string) (domain.GroceryListResponse, error) {
	selected := make(map[string]bool, len(req.ListIDs))
	for _, id := range req.ListIDs {
		selected[id] = true
	}

	if len(selected) < 2 {
		return domain.GroceryListResponse{}, domain.ErrNotEnoughLists
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryListResponse{}, domain.ErrParseUUID
	}

	lists, err := s.groceryRepository.GetLists(ctx, userID)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	sources := make([][]domain.GroceryItem, 0, len(selected))
	for _, list := range lists {
		if selected[list.ID.String()] {
			sources = append(sources, decodeItems(list.Items))
		}
	}

	compiled := CompileItems(sources)

	encoded, err := json.Marshal(compiled)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	masterList := &entities.GroceryList{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   domain.CompiledListName,
		Type:   domain.ListTypeCompiled,
		Items:  string(encoded),
	}

	if err := s.groceryRepository.CreateList(ctx, masterList); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(masterList), nil
}

func (s *groceryService) getOwnedList(ctx context.Context, id string, userID string) (*entities.GroceryList, error) {
	list, err := s.groceryRepository.GetListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryListNotFound
		}
		return nil, err
	}

	if list.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return list, nil
}

func toGroceryListResponse(list *entities.GroceryList) domain.GroceryListResponse {
	return domain.GroceryListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		Type:      list.Type,
		Items:     decodeItems(list.Items),
		CreatedAt: list.CreatedAt,
	}
}

func decodeItems(encoded string) []domain.GroceryItem {
	if encoded == "" {
		return []domain.GroceryItem{}
	}
	var items []domain.GroceryItem
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return []domain.GroceryItem{}
	}
	return items
}
