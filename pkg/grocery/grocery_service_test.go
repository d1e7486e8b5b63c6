package grocery

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGroceryRepository struct {
	lists   map[string]*entities.GroceryList
	order   []string
	created []*entities.GroceryList
}

func newFakeGroceryRepository() *fakeGroceryRepository {
	return &fakeGroceryRepository{lists: make(map[string]*entities.GroceryList)}
}

func (r *fakeGroceryRepository) CreateList(_ context.Context, list *entities.GroceryList) error {
	r.lists[list.ID.String()] = list
	r.order = append(r.order, list.ID.String())
	r.created = append(r.created, list)
	return nil
}

func (r *fakeGroceryRepository) GetListByID(_ context.Context, id string) (*entities.GroceryList, error) {
	list, ok := r.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return list, nil
}

func (r *fakeGroceryRepository) UpdateList(_ context.Context, list *entities.GroceryList) error {
	r.lists[list.ID.String()] = list
	return nil
}

func (r *fakeGroceryRepository) DeleteList(_ context.Context, id string) error {
	delete(r.lists, id)
	return nil
}

func (r *fakeGroceryRepository) GetLists(_ context.Context, userID string) ([]*entities.GroceryList, error) {
	lists := make([]*entities.GroceryList, 0)
	for _, id := range r.order {
		list, ok := r.lists[id]
		if ok && list.UserID.String() == userID {
			lists = append(lists, list)
		}
	}
	return lists, nil
}

func seedList(t *testing.T, repo *fakeGroceryRepository, userID uuid.UUID, name string, items []domain.GroceryItem) *entities.GroceryList {
	t.Helper()
	encoded, err := json.Marshal(items)
	require.NoError(t, err)

	list := &entities.GroceryList{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Type:   domain.ListTypeManual,
		Items:  string(encoded),
	}
	require.NoError(t, repo.CreateList(context.Background(), list))
	return list
}

func TestCompileListsCreatesMasterList(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo)
	userID := uuid.New()

	first := seedList(t, repo, userID, "Weekly", []domain.GroceryItem{
		{Name: "Milk", Quantity: "2"},
		{Name: "Eggs"},
	})
	second := seedList(t, repo, userID, "Taco Night", []domain.GroceryItem{
		{Name: "milk", Quantity: "1"},
		{Name: "Bread"},
	})

	res, err := service.CompileLists(context.Background(), domain.CompileListsRequest{
		ListIDs: []string{first.ID.String(), second.ID.String()},
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.CompiledListName, res.Name)
	assert.Equal(t, domain.ListTypeCompiled, res.Type)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "Milk", res.Items[0].Name)
	assert.Equal(t, "2 + 1", res.Items[0].Quantity)
}

func TestCompileListsRejectsFewerThanTwoLists(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo)
	userID := uuid.New()

	list := seedList(t, repo, userID, "Weekly", []domain.GroceryItem{{Name: "Milk"}})
	createdBefore := len(repo.created)

	_, err := service.CompileLists(context.Background(), domain.CompileListsRequest{
		ListIDs: []string{list.ID.String()},
	}, userID.String())

	assert.ErrorIs(t, err, domain.ErrNotEnoughLists)
	assert.Len(t, repo.created, createdBefore, "nothing should be written on rejection")
}

func TestCompileListsDuplicateIDsCountOnce(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo)
	userID := uuid.New()

	list := seedList(t, repo, userID, "Weekly", []domain.GroceryItem{{Name: "Milk"}})

	_, err := service.CompileLists(context.Background(), domain.CompileListsRequest{
		ListIDs: []string{list.ID.String(), list.ID.String()},
	}, userID.String())

	assert.ErrorIs(t, err, domain.ErrNotEnoughLists)
}

func TestCompileListsSkipsUnknownIDs(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo)
	userID := uuid.New()

	first := seedList(t, repo, userID, "Weekly", []domain.GroceryItem{{Name: "Milk", Quantity: "2"}})
	second := seedList(t, repo, userID, "Taco Night", []domain.GroceryItem{{Name: "Bread"}})

	res, err := service.CompileLists(context.Background(), domain.CompileListsRequest{
		ListIDs: []string{first.ID.String(), second.ID.String(), uuid.New().String()},
	}, userID.String())
	require.NoError(t, err)

	assert.Len(t, res.Items, 2)
}

func TestRemoveItemIndexOutOfRange(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo)
	userID := uuid.New()

	list := seedList(t, repo, userID, "Weekly", []domain.GroceryItem{{Name: "Milk"}})

	err := service.RemoveItem(context.Background(), list.ID.String(), domain.RemoveGroceryItemRequest{Index: 3}, userID.String())
	assert.ErrorIs(t, err, domain.ErrItemIndexOutOfRange)
}

func TestGroceryListOwnershipEnforced(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo)

	owner := uuid.New()
	list := seedList(t, repo, owner, "Weekly", []domain.GroceryItem{{Name: "Milk"}})

	_, err := service.GetGroceryListByID(context.Background(), list.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}
