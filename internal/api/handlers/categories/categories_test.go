package categories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pocketledger/internal/models"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Category)
	return out, args.Error(1)
}

func (m *mockStore) UpdateCategory(ctx context.Context, id int, in models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(*models.Category)
	return out, args.Error(1)
}

func (m *mockStore) DeleteCategory(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Category)
	return out, args.Error(1)
}

func (m *mockStore) GetCategoryByID(ctx context.Context, id int) (*models.Category, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Category)
	return out, args.Error(1)
}

func (m *mockStore) GetCategoriesByUserID(ctx context.Context, userID int) ([]models.Category, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]models.Category)
	return out, args.Error(1)
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	store := &mockStore{}
	store.On("CreateCategory", mock.Anything, models.CategoryInput{Name: ptr("Food"), UserID: ptr(2)}).
		Return(&models.Category{ID: 1, Name: "Food", UserID: 2}, nil)
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Food","user_id":2}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Food","user_id":2}`, rec.Body.String())
}

func TestCreate_UnknownField(t *testing.T) {
	store := &mockStore{}
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Food","colour":"red"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCreate_MissingNameReachesStoreAsNil(t *testing.T) {
	store := &mockStore{}
	store.On("CreateCategory", mock.Anything, models.CategoryInput{UserID: ptr(2)}).
		Return(nil, errors.New("Column 'name' cannot be null"))
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"user_id":2}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"error creating category"}`, rec.Body.String())
	store.AssertExpectations(t)
}

func TestUpdate_UsesPathID(t *testing.T) {
	store := &mockStore{}
	store.On("UpdateCategory", mock.Anything, 4, models.CategoryInput{ID: 99, Name: ptr("Rent"), UserID: ptr(2)}).
		Return(&models.Category{ID: 4, Name: "Rent", UserID: 2}, nil)
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodPatch, "/categories/4", strings.NewReader(`{"id":99,"name":"Rent","user_id":2}`))
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":4,"name":"Rent","user_id":2}`, rec.Body.String())
	store.AssertExpectations(t)
}

func TestGetByUserID_Empty(t *testing.T) {
	store := &mockStore{}
	store.On("GetCategoriesByUserID", mock.Anything, 5).Return([]models.Category{}, nil)
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/categories/user/5", nil)
	req.SetPathValue("user_id", "5")
	rec := httptest.NewRecorder()
	h.GetByUserID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetByUserID_StoreError(t *testing.T) {
	store := &mockStore{}
	store.On("GetCategoriesByUserID", mock.Anything, 5).Return(nil, errors.New("down"))
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/categories/user/5", nil)
	req.SetPathValue("user_id", "5")
	rec := httptest.NewRecorder()
	h.GetByUserID(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"error fetching categories"}`, rec.Body.String())
}

func TestList_StoreError(t *testing.T) {
	store := &mockStore{}
	store.On("ListCategories", mock.Anything).Return(nil, errors.New("down"))
	h := NewHandler(store)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"error fetching categories"}`, rec.Body.String())
}

func TestDeleteAndGet(t *testing.T) {
	store := &mockStore{}
	store.On("DeleteCategory", mock.Anything, 4).Return(nil)
	store.On("GetCategoryByID", mock.Anything, 4).Return(nil, nil)
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodDelete, "/categories/4", nil)
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/categories/4", nil)
	req.SetPathValue("id", "4")
	rec = httptest.NewRecorder()
	h.GetByID(rec, req)
	assert.Equal(t, "null\n", rec.Body.String())
}
