package categories

import (
	"context"
	"net/http"

	"pocketledger/internal/api/handlers"
	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

type Store interface {
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, in models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*models.Category, error)
	GetCategoriesByUserID(ctx context.Context, userID int) ([]models.Category, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CategoryInput
	if !handlers.DecodeBody(w, r, &in) {
		return
	}

	created, err := h.store.CreateCategory(r.Context(), in)
	handlers.WriteResult(w, r, created, err, "error creating category")
}

// Update overwrites the category named in the path. An id in the body is
// ignored.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "category")
	if !ok {
		return
	}

	var in models.CategoryInput
	if !handlers.DecodeBody(w, r, &in) {
		return
	}

	updated, err := h.store.UpdateCategory(r.Context(), id, in)
	handlers.WriteResult(w, r, updated, err, "error updating category")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "category")
	if !ok {
		return
	}

	if err := h.store.DeleteCategory(r.Context(), id); err != nil {
		handlers.StoreFailed(w, r, err, "error deleting category")
		return
	}
	utils.WriteNoContent(w)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListCategories(r.Context())
	handlers.WriteResult(w, r, list, err, "error fetching categories")
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "category")
	if !ok {
		return
	}

	c, err := h.store.GetCategoryByID(r.Context(), id)
	handlers.WriteResult(w, r, c, err, "error fetching category")
}

func (h *Handler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.PathID(w, r, "user_id", "user")
	if !ok {
		return
	}

	list, err := h.store.GetCategoriesByUserID(r.Context(), userID)
	handlers.WriteResult(w, r, list, err, "error fetching categories")
}
