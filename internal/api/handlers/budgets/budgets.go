package budgets

import (
	"context"
	"net/http"

	"pocketledger/internal/api/handlers"
	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

type Store interface {
	CreateBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id int, in models.BudgetInput) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id int) error
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	GetBudgetByID(ctx context.Context, id int) (*models.Budget, error)
	GetBudgetsByUserID(ctx context.Context, userID int) ([]models.Budget, error)
	GetBudgetsByCategoryID(ctx context.Context, categoryID int) ([]models.Budget, error)
	GetBudgetsByPeriodStart(ctx context.Context, start models.Date) ([]models.Budget, error)
	GetBudgetsByPeriodEnd(ctx context.Context, end models.Date) ([]models.Budget, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create stores the budget as given. A period_start after period_end is
// accepted.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.BudgetInput
	if !handlers.DecodeBody(w, r, &in) {
		return
	}

	created, err := h.store.CreateBudget(r.Context(), in)
	handlers.WriteResult(w, r, created, err, "error creating budget")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "budget")
	if !ok {
		return
	}

	var in models.BudgetInput
	if !handlers.DecodeBody(w, r, &in) {
		return
	}

	updated, err := h.store.UpdateBudget(r.Context(), id, in)
	handlers.WriteResult(w, r, updated, err, "error updating budget")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "budget")
	if !ok {
		return
	}

	if err := h.store.DeleteBudget(r.Context(), id); err != nil {
		handlers.StoreFailed(w, r, err, "error deleting budget")
		return
	}
	utils.WriteNoContent(w)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListBudgets(r.Context())
	handlers.WriteResult(w, r, list, err, "error fetching budgets")
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "budget")
	if !ok {
		return
	}

	b, err := h.store.GetBudgetByID(r.Context(), id)
	handlers.WriteResult(w, r, b, err, "error fetching budget")
}

func (h *Handler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.PathID(w, r, "user_id", "user")
	if !ok {
		return
	}

	list, err := h.store.GetBudgetsByUserID(r.Context(), userID)
	handlers.WriteResult(w, r, list, err, "error fetching budgets")
}

func (h *Handler) GetByCategoryID(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := handlers.PathID(w, r, "category_id", "category")
	if !ok {
		return
	}

	list, err := h.store.GetBudgetsByCategoryID(r.Context(), categoryID)
	handlers.WriteResult(w, r, list, err, "error fetching budgets")
}

func (h *Handler) GetByPeriodStart(w http.ResponseWriter, r *http.Request) {
	start, ok := handlers.PathDate(w, r, "period_start")
	if !ok {
		return
	}

	list, err := h.store.GetBudgetsByPeriodStart(r.Context(), start)
	handlers.WriteResult(w, r, list, err, "error fetching budgets")
}

func (h *Handler) GetByPeriodEnd(w http.ResponseWriter, r *http.Request) {
	end, ok := handlers.PathDate(w, r, "period_end")
	if !ok {
		return
	}

	list, err := h.store.GetBudgetsByPeriodEnd(r.Context(), end)
	handlers.WriteResult(w, r, list, err, "error fetching budgets")
}
