package transactions

import (
	"context"
	"net/http"

	"pocketledger/internal/api/handlers"
	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

type Store interface {
	CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int, in models.TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int) error
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, id int) (*models.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]models.Transaction, error)
	GetTransactionsByCategoryID(ctx context.Context, categoryID int) ([]models.Transaction, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.TransactionInput
	if !handlers.DecodeBody(w, r, &in) {
		return
	}

	created, err := h.store.CreateTransaction(r.Context(), in)
	handlers.WriteResult(w, r, created, err, "error creating transaction")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "transaction")
	if !ok {
		return
	}

	var in models.TransactionInput
	if !handlers.DecodeBody(w, r, &in) {
		return
	}

	updated, err := h.store.UpdateTransaction(r.Context(), id, in)
	handlers.WriteResult(w, r, updated, err, "error updating transaction")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "transaction")
	if !ok {
		return
	}

	if err := h.store.DeleteTransaction(r.Context(), id); err != nil {
		handlers.StoreFailed(w, r, err, "error deleting transaction")
		return
	}
	utils.WriteNoContent(w)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListTransactions(r.Context())
	handlers.WriteResult(w, r, list, err, "error fetching transactions")
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "transaction")
	if !ok {
		return
	}

	t, err := h.store.GetTransactionByID(r.Context(), id)
	handlers.WriteResult(w, r, t, err, "error fetching transaction")
}

func (h *Handler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.PathID(w, r, "user_id", "user")
	if !ok {
		return
	}

	list, err := h.store.GetTransactionsByUserID(r.Context(), userID)
	handlers.WriteResult(w, r, list, err, "error fetching transactions")
}

func (h *Handler) GetByCategoryID(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := handlers.PathID(w, r, "category_id", "category")
	if !ok {
		return
	}

	list, err := h.store.GetTransactionsByCategoryID(r.Context(), categoryID)
	handlers.WriteResult(w, r, list, err, "error fetching transactions")
}
