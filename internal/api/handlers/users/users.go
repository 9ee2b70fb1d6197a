package users

import (
	"context"
	"net/http"

	"pocketledger/internal/api/handlers"
	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

type Store interface {
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id int, in models.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// input hashes the password when one was sent. A missing password stays nil
// so the store rejects the row instead of saving a hash of "".
func input(w http.ResponseWriter, req models.UserRequest) (models.UserInput, bool) {
	in := models.UserInput{Username: req.Username, Email: req.Email}
	if req.Password == nil {
		return in, true
	}

	hash, err := utils.HashPassword(*req.Password)
	if err != nil {
		utils.WriteError(w, "error hashing password", http.StatusInternalServerError)
		return in, false
	}
	in.PasswordHash = &hash
	return in, true
}

// Create registers a user. The password is stored as a bcrypt hash.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if !handlers.DecodeBody(w, r, &req) {
		return
	}

	in, ok := input(w, req)
	if !ok {
		return
	}

	user, err := h.store.CreateUser(r.Context(), in)
	handlers.WriteResult(w, r, user, err, "error creating user")
}

// Update replaces every column of the user. The password is required and
// hashed again.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "user")
	if !ok {
		return
	}

	var req models.UserRequest
	if !handlers.DecodeBody(w, r, &req) {
		return
	}

	in, ok := input(w, req)
	if !ok {
		return
	}

	user, err := h.store.UpdateUser(r.Context(), id, in)
	handlers.WriteResult(w, r, user, err, "error updating user")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "user")
	if !ok {
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		handlers.StoreFailed(w, r, err, "error deleting user")
		return
	}
	utils.WriteNoContent(w)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id", "user")
	if !ok {
		return
	}

	user, err := h.store.GetUserByID(r.Context(), id)
	handlers.WriteResult(w, r, user, err, "error fetching user")
}

func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUserByUsername(r.Context(), r.PathValue("username"))
	handlers.WriteResult(w, r, user, err, "error fetching user")
}
