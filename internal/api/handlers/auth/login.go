package auth

import (
	"context"
	"net/http"

	"pocketledger/internal/api/handlers"
	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type TokenSigner interface {
	SignToken(userID int) (string, error)
}

type Handler struct {
	users  UserStore
	tokens TokenSigner
}

func NewHandler(users UserStore, tokens TokenSigner) *Handler {
	return &Handler{users: users, tokens: tokens}
}

type loginUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// Login exchanges a username and password for a signed token. Unknown users
// and wrong passwords get the same answer.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !handlers.DecodeBody(w, r, &req) {
		return
	}

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		handlers.StoreFailed(w, r, err, "error logging in")
		return
	}
	if user == nil || !utils.VerifyPassword(req.Password, user.PasswordHash) {
		utils.Logger.WithField("username", req.Username).Info("login failed")
		loginFailed(w)
		return
	}

	token, err := h.tokens.SignToken(user.ID)
	if err != nil {
		utils.WriteError(w, "error logging in", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, loginResponse{
		Token: token,
		User:  loginUser{ID: user.ID, Username: user.Username},
	})
}

func loginFailed(w http.ResponseWriter) {
	utils.WriteJSONStatus(w, http.StatusUnauthorized, map[string]string{"error": "Login failed"})
}
