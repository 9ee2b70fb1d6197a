package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func login(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	tokens := utils.NewTokenManager("test-secret")

	store := &mockUserStore{}
	store.On("GetUserByUsername", mock.Anything, "ann").Return(&models.User{ID: 7, Username: "ann", PasswordHash: hash}, nil)
	h := NewHandler(store, tokens)

	rec := login(t, h, `{"username":"ann","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.User.ID)
	assert.Equal(t, "ann", resp.User.Username)
	assert.NotContains(t, rec.Body.String(), "password")

	claims, err := tokens.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.ID)
}

func TestLogin_Failed(t *testing.T) {
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)

	store := &mockUserStore{}
	store.On("GetUserByUsername", mock.Anything, "ann").Return(&models.User{ID: 7, Username: "ann", PasswordHash: hash}, nil)
	store.On("GetUserByUsername", mock.Anything, "bob").Return(nil, nil)
	h := NewHandler(store, utils.NewTokenManager("test-secret"))

	for _, body := range []string{
		`{"username":"ann","password":"wrong"}`,
		`{"username":"bob","password":"pw"}`,
	} {
		rec := login(t, h, body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Login failed"}`, rec.Body.String())
	}
}

func TestLogin_StoreError(t *testing.T) {
	store := &mockUserStore{}
	store.On("GetUserByUsername", mock.Anything, "ann").Return(nil, errors.New("boom"))
	h := NewHandler(store, utils.NewTokenManager("test-secret"))

	rec := login(t, h, `{"username":"ann","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogin_BadBody(t *testing.T) {
	store := &mockUserStore{}
	h := NewHandler(store, utils.NewTokenManager("test-secret"))

	assert.Equal(t, http.StatusBadRequest, login(t, h, `{"username":`).Code)
	assert.Equal(t, http.StatusBadRequest, login(t, h, ``).Code)
	store.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
}
