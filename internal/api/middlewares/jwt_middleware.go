package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"pocketledger/internal/models"
	"pocketledger/pkg/utils"
)

const userContextKey = utils.ContextKey("user")

type TokenVerifier interface {
	VerifyToken(token string) (*utils.Claims, error)
}

type UserLookup interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

// JWTMiddleware admits a request only when it carries a valid bearer token
// whose subject still exists. The loaded user is available to the wrapped
// handler through CurrentUser.
func JWTMiddleware(tokens TokenVerifier, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.VerifyToken(token)
			if err != nil {
				fields := logrus.Fields{"path": r.URL.Path}
				if errors.Is(err, jwt.ErrTokenExpired) {
					fields["reason"] = "expired"
				}
				utils.Logger.WithFields(fields).WithError(err).Debug("rejected bearer token")
				utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.ID)
			if err != nil {
				utils.Logger.WithError(err).WithField("user_id", claims.ID).Error("failed to load user for token")
				utils.WriteError(w, "could not verify credentials", http.StatusBadRequest)
				return
			}
			// the token can outlive its subject
			if user == nil {
				utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// CurrentUser returns the user attached by JWTMiddleware.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok && user != nil
}
