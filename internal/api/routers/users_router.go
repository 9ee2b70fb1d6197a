package routers

import (
	"net/http"

	"pocketledger/internal/api/handlers/users"
)

func usersRouter(h *users.Handler, protect func(http.Handler) http.Handler) *http.ServeMux {
	return newResourceMux(protect, []route{
		{pattern: "POST /users", handler: h.Create},
		{pattern: "GET /users/{id}", handler: h.GetByID},
		{pattern: "GET /users/username/{username}", handler: h.GetByUsername},
		{pattern: "PATCH /users/{id}", handler: h.Update, protected: true},
		{pattern: "DELETE /users/{id}", handler: h.Delete, protected: true},
	})
}
