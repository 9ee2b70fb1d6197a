package routers

import (
	"net/http"

	"pocketledger/internal/api/handlers/categories"
)

func categoriesRouter(h *categories.Handler, protect func(http.Handler) http.Handler) *http.ServeMux {
	return newResourceMux(protect, []route{
		{pattern: "POST /categories", handler: h.Create},
		{pattern: "GET /categories", handler: h.List, protected: true},
		{pattern: "GET /categories/{id}", handler: h.GetByID, protected: true},
		{pattern: "GET /categories/user/{user_id}", handler: h.GetByUserID, protected: true},
		{pattern: "PATCH /categories/{id}", handler: h.Update, protected: true},
		{pattern: "DELETE /categories/{id}", handler: h.Delete, protected: true},
	})
}
