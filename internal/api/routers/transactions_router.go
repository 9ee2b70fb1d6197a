package routers

import (
	"net/http"

	"pocketledger/internal/api/handlers/transactions"
)

func transactionsRouter(h *transactions.Handler, protect func(http.Handler) http.Handler) *http.ServeMux {
	return newResourceMux(protect, []route{
		{pattern: "POST /transactions", handler: h.Create},
		{pattern: "GET /transactions", handler: h.List, protected: true},
		{pattern: "GET /transactions/{id}", handler: h.GetByID, protected: true},
		{pattern: "GET /transactions/user/{user_id}", handler: h.GetByUserID, protected: true},
		{pattern: "GET /transactions/category/{category_id}", handler: h.GetByCategoryID, protected: true},
		{pattern: "PATCH /transactions/{id}", handler: h.Update, protected: true},
		{pattern: "DELETE /transactions/{id}", handler: h.Delete, protected: true},
	})
}
