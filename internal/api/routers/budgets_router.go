package routers

import (
	"net/http"

	"pocketledger/internal/api/handlers/budgets"
)

func budgetsRouter(h *budgets.Handler, protect func(http.Handler) http.Handler) *http.ServeMux {
	return newResourceMux(protect, []route{
		{pattern: "POST /budgets", handler: h.Create, protected: true},
		{pattern: "GET /budgets", handler: h.List, protected: true},
		{pattern: "GET /budgets/{id}", handler: h.GetByID, protected: true},
		{pattern: "GET /budgets/user/{user_id}", handler: h.GetByUserID, protected: true},
		{pattern: "GET /budgets/category/{category_id}", handler: h.GetByCategoryID, protected: true},
		{pattern: "GET /budgets/period_start/{period_start}", handler: h.GetByPeriodStart, protected: true},
		{pattern: "GET /budgets/period_end/{period_end}", handler: h.GetByPeriodEnd, protected: true},
		{pattern: "PATCH /budgets/{id}", handler: h.Update, protected: true},
		{pattern: "DELETE /budgets/{id}", handler: h.Delete, protected: true},
	})
}
