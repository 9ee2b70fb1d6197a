package routers

import (
	"net/http"

	"pocketledger/pkg/utils"
)

type endpoint struct {
	Href        string   `json:"href"`
	Methods     []string `json:"method"`
	Description string   `json:"description"`
}

var endpoints = []endpoint{
	{Href: "/login", Methods: []string{"POST"}, Description: "Exchange a username and password for a bearer token."},
	{Href: "/users", Methods: []string{"POST"}, Description: "Create a user."},
	{Href: "/users/{id}", Methods: []string{"GET", "PATCH", "DELETE"}, Description: "Retrieve, update or remove a user by ID."},
	{Href: "/users/username/{username}", Methods: []string{"GET"}, Description: "Retrieve a user by username."},
	{Href: "/categories", Methods: []string{"GET", "POST"}, Description: "List categories or create one."},
	{Href: "/categories/{id}", Methods: []string{"GET", "PATCH", "DELETE"}, Description: "Retrieve, update or remove a category by ID."},
	{Href: "/categories/user/{user_id}", Methods: []string{"GET"}, Description: "All categories of a user."},
	{Href: "/transactions", Methods: []string{"GET", "POST"}, Description: "List transactions or create one."},
	{Href: "/transactions/{id}", Methods: []string{"GET", "PATCH", "DELETE"}, Description: "Retrieve, update or remove a transaction by ID."},
	{Href: "/transactions/user/{user_id}", Methods: []string{"GET"}, Description: "All transactions of a user."},
	{Href: "/transactions/category/{category_id}", Methods: []string{"GET"}, Description: "All transactions in a category."},
	{Href: "/budgets", Methods: []string{"GET", "POST"}, Description: "List budgets or create one."},
	{Href: "/budgets/{id}", Methods: []string{"GET", "PATCH", "DELETE"}, Description: "Retrieve, update or remove a budget by ID."},
	{Href: "/budgets/user/{user_id}", Methods: []string{"GET"}, Description: "All budgets of a user."},
	{Href: "/budgets/category/{category_id}", Methods: []string{"GET"}, Description: "All budgets for a category."},
	{Href: "/budgets/period_start/{period_start}", Methods: []string{"GET"}, Description: "Budgets starting on a date (YYYY-MM-DD)."},
	{Href: "/budgets/period_end/{period_end}", Methods: []string{"GET"}, Description: "Budgets ending on a date (YYYY-MM-DD)."},
}

func index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, endpoints)
}
