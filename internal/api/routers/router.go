package routers

import (
	"net/http"

	"pocketledger/internal/api/handlers/auth"
	"pocketledger/internal/api/handlers/budgets"
	"pocketledger/internal/api/handlers/categories"
	"pocketledger/internal/api/handlers/transactions"
	"pocketledger/internal/api/handlers/users"
	"pocketledger/internal/api/middlewares"
)

// Store is everything the API needs from the data access layer.
type Store interface {
	users.Store
	categories.Store
	transactions.Store
	budgets.Store
}

type Tokens interface {
	auth.TokenSigner
	middlewares.TokenVerifier
}

type route struct {
	pattern   string
	handler   http.HandlerFunc
	protected bool
}

func MainRouter(store Store, tokens Tokens) *http.ServeMux {
	mux := http.NewServeMux()
	protect := middlewares.JWTMiddleware(tokens, store)

	mux.HandleFunc("GET /{$}", index)
	mux.HandleFunc("POST /login", auth.NewHandler(store, tokens).Login)

	mount(mux, "/users", usersRouter(users.NewHandler(store), protect))
	mount(mux, "/categories", categoriesRouter(categories.NewHandler(store), protect))
	mount(mux, "/transactions", transactionsRouter(transactions.NewHandler(store), protect))
	mount(mux, "/budgets", budgetsRouter(budgets.NewHandler(store), protect))

	return mux
}

// mount serves both the collection path and everything below it.
func mount(mux *http.ServeMux, prefix string, h http.Handler) {
	mux.Handle(prefix, h)
	mux.Handle(prefix+"/", h)
}

func newResourceMux(protect func(http.Handler) http.Handler, routes []route) *http.ServeMux {
	mux := http.NewServeMux()
	for _, rt := range routes {
		var h http.Handler = rt.handler
		if rt.protected {
			h = protect(h)
		}
		mux.Handle(rt.pattern, h)
	}
	return mux
}
