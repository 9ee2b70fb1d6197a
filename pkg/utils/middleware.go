package utils

import "net/http"

type Middleware func(http.Handler) http.Handler

// ApplyMiddlewares wraps handler in order, so the last middleware listed
// is the first to see the request.
func ApplyMiddlewares(handler http.Handler, middlewares ...Middleware) http.Handler {
	for _, middleware := range middlewares {
		handler = middleware(handler)
	}
	return handler
}
