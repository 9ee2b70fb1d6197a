package utils

import "net/http"

// ErrorResponse is the body of every error answer except a failed login.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSONStatus(w, statusCode, ErrorResponse{Status: "error", Message: message})
}
