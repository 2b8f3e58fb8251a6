package server

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body for every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SetResponse writes obj as JSON with the given status.
func SetResponse[T any](obj *T, statusCode int, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(obj)
}

// SetErrorResponse writes {"error": err} with the given status.
func SetErrorResponse(statusCode int, err error, w http.ResponseWriter) error {
	return SetResponse(&ErrorResponse{Error: err.Error()}, statusCode, w)
}
