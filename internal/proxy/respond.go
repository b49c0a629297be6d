package proxy

import (
	"encoding/json"
	"net/http"

	"github.com/mukky254/ukulima-go/internal/pkg/logx"
)

// errorBody is the JSON error shape the proxy answers with when it
// cannot forward a request. It matches the upstream API's message
// field so client-side error extraction works the same either way.
type errorBody struct {
	Message string `json:"message"`
}

// respondJSON sets the content type and sends the JSON payload.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	body, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "error encoding JSON response", "http_status", status)
		http.Error(w, "error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	w.Write(body)
}

// respondError sends a JSON error message with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Message: message})
}
