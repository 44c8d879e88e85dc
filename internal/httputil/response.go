package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// MessageResponse is the envelope used for plain status messages.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondMessage sends a `{"msg": ...}` response with the given status code.
func RespondMessage(w http.ResponseWriter, msg string, statusCode int) {
	RespondJSON(w, MessageResponse{Msg: msg}, statusCode)
}
