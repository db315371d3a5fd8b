package httputil

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire shape for all error responses:
// a short human-readable message plus the underlying error text.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code.
// It marshals first so an encoding failure never produces a partial
// response after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes a {message, error} JSON error response.
func RespondError(w http.ResponseWriter, status int, message, detail string) {
	payload, err := json.Marshal(ErrorResponse{Message: message, Error: detail})
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
