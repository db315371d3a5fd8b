package handler

import (
	"errors"
	"net/http"

	"storyloom/internal/domain"
	"storyloom/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingIdentity):
		httputil.RespondError(w, http.StatusBadRequest, "User ID is required", err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "Record not found", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	default:
		var httpErr domain.HTTPError
		if errors.As(err, &httpErr) {
			httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error(), err.Error())
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// requireUserID pulls the owning-user id out of the request context.
// A request that reached a handler without one gets a 400, not a 401:
// the identity is routing input here, not an authentication outcome.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httputil.GetUserID(r)
	if userID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "User ID is required", domain.ErrMissingIdentity.Error())
		return "", false
	}
	return userID, true
}

// requirePathID reads the {id} path segment
func requirePathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Record ID is required", "missing id path parameter")
		return "", false
	}
	return id, true
}
