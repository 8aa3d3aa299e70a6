package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mergington/activities/internal/domain/activity"
)

// messageResponse is the success body for mutating endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the error body, matching the client contract.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

// writeError maps domain errors onto status codes and detail strings.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		writeJSON(w, http.StatusNotFound, detailResponse{Detail: "Activity not found"})
	case errors.Is(err, activity.ErrAlreadySignedUp):
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "Student is already signed up"})
	case errors.Is(err, activity.ErrNotRegistered):
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "Student is not registered for this activity"})
	case errors.Is(err, activity.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "Email is required"})
	default:
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "Internal server error"})
	}
}

// outcome labels metric counters by failure kind.
func outcome(err error) string {
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, activity.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, activity.ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, activity.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
