package server

import (
	"encoding/json"
	"net/http"
)

// SuccessResponse is the generic acknowledgement body
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// PaidResponse reports the outcome of a mining event or manual reward
type PaidResponse struct {
	Paid float64 `json:"paid"`
}

// MultiplierResponse reports a player's current effective multiplier
type MultiplierResponse struct {
	Multiplier float64 `json:"multiplier"`
}

// TemporaryMultiplierResponse reports the remaining seconds on a grant.
// RemainingSeconds is -1 for permanent grants and 0 when none is active.
type TemporaryMultiplierResponse struct {
	RemainingSeconds int64 `json:"remaining_seconds"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
