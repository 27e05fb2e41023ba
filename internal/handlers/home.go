package handlers

import (
	"encoding/json"
	"net/http"
)

// HomeResponse describes the liveness/info payload
// swagger:model HomeResponse
type HomeResponse struct {
	// Service description
	// default: Resume Builder API with Authentication
	Message string `json:"message"`

	// Backing store
	// default: PostgreSQL
	Database string `json:"database"`
}

// NewHomeHandler returns an HTTP handler for the liveness/info endpoint.
// @Summary Service info
// @Description Returns service name and backing database
// @Tags info
// @Produce json
// @Success 200 {object} handlers.HomeResponse "Service info"
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HomeResponse{
			Message:  "Resume Builder API with Authentication",
			Database: "PostgreSQL",
		})
	}
}
