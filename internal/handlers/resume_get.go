package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skomarov/resume-builder/internal/logger"
	"github.com/skomarov/resume-builder/internal/models"
	"github.com/skomarov/resume-builder/internal/services"
)

// ResumeGetter defines the interface that the resume service must implement.
type ResumeGetter interface {
	Get(ctx context.Context, resumeID int64) (*models.Resume, error)
}

// GetResumeResponse represents a successful resume fetch
// swagger:model GetResumeResponse
type GetResumeResponse struct {
	// Always true on success
	Success bool `json:"success"`

	// Assembled resume aggregate
	Resume *models.Resume `json:"resume"`
}

// NewGetResumeHandler returns an HTTP handler for fetching one resume aggregate.
// @Summary Get a resume
// @Description Returns the resume row and all six child collections assembled into one aggregate
// @Tags resume
// @Produce json
// @Param resumeId path int true "Resume ID"
// @Success 200 {object} handlers.GetResumeResponse "Resume aggregate"
// @Failure 404 {object} handlers.ErrorResponse "Resume not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/resume/{resumeId} [get]
func NewGetResumeHandler(svc ResumeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		resumeID, err := strconv.ParseInt(chi.URLParam(r, "resumeId"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "invalid resume id",
			})
			return
		}

		resume, err := svc.Get(r.Context(), resumeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrResumeNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Resume not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Error fetching resume",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetResumeResponse{
			Success: true,
			Resume:  resume,
		})
	}
}
