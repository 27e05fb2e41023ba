package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skomarov/resume-builder/internal/logger"
)

// ResumeDeleter defines the interface that the resume service must implement.
type ResumeDeleter interface {
	Delete(ctx context.Context, resumeID int64) error
}

// DeleteResumeResponse represents a successful resume-delete response
// swagger:model DeleteResumeResponse
type DeleteResumeResponse struct {
	// Always true on success
	Success bool `json:"success"`

	// Success message
	// default: Resume deleted successfully!
	Message string `json:"message"`
}

// NewDeleteResumeHandler returns an HTTP handler deleting one resume.
// @Summary Delete a resume
// @Description Deletes the resume row; the store cascades the delete to all child collections. Idempotent.
// @Tags resume
// @Produce json
// @Param resumeId path int true "Resume ID"
// @Success 200 {object} handlers.DeleteResumeResponse "Resume deleted"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/resume/{resumeId} [delete]
func NewDeleteResumeHandler(svc ResumeDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), resumeID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Error deleting resume",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResumeResponse{
			Success: true,
			Message: "Resume deleted successfully!",
		})
	}
}
