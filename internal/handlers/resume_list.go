package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skomarov/resume-builder/internal/logger"
	"github.com/skomarov/resume-builder/internal/models"
)

// ResumeLister defines the interface that the resume service must implement.
type ResumeLister interface {
	List(ctx context.Context, userID int64) ([]models.ResumeDB, error)
}

// ListResumesResponse represents a successful resume-list response
// swagger:model ListResumesResponse
type ListResumesResponse struct {
	// Always true on success
	Success bool `json:"success"`

	// Number of resumes returned
	// default: 1
	Count int `json:"count"`

	// Parent rows only, newest first
	Resumes []models.ResumeDB `json:"resumes"`
}

// NewListResumesHandler returns an HTTP handler listing a user's resumes.
// @Summary List resumes for a user
// @Description Returns resume parent rows (no child collections) ordered by creation time, newest first
// @Tags resume
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} handlers.ListResumesResponse "Resume list"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/user/{userId}/resumes [get]
func NewListResumesHandler(svc ResumeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "invalid user id",
			})
			return
		}

		resumes, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Error fetching resumes",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListResumesResponse{
			Success: true,
			Count:   len(resumes),
			Resumes: resumes,
		})
	}
}
