package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skomarov/resume-builder/internal/logger"
	"github.com/skomarov/resume-builder/internal/models"
	"github.com/skomarov/resume-builder/internal/services"
)

// ResumeCreator defines the interface that the resume service must implement.
type ResumeCreator interface {
	Create(ctx context.Context, resume *models.Resume) (int64, error)
}

// CreateResumeRequest represents the JSON body for saving a resume aggregate
// swagger:model CreateResumeRequest
type CreateResumeRequest struct {
	// Owner user id
	// required: true
	// default: 1
	UserID int64 `json:"userId"`

	// Full name on the resume
	// required: true
	Name string `json:"name"`

	// Contact email
	// required: true
	Email string `json:"email"`

	// Contact phone
	// required: true
	Phone string `json:"phone"`

	// Date of birth
	DOB string `json:"dob"`

	// LinkedIn profile URL
	LinkedIn string `json:"linkedin"`

	// GitHub profile URL
	GitHub string `json:"github"`

	// Objective text
	Objective string `json:"objective"`

	// Profile image reference
	ProfilePicture string `json:"profilePicture"`

	WorkExperience []models.WorkExperienceDB `json:"workExperience"`
	Education      []models.EducationDB      `json:"education"`
	Projects       []models.ProjectDB        `json:"projects"`
	Skills         []models.SkillGroupDB     `json:"skills"`
	Hobbies        []models.HobbyDB          `json:"hobbies"`
	Certifications []models.CertificationDB  `json:"certifications"`
}

// CreateResumeResponse represents a successful resume-save response
// swagger:model CreateResumeResponse
type CreateResumeResponse struct {
	// Always true on success
	Success bool `json:"success"`

	// Success message
	// default: Resume saved successfully!
	Message string `json:"message"`

	// Generated resume id
	// default: 1
	ResumeID int64 `json:"resumeId"`
}

// NewCreateResumeHandler returns an HTTP handler for saving a resume aggregate.
// @Summary Save a resume
// @Description Inserts the resume row and all six child collections as one transactional unit
// @Tags resume
// @Accept json
// @Produce json
// @Param createResumeRequest body handlers.CreateResumeRequest true "Resume aggregate"
// @Success 201 {object} handlers.CreateResumeResponse "Resume saved"
// @Failure 400 {object} handlers.ErrorResponse "User ID is required / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/resume [post]
func NewCreateResumeHandler(svc ResumeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateResumeRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		resume := &models.Resume{
			ResumeDB: models.ResumeDB{
				UserID:         req.UserID,
				Name:           req.Name,
				Email:          req.Email,
				Phone:          req.Phone,
				DOB:            req.DOB,
				LinkedIn:       req.LinkedIn,
				GitHub:         req.GitHub,
				Objective:      req.Objective,
				ProfilePicture: req.ProfilePicture,
			},
			WorkExperience: req.WorkExperience,
			Education:      req.Education,
			Projects:       req.Projects,
			Skills:         req.Skills,
			Hobbies:        req.Hobbies,
			Certifications: req.Certifications,
		}

		resumeID, err := svc.Create(r.Context(), resume)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "User ID is required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Error saving resume",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateResumeResponse{
			Success:  true,
			Message:  "Resume saved successfully!",
			ResumeID: resumeID,
		})
	}
}
