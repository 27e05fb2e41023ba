package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skomarov/resume-builder/internal/logger"
	"github.com/skomarov/resume-builder/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, firstName, lastName, email, phone string) (int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Given name
	// required: true
	// default: John
	FirstName string `json:"firstName"`

	// Family name
	// required: true
	// default: Doe
	LastName string `json:"lastName"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Phone
	// required: true
	// default: 555-0100
	Phone string `json:"phone"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Always true on success
	Success bool `json:"success"`

	// Success message
	// default: Account created successfully!
	Message string `json:"message"`

	// Generated user id
	// default: 1
	UserID int64 `json:"userId"`
}

// ErrorResponse represents a structured failure response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false on failure
	Success bool `json:"success"`

	// Human-readable error message
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Duplicate username or email / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		userID, err := svc.Register(r.Context(), req.Username, req.Password, req.FirstName, req.LastName, req.Email, req.Phone)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Username already exists",
				})
			case errors.Is(err, services.ErrEmailExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Error creating account",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Success: true,
			Message: "Account created successfully!",
			UserID:  userID,
		})
	}
}
