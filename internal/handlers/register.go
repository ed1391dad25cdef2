package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
	"github.com/bathroomfinder/bathroom-finder/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string, firstName, lastName *string) (string, *models.UserDB, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: Secr3t!pass
	Password string `json:"password"`

	// First name
	FirstName *string `json:"first_name,omitempty"`

	// Last name
	LastName *string `json:"last_name,omitempty"`
}

// AuthResponse represents a successful registration or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Signed access token
	AccessToken string `json:"access_token"`

	// Token type
	// default: bearer
	TokenType string `json:"token_type"`

	// The account
	User *models.User `json:"user"`
}

// AuthErrorResponse represents an error response for auth endpoints
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates an account with unique username and email (both lowercased) and returns an access token.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Account registration request"
// @Success 201 {object} handlers.AuthResponse "Account created"
// @Failure 400 {object} handlers.AuthErrorResponse "Invalid request body, weak password or bad email"
// @Failure 409 {object} handlers.AuthErrorResponse "Username or email already taken"
// @Failure 500 {object} handlers.AuthErrorResponse "Internal server error"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, AuthErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusConflict, AuthErrorResponse{
					Error: "Email or username already registered",
				})
			case errors.Is(err, services.ErrWeakPassword),
				errors.Is(err, services.ErrInvalidEmail):
				writeJSON(w, http.StatusBadRequest, AuthErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, AuthErrorResponse{
					Error: "Error creating user account",
				})
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        models.NewUser(user),
		})
	}
}
