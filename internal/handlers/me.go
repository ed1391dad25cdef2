package handlers

import (
	"context"
	"net/http"

	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

// MeTokener defines only the token extraction needed by this handler.
type MeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a bearer token to its account.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler for reading the current account.
// @Summary Current account
// @Description Returns the account identified by the bearer token.
// @Tags users
// @Produce json
// @Success 200 {object} models.User "The current account"
// @Failure 401 {object} handlers.AuthErrorResponse "Missing, invalid or expired token"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler(tokener MeTokener, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, AuthErrorResponse{
				Error: "Could not validate credentials",
			})
			return
		}

		user, err := auth.Authenticate(ctx, tokenStr)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, AuthErrorResponse{
				Error: "Could not validate credentials",
			})
			return
		}

		writeJSON(w, http.StatusOK, models.NewUser(user))
	}
}
