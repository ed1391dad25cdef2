package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

// UserLister defines the listing read used by the users index handler.
type UserLister interface {
	GetAll(ctx context.Context) ([]models.UserDB, error)
}

// UserGetter defines the id lookup used by the user detail handler.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UsersErrorResponse represents an error response for user lookups
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler listing all accounts.
// The listing is capped at the storage layer.
// @Summary List accounts
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Accounts"
// @Failure 500 {object} handlers.UsersErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(reader UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := reader.GetAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeJSON(w, http.StatusInternalServerError, UsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		views := make([]models.User, 0, len(users))
		for i := range users {
			views = append(views, *models.NewUser(&users[i]))
		}
		writeJSON(w, http.StatusOK, views)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one account by id.
// @Summary Get account by id
// @Tags users
// @Produce json
// @Param user_id path string true "Account id"
// @Success 200 {object} models.User "The account"
// @Failure 404 {object} handlers.UsersErrorResponse "No account with that id"
// @Failure 500 {object} handlers.UsersErrorResponse "Internal server error"
// @Router /users/{user_id} [get]
func NewGetUserHandler(reader UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, UsersErrorResponse{
				Error: "User not found",
			})
			return
		}

		user, err := reader.GetByID(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
			writeJSON(w, http.StatusInternalServerError, UsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if user == nil {
			writeJSON(w, http.StatusNotFound, UsersErrorResponse{
				Error: "User not found",
			})
			return
		}

		writeJSON(w, http.StatusOK, models.NewUser(user))
	}
}
