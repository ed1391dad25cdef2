package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

// Submitter defines the single-submission operation.
type Submitter interface {
	Submit(ctx context.Context, attrs models.BathroomAttributes) (*models.BathroomDB, error)
}

// NewCreateBathroomHandler returns an HTTP handler for user submissions.
// Submissions start pending moderation; the response carries
// approved=false and does not block on approval.
// @Summary Submit a bathroom
// @Tags bathrooms
// @Accept json
// @Produce json
// @Param bathroom body models.BathroomAttributes true "Bathroom attributes"
// @Success 201 {object} models.BathroomDB "The pending record"
// @Failure 400 {object} handlers.BathroomErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.BathroomErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.BathroomErrorResponse "Internal server error"
// @Router /bathrooms [post]
// @Security BearerAuth
func NewCreateBathroomHandler(svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var attrs models.BathroomAttributes

		if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		bathroom, err := svc.Submit(r.Context(), attrs)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, BathroomErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusCreated, bathroom)
	}
}
