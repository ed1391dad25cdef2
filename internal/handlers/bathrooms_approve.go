package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
	"github.com/bathroomfinder/bathroom-finder/internal/services"
)

// Approver defines the moderation operation.
type Approver interface {
	Approve(ctx context.Context, bathroomID uuid.UUID) (*models.BathroomDB, error)
}

// NewApproveBathroomHandler returns an HTTP handler for approving a record.
// Approving an already-approved record is idempotent.
// @Summary Approve a bathroom
// @Tags bathrooms
// @Produce json
// @Param bathroom_id path string true "Bathroom id"
// @Success 200 {object} models.BathroomDB "The approved record"
// @Failure 404 {object} handlers.BathroomErrorResponse "No record with that id"
// @Failure 500 {object} handlers.BathroomErrorResponse "Internal server error"
// @Router /bathrooms/{bathroom_id}/approve [post]
func NewApproveBathroomHandler(svc Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bathroomID, err := uuid.Parse(chi.URLParam(r, "bathroom_id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, BathroomErrorResponse{
				Error: "Bathroom not found",
			})
			return
		}

		bathroom, err := svc.Approve(r.Context(), bathroomID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBathroomNotFound):
				writeJSON(w, http.StatusNotFound, BathroomErrorResponse{
					Error: "Bathroom not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, BathroomErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, bathroom)
	}
}
