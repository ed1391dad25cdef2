package handlers

import (
	"context"
	"net/http"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
)

// Clearer defines the destructive reset operation.
type Clearer interface {
	ClearAll(ctx context.Context) error
}

// NewClearBathroomsHandler returns an HTTP handler that deletes every
// bathroom record. Intended for test and reset use; no confirmation.
// @Summary Delete all bathrooms
// @Tags bathrooms
// @Success 204 "All records deleted"
// @Failure 500 {object} handlers.BathroomErrorResponse "Internal server error"
// @Router /bathrooms [delete]
func NewClearBathroomsHandler(svc Clearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearAll(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, BathroomErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
