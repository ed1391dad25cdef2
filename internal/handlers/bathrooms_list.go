package handlers

import (
	"context"
	"net/http"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

// ApprovedLister defines the approved-listing operation.
type ApprovedLister interface {
	ListApproved(ctx context.Context) ([]models.BathroomDB, error)
}

// NewListBathroomsHandler returns an HTTP handler for the public listing.
// Only approved records are returned.
// @Summary List approved bathrooms
// @Tags bathrooms
// @Produce json
// @Success 200 {array} models.BathroomDB "Approved records"
// @Failure 500 {object} handlers.BathroomErrorResponse "Internal server error"
// @Router /bathrooms [get]
func NewListBathroomsHandler(svc ApprovedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bathrooms, err := svc.ListApproved(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, BathroomErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if bathrooms == nil {
			bathrooms = []models.BathroomDB{}
		}

		writeJSON(w, http.StatusOK, bathrooms)
	}
}
