package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

// AreaReader defines the bounding-box query.
type AreaReader interface {
	GetWithinArea(ctx context.Context, box models.BoundingBox) ([]models.BathroomDB, error)
}

// NewAreaBathroomsHandler returns an HTTP handler for the bounding-box
// query. The result deliberately includes unapproved submissions, unlike
// the approved listing.
// @Summary Bathrooms within an area
// @Tags bathrooms
// @Produce json
// @Param top_left_lat query number true "Top-left latitude"
// @Param top_left_lon query number true "Top-left longitude"
// @Param bottom_right_lat query number true "Bottom-right latitude"
// @Param bottom_right_lon query number true "Bottom-right longitude"
// @Success 200 {array} models.BathroomDB "Records inside the box, approved or not"
// @Failure 400 {object} handlers.BathroomErrorResponse "Missing or non-numeric parameter"
// @Failure 500 {object} handlers.BathroomErrorResponse "Internal server error"
// @Router /bathrooms/area [get]
func NewAreaBathroomsHandler(svc AreaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		parse := func(key string) (float64, bool) {
			v, err := strconv.ParseFloat(q.Get(key), 64)
			return v, err == nil
		}

		var box models.BoundingBox
		var ok bool
		if box.TopLeftLat, ok = parse("top_left_lat"); !ok {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{Error: "invalid top_left_lat"})
			return
		}
		if box.TopLeftLon, ok = parse("top_left_lon"); !ok {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{Error: "invalid top_left_lon"})
			return
		}
		if box.BottomRightLat, ok = parse("bottom_right_lat"); !ok {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{Error: "invalid bottom_right_lat"})
			return
		}
		if box.BottomRightLon, ok = parse("bottom_right_lon"); !ok {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{Error: "invalid bottom_right_lon"})
			return
		}

		bathrooms, err := svc.GetWithinArea(r.Context(), box)
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
