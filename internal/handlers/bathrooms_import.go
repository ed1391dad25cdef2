package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/bathroomfinder/bathroom-finder/internal/logger"
	"github.com/bathroomfinder/bathroom-finder/internal/models"
	"github.com/bathroomfinder/bathroom-finder/internal/services"
)

// maxImportSize bounds the uploaded payload (32 MiB).
const maxImportSize = 32 << 20

// Importer defines the bulk import operation.
type Importer interface {
	ImportBatch(ctx context.Context, data []byte) ([]models.BathroomDB, error)
}

// BathroomErrorResponse represents an error response for bathroom endpoints
// swagger:model BathroomErrorResponse
type BathroomErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewImportBathroomsHandler returns an HTTP handler for bulk import.
// The uploaded file must be a JSON array of records; imported records are
// pre-approved. A single malformed record fails the whole batch.
// @Summary Bulk import bathrooms
// @Tags bathrooms
// @Accept mpfd
// @Produce json
// @Param file formData file true "JSON array of bathroom records"
// @Success 200 {array} models.BathroomDB "Imported records"
// @Failure 400 {object} handlers.BathroomErrorResponse "Malformed payload"
// @Failure 500 {object} handlers.BathroomErrorResponse "Internal server error"
// @Router /bathrooms/import [post]
func NewImportBathroomsHandler(svc Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{
				Error: "expected a multipart file upload",
			})
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{
				Error: "missing file field",
			})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{
				Error: "failed to read file",
			})
			return
		}

		bathrooms, err := svc.ImportBatch(r.Context(), data)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMalformedImport):
				writeJSON(w, http.StatusBadRequest, BathroomErrorResponse{
					Error: "malformed import payload",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, BathroomErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, bathrooms)
	}
}
