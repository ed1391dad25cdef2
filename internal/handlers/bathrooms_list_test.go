package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bathroomfinder/bathroom-finder/internal/models"
)

func TestListBathroomsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns approved records", func(t *testing.T) {
		mockSvc := NewMockApprovedLister(ctrl)
		mockSvc.EXPECT().ListApproved(gomock.Any()).Return([]models.BathroomDB{
			{BathroomID: uuid.New(), Approved: true},
		}, nil)

		handler := NewListBathroomsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/bathrooms", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.BathroomDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.True(t, resp[0].Approved)
	})

	t.Run("empty listing", func(t *testing.T) {
		mockSvc := NewMockApprovedLister(ctrl)
		mockSvc.EXPECT().ListApproved(gomock.Any()).Return(nil, nil)

		handler := NewListBathroomsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/bathrooms", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockApprovedLister(ctrl)
		mockSvc.EXPECT().ListApproved(gomock.Any()).Return(nil, errors.New("db error"))

		handler := NewListBathroomsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/bathrooms", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestClearBathroomsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("clears everything", func(t *testing.T) {
		mockSvc := NewMockClearer(ctrl)
		mockSvc.EXPECT().ClearAll(gomock.Any()).Return(nil)

		handler := NewClearBathroomsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodDelete, "/bathrooms", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockClearer(ctrl)
		mockSvc.EXPECT().ClearAll(gomock.Any()).Return(errors.New("db error"))

		handler := NewClearBathroomsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodDelete, "/bathrooms", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
