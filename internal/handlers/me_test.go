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
	"github.com/bathroomfinder/bathroom-finder/internal/services"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john", Email: "john@example.com"}

	tests := []struct {
		name         string
		mockSetup    func(tok *MockMeTokener, auth *MockAuthenticator)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(tok *MockMeTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "tok").Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing token",
			mockSetup: func(tok *MockMeTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(tok *MockMeTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "bad").Return(nil, services.ErrUnauthorized)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockMeTokener(ctrl)
			auth := NewMockAuthenticator(ctrl)
			tt.mockSetup(tok, auth)

			handler := NewMeHandler(tok, auth)

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.User
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, user.Username, resp.Username)
			}
		})
	}
}
