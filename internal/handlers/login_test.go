package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/skomarov/resume-builder/internal/models"
	"github.com/skomarov/resume-builder/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{
		ID:        1,
		Username:  "alice",
		FirstName: "A",
		LastName:  "B",
		Email:     "a@x.com",
		Phone:     "555",
	}

	tests := []struct {
		name         string
		reqBody      LoginRequest
		mockSetup    func(m *MockLoginer)
		expectedCode int
		rawBody      bool
	}{
		{
			name:    "success",
			reqBody: LoginRequest{Username: "alice", Password: "pw"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw").
					Return(user, nil)
			},
			expectedCode: 200,
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Username: "alice", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Username: "alice", Password: "pw"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "Login successful!", resp.Message)
				assert.Equal(t, user.Username, resp.User.Username)
				assert.Equal(t, user.FirstName, resp.User.FirstName)
			}
		})
	}
}
