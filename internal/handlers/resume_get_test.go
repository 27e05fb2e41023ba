package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/skomarov/resume-builder/internal/models"
	"github.com/skomarov/resume-builder/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetResumeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregate := &models.Resume{
		ResumeDB: models.ResumeDB{ID: 3, UserID: 1, Name: "Alice", Email: "a@x.com", Phone: "555"},
		WorkExperience: []models.WorkExperienceDB{
			{ID: 1, ResumeID: 3, Company: "Acme", Position: "Eng", StartDate: "2020", EndDate: "2022", Experience: "2y", Description: "did stuff"},
		},
		Education:      []models.EducationDB{},
		Projects:       []models.ProjectDB{},
		Skills:         []models.SkillGroupDB{},
		Hobbies:        []models.HobbyDB{},
		Certifications: []models.CertificationDB{},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockResumeGetter)
		expectedCode int
	}{
		{
			name:   "success",
			target: "/api/resume/3",
			mockSetup: func(m *MockResumeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(3)).Return(aggregate, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "not found",
			target: "/api/resume/99",
			mockSetup: func(m *MockResumeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, services.ErrResumeNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "invalid id",
			target:       "/api/resume/abc",
			expectedCode: 400,
		},
		{
			name:   "internal server error",
			target: "/api/resume/3",
			mockSetup: func(m *MockResumeGetter) {
				m.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockResumeGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Get("/api/resume/{resumeId}", NewGetResumeHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp GetResumeResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, int64(3), resp.Resume.ID)
				assert.Len(t, resp.Resume.WorkExperience, 1)
				assert.Equal(t, "Acme", resp.Resume.WorkExperience[0].Company)
			}
		})
	}
}
