package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLogExerciseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func(m *MockExerciseLogger)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "success with string duration",
			target: "/api/users/" + userID.String() + "/exercises",
			body:   `{"description":"run","duration":"30","date":"2024-01-01"}`,
			mockSetup: func(m *MockExerciseLogger) {
				m.EXPECT().
					Log(gomock.Any(), userID, "run", 30, "2024-01-01").
					Return(&models.ExerciseDB{
						ExerciseID:  uuid.New(),
						UserID:      userID,
						Username:    "alice",
						Description: "run",
						Duration:    30,
						Date:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
					}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{
				"username":    "alice",
				"description": "run",
				"duration":    float64(30),
				"date":        "Mon Jan 01 2024",
				"_id":         userID.String(),
			},
		},
		{
			name:         "malformed user id",
			target:       "/api/users/not-a-uuid/exercises",
			body:         `{"description":"run","duration":30}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
		{
			name:   "unknown user",
			target: "/api/users/" + userID.String() + "/exercises",
			body:   `{"description":"run","duration":30}`,
			mockSetup: func(m *MockExerciseLogger) {
				m.EXPECT().
					Log(gomock.Any(), userID, "run", 30, "").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name:   "missing description",
			target: "/api/users/" + userID.String() + "/exercises",
			body:   `{"duration":30}`,
			mockSetup: func(m *MockExerciseLogger) {
				m.EXPECT().
					Log(gomock.Any(), userID, "", 30, "").
					Return(nil, services.ErrDescriptionRequired)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Description is required"},
		},
		{
			name:         "non-numeric duration",
			target:       "/api/users/" + userID.String() + "/exercises",
			body:         `{"description":"run","duration":"half an hour"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name:   "missing duration",
			target: "/api/users/" + userID.String() + "/exercises",
			body:   `{"description":"run"}`,
			mockSetup: func(m *MockExerciseLogger) {
				m.EXPECT().
					Log(gomock.Any(), userID, "run", 0, "").
					Return(nil, services.ErrInvalidDuration)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Duration must be a whole number of minutes"},
		},
		{
			name:   "unparseable date",
			target: "/api/users/" + userID.String() + "/exercises",
			body:   `{"description":"run","duration":30,"date":"yesterday"}`,
			mockSetup: func(m *MockExerciseLogger) {
				m.EXPECT().
					Log(gomock.Any(), userID, "run", 30, "yesterday").
					Return(nil, services.ErrInvalidDate)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Date must be formatted as YYYY-MM-DD"},
		},
		{
			name:   "internal server error",
			target: "/api/users/" + userID.String() + "/exercises",
			body:   `{"description":"run","duration":30}`,
			mockSetup: func(m *MockExerciseLogger) {
				m.EXPECT().
					Log(gomock.Any(), userID, "run", 30, "").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockExerciseLogger(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Post("/api/users/{id}/exercises", NewLogExerciseHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, tt.target, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
