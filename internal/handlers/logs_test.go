package handlers

import (
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

func TestLogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockLogQuerier)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "full summary",
			target: "/api/users/" + userID.String() + "/logs",
			mockSetup: func(m *MockLogQuerier) {
				m.EXPECT().
					Logs(gomock.Any(), userID, "", "", 0).
					Return(&models.LogSummary{
						UserID:   userID,
						Username: "alice",
						Entries: []models.ExerciseDB{
							{UserID: userID, Username: "alice", Description: "run", Duration: 30, Date: day},
						},
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"_id":      userID.String(),
				"username": "alice",
				"count":    float64(1),
				"log": []any{
					map[string]any{"description": "run", "duration": float64(30), "date": "Mon Jan 01 2024"},
				},
			},
		},
		{
			name:   "filters and limit forwarded, count reflects returned entries",
			target: "/api/users/" + userID.String() + "/logs?from=2024-01-01&to=2024-01-31&limit=1",
			mockSetup: func(m *MockLogQuerier) {
				m.EXPECT().
					Logs(gomock.Any(), userID, "2024-01-01", "2024-01-31", 1).
					Return(&models.LogSummary{
						UserID:   userID,
						Username: "alice",
						Entries: []models.ExerciseDB{
							{UserID: userID, Username: "alice", Description: "run", Duration: 30, Date: day},
						},
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"_id":      userID.String(),
				"username": "alice",
				"count":    float64(1),
				"log": []any{
					map[string]any{"description": "run", "duration": float64(30), "date": "Mon Jan 01 2024"},
				},
			},
		},
		{
			name:   "empty log keeps an empty array, not null",
			target: "/api/users/" + userID.String() + "/logs",
			mockSetup: func(m *MockLogQuerier) {
				m.EXPECT().
					Logs(gomock.Any(), userID, "", "", 0).
					Return(&models.LogSummary{UserID: userID, Username: "alice"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"_id":      userID.String(),
				"username": "alice",
				"count":    float64(0),
				"log":      []any{},
			},
		},
		{
			name:         "malformed user id",
			target:       "/api/users/not-a-uuid/logs",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
		{
			name:         "non-integer limit",
			target:       "/api/users/" + userID.String() + "/logs?limit=many",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Limit must be an integer"},
		},
		{
			name:   "unknown user",
			target: "/api/users/" + userID.String() + "/logs",
			mockSetup: func(m *MockLogQuerier) {
				m.EXPECT().
					Logs(gomock.Any(), userID, "", "", 0).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name:   "unparseable from",
			target: "/api/users/" + userID.String() + "/logs?from=january",
			mockSetup: func(m *MockLogQuerier) {
				m.EXPECT().
					Logs(gomock.Any(), userID, "january", "", 0).
					Return(nil, services.ErrInvalidDate)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Date must be formatted as YYYY-MM-DD"},
		},
		{
			name:   "internal server error",
			target: "/api/users/" + userID.String() + "/logs",
			mockSetup: func(m *MockLogQuerier) {
				m.EXPECT().
					Logs(gomock.Any(), userID, "", "", 0).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogQuerier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Get("/api/users/{id}/logs", NewLogsHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
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
