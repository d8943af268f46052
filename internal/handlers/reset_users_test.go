package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestResetUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockUserRemover)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserRemover) {
				m.EXPECT().DeleteAll(gomock.Any()).Return(int64(3), nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"message": "All users removed", "result": float64(3)},
		},
		{
			name: "nothing to remove still succeeds",
			mockSetup: func(m *MockUserRemover) {
				m.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"message": "All users removed", "result": float64(0)},
		},
		{
			name: "storage failure",
			mockSetup: func(m *MockUserRemover) {
				m.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserRemover(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewResetUsersHandler(mockSvc)
			req := httptest.NewRequest(http.MethodDelete, "/api/users", nil)
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
