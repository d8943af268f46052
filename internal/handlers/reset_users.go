package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
)

// UserRemover defines the interface that the service must implement.
type UserRemover interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// ResetResponse represents the result of an administrative bulk clear
// swagger:model ResetResponse
type ResetResponse struct {
	// Confirmation message
	// default: All users removed
	Message string `json:"message"`

	// Number of records removed
	// default: 3
	Result int64 `json:"result"`
}

// NewResetUsersHandler returns an HTTP handler that removes every user.
// @Summary Remove all users
// @Description Administrative bulk clear. Existing exercises are untouched.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ResetResponse "Users removed"
// @Failure 500 {object} handlers.UserErrorResponse "Storage failure"
// @Router /api/users [delete]
func NewResetUsersHandler(svc UserRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.DeleteAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetResponse{
			Message: "All users removed",
			Result:  removed,
		})
	}
}
