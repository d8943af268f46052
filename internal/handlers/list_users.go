package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UsersEmptyResponse is the informational response when no users exist
// swagger:model UsersEmptyResponse
type UsersEmptyResponse struct {
	// Empty-state message
	// default: No users found
	Message string `json:"message"`
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns every user with id and username only. An empty directory returns an informational message, not an error.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse "Users"
// @Failure 500 {object} handlers.UserErrorResponse "Storage failure"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if len(users) == 0 {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(UsersEmptyResponse{
				Message: "No users found",
			})
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, user := range users {
			resp = append(resp, UserResponse{
				Username: user.Username,
				ID:       user.UserID.String(),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
