package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username string) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`
}

// UserResponse represents one user on the wire
// swagger:model UserResponse
type UserResponse struct {
	// Display name
	// default: alice
	Username string `json:"username"`

	// Generated user id
	ID string `json:"_id"`
}

// UserErrorResponse represents an error response for user routes
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: Username is required
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler that creates a user.
// @Summary Create a new user
// @Description Creates a user with a generated id. Duplicate usernames are allowed.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.UserResponse "User created"
// @Failure 400 {object} handlers.UserErrorResponse "Missing username / invalid request"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Create(r.Context(), req.Username)
		if err != nil {
			switch err {
			case services.ErrUsernameRequired:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserErrorResponse{
					Error: "Username is required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UserResponse{
			Username: user.Username,
			ID:       user.UserID.String(),
		})
	}
}
