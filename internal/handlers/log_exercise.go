package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// ExerciseLogger defines the interface that the service must implement.
type ExerciseLogger interface {
	Log(ctx context.Context, userID uuid.UUID, description string, duration int, date string) (*models.ExerciseDB, error)
}

// LogExerciseRequest represents the JSON body for logging an exercise
// swagger:model LogExerciseRequest
type LogExerciseRequest struct {
	// What was done
	// required: true
	// default: run
	Description string `json:"description"`

	// Whole minutes; a quoted numeric string is accepted too
	// required: true
	// default: 30
	Duration models.LooseInt `json:"duration"`

	// Calendar date YYYY-MM-DD; defaults to today when omitted
	// default: 2024-01-01
	Date string `json:"date"`
}

// LogExerciseResponse represents a logged exercise on the wire. The _id field
// carries the owning user's id.
// swagger:model LogExerciseResponse
type LogExerciseResponse struct {
	// Owner's username
	// default: alice
	Username string `json:"username"`

	// What was done
	// default: run
	Description string `json:"description"`

	// Whole minutes
	// default: 30
	Duration int `json:"duration"`

	// Rendered as weekday+month+day+year text
	// default: Mon Jan 01 2024
	Date string `json:"date"`

	// Owning user's id
	ID string `json:"_id"`
}

// ExerciseErrorResponse represents an error response for exercise routes
// swagger:model ExerciseErrorResponse
type ExerciseErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewLogExerciseHandler returns an HTTP handler that records one exercise
// for the user in the path.
// @Summary Log an exercise
// @Description Validates the owner exists, then persists the exercise with the owner's username denormalized onto it.
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param logExerciseRequest body handlers.LogExerciseRequest true "Exercise payload"
// @Success 201 {object} handlers.LogExerciseResponse "Exercise logged"
// @Failure 400 {object} handlers.ExerciseErrorResponse "Invalid id, description, duration or date"
// @Failure 404 {object} handlers.ExerciseErrorResponse "User not found"
// @Router /api/users/{id}/exercises [post]
func NewLogExerciseHandler(svc ExerciseLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExerciseErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		var req LogExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExerciseErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		exercise, err := svc.Log(r.Context(), userID, req.Description, int(req.Duration), req.Date)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "User not found",
				})
			case services.ErrDescriptionRequired:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Description is required",
				})
			case services.ErrInvalidDuration:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Duration must be a whole number of minutes",
				})
			case services.ErrInvalidDate:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Date must be formatted as YYYY-MM-DD",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(LogExerciseResponse{
			Username:    exercise.Username,
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.DateString(),
			ID:          exercise.UserID.String(),
		})
	}
}
