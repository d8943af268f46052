package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// LogQuerier defines the interface that the service must implement.
type LogQuerier interface {
	Logs(ctx context.Context, userID uuid.UUID, from, to string, limit int) (*models.LogSummary, error)
}

// LogEntry is one reshaped exercise inside a log query response
// swagger:model LogEntry
type LogEntry struct {
	// What was done
	// default: run
	Description string `json:"description"`

	// Whole minutes
	// default: 30
	Duration int `json:"duration"`

	// Rendered as weekday+month+day+year text
	// default: Mon Jan 01 2024
	Date string `json:"date"`
}

// LogsResponse represents the answer to a log query
// swagger:model LogsResponse
type LogsResponse struct {
	// User id
	ID string `json:"_id"`

	// Owner's username
	// default: alice
	Username string `json:"username"`

	// Number of entries returned, after filtering and limiting
	// default: 1
	Count int `json:"count"`

	// Selected entries in insertion order
	Log []LogEntry `json:"log"`
}

// NewLogsHandler returns an HTTP handler that answers log queries.
// @Summary Query a user's exercise log
// @Description Filters by inclusive [from, to] calendar dates (defaulting to [epoch, today]) and caps the result at limit. Count reflects the returned entries, not the unfiltered total.
// @Tags exercises
// @Produce json
// @Param id path string true "User id"
// @Param from query string false "Lower bound, YYYY-MM-DD"
// @Param to query string false "Upper bound, YYYY-MM-DD"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} handlers.LogsResponse "Log summary"
// @Failure 400 {object} handlers.ExerciseErrorResponse "Invalid id, date or limit"
// @Failure 404 {object} handlers.ExerciseErrorResponse "User not found"
// @Router /api/users/{id}/logs [get]
func NewLogsHandler(svc LogQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExerciseErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if limit, err = strconv.Atoi(raw); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Limit must be an integer",
				})
				return
			}
		}

		summary, err := svc.Logs(r.Context(), userID, r.URL.Query().Get("from"), r.URL.Query().Get("to"), limit)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "User not found",
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

		log := make([]LogEntry, 0, len(summary.Entries))
		for _, exercise := range summary.Entries {
			log = append(log, LogEntry{
				Description: exercise.Description,
				Duration:    exercise.Duration,
				Date:        exercise.DateString(),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogsResponse{
			ID:       summary.UserID.String(),
			Username: summary.Username,
			Count:    len(log),
			Log:      log,
		})
	}
}
