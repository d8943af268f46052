package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
)

// ExerciseRemover defines the interface that the service must implement.
type ExerciseRemover interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// NewResetExercisesHandler returns an HTTP handler that removes every exercise.
// @Summary Remove all exercises
// @Description Administrative bulk clear of the exercise log.
// @Tags exercises
// @Produce json
// @Success 200 {object} handlers.ResetResponse "Exercises removed"
// @Failure 500 {object} handlers.ExerciseErrorResponse "Storage failure"
// @Router /api/exercises [delete]
func NewResetExercisesHandler(svc ExerciseRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.DeleteAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ExerciseErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetResponse{
			Message: "All exercises removed",
			Result:  removed,
		})
	}
}
