package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

type ExerciseReadRepository struct {
	db *sqlx.DB
}

func NewExerciseReadRepository(db *sqlx.DB) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db}
}

// ListByUserAndRange returns the user's exercises with a date inside
// [from, to] inclusive, in insertion order. A limit of zero or less means
// unbounded; the CASE maps it to LIMIT NULL so Postgres never sees a
// negative limit.
func (r *ExerciseReadRepository) ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]models.ExerciseDB, error) {
	const query = `
		SELECT exercise_id, user_id, username, description, duration_min, exercise_date
		FROM exercises
		WHERE user_id = $1
		  AND exercise_date BETWEEN $2 AND $3
		ORDER BY created_at
		LIMIT CASE WHEN $4 <= 0 THEN NULL ELSE $4 END
	`
	args := []any{userID, from, to, limit}

	var exercises []models.ExerciseDB
	err := r.db.SelectContext(ctx, &exercises, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result_count", len(exercises),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return exercises, nil
}

type ExerciseWriteRepository struct {
	db *sqlx.DB
}

func NewExerciseWriteRepository(db *sqlx.DB) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db}
}

// Save persists a new exercise row. Ownership was checked by the caller;
// there is no foreign key so bulk-clearing users never cascades here.
func (r *ExerciseWriteRepository) Save(ctx context.Context, exercise models.ExerciseDB) error {
	const query = `
		INSERT INTO exercises (exercise_id, user_id, username, description, duration_min, exercise_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{
		exercise.ExerciseID,
		exercise.UserID,
		exercise.Username,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteAll removes every exercise row and reports how many were removed.
func (r *ExerciseWriteRepository) DeleteAll(ctx context.Context) (int64, error) {
	const query = `DELETE FROM exercises`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
