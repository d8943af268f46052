package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidDuration     = errors.New("duration must be a whole number of minutes")
	ErrInvalidDate         = errors.New("date must be a calendar date in YYYY-MM-DD format")
)

// epochDay is the earliest representable query date, the default lower bound.
var epochDay = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ExerciseReader defines read-only operations for exercises.
type ExerciseReader interface {
	ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]models.ExerciseDB, error)
}

// ExerciseWriter defines write operations for exercises.
type ExerciseWriter interface {
	Save(ctx context.Context, exercise models.ExerciseDB) error
	DeleteAll(ctx context.Context) (int64, error)
}

// UserGetter resolves the owning user; it must return ErrUserNotFound when
// no user has the given id.
type UserGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ExerciseService is the exercise log store: log entries for a user and
// answer date-range queries over them.
type ExerciseService struct {
	reader ExerciseReader
	writer ExerciseWriter
	users  UserGetter
}

// NewExerciseService creates a new ExerciseService instance.
func NewExerciseService(reader ExerciseReader, writer ExerciseWriter, users UserGetter) *ExerciseService {
	return &ExerciseService{
		reader: reader,
		writer: writer,
		users:  users,
	}
}

// Log validates and persists one exercise for the user. The owner is
// resolved first; nothing is written when resolution fails. The username is
// denormalized onto the row at creation time and never synced afterwards
// (users are immutable).
func (svc *ExerciseService) Log(ctx context.Context, userID uuid.UUID, description string, duration int, date string) (*models.ExerciseDB, error) {
	user, err := svc.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	day, err := resolveDate(date)
	if err != nil {
		return nil, err
	}

	exercise := models.ExerciseDB{
		ExerciseID:  uuid.New(),
		UserID:      user.UserID,
		Username:    user.Username,
		Description: description,
		Duration:    duration,
		Date:        day,
	}

	if err := svc.writer.Save(ctx, exercise); err != nil {
		logger.Log.Errorw("failed to save exercise", "user_id", userID, "err", err)
		return nil, err
	}

	return &exercise, nil
}

// Logs answers a date-range query over the user's exercises. Missing bounds
// default to [epoch, today]; both ends are inclusive. A limit of zero or
// less means unbounded.
func (svc *ExerciseService) Logs(ctx context.Context, userID uuid.UUID, from, to string, limit int) (*models.LogSummary, error) {
	user, err := svc.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	fromDay := epochDay
	if from != "" {
		if fromDay, err = time.Parse(models.DateLayout, from); err != nil {
			return nil, ErrInvalidDate
		}
	}

	toDay := today()
	if to != "" {
		if toDay, err = time.Parse(models.DateLayout, to); err != nil {
			return nil, ErrInvalidDate
		}
	}

	if limit < 0 {
		limit = 0
	}

	exercises, err := svc.reader.ListByUserAndRange(ctx, user.UserID, fromDay, toDay, limit)
	if err != nil {
		logger.Log.Errorw("failed to query exercises", "user_id", userID, "err", err)
		return nil, err
	}

	return &models.LogSummary{
		UserID:   user.UserID,
		Username: user.Username,
		Entries:  exercises,
	}, nil
}

// DeleteAll removes every exercise.
func (svc *ExerciseService) DeleteAll(ctx context.Context) (int64, error) {
	removed, err := svc.writer.DeleteAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to delete exercises", "err", err)
		return 0, err
	}
	return removed, nil
}

// resolveDate parses an optional YYYY-MM-DD date, defaulting to today.
// Anything else is rejected rather than rendered as garbage downstream.
func resolveDate(date string) (time.Time, error) {
	if date == "" {
		return today(), nil
	}
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

// today truncates the server clock to a UTC calendar date.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
