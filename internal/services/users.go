package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUserNotFound     = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	DeleteAll(ctx context.Context) (int64, error)
}

// UsernameCache caches id-to-username resolutions.
type UsernameCache interface {
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Set(ctx context.Context, userID uuid.UUID, username string) error
	Clear(ctx context.Context) error
}

// UserService is the user directory: create, list, resolve, bulk clear.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  UsernameCache
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, cache UsernameCache) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Create adds a user with a generated id. Duplicate usernames are allowed.
func (svc *UserService) Create(ctx context.Context, username string) (*models.UserDB, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}

	user := models.UserDB{
		UserID:   uuid.New(),
		Username: username,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &user, nil
}

// List returns all users. An empty directory is not an error.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Get resolves a user by id, consulting the cache first. Cache failures are
// best effort on the read path: the database remains the system of record.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	if username, err := svc.cache.Get(ctx, userID); err == nil && username != "" {
		return &models.UserDB{UserID: userID, Username: username}, nil
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := svc.cache.Set(ctx, userID, user.Username); err != nil {
		logger.Log.Errorw("failed to cache username", "user_id", userID, "err", err)
	}

	return user, nil
}

// DeleteAll removes every user. The cache is cleared first so no stale
// resolution can outlive the rows backing it.
func (svc *UserService) DeleteAll(ctx context.Context) (int64, error) {
	if err := svc.cache.Clear(ctx); err != nil {
		logger.Log.Errorw("failed to clear username cache", "err", err)
		return 0, err
	}

	removed, err := svc.writer.DeleteAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to delete users", "err", err)
		return 0, err
	}

	return removed, nil
}
