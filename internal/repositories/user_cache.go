package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
)

// usernameKeyPrefix namespaces cached id-to-username entries.
const usernameKeyPrefix = "user:username:"

// UserCacheRepository caches id-to-username lookups in Redis. Users are
// immutable, so an entry can only go stale through the bulk clear, which
// calls Clear.
type UserCacheRepository struct {
	rdb *redis.Client
	exp time.Duration
}

func NewUserCacheRepository(rdb *redis.Client, exp time.Duration) *UserCacheRepository {
	return &UserCacheRepository{rdb: rdb, exp: exp}
}

// Get returns the cached username for the id, or the empty string on a miss.
func (r *UserCacheRepository) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	key := usernameKeyPrefix + userID.String()

	username, err := r.rdb.Get(ctx, key).Result()

	logger.Log.Infow(
		"cache_get", key,
		"result", username,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return username, nil
}

// Set stores the username for the id with the configured expiration.
func (r *UserCacheRepository) Set(ctx context.Context, userID uuid.UUID, username string) error {
	key := usernameKeyPrefix + userID.String()

	err := r.rdb.Set(ctx, key, username, r.exp).Err()

	logger.Log.Infow(
		"cache_set", key,
		"value", username,
		"error", err,
	)

	return err
}

// Clear removes every cached username entry.
func (r *UserCacheRepository) Clear(ctx context.Context) error {
	var removed int64

	iter := r.rdb.Scan(ctx, 0, usernameKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		n, err := r.rdb.Del(ctx, iter.Val()).Result()
		if err != nil {
			logger.Log.Errorw("cache_clear delete failed", "key", iter.Val(), "error", err)
			return err
		}
		removed += n
	}
	err := iter.Err()

	logger.Log.Infow(
		"cache_clear", usernameKeyPrefix+"*",
		"result", removed,
		"error", err,
	)

	return err
}
