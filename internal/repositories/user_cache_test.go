package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, rdb.Ping(context.Background()).Err())

	teardown := func() {
		rdb.Close()
		container.Terminate(context.Background())
	}

	return rdb, teardown
}

func TestUserCacheRepository_SetAndGet(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewUserCacheRepository(rdb, time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	assert.NoError(t, repo.Set(ctx, userID, "alice"))

	username, err := repo.Get(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestUserCacheRepository_Get_Miss(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewUserCacheRepository(rdb, time.Minute)

	username, err := repo.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, "", username)
}

func TestUserCacheRepository_Clear(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewUserCacheRepository(rdb, time.Minute)
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()
	assert.NoError(t, repo.Set(ctx, first, "alice"))
	assert.NoError(t, repo.Set(ctx, second, "bob"))

	// An unrelated key must survive the clear.
	assert.NoError(t, rdb.Set(ctx, "unrelated", "kept", 0).Err())

	assert.NoError(t, repo.Clear(ctx))

	username, err := repo.Get(ctx, first)
	assert.NoError(t, err)
	assert.Equal(t, "", username)

	username, err = repo.Get(ctx, second)
	assert.NoError(t, err)
	assert.Equal(t, "", username)

	kept, err := rdb.Get(ctx, "unrelated").Result()
	assert.NoError(t, err)
	assert.Equal(t, "kept", kept)
}
