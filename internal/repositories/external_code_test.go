package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestExternalCodeCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewExternalCodeCacheRepository(rdb, 2*time.Second)

	t.Run("second claim is refused", func(t *testing.T) {
		ok, err := repo.Claim(ctx, "PAY-1")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Claim(ctx, "PAY-1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("release frees the code", func(t *testing.T) {
		_, err := repo.Claim(ctx, "PAY-2")
		require.NoError(t, err)
		require.NoError(t, repo.Release(ctx, "PAY-2"))

		ok, err := repo.Claim(ctx, "PAY-2")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("claim expires", func(t *testing.T) {
		_, err := repo.Claim(ctx, "PAY-3")
		require.NoError(t, err)

		time.Sleep(3 * time.Second)

		ok, err := repo.Claim(ctx, "PAY-3")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}
