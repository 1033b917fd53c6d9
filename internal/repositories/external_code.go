package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
)

const externalCodeKeyPrefix = "ledger:external_code:"

// ExternalCodeCacheRepository claims payment provider references in Redis so that
// concurrent webhook deliveries of the same reference are processed once.
type ExternalCodeCacheRepository struct {
	client *redis.Client
	exp    time.Duration // how long a claim is held
}

func NewExternalCodeCacheRepository(client *redis.Client, expiration time.Duration) *ExternalCodeCacheRepository {
	return &ExternalCodeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Claim reserves the code. It returns false when another delivery already holds it.
func (r *ExternalCodeCacheRepository) Claim(ctx context.Context, code string) (bool, error) {
	key := externalCodeKeyPrefix + code
	ok, err := r.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339Nano), r.exp).Result()

	logger.Log.Infow(
		"key", key,
		"result", ok,
		"error", err,
	)

	return ok, err
}

// Release drops a claim so the provider can retry a delivery that failed.
func (r *ExternalCodeCacheRepository) Release(ctx context.Context, code string) error {
	key := externalCodeKeyPrefix + code
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "released",
		"error", err,
	)

	return err
}
