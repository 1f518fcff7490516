package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Schmolo/nhplus-umsetzung/internal/config"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisRevocationList is the Redis-backed implementation of [RevocationList].
// Revoked token ids are stored with a TTL equal to the token's remaining
// validity, so the list never grows beyond the set of tokens that could
// still be replayed.
type redisRevocationList struct {
	client *redis.Client
	logger *logger.Logger
}

const revocationKeyPrefix = "session:revoked:"

// NewRedisRevocationList connects to the configured Redis instance and
// returns a [RevocationList] backed by it. The connection is verified with a
// ping so misconfiguration fails at startup, not on the first logout.
func NewRedisRevocationList(ctx context.Context, cfg config.Redis, log *logger.Logger) (RevocationList, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisRevocationList").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisRevocationList").Str("address", cfg.Address).Msg("connected to redis successfully")

	return &redisRevocationList{
		client: client,
		logger: log,
	}, nil
}

// Revoke implements [RevocationList]. Tokens that are already past their
// expiry are not recorded; they cannot be replayed anyway.
func (l *redisRevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := l.client.Set(ctx, revocationKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		log.Err(err).Str("token_id", tokenID).Msg("error revoking token")
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

// IsRevoked implements [RevocationList].
func (l *redisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	exists, err := l.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("error checking token revocation: %w", err)
	}

	return exists > 0, nil
}
