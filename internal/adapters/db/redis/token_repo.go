package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	customErrors "github.com/vmalgo/researchlab/internal/domain/auth/errors"
)

const keyPrefix = "rt:"

// TokenRepo keeps spent refresh-token JTIs in redis. Only revocations are
// written; a live token has no key at all, so issuing a pair works even when
// redis is down. Keys expire with the token itself, so the set never grows
// past the refresh TTL.
type TokenRepo struct {
	client *redis.Client
}

func NewTokenRepo(client *redis.Client) *TokenRepo {
	return &TokenRepo{client: client}
}

func (r *TokenRepo) Revoke(ctx context.Context, jti string, exp time.Time) error {
	if err := r.client.Set(ctx, keyPrefix+jti, "1", safeTTL(exp)).Err(); err != nil {
		return customErrors.WrapUnavailable(err, "Revoke")
	}
	return nil
}

func (r *TokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+jti).Result()
	switch {
	case err == redis.Nil:
		// No key: the JTI was never revoked (or already expired with the
		// token, which amounts to the same thing).
		return false, nil
	case err != nil:
		return true, customErrors.WrapUnavailable(err, "IsRevoked")
	default:
		return val == "1", nil
	}
}

func safeTTL(exp time.Time) time.Duration {
	ttl := time.Until(exp)
	if ttl <= 0 {
		// keep a minimal TTL so the key still disappears
		return time.Hour
	}
	return ttl
}
