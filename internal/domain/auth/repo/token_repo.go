package repo

import (
	"context"
	"time"
)

// TokenRepo is a deny list of spent refresh-token JTIs: an absent entry means
// the token is still live, so issuing a pair never touches the store. Access
// tokens are never looked up here; their validation stays a pure signature
// check.
type TokenRepo interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, jti string) (bool, error)
}
