package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
)

func newRepo(t *testing.T) (*TokenRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	t.Cleanup(mr.Close)

	client := redisv9.NewClient(&redisv9.Options{
		Addr: mr.Addr(),
	})
	return NewTokenRepo(client), mr
}

func TestTokenRepo_RevokeAndIsRevoked(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	exp := time.Now().Add(1 * time.Minute)
	if err := repo.Revoke(ctx, "jti2", exp); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	revoked, err := repo.IsRevoked(ctx, "jti2")
	if err != nil {
		t.Fatalf("IsRevoked err: %v", err)
	}
	if !revoked {
		t.Fatal("token should be marked revoked")
	}
}

func TestTokenRepo_UnknownJTI(t *testing.T) {
	repo, _ := newRepo(t)

	revoked, err := repo.IsRevoked(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("IsRevoked err: %v", err)
	}
	if revoked {
		t.Fatal("unknown jti must not read as revoked")
	}
}

func TestTokenRepo_KeyExpiresWithToken(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	exp := time.Now().Add(time.Minute)
	if err := repo.Revoke(ctx, "jti3", exp); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	revoked, err := repo.IsRevoked(ctx, "jti3")
	if err != nil {
		t.Fatalf("IsRevoked err: %v", err)
	}
	if revoked {
		t.Fatal("revocation marker must expire with the token")
	}
}

func TestTokenRepo_PastExpiryStillGetsTTL(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	// already-expired token: the key must still carry a TTL so it disappears
	if err := repo.Revoke(ctx, "jti4", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if ttl := mr.TTL("rt:jti4"); ttl <= 0 {
		t.Fatalf("expected positive TTL, got %v", ttl)
	}
}
