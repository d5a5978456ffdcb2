package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	customErrors "github.com/vmalgo/researchlab/internal/domain/auth/errors"
	"github.com/vmalgo/researchlab/internal/domain/auth/token"
	"github.com/vmalgo/researchlab/internal/infra/config"
)

const issuer = "researchlab"

// Codec signs tokens with HS256 over a process-wide secret. The secret is
// read once at construction and never mutated.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(cfg *config.Config) *Codec {
	return &Codec{
		secret:     []byte(cfg.SecretKey),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}
}

func (c *Codec) Issue(userID int64, kind token.Kind) (string, time.Time, string, error) {
	ttl := c.accessTTL
	if kind == token.KindRefresh {
		ttl = c.refreshTTL
	}

	jti := uuid.NewString()
	now := time.Now()

	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
		Kind: kind,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, "", customErrors.WrapInternal(err, "sign token")
	}

	return signed, claims.ExpiresAt.Time, jti, nil
}

// Parse verifies the signature before inspecting any claim, then expiry,
// then the kind discriminator. Every failure collapses to ErrInvalidToken so
// tampered, expired and wrong-kind tokens are indistinguishable to callers.
func (c *Codec) Parse(raw string, kind token.Kind) (token.Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &token.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithIssuedAt(), jwt.WithIssuer(issuer), jwt.WithExpirationRequired())

	if err != nil || !parsed.Valid {
		return token.Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*token.Claims)
	if !ok {
		return token.Claims{}, customErrors.ErrInvalidToken
	}

	if claims.Kind != kind {
		return token.Claims{}, customErrors.ErrInvalidToken
	}

	return *claims, nil
}
