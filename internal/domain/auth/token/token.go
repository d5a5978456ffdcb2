package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind discriminates access tokens from refresh tokens. It is part of the
// signed claim set, so a refresh token can never be replayed as an access
// token or vice versa.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

type Claims struct {
	jwt.RegisteredClaims
	Kind Kind `json:"kind"`
}

// Codec signs and verifies self-contained bearer tokens. Parse is a pure
// computation: signature and expiry checks only, no store access.
type Codec interface {
	Issue(userID int64, kind Kind) (token string, exp time.Time, jti string, err error)
	Parse(raw string, kind Kind) (Claims, error)
}
