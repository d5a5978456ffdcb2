package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	customErrors "github.com/vmalgo/researchlab/internal/domain/auth/errors"
	"github.com/vmalgo/researchlab/internal/domain/auth/token"
	"github.com/vmalgo/researchlab/internal/infra/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:       "unit-test-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

func TestCodec_IssueParse(t *testing.T) {
	codec := NewCodec(testConfig())

	raw, exp, jti, err := codec.Issue(42, token.KindAccess)
	if err != nil || exp.IsZero() || jti == "" {
		t.Fatalf("bad issue: %v", err)
	}

	claims, err := codec.Parse(raw, token.KindAccess)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "42" {
		t.Fatalf("want subject 42, got %s", claims.Subject)
	}
	if claims.Kind != token.KindAccess {
		t.Fatalf("want kind access, got %s", claims.Kind)
	}
}

func TestCodec_KindDiscriminator(t *testing.T) {
	codec := NewCodec(testConfig())

	refresh, _, _, _ := codec.Issue(42, token.KindRefresh)
	if _, err := codec.Parse(refresh, token.KindAccess); !errors.Is(err, customErrors.ErrInvalidToken) {
		t.Fatal("refresh token must not parse as access")
	}

	access, _, _, _ := codec.Issue(42, token.KindAccess)
	if _, err := codec.Parse(access, token.KindRefresh); !errors.Is(err, customErrors.ErrInvalidToken) {
		t.Fatal("access token must not parse as refresh")
	}
}

func TestCodec_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = -time.Minute
	codec := NewCodec(cfg)

	raw, _, _, err := codec.Issue(7, token.KindAccess)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := codec.Parse(raw, token.KindAccess); !errors.Is(err, customErrors.ErrInvalidToken) {
		t.Fatal("expired token must be invalid")
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	codec := NewCodec(testConfig())

	otherCfg := testConfig()
	otherCfg.SecretKey = "a-different-secret"
	other := NewCodec(otherCfg)

	raw, _, _, _ := other.Issue(7, token.KindAccess)
	if _, err := codec.Parse(raw, token.KindAccess); !errors.Is(err, customErrors.ErrInvalidToken) {
		t.Fatal("token signed with another secret must be invalid")
	}
}

func TestCodec_Tampered(t *testing.T) {
	codec := NewCodec(testConfig())

	raw, _, _, _ := codec.Issue(7, token.KindAccess)
	tampered := raw[:len(raw)-2] + "xx"
	if _, err := codec.Parse(tampered, token.KindAccess); !errors.Is(err, customErrors.ErrInvalidToken) {
		t.Fatal("tampered token must be invalid")
	}

	if _, err := codec.Parse("not-a-token", token.KindAccess); !errors.Is(err, customErrors.ErrInvalidToken) {
		t.Fatal("garbage must be invalid")
	}
}

func TestCodec_WrongAlg(t *testing.T) {
	codec := NewCodec(testConfig())

	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS384, jwtlib.MapClaims{
		"sub": "7", "kind": "access", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := codec.Parse(raw, token.KindAccess); !errors.Is(err, customErrors.ErrInvalidToken) {
		t.Fatal("non-HS256 token must be invalid")
	}
}
