package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/vmalgo/researchlab/internal/adapters/transport/http/dto"
	"github.com/vmalgo/researchlab/internal/app/auth/password"
	customErrors "github.com/vmalgo/researchlab/internal/domain/auth/errors"
	"github.com/vmalgo/researchlab/internal/domain/auth/model"
	"github.com/vmalgo/researchlab/internal/domain/auth/repo"
	"github.com/vmalgo/researchlab/internal/domain/auth/token"
	"github.com/vmalgo/researchlab/internal/infra/config"
)

type authService struct {
	userRepo  repo.UserRepo
	tokenRepo repo.TokenRepo
	codec     token.Codec
	hasher    *password.Hasher
	cfg       *config.Config
	v         *validator.Validate
}

func (a *authService) Register(ctx context.Context, dto dto.RegisterDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}
	if utf8.RuneCountInString(dto.Password) < a.cfg.PasswordMinLength {
		return model.TokenPair{}, customErrors.NewInvalidArgument("password too short")
	}

	passwordHash, err := a.hasher.Hash(dto.Password)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		Email:            strings.ToLower(dto.Email),
		Username:         dto.Username,
		FullName:         dto.FullName,
		PasswordHash:     passwordHash,
		IsActive:         true,
		SubscriptionTier: model.TierFree,
	}

	// The store arbitrates uniqueness: a duplicate insert racing past any
	// pre-check still comes back as ErrAlreadyExists.
	created, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.TokenPair{}, customErrors.ErrAlreadyExists
		}
		return model.TokenPair{}, err
	}

	return a.issueTokens(created)
}

func (a *authService) Login(ctx context.Context, dto dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByEmail(ctx, strings.ToLower(dto.Email))
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// Same category as a wrong password so responses do not reveal
		// whether the email is registered.
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.TokenPair{}, err
	}

	if !a.hasher.Verify(dto.Password, user.PasswordHash) {
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return model.TokenPair{}, customErrors.ErrAccountInactive
	}

	return a.issueTokens(user)
}

func (a *authService) Refresh(ctx context.Context, dto dto.RefreshDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.codec.Parse(dto.RefreshToken, token.KindRefresh)
	if err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	revoked, err := a.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return model.TokenPair{}, err
	}
	if revoked {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	user, err := a.resolveSubject(ctx, claims.Subject)
	if err != nil {
		return model.TokenPair{}, err
	}

	// Rotation: the presented refresh token is spent before a new pair is
	// minted, so it cannot be replayed.
	if err = a.tokenRepo.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return model.TokenPair{}, err
	}

	return a.issueTokens(user)
}

func (a *authService) Validate(ctx context.Context, dto dto.ValidateDTO) (model.User, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.codec.Parse(dto.AccessToken, token.KindAccess)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}

	return a.resolveSubject(ctx, claims.Subject)
}

func (a *authService) Logout(ctx context.Context, dto dto.LogoutDTO) error {
	if err := a.v.Struct(dto); err != nil {
		return customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.codec.Parse(dto.RefreshToken, token.KindRefresh)
	if err != nil {
		return customErrors.ErrInvalidToken
	}

	return a.tokenRepo.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (a *authService) resolveSubject(ctx context.Context, subject string) (model.User, error) {
	uid, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}

	user, err := a.userRepo.GetUserByID(ctx, uid)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.ErrInvalidToken
	case err != nil:
		return model.User{}, err
	}

	if !user.IsActive {
		return model.User{}, customErrors.ErrAccountInactive
	}
	return user, nil
}

// issueTokens is pure minting: the deny list only ever sees spent JTIs, so a
// token-store outage cannot fail registration or login.
func (a *authService) issueTokens(user model.User) (model.TokenPair, error) {
	at, atExp, _, err := a.codec.Issue(user.ID, token.KindAccess)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issue access token")
	}
	rt, rtExp, jti, err := a.codec.Issue(user.ID, token.KindRefresh)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issue refresh token")
	}

	now := time.Now()
	return model.TokenPair{
		AccessToken:     at,
		RefreshToken:    rt,
		AccessTTL:       atExp.Sub(now),
		RefreshTTL:      rtExp.Sub(now),
		RefreshTokenJTI: jti,
		User:            user,
	}, nil
}
