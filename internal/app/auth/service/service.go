package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/vmalgo/researchlab/internal/adapters/transport/http/dto"
	"github.com/vmalgo/researchlab/internal/app/auth/password"
	"github.com/vmalgo/researchlab/internal/domain/auth/model"
	"github.com/vmalgo/researchlab/internal/domain/auth/repo"
	"github.com/vmalgo/researchlab/internal/domain/auth/token"
	"github.com/vmalgo/researchlab/internal/infra/config"
)

type Service interface {
	Register(ctx context.Context, dto dto.RegisterDTO) (model.TokenPair, error)
	Login(ctx context.Context, dto dto.LoginDTO) (model.TokenPair, error)
	Refresh(ctx context.Context, dto dto.RefreshDTO) (model.TokenPair, error)
	Validate(ctx context.Context, dto dto.ValidateDTO) (model.User, error)
	Logout(ctx context.Context, dto dto.LogoutDTO) error
}

func New(
	ur repo.UserRepo,
	tr repo.TokenRepo,
	codec token.Codec,
	hasher *password.Hasher,
	cfg *config.Config,
	v *validator.Validate,
) Service {
	return &authService{
		userRepo: ur, tokenRepo: tr, codec: codec, hasher: hasher, cfg: cfg, v: v,
	}
}
