package repo

import (
	"context"

	"github.com/vmalgo/researchlab/internal/domain/auth/model"
)

// UserRepo is the credential store. CreateUser is atomic with respect to the
// email/username uniqueness check: two concurrent inserts of the same
// identity yield exactly one success and one ErrAlreadyExists.
type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)

	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	GetUserByID(ctx context.Context, id int64) (model.User, error)

	UpdateUser(ctx context.Context, u model.User) error
}
