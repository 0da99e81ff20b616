package cmd

import (
	"context"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
)

type Repo interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	SaveUser(ctx context.Context, u *user.User) error
	UpdateUserByEmail(ctx context.Context, email string, fn func(context.Context, *user.User) error) error
}
