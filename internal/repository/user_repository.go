package repository

import (
	"app/internal/domain/model"
	"context"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
}
