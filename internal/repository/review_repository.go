package repository

import (
	"app/internal/domain/model"
	"context"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	FindByID(ctx context.Context, id int64) (model.Review, error)

	Create(ctx context.Context, rv model.Review) (model.Review, error)
	Update(ctx context.Context, rv model.Review) error
	Delete(ctx context.Context, id int64) error
}
