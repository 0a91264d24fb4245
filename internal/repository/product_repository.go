package repository

import (
	"app/internal/domain/model"
	"context"
)

// 一覧のフィルタ（category_id / available）
type ProductListFilter struct {
	CategoryID *int64
	Available  *bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, f ProductListFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
