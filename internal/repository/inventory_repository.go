package repository

import "context"

type InventoryRepository interface {
	// 行ロック付きでコミット済みの最新在庫を読む
	GetStockForUpdate(ctx context.Context, productID int64) (int64, error)

	// 在庫の現在値を設定
	SetStock(ctx context.Context, productID int64, newStock int64) error
}
