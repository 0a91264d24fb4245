package repository

import (
	"context"
	"errors"
)

// 並行書き込みの衝突（serialization failure / deadlock）。
// 在庫不足とは別物で、呼び出し側はリトライしてよい。
var ErrTxConflict = errors.New("transaction conflict")

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Inventory() InventoryRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
