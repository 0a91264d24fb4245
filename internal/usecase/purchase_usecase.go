package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	repo "app/internal/repository"
)

var (
	//quantity未指定
	ErrQuantityRequired = errors.New("quantity required")
	//quantityが整数として読めない
	ErrQuantityNotInteger = errors.New("quantity must be an integer")
	//quantityが1未満
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	//商品が存在しない
	ErrProductNotFound = errors.New("product not found")
	//ストレージ層の並行衝突。在庫不足とは別物で、リトライ可能。
	ErrStockConflict = errors.New("stock update conflict")
)

// 在庫不足。呼び出し側の判断用に現在在庫を持つ。
type InsufficientStockError struct {
	CurrentStock int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d left", e.CurrentStock)
}

type DecrementStockOutput struct {
	ProductID   int64
	ProductName string
	NewStock    int64
}

type PurchaseUsecase struct {
	productRepo repo.ProductRepository
	tx          repo.TransactionManager
}

// DI
func NewPurchaseUsecase(productRepo repo.ProductRepository, tx repo.TransactionManager) *PurchaseUsecase {
	return &PurchaseUsecase{
		productRepo: productRepo,
		tx:          tx,
	}
}

// DecrementStockは在庫が足りるときだけ、1トランザクションで在庫を減らす。
// quantityはJSONそのままの値を受けて整数へ寄せる（parse-or-fail）。
func (u *PurchaseUsecase) DecrementStock(ctx context.Context, productID int64, quantity interface{}) (DecrementStockOutput, error) {
	var out DecrementStockOutput

	//前提チェックはトランザクションの外で（副作用なし・何度でも同じ結果）
	qty, err := parseQuantity(quantity)
	if err != nil {
		return out, err
	}
	if qty <= 0 {
		return out, ErrQuantityNotPositive
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return out, ErrProductNotFound
	}
	if err != nil {
		return out, err
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//トランザクション前に読んだ値は使わない。
		//行ロック付きでコミット済みの最新在庫を読み直す。
		stock, err := r.Inventory().GetStockForUpdate(ctx, productID)
		if err == repo.ErrNotFound {
			return ErrProductNotFound
		}
		if err != nil {
			return err
		}

		if stock < qty {
			//書き込みなしでロールバック
			return &InsufficientStockError{CurrentStock: stock}
		}

		if err := r.Inventory().SetStock(ctx, productID, stock-qty); err != nil {
			return err
		}

		out = DecrementStockOutput{
			ProductID:   p.ID,
			ProductName: p.Name,
			NewStock:    stock - qty,
		}
		return nil
	})
	if errors.Is(err, repo.ErrTxConflict) {
		return DecrementStockOutput{}, ErrStockConflict
	}
	if err != nil {
		return DecrementStockOutput{}, err
	}

	return out, nil
}

// JSONの生値を整数に寄せる。
// 小数部のあるfloat・数字でない文字列・その他の型はInvalidType扱い。
func parseQuantity(v interface{}) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, ErrQuantityRequired
	case float64:
		if t != math.Trunc(t) {
			return 0, ErrQuantityNotInteger
		}
		return int64(t), nil
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, ErrQuantityNotInteger
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, ErrQuantityNotInteger
		}
		return i, nil
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	default:
		return 0, ErrQuantityNotInteger
	}
}
