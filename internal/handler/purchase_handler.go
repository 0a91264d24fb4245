package handler

import (
	"errors"
	"fmt"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// quantityは型を固定せずに受けて、usecase側で整数へ寄せる
type DecrementStockRequest struct {
	Quantity interface{} `json:"quantity"`
}

type DecrementStockResponse struct {
	Message  string `json:"message"`
	Product  string `json:"product"`
	NewStock int64  `json:"new_stock"`
}

// 機械判定用のkind + メッセージ + （あれば）現在在庫
type StockErrorResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	CurrentStock *int64 `json:"current_stock,omitempty"`
}

type PurchaseHandler struct {
	uc *usecase.PurchaseUsecase
}

// DI
func NewPurchaseHandler(uc *usecase.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

func (h *PurchaseHandler) RegisterRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	g.POST("/products/:id/decrement-stock", h.decrementStock, authRequired)
}

func (h *PurchaseHandler) decrementStock(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, StockErrorResponse{
			Error:   "NOT_FOUND",
			Message: "product not found",
		})
	}

	var req DecrementStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StockErrorResponse{
			Error:   "INVALID_TYPE",
			Message: "invalid body",
		})
	}

	out, err := h.uc.DecrementStock(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return writeStockError(c, err)
	}

	return c.JSON(http.StatusOK, DecrementStockResponse{
		Message:  fmt.Sprintf("purchase successful: %s", out.ProductName),
		Product:  out.ProductName,
		NewStock: out.NewStock,
	})
}

// usecaseのエラーをHTTPのkindに変換する
func writeStockError(c echo.Context, err error) error {
	var ise *usecase.InsufficientStockError
	if errors.As(err, &ise) {
		current := ise.CurrentStock
		return c.JSON(http.StatusBadRequest, StockErrorResponse{
			Error:        "INSUFFICIENT_STOCK",
			Message:      err.Error(),
			CurrentStock: &current,
		})
	}

	switch {
	case errors.Is(err, usecase.ErrQuantityRequired):
		return c.JSON(http.StatusBadRequest, StockErrorResponse{
			Error:   "MISSING_PARAMETER",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrQuantityNotInteger):
		return c.JSON(http.StatusBadRequest, StockErrorResponse{
			Error:   "INVALID_TYPE",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrQuantityNotPositive):
		return c.JSON(http.StatusBadRequest, StockErrorResponse{
			Error:   "INVALID_RANGE",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, StockErrorResponse{
			Error:   "NOT_FOUND",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrStockConflict):
		return c.JSON(http.StatusConflict, StockErrorResponse{
			Error:   "CONFLICT",
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, StockErrorResponse{
			Error:   "INTERNAL",
			Message: "internal error",
		})
	}
}
