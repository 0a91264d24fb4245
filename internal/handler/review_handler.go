package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /reviews のリクエストボディ
type ReviewRequest struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
}

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

// DI
func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// 読み取りは公開、書き込みは要認証
func (h *ReviewHandler) RegisterRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	g.GET("/reviews", h.list)
	g.GET("/reviews/:id", h.detail)
	g.POST("/reviews", h.create, authRequired)
	g.PUT("/reviews/:id", h.update, authRequired)
	g.DELETE("/reviews/:id", h.delete, authRequired)
}

func (h *ReviewHandler) list(c echo.Context) error {
	items, err := h.uc.ListReviews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ReviewHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	rv, err := h.uc.GetReview(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rv)
}

func (h *ReviewHandler) create(c echo.Context) error {
	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	rv, err := h.uc.CreateReview(c.Request().Context(), usecase.ReviewInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Comment:   req.Comment,
		Rating:    req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	rv, err := h.uc.UpdateReview(c.Request().Context(), id, usecase.ReviewInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Comment:   req.Comment,
		Rating:    req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rv)
}

func (h *ReviewHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteReview(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
