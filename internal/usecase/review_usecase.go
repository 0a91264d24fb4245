package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
}

// DI
func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

type ReviewInput struct {
	ProductID int64
	Name      string
	Comment   string
	Rating    int
}

func (u *ReviewUsecase) ListReviews(ctx context.Context) ([]model.Review, error) {
	items, err := u.reviewRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ReviewUsecase) GetReview(ctx context.Context, reviewID int64) (model.Review, error) {
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	rv, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}

func (u *ReviewUsecase) CreateReview(ctx context.Context, in ReviewInput) (model.Review, error) {
	if err := validateReviewInput(in); err != nil {
		return model.Review{}, err
	}

	//対象商品の存在チェック
	_, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "product not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rv, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID: in.ProductID,
		Name:      strings.TrimSpace(in.Name),
		Comment:   in.Comment,
		Rating:    in.Rating,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}

func (u *ReviewUsecase) UpdateReview(ctx context.Context, reviewID int64, in ReviewInput) (model.Review, error) {
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid review id")
	}
	if err := validateReviewInput(in); err != nil {
		return model.Review{}, err
	}

	err := u.reviewRepo.Update(ctx, model.Review{
		ID:      reviewID,
		Name:    strings.TrimSpace(in.Name),
		Comment: in.Comment,
		Rating:  in.Rating,
	})
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetReview(ctx, reviewID)
}

func (u *ReviewUsecase) DeleteReview(ctx context.Context, reviewID int64) error {
	if reviewID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	err := u.reviewRepo.Delete(ctx, reviewID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 入力検証（名前必須・評価は1〜5）
func validateReviewInput(in ReviewInput) error {
	if in.ProductID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}
	return nil
}
