package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) List(ctx context.Context, f repo.ProductListFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProdProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProdProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProdCategoryRepoMock struct{ mock.Mock }

func (m *ProdCategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdCategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *ProdCategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdCategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdCategoryRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in ProductUsecase tests")
}

// =====================
// List / Get
// =====================

func TestProductUsecase_ListProducts_PassesFilter(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(ProdCategoryRepoMock))

	catID := int64(2)
	available := true
	filter := repo.ProductListFilter{CategoryID: &catID, Available: &available}

	items := []model.Product{{ID: 1, Name: "Torta", CategoryID: 2, Available: true}}
	pRepo.On("List", mock.Anything, filter).Return(items, nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{CategoryID: &catID, Available: &available})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(ProdCategoryRepoMock))

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), 99)
	assertErrContains(t, err, "not found")
}

// =====================
// Create / Update
// =====================

func TestProductUsecase_CreateProduct_NameRequired(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock), new(ProdCategoryRepoMock))

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:       " ",
		Price:      decimal.NewFromInt(1),
		CategoryID: 1,
	})
	assertErrContains(t, err, "name required")
}

func TestProductUsecase_CreateProduct_NegativePrice(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock), new(ProdCategoryRepoMock))

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:       "Torta",
		Price:      decimal.NewFromInt(-1),
		CategoryID: 1,
	})
	assertErrContains(t, err, "price must be >= 0")
}

func TestProductUsecase_CreateProduct_NegativeStock(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock), new(ProdCategoryRepoMock))

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:       "Torta",
		Price:      decimal.NewFromInt(1),
		CategoryID: 1,
		Stock:      -1,
	})
	assertErrContains(t, err, "stock must be >= 0")
}

func TestProductUsecase_CreateProduct_CategoryMissing(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	cRepo := new(ProdCategoryRepoMock)
	uc := usecase.NewProductUsecase(pRepo, cRepo)

	cRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:       "Torta",
		Price:      decimal.NewFromInt(1),
		CategoryID: 99,
	})
	assertErrContains(t, err, "category not found")

	pRepo.AssertNotCalled(t, "Create")
}

func TestProductUsecase_CreateProduct_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	cRepo := new(ProdCategoryRepoMock)
	uc := usecase.NewProductUsecase(pRepo, cRepo)

	cRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1, Name: "Tortas"}, nil)
	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Torta de Chocolate" && p.CategoryID == 1 && p.Stock == 10
	})).Return(model.Product{ID: 123, Name: "Torta de Chocolate"}, nil)

	p, err := uc.CreateProduct(ctx, usecase.ProductInput{
		Name:        " Torta de Chocolate ",
		Description: "Te llena rapido",
		Price:       decimal.RequireFromString("2.50"),
		CategoryID:  1,
		Available:   true,
		Stock:       10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(123), p.ID)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_UpdateProduct_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	cRepo := new(ProdCategoryRepoMock)
	uc := usecase.NewProductUsecase(pRepo, cRepo)

	cRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1}, nil)
	pRepo.On("Update", mock.Anything, mock.AnythingOfType("model.Product")).Return(repo.ErrNotFound)

	_, err := uc.UpdateProduct(context.Background(), 999, usecase.ProductInput{
		Name:       "X",
		Price:      decimal.NewFromInt(1),
		CategoryID: 1,
	})
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_DeleteProduct_Success(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(ProdCategoryRepoMock))

	pRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := uc.DeleteProduct(context.Background(), 1)
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
}
