package catalogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/pkg/logger"
	"goshop/internal/seed"
)

// --- Mock do Repositório (Contrato domain.CatalogRepository) ---

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindMany(ctx context.Context, pred domain.ProductPredicate, order domain.ProductOrder, skip, take int) ([]domain.Product, error) {
	args := m.Called(ctx, pred, order, skip, take)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) Count(ctx context.Context, pred domain.ProductPredicate) (int, error) {
	args := m.Called(ctx, pred)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) FindBySlug(ctx context.Context, slug string) (domain.Product, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) FindRelated(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, productID, limit)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) FindCategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) FindBrands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Product), args.Error(1)
}

func newService(repo domain.CatalogRepository) *CatalogService {
	return NewCatalogService(repo, logger.NewLogger("error"))
}

func seedProducts(n int) []domain.Product {
	all := seed.Catalog().Products
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// --- GetProducts (pipeline de listagem) ---

func TestGetProducts_PaginationMetadata(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	filter := domain.ProductFilter{Page: 3, Limit: 10}
	expectedPred := domain.ProductPredicate{ActiveOnly: true}

	mockRepo.On("FindMany", mock.Anything, expectedPred, domain.OrderNewest, 20, 10).
		Return(seedProducts(5), nil)
	mockRepo.On("Count", mock.Anything, expectedPred).Return(25, nil)

	result, err := svc.GetProducts(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, result.Products, 5)
	assert.Equal(t, 3, result.Pagination.Page)
	assert.Equal(t, 25, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNextPage)
	assert.True(t, result.Pagination.HasPrevPage)
	mockRepo.AssertExpectations(t)
}

func TestGetProducts_ClampsPageAndLimit(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	// page=0 e limit=0 devem virar 1 e 12 antes de chegar ao repositório.
	mockRepo.On("FindMany", mock.Anything, domain.ProductPredicate{ActiveOnly: true}, domain.OrderNewest, 0, domain.DefaultPageLimit).
		Return([]domain.Product{}, nil)
	mockRepo.On("Count", mock.Anything, domain.ProductPredicate{ActiveOnly: true}).Return(0, nil)

	result, err := svc.GetProducts(context.Background(), domain.ProductFilter{Page: 0, Limit: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, domain.DefaultPageLimit, result.Pagination.Limit)
	assert.Equal(t, 0, result.Pagination.TotalPages)
	mockRepo.AssertExpectations(t)
}

func TestGetProducts_BeyondLastPageIsEmptyNotError(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindMany", mock.Anything, mock.Anything, domain.OrderNewest, 108, 12).
		Return([]domain.Product{}, nil)
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(25, nil)

	result, err := svc.GetProducts(context.Background(), domain.ProductFilter{Page: 10, Limit: 12})

	assert.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Equal(t, 10, result.Pagination.Page)
	assert.False(t, result.Pagination.HasNextPage)
	mockRepo.AssertExpectations(t)
}

func TestGetProducts_FilterTranslatedToPredicate(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	min := domain.MustMoney("50.00")
	max := domain.MustMoney("100.00")
	filter := domain.ProductFilter{
		Category: "footwear",
		MinPrice: &min,
		MaxPrice: &max,
		SortBy:   domain.SortPriceAsc,
	}
	expectedPred := domain.ProductPredicate{
		ActiveOnly:   true,
		CategorySlug: "footwear",
		MinPrice:     &min,
		MaxPrice:     &max,
	}

	mockRepo.On("FindMany", mock.Anything, expectedPred, domain.OrderPriceAsc, 0, domain.DefaultPageLimit).
		Return(seedProducts(1), nil)
	mockRepo.On("Count", mock.Anything, expectedPred).Return(1, nil)

	_, err := svc.GetProducts(context.Background(), filter)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGetProducts_RepoFailureBecomesInternalError(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindMany", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Product{}, errors.New("connection refused"))
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil)

	_, err := svc.GetProducts(context.Background(), domain.ProductFilter{})

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Category())
}

// --- Leituras suplementares ---

func TestGetProductBySlug_NotFoundPassesThrough(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindBySlug", mock.Anything, "missing-product").
		Return(domain.Product{}, apperror.NewNotFoundError("Produto com slug 'missing-product' não existe na base de dados."))

	_, err := svc.GetProductBySlug(context.Background(), "missing-product")

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Category())
}

func TestGetProductBySlug_EmptySlugIsValidationError(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	_, err := svc.GetProductBySlug(context.Background(), "  ")

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Category())
	mockRepo.AssertNotCalled(t, "FindBySlug")
}

func TestGetFeaturedProducts_DefaultLimitAndPredicate(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	featured := true
	expectedPred := domain.ProductPredicate{ActiveOnly: true, Featured: &featured}
	mockRepo.On("FindMany", mock.Anything, expectedPred, domain.OrderNewest, 0, 8).
		Return(seedProducts(3), nil)

	views, err := svc.GetFeaturedProducts(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, views, 3)
	mockRepo.AssertExpectations(t)
}

func TestGetRelatedProducts_ResolvesSlugFirst(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	source := seed.Catalog().Products[0]
	mockRepo.On("FindBySlug", mock.Anything, source.Slug).Return(source, nil)
	mockRepo.On("FindRelated", mock.Anything, source.ID, 4).Return(seedProducts(2), nil)

	views, err := svc.GetRelatedProducts(context.Background(), source.Slug, 0)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	mockRepo.AssertExpectations(t)
}

// --- UpdateProduct (rota administrativa) ---

func TestUpdateProduct_EmptyPatchRejected(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	_, err := svc.UpdateProduct(context.Background(), "product-1", domain.ProductPatch{})

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Category())
	mockRepo.AssertNotCalled(t, "UpdateProduct")
}

func TestUpdateProduct_Success(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	svc := newService(mockRepo)

	newPrice := domain.MustMoney("24.99")
	patch := domain.ProductPatch{Price: &newPrice}
	updated := seed.Catalog().Products[0]
	updated.Price = newPrice

	mockRepo.On("UpdateProduct", mock.Anything, "product-1", patch).Return(updated, nil)

	view, err := svc.UpdateProduct(context.Background(), "product-1", patch)

	assert.NoError(t, err)
	assert.Equal(t, "$24.99", view.DisplayPrice)
	mockRepo.AssertExpectations(t)
}
