package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"goshop/internal/domain"
	"goshop/internal/pkg/logger"
	"goshop/internal/repository/catalogmem"
	"goshop/internal/seed"
	"goshop/internal/service/catalogservice"
)

// newTestHandler monta a pilha real (seed -> repositório em memória ->
// serviço -> handler), sem mocks, exercitando a semântica de ponta a ponta.
func newTestHandler() *Handler {
	repo := catalogmem.NewCatalogRepository(seed.Catalog())
	svc := catalogservice.NewCatalogService(repo, logger.NewLogger("error"))
	return NewHandler(svc, logger.NewLogger("error"))
}

func TestListProductsHandler_DefaultListing(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	rec := httptest.NewRecorder()
	h.ListProductsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result domain.ProductListResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	// 6 ativos no seed; o inativo nunca aparece.
	assert.Len(t, result.Products, 6)
	assert.Equal(t, 6, result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, domain.DefaultPageLimit, result.Pagination.Limit)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	for _, p := range result.Products {
		assert.NotEqual(t, "wool-scarf", p.Slug)
	}
}

func TestListProductsHandler_CategoryAndPriceRange(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products?category=footwear&minPrice=50&maxPrice=100", nil)
	rec := httptest.NewRecorder()
	h.ListProductsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.ProductListResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Products, 1)
	assert.Equal(t, "trail-running-shoes", result.Products[0].Slug)
}

func TestListProductsHandler_PaginationWindow(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products?page=2&limit=4", nil)
	rec := httptest.NewRecorder()
	h.ListProductsHandler(rec, req)

	var result domain.ProductListResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Products, 2)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNextPage)
	assert.True(t, result.Pagination.HasPrevPage)
}

func TestListProductsHandler_BeyondLastPageIsEmpty(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products?page=99", nil)
	rec := httptest.NewRecorder()
	h.ListProductsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.ProductListResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Products)
	assert.Equal(t, 6, result.Pagination.Total)
}

func TestGetProductBySlugHandler_SalePriceDisplay(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products/denim-jacket", nil)
	rec := httptest.NewRecorder()
	h.GetProductBySlugHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view domain.ProductDetailView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "$59.99", view.DisplayPrice)
	assert.Equal(t, "$69.99", view.OriginalPrice)
	assert.Len(t, view.Variants, 2)
}

func TestGetProductBySlugHandler_NotFound(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products/nao-existe", nil)
	rec := httptest.NewRecorder()
	h.GetProductBySlugHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["category"])
}

func TestFeaturedProductsHandler(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products/featured", nil)
	rec := httptest.NewRecorder()
	h.FeaturedProductsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var views []domain.ProductView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Len(t, views, 3)
	for _, v := range views {
		assert.True(t, v.IsFeatured)
	}
}

func TestRelatedProductsHandler(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/products/classic-white-t-shirt/related", nil)
	rec := httptest.NewRecorder()
	h.RelatedProductsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var views []domain.ProductView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Len(t, views, 2)
	for _, v := range views {
		assert.NotEqual(t, "classic-white-t-shirt", v.Slug)
	}
}

func TestListCategoriesHandler(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	rec := httptest.NewRecorder()
	h.ListCategoriesHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []domain.Category
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 6)
	assert.Equal(t, "women", categories[0].Slug)
}

func TestListBrandsHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/brands", nil)
	rec := httptest.NewRecorder()
	h.ListBrandsHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
