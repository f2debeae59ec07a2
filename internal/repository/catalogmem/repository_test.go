package catalogmem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/seed"
)

func newRepo() *CatalogRepository {
	return NewCatalogRepository(seed.Catalog())
}

func slugs(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}

func TestFindMany_ActiveOnlyExcludesInactive(t *testing.T) {
	repo := newRepo()

	products, err := repo.FindMany(context.Background(), domain.ProductPredicate{ActiveOnly: true}, domain.OrderNewest, 0, 100)

	assert.NoError(t, err)
	assert.Len(t, products, 6)
	assert.NotContains(t, slugs(products), "wool-scarf")
}

func TestFindMany_ComposedFilters(t *testing.T) {
	repo := newRepo()
	min := domain.MustMoney("50.00")
	max := domain.MustMoney("100.00")
	pred := domain.ProductPredicate{
		ActiveOnly:   true,
		CategorySlug: "footwear",
		MinPrice:     &min,
		MaxPrice:     &max,
	}

	products, err := repo.FindMany(context.Background(), pred, domain.OrderNewest, 0, 100)

	// Os sneakers de 129.99 ficam fora da faixa; só o trail de 59.99 passa.
	assert.NoError(t, err)
	assert.Equal(t, []string{"trail-running-shoes"}, slugs(products))

	total, err := repo.Count(context.Background(), pred)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestFindMany_OrderPriceAsc(t *testing.T) {
	repo := newRepo()

	products, err := repo.FindMany(context.Background(), domain.ProductPredicate{ActiveOnly: true}, domain.OrderPriceAsc, 0, 3)

	assert.NoError(t, err)
	assert.Equal(t, []string{"classic-white-t-shirt", "trail-running-shoes", "denim-jacket"}, slugs(products))
}

func TestFindMany_OrderPopularity(t *testing.T) {
	repo := newRepo()

	products, err := repo.FindMany(context.Background(), domain.ProductPredicate{ActiveOnly: true}, domain.OrderPopularity, 0, 2)

	assert.NoError(t, err)
	assert.Equal(t, []string{"classic-leather-sneakers", "trail-running-shoes"}, slugs(products))
}

func TestFindMany_SkipBeyondEndReturnsEmpty(t *testing.T) {
	repo := newRepo()

	products, err := repo.FindMany(context.Background(), domain.ProductPredicate{ActiveOnly: true}, domain.OrderNewest, 50, 12)

	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestFindBySlug(t *testing.T) {
	repo := newRepo()

	product, err := repo.FindBySlug(context.Background(), "denim-jacket")

	assert.NoError(t, err)
	assert.Equal(t, "product-3", product.ID)
	assert.NotNil(t, product.SalePrice)
}

func TestFindBySlug_InactiveIsNotFound(t *testing.T) {
	repo := newRepo()

	_, err := repo.FindBySlug(context.Background(), "wool-scarf")

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Category())
}

func TestFindRelated_SharedCategoryExcludingSelf(t *testing.T) {
	repo := newRepo()

	// product-1 (t-shirts + women) compartilha "women" com o vestido e a bolsa.
	related, err := repo.FindRelated(context.Background(), "product-1", 4)

	assert.NoError(t, err)
	assert.Equal(t, []string{"leather-crossbody-bag", "floral-summer-dress"}, slugs(related))
}

func TestFindRelated_UnknownProductReturnsEmpty(t *testing.T) {
	repo := newRepo()

	related, err := repo.FindRelated(context.Background(), "product-999", 4)

	assert.NoError(t, err)
	assert.Empty(t, related)
}

func TestFindCategories_ActiveSorted(t *testing.T) {
	repo := newRepo()

	categories, err := repo.FindCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, "women", categories[0].Slug)
	assert.Equal(t, "accessories", categories[5].Slug)
}

func TestFindBrands_Alphabetical(t *testing.T) {
	repo := newRepo()

	brands, err := repo.FindBrands(context.Background())

	assert.NoError(t, err)
	assert.Len(t, brands, 2)
	assert.Equal(t, "Sonam Basics", brands[0].Name)
	assert.Equal(t, "Urban Stride", brands[1].Name)
}

func TestUpdateProduct_AppliesPatch(t *testing.T) {
	repo := newRepo()
	newPrice := domain.MustMoney("24.99")
	patch := domain.ProductPatch{Price: &newPrice}

	updated, err := repo.UpdateProduct(context.Background(), "product-1", patch)

	assert.NoError(t, err)
	assert.Equal(t, newPrice, updated.Price)

	// A mudança deve ser visível nas leituras subsequentes.
	reloaded, err := repo.FindBySlug(context.Background(), "classic-white-t-shirt")
	assert.NoError(t, err)
	assert.Equal(t, newPrice, reloaded.Price)
}

func TestUpdateProduct_ClearSalePrice(t *testing.T) {
	repo := newRepo()

	updated, err := repo.UpdateProduct(context.Background(), "product-3", domain.ProductPatch{ClearSalePrice: true})

	assert.NoError(t, err)
	assert.Nil(t, updated.SalePrice)
}

func TestUpdateProduct_UnknownID(t *testing.T) {
	repo := newRepo()
	name := "Renamed"

	_, err := repo.UpdateProduct(context.Background(), "product-999", domain.ProductPatch{Name: &name})

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Category())
}
