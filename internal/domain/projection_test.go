package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func projectable() Product {
	sale := MustMoney("59.99")
	variantID := "variant-9"
	return Product{
		ID:        "product-3",
		Slug:      "denim-jacket",
		Name:      "Denim Jacket",
		Price:     MustMoney("69.99"),
		SalePrice: &sale,
		Brand:     Brand{ID: "brand-1", Name: "Sonam Basics", Slug: "sonam-basics"},
		Categories: []ProductCategory{
			{Category: Category{ID: "c2", Name: "Women", Slug: "women"}, IsPrimary: false},
			{Category: Category{ID: "c1", Name: "Men", Slug: "men"}, IsPrimary: true},
		},
		Images: []ProductImage{
			{ID: "img-2", URL: "/b.jpg", SortOrder: 2},
			{ID: "img-1", URL: "/a.jpg", IsPrimary: true, SortOrder: 3},
			{ID: "img-v", URL: "/v.jpg", VariantID: &variantID, IsPrimary: true, SortOrder: 1},
		},
		Variants: []Variant{
			{ID: "v1", Name: "M", IsActive: true},
			{ID: "v2", Name: "L", IsActive: false},
		},
	}
}

func TestProjectProduct_DisplayPricesWithSale(t *testing.T) {
	view := ProjectProduct(projectable())

	// Preço promocional vira display; o cheio vira o riscado.
	assert.Equal(t, "$59.99", view.DisplayPrice)
	assert.Equal(t, "$69.99", view.OriginalPrice)
}

func TestProjectProduct_DisplayPricesWithoutSale(t *testing.T) {
	p := projectable()
	p.SalePrice = nil

	view := ProjectProduct(p)

	assert.Equal(t, "$69.99", view.DisplayPrice)
	assert.Empty(t, view.OriginalPrice)
}

func TestProjectProduct_PrimaryImageFlagWins(t *testing.T) {
	view := ProjectProduct(projectable())

	// img-v é de variante e não concorre, mesmo marcada como primária.
	assert.NotNil(t, view.Image)
	assert.Equal(t, "img-1", view.Image.ID)
}

func TestProjectProduct_LowestSortOrderWhenNoneFlagged(t *testing.T) {
	p := projectable()
	for i := range p.Images {
		p.Images[i].IsPrimary = false
	}

	view := ProjectProduct(p)

	assert.NotNil(t, view.Image)
	assert.Equal(t, "img-2", view.Image.ID)
}

func TestProjectProduct_NoImagesYieldsNil(t *testing.T) {
	p := projectable()
	p.Images = nil

	view := ProjectProduct(p)

	assert.Nil(t, view.Image)
}

func TestProjectProduct_OnlyActiveVariants(t *testing.T) {
	view := ProjectProduct(projectable())

	assert.Len(t, view.Variants, 1)
	assert.Equal(t, "v1", view.Variants[0].ID)
}

func TestProjectProduct_CategoriesPrimaryFirstThenName(t *testing.T) {
	p := projectable()
	p.Categories = append(p.Categories,
		ProductCategory{Category: Category{ID: "c3", Name: "Accessories", Slug: "accessories"}})

	view := ProjectProduct(p)

	assert.Equal(t, []string{"Men", "Accessories", "Women"},
		[]string{view.Categories[0].Name, view.Categories[1].Name, view.Categories[2].Name})
	assert.True(t, view.Categories[0].IsPrimary)
}

func TestProjectProductDetail_ImagesOrdered(t *testing.T) {
	view := ProjectProductDetail(projectable())

	// Imagem de variante excluída; primária primeiro, depois sort_order.
	assert.Len(t, view.Images, 2)
	assert.Equal(t, "img-1", view.Images[0].ID)
	assert.Equal(t, "img-2", view.Images[1].ID)
}
