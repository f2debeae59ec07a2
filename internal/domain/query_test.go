package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery_AlwaysActiveOnly(t *testing.T) {
	pred, order := BuildQuery(ProductFilter{})

	assert.True(t, pred.ActiveOnly)
	assert.Equal(t, OrderNewest, order)
}

func TestBuildQuery_Idempotent(t *testing.T) {
	min := MustMoney("50")
	filter := ProductFilter{Category: "footwear", MinPrice: &min, SortBy: SortPopularity}

	pred1, order1 := BuildQuery(filter)
	pred2, order2 := BuildQuery(filter)

	assert.Equal(t, pred1, pred2)
	assert.Equal(t, order1, order2)
	assert.Equal(t, OrderPopularity, order1)
}

func TestBuildQuery_SortTranslation(t *testing.T) {
	_, order := BuildQuery(ProductFilter{SortBy: SortPriceAsc})
	assert.Equal(t, OrderPriceAsc, order)

	_, order = BuildQuery(ProductFilter{SortBy: SortPriceDesc})
	assert.Equal(t, OrderPriceDesc, order)

	_, order = BuildQuery(ProductFilter{SortBy: ""})
	assert.Equal(t, OrderNewest, order)
}

func sampleProduct() Product {
	return Product{
		Name:             "Trail Running Shoes",
		DescriptionShort: "Lightweight trail running shoes.",
		DescriptionLong:  "Trail running shoes with breathable mesh upper.",
		Price:            MustMoney("59.99"),
		IsActive:         true,
		Brand:            Brand{Slug: "urban-stride"},
		Categories: []ProductCategory{
			{Category: Category{Slug: "footwear"}, IsPrimary: true},
		},
	}
}

func TestMatches_ComposedClauses(t *testing.T) {
	min := MustMoney("50")
	max := MustMoney("100")
	pred := ProductPredicate{
		ActiveOnly:   true,
		CategorySlug: "footwear",
		MinPrice:     &min,
		MaxPrice:     &max,
	}

	p := sampleProduct()
	assert.True(t, pred.Matches(p))

	// Fora da faixa: mesma categoria, preço acima do teto.
	p.Price = MustMoney("129.99")
	assert.False(t, pred.Matches(p))

	// Na faixa, mas outra categoria.
	p = sampleProduct()
	p.Categories = []ProductCategory{{Category: Category{Slug: "accessories"}, IsPrimary: true}}
	assert.False(t, pred.Matches(p))
}

func TestMatches_InactiveExcluded(t *testing.T) {
	p := sampleProduct()
	p.IsActive = false
	assert.False(t, ProductPredicate{ActiveOnly: true}.Matches(p))
}

func TestMatches_PriceBoundsInclusive(t *testing.T) {
	exact := MustMoney("59.99")
	pred := ProductPredicate{MinPrice: &exact, MaxPrice: &exact}
	assert.True(t, pred.Matches(sampleProduct()))
}

func TestMatches_SearchCaseInsensitiveOverThreeFields(t *testing.T) {
	p := sampleProduct()

	assert.True(t, ProductPredicate{Search: "TRAIL"}.Matches(p))
	assert.True(t, ProductPredicate{Search: "lightweight"}.Matches(p))
	assert.True(t, ProductPredicate{Search: "mesh upper"}.Matches(p))
	assert.False(t, ProductPredicate{Search: "sandália"}.Matches(p))
}

func TestMatches_FeaturedFlag(t *testing.T) {
	featured := true
	p := sampleProduct()

	assert.False(t, ProductPredicate{Featured: &featured}.Matches(p))
	p.IsFeatured = true
	assert.True(t, ProductPredicate{Featured: &featured}.Matches(p))
}
