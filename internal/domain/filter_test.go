package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProductFilter_AllParams(t *testing.T) {
	values := url.Values{
		"category": {"footwear"},
		"brand":    {"urban-stride"},
		"minPrice": {"50"},
		"maxPrice": {"100"},
		"search":   {"shoes"},
		"featured": {"true"},
		"sortBy":   {"price_asc"},
		"page":     {"2"},
		"limit":    {"24"},
	}

	filter := ParseProductFilter(values)

	assert.Equal(t, "footwear", filter.Category)
	assert.Equal(t, "urban-stride", filter.Brand)
	assert.Equal(t, MustMoney("50"), *filter.MinPrice)
	assert.Equal(t, MustMoney("100"), *filter.MaxPrice)
	assert.Equal(t, "shoes", filter.Search)
	assert.True(t, *filter.Featured)
	assert.Equal(t, SortPriceAsc, filter.SortBy)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 24, filter.Limit)
}

func TestParseProductFilter_MalformedNumericsAreAbsent(t *testing.T) {
	values := url.Values{
		"minPrice": {"abc"},
		"maxPrice": {"10.999"},
		"featured": {"talvez"},
		"page":     {"x"},
	}

	filter := ParseProductFilter(values)

	// Valor não-parseável equivale a omitir o parâmetro, nunca a zero.
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.Featured)
	assert.Equal(t, 0, filter.Page)
}

func TestParseProductFilter_UnknownSortFallsBackToNewest(t *testing.T) {
	filter := ParseProductFilter(url.Values{"sortBy": {"banana"}})
	assert.Equal(t, SortNewest, filter.SortBy)
}

func TestNormalize_Clamps(t *testing.T) {
	filter := ProductFilter{Page: -3, Limit: 0}.Normalize()
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, DefaultPageLimit, filter.Limit)

	filter = ProductFilter{Page: 2, Limit: 500}.Normalize()
	assert.Equal(t, MaxPageLimit, filter.Limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, ProductFilter{Page: 1, Limit: 12}.Offset())
	assert.Equal(t, 20, ProductFilter{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, ProductFilter{Page: -1, Limit: 10}.Offset())
}
