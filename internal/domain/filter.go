package domain

import (
	"net/url"
	"strconv"
)

// SortMode enumera as ordenações aceitas pela listagem do catálogo.
type SortMode string

const (
	SortPriceAsc   SortMode = "price_asc"
	SortPriceDesc  SortMode = "price_desc"
	SortNewest     SortMode = "newest"
	SortPopularity SortMode = "popularity"
)

// Limites de paginação da vitrine. O padrão de 12 itens segue a grade de
// produtos (3x4); o teto evita que um único request arraste o catálogo inteiro.
const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100
)

// ProductFilter é o objeto de valor imutável com os parâmetros de busca,
// ordenação e paginação da listagem. Campo zero/nil significa "sem restrição",
// nunca "igual a vazio".
type ProductFilter struct {
	Category string
	Brand    string
	MinPrice *Money
	MaxPrice *Money
	Search   string
	Featured *bool
	SortBy   SortMode
	Page     int
	Limit    int
}

// ParseProductFilter constrói o filtro a partir dos query params da URL
// (category, brand, minPrice, maxPrice, search, featured, sortBy, page, limit).
// Valores numéricos não-parseáveis são tratados como ausentes, não como zero —
// "minPrice=abc" equivale a omitir minPrice.
func ParseProductFilter(values url.Values) ProductFilter {
	filter := ProductFilter{
		Category: values.Get("category"),
		Brand:    values.Get("brand"),
		Search:   values.Get("search"),
	}

	if raw := values.Get("minPrice"); raw != "" {
		if price, err := ParseMoney(raw); err == nil {
			filter.MinPrice = &price
		}
	}
	if raw := values.Get("maxPrice"); raw != "" {
		if price, err := ParseMoney(raw); err == nil {
			filter.MaxPrice = &price
		}
	}

	if raw := values.Get("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	switch SortMode(values.Get("sortBy")) {
	case SortPriceAsc:
		filter.SortBy = SortPriceAsc
	case SortPriceDesc:
		filter.SortBy = SortPriceDesc
	case SortPopularity:
		filter.SortBy = SortPopularity
	default:
		filter.SortBy = SortNewest
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}

// Normalize devolve uma cópia do filtro com paginação saneada.
// A fonte original nunca protegia page/limit <= 0 (defeito latente); a decisão
// aqui é clampar para os padrões em vez de rejeitar a requisição, e os testes
// documentam essa escolha.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.SortBy == "" {
		f.SortBy = SortNewest
	}
	return f
}

// Offset calcula quantas linhas pular; nunca negativo após Normalize.
func (f ProductFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
