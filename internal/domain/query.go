package domain

import "strings"

// ProductPredicate é o predicado de seleção produzido pelo Query Builder.
// Ele é agnóstico de armazenamento: o repositório PostgreSQL o traduz para
// cláusulas WHERE parametrizadas e o repositório em memória o avalia via
// Matches, garantindo a mesma semântica nas duas implementações.
// Todas as cláusulas opcionais combinam por AND.
type ProductPredicate struct {
	// ActiveOnly é sempre verdadeiro para consultas da vitrine: filtros de
	// preço (e qualquer outro) só enxergam produtos ativos.
	ActiveOnly bool

	CategorySlug string // produto tem >= 1 categoria associada com este slug
	BrandSlug    string // brand.slug igual ao valor
	MinPrice     *Money // faixa inclusiva sobre price
	MaxPrice     *Money
	Featured     *bool  // is_featured igual ao valor
	Search       string // substring case-insensitive em nome/descrições (OR)
}

// ProductOrder é a cláusula de ordenação produzida pelo Query Builder.
type ProductOrder int

const (
	// OrderNewest ordena por created_at decrescente (padrão).
	OrderNewest ProductOrder = iota
	OrderPriceAsc
	OrderPriceDesc
	// OrderPopularity ordena pela contagem de order_items associados,
	// decrescente. O desempate segue a ordem nativa do armazenamento e é
	// implementation-defined: não há garantia de estabilidade entre chamadas
	// para chaves iguais.
	OrderPopularity
)

// BuildQuery traduz um ProductFilter em predicado + ordenação. Função pura:
// o mesmo filtro produz sempre o mesmo par, sem estado escondido.
// Campo ausente no filtro não adiciona cláusula alguma.
func BuildQuery(filter ProductFilter) (ProductPredicate, ProductOrder) {
	pred := ProductPredicate{
		ActiveOnly:   true,
		CategorySlug: filter.Category,
		BrandSlug:    filter.Brand,
		MinPrice:     filter.MinPrice,
		MaxPrice:     filter.MaxPrice,
		Featured:     filter.Featured,
		Search:       filter.Search,
	}

	var order ProductOrder
	switch filter.SortBy {
	case SortPriceAsc:
		order = OrderPriceAsc
	case SortPriceDesc:
		order = OrderPriceDesc
	case SortPopularity:
		order = OrderPopularity
	default:
		order = OrderNewest
	}

	return pred, order
}

// Matches avalia o predicado contra um produto materializado. É a semântica
// de referência usada pelo repositório em memória (e pelos testes) — deve
// espelhar exatamente a tradução SQL feita em catalogrepo.
func (p ProductPredicate) Matches(product Product) bool {
	if p.ActiveOnly && !product.IsActive {
		return false
	}

	if p.CategorySlug != "" {
		found := false
		for _, pc := range product.Categories {
			if pc.Slug == p.CategorySlug {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if p.BrandSlug != "" && product.Brand.Slug != p.BrandSlug {
		return false
	}

	if p.MinPrice != nil && product.Price < *p.MinPrice {
		return false
	}
	if p.MaxPrice != nil && product.Price > *p.MaxPrice {
		return false
	}

	if p.Featured != nil && product.IsFeatured != *p.Featured {
		return false
	}

	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		if !strings.Contains(strings.ToLower(product.Name), needle) &&
			!strings.Contains(strings.ToLower(product.DescriptionShort), needle) &&
			!strings.Contains(strings.ToLower(product.DescriptionLong), needle) {
			return false
		}
	}

	return true
}
