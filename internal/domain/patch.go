package domain

// ProductPatch é a estrutura tipada de atualização parcial usada pela rota
// administrativa. Cada campo é independentemente opcional (nil = não alterar),
// substituindo o espalhamento dinâmico de objetos da versão anterior — chaves
// desconhecidas no payload são rejeitadas na decodificação, não aceitas em
// silêncio.
type ProductPatch struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=1"`
	DescriptionShort *string `json:"description_short,omitempty"`
	DescriptionLong  *string `json:"description_long,omitempty"`
	Price            *Money  `json:"price,omitempty" validate:"omitempty,gt=0"`
	SalePrice        *Money  `json:"sale_price,omitempty" validate:"omitempty,gt=0"`
	// ClearSalePrice remove o preço promocional; distinto de SalePrice == nil,
	// que significa "não alterar".
	ClearSalePrice bool  `json:"clear_sale_price,omitempty"`
	IsActive       *bool `json:"is_active,omitempty"`
	IsFeatured     *bool `json:"is_featured,omitempty"`
}

// IsEmpty indica que o patch não altera campo algum.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.DescriptionShort == nil &&
		p.DescriptionLong == nil &&
		p.Price == nil &&
		p.SalePrice == nil &&
		!p.ClearSalePrice &&
		p.IsActive == nil &&
		p.IsFeatured == nil
}

// Apply aplica o patch a um produto materializado (usado pelo repositório em
// memória; o repositório PostgreSQL traduz o patch para um UPDATE dirigido).
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.DescriptionShort != nil {
		product.DescriptionShort = *p.DescriptionShort
	}
	if p.DescriptionLong != nil {
		product.DescriptionLong = *p.DescriptionLong
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.ClearSalePrice {
		product.SalePrice = nil
	} else if p.SalePrice != nil {
		sale := *p.SalePrice
		product.SalePrice = &sale
	}
	if p.IsActive != nil {
		product.IsActive = *p.IsActive
	}
	if p.IsFeatured != nil {
		product.IsFeatured = *p.IsFeatured
	}
}
