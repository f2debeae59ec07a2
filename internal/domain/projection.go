package domain

import (
	"sort"
	"time"
)

// ProductListResult é a resposta do pipeline de listagem: a página projetada
// mais os metadados de paginação.
type ProductListResult struct {
	Products   []ProductView `json:"products"`
	Pagination Pagination    `json:"pagination"`
}

// ProductView é a projeção de listagem do produto: uma única imagem primária,
// somente variantes ativas e preços já formatados para exibição.
type ProductView struct {
	ID               string         `json:"id"`
	SKU              string         `json:"sku"`
	Slug             string         `json:"slug"`
	Name             string         `json:"name"`
	DescriptionShort string         `json:"description_short"`
	Price            Money          `json:"price"`
	SalePrice        *Money         `json:"sale_price,omitempty"`
	DisplayPrice     string         `json:"display_price"`
	OriginalPrice    string         `json:"original_price,omitempty"`
	IsFeatured       bool           `json:"is_featured"`
	Brand            BrandView      `json:"brand"`
	Categories       []CategoryView `json:"categories"`
	Image            *ImageView     `json:"image,omitempty"`
	Variants         []VariantView  `json:"variants"`
	CreatedAt        time.Time      `json:"created_at"`
}

// ProductDetailView é a projeção da página de produto: todas as imagens do
// produto base (ordenadas) e as variantes ativas completas.
type ProductDetailView struct {
	ID               string         `json:"id"`
	SKU              string         `json:"sku"`
	Slug             string         `json:"slug"`
	Name             string         `json:"name"`
	DescriptionShort string         `json:"description_short"`
	DescriptionLong  string         `json:"description_long"`
	Price            Money          `json:"price"`
	SalePrice        *Money         `json:"sale_price,omitempty"`
	DisplayPrice     string         `json:"display_price"`
	OriginalPrice    string         `json:"original_price,omitempty"`
	IsFeatured       bool           `json:"is_featured"`
	Weight           float64        `json:"weight,omitempty"`
	Dimensions       *Dimensions    `json:"dimensions,omitempty"`
	Brand            BrandView      `json:"brand"`
	Categories       []CategoryView `json:"categories"`
	Images           []ImageView    `json:"images"`
	Variants         []VariantView  `json:"variants"`
	CreatedAt        time.Time      `json:"created_at"`
}

type BrandView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsPrimary bool   `json:"is_primary"`
}

type ImageView struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

type VariantView struct {
	ID              string            `json:"id"`
	SKU             string            `json:"sku"`
	Name            string            `json:"name"`
	PriceAdjustment Money             `json:"price_adjustment"`
	StockQuantity   int               `json:"stock_quantity"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// ProjectProduct molda o registro cru (com relações) na representação de
// listagem da vitrine.
func ProjectProduct(p Product) ProductView {
	view := ProductView{
		ID:               p.ID,
		SKU:              p.SKU,
		Slug:             p.Slug,
		Name:             p.Name,
		DescriptionShort: p.DescriptionShort,
		Price:            p.Price,
		SalePrice:        p.SalePrice,
		IsFeatured:       p.IsFeatured,
		Brand:            BrandView{ID: p.Brand.ID, Name: p.Brand.Name, Slug: p.Brand.Slug},
		Categories:       orderedCategories(p.Categories),
		Image:            primaryImage(p.Images),
		Variants:         activeVariants(p.Variants),
		CreatedAt:        p.CreatedAt,
	}
	view.DisplayPrice, view.OriginalPrice = displayPrices(p.Price, p.SalePrice)
	return view
}

// ProjectProductDetail molda o registro cru na representação da página de
// produto, com todas as imagens base ordenadas.
func ProjectProductDetail(p Product) ProductDetailView {
	view := ProductDetailView{
		ID:               p.ID,
		SKU:              p.SKU,
		Slug:             p.Slug,
		Name:             p.Name,
		DescriptionShort: p.DescriptionShort,
		DescriptionLong:  p.DescriptionLong,
		Price:            p.Price,
		SalePrice:        p.SalePrice,
		IsFeatured:       p.IsFeatured,
		Weight:           p.Weight,
		Dimensions:       p.Dimensions,
		Brand:            BrandView{ID: p.Brand.ID, Name: p.Brand.Name, Slug: p.Brand.Slug},
		Categories:       orderedCategories(p.Categories),
		Images:           orderedImages(p.Images),
		Variants:         activeVariants(p.Variants),
		CreatedAt:        p.CreatedAt,
	}
	view.DisplayPrice, view.OriginalPrice = displayPrices(p.Price, p.SalePrice)
	return view
}

// displayPrices resolve o preço de exibição: com sale_price presente, o preço
// promocional vira o display e o preço cheio vira o valor riscado
// (e.g. price 69.99 + sale 59.99 => "$59.99" / "$69.99").
func displayPrices(price Money, salePrice *Money) (display, original string) {
	if salePrice != nil {
		return salePrice.Display(), price.Display()
	}
	return price.Display(), ""
}

// primaryImage seleciona exatamente uma imagem primária do produto base:
// a imagem marcada is_primary vence; na ausência de marcação, a de menor
// sort_order. Produto sem imagens resulta em nil (campo omitido no JSON,
// nunca ponteiro nulo dereferenciado).
// Imagens de variantes (VariantID != nil) não concorrem.
func primaryImage(images []ProductImage) *ImageView {
	var chosen *ProductImage
	for i := range images {
		img := &images[i]
		if img.VariantID != nil {
			continue
		}
		if chosen == nil {
			chosen = img
			continue
		}
		if img.IsPrimary && !chosen.IsPrimary {
			chosen = img
			continue
		}
		if img.IsPrimary == chosen.IsPrimary && img.SortOrder < chosen.SortOrder {
			chosen = img
		}
	}
	if chosen == nil {
		return nil
	}
	return &ImageView{
		ID:        chosen.ID,
		URL:       chosen.URL,
		AltText:   chosen.AltText,
		IsPrimary: chosen.IsPrimary,
		SortOrder: chosen.SortOrder,
	}
}

// orderedImages devolve as imagens do produto base ordenadas por
// is_primary desc, sort_order asc — a mesma precedência da seleção primária.
func orderedImages(images []ProductImage) []ImageView {
	views := make([]ImageView, 0, len(images))
	for _, img := range images {
		if img.VariantID != nil {
			continue
		}
		views = append(views, ImageView{
			ID:        img.ID,
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].IsPrimary != views[j].IsPrimary {
			return views[i].IsPrimary
		}
		return views[i].SortOrder < views[j].SortOrder
	})
	return views
}

// orderedCategories aplica a política determinística de ordenação das
// categorias: primária primeiro, depois nome ascendente — independente da
// ordem em que o armazenamento devolveu as associações.
func orderedCategories(categories []ProductCategory) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, pc := range categories {
		views = append(views, CategoryView{
			ID:        pc.ID,
			Name:      pc.Name,
			Slug:      pc.Slug,
			IsPrimary: pc.IsPrimary,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].IsPrimary != views[j].IsPrimary {
			return views[i].IsPrimary
		}
		return views[i].Name < views[j].Name
	})
	return views
}

// activeVariants inclui somente variantes com is_active = true.
func activeVariants(variants []Variant) []VariantView {
	views := make([]VariantView, 0, len(variants))
	for _, v := range variants {
		if !v.IsActive {
			continue
		}
		views = append(views, VariantView{
			ID:              v.ID,
			SKU:             v.SKU,
			Name:            v.Name,
			PriceAdjustment: v.PriceAdjustment,
			StockQuantity:   v.StockQuantity,
			Attributes:      v.Attributes,
		})
	}
	return views
}
