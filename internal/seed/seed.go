// Package seed concentra o dataset canônico do catálogo usado pelo
// repositório em memória e pelos testes. Antes, cada rota mock carregava a
// sua própria cópia dos dados; aqui existe uma única fonte, consumida por
// injeção de dependência.
package seed

import (
	"time"

	"goshop/internal/domain"
)

// Dataset agrupa as entidades do catálogo prontas para injeção.
type Dataset struct {
	Brands     []domain.Brand
	Categories []domain.Category
	Products   []domain.Product
}

// Catalog devolve um Dataset novo a cada chamada (cópias independentes, sem
// estado compartilhado entre consumidores).
func Catalog() Dataset {
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	brands := []domain.Brand{
		{ID: "brand-1", Name: "Sonam Basics", Slug: "sonam-basics", CreatedAt: base, UpdatedAt: base},
		{ID: "brand-2", Name: "Urban Stride", Slug: "urban-stride", CreatedAt: base, UpdatedAt: base},
	}

	categories := []domain.Category{
		{ID: "category-1", Name: "Women", Slug: "women", IsActive: true, SortOrder: 1},
		{ID: "category-2", Name: "Men", Slug: "men", IsActive: true, SortOrder: 2},
		{ID: "category-3", Name: "T-Shirts", Slug: "t-shirts", IsActive: true, SortOrder: 3},
		{ID: "category-4", Name: "Dresses", Slug: "dresses", IsActive: true, SortOrder: 4},
		{ID: "category-5", Name: "Footwear", Slug: "footwear", IsActive: true, SortOrder: 5},
		{ID: "category-6", Name: "Accessories", Slug: "accessories", IsActive: true, SortOrder: 6},
	}

	cat := func(id string, primary bool) domain.ProductCategory {
		for _, c := range categories {
			if c.ID == id {
				return domain.ProductCategory{Category: c, IsPrimary: primary}
			}
		}
		panic("seed: categoria desconhecida " + id)
	}

	sale5999 := domain.MustMoney("59.99")

	products := []domain.Product{
		{
			ID:               "product-1",
			SKU:              "WS-T-001",
			Slug:             "classic-white-t-shirt",
			Name:             "Classic White T-Shirt",
			DescriptionShort: "A comfortable and versatile white t-shirt for everyday wear.",
			DescriptionLong:  "This classic white t-shirt is made from 100% organic cotton, providing both comfort and durability.",
			Price:            domain.MustMoney("29.99"),
			IsActive:         true,
			IsFeatured:       true,
			Weight:           0.2,
			Dimensions:       &domain.Dimensions{Length: 30, Width: 20, Height: 2},
			Brand:            brands[0],
			Categories:       []domain.ProductCategory{cat("category-3", true), cat("category-1", false)},
			Images: []domain.ProductImage{
				{ID: "image-1", ProductID: "product-1", URL: "/images/products/white-tshirt-1.jpg", AltText: "Classic White T-Shirt", IsPrimary: true, SortOrder: 1},
				{ID: "image-2", ProductID: "product-1", URL: "/images/products/white-tshirt-2.jpg", IsPrimary: false, SortOrder: 2},
			},
			Variants: []domain.Variant{
				{ID: "variant-1", ProductID: "product-1", SKU: "WS-T-001-S", Name: "Small", StockQuantity: 25, IsActive: true, Attributes: map[string]string{"size": "S"}},
				{ID: "variant-2", ProductID: "product-1", SKU: "WS-T-001-M", Name: "Medium", StockQuantity: 30, IsActive: true, Attributes: map[string]string{"size": "M"}},
				{ID: "variant-3", ProductID: "product-1", SKU: "WS-T-001-L", Name: "Large", StockQuantity: 20, IsActive: true, Attributes: map[string]string{"size": "L"}},
				{ID: "variant-4", ProductID: "product-1", SKU: "WS-T-001-XL", Name: "Extra Large", StockQuantity: 0, IsActive: false, Attributes: map[string]string{"size": "XL"}},
			},
			SalesCount: 42,
			CreatedAt:  base,
			UpdatedAt:  base,
		},
		{
			ID:               "product-2",
			SKU:              "WS-D-002",
			Slug:             "floral-summer-dress",
			Name:             "Floral Summer Dress",
			DescriptionShort: "Light and breezy floral print dress.",
			DescriptionLong:  "A flowing summer dress with an all-over floral print and adjustable straps.",
			Price:            domain.MustMoney("79.99"),
			IsActive:         true,
			Brand:            brands[0],
			Categories:       []domain.ProductCategory{cat("category-4", true), cat("category-1", false)},
			// Nenhuma imagem marcada como primária: a projeção deve escolher
			// a de menor sort_order.
			Images: []domain.ProductImage{
				{ID: "image-3", ProductID: "product-2", URL: "/images/products/floral-dress-back.jpg", SortOrder: 2},
				{ID: "image-4", ProductID: "product-2", URL: "/images/products/floral-dress-front.jpg", SortOrder: 1},
			},
			Variants: []domain.Variant{
				{ID: "variant-5", ProductID: "product-2", SKU: "WS-D-002-M", Name: "Medium", StockQuantity: 12, IsActive: true, Attributes: map[string]string{"size": "M"}},
			},
			SalesCount: 17,
			CreatedAt:  base.AddDate(0, 0, 5),
			UpdatedAt:  base.AddDate(0, 0, 5),
		},
		{
			ID:               "product-3",
			SKU:              "MS-J-003",
			Slug:             "denim-jacket",
			Name:             "Denim Jacket",
			DescriptionShort: "Classic denim jacket with modern fit.",
			DescriptionLong:  "A timeless denim jacket with button front and chest pockets.",
			Price:            domain.MustMoney("69.99"),
			SalePrice:        &sale5999,
			IsActive:         true,
			IsFeatured:       true,
			Brand:            brands[0],
			Categories:       []domain.ProductCategory{cat("category-2", true)},
			Images: []domain.ProductImage{
				{ID: "image-5", ProductID: "product-3", URL: "/images/products/denim-jacket.jpg", IsPrimary: true, SortOrder: 1},
			},
			Variants: []domain.Variant{
				{ID: "variant-6", ProductID: "product-3", SKU: "MS-J-003-M", Name: "Medium", StockQuantity: 8, IsActive: true, Attributes: map[string]string{"size": "M"}},
				{ID: "variant-7", ProductID: "product-3", SKU: "MS-J-003-L", Name: "Large", PriceAdjustment: domain.MustMoney("5.00"), StockQuantity: 6, IsActive: true, Attributes: map[string]string{"size": "L"}},
			},
			SalesCount: 8,
			CreatedAt:  base.AddDate(0, 0, 10),
			UpdatedAt:  base.AddDate(0, 0, 10),
		},
		{
			ID:               "product-4",
			SKU:              "US-F-004",
			Slug:             "classic-leather-sneakers",
			Name:             "Classic Leather Sneakers",
			DescriptionShort: "Comfortable leather sneakers for everyday wear.",
			DescriptionLong:  "Handcrafted leather sneakers with cushioned insole and rubber outsole.",
			Price:            domain.MustMoney("129.99"),
			IsActive:         true,
			Brand:            brands[1],
			Categories:       []domain.ProductCategory{cat("category-5", true), cat("category-2", false)},
			Images: []domain.ProductImage{
				{ID: "image-6", ProductID: "product-4", URL: "/images/products/leather-sneakers.jpg", IsPrimary: true, SortOrder: 1},
			},
			Variants: []domain.Variant{
				{ID: "variant-8", ProductID: "product-4", SKU: "US-F-004-42", Name: "42", StockQuantity: 10, IsActive: true, Attributes: map[string]string{"size": "42"}},
			},
			SalesCount: 95,
			CreatedAt:  base.AddDate(0, 0, 20),
			UpdatedAt:  base.AddDate(0, 0, 20),
		},
		{
			ID:               "product-5",
			SKU:              "US-A-005",
			Slug:             "leather-crossbody-bag",
			Name:             "Leather Crossbody Bag",
			DescriptionShort: "Stylish leather crossbody bag with adjustable strap.",
			DescriptionLong:  "A compact crossbody bag in full-grain leather with magnetic closure.",
			Price:            domain.MustMoney("89.99"),
			IsActive:         true,
			Brand:            brands[1],
			Categories:       []domain.ProductCategory{cat("category-6", true), cat("category-1", false)},
			// Produto sem imagens: a projeção deve omitir o campo image.
			SalesCount: 3,
			CreatedAt:  base.AddDate(0, 0, 25),
			UpdatedAt:  base.AddDate(0, 0, 25),
		},
		{
			ID:               "product-6",
			SKU:              "US-F-006",
			Slug:             "trail-running-shoes",
			Name:             "Trail Running Shoes",
			DescriptionShort: "Lightweight trail running shoes with aggressive grip.",
			DescriptionLong:  "Trail running shoes with breathable mesh upper and reinforced toe cap.",
			Price:            domain.MustMoney("59.99"),
			IsActive:         true,
			IsFeatured:       true,
			Brand:            brands[1],
			Categories:       []domain.ProductCategory{cat("category-5", true)},
			Images: []domain.ProductImage{
				{ID: "image-7", ProductID: "product-6", URL: "/images/products/trail-shoes.jpg", IsPrimary: true, SortOrder: 1},
			},
			Variants: []domain.Variant{
				{ID: "variant-9", ProductID: "product-6", SKU: "US-F-006-41", Name: "41", StockQuantity: 14, IsActive: true, Attributes: map[string]string{"size": "41"}},
			},
			SalesCount: 61,
			CreatedAt:  base.AddDate(0, 1, 15),
			UpdatedAt:  base.AddDate(0, 1, 15),
		},
		{
			// Produto inativo: nunca deve aparecer em consultas da vitrine.
			ID:               "product-7",
			SKU:              "US-A-007",
			Slug:             "wool-scarf",
			Name:             "Wool Scarf",
			DescriptionShort: "Warm wool scarf, discontinued colorway.",
			Price:            domain.MustMoney("19.99"),
			IsActive:         false,
			Brand:            brands[1],
			Categories:       []domain.ProductCategory{cat("category-6", true)},
			SalesCount:       1,
			CreatedAt:        base.AddDate(0, 1, 20),
			UpdatedAt:        base.AddDate(0, 1, 20),
		},
	}

	return Dataset{Brands: brands, Categories: categories, Products: products}
}
