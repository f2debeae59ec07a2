package domain

import (
	"context"
	"time"
)

// Product representa o item principal do catálogo (a Entidade), com as
// relações carregadas pelo repositório (brand, categorias, imagens e variantes).
type Product struct {
	ID               string      `json:"id"`
	SKU              string      `json:"sku"` // Stock Keeping Unit (código único de produto)
	Slug             string      `json:"slug"`
	Name             string      `json:"name"`
	DescriptionShort string      `json:"description_short"`
	DescriptionLong  string      `json:"description_long"`
	Price            Money       `json:"price"`
	SalePrice        *Money      `json:"sale_price,omitempty"`
	CostPrice        *Money      `json:"cost_price,omitempty"`
	IsActive         bool        `json:"is_active"`
	IsFeatured       bool        `json:"is_featured"`
	Weight           float64     `json:"weight,omitempty"`
	Dimensions       *Dimensions `json:"dimensions,omitempty"`

	Brand      Brand             `json:"brand"`
	Categories []ProductCategory `json:"categories"`
	Images     []ProductImage    `json:"images"`
	Variants   []Variant         `json:"variants"`

	// SalesCount é derivado da contagem de order_items; alimenta a ordenação
	// por popularidade e não faz parte da representação pública.
	SalesCount int `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Dimensions agrupa os atributos físicos do produto (em centímetros).
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Brand é a entidade de referência da marca. O slug é a chave filtrável.
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Category é a entidade de referência da categoria. O slug é a chave filtrável.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// ProductCategory é a associação produto-categoria (muitos-para-muitos).
// Exatamente uma associação por produto deve estar marcada como primária.
type ProductCategory struct {
	Category
	IsPrimary bool `json:"is_primary"`
}

// ProductImage é uma imagem do produto ou de uma variante específica.
// VariantID == nil indica imagem do produto base.
type ProductImage struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	VariantID *string `json:"variant_id,omitempty"`
	URL       string  `json:"url"`
	AltText   string  `json:"alt_text,omitempty"`
	IsPrimary bool    `json:"is_primary"`
	SortOrder int     `json:"sort_order"`
}

// Variant representa uma configuração comprável do produto (e.g. tamanho/cor),
// com SKU próprio, ajuste de preço assinado e estoque não-negativo.
// O controle do estoque em si é responsabilidade do colaborador de inventário,
// fora do escopo deste serviço; aqui a quantidade é somente leitura.
type Variant struct {
	ID              string            `json:"id"`
	ProductID       string            `json:"product_id"`
	SKU             string            `json:"sku"`
	Name            string            `json:"name"`
	PriceAdjustment Money             `json:"price_adjustment"`
	StockQuantity   int               `json:"stock_quantity"`
	IsActive        bool              `json:"is_active"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// --- Interface de Contrato (O CORAÇÃO DA ARQUITETURA LIMPA) ---

// CatalogRepository é o contrato que a camada de Serviço espera da camada de
// Persistência (DB/Cache ou memória). FindMany e Count são as duas leituras do
// pipeline de listagem; ambas recebem o mesmo predicado e são independentes,
// podendo ser executadas em paralelo.
// Toda implementação deve retornar produtos com as relações carregadas.
type CatalogRepository interface {
	FindMany(ctx context.Context, pred ProductPredicate, order ProductOrder, skip, take int) ([]Product, error)
	Count(ctx context.Context, pred ProductPredicate) (int, error)

	FindBySlug(ctx context.Context, slug string) (Product, error)
	FindRelated(ctx context.Context, productID string, limit int) ([]Product, error)

	FindCategories(ctx context.Context) ([]Category, error)
	FindCategoryBySlug(ctx context.Context, slug string) (Category, error)
	FindBrands(ctx context.Context) ([]Brand, error)

	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error)
}
