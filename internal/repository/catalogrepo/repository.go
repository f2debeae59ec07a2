package catalogrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/pkg/cache"
	"goshop/internal/pkg/logger"
)

// CatalogRepository implementa a interface domain.CatalogRepository sobre
// PostgreSQL, com leitura cache-aside (Redis) para a busca por slug.
type CatalogRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	Logger    logger.Logger
}

// NewCatalogRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewCatalogRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *CatalogRepository {
	return &CatalogRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		Logger:    log,
	}
}

// productColumns é a lista de colunas da consulta principal (products p com
// JOIN em brands b). sales_count alimenta a ordenação por popularidade.
const productColumns = `
	p.id, p.sku, p.slug, p.name, p.description_short, p.description_long,
	p.price, p.sale_price, p.cost_price, p.is_active, p.is_featured,
	p.weight, p.length, p.width, p.height,
	b.id, b.name, b.slug,
	(SELECT COUNT(*) FROM order_items oi WHERE oi.product_id = p.id) AS sales_count,
	p.created_at, p.updated_at`

const productFrom = ` FROM products p JOIN brands b ON b.id = p.brand_id`

// FindMany executa a consulta de listagem: predicado traduzido para WHERE,
// ordenação, OFFSET/LIMIT e carga das relações da página retornada.
func (r *CatalogRepository) FindMany(ctx context.Context, pred domain.ProductPredicate, order domain.ProductOrder, skip, take int) ([]domain.Product, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	where, args := buildWhere(pred)
	query := "SELECT" + productColumns + productFrom + where + buildOrder(order) +
		fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, skip, take)

	rows, err := r.DB.QueryContext(ctxGo, query, args...)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao consultar produtos", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, take)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao mapear produto", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar produtos", err)
	}

	if err := r.loadRelations(ctxGo, products, false); err != nil {
		return nil, err
	}

	return products, nil
}

// Count retorna o total de linhas que satisfazem o predicado, sem paginação.
// É a segunda leitura independente do pipeline de listagem.
func (r *CatalogRepository) Count(ctx context.Context, pred domain.ProductPredicate) (int, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	where, args := buildWhere(pred)
	query := "SELECT COUNT(*)" + productFrom + where

	var total int
	if err := r.DB.QueryRowContext(ctxGo, query, args...).Scan(&total); err != nil {
		return 0, apperror.NewDBError("Falha ao contar produtos", err)
	}
	return total, nil
}

// Chave de cache das leituras por slug.
const productSlugCacheKey = "product:slug:%s"

// FindBySlug busca um produto ativo pelo slug, utilizando a estratégia
// Cache-Aside: tenta o Redis, cai para o PostgreSQL e repovoa o cache.
// Slug sem linha correspondente retorna NotFoundError (o handler decide
// se vira 404).
func (r *CatalogRepository) FindBySlug(ctx context.Context, slug string) (domain.Product, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(productSlugCacheKey, slug)

	// 1. Tentar obter do Cache (Redis)
	if cachedData, err := r.Cache.Get(ctxGo, key); err == nil {
		var product domain.Product
		if json.Unmarshal([]byte(cachedData), &product) == nil {
			return product, nil
		}
		// Entrada corrompida: segue para o DB e o Set abaixo sobrescreve.
	} else if err != cache.ErrCacheMiss {
		// Erro real de cache (conexão perdida); logamos e seguimos para o DB.
		r.Logger.Warn("Falha ao ler do cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	// 2. Busca no Banco de Dados (PostgreSQL)
	query := "SELECT" + productColumns + productFrom + " WHERE p.slug = $1 AND p.is_active = TRUE"
	product, err := scanProduct(r.DB.QueryRowContext(ctxGo, query, slug))
	if err == sql.ErrNoRows {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com slug '%s' não existe na base de dados.", slug))
	}
	if err != nil {
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto no DB", err)
	}

	page := []domain.Product{product}
	// A página de produto carrega todas as imagens, inclusive as de variantes.
	if err := r.loadRelations(ctxGo, page, true); err != nil {
		return domain.Product{}, err
	}
	product = page[0]

	// 3. Repovoar o cache com TTL
	if productJSON, marshalErr := json.Marshal(product); marshalErr == nil {
		r.Cache.Set(ctxGo, key, productJSON, r.CacheTTL)
	}

	return product, nil
}

// FindRelated busca produtos ativos que compartilham ao menos uma categoria
// com o produto informado, excluindo o próprio, mais recentes primeiro.
// Produto desconhecido resulta em lista vazia, não em erro.
func (r *CatalogRepository) FindRelated(ctx context.Context, productID string, limit int) ([]domain.Product, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := "SELECT" + productColumns + productFrom + `
		WHERE p.id <> $1
		  AND p.is_active = TRUE
		  AND EXISTS (
			SELECT 1 FROM product_categories pc
			WHERE pc.product_id = p.id
			  AND pc.category_id IN (SELECT category_id FROM product_categories WHERE product_id = $1)
		  )
		ORDER BY p.created_at DESC
		LIMIT $2`

	rows, err := r.DB.QueryContext(ctxGo, query, productID, limit)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao consultar produtos relacionados", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, limit)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, apperror.NewDBError("Falha ao mapear produto relacionado", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar produtos relacionados", err)
	}

	if err := r.loadRelations(ctxGo, products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// FindCategories lista as categorias ativas na ordem de exibição.
func (r *CatalogRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxGo,
		`SELECT id, name, slug, is_active, sort_order FROM categories WHERE is_active = TRUE ORDER BY sort_order ASC`)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao consultar categorias", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.SortOrder); err != nil {
			return nil, apperror.NewDBError("Falha ao mapear categoria", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindCategoryBySlug busca uma categoria ativa pelo slug.
func (r *CatalogRepository) FindCategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var c domain.Category
	err := r.DB.QueryRowContext(ctxGo,
		`SELECT id, name, slug, is_active, sort_order FROM categories WHERE slug = $1 AND is_active = TRUE`,
		slug).Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.SortOrder)
	if err == sql.ErrNoRows {
		return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("Categoria com slug '%s' não existe na base de dados.", slug))
	}
	if err != nil {
		return domain.Category{}, apperror.NewDBError("Falha ao buscar categoria no DB", err)
	}
	return c, nil
}

// FindBrands lista todas as marcas em ordem alfabética.
func (r *CatalogRepository) FindBrands(ctx context.Context) ([]domain.Brand, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxGo,
		`SELECT id, name, slug, created_at, updated_at FROM brands ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao consultar marcas", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, apperror.NewDBError("Falha ao mapear marca", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// UpdateProduct aplica um patch tipado como UPDATE dirigido: apenas os campos
// presentes entram no SET. Invalida a entrada de cache do slug após a escrita.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.DescriptionShort != nil {
		set("description_short", *patch.DescriptionShort)
	}
	if patch.DescriptionLong != nil {
		set("description_long", *patch.DescriptionLong)
	}
	if patch.Price != nil {
		set("price", patch.Price.String())
	}
	if patch.ClearSalePrice {
		sets = append(sets, "sale_price = NULL")
	} else if patch.SalePrice != nil {
		set("sale_price", patch.SalePrice.String())
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}
	if patch.IsFeatured != nil {
		set("is_featured", *patch.IsFeatured)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d RETURNING slug",
		strings.Join(sets, ", "), len(args))

	var slug string
	err := r.DB.QueryRowContext(ctxGo, query, args...).Scan(&slug)
	if err == sql.ErrNoRows {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}
	if err != nil {
		return domain.Product{}, apperror.NewDBError("Falha ao atualizar produto", err)
	}

	// Invalidação da entrada cache-aside; a próxima leitura repovoa.
	r.Cache.Delete(ctxGo, fmt.Sprintf(productSlugCacheKey, slug))

	return r.findByID(ctxGo, id)
}

// findByID recarrega um produto (ativo ou não) com relações completas.
func (r *CatalogRepository) findByID(ctx context.Context, id string) (domain.Product, error) {
	query := "SELECT" + productColumns + productFrom + " WHERE p.id = $1"
	product, err := scanProduct(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}
	if err != nil {
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto no DB", err)
	}

	page := []domain.Product{product}
	if err := r.loadRelations(ctx, page, true); err != nil {
		return domain.Product{}, err
	}
	return page[0], nil
}

// rowScanner abstrai *sql.Row e *sql.Rows para o helper de mapeamento.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProduct mapeia uma linha de productColumns para a entidade.
func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p                     domain.Product
		salePrice, costPrice  sql.NullString
		weight                sql.NullFloat64
		length, width, height sql.NullFloat64
	)

	err := row.Scan(
		&p.ID, &p.SKU, &p.Slug, &p.Name, &p.DescriptionShort, &p.DescriptionLong,
		&p.Price, &salePrice, &costPrice, &p.IsActive, &p.IsFeatured,
		&weight, &length, &width, &height,
		&p.Brand.ID, &p.Brand.Name, &p.Brand.Slug,
		&p.SalesCount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}

	if salePrice.Valid {
		m, err := domain.ParseMoney(salePrice.String)
		if err != nil {
			return domain.Product{}, err
		}
		p.SalePrice = &m
	}
	if costPrice.Valid {
		m, err := domain.ParseMoney(costPrice.String)
		if err != nil {
			return domain.Product{}, err
		}
		p.CostPrice = &m
	}
	if weight.Valid {
		p.Weight = weight.Float64
	}
	if length.Valid || width.Valid || height.Valid {
		p.Dimensions = &domain.Dimensions{
			Length: length.Float64,
			Width:  width.Float64,
			Height: height.Float64,
		}
	}

	return p, nil
}

// loadRelations carrega categorias, imagens e variantes (com atributos) para
// a página de produtos em consultas batched via ANY(ids), evitando N+1.
// includeVariantImages controla se imagens de variantes entram (página de
// produto) ou só as do produto base (listagem).
func (r *CatalogRepository) loadRelations(ctx context.Context, products []domain.Product, includeVariantImages bool) error {
	if len(products) == 0 {
		return nil
	}

	index := make(map[string]*domain.Product, len(products))
	ids := make([]string, 0, len(products))
	for i := range products {
		index[products[i].ID] = &products[i]
		ids = append(ids, products[i].ID)
	}
	idArray := pq.Array(ids)

	// 1. Categorias associadas
	rows, err := r.DB.QueryContext(ctx, `
		SELECT pc.product_id, c.id, c.name, c.slug, c.is_active, c.sort_order, pc.is_primary
		FROM product_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.product_id = ANY($1)`, idArray)
	if err != nil {
		return apperror.NewDBError("Falha ao consultar categorias do produto", err)
	}
	for rows.Next() {
		var (
			productID string
			pc        domain.ProductCategory
		)
		if err := rows.Scan(&productID, &pc.ID, &pc.Name, &pc.Slug, &pc.IsActive, &pc.SortOrder, &pc.IsPrimary); err != nil {
			rows.Close()
			return apperror.NewDBError("Falha ao mapear categoria do produto", err)
		}
		if p, ok := index[productID]; ok {
			p.Categories = append(p.Categories, pc)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperror.NewDBError("Falha ao iterar categorias do produto", err)
	}

	// 2. Imagens (ordenadas por precedência de primária)
	imageQuery := `
		SELECT id, product_id, variant_id, url, alt_text, is_primary, sort_order
		FROM product_images
		WHERE product_id = ANY($1)`
	if !includeVariantImages {
		imageQuery += ` AND variant_id IS NULL`
	}
	imageQuery += ` ORDER BY is_primary DESC, sort_order ASC`

	rows, err = r.DB.QueryContext(ctx, imageQuery, idArray)
	if err != nil {
		return apperror.NewDBError("Falha ao consultar imagens do produto", err)
	}
	for rows.Next() {
		var (
			img       domain.ProductImage
			variantID sql.NullString
			altText   sql.NullString
		)
		if err := rows.Scan(&img.ID, &img.ProductID, &variantID, &img.URL, &altText, &img.IsPrimary, &img.SortOrder); err != nil {
			rows.Close()
			return apperror.NewDBError("Falha ao mapear imagem do produto", err)
		}
		if variantID.Valid {
			img.VariantID = &variantID.String
		}
		img.AltText = altText.String
		if p, ok := index[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperror.NewDBError("Falha ao iterar imagens do produto", err)
	}

	// 3. Variantes ativas
	rows, err = r.DB.QueryContext(ctx, `
		SELECT id, product_id, sku, name, price_adjustment, stock_quantity, is_active
		FROM variants
		WHERE product_id = ANY($1) AND is_active = TRUE`, idArray)
	if err != nil {
		return apperror.NewDBError("Falha ao consultar variantes do produto", err)
	}
	variantIDs := make([]string, 0)
	for rows.Next() {
		var v domain.Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.SKU, &v.Name, &v.PriceAdjustment, &v.StockQuantity, &v.IsActive); err != nil {
			rows.Close()
			return apperror.NewDBError("Falha ao mapear variante do produto", err)
		}
		if p, ok := index[v.ProductID]; ok {
			p.Variants = append(p.Variants, v)
			variantIDs = append(variantIDs, v.ID)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperror.NewDBError("Falha ao iterar variantes do produto", err)
	}

	// 4. Atributos das variantes (size=M, etc.). Os atributos são coletados em
	// um mapa e anexados só depois de todas as variantes estarem no lugar:
	// guardar ponteiros para elementos do slice durante os appends deixaria os
	// ponteiros apontando para o array antigo após uma realocação.
	if len(variantIDs) > 0 {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT variant_id, name, value
			FROM variant_attributes
			WHERE variant_id = ANY($1)`, pq.Array(variantIDs))
		if err != nil {
			return apperror.NewDBError("Falha ao consultar atributos de variante", err)
		}
		attrsByVariant := make(map[string]map[string]string)
		for rows.Next() {
			var variantID, name, value string
			if err := rows.Scan(&variantID, &name, &value); err != nil {
				rows.Close()
				return apperror.NewDBError("Falha ao mapear atributo de variante", err)
			}
			if attrsByVariant[variantID] == nil {
				attrsByVariant[variantID] = make(map[string]string)
			}
			attrsByVariant[variantID][name] = value
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return apperror.NewDBError("Falha ao iterar atributos de variante", err)
		}

		attachVariantAttributes(products, attrsByVariant)
	}

	return nil
}

// attachVariantAttributes anexa os atributos coletados às variantes já
// carregadas, indexando o slice diretamente.
func attachVariantAttributes(products []domain.Product, attrsByVariant map[string]map[string]string) {
	for i := range products {
		for j := range products[i].Variants {
			if attrs, ok := attrsByVariant[products[i].Variants[j].ID]; ok {
				products[i].Variants[j].Attributes = attrs
			}
		}
	}
}
