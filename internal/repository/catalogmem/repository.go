// Package catalogmem fornece uma implementação em memória do
// domain.CatalogRepository sobre o dataset seed. É o driver de armazenamento
// usado em desenvolvimento local (STORAGE_DRIVER=memory) e nos testes de
// handler, dispensando PostgreSQL e Redis.
package catalogmem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/seed"
)

// CatalogRepository avalia os predicados do domínio diretamente sobre os
// produtos materializados, via ProductPredicate.Matches. A semântica de
// filtro/ordenação é a mesma do repositório PostgreSQL.
type CatalogRepository struct {
	mu      sync.RWMutex
	dataset seed.Dataset
}

// NewCatalogRepository cria o repositório a partir de um Dataset.
func NewCatalogRepository(dataset seed.Dataset) *CatalogRepository {
	return &CatalogRepository{dataset: dataset}
}

// FindMany aplica predicado, ordenação e janela skip/take sobre o dataset.
func (r *CatalogRepository) FindMany(_ context.Context, pred domain.ProductPredicate, order domain.ProductOrder, skip, take int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Product, 0, len(r.dataset.Products))
	for _, p := range r.dataset.Products {
		if pred.Matches(p) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, order)

	if skip < 0 {
		skip = 0
	}
	if skip >= len(matched) {
		return []domain.Product{}, nil
	}
	end := skip + take
	if take < 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

// Count retorna quantos produtos satisfazem o predicado.
func (r *CatalogRepository) Count(_ context.Context, pred domain.ProductPredicate) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, p := range r.dataset.Products {
		if pred.Matches(p) {
			total++
		}
	}
	return total, nil
}

// FindBySlug busca um produto ativo pelo slug.
func (r *CatalogRepository) FindBySlug(_ context.Context, slug string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.dataset.Products {
		if p.Slug == slug && p.IsActive {
			return p, nil
		}
	}
	return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com slug '%s' não existe na base de dados.", slug))
}

// FindRelated devolve produtos ativos que compartilham ao menos uma categoria
// com o produto informado, excluindo o próprio, mais recentes primeiro.
func (r *CatalogRepository) FindRelated(_ context.Context, productID string, limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var source *domain.Product
	for i := range r.dataset.Products {
		if r.dataset.Products[i].ID == productID {
			source = &r.dataset.Products[i]
			break
		}
	}
	if source == nil {
		return []domain.Product{}, nil
	}

	categoryIDs := make(map[string]struct{}, len(source.Categories))
	for _, pc := range source.Categories {
		categoryIDs[pc.ID] = struct{}{}
	}

	related := make([]domain.Product, 0, limit)
	for _, p := range r.dataset.Products {
		if p.ID == productID || !p.IsActive {
			continue
		}
		for _, pc := range p.Categories {
			if _, ok := categoryIDs[pc.ID]; ok {
				related = append(related, p)
				break
			}
		}
	}

	sortProducts(related, domain.OrderNewest)
	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// FindCategories lista as categorias ativas na ordem de exibição.
func (r *CatalogRepository) FindCategories(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.dataset.Categories))
	for _, c := range r.dataset.Categories {
		if c.IsActive {
			categories = append(categories, c)
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})
	return categories, nil
}

// FindCategoryBySlug busca uma categoria ativa pelo slug.
func (r *CatalogRepository) FindCategoryBySlug(_ context.Context, slug string) (domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.dataset.Categories {
		if c.Slug == slug && c.IsActive {
			return c, nil
		}
	}
	return domain.Category{}, apperror.NewNotFoundError(fmt.Sprintf("Categoria com slug '%s' não existe na base de dados.", slug))
}

// FindBrands lista todas as marcas em ordem alfabética.
func (r *CatalogRepository) FindBrands(_ context.Context) ([]domain.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brands := make([]domain.Brand, len(r.dataset.Brands))
	copy(brands, r.dataset.Brands)
	sort.SliceStable(brands, func(i, j int) bool {
		return brands[i].Name < brands[j].Name
	})
	return brands, nil
}

// UpdateProduct aplica o patch sobre o produto identificado pelo ID.
func (r *CatalogRepository) UpdateProduct(_ context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.dataset.Products {
		if r.dataset.Products[i].ID == id {
			patch.Apply(&r.dataset.Products[i])
			r.dataset.Products[i].UpdatedAt = time.Now().UTC()
			return r.dataset.Products[i], nil
		}
	}
	return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
}

// sortProducts ordena in-place espelhando as cláusulas ORDER BY do
// repositório PostgreSQL.
func sortProducts(products []domain.Product, order domain.ProductOrder) {
	switch order {
	case domain.OrderPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.OrderPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.OrderPopularity:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SalesCount > products[j].SalesCount
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
