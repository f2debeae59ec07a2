// Package catalogservice contém a lógica de negócio da vitrine: o pipeline
// de listagem (filtro -> predicado -> leituras paralelas -> paginação ->
// projeção) e as leituras suplementares (destaques, novidades, relacionados,
// categorias e marcas).
package catalogservice

import (
	"context"
	"strings"
	"sync"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/pkg/logger"
	"goshop/internal/pkg/validation"
)

// Limites padrão das leituras suplementares da vitrine.
const (
	defaultFeaturedLimit = 8
	defaultNewestLimit   = 8
	defaultRelatedLimit  = 4
)

// CatalogService orquestra o repositório de catálogo. Não conhece SQL nem
// cache; tudo o que enxerga é o contrato domain.CatalogRepository.
type CatalogService struct {
	Repo   domain.CatalogRepository
	Logger logger.Logger
}

// NewCatalogService cria e retorna uma nova instância do Serviço de catálogo.
func NewCatalogService(repo domain.CatalogRepository, log logger.Logger) *CatalogService {
	return &CatalogService{Repo: repo, Logger: log}
}

// GetProducts executa o pipeline de listagem completo. As duas leituras
// (página e contagem total) recebem o mesmo predicado e rodam em paralelo;
// qualquer falha invalida a resposta inteira, sem resultado parcial.
func (s *CatalogService) GetProducts(ctx context.Context, filter domain.ProductFilter) (domain.ProductListResult, error) {
	filter = filter.Normalize()
	pred, order := domain.BuildQuery(filter)

	var (
		wg       sync.WaitGroup
		products []domain.Product
		total    int
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, findErr = s.Repo.FindMany(ctx, pred, order, filter.Offset(), filter.Limit)
	}()
	go func() {
		defer wg.Done()
		total, countErr = s.Repo.Count(ctx, pred)
	}()
	wg.Wait()

	if findErr != nil {
		return domain.ProductListResult{}, wrapRepoError(findErr, "Falha ao buscar a página de produtos")
	}
	if countErr != nil {
		return domain.ProductListResult{}, wrapRepoError(countErr, "Falha ao contar produtos")
	}

	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, domain.ProjectProduct(p))
	}

	return domain.ProductListResult{
		Products:   views,
		Pagination: domain.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

// GetProductBySlug devolve a projeção completa da página de produto.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (domain.ProductDetailView, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.ProductDetailView{}, apperror.NewValidationError("O slug do produto é obrigatório.")
	}

	product, err := s.Repo.FindBySlug(ctx, slug)
	if err != nil {
		return domain.ProductDetailView{}, wrapRepoError(err, "Falha ao buscar produto")
	}
	return domain.ProjectProductDetail(product), nil
}

// GetFeaturedProducts lista os produtos em destaque, mais recentes primeiro.
func (s *CatalogService) GetFeaturedProducts(ctx context.Context, limit int) ([]domain.ProductView, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	featured := true
	pred := domain.ProductPredicate{ActiveOnly: true, Featured: &featured}

	products, err := s.Repo.FindMany(ctx, pred, domain.OrderNewest, 0, limit)
	if err != nil {
		return nil, wrapRepoError(err, "Falha ao buscar produtos em destaque")
	}
	return projectAll(products), nil
}

// GetNewArrivals lista os produtos mais recentes da vitrine.
func (s *CatalogService) GetNewArrivals(ctx context.Context, limit int) ([]domain.ProductView, error) {
	if limit <= 0 {
		limit = defaultNewestLimit
	}
	pred := domain.ProductPredicate{ActiveOnly: true}

	products, err := s.Repo.FindMany(ctx, pred, domain.OrderNewest, 0, limit)
	if err != nil {
		return nil, wrapRepoError(err, "Falha ao buscar novidades")
	}
	return projectAll(products), nil
}

// GetRelatedProducts resolve o slug para o produto e busca os que compartilham
// ao menos uma categoria com ele.
func (s *CatalogService) GetRelatedProducts(ctx context.Context, slug string, limit int) ([]domain.ProductView, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	product, err := s.Repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, wrapRepoError(err, "Falha ao buscar produto")
	}

	related, err := s.Repo.FindRelated(ctx, product.ID, limit)
	if err != nil {
		return nil, wrapRepoError(err, "Falha ao buscar produtos relacionados")
	}
	return projectAll(related), nil
}

// GetCategories lista as categorias ativas na ordem de exibição.
func (s *CatalogService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.Repo.FindCategories(ctx)
	if err != nil {
		return nil, wrapRepoError(err, "Falha ao buscar categorias")
	}
	return categories, nil
}

// GetCategoryBySlug busca uma única categoria ativa.
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	category, err := s.Repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return domain.Category{}, wrapRepoError(err, "Falha ao buscar categoria")
	}
	return category, nil
}

// GetBrands lista todas as marcas em ordem alfabética.
func (s *CatalogService) GetBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.Repo.FindBrands(ctx)
	if err != nil {
		return nil, wrapRepoError(err, "Falha ao buscar marcas")
	}
	return brands, nil
}

// UpdateProduct valida e aplica um patch administrativo, devolvendo a projeção
// completa do produto atualizado.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.ProductDetailView, error) {
	if strings.TrimSpace(id) == "" {
		return domain.ProductDetailView{}, apperror.NewValidationError("O ID do produto é obrigatório.")
	}
	if patch.IsEmpty() {
		return domain.ProductDetailView{}, apperror.NewValidationError("O patch não contém campo algum para atualizar.")
	}
	if err := validation.Struct(patch); err != nil {
		return domain.ProductDetailView{}, err
	}

	product, err := s.Repo.UpdateProduct(ctx, id, patch)
	if err != nil {
		return domain.ProductDetailView{}, wrapRepoError(err, "Falha ao atualizar produto")
	}

	s.Logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"product_id": id})
	return domain.ProjectProductDetail(product), nil
}

// projectAll aplica a projeção de listagem a uma página inteira.
func projectAll(products []domain.Product) []domain.ProductView {
	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, domain.ProjectProduct(p))
	}
	return views
}

// wrapRepoError preserva erros tipados do repositório (NotFound, Conflict);
// qualquer outro vira InternalError com a mensagem de contexto.
func wrapRepoError(err error, msg string) error {
	if _, ok := err.(apperror.AppError); ok {
		return err
	}
	return apperror.NewInternalError(msg, err)
}
