package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"goshop/internal/domain"
	apperror "goshop/internal/errors"
	"goshop/internal/pkg/logger"
)

// CatalogService define o contrato que o Handler espera da camada de Serviço.
type CatalogService interface {
	GetProducts(ctx context.Context, filter domain.ProductFilter) (domain.ProductListResult, error)
	GetProductBySlug(ctx context.Context, slug string) (domain.ProductDetailView, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]domain.ProductView, error)
	GetNewArrivals(ctx context.Context, limit int) ([]domain.ProductView, error)
	GetRelatedProducts(ctx context.Context, slug string, limit int) ([]domain.ProductView, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, error)
	GetBrands(ctx context.Context) ([]domain.Brand, error)
}

// Handler agrupa todos os métodos de Handler da vitrine (somente leitura).
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CatalogService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category),
			map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := map[string]interface{}{
		"code":     status,
		"category": category,
		"message":  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// limitParam lê o query param "limit"; valor ausente ou não-numérico vira 0
// (o serviço aplica o padrão da rota).
func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}

// ListProductsHandler lida com a requisição GET /v1/products.
// @Summary Lista produtos com filtros, ordenação e paginação
// @Description Filtra por categoria, marca, faixa de preço, busca textual e destaque; ordena por preço, novidade ou popularidade. Somente produtos ativos.
// @Tags catalog
// @Produce json
// @Param category query string false "Slug da categoria"
// @Param brand query string false "Slug da marca"
// @Param minPrice query number false "Preço mínimo (inclusivo)"
// @Param maxPrice query number false "Preço máximo (inclusivo)"
// @Param search query string false "Busca por substring em nome e descrições"
// @Param featured query bool false "Somente destaques"
// @Param sortBy query string false "price_asc | price_desc | newest | popularity"
// @Param page query int false "Página (padrão 1)"
// @Param limit query int false "Itens por página (padrão 12, máximo 100)"
// @Success 200 {object} domain.ProductListResult "Página de produtos com metadados de paginação"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	filter := domain.ParseProductFilter(r.URL.Query())
	result, err := h.Service.GetProducts(r.Context(), filter)
	h.handleServiceResponse(w, r, result, err, http.StatusOK)
}

// FeaturedProductsHandler lida com a requisição GET /v1/products/featured.
// @Summary Lista os produtos em destaque
// @Tags catalog
// @Produce json
// @Param limit query int false "Quantidade (padrão 8)"
// @Success 200 {array} domain.ProductView
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products/featured [get]
func (h *Handler) FeaturedProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	views, err := h.Service.GetFeaturedProducts(r.Context(), limitParam(r))
	h.handleServiceResponse(w, r, views, err, http.StatusOK)
}

// NewArrivalsHandler lida com a requisição GET /v1/products/new.
// @Summary Lista os produtos mais recentes
// @Tags catalog
// @Produce json
// @Param limit query int false "Quantidade (padrão 8)"
// @Success 200 {array} domain.ProductView
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products/new [get]
func (h *Handler) NewArrivalsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	views, err := h.Service.GetNewArrivals(r.Context(), limitParam(r))
	h.handleServiceResponse(w, r, views, err, http.StatusOK)
}

// GetProductBySlugHandler lida com a requisição GET /v1/products/{slug}.
// @Summary Busca a página completa de um produto ativo pelo slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Slug do produto"
// @Success 200 {object} domain.ProductDetailView
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products/{slug} [get]
func (h *Handler) GetProductBySlugHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	// O slug é o último segmento: ["v1", "products", "classic-white-t-shirt"]
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) != 3 || segments[2] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou slug ausente."), http.StatusOK)
		return
	}

	view, err := h.Service.GetProductBySlug(r.Context(), segments[2])
	h.handleServiceResponse(w, r, view, err, http.StatusOK)
}

// RelatedProductsHandler lida com a requisição GET /v1/products/{slug}/related.
// @Summary Lista produtos que compartilham categoria com o produto
// @Tags catalog
// @Produce json
// @Param slug path string true "Slug do produto"
// @Param limit query int false "Quantidade (padrão 4)"
// @Success 200 {array} domain.ProductView
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products/{slug}/related [get]
func (h *Handler) RelatedProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	// ["v1", "products", "{slug}", "related"]
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) != 4 || segments[2] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou slug ausente."), http.StatusOK)
		return
	}

	views, err := h.Service.GetRelatedProducts(r.Context(), segments[2], limitParam(r))
	h.handleServiceResponse(w, r, views, err, http.StatusOK)
}

// ListCategoriesHandler lida com a requisição GET /v1/categories.
// @Summary Lista as categorias ativas na ordem de exibição
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /categories [get]
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	categories, err := h.Service.GetCategories(r.Context())
	h.handleServiceResponse(w, r, categories, err, http.StatusOK)
}

// GetCategoryBySlugHandler lida com a requisição GET /v1/categories/{slug}.
// @Summary Busca uma categoria ativa pelo slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Slug da categoria"
// @Success 200 {object} domain.Category
// @Failure 404 {object} domain.ErrorResponse "Categoria não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /categories/{slug} [get]
func (h *Handler) GetCategoryBySlugHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) != 3 || segments[2] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou slug ausente."), http.StatusOK)
		return
	}

	category, err := h.Service.GetCategoryBySlug(r.Context(), segments[2])
	h.handleServiceResponse(w, r, category, err, http.StatusOK)
}

// ListBrandsHandler lida com a requisição GET /v1/brands.
// @Summary Lista todas as marcas em ordem alfabética
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Brand
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /brands [get]
func (h *Handler) ListBrandsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	brands, err := h.Service.GetBrands(r.Context())
	h.handleServiceResponse(w, r, brands, err, http.StatusOK)
}
