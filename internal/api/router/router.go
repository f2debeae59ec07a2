package router

import (
	"net/http"
	"strings"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"goshop/internal/api/admin"
	"goshop/internal/api/catalog"
	"goshop/internal/api/user"
	"goshop/internal/domain"
	"goshop/internal/pkg/cache"
	"goshop/internal/pkg/middleware"
)

// Options agrupa as dependências transversais do roteador.
type Options struct {
	TokenSvc middleware.TokenService

	// CacheClient habilita o rate limiting quando presente; nil desliga o
	// limitador (driver de memória em desenvolvimento local).
	CacheClient     cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(catalogHandler *catalog.Handler, userHandler *user.Handler, adminHandler *admin.Handler, opts Options) http.Handler {

	// ServeMux padrão do net/http; os sufixos com "/" delegam a extração de
	// segmentos aos handlers.
	mux := http.NewServeMux()

	// --- 1. Health Check ---
	mux.HandleFunc("/ping", PingHandler)

	// --- 2. Vitrine (somente leitura, pública) ---
	mux.HandleFunc("/v1/products", catalogHandler.ListProductsHandler)
	mux.HandleFunc("/v1/products/", productSubrouter(catalogHandler))
	mux.HandleFunc("/v1/categories", catalogHandler.ListCategoriesHandler)
	mux.HandleFunc("/v1/categories/", catalogHandler.GetCategoryBySlugHandler)
	mux.HandleFunc("/v1/brands", catalogHandler.ListBrandsHandler)

	// --- 3. Contas (registro/login públicos, perfil autenticado) ---
	authMiddleware := middleware.NewAuthMiddleware(opts.TokenSvc)
	mux.HandleFunc("/v1/auth/register", userHandler.RegisterUserHandler)
	mux.HandleFunc("/v1/auth/login", userHandler.LoginUserHandler)
	mux.HandleFunc("/v1/auth/me", authMiddleware(userHandler.ProfileHandler))

	// --- 4. Administração (JWT + role admin) ---
	adminOnly := middleware.PermissionMiddleware(domain.RoleAdmin)
	mux.HandleFunc("/v1/admin/products/", authMiddleware(adminOnly(adminHandler.UpdateProductHandler)))

	// --- 5. Documentação (Swagger UI) ---
	mux.Handle("/swagger/", httpSwagger.Handler())

	// --- 6. Middlewares Globais ---
	var handler http.Handler = mux
	if opts.CacheClient != nil && opts.RateLimitMax > 0 {
		handler = middleware.RateLimiter(opts.CacheClient, opts.RateLimitMax, opts.RateLimitPeriod)(handler)
	}

	return handler
}

// productSubrouter despacha os sufixos de /v1/products/:
// featured, new, {slug} e {slug}/related.
func productSubrouter(h *catalog.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		// segments[0] = "v1", segments[1] = "products"
		switch {
		case len(segments) == 3 && segments[2] == "featured":
			h.FeaturedProductsHandler(w, r)
		case len(segments) == 3 && segments[2] == "new":
			h.NewArrivalsHandler(w, r)
		case len(segments) == 3:
			h.GetProductBySlugHandler(w, r)
		case len(segments) == 4 && segments[3] == "related":
			h.RelatedProductsHandler(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
