package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"goshop/config"
	_ "goshop/docs" // registro da especificação Swagger
	"goshop/internal/pkg/cache"
	"goshop/internal/pkg/database"
	"goshop/internal/pkg/logger"
	"goshop/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"goshop/internal/api/admin"
	"goshop/internal/api/catalog"
	"goshop/internal/api/router"
	"goshop/internal/api/user"
	"goshop/internal/domain"
	"goshop/internal/repository/catalogmem"
	"goshop/internal/repository/catalogrepo"
	"goshop/internal/repository/userrepo"
	"goshop/internal/seed"
	"goshop/internal/service/catalogservice"
	"goshop/internal/service/userservice"
)

// @title GoShop Catalog API
// @version 1.0
// @description API de catálogo da loja: listagem com filtros/ordenação/paginação, páginas de produto, categorias, marcas, contas e administração.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("⚡ Inicializando serviço GoShop...")

	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos em frente: as variáveis podem vir do ambiente
		// do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"storage_driver": cfg.StorageDriver})

	// 1. Conexão com Recursos de Infraestrutura + Repositórios
	var (
		catalogRepo domain.CatalogRepository
		userRepo    domain.UserRepository
		cacheClient cache.Client
	)

	switch cfg.StorageDriver {
	case "memory":
		// Driver de desenvolvimento: dataset seed em memória, sem DB nem Redis.
		catalogRepo = catalogmem.NewCatalogRepository(seed.Catalog())
		userRepo = userrepo.NewMemoryRepository()
		appLog.Info("Repositórios em memória inicializados (dataset seed).", nil)

	default:
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()
		appLog.Info("Conexão PostgreSQL estabelecida.", nil)

		cacheClient = cache.NewRedisClient(cfg.RedisAddr)
		appLog.Info("Conexão Redis estabelecida.", nil)

		catalogRepo = catalogrepo.NewCatalogRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
		userRepo = userrepo.NewUserRepository(db, cfg.DBTimeout)
	}

	// 2. INJEÇÃO DE DEPENDÊNCIAS (Repository -> Service -> Handler)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	catalogSvc := catalogservice.NewCatalogService(catalogRepo, appLog)
	catalogHandler := catalog.NewHandler(catalogSvc, appLog)

	userSvc := userservice.NewUserService(userRepo, tokenSvc, appLog)
	userHandler := user.NewHandler(userSvc, appLog)

	adminHandler := admin.NewHandler(catalogSvc, appLog)

	// 3. Roteador e Servidor
	r := router.NewRouter(catalogHandler, userHandler, adminHandler, router.Options{
		TokenSvc:        tokenSvc,
		CacheClient:     cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoShop ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
