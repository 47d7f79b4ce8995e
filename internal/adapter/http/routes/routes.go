package routes

import (
	"context"
	"log"
	"strconv"

	_ "oficina_facil/docs" // swag-generated documentation
	"oficina_facil/internal/adapter/http/handlers"
	"oficina_facil/internal/adapter/persistence/cache"
	"oficina_facil/internal/adapter/persistence/localstore"
	"oficina_facil/internal/adapter/persistence/queue"
	"oficina_facil/internal/adapter/persistence/spreadsheet"
	"oficina_facil/internal/config"
	"oficina_facil/internal/infrastructure/googleapi"
	"oficina_facil/internal/infrastructure/payments"
	"oficina_facil/internal/usecase"
	"oficina_facil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ctx := context.Background()

	local, err := localstore.New(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Failed to open local store at %q: %v", cfg.Storage.DataDir, err)
	}

	cacheStore := newCacheStore(cfg, local)
	pendingQueue := queue.New(local)

	authService := googleapi.NewAuthService(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.Google.RedirectURL,
		local,
	)

	rangeClient, err := googleapi.NewRangeClient(ctx, authService.Client(ctx), cfg.Google.SpreadsheetID)
	if err != nil {
		log.Fatalf("Failed to create sheets client: %v", err)
	}

	gateway := spreadsheet.New(rangeClient)
	oficinaUseCase := usecase.NewOficinaUseCase(gateway, cacheStore, pendingQueue, local, authService, cfg.CacheTTL())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	pagamentoUseCase := usecase.NewPagamentoUseCase(oficinaUseCase, paymentGateway, local)

	oficinaHandler := handlers.NewOficinaHandler(oficinaUseCase)
	syncHandler := handlers.NewSyncHandler(oficinaUseCase)
	authHandler := handlers.NewAuthHandler(authService)
	pagamentoHandler := handlers.NewPagamentoHandler(pagamentoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOficinaRoutes(v1, oficinaHandler, pagamentoHandler)
	addSyncRoutes(v1, syncHandler)
	addAuthRoutes(v1, authHandler)
}

// newCacheStore prefers Redis when configured and reachable, falling back to
// the file-backed cache on the same data dir otherwise.
func newCacheStore(cfg *config.Config, local interfaces.ILocalStore) interfaces.ICacheStore {
	if cfg.Cache.RedisAddr != "" {
		redisStore, err := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword)
		if err == nil {
			log.Printf("Cache backend: redis addr=%s", cfg.Cache.RedisAddr)
			return redisStore
		}
		log.Printf("Redis unavailable, using file cache: %v", err)
	}
	return cache.New(local)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
