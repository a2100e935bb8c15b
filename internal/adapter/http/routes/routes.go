package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "smartorders/docs" // swagger document
	"smartorders/internal/adapter/http/handlers"
	"smartorders/internal/adapter/http/middleware"
	repository2 "smartorders/internal/adapter/persistence/repository"
	"smartorders/internal/infrastructure/auth"
	"smartorders/internal/infrastructure/config"
	"smartorders/internal/infrastructure/database"
	"smartorders/internal/infrastructure/metrics"
	"smartorders/internal/infrastructure/orderapi"
	"smartorders/internal/usecase"
	"smartorders/internal/usecase/interfaces"
	"smartorders/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases and collaborators the router serves.
type Dependencies struct {
	Devices      usecase.IDeviceUseCase
	Drafts       usecase.IDraftUseCase
	Orders       usecase.IOrderSyncUseCase
	OrderService usecase.IOrderServiceUseCase
	Tokens       middleware.TokenParser
	Metrics      http.Handler
	CORSOrigins  []string
	Log          *logger.Logger
}

// Run wires the application from cfg and starts the server. It blocks until
// the server stops.
func Run(cfg config.Config, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	deps, cleanup, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info("[http] listening", "port", cfg.Port)
	return router.Run(":" + strconv.Itoa(cfg.Port))
}

// NewRouter builds the gin engine with middlewares and all /v1 routes.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	router := gin.New()
	setMiddlewares(router, deps)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	requireAuth := middleware.NewAuthMiddleware(deps.Log, deps.Tokens).RequireAuth()

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDeviceRoutes(v1, handlers.NewDeviceHandler(deps.Devices), requireAuth)

	// Authenticated routes
	private := v1.Group("", requireAuth)
	addDraftRoutes(private, handlers.NewDraftHandler(deps.Drafts, deps.Log))
	addOrderRoutes(private, handlers.NewOrderHandler(deps.Orders))
	addOrderServiceRoutes(private, handlers.NewOrderServiceHandler(deps.OrderService))
	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Log.Error("[http] recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if len(deps.CORSOrigins) > 0 {
		router.Use(middleware.CORS(deps.CORSOrigins))
	}
}

// buildDependencies connects the stores and assembles the use cases. The
// returned cleanup releases the connections it opened.
func buildDependencies(ctx context.Context, cfg config.Config, log *logger.Logger) (Dependencies, func(), error) {
	cleanup := func() {}

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return Dependencies{}, cleanup, err
	}
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	deviceRepo := repository2.NewDeviceDynamoRepository(ddb)

	var draftRepo interfaces.IDraftRepository
	if cfg.RedisAddr != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return Dependencies{}, cleanup, err
		}
		cleanup = func() { _ = rdb.Close() }
		draftRepo = repository2.NewDraftRedisRepository(rdb, cfg.DraftTTL)
	} else {
		log.Warn("[drafts] REDIS_ADDR not set, drafts are kept in memory")
		draftRepo = repository2.NewDraftMemoryRepository()
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return Dependencies{}, cleanup, err
	}

	orderService := usecase.NewOrderServiceUseCase(orderRepo)

	var gateway interfaces.IOrderGateway
	if cfg.OrdersAPIURL != "" {
		log.Info("[orders] using remote order service", "url", cfg.OrdersAPIURL)
		gateway = orderapi.New(cfg.OrdersAPIURL, cfg.OrdersAPITimeout)
	} else {
		gateway = usecase.NewLocalOrderGateway(orderService)
	}

	syncMetrics := metrics.NewSyncMetrics()
	syncs := usecase.NewSynchronizerRegistry(gateway, syncMetrics, log)
	syncs.SetIdleTTL(cfg.SyncIdleTTL)

	return Dependencies{
		Devices:      usecase.NewDeviceUseCase(deviceRepo),
		Drafts:       usecase.NewDraftUseCase(draftRepo, deviceRepo, syncs, cfg.DraftAutoStart, log),
		Orders:       syncs,
		OrderService: orderService,
		Tokens:       tokens,
		Metrics:      syncMetrics.Handler(),
		CORSOrigins:  cfg.CORSOrigins,
		Log:          log,
	}, cleanup, nil
}
