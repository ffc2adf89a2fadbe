package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/frostline/freezer-api/internal/api/handler"
	"github.com/frostline/freezer-api/internal/api/middleware"
	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/service"
	"github.com/frostline/freezer-api/internal/infrastructure/config"
	mongodb "github.com/frostline/freezer-api/internal/infrastructure/db/mongo"
	redisdb "github.com/frostline/freezer-api/internal/infrastructure/db/redis"
)

// bodyLimit caps request payloads; images are the largest ones.
const bodyLimit = "16M"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddleware("freezer"))

	// --- Dependencies ---
	policy, err := domain.ParseUnderflowPolicy(cfg.UnderflowPolicy)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to reject underflow policy")
		policy = domain.UnderflowReject
	}

	freezerRepo := mongodb.NewFreezerRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	imageRepo := redisdb.NewImageStore(rdb)

	sessions := service.NewSessionService(cfg.SessionSecret, cfg.SessionTTL)
	inventory := service.NewInventoryService(freezerRepo, productRepo, policy, log)
	recompute := service.NewRecomputeService(freezerRepo, productRepo, log)

	authHandler := handler.NewAuthHandler(sessions, cfg.SessionTTL)
	freezerHandler := handler.NewFreezerHandler(inventory)
	productHandler := handler.NewProductHandler(inventory)
	imageHandler := handler.NewImageHandler(imageRepo)
	procedureHandler := handler.NewProcedureHandler(recompute)

	moderator := middleware.RequireRoles(domain.RoleModerator, domain.RoleAdmin)
	admin := middleware.RequireRoles(domain.RoleAdmin)
	anyIdentity := middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator, domain.RoleUser)

	// --- API routes ---
	// Identity extraction runs before any authorization gate.
	api := e.Group("/api", rateLimiter(cfg.RateLimit), middleware.Session(sessions))

	api.POST("/auth", authHandler.Login)
	api.GET("/auth", authHandler.Me, anyIdentity)
	api.DELETE("/auth", authHandler.Logout)

	api.GET("/freezers", freezerHandler.List)
	api.POST("/freezers/update", freezerHandler.Update, moderator)
	api.GET("/freezers/:name", freezerHandler.Get)
	api.DELETE("/freezers/:name", freezerHandler.Delete, admin)
	api.POST("/freezers/:name/put-in", freezerHandler.PutIn, moderator)
	api.POST("/freezers/:name/put-out", freezerHandler.PutOut, moderator)
	api.POST("/freezers/:name/remove", freezerHandler.RemoveProduct, moderator)

	api.GET("/freezers/:name/image", imageHandler.Get)
	api.POST("/freezers/:name/image", imageHandler.Put, admin)
	api.DELETE("/freezers/:name/image", imageHandler.Delete, moderator)

	api.GET("/products", productHandler.List)
	api.GET("/products/:name", productHandler.Get)

	api.POST("/stored_procedure", procedureHandler.Run, admin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// rateLimiter budgets requests per client IP. Breaches surface through the
// central error handler as 429.
func rateLimiter(limit float64) echo.MiddlewareFunc {
	if limit <= 0 {
		limit = 20
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStore(rate.Limit(limit)),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(echo.Context, string, error) error {
			return domain.ErrTooManyRequests
		},
	})
}
