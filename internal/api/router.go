package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/devconnect/marketplace-api/docs"
	"github.com/devconnect/marketplace-api/internal/api/handler"
	"github.com/devconnect/marketplace-api/internal/api/middleware"
	"github.com/devconnect/marketplace-api/internal/core/domain"
	"github.com/devconnect/marketplace-api/internal/core/service"
	"github.com/devconnect/marketplace-api/internal/infrastructure/db/postgres"
	"github.com/devconnect/marketplace-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the cross-cutting settings the router needs.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds the Echo instance with all routes registered. Business
// routes mount twice, unversioned and under /v1, pointing at the same
// handlers.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg RouterConfig, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	directoryCache := redis.NewDirectoryCache(rdb)

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	portfolioRepo := postgres.NewPortfolioRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	developerRepo := postgres.NewDeveloperRepository(pool)

	authService := service.NewAuthService(userRepo, tokenService)
	profileService := service.NewProfileService(profileRepo, directoryCache, log)
	portfolioService := service.NewPortfolioService(portfolioRepo, profileRepo, directoryCache, log)
	projectService := service.NewProjectService(projectRepo, profileRepo, log)
	developerService := service.NewDeveloperService(developerRepo, directoryCache, log)

	authHandler := handler.NewAuthHandler(authService, tokenService)
	profileHandler := handler.NewProfileHandler(profileService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	projectHandler := handler.NewProjectHandler(projectService)
	developerHandler := handler.NewDeveloperHandler(developerService)
	whatsappHandler := handler.NewWhatsappHandler()

	auth := middleware.Auth(tokenService)
	developerOnly := middleware.RequireRole(domain.RoleDeveloper)
	clientOnly := middleware.RequireRole(domain.RoleClient)

	mount := func(g *echo.Group) {
		// Auth
		g.POST("/auth/register", authHandler.Register)
		g.POST("/auth/login", authHandler.Login)
		g.GET("/auth/status", authHandler.Status)
		g.POST("/auth/set-role", authHandler.SetRole, auth)
		g.GET("/auth/me", authHandler.Me, auth)

		// Profile
		g.POST("/profile", profileHandler.Create, auth)
		g.PUT("/profile", profileHandler.Update, auth)
		g.GET("/profile/me", profileHandler.Me, auth)
		g.GET("/profile/:userId", profileHandler.GetByUser)

		// Portfolio
		g.POST("/portfolio", portfolioHandler.Create, auth, developerOnly)
		g.PUT("/portfolio/:id", portfolioHandler.Update, auth, developerOnly)
		g.DELETE("/portfolio/:id", portfolioHandler.Delete, auth, developerOnly)
		g.GET("/portfolio/me", portfolioHandler.Mine, auth)
		g.GET("/portfolio/user/:userId", portfolioHandler.ListByUser)
		g.GET("/portfolio/:id", portfolioHandler.Get)

		// Project
		g.POST("/project", projectHandler.Create, auth, clientOnly)
		g.PUT("/project/:id", projectHandler.Update, auth)
		g.DELETE("/project/:id", projectHandler.Delete, auth)
		g.GET("/project/me", projectHandler.Mine, auth)
		g.GET("/project/all", projectHandler.ListAll)
		g.GET("/project/:id", projectHandler.Get)

		// Developer directory
		g.GET("/developer", developerHandler.List)
		g.GET("/developer/all", developerHandler.List)
		g.GET("/developer/search", developerHandler.Search)
		g.GET("/developer/:id", developerHandler.Get)

		// WhatsApp deep link
		g.GET("/whatsapp/link", whatsappHandler.Link)
	}

	mount(e.Group(""))
	mount(e.Group("/v1"))

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
