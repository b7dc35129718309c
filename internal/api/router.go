package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/promptvault/prompt-library/docs"
	"github.com/promptvault/prompt-library/internal/api/handler"
	"github.com/promptvault/prompt-library/internal/api/middleware"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

// Deps carries everything the router needs: the core services plus the
// storage handles used by the readiness probe (only the active backend is
// non-nil/non-empty).
type Deps struct {
	Prompts   ports.PromptService
	Session   ports.SessionService
	Tools     ports.RecommendationService
	JWTSecret string

	Mongo   *mongo.Database
	Redis   *redis.Client
	DataDir string

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("promptvault"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Session, deps.JWTSecret)
	promptHandler := handler.NewPromptHandler(deps.Prompts)
	templateHandler := handler.NewTemplateHandler()
	toolHandler := handler.NewToolHandler(deps.Tools)

	sessionGuard := middleware.Session(deps.JWTSecret, deps.Session)
	guestOnly := middleware.Guest(deps.Session)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, guestOnly)
	e.POST("/auth/login", authHandler.Login, guestOnly)
	e.POST("/auth/logout", authHandler.Logout, sessionGuard)
	e.GET("/auth/session", authHandler.Session)

	// --- Prompt collection (requires session) ---
	prompts := e.Group("/v1/prompts", sessionGuard)
	prompts.POST("", promptHandler.Create)
	prompts.GET("", promptHandler.List)
	prompts.PUT("/filters", promptHandler.SetFilter)
	prompts.GET("/favorites", promptHandler.Favorites)
	prompts.GET("/recent", promptHandler.Recent)
	prompts.GET("/categories", promptHandler.Categories)
	prompts.GET("/:id", promptHandler.Get)
	prompts.PATCH("/:id", promptHandler.Update)
	prompts.DELETE("/:id", promptHandler.Delete)
	prompts.POST("/:id/favorite", promptHandler.ToggleFavorite)

	// --- Templates and tool catalog (public reads) ---
	e.GET("/v1/templates", templateHandler.List)
	e.POST("/v1/templates/render", templateHandler.Render)
	e.GET("/v1/tools", toolHandler.List)
	e.GET("/v1/tools/categories", toolHandler.Categories)
	e.GET("/v1/tools/recommendations", toolHandler.Recommendations)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis, deps.DataDir)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the snapshot backend up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
