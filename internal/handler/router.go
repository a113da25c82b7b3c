package handler

import (
	"log/slog"
	"net/http"

	"resqcart/internal/handler/api"
	"resqcart/internal/handler/middleware"
	"resqcart/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler so the router signature stays stable as endpoints grow.
type Handlers struct {
	Health    *api.HealthHandler
	Auth      *api.AuthHandler
	Product   *api.ProductHandler
	Rescue    *api.RescueHandler
	FoodBank  *api.FoodBankHandler
	Dashboard *api.DashboardHandler
	AIML      *api.AIMLHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, "/health", "/api/health"))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/health", h.Health.Check)

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/at-risk", Handler: h.Product.ListAtRisk},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Product.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Product.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete},
		})

		addRoutes(apiGroup.Group("/rescue"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Rescue.List},
			{Method: http.MethodGet, Path: "/nearby-foodbanks", Handler: h.Rescue.NearbyFoodBanks},
			{Method: http.MethodGet, Path: "/store/:storeId", Handler: h.Rescue.ListByStore},
			{Method: http.MethodGet, Path: "/foodbank/:foodBankId", Handler: h.Rescue.ListByFoodBank},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Rescue.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Rescue.Create},
			{Method: http.MethodPost, Path: "/cascade", Handler: h.Rescue.RunCascade},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Rescue.UpdateStatus},
		})

		addRoutes(apiGroup.Group("/foodbanks"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.FoodBank.Register},
			{Method: http.MethodGet, Path: "", Handler: h.FoodBank.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.FoodBank.Get},
			{Method: http.MethodPatch, Path: "/:id/verification", Handler: h.FoodBank.UpdateVerification, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
		})

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAdmin())
		addRoutes(dashboard, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
		})

		addRoutes(apiGroup.Group("/aiml"), []route{
			{Method: http.MethodGet, Path: "/status", Handler: h.AIML.Status},
			{Method: http.MethodPost, Path: "/predict", Handler: h.AIML.Predict},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
