package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"glowscore/internal/handler/api"
	"glowscore/internal/handler/middleware"
	"glowscore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	redeemHandler *api.RedeemHandler,
	adminHandler *api.AdminHandler,
	analysisHandler *api.AnalysisHandler,
	adminMiddleware *middleware.AdminMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, redeemHandler, adminHandler, analysisHandler, adminMiddleware, rateLimitMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	redeemHandler *api.RedeemHandler,
	adminHandler *api.AdminHandler,
	analysisHandler *api.AnalysisHandler,
	adminMiddleware *middleware.AdminMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		redeem := apiGroup.Group("/redeem")
		{
			addRoutes(redeem, []route{
				{Method: http.MethodGet, Path: "/validate", Handler: redeemHandler.Validate},
				{Method: http.MethodPost, Path: "", Handler: redeemHandler.Redeem,
					Mw: []gin.HandlerFunc{rateLimitMiddleware.LimitRedeem()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/analysis", Handler: analysisHandler.Start},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			codes := admin.Group("/codes")
			codes.Use(adminMiddleware.RequireAdmin())
			{
				addRoutes(codes, []route{
					{Method: http.MethodGet, Path: "", Handler: adminHandler.ListCodes},
					{Method: http.MethodPost, Path: "", Handler: adminHandler.CreateCode},
					{Method: http.MethodGet, Path: "/:id", Handler: adminHandler.GetCode},
					{Method: http.MethodPut, Path: "/:id", Handler: adminHandler.UpdateCode},
					{Method: http.MethodDelete, Path: "/:id", Handler: adminHandler.DeleteCode},
					{Method: http.MethodGet, Path: "/:id/usages", Handler: adminHandler.ListUsages},
				})
			}
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
