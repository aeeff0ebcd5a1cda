package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-system/internal/handler/api"
	"parking-system/internal/handler/middleware"
	"parking-system/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Parking *api.ParkingHandler
	Spot    *api.SpotHandler
	Ticket  *api.TicketHandler
	Pool    *api.PoolHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	httpMetrics *middleware.HTTPMetrics,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, httpMetrics)
	setupRoutes(engine, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, httpMetrics *middleware.HTTPMetrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(httpMetrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			session := auth.Group("")
			session.Use(authMiddleware.RequireAuth())
			addRoutes(session, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authRequired.Group("/parking"), []route{
				{Method: http.MethodPost, Path: "/entries", Handler: h.Parking.Entry},
				{Method: http.MethodPost, Path: "/exits", Handler: h.Parking.Exit},
			})

			addRoutes(authRequired.Group("/spots"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Spot.List},
				{Method: http.MethodGet, Path: "/next", Handler: h.Spot.Next},
			})

			addRoutes(authRequired.Group("/vehicles/:registration"), []route{
				{Method: http.MethodGet, Path: "/ticket", Handler: h.Ticket.Latest},
				{Method: http.MethodGet, Path: "/ticket/qr", Handler: h.Ticket.QR},
			})

			addRoutes(authRequired.Group("/admin"), []route{
				{Method: http.MethodPost, Path: "/pool", Handler: h.Pool.Initialize},
				{Method: http.MethodDelete, Path: "/pool", Handler: h.Pool.Reset},
			})
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
