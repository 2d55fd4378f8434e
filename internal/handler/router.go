package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barista-bot/internal/handler/api"
	"barista-bot/internal/handler/middleware"
	"barista-bot/internal/pkg/config"
)

const maxUtteranceBody = 4 << 10

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, orderingHandler *api.OrderingHandler, menuHandler *api.MenuHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, orderingHandler, menuHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, orderingHandler *api.OrderingHandler, menuHandler *api.MenuHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/menu", Handler: menuHandler.Menu},
			{Method: http.MethodGet, Path: "/sales/daily", Handler: menuHandler.DailySales},
		})

		users := apiGroup.Group("/users/:user")
		users.Use(middleware.RequireUserID())
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "/utterances", Handler: orderingHandler.Utter, Mw: []gin.HandlerFunc{middleware.LimitBody(maxUtteranceBody)}},
				{Method: http.MethodGet, Path: "/session", Handler: orderingHandler.GetSession},
				{Method: http.MethodDelete, Path: "/session", Handler: orderingHandler.ResetSession},
				{Method: http.MethodGet, Path: "/history", Handler: orderingHandler.History},
				{Method: http.MethodDelete, Path: "/history", Handler: orderingHandler.ResetHistory},
			})

			orders := users.Group("/orders")
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderingHandler.ListOrders},
				{Method: http.MethodDelete, Path: "/:index", Handler: orderingHandler.Cancel},
				{Method: http.MethodPost, Path: "/:index/payment", Handler: orderingHandler.MarkPaid},
				{Method: http.MethodPatch, Path: "/:index/size", Handler: orderingHandler.Resize},
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
