package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coupon-ledger/internal/domain/operator"
	"coupon-ledger/internal/handler/api"
	"coupon-ledger/internal/handler/middleware"
	"coupon-ledger/internal/pkg/config"
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
	logger *middleware.Logger,
	couponHandler *api.CouponHandler,
	distributionHandler *api.DistributionHandler,
	sendHandler *api.SendHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, couponHandler, distributionHandler, sendHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	couponHandler *api.CouponHandler,
	distributionHandler *api.DistributionHandler,
	sendHandler *api.SendHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRoleAtLeast(operator.RoleStaff)
	admin := authMiddleware.RequireRoleAtLeast(operator.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: couponHandler.Update, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/:id/distributions", Handler: distributionHandler.Distribute, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodGet, Path: "/:id/usage-summary", Handler: distributionHandler.UsageSummary},
				{Method: http.MethodGet, Path: "/:id/sends", Handler: distributionHandler.ListSends},
				{Method: http.MethodGet, Path: "/:id/targets", Handler: distributionHandler.ListTargets},
			})
		}

		sends := apiGroup.Group("/sends")
		sends.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sends, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: sendHandler.Get},
				{Method: http.MethodPost, Path: "/:id/use", Handler: sendHandler.MarkUsed, Mw: []gin.HandlerFunc{staff}},
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
