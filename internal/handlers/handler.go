package handlers

import (
	"time"

	"inventory_dashboard/internal/logger"
	"inventory_dashboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	loginLimiter *ipLimiter // nil leaves login unthrottled
}

// Option customises a Handler.
type Option func(*Handler)

// WithLoginRateLimit throttles login per client IP. A burst or rate of zero
// leaves login unthrottled.
func WithLoginRateLimit(perSec float64, burst int) Option {
	return func(h *Handler) {
		if burst <= 0 || perSec <= 0 {
			h.loginLimiter = nil
			return
		}
		h.loginLimiter = newIPLimiter(perSec, burst)
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		log:      log,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// dashboard push, same port; browsers cannot set headers on upgrade
	router.GET("/ws", h.wsAuthMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("", h.loginRateLimit, h.login)
		auth.POST("/logout", h.authMiddleware, h.logout)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.authMiddleware)
	{
		api.GET("/products", h.listProducts)
		h.registerDashboardRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerDashboardRoutes(api *gin.RouterGroup) {
	d := api.Group("/dashboard")
	{
		d.GET("", h.getDashboard)
		d.POST("/refresh", h.refreshDashboard)
		d.PUT("/page", h.setPage)
		d.PUT("/page-size", h.setPageSize)
		d.PUT("/sort", h.setSort)
		d.PUT("/filter", h.setFilter)
		d.GET("/chart", h.getChart)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}

// requestLogger writes one line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}
