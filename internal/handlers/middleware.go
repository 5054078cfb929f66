package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	dashboard "inventory_dashboard"
)

const ctxTokenKey = "token"

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dashboard.ErrorResponse{Error: "missing Authorization header"})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dashboard.ErrorResponse{Error: "invalid Authorization header format"})
		return
	}

	h.authenticate(c, strings.TrimSpace(parts[1]))
}

// wsAuthMiddleware also accepts ?token= since browsers cannot set headers
// on a WebSocket upgrade.
func (h *Handler) wsAuthMiddleware(c *gin.Context) {
	if tok := c.Query("token"); tok != "" && c.GetHeader("Authorization") == "" {
		h.authenticate(c, tok)
		return
	}
	h.authMiddleware(c)
}

func (h *Handler) authenticate(c *gin.Context, token string) {
	if err := h.services.Authenticate(token); err != nil {
		if h.log != nil {
			h.log.Debugw("auth_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, dashboard.ErrorResponse{Error: "invalid or expired token"})
		return
	}

	// store in Gin context
	c.Set(ctxTokenKey, token)
	c.Next()
}

func (h *Handler) loginRateLimit(c *gin.Context) {
	if h.loginLimiter == nil {
		c.Next()
		return
	}
	ip := c.ClientIP()
	if !h.loginLimiter.allow(ip) {
		if h.log != nil {
			h.log.Infow("auth_login_throttled", "client_ip", ip)
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dashboard.MessageResponse{Message: "Too many login attempts"})
		return
	}
	c.Next()
}
