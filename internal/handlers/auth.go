package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dashboard "inventory_dashboard"
	"inventory_dashboard/internal/service"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInternalError      = "Internal server error"
	msgLoggedOut          = "Logged out"
)

// loginBody takes each field as any JSON value. A non-string can never
// match the credential pair, so it reaches the credential check as empty
// and fails there with 401; only unparsable JSON is rejected outright.
type loginBody struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

func (b loginBody) credentials() (username, password string) {
	username, _ = b.Username.(string)
	password, _ = b.Password.(string)
	return username, password
}

// @Summary      Log in
// @Description  Checks the fixed credential pair and returns the session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      inventory_dashboard.LoginRequest  true  "credentials"
// @Success      200   {object}  inventory_dashboard.TokenResponse
// @Failure      401   {object}  inventory_dashboard.MessageResponse
// @Failure      429   {object}  inventory_dashboard.MessageResponse
// @Failure      500   {object}  inventory_dashboard.MessageResponse
// @Router       /api/auth [post]
func (h *Handler) login(c *gin.Context) {
	var input loginBody
	if err := c.ShouldBindJSON(&input); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusInternalServerError, dashboard.MessageResponse{Message: msgInternalError})
		return
	}

	username, password := input.credentials()
	token, err := h.services.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_login_failed", "username", username)
			}
			c.JSON(http.StatusUnauthorized, dashboard.MessageResponse{Message: msgInvalidCredentials})
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_login_error", "username", username, "err", err)
		}
		c.JSON(http.StatusInternalServerError, dashboard.MessageResponse{Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dashboard.TokenResponse{Token: token})
}

// @Summary      Log out
// @Description  Clears the session. Dashboard parameters are kept.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  inventory_dashboard.MessageResponse
// @Failure      401  {object}  inventory_dashboard.ErrorResponse
// @Router       /api/auth/logout [post]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	h.services.Logout(c.Request.Context())
	c.JSON(http.StatusOK, dashboard.MessageResponse{Message: msgLoggedOut})
}
