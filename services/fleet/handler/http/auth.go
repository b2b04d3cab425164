package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/middleware"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// Login verifies credentials and establishes the session cookie.
func (h *Handler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.auth.Login(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(&nethttp.Cookie{
		Name:     h.jwtCfg.CookieName,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   h.jwtCfg.Expiration * 60,
		HttpOnly: true,
		Secure:   h.jwtCfg.Secure,
		SameSite: nethttp.SameSiteLaxMode,
	})

	return utils.SuccessResponse(c, nethttp.StatusOK, "Login successful", resp)
}

// Logout clears the session cookie. The token itself is not revoked;
// expiry handles that.
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&nethttp.Cookie{
		Name:     h.jwtCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.jwtCfg.Secure,
		SameSite: nethttp.SameSiteLaxMode,
	})
	return utils.SuccessResponse(c, nethttp.StatusOK, "Logged out", nil)
}

// Me returns the account behind the current session.
func (h *Handler) Me(c echo.Context) error {
	user, err := h.auth.CurrentUser(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", user)
}
