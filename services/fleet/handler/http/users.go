package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// ListUsers returns every account.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", users)
}

// CreateUser registers a new account.
func (h *Handler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.users.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "User created", user)
}

// UpdateUser applies a partial account update.
func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	var patch models.UserPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.users.UpdateUser(c.Request().Context(), id, &patch)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "User updated", user)
}
