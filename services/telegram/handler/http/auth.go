package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/utils"
	"github.com/greytg/bridge/services/telegram"
)

// AuthHandler handles HTTP requests for the login lifecycle
type AuthHandler struct {
	telegramUC telegram.TelegramUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(telegramUC telegram.TelegramUC) *AuthHandler {
	return &AuthHandler{telegramUC: telegramUC}
}

// StartAuth requests a login code for the tenant's phone
func (h *AuthHandler) StartAuth(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	var req models.AuthStartRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for auth start",
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_request", "Invalid request payload")
	}

	resp, err := h.telegramUC.StartAuth(c.Request().Context(), tenantID, req.Phone)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// VerifyAuth completes the login challenge with the received code
func (h *AuthHandler) VerifyAuth(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	var req models.AuthVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_request", "Invalid request payload")
	}

	if err := h.telegramUC.VerifyAuth(c.Request().Context(), tenantID, &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":         true,
		"authorized": true,
	})
}

// ResendCode asks for the open challenge's code to be resent
func (h *AuthHandler) ResendCode(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	resp, err := h.telegramUC.ResendCode(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout invalidates and wipes the tenant's session
func (h *AuthHandler) Logout(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	if err := h.telegramUC.Logout(c.Request().Context(), tenantID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true})
}
