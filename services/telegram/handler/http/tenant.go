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

// TenantHandler handles HTTP requests for tenant management
type TenantHandler struct {
	telegramUC telegram.TelegramUC
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(telegramUC telegram.TelegramUC) *TenantHandler {
	return &TenantHandler{telegramUC: telegramUC}
}

// CreateTenant handles tenant registration
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	var req models.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for tenant creation",
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_request", "Invalid request payload")
	}

	resp, err := h.telegramUC.CreateTenant(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListTenants handles tenant listing
func (h *TenantHandler) ListTenants(c echo.Context) error {
	tenants, err := h.telegramUC.ListTenants(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tenants)
}

// GetTenant handles single tenant retrieval
func (h *TenantHandler) GetTenant(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	tenant, err := h.telegramUC.GetTenant(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tenant)
}

// Status reports the tenant's auth, connection and delivery state
func (h *TenantHandler) Status(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	status, err := h.telegramUC.TenantStatus(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, status)
}

// TestCallback posts a sample payload to the tenant's callback URL
func (h *TenantHandler) TestCallback(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	outcome, err := h.telegramUC.TestCallback(c.Request().Context(), tenantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outcome)
}
