package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/utils"
	"github.com/greytg/bridge/services/telegram"
)

// MessageHandler handles HTTP requests for outbound messaging
type MessageHandler struct {
	telegramUC telegram.TelegramUC
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(telegramUC telegram.TelegramUC) *MessageHandler {
	return &MessageHandler{telegramUC: telegramUC}
}

// SendMessage sends a text message from the tenant's account
func (h *MessageHandler) SendMessage(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_request", "Invalid request payload")
	}

	result, err := h.telegramUC.SendMessage(c.Request().Context(), tenantID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ReadReceipt marks a peer's history as read up to max_id
func (h *MessageHandler) ReadReceipt(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_tenant", "Invalid tenant ID")
	}

	var req models.ReadReceiptRequest
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "invalid_request", "Invalid request payload")
	}

	result, err := h.telegramUC.SendReadReceipt(c.Request().Context(), tenantID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
