package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greytg/bridge/internal/pkg/middleware"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram/handler/devreceiver"
	httphandler "github.com/greytg/bridge/services/telegram/handler/http"
)

// Handler coordinates all protocol handlers for the bridge service
type Handler struct {
	tenantHandler  *httphandler.TenantHandler
	authHandler    *httphandler.AuthHandler
	messageHandler *httphandler.MessageHandler
	devReceiver    *devreceiver.Receiver
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tenantHandler *httphandler.TenantHandler,
	authHandler *httphandler.AuthHandler,
	messageHandler *httphandler.MessageHandler,
	devReceiver *devreceiver.Receiver,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tenantHandler:  tenantHandler,
		authHandler:    authHandler,
		messageHandler: messageHandler,
		devReceiver:    devReceiver,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Tenant management (admin surface, no tenant token)
	e.POST("/tenants", h.tenantHandler.CreateTenant)
	e.GET("/tenants", h.tenantHandler.ListTenants)

	// Tenant-scoped routes require the tenant's own access token.
	scoped := e.Group("/tenants/:tenant_id", middleware.TenantTokenMiddleware(h.cfg.JWT.Secret))
	scoped.GET("", h.tenantHandler.GetTenant)
	scoped.GET("/status", h.tenantHandler.Status)

	scoped.POST("/auth/start", h.authHandler.StartAuth)
	scoped.POST("/auth/verify", h.authHandler.VerifyAuth)
	scoped.POST("/auth/resend", h.authHandler.ResendCode)
	scoped.POST("/auth/logout", h.authHandler.Logout)

	scoped.POST("/messages/send", h.messageHandler.SendMessage)
	scoped.POST("/messages/read-receipt", h.messageHandler.ReadReceipt)

	scoped.POST("/callback/test", h.tenantHandler.TestCallback)

	// Development callback sink, enabled by configuration only.
	if h.cfg.Callback.DevReceiver && h.devReceiver != nil {
		e.POST("/dev/callback", h.devReceiver.Handle)
		e.GET("/dev/callback/log", h.devReceiver.Log)
		e.GET("/dev/callback/ws", h.devReceiver.Feed)
	}
}
