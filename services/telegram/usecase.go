package telegram

import (
	"context"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/greytg/bridge/services/telegram TelegramUC

// TelegramUC represents the bridge usecase interface
type TelegramUC interface {
	// tenant management
	CreateTenant(ctx context.Context, req *models.CreateTenantRequest) (*models.TenantResponse, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*models.TenantResponse, error)
	ListTenants(ctx context.Context) ([]*models.TenantResponse, error)
	TenantStatus(ctx context.Context, tenantID uuid.UUID) (*models.TenantStatus, error)

	// auth lifecycle
	StartAuth(ctx context.Context, tenantID uuid.UUID, phone string) (*models.AuthStartResponse, error)
	VerifyAuth(ctx context.Context, tenantID uuid.UUID, req *models.AuthVerifyRequest) error
	ResendCode(ctx context.Context, tenantID uuid.UUID) (*models.AuthStartResponse, error)
	Logout(ctx context.Context, tenantID uuid.UUID) error

	// messaging
	SendMessage(ctx context.Context, tenantID uuid.UUID, req *models.SendMessageRequest) (*models.SendMessageResult, error)
	SendReadReceipt(ctx context.Context, tenantID uuid.UUID, req *models.ReadReceiptRequest) (*models.ReadReceiptResult, error)

	// callback diagnostics
	TestCallback(ctx context.Context, tenantID uuid.UUID) (*models.DeliveryOutcome, error)
}
