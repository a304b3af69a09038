package telegram

import (
	"context"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/greytg/bridge/services/telegram TenantRepo,DeliveryRepo

// TenantRepo persists tenants, their auth sessions and the message log.
type TenantRepo interface {
	CreateTenant(ctx context.Context, tenant *models.Tenant) error
	GetTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	ListTenants(ctx context.Context) ([]*models.Tenant, error)
	ListAuthorizedWithCallback(ctx context.Context) ([]*models.Tenant, error)

	GetSession(ctx context.Context, tenantID uuid.UUID) (*models.TenantSession, error)
	SaveSession(ctx context.Context, session *models.TenantSession) error
	SetLastError(ctx context.Context, tenantID uuid.UUID, lastError string) error
	ClearSession(ctx context.Context, tenantID uuid.UUID) error

	SaveMessage(ctx context.Context, msg *models.Message) error
}

// DeliveryRepo records the most recent webhook delivery outcome per tenant.
type DeliveryRepo interface {
	RecordOutcome(ctx context.Context, tenantID string, outcome *models.DeliveryOutcome) error
	LastOutcome(ctx context.Context, tenantID string) (*models.DeliveryOutcome, error)
}
