package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	jwtpkg "github.com/greytg/bridge/internal/pkg/jwt"
	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
)

// CreateTenant registers a tenant and mints its scoped access token. The
// token is returned only once, in this response.
func (u *TelegramUC) CreateTenant(ctx context.Context, req *models.CreateTenantRequest) (*models.TenantResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, telegram.NewError(telegram.ErrInvalidPeer, "Tenant name is required.")
	}

	tenant := &models.Tenant{
		Name:        name,
		CallbackURL: strings.TrimSpace(req.CallbackURL),
	}
	if err := u.tenants.CreateTenant(ctx, tenant); err != nil {
		return nil, err
	}

	token, err := jwtpkg.GenerateTenantToken(tenant.ID, u.cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Tenant created",
		logger.String("tenant_id", tenant.ID.String()),
		logger.String("name", tenant.Name))

	resp := tenantToResponse(tenant)
	resp.AccessToken = token
	return resp, nil
}

// GetTenant returns one tenant.
func (u *TelegramUC) GetTenant(ctx context.Context, id uuid.UUID) (*models.TenantResponse, error) {
	tenant, err := u.tenants.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	return tenantToResponse(tenant), nil
}

// ListTenants returns all tenants.
func (u *TelegramUC) ListTenants(ctx context.Context) ([]*models.TenantResponse, error) {
	tenants, err := u.tenants.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]*models.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		resp = append(resp, tenantToResponse(t))
	}
	return resp, nil
}

// TenantStatus assembles the tenant's auth, cooldown, connection and
// delivery state.
func (u *TelegramUC) TenantStatus(ctx context.Context, tenantID uuid.UUID) (*models.TenantStatus, error) {
	if _, err := u.tenants.GetTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	session, err := u.tenants.GetSession(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	status := &models.TenantStatus{
		Authorized:      session.Authorized,
		Phone:           session.Phone,
		LastError:       session.LastError,
		CooldownSeconds: u.cooldownRemaining(tenantID),
		Connected:       u.supervisor.Running(tenantID),
	}

	outcome, err := u.deliveries.LastOutcome(ctx, tenantID.String())
	if err != nil {
		logger.Warn("Failed to load last delivery outcome",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
	} else {
		status.LastDelivery = outcome
	}

	return status, nil
}

func tenantToResponse(t *models.Tenant) *models.TenantResponse {
	return &models.TenantResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		CallbackURL: t.CallbackURL,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
