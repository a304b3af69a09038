package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
)

type tenantRepo struct {
	db *sqlx.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *sqlx.DB) telegram.TenantRepo {
	return &tenantRepo{db: db}
}

// CreateTenant inserts a tenant and its empty session row in one transaction.
func (r *tenantRepo) CreateTenant(ctx context.Context, tenant *models.Tenant) error {
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	tenant.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tenants (id, name, callback_url, created_at)
		VALUES (:id, :name, :callback_url, :created_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, tenant); err != nil {
		return fmt.Errorf("failed to insert tenant: %w", err)
	}

	sessionQuery := `
		INSERT INTO tenant_sessions (tenant_id, phone, session_blob, authorized, last_error, updated_at)
		VALUES ($1, '', NULL, FALSE, '', $2)
	`
	if _, err = tx.ExecContext(ctx, sessionQuery, tenant.ID, tenant.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert tenant session: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTenant retrieves a tenant by ID
func (r *tenantRepo) GetTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	query := `
		SELECT id, name, callback_url, created_at
		FROM tenants
		WHERE id = $1
	`

	var tenant models.Tenant
	err := r.db.GetContext(ctx, &tenant, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, telegram.NewError(telegram.ErrNotFound, "tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return &tenant, nil
}

// ListTenants retrieves all tenants ordered by creation time.
func (r *tenantRepo) ListTenants(ctx context.Context) ([]*models.Tenant, error) {
	query := `
		SELECT id, name, callback_url, created_at
		FROM tenants
		ORDER BY created_at
	`

	var tenants []*models.Tenant
	if err := r.db.SelectContext(ctx, &tenants, query); err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// ListAuthorizedWithCallback retrieves the tenants eligible for a live
// connection: authorized session and a configured callback URL.
func (r *tenantRepo) ListAuthorizedWithCallback(ctx context.Context) ([]*models.Tenant, error) {
	query := `
		SELECT t.id, t.name, t.callback_url, t.created_at
		FROM tenants t
		JOIN tenant_sessions s ON s.tenant_id = t.id
		WHERE s.authorized = TRUE AND t.callback_url <> ''
		ORDER BY t.created_at
	`

	var tenants []*models.Tenant
	if err := r.db.SelectContext(ctx, &tenants, query); err != nil {
		return nil, fmt.Errorf("failed to list authorized tenants: %w", err)
	}
	return tenants, nil
}
