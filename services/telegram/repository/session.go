package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
)

// GetSession retrieves the persisted auth state for a tenant.
func (r *tenantRepo) GetSession(ctx context.Context, tenantID uuid.UUID) (*models.TenantSession, error) {
	query := `
		SELECT tenant_id, phone, COALESCE(session_blob, ''::bytea) AS session_blob,
			authorized, last_error, updated_at
		FROM tenant_sessions
		WHERE tenant_id = $1
	`

	var session models.TenantSession
	err := r.db.GetContext(ctx, &session, query, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, telegram.NewError(telegram.ErrNotFound, "tenant not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// SaveSession upserts the full auth state for a tenant.
func (r *tenantRepo) SaveSession(ctx context.Context, session *models.TenantSession) error {
	session.UpdatedAt = time.Now()

	query := `
		INSERT INTO tenant_sessions (tenant_id, phone, session_blob, authorized, last_error, updated_at)
		VALUES (:tenant_id, :phone, :session_blob, :authorized, :last_error, :updated_at)
		ON CONFLICT (tenant_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			session_blob = EXCLUDED.session_blob,
			authorized = EXCLUDED.authorized,
			last_error = EXCLUDED.last_error,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SetLastError updates only the diagnostic error field, leaving auth state
// untouched.
func (r *tenantRepo) SetLastError(ctx context.Context, tenantID uuid.UUID, lastError string) error {
	query := `
		UPDATE tenant_sessions
		SET last_error = $2, updated_at = $3
		WHERE tenant_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, tenantID, lastError, time.Now()); err != nil {
		return fmt.Errorf("failed to set last error: %w", err)
	}
	return nil
}

// ClearSession wipes the session blob and auth state after a logout.
func (r *tenantRepo) ClearSession(ctx context.Context, tenantID uuid.UUID) error {
	query := `
		UPDATE tenant_sessions
		SET phone = '', session_blob = NULL, authorized = FALSE, last_error = '', updated_at = $2
		WHERE tenant_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, tenantID, time.Now()); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
