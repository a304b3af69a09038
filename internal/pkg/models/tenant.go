package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated account-owning entity of the service.
// Each tenant operates at most one Telegram session.
type Tenant struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	CallbackURL string    `json:"callback_url" db:"callback_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TenantSession is the persisted auth state for a tenant, 1:1 with Tenant.
// SessionBlob is encrypted at rest and is never logged or returned in any
// API response.
type TenantSession struct {
	TenantID    uuid.UUID `db:"tenant_id"`
	Phone       string    `db:"phone"`
	SessionBlob []byte    `db:"session_blob"`
	Authorized  bool      `db:"authorized"`
	LastError   string    `db:"last_error"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// TenantStatus is the read model returned by the status endpoint.
type TenantStatus struct {
	Authorized      bool             `json:"authorized"`
	Phone           string           `json:"phone,omitempty"`
	LastError       string           `json:"last_error,omitempty"`
	CooldownSeconds int              `json:"cooldown_seconds"`
	Connected       bool             `json:"connected"`
	LastDelivery    *DeliveryOutcome `json:"last_delivery,omitempty"`
}

// CreateTenantRequest is the body for POST /tenants
type CreateTenantRequest struct {
	Name        string `json:"name" validate:"required"`
	CallbackURL string `json:"callback_url"`
}

// TenantResponse is the API representation of a tenant. Create responses
// additionally carry the tenant-scoped access token.
type TenantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CallbackURL string `json:"callback_url,omitempty"`
	CreatedAt   string `json:"created_at"`
	AccessToken string `json:"access_token,omitempty"`
}

// AuthStartRequest is the body for POST /tenants/:id/auth/start
type AuthStartRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// AuthVerifyRequest is the body for POST /tenants/:id/auth/verify
type AuthVerifyRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Password string `json:"password"`
}

// AuthStartResponse reports where the login code was delivered and when a
// resend becomes possible.
type AuthStartResponse struct {
	OK             bool   `json:"ok"`
	Message        string `json:"message"`
	Delivery       string `json:"delivery"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	Hint           string `json:"hint"`
}
