package telegram

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_supervisor.go -package=mocks github.com/greytg/bridge/services/telegram Supervisor

// Supervisor owns the live Telegram connections. One connection per
// authorized tenant with a callback endpoint; all operations are idempotent.
type Supervisor interface {
	// Start brings up the tenant's connection if it is eligible
	// (authorized session and non-empty callback URL) and not already up.
	Start(ctx context.Context, tenantID uuid.UUID) error

	// Stop tears down the tenant's connection if one is running.
	Stop(tenantID uuid.UUID)

	// StartAll starts connections for every eligible tenant. Per-tenant
	// failures are logged, not returned.
	StartAll(ctx context.Context) error

	// StopAll stops every running connection and waits for in-flight
	// event fan-out to drain.
	StopAll()

	// Running reports whether the tenant currently has a live connection.
	Running(tenantID uuid.UUID) bool

	// Client returns the tenant's live client when one is running. Callers
	// must not Close the returned client; the supervisor owns it.
	Client(tenantID uuid.UUID) (NetworkClient, bool)
}
