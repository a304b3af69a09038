package telegram

import (
	"context"

	"github.com/greytg/bridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/greytg/bridge/services/telegram NetworkGW,NetworkClient,WebhookGW,EventsGW

// NetworkGW dials Telegram sessions. Each Dial yields an independent client
// bound to one tenant's session state.
type NetworkGW interface {
	// Dial connects using the given opaque session blob (nil for a fresh
	// session). onMessage, when non-nil, receives every incoming message
	// for the lifetime of the client.
	Dial(ctx context.Context, sessionBlob []byte, onMessage func(models.InboundMessage)) (NetworkClient, error)
}

// NetworkClient is a live connection to Telegram for a single session.
type NetworkClient interface {
	Authorized(ctx context.Context) (bool, error)

	// auth flow
	SendCode(ctx context.Context, phone string) (*models.SentCode, error)
	ResendCode(ctx context.Context, phone, codeHash string) (*models.SentCode, error)
	SignIn(ctx context.Context, phone, code, codeHash string) error
	SignInWithPassword(ctx context.Context, password string) error
	LogOut(ctx context.Context) error

	// entity resolution
	Self(ctx context.Context) (*models.Peer, error)
	ResolveUsername(ctx context.Context, username string) (*models.Peer, error)
	ResolveUserID(ctx context.Context, id int64) (*models.Peer, error)
	ResolvePhone(ctx context.Context, phone string) (*models.Peer, error)
	ImportContact(ctx context.Context, phone string) (*models.Peer, error)

	// messaging
	SendMessage(ctx context.Context, peer *models.Peer, text string) (*models.SentMessage, error)
	MarkRead(ctx context.Context, peer *models.Peer, maxID int) error

	// SessionBlob exports the current session state for persistence.
	SessionBlob() ([]byte, error)

	Close() error
}

// WebhookGW delivers callback payloads to tenant endpoints.
type WebhookGW interface {
	// Deliver runs the full retry schedule and returns the final outcome.
	// It never returns an error: a failed delivery is a "dropped" outcome.
	Deliver(ctx context.Context, tenantID, endpoint string, payload *models.CallbackPayload) *models.DeliveryOutcome

	// DeliverTest performs a single attempt with no retries.
	DeliverTest(ctx context.Context, endpoint string, payload *models.CallbackPayload) (*models.DeliveryOutcome, error)
}

// EventsGW publishes bridge lifecycle and traffic events to the message bus.
type EventsGW interface {
	PublishInbound(ctx context.Context, tenantID string, msg *models.InboundMessage) error
	PublishTenantAuthorized(ctx context.Context, tenantID, phone string) error
	PublishTenantLoggedOut(ctx context.Context, tenantID string) error
}
