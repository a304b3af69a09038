package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/pkg/ratelimit"
	"github.com/greytg/bridge/internal/pkg/sessioncrypto"
	"github.com/greytg/bridge/services/telegram"
)

// defaultCodeTimeout applies when the protocol does not dictate a resend
// cooldown.
const defaultCodeTimeout = 60

// TelegramUC implements the bridge usecases.
type TelegramUC struct {
	cfg        *models.Config
	tenants    telegram.TenantRepo
	deliveries telegram.DeliveryRepo
	network    telegram.NetworkGW
	webhooks   telegram.WebhookGW
	events     telegram.EventsGW
	supervisor telegram.Supervisor
	box        *sessioncrypto.Box
	limiter    *ratelimit.Limiter

	// challenges holds the in-flight login challenges, one per tenant.
	// A challenge owns a live pre-auth connection so that verification
	// happens against the same DC session that requested the code.
	mu         sync.Mutex
	challenges map[uuid.UUID]*loginChallenge

	now func() time.Time
}

type loginChallenge struct {
	phone          string
	codeHash       string
	client         telegram.NetworkClient
	delivery       string
	lastSentAt     time.Time
	timeoutSeconds int
	awaiting2FA    bool
}

// NewTelegramUC creates a new bridge usecase instance
func NewTelegramUC(
	cfg *models.Config,
	tenants telegram.TenantRepo,
	deliveries telegram.DeliveryRepo,
	network telegram.NetworkGW,
	webhooks telegram.WebhookGW,
	events telegram.EventsGW,
	supervisor telegram.Supervisor,
	box *sessioncrypto.Box,
) *TelegramUC {
	maxReq := cfg.RateLimit.MaxRequests
	if maxReq <= 0 {
		maxReq = 10
	}
	windowSec := cfg.RateLimit.WindowSeconds
	if windowSec <= 0 {
		windowSec = 60
	}

	return &TelegramUC{
		cfg:        cfg,
		tenants:    tenants,
		deliveries: deliveries,
		network:    network,
		webhooks:   webhooks,
		events:     events,
		supervisor: supervisor,
		box:        box,
		limiter:    ratelimit.New(maxReq, time.Duration(windowSec)*time.Second),
		challenges: make(map[uuid.UUID]*loginChallenge),
		now:        time.Now,
	}
}

// cooldownRemaining reports how many seconds remain before the tenant's
// challenge allows another code request. Zero when no challenge is open or
// the cooldown has passed.
func (u *TelegramUC) cooldownRemaining(tenantID uuid.UUID) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	ch, ok := u.challenges[tenantID]
	if !ok {
		return 0
	}
	deadline := ch.lastSentAt.Add(time.Duration(ch.timeoutSeconds) * time.Second)
	remaining := int(deadline.Sub(u.now()).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// dropChallenge removes and closes the tenant's challenge, if any.
func (u *TelegramUC) dropChallenge(tenantID uuid.UUID) {
	u.mu.Lock()
	ch, ok := u.challenges[tenantID]
	if ok {
		delete(u.challenges, tenantID)
	}
	u.mu.Unlock()

	if ok && ch.client != nil {
		ch.client.Close()
	}
}
