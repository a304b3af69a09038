// Package dispatcher owns the live Telegram connections and fans incoming
// messages out to tenant callback endpoints.
package dispatcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/pkg/sessioncrypto"
	"github.com/greytg/bridge/services/telegram"
)

// eventBuffer bounds the per-tenant inbound queue. When the consumer falls
// behind this far, newest messages are dropped with a log line.
const eventBuffer = 256

// ConnectionSupervisor keeps one live connection per eligible tenant.
type ConnectionSupervisor struct {
	tenants  telegram.TenantRepo
	network  telegram.NetworkGW
	webhooks telegram.WebhookGW
	events   telegram.EventsGW
	box      *sessioncrypto.Box

	mu       sync.Mutex
	sessions map[uuid.UUID]*liveSession
	starting map[uuid.UUID]bool
}

// liveSession is one running connection and its delivery pump.
type liveSession struct {
	tenant *models.Tenant
	client telegram.NetworkClient
	queue  chan models.InboundMessage
	done   chan struct{}
}

// NewConnectionSupervisor creates a new connection supervisor
func NewConnectionSupervisor(
	tenants telegram.TenantRepo,
	network telegram.NetworkGW,
	webhooks telegram.WebhookGW,
	events telegram.EventsGW,
	box *sessioncrypto.Box,
) *ConnectionSupervisor {
	return &ConnectionSupervisor{
		tenants:  tenants,
		network:  network,
		webhooks: webhooks,
		events:   events,
		box:      box,
		sessions: make(map[uuid.UUID]*liveSession),
		starting: make(map[uuid.UUID]bool),
	}
}

// Start brings up the tenant's connection. Calling Start for a tenant that
// is already running (or starting) is a no-op.
func (s *ConnectionSupervisor) Start(ctx context.Context, tenantID uuid.UUID) error {
	s.mu.Lock()
	if _, running := s.sessions[tenantID]; running || s.starting[tenantID] {
		s.mu.Unlock()
		return nil
	}
	s.starting[tenantID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.starting, tenantID)
		s.mu.Unlock()
	}()

	tenant, err := s.tenants.GetTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant.CallbackURL == "" {
		return telegram.NewError(telegram.ErrNoCallbackURL, "Tenant has no callback URL configured.")
	}

	session, err := s.tenants.GetSession(ctx, tenantID)
	if err != nil {
		return err
	}
	if !session.Authorized {
		return telegram.NewError(telegram.ErrUnauthorized, "Tenant is not authorized.")
	}
	if len(session.SessionBlob) == 0 {
		return telegram.NewError(telegram.ErrSessionUnavailable, "No stored session for tenant.")
	}

	blob, err := s.box.Decrypt(session.SessionBlob)
	if err != nil {
		return fmt.Errorf("decrypting session for tenant %s: %w", tenantID, err)
	}

	ls := &liveSession{
		tenant: tenant,
		queue:  make(chan models.InboundMessage, eventBuffer),
		done:   make(chan struct{}),
	}

	client, err := s.network.Dial(ctx, blob, func(msg models.InboundMessage) {
		select {
		case ls.queue <- msg:
		default:
			logger.Warn("Inbound queue full, dropping message",
				logger.String("tenant_id", tenantID.String()),
				logger.Int("message_id", msg.MessageID))
		}
	})
	if err != nil {
		errText := fmt.Sprintf("connect failed: %v", err)
		if repoErr := s.tenants.SetLastError(ctx, tenantID, errText); repoErr != nil {
			logger.Warn("Failed to record connect error",
				logger.String("tenant_id", tenantID.String()),
				logger.Err(repoErr))
		}
		return telegram.NewError(telegram.ErrConnectFailed, errText)
	}

	authorized, err := client.Authorized(ctx)
	if err != nil || !authorized {
		client.Close()
		errText := "session is no longer authorized"
		if err != nil {
			errText = fmt.Sprintf("authorization check failed: %v", err)
		}
		if repoErr := s.tenants.SetLastError(ctx, tenantID, errText); repoErr != nil {
			logger.Warn("Failed to record authorization error",
				logger.String("tenant_id", tenantID.String()),
				logger.Err(repoErr))
		}
		return telegram.NewError(telegram.ErrUnauthorized, errText)
	}
	ls.client = client

	go s.pump(ls)

	s.mu.Lock()
	s.sessions[tenantID] = ls
	s.mu.Unlock()

	logger.Info("Tenant connection started",
		logger.String("tenant_id", tenantID.String()),
		logger.String("tenant_name", tenant.Name))
	return nil
}

// Stop tears down the tenant's connection, drains queued messages and
// persists the refreshed session state.
func (s *ConnectionSupervisor) Stop(tenantID uuid.UUID) {
	s.mu.Lock()
	ls, ok := s.sessions[tenantID]
	if ok {
		delete(s.sessions, tenantID)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	// Close the client first: after Close returns no more messages are
	// enqueued, so closing the queue is safe.
	ls.client.Close()
	close(ls.queue)
	<-ls.done

	s.persistSession(ls)

	logger.Info("Tenant connection stopped",
		logger.String("tenant_id", tenantID.String()))
}

// StartAll starts connections for every authorized tenant with a callback
// URL. Individual failures are logged and skipped.
func (s *ConnectionSupervisor) StartAll(ctx context.Context) error {
	tenants, err := s.tenants.ListAuthorizedWithCallback(ctx)
	if err != nil {
		return fmt.Errorf("listing eligible tenants: %w", err)
	}

	for _, tenant := range tenants {
		if err := s.Start(ctx, tenant.ID); err != nil {
			logger.Warn("Failed to start tenant connection",
				logger.String("tenant_id", tenant.ID.String()),
				logger.Err(err))
		}
	}
	return nil
}

// StopAll stops every running connection.
func (s *ConnectionSupervisor) StopAll() {
	s.mu.Lock()
	ids := make([]uuid.UUID, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.Stop(id)
	}
}

// Running reports whether the tenant has a live connection.
func (s *ConnectionSupervisor) Running(tenantID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[tenantID]
	return ok
}

// Client returns the tenant's live client, if any. The supervisor retains
// ownership.
func (s *ConnectionSupervisor) Client(tenantID uuid.UUID) (telegram.NetworkClient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.sessions[tenantID]
	if !ok {
		return nil, false
	}
	return ls.client, true
}

// pump consumes the tenant's inbound queue one message at a time, so
// persistence and delivery handoff happen in arrival order.
func (s *ConnectionSupervisor) pump(ls *liveSession) {
	defer close(ls.done)
	for msg := range ls.queue {
		s.handleInbound(ls, msg)
	}
}

func (s *ConnectionSupervisor) handleInbound(ls *liveSession, msg models.InboundMessage) {
	ctx := context.Background()
	tenantID := ls.tenant.ID.String()

	if err := s.tenants.SaveMessage(ctx, &models.Message{
		TenantID:  ls.tenant.ID,
		ChatID:    msg.ChatID,
		MessageID: int64(msg.MessageID),
		Username:  msg.SenderUsername,
		Text:      msg.Text,
		SenderID:  msg.SenderID,
		Date:      msg.Date,
		Incoming:  true,
	}); err != nil {
		logger.Warn("Failed to log inbound message",
			logger.String("tenant_id", tenantID),
			logger.Err(err))
	}

	if err := s.events.PublishInbound(ctx, tenantID, &msg); err != nil {
		logger.Warn("Failed to publish inbound event",
			logger.String("tenant_id", tenantID),
			logger.Err(err))
	}

	// The delivery is detached: a slow or retrying endpoint must not hold
	// up later inbound events, and Stop waits only for the queue to drain,
	// not for in-flight deliveries.
	payload := buildPayload(tenantID, msg)
	go s.webhooks.Deliver(context.Background(), tenantID, ls.tenant.CallbackURL, payload)
}

func (s *ConnectionSupervisor) persistSession(ls *liveSession) {
	ctx := context.Background()

	blob, err := ls.client.SessionBlob()
	if err != nil {
		logger.Warn("No session state to persist on stop",
			logger.String("tenant_id", ls.tenant.ID.String()),
			logger.Err(err))
		return
	}

	encrypted, err := s.box.Encrypt(blob)
	if err != nil {
		logger.Error("Failed to encrypt session state",
			logger.String("tenant_id", ls.tenant.ID.String()),
			logger.Err(err))
		return
	}

	session, err := s.tenants.GetSession(ctx, ls.tenant.ID)
	if err != nil {
		logger.Warn("Failed to load session for persist",
			logger.String("tenant_id", ls.tenant.ID.String()),
			logger.Err(err))
		return
	}
	session.SessionBlob = encrypted
	if err := s.tenants.SaveSession(ctx, session); err != nil {
		logger.Warn("Failed to persist session state",
			logger.String("tenant_id", ls.tenant.ID.String()),
			logger.Err(err))
	}
}
