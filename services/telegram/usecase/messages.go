package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
)

// SendMessage sends a text message on behalf of the tenant's account. Each
// send is admitted through the per-tenant rate limiter first.
func (u *TelegramUC) SendMessage(ctx context.Context, tenantID uuid.UUID, req *models.SendMessageRequest) (*models.SendMessageResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, telegram.NewError(telegram.ErrCannotSend, "Message text is required.")
	}

	if allowed, retryAfter := u.limiter.Allow(tenantID.String(), u.now()); !allowed {
		return nil, telegram.NewRateLimited(retryAfter)
	}

	client, release, err := u.acquireClient(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer release()

	peer, err := u.resolvePeer(ctx, client, req.Peer, req.AllowImportContact)
	if err != nil {
		return nil, err
	}

	sent, err := client.SendMessage(ctx, peer, req.Text)
	if err != nil {
		if _, ok := telegram.AsError(err); ok {
			return nil, err
		}
		return nil, telegram.NewError(telegram.ErrSendFailed, err.Error())
	}

	if err := u.tenants.SaveMessage(ctx, &models.Message{
		TenantID:    tenantID,
		ChatID:      peer.ID,
		MessageID:   int64(sent.ID),
		Username:    peer.Username,
		PhoneNumber: peer.Phone,
		Text:        req.Text,
		Date:        sent.Date,
		Incoming:    false,
	}); err != nil {
		logger.Warn("Failed to log outbound message",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
	}

	return &models.SendMessageResult{
		OK:           true,
		PeerResolved: peer.Display(),
		MessageID:    sent.ID,
		Date:         sent.Date.UTC().Format(time.RFC3339),
	}, nil
}

// SendReadReceipt marks the peer's history as read up to max_id.
func (u *TelegramUC) SendReadReceipt(ctx context.Context, tenantID uuid.UUID, req *models.ReadReceiptRequest) (*models.ReadReceiptResult, error) {
	client, release, err := u.acquireClient(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer release()

	peer, err := u.resolvePeer(ctx, client, req.Peer, false)
	if err != nil {
		return nil, err
	}

	if err := client.MarkRead(ctx, peer, req.MaxID); err != nil {
		return nil, err
	}

	return &models.ReadReceiptResult{
		OK:           true,
		PeerResolved: peer.Display(),
		MaxID:        req.MaxID,
	}, nil
}

// acquireClient returns a live client for the tenant: the supervisor's
// connection when one is running, otherwise a short-lived connection dialed
// from the stored session. The release func must be called when done.
func (u *TelegramUC) acquireClient(ctx context.Context, tenantID uuid.UUID) (telegram.NetworkClient, func(), error) {
	if client, ok := u.supervisor.Client(tenantID); ok {
		return client, func() {}, nil
	}

	session, err := u.tenants.GetSession(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	if !session.Authorized {
		return nil, nil, telegram.NewError(telegram.ErrUnauthorized, "Tenant is not logged in.")
	}
	if len(session.SessionBlob) == 0 {
		return nil, nil, telegram.NewError(telegram.ErrSessionUnavailable, "No stored session for tenant.")
	}

	blob, err := u.box.Decrypt(session.SessionBlob)
	if err != nil {
		return nil, nil, telegram.NewError(telegram.ErrSessionUnavailable, "Stored session cannot be decrypted.")
	}

	client, err := u.network.Dial(ctx, blob, nil)
	if err != nil {
		return nil, nil, telegram.NewError(telegram.ErrConnectFailed, err.Error())
	}
	return client, func() { client.Close() }, nil
}
