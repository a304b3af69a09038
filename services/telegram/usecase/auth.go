package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/utils"
	"github.com/greytg/bridge/services/telegram"
)

// StartAuth opens a login challenge: it dials a fresh session and asks
// Telegram to send a login code to the phone.
func (u *TelegramUC) StartAuth(ctx context.Context, tenantID uuid.UUID, phone string) (*models.AuthStartResponse, error) {
	if _, err := u.tenants.GetTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	normalized, err := utils.NormalizeE164(phone)
	if err != nil {
		return nil, telegram.NewError(telegram.ErrInvalidPhone, err.Error())
	}

	session, err := u.tenants.GetSession(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if session.Authorized {
		return nil, telegram.NewError(telegram.ErrAlreadyLoggedIn, "Already logged in. Log out first.")
	}

	// A repeated start for the same phone inside the cooldown window is
	// refused; a start for a different phone replaces the challenge.
	u.mu.Lock()
	if ch, ok := u.challenges[tenantID]; ok {
		if ch.phone == normalized {
			deadline := ch.lastSentAt.Add(time.Duration(ch.timeoutSeconds) * time.Second)
			if remaining := int(deadline.Sub(u.now()).Seconds()); remaining > 0 {
				u.mu.Unlock()
				return nil, telegram.NewCooldown(remaining)
			}
		}
	}
	u.mu.Unlock()
	u.dropChallenge(tenantID)

	client, err := u.network.Dial(ctx, nil, nil)
	if err != nil {
		errText := fmt.Sprintf("connect failed: %v", err)
		u.recordLastError(ctx, tenantID, errText)
		return nil, telegram.NewError(telegram.ErrConnectFailed, errText)
	}

	sent, err := client.SendCode(ctx, normalized)
	if err != nil {
		client.Close()
		u.recordLastError(ctx, tenantID, err.Error())
		return nil, err
	}

	timeout := sent.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultCodeTimeout
	}

	u.mu.Lock()
	u.challenges[tenantID] = &loginChallenge{
		phone:          normalized,
		codeHash:       sent.CodeHash,
		client:         client,
		delivery:       sent.Delivery,
		lastSentAt:     u.now(),
		timeoutSeconds: timeout,
	}
	u.mu.Unlock()

	// Record the phone on the session row; the blob stays empty until the
	// challenge completes.
	session.Phone = normalized
	session.LastError = ""
	if err := u.tenants.SaveSession(ctx, session); err != nil {
		logger.Warn("Failed to record challenge phone",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
	}

	logger.Info("Login code requested",
		logger.String("tenant_id", tenantID.String()),
		logger.String("delivery", sent.Delivery))

	return &models.AuthStartResponse{
		OK:             true,
		Message:        "Login code sent.",
		Delivery:       sent.Delivery,
		TimeoutSeconds: timeout,
		Hint:           sent.Hint,
	}, nil
}

// VerifyAuth completes the challenge with the received code (and two-factor
// password, when the account has one). An incorrect code leaves the
// challenge open so the caller can retry.
func (u *TelegramUC) VerifyAuth(ctx context.Context, tenantID uuid.UUID, req *models.AuthVerifyRequest) error {
	normalized, err := utils.NormalizeE164(req.Phone)
	if err != nil {
		return telegram.NewError(telegram.ErrInvalidPhone, err.Error())
	}

	u.mu.Lock()
	ch, ok := u.challenges[tenantID]
	if !ok {
		u.mu.Unlock()
		return telegram.NewError(telegram.ErrNoCodeRequest, "No code was requested. Start the login first.")
	}
	if ch.phone != normalized {
		u.mu.Unlock()
		return telegram.NewError(telegram.ErrPhoneMismatch, "Phone does not match the open login challenge.")
	}
	client := ch.client
	codeHash := ch.codeHash
	awaiting2FA := ch.awaiting2FA
	u.mu.Unlock()

	if !awaiting2FA {
		err = client.SignIn(ctx, normalized, req.Code, codeHash)
		if telegram.IsKind(err, telegram.ErrTwoFactorRequired) {
			if req.Password == "" {
				u.mu.Lock()
				ch.awaiting2FA = true
				u.mu.Unlock()
				return err
			}
			err = client.SignInWithPassword(ctx, req.Password)
		}
	} else {
		if req.Password == "" {
			return telegram.NewError(telegram.ErrTwoFactorRequired, "Two-factor password required.")
		}
		err = client.SignInWithPassword(ctx, req.Password)
	}

	if err != nil {
		switch {
		case telegram.IsKind(err, telegram.ErrInvalidCode),
			telegram.IsKind(err, telegram.ErrInvalidPassword):
			// Challenge stays open for another attempt.
			return err
		case telegram.IsKind(err, telegram.ErrCodeExpired):
			u.dropChallenge(tenantID)
			return err
		default:
			u.recordLastError(ctx, tenantID, err.Error())
			return err
		}
	}

	return u.completeAuth(ctx, tenantID, normalized, client)
}

// completeAuth persists the authorized session and brings up the live
// connection when the tenant has a callback endpoint.
func (u *TelegramUC) completeAuth(ctx context.Context, tenantID uuid.UUID, phone string, client telegram.NetworkClient) error {
	blob, err := client.SessionBlob()
	if err != nil {
		u.dropChallenge(tenantID)
		return fmt.Errorf("exporting session: %w", err)
	}
	encrypted, err := u.box.Encrypt(blob)
	if err != nil {
		u.dropChallenge(tenantID)
		return fmt.Errorf("encrypting session: %w", err)
	}

	if err := u.tenants.SaveSession(ctx, &models.TenantSession{
		TenantID:    tenantID,
		Phone:       phone,
		SessionBlob: encrypted,
		Authorized:  true,
		LastError:   "",
	}); err != nil {
		u.dropChallenge(tenantID)
		return fmt.Errorf("persisting session: %w", err)
	}

	// The challenge connection has done its job; the supervisor dials its
	// own from the stored blob.
	u.dropChallenge(tenantID)

	if err := u.events.PublishTenantAuthorized(ctx, tenantID.String(), phone); err != nil {
		logger.Warn("Failed to publish authorized event",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
	}

	tenant, err := u.tenants.GetTenant(ctx, tenantID)
	if err == nil && tenant.CallbackURL != "" {
		if err := u.supervisor.Start(ctx, tenantID); err != nil {
			logger.Warn("Failed to start connection after login",
				logger.String("tenant_id", tenantID.String()),
				logger.Err(err))
		}
	}

	logger.Info("Tenant authorized",
		logger.String("tenant_id", tenantID.String()))
	return nil
}

// ResendCode asks Telegram to resend the code for the open challenge.
func (u *TelegramUC) ResendCode(ctx context.Context, tenantID uuid.UUID) (*models.AuthStartResponse, error) {
	u.mu.Lock()
	ch, ok := u.challenges[tenantID]
	if !ok {
		u.mu.Unlock()
		return nil, telegram.NewError(telegram.ErrNoCodeRequest, "No code was requested. Start the login first.")
	}
	deadline := ch.lastSentAt.Add(time.Duration(ch.timeoutSeconds) * time.Second)
	if remaining := int(deadline.Sub(u.now()).Seconds()); remaining > 0 {
		u.mu.Unlock()
		return nil, telegram.NewCooldown(remaining)
	}
	client := ch.client
	phone := ch.phone
	codeHash := ch.codeHash
	u.mu.Unlock()

	sent, err := client.ResendCode(ctx, phone, codeHash)
	if err != nil {
		return nil, err
	}

	timeout := sent.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultCodeTimeout
	}

	u.mu.Lock()
	ch.codeHash = sent.CodeHash
	ch.delivery = sent.Delivery
	ch.lastSentAt = u.now()
	ch.timeoutSeconds = timeout
	u.mu.Unlock()

	return &models.AuthStartResponse{
		OK:             true,
		Message:        "Login code resent.",
		Delivery:       sent.Delivery,
		TimeoutSeconds: timeout,
		Hint:           sent.Hint,
	}, nil
}

// Logout tears down the tenant's connection, invalidates the session on
// Telegram's side when possible, and wipes the stored state.
func (u *TelegramUC) Logout(ctx context.Context, tenantID uuid.UUID) error {
	if _, err := u.tenants.GetTenant(ctx, tenantID); err != nil {
		return err
	}

	u.supervisor.Stop(tenantID)
	u.dropChallenge(tenantID)

	session, err := u.tenants.GetSession(ctx, tenantID)
	if err != nil {
		return err
	}

	if session.Authorized && len(session.SessionBlob) > 0 {
		if blob, decErr := u.box.Decrypt(session.SessionBlob); decErr == nil {
			if client, dialErr := u.network.Dial(ctx, blob, nil); dialErr == nil {
				if logoutErr := client.LogOut(ctx); logoutErr != nil {
					logger.Warn("Remote logout failed",
						logger.String("tenant_id", tenantID.String()),
						logger.Err(logoutErr))
				}
				client.Close()
			} else {
				logger.Warn("Could not connect for remote logout",
					logger.String("tenant_id", tenantID.String()),
					logger.Err(dialErr))
			}
		}
	}

	if err := u.tenants.ClearSession(ctx, tenantID); err != nil {
		return err
	}

	if err := u.events.PublishTenantLoggedOut(ctx, tenantID.String()); err != nil {
		logger.Warn("Failed to publish logout event",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
	}

	logger.Info("Tenant logged out",
		logger.String("tenant_id", tenantID.String()))
	return nil
}

func (u *TelegramUC) recordLastError(ctx context.Context, tenantID uuid.UUID, text string) {
	if err := u.tenants.SetLastError(ctx, tenantID, text); err != nil {
		logger.Warn("Failed to record last error",
			logger.String("tenant_id", tenantID.String()),
			logger.Err(err))
	}
}
