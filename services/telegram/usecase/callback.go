package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
)

// TestCallback posts a sample payload to the tenant's callback URL with a
// single attempt and returns the outcome without recording it.
func (u *TelegramUC) TestCallback(ctx context.Context, tenantID uuid.UUID) (*models.DeliveryOutcome, error) {
	tenant, err := u.tenants.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant.CallbackURL == "" {
		return nil, telegram.NewError(telegram.ErrNoCallbackURL, "Tenant has no callback URL configured.")
	}

	// The test payload mirrors the real delivery shape so endpoints that
	// validate it accept the test delivery unchanged.
	sender := "test"
	payload := &models.CallbackPayload{
		TenantID: tenantID.String(),
		Event:    "message",
		Message: models.CallbackMessage{
			SenderUsername: &sender,
			Text:           "Test callback from the bridge admin.",
			Date:           u.now().UTC().Format(time.RFC3339),
		},
	}

	outcome, err := u.webhooks.DeliverTest(ctx, tenant.CallbackURL, payload)
	if err != nil {
		return nil, telegram.NewError(telegram.ErrCallbackFailed, err.Error())
	}
	return outcome, nil
}
