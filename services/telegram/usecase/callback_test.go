package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
)

func TestTestCallback_PayloadMatchesDeliveryShape(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	f.tenants.EXPECT().GetTenant(gomock.Any(), testTenantID).Return(&models.Tenant{
		ID:          testTenantID,
		Name:        "acme",
		CallbackURL: "https://acme.example/hook",
	}, nil)

	f.webhooks.EXPECT().
		DeliverTest(gomock.Any(), "https://acme.example/hook", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload *models.CallbackPayload) (*models.DeliveryOutcome, error) {
			// Endpoints validating real deliveries must accept this payload.
			assert.Equal(t, "message", payload.Event)
			assert.Equal(t, testTenantID.String(), payload.TenantID)
			require.NotNil(t, payload.Message.SenderUsername)
			assert.Equal(t, "test", *payload.Message.SenderUsername)
			assert.NotEmpty(t, payload.Message.Text)
			assert.NotEmpty(t, payload.Message.Date)
			return &models.DeliveryOutcome{Status: "delivered", Attempts: 1}, nil
		})

	// Act
	outcome, err := f.uc.TestCallback(context.Background(), testTenantID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "delivered", outcome.Status)
	assert.Equal(t, 1, outcome.Attempts)
}

func TestTestCallback_NoCallbackURL(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	f.tenants.EXPECT().GetTenant(gomock.Any(), testTenantID).Return(&models.Tenant{
		ID:   testTenantID,
		Name: "acme",
	}, nil)

	// Act
	_, err := f.uc.TestCallback(context.Background(), testTenantID)

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrNoCallbackURL))
}

func TestTestCallback_EndpointFailure(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	f.tenants.EXPECT().GetTenant(gomock.Any(), testTenantID).Return(&models.Tenant{
		ID:          testTenantID,
		Name:        "acme",
		CallbackURL: "https://acme.example/hook",
	}, nil)
	f.webhooks.EXPECT().
		DeliverTest(gomock.Any(), "https://acme.example/hook", gomock.Any()).
		Return(nil, errors.New("connection refused"))

	// Act
	_, err := f.uc.TestCallback(context.Background(), testTenantID)

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrCallbackFailed))
}
