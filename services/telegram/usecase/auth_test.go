package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/pkg/sessioncrypto"
	"github.com/greytg/bridge/services/telegram"
	"github.com/greytg/bridge/services/telegram/mocks"
)

type authFixture struct {
	ctrl       *gomock.Controller
	tenants    *mocks.MockTenantRepo
	deliveries *mocks.MockDeliveryRepo
	network    *mocks.MockNetworkGW
	webhooks   *mocks.MockWebhookGW
	events     *mocks.MockEventsGW
	supervisor *mocks.MockSupervisor
	client     *mocks.MockNetworkClient
	uc         *TelegramUC
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)

	key, err := sessioncrypto.GenerateKey()
	require.NoError(t, err)
	box, err := sessioncrypto.NewBox(key)
	require.NoError(t, err)

	f := &authFixture{
		ctrl:       ctrl,
		tenants:    mocks.NewMockTenantRepo(ctrl),
		deliveries: mocks.NewMockDeliveryRepo(ctrl),
		network:    mocks.NewMockNetworkGW(ctrl),
		webhooks:   mocks.NewMockWebhookGW(ctrl),
		events:     mocks.NewMockEventsGW(ctrl),
		supervisor: mocks.NewMockSupervisor(ctrl),
		client:     mocks.NewMockNetworkClient(ctrl),
	}

	cfg := &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret", Issuer: "bridge"},
	}
	f.uc = NewTelegramUC(cfg, f.tenants, f.deliveries, f.network, f.webhooks, f.events, f.supervisor, box)

	// Freeze the clock so cooldown assertions are exact.
	base := time.Now()
	f.uc.now = func() time.Time { return base }
	return f
}

var testTenantID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func expectTenant(f *authFixture, callbackURL string) {
	f.tenants.EXPECT().GetTenant(gomock.Any(), testTenantID).Return(&models.Tenant{
		ID:          testTenantID,
		Name:        "acme",
		CallbackURL: callbackURL,
	}, nil).AnyTimes()
}

func TestStartAuth_Success(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")

	f.tenants.EXPECT().GetSession(gomock.Any(), testTenantID).Return(&models.TenantSession{
		TenantID: testTenantID,
	}, nil)
	f.network.EXPECT().Dial(gomock.Any(), nil, nil).Return(f.client, nil)
	f.client.EXPECT().SendCode(gomock.Any(), "+79001234567").Return(&models.SentCode{
		CodeHash:       "hash-1",
		Delivery:       "telegram_app",
		TimeoutSeconds: 30,
		Hint:           "Check the Telegram app on your other devices for the code.",
	}, nil)
	f.tenants.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	resp, err := f.uc.StartAuth(context.Background(), testTenantID, "+7 900 123-45-67")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "telegram_app", resp.Delivery)
	assert.Equal(t, 30, resp.TimeoutSeconds)
	assert.Equal(t, 30, f.uc.cooldownRemaining(testTenantID))
}

func TestStartAuth_InvalidPhone(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")

	// Act
	_, err := f.uc.StartAuth(context.Background(), testTenantID, "79001234567")

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrInvalidPhone))
}

func TestStartAuth_AlreadyLoggedIn(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")

	f.tenants.EXPECT().GetSession(gomock.Any(), testTenantID).Return(&models.TenantSession{
		TenantID:   testTenantID,
		Authorized: true,
		Phone:      "+79001234567",
	}, nil)

	// Act
	_, err := f.uc.StartAuth(context.Background(), testTenantID, "+79001234567")

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrAlreadyLoggedIn))
}

func TestStartAuth_CooldownOnRepeat(t *testing.T) {
	// Arrange: open a challenge, then immediately start again.
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")

	f.tenants.EXPECT().GetSession(gomock.Any(), testTenantID).Return(&models.TenantSession{
		TenantID: testTenantID,
	}, nil).Times(2)
	f.network.EXPECT().Dial(gomock.Any(), nil, nil).Return(f.client, nil)
	f.client.EXPECT().SendCode(gomock.Any(), "+79001234567").Return(&models.SentCode{
		CodeHash:       "hash-1",
		Delivery:       "sms",
		TimeoutSeconds: 60,
	}, nil)
	f.tenants.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.StartAuth(context.Background(), testTenantID, "+79001234567")
	require.NoError(t, err)

	// Act
	_, err = f.uc.StartAuth(context.Background(), testTenantID, "+79001234567")

	// Assert
	domainErr, ok := telegram.AsError(err)
	require.True(t, ok)
	assert.Equal(t, telegram.ErrCooldown, domainErr.Kind)
	assert.Greater(t, domainErr.RetryAfter, 0)
}

func openChallenge(t *testing.T, f *authFixture) {
	t.Helper()
	f.tenants.EXPECT().GetSession(gomock.Any(), testTenantID).Return(&models.TenantSession{
		TenantID: testTenantID,
	}, nil)
	f.network.EXPECT().Dial(gomock.Any(), nil, nil).Return(f.client, nil)
	f.client.EXPECT().SendCode(gomock.Any(), "+79001234567").Return(&models.SentCode{
		CodeHash:       "hash-1",
		Delivery:       "telegram_app",
		TimeoutSeconds: 60,
	}, nil)
	f.tenants.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.StartAuth(context.Background(), testTenantID, "+79001234567")
	require.NoError(t, err)
}

func TestVerifyAuth_Success(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")
	openChallenge(t, f)

	f.client.EXPECT().SignIn(gomock.Any(), "+79001234567", "12345", "hash-1").Return(nil)
	f.client.EXPECT().SessionBlob().Return([]byte("session-state"), nil)
	f.client.EXPECT().Close().Return(nil)
	f.tenants.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *models.TenantSession) error {
			assert.True(t, s.Authorized)
			assert.Equal(t, "+79001234567", s.Phone)
			assert.NotEmpty(t, s.SessionBlob)
			return nil
		})
	f.events.EXPECT().PublishTenantAuthorized(gomock.Any(), testTenantID.String(), "+79001234567").Return(nil)

	// Act
	err := f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567",
		Code:  "12345",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, f.uc.cooldownRemaining(testTenantID))
}

func TestVerifyAuth_NoChallenge(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	// Act
	err := f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567",
		Code:  "12345",
	})

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrNoCodeRequest))
}

func TestVerifyAuth_PhoneMismatch(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")
	openChallenge(t, f)

	// Act
	err := f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79009999999",
		Code:  "12345",
	})

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrPhoneMismatch))
}

func TestVerifyAuth_InvalidCodeKeepsChallenge(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")
	openChallenge(t, f)

	f.client.EXPECT().SignIn(gomock.Any(), "+79001234567", "00000", "hash-1").
		Return(telegram.NewError(telegram.ErrInvalidCode, "The code is incorrect."))
	f.client.EXPECT().SignIn(gomock.Any(), "+79001234567", "12345", "hash-1").Return(nil)
	f.client.EXPECT().SessionBlob().Return([]byte("session-state"), nil)
	f.client.EXPECT().Close().Return(nil)
	f.tenants.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	f.events.EXPECT().PublishTenantAuthorized(gomock.Any(), testTenantID.String(), "+79001234567").Return(nil)

	// Act: wrong code first, then the right one against the same challenge.
	err := f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567", Code: "00000",
	})
	assert.True(t, telegram.IsKind(err, telegram.ErrInvalidCode))

	err = f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567", Code: "12345",
	})

	// Assert
	assert.NoError(t, err)
}

func TestVerifyAuth_ExpiredCodeDropsChallenge(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")
	openChallenge(t, f)

	f.client.EXPECT().SignIn(gomock.Any(), "+79001234567", "12345", "hash-1").
		Return(telegram.NewError(telegram.ErrCodeExpired, "The code has expired."))
	f.client.EXPECT().Close().Return(nil)

	// Act
	err := f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567", Code: "12345",
	})

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrCodeExpired))

	err = f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567", Code: "12345",
	})
	assert.True(t, telegram.IsKind(err, telegram.ErrNoCodeRequest))
}

func TestVerifyAuth_TwoFactorFlow(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")
	openChallenge(t, f)

	f.client.EXPECT().SignIn(gomock.Any(), "+79001234567", "12345", "hash-1").
		Return(telegram.NewError(telegram.ErrTwoFactorRequired, "Two-factor password required."))

	// Act: code without password parks the challenge in the 2FA state.
	err := f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567", Code: "12345",
	})
	assert.True(t, telegram.IsKind(err, telegram.ErrTwoFactorRequired))

	// Second call supplies the password only.
	f.client.EXPECT().SignInWithPassword(gomock.Any(), "hunter2").Return(nil)
	f.client.EXPECT().SessionBlob().Return([]byte("session-state"), nil)
	f.client.EXPECT().Close().Return(nil)
	f.tenants.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	f.events.EXPECT().PublishTenantAuthorized(gomock.Any(), testTenantID.String(), "+79001234567").Return(nil)

	err = f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567", Code: "12345", Password: "hunter2",
	})

	// Assert
	assert.NoError(t, err)
}

func TestVerifyAuth_StartsConnectionWhenCallbackConfigured(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "https://example.com/hook")
	openChallenge(t, f)

	f.client.EXPECT().SignIn(gomock.Any(), "+79001234567", "12345", "hash-1").Return(nil)
	f.client.EXPECT().SessionBlob().Return([]byte("session-state"), nil)
	f.client.EXPECT().Close().Return(nil)
	f.tenants.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	f.events.EXPECT().PublishTenantAuthorized(gomock.Any(), testTenantID.String(), "+79001234567").Return(nil)
	f.supervisor.EXPECT().Start(gomock.Any(), testTenantID).Return(nil)

	// Act
	err := f.uc.VerifyAuth(context.Background(), testTenantID, &models.AuthVerifyRequest{
		Phone: "+79001234567", Code: "12345",
	})

	// Assert
	assert.NoError(t, err)
}

func TestResendCode_CooldownActive(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")
	openChallenge(t, f)

	// Act
	_, err := f.uc.ResendCode(context.Background(), testTenantID)

	// Assert
	domainErr, ok := telegram.AsError(err)
	require.True(t, ok)
	assert.Equal(t, telegram.ErrCooldown, domainErr.Kind)
}

func TestResendCode_AfterCooldown(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")
	openChallenge(t, f)

	// Advance the clock past the cooldown.
	f.uc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	f.client.EXPECT().ResendCode(gomock.Any(), "+79001234567", "hash-1").Return(&models.SentCode{
		CodeHash:       "hash-2",
		Delivery:       "sms",
		TimeoutSeconds: 60,
	}, nil)

	// Act
	resp, err := f.uc.ResendCode(context.Background(), testTenantID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sms", resp.Delivery)
}

func TestResendCode_NoChallenge(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	// Act
	_, err := f.uc.ResendCode(context.Background(), testTenantID)

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrNoCodeRequest))
}

func TestLogout_ClearsStateAndPublishes(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectTenant(f, "")

	f.supervisor.EXPECT().Stop(testTenantID)
	f.tenants.EXPECT().GetSession(gomock.Any(), testTenantID).Return(&models.TenantSession{
		TenantID: testTenantID,
	}, nil)
	f.tenants.EXPECT().ClearSession(gomock.Any(), testTenantID).Return(nil)
	f.events.EXPECT().PublishTenantLoggedOut(gomock.Any(), testTenantID.String()).Return(nil)

	// Act
	err := f.uc.Logout(context.Background(), testTenantID)

	// Assert
	assert.NoError(t, err)
}
