package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
	"github.com/greytg/bridge/services/telegram/mocks"
)

func expectLiveClient(f *authFixture) {
	f.supervisor.EXPECT().Client(testTenantID).Return(f.client, true).AnyTimes()
}

func TestSendMessage_ToUsername(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectLiveClient(f)

	peer := &models.Peer{Kind: models.PeerUser, ID: 1001, AccessHash: 99, Username: "alice"}
	sentAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	f.client.EXPECT().ResolveUsername(gomock.Any(), "alice").Return(peer, nil)
	f.client.EXPECT().SendMessage(gomock.Any(), peer, "hello").Return(&models.SentMessage{ID: 77, Date: sentAt}, nil)
	f.tenants.EXPECT().SaveMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Message) error {
			assert.False(t, m.Incoming)
			assert.Equal(t, int64(77), m.MessageID)
			assert.Equal(t, "alice", m.Username)
			return nil
		})

	// Act
	result, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
		Peer: "@alice",
		Text: "hello",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "@alice", result.PeerResolved)
	assert.Equal(t, 77, result.MessageID)
	assert.Equal(t, "2026-01-15T10:00:00Z", result.Date)
}

func TestSendMessage_ToSelf(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectLiveClient(f)

	self := &models.Peer{Kind: models.PeerSelf, ID: 42}
	f.client.EXPECT().Self(gomock.Any()).Return(self, nil)
	f.client.EXPECT().SendMessage(gomock.Any(), self, "note").Return(&models.SentMessage{ID: 1, Date: time.Now()}, nil)
	f.tenants.EXPECT().SaveMessage(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
		Peer: "me",
		Text: "note",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "me", result.PeerResolved)
}

func TestSendMessage_RateLimited(t *testing.T) {
	// Arrange: default window admits 10 sends.
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectLiveClient(f)

	peer := &models.Peer{Kind: models.PeerUser, ID: 1001, Username: "alice"}
	f.client.EXPECT().ResolveUsername(gomock.Any(), "alice").Return(peer, nil).Times(10)
	f.client.EXPECT().SendMessage(gomock.Any(), peer, gomock.Any()).
		Return(&models.SentMessage{ID: 1, Date: time.Now()}, nil).Times(10)
	f.tenants.EXPECT().SaveMessage(gomock.Any(), gomock.Any()).Return(nil).Times(10)

	for i := 0; i < 10; i++ {
		_, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
			Peer: "@alice", Text: "hi",
		})
		require.NoError(t, err)
	}

	// Act: the 11th send inside the window is refused.
	_, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
		Peer: "@alice", Text: "hi",
	})

	// Assert
	domainErr, ok := telegram.AsError(err)
	require.True(t, ok)
	assert.Equal(t, telegram.ErrRateLimited, domainErr.Kind)
	assert.Greater(t, domainErr.RetryAfter, 0)
}

func TestSendMessage_PhoneNotInContacts(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectLiveClient(f)

	f.client.EXPECT().ResolvePhone(gomock.Any(), "+79001234567").
		Return(nil, telegram.NewError(telegram.ErrPeerNotFound, "not found"))

	// Act: import not allowed.
	_, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
		Peer: "+79001234567", Text: "hi",
	})

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrPhoneNotInContacts))
}

func TestSendMessage_PhoneImportFallback(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectLiveClient(f)

	imported := &models.Peer{Kind: models.PeerUser, ID: 2002, Phone: "+79001234567"}
	f.client.EXPECT().ResolvePhone(gomock.Any(), "+79001234567").
		Return(nil, telegram.NewError(telegram.ErrPeerNotFound, "not found"))
	f.client.EXPECT().ImportContact(gomock.Any(), "+79001234567").Return(imported, nil)
	f.client.EXPECT().SendMessage(gomock.Any(), imported, "hi").
		Return(&models.SentMessage{ID: 5, Date: time.Now()}, nil)
	f.tenants.EXPECT().SaveMessage(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
		Peer:               "+79001234567",
		Text:               "hi",
		AllowImportContact: true,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "+79001234567", result.PeerResolved)
}

func TestSendMessage_NotLoggedIn(t *testing.T) {
	// Arrange: no live connection and no authorized session.
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	f.supervisor.EXPECT().Client(testTenantID).Return(nil, false)
	f.tenants.EXPECT().GetSession(gomock.Any(), testTenantID).Return(&models.TenantSession{
		TenantID: testTenantID,
	}, nil)

	// Act
	_, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
		Peer: "@alice", Text: "hi",
	})

	// Assert
	assert.True(t, telegram.IsKind(err, telegram.ErrUnauthorized))
}

func TestSendMessage_DialsWhenNotRunning(t *testing.T) {
	// Arrange: authorized session but no supervised connection; an
	// ephemeral client is dialed and closed.
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	blob, err := f.uc.box.Encrypt([]byte("session-state"))
	require.NoError(t, err)

	ephemeral := mocks.NewMockNetworkClient(f.ctrl)
	peer := &models.Peer{Kind: models.PeerUser, ID: 1001, Username: "alice"}

	f.supervisor.EXPECT().Client(testTenantID).Return(nil, false)
	f.tenants.EXPECT().GetSession(gomock.Any(), testTenantID).Return(&models.TenantSession{
		TenantID:    testTenantID,
		Authorized:  true,
		SessionBlob: blob,
	}, nil)
	f.network.EXPECT().Dial(gomock.Any(), []byte("session-state"), nil).Return(ephemeral, nil)
	ephemeral.EXPECT().ResolveUsername(gomock.Any(), "alice").Return(peer, nil)
	ephemeral.EXPECT().SendMessage(gomock.Any(), peer, "hi").
		Return(&models.SentMessage{ID: 9, Date: time.Now()}, nil)
	ephemeral.EXPECT().Close().Return(nil)
	f.tenants.EXPECT().SaveMessage(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.SendMessage(context.Background(), testTenantID, &models.SendMessageRequest{
		Peer: "@alice", Text: "hi",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9, result.MessageID)
}

func TestSendReadReceipt_Success(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()
	expectLiveClient(f)

	peer := &models.Peer{Kind: models.PeerUser, ID: 1001, Username: "alice"}
	f.client.EXPECT().ResolveUsername(gomock.Any(), "alice").Return(peer, nil)
	f.client.EXPECT().MarkRead(gomock.Any(), peer, 55).Return(nil)

	// Act
	result, err := f.uc.SendReadReceipt(context.Background(), testTenantID, &models.ReadReceiptRequest{
		Peer:  "@alice",
		MaxID: 55,
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 55, result.MaxID)
	assert.Equal(t, "@alice", result.PeerResolved)
}

func TestResolvePeer_NumericID(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	peer := &models.Peer{Kind: models.PeerUser, ID: 123456}
	f.client.EXPECT().ResolveUserID(gomock.Any(), int64(123456)).Return(peer, nil)

	// Act
	got, err := f.uc.resolvePeer(context.Background(), f.client, "123456", false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(123456), got.ID)
}

func TestResolvePeer_SelfSentinels(t *testing.T) {
	// Arrange
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	self := &models.Peer{Kind: models.PeerSelf, ID: 42}
	f.client.EXPECT().Self(gomock.Any()).Return(self, nil).Times(4)

	// Act and assert: both sentinels, any casing.
	for _, spec := range []string{"me", "self", "Me", "SELF"} {
		got, err := f.uc.resolvePeer(context.Background(), f.client, spec, false)
		require.NoError(t, err, spec)
		assert.Equal(t, models.PeerSelf, got.Kind, spec)
	}
}

func TestResolvePeer_EmptyRejected(t *testing.T) {
	f := newAuthFixture(t)
	defer f.ctrl.Finish()

	_, err := f.uc.resolvePeer(context.Background(), f.client, "   ", false)

	assert.True(t, telegram.IsKind(err, telegram.ErrInvalidPeer))
}
