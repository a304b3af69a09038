// Package telegramgw adapts the gotd MTProto client to the bridge's
// NetworkGW interface. Each dialed client owns one session and one
// background connection loop.
package telegramgw

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"
	"go.uber.org/zap"

	"github.com/greytg/bridge/internal/pkg/models"
	telegramsvc "github.com/greytg/bridge/services/telegram"
)

const dialTimeout = 30 * time.Second

// Gateway dials Telegram sessions using the configured API credentials.
type Gateway struct {
	apiID   int
	apiHash string
	log     *zap.Logger
}

// NewGateway creates a new Telegram network gateway
func NewGateway(cfg models.TelegramConfig, log *zap.Logger) telegramsvc.NetworkGW {
	return &Gateway{
		apiID:   cfg.APIID,
		apiHash: cfg.APIHash,
		log:     log,
	}
}

// Dial connects a client for the given session blob and waits until the
// connection is established. The returned client stays connected until
// Close is called.
func (g *Gateway) Dial(ctx context.Context, sessionBlob []byte, onMessage func(models.InboundMessage)) (telegramsvc.NetworkClient, error) {
	storage := newMemStorage(sessionBlob)

	opts := telegram.Options{
		SessionStorage: storage,
		Logger:         g.log,
	}
	if onMessage != nil {
		dispatcher := tg.NewUpdateDispatcher()
		registerMessageHandlers(dispatcher, onMessage)
		opts.UpdateHandler = dispatcher
	}

	tgc := telegram.NewClient(g.apiID, g.apiHash, opts)

	runCtx, cancel := context.WithCancel(context.Background())
	c := &client{
		tgc:     tgc,
		api:     tgc.API(),
		storage: storage,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}

	ready := make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		defer close(c.stopped)
		err := tgc.Run(runCtx, func(ctx context.Context) error {
			close(ready)
			<-ctx.Done()
			return ctx.Err()
		})
		errCh <- err
	}()

	select {
	case <-ready:
		return c, nil
	case err := <-errCh:
		cancel()
		return nil, fmt.Errorf("telegram connect: %w", err)
	case <-ctx.Done():
		cancel()
		<-c.stopped
		return nil, ctx.Err()
	case <-time.After(dialTimeout):
		cancel()
		<-c.stopped
		return nil, fmt.Errorf("telegram connect: timed out after %s", dialTimeout)
	}
}

// client is a live connection bound to one session.
type client struct {
	tgc     *telegram.Client
	api     *tg.Client
	storage *memStorage
	cancel  context.CancelFunc
	stopped chan struct{}
}

// SessionBlob exports the current session state. The blob is plaintext;
// callers encrypt before persisting.
func (c *client) SessionBlob() ([]byte, error) {
	data := c.storage.snapshot()
	if len(data) == 0 {
		return nil, telegramsvc.NewError(telegramsvc.ErrSessionUnavailable, "no session state available")
	}
	return data, nil
}

// Close disconnects and waits for the connection loop to exit.
func (c *client) Close() error {
	c.cancel()
	<-c.stopped
	return nil
}

// memStorage keeps gotd session bytes in memory so they can be exported
// and persisted by the caller.
type memStorage struct {
	mu   sync.RWMutex
	data []byte
}

func newMemStorage(initial []byte) *memStorage {
	s := &memStorage{}
	if len(initial) > 0 {
		s.data = append([]byte(nil), initial...)
	}
	return s
}

func (s *memStorage) LoadSession(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.data) == 0 {
		return nil, session.ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *memStorage) StoreSession(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *memStorage) snapshot() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.data...)
}
