package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/greytg/bridge/internal/pkg/logger"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/pkg/signature"
	"github.com/greytg/bridge/services/telegram"
)

const (
	// OutcomeDelivered marks a delivery acknowledged with a 2xx.
	OutcomeDelivered = "delivered"
	// OutcomeDropped marks a delivery abandoned after exhausting retries or
	// hitting a non-retryable response.
	OutcomeDropped = "dropped"

	baseBackoff = 1 * time.Second
)

// WebhookGateway posts callback payloads to tenant endpoints with signing
// and bounded retries.
type WebhookGateway struct {
	httpClient  *http.Client
	secret      string
	maxAttempts int
	backoff     time.Duration
	deliveries  telegram.DeliveryRepo
}

// NewWebhookGateway creates a new webhook delivery gateway
func NewWebhookGateway(cfg models.CallbackConfig, deliveries telegram.DeliveryRepo) telegram.WebhookGW {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &WebhookGateway{
		httpClient:  &http.Client{Timeout: timeout},
		secret:      cfg.SigningSecret,
		maxAttempts: maxAttempts,
		backoff:     baseBackoff,
		deliveries:  deliveries,
	}
}

// Deliver posts the payload, retrying transport errors and 5xx responses
// with exponential backoff. 4xx responses drop immediately. The final
// outcome is recorded for the tenant's status endpoint and returned.
func (g *WebhookGateway) Deliver(ctx context.Context, tenantID, endpoint string, payload *models.CallbackPayload) *models.DeliveryOutcome {
	body, err := json.Marshal(payload)
	if err != nil {
		outcome := &models.DeliveryOutcome{
			Status:   OutcomeDropped,
			Attempts: 0,
			Error:    fmt.Sprintf("marshal payload: %v", err),
			At:       time.Now(),
		}
		g.record(ctx, tenantID, outcome)
		return outcome
	}

	var outcome *models.DeliveryOutcome
	backoff := g.backoff
	if backoff <= 0 {
		backoff = baseBackoff
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		statusCode, attemptErr := g.post(ctx, endpoint, body)

		switch {
		case attemptErr == nil && statusCode >= 200 && statusCode < 300:
			outcome = &models.DeliveryOutcome{
				Status:     OutcomeDelivered,
				Attempts:   attempt,
				StatusCode: statusCode,
				At:         time.Now(),
			}
		case attemptErr == nil && statusCode < 500:
			// Endpoint rejected the payload. Retrying will not help.
			outcome = &models.DeliveryOutcome{
				Status:     OutcomeDropped,
				Attempts:   attempt,
				StatusCode: statusCode,
				Error:      fmt.Sprintf("endpoint returned %d", statusCode),
				At:         time.Now(),
			}
		default:
			errText := fmt.Sprintf("endpoint returned %d", statusCode)
			if attemptErr != nil {
				errText = attemptErr.Error()
			}
			outcome = &models.DeliveryOutcome{
				Status:     OutcomeDropped,
				Attempts:   attempt,
				StatusCode: statusCode,
				Error:      errText,
				At:         time.Now(),
			}
			if attempt < g.maxAttempts {
				logger.Warn("Webhook delivery attempt failed, retrying",
					logger.String("tenant_id", tenantID),
					logger.Int("attempt", attempt),
					logger.String("error", errText))
				if !sleepCtx(ctx, backoff) {
					g.record(ctx, tenantID, outcome)
					return outcome
				}
				backoff *= 2
				continue
			}
		}
		break
	}

	if outcome.Status == OutcomeDelivered {
		logger.Info("Webhook delivered",
			logger.String("tenant_id", tenantID),
			logger.Int("attempts", outcome.Attempts))
	} else {
		logger.Warn("Webhook delivery dropped",
			logger.String("tenant_id", tenantID),
			logger.Int("attempts", outcome.Attempts),
			logger.String("error", outcome.Error))
	}

	g.record(ctx, tenantID, outcome)
	return outcome
}

// DeliverTest performs a single delivery attempt with no retries and no
// outcome recording. Used by the callback test endpoint.
func (g *WebhookGateway) DeliverTest(ctx context.Context, endpoint string, payload *models.CallbackPayload) (*models.DeliveryOutcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	statusCode, attemptErr := g.post(ctx, endpoint, body)
	outcome := &models.DeliveryOutcome{
		Attempts:   1,
		StatusCode: statusCode,
		At:         time.Now(),
	}
	switch {
	case attemptErr != nil:
		outcome.Status = OutcomeDropped
		outcome.Error = attemptErr.Error()
	case statusCode >= 200 && statusCode < 300:
		outcome.Status = OutcomeDelivered
	default:
		outcome.Status = OutcomeDropped
		outcome.Error = fmt.Sprintf("endpoint returned %d", statusCode)
	}
	return outcome, nil
}

func (g *WebhookGateway) post(ctx context.Context, endpoint string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sig := signature.Sign(body, g.secret); sig != "" {
		req.Header.Set("X-Signature", sig)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (g *WebhookGateway) record(ctx context.Context, tenantID string, outcome *models.DeliveryOutcome) {
	if g.deliveries == nil {
		return
	}
	if err := g.deliveries.RecordOutcome(ctx, tenantID, outcome); err != nil {
		logger.Warn("Failed to record delivery outcome",
			logger.String("tenant_id", tenantID),
			logger.Err(err))
	}
}

// sleepCtx waits for d or until ctx is cancelled, reporting whether the full
// wait elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
