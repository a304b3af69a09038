package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/greytg/bridge/internal/pkg/constants"
	"github.com/greytg/bridge/internal/pkg/database"
	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/services/telegram"
)

const (
	// DeliveryOutcomeTTL bounds how long a stale outcome is reported by the
	// status endpoint.
	DeliveryOutcomeTTL = 7 * 24 * time.Hour
)

type deliveryRepo struct {
	redisClient *database.RedisClient
}

// NewDeliveryRepository creates a new delivery outcome repository
func NewDeliveryRepository(redisClient *database.RedisClient) telegram.DeliveryRepo {
	return &deliveryRepo{redisClient: redisClient}
}

// RecordOutcome stores the final result of the latest webhook delivery for
// the tenant, overwriting any previous one.
func (r *deliveryRepo) RecordOutcome(ctx context.Context, tenantID string, outcome *models.DeliveryOutcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery outcome: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDeliveryOutcome, tenantID)
	if err := r.redisClient.Set(ctx, key, string(data), DeliveryOutcomeTTL); err != nil {
		return fmt.Errorf("failed to store delivery outcome: %w", err)
	}
	return nil
}

// LastOutcome returns the most recent recorded outcome, or nil when none
// exists.
func (r *deliveryRepo) LastOutcome(ctx context.Context, tenantID string) (*models.DeliveryOutcome, error) {
	key := fmt.Sprintf(constants.KeyDeliveryOutcome, tenantID)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get delivery outcome: %w", err)
	}

	var outcome models.DeliveryOutcome
	if err := json.Unmarshal([]byte(data), &outcome); err != nil {
		return nil, fmt.Errorf("failed to unmarshal delivery outcome: %w", err)
	}
	return &outcome, nil
}
