package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/greytg/bridge/internal/pkg/constants"
	"github.com/greytg/bridge/internal/pkg/models"
	natspkg "github.com/greytg/bridge/internal/pkg/nats"
	"github.com/greytg/bridge/services/telegram"
)

// EventsGateway publishes bridge events to NATS.
type EventsGateway struct {
	client *natspkg.Client
}

// NewEventsGateway creates a new NATS events gateway
func NewEventsGateway(client *natspkg.Client) telegram.EventsGW {
	return &EventsGateway{client: client}
}

type inboundEvent struct {
	TenantID       string `json:"tenant_id"`
	ChatID         int64  `json:"chat_id"`
	MessageID      int    `json:"message_id"`
	SenderID       int64  `json:"sender_id"`
	SenderUsername string `json:"sender_username,omitempty"`
	Text           string `json:"text"`
	Date           string `json:"date"`
}

// PublishInbound publishes an incoming message event
func (g *EventsGateway) PublishInbound(ctx context.Context, tenantID string, msg *models.InboundMessage) error {
	data, err := json.Marshal(inboundEvent{
		TenantID:       tenantID,
		ChatID:         msg.ChatID,
		MessageID:      msg.MessageID,
		SenderID:       msg.SenderID,
		SenderUsername: msg.SenderUsername,
		Text:           msg.Text,
		Date:           msg.Date.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectMessageInbound, data)
}

type tenantEvent struct {
	TenantID string `json:"tenant_id"`
	Phone    string `json:"phone,omitempty"`
	At       string `json:"at"`
}

// PublishTenantAuthorized publishes a tenant authorization event
func (g *EventsGateway) PublishTenantAuthorized(ctx context.Context, tenantID, phone string) error {
	data, err := json.Marshal(tenantEvent{
		TenantID: tenantID,
		Phone:    phone,
		At:       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectTenantAuthorized, data)
}

// PublishTenantLoggedOut publishes a tenant logout event
func (g *EventsGateway) PublishTenantLoggedOut(ctx context.Context, tenantID string) error {
	data, err := json.Marshal(tenantEvent{
		TenantID: tenantID,
		At:       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectTenantLoggedOut, data)
}
