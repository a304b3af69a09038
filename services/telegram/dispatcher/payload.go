package dispatcher

import (
	"time"

	"github.com/greytg/bridge/internal/pkg/models"
)

// buildPayload shapes an inbound message into the callback payload format.
func buildPayload(tenantID string, msg models.InboundMessage) *models.CallbackPayload {
	var username *string
	if msg.SenderUsername != "" {
		u := msg.SenderUsername
		username = &u
	}

	return &models.CallbackPayload{
		TenantID: tenantID,
		Event:    "message",
		Message: models.CallbackMessage{
			ChatID:         msg.ChatID,
			MessageID:      msg.MessageID,
			SenderID:       msg.SenderID,
			SenderUsername: username,
			Text:           msg.Text,
			Date:           msg.Date.UTC().Format(time.RFC3339),
		},
	}
}
