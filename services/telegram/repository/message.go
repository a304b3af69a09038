package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/models"
)

// SaveMessage appends one row to the message log.
func (r *tenantRepo) SaveMessage(ctx context.Context, msg *models.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now()

	query := `
		INSERT INTO messages (id, tenant_id, chat_id, message_id, username,
			phone_number, text, sender_id, date, incoming, created_at
		) VALUES (:id, :tenant_id, :chat_id, :message_id, :username,
			:phone_number, :text, :sender_id, :date, :incoming, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}
