package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PeerKind discriminates the entity kinds a peer reference can resolve to.
type PeerKind string

const (
	PeerUser    PeerKind = "user"
	PeerChat    PeerKind = "chat"
	PeerChannel PeerKind = "channel"
	PeerSelf    PeerKind = "self"
)

// Peer is a resolved Telegram entity, carrying enough to address it on the
// wire and to render a human-readable confirmation for the caller.
type Peer struct {
	Kind       PeerKind
	ID         int64
	AccessHash int64
	Username   string
	Phone      string
	FirstName  string
}

// Display returns the human-readable resolved-peer description.
func (p *Peer) Display() string {
	switch {
	case p.Kind == PeerSelf:
		return "me"
	case p.Username != "":
		return "@" + p.Username
	case p.Phone != "":
		return p.Phone
	default:
		return strconv.FormatInt(p.ID, 10)
	}
}

// SentCode captures the outcome of a code request: the challenge handle, the
// delivery channel and the protocol-dictated resend cooldown.
type SentCode struct {
	CodeHash       string
	Delivery       string // "telegram_app" | "sms" | "call" | "unknown"
	TimeoutSeconds int
	Hint           string
}

// SentMessage is the acknowledgement for an outbound send.
type SentMessage struct {
	ID   int
	Date time.Time
}

// InboundMessage is one incoming message event from a live session.
type InboundMessage struct {
	ChatID         int64
	MessageID      int
	SenderID       int64
	SenderUsername string
	Text           string
	Date           time.Time
}

// CallbackMessage is the message part of the webhook payload.
type CallbackMessage struct {
	ChatID         int64   `json:"chat_id"`
	MessageID      int     `json:"message_id"`
	SenderID       int64   `json:"sender_id"`
	SenderUsername *string `json:"sender_username"`
	Text           string  `json:"text"`
	Date           string  `json:"date"`
}

// CallbackPayload is the canonical webhook payload delivered to a tenant's
// endpoint.
type CallbackPayload struct {
	TenantID string          `json:"tenant_id"`
	Event    string          `json:"event"`
	Message  CallbackMessage `json:"message"`
}

// Message is a logged inbound or outbound message.
type Message struct {
	ID          uuid.UUID `db:"id"`
	TenantID    uuid.UUID `db:"tenant_id"`
	ChatID      int64     `db:"chat_id"`
	MessageID   int64     `db:"message_id"`
	Username    string    `db:"username"`
	PhoneNumber string    `db:"phone_number"`
	Text        string    `db:"text"`
	SenderID    int64     `db:"sender_id"`
	Date        time.Time `db:"date"`
	Incoming    bool      `db:"incoming"`
	CreatedAt   time.Time `db:"created_at"`
}

// DeliveryOutcome is the recorded final result of a webhook delivery.
type DeliveryOutcome struct {
	Status     string    `json:"status"` // "delivered" | "dropped"
	Attempts   int       `json:"attempts"`
	StatusCode int       `json:"status_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

// SendMessageRequest is the body for POST /tenants/:id/messages/send
type SendMessageRequest struct {
	Peer               string `json:"peer" validate:"required"`
	Text               string `json:"text" validate:"required"`
	AllowImportContact bool   `json:"allow_import_contact"`
}

// SendMessageResult is returned on a successful send.
type SendMessageResult struct {
	OK           bool   `json:"ok"`
	PeerResolved string `json:"peer_resolved"`
	MessageID    int    `json:"message_id"`
	Date         string `json:"date"`
}

// ReadReceiptRequest is the body for POST /tenants/:id/messages/read-receipt
type ReadReceiptRequest struct {
	Peer  string `json:"peer" validate:"required"`
	MaxID int    `json:"max_id" validate:"required"`
}

// ReadReceiptResult is returned on a successful read receipt.
type ReadReceiptResult struct {
	OK           bool   `json:"ok"`
	PeerResolved string `json:"peer_resolved"`
	MaxID        int    `json:"max_id"`
}
