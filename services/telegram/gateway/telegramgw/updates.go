package telegramgw

import (
	"context"
	"time"

	"github.com/gotd/td/tg"

	"github.com/greytg/bridge/internal/pkg/models"
)

// registerMessageHandlers wires incoming message updates to the onMessage
// callback. Outgoing messages and service messages are filtered out.
func registerMessageHandlers(dispatcher tg.UpdateDispatcher, onMessage func(models.InboundMessage)) {
	dispatcher.OnNewMessage(func(ctx context.Context, e tg.Entities, update *tg.UpdateNewMessage) error {
		if msg, ok := inboundFrom(update.Message, e); ok {
			onMessage(msg)
		}
		return nil
	})
	dispatcher.OnNewChannelMessage(func(ctx context.Context, e tg.Entities, update *tg.UpdateNewChannelMessage) error {
		if msg, ok := inboundFrom(update.Message, e); ok {
			onMessage(msg)
		}
		return nil
	})
}

func inboundFrom(message tg.MessageClass, e tg.Entities) (models.InboundMessage, bool) {
	msg, ok := message.(*tg.Message)
	if !ok || msg.Out {
		return models.InboundMessage{}, false
	}

	inbound := models.InboundMessage{
		MessageID: msg.ID,
		Text:      msg.Message,
		Date:      time.Unix(int64(msg.Date), 0),
	}

	switch p := msg.PeerID.(type) {
	case *tg.PeerUser:
		inbound.ChatID = p.UserID
		// In a one-to-one chat the peer user is the sender unless FromID
		// says otherwise.
		inbound.SenderID = p.UserID
	case *tg.PeerChat:
		inbound.ChatID = p.ChatID
	case *tg.PeerChannel:
		inbound.ChatID = p.ChannelID
	}

	if from, ok := msg.FromID.(*tg.PeerUser); ok {
		inbound.SenderID = from.UserID
	}

	if user, ok := e.Users[inbound.SenderID]; ok {
		inbound.SenderUsername = user.Username
	}

	return inbound, true
}
