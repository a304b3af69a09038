package telegramgw

import (
	"context"
	"time"

	"github.com/gotd/td/tg"

	"github.com/greytg/bridge/internal/pkg/models"
	telegramsvc "github.com/greytg/bridge/services/telegram"
)

// SendMessage sends a text message to the resolved peer and returns the
// server-assigned message ID.
func (c *client) SendMessage(ctx context.Context, peer *models.Peer, text string) (*models.SentMessage, error) {
	input, err := inputPeer(peer)
	if err != nil {
		return nil, err
	}

	updates, err := c.api.MessagesSendMessage(ctx, &tg.MessagesSendMessageRequest{
		Peer:     input,
		Message:  text,
		RandomID: randomID(),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return sentFromUpdates(updates), nil
}

// MarkRead acknowledges messages up to maxID in the peer's history.
func (c *client) MarkRead(ctx context.Context, peer *models.Peer, maxID int) error {
	if peer.Kind == models.PeerChannel {
		_, err := c.api.ChannelsReadHistory(ctx, &tg.ChannelsReadHistoryRequest{
			Channel: &tg.InputChannel{ChannelID: peer.ID, AccessHash: peer.AccessHash},
			MaxID:   maxID,
		})
		return mapError(err)
	}

	input, err := inputPeer(peer)
	if err != nil {
		return err
	}
	_, err = c.api.MessagesReadHistory(ctx, &tg.MessagesReadHistoryRequest{
		Peer:  input,
		MaxID: maxID,
	})
	return mapError(err)
}

func inputPeer(peer *models.Peer) (tg.InputPeerClass, error) {
	switch peer.Kind {
	case models.PeerSelf:
		return &tg.InputPeerSelf{}, nil
	case models.PeerUser:
		return &tg.InputPeerUser{UserID: peer.ID, AccessHash: peer.AccessHash}, nil
	case models.PeerChat:
		return &tg.InputPeerChat{ChatID: peer.ID}, nil
	case models.PeerChannel:
		return &tg.InputPeerChannel{ChannelID: peer.ID, AccessHash: peer.AccessHash}, nil
	default:
		return nil, telegramsvc.NewError(telegramsvc.ErrInvalidPeer, "Unsupported peer kind.")
	}
}

// sentFromUpdates digs the assigned message ID out of the server response.
func sentFromUpdates(updates tg.UpdatesClass) *models.SentMessage {
	sent := &models.SentMessage{Date: time.Now()}

	switch u := updates.(type) {
	case *tg.UpdateShortSentMessage:
		sent.ID = u.ID
		sent.Date = time.Unix(int64(u.Date), 0)
	case *tg.Updates:
		sent.Date = time.Unix(int64(u.Date), 0)
		for _, upd := range u.Updates {
			if msgID, ok := upd.(*tg.UpdateMessageID); ok {
				sent.ID = msgID.ID
				break
			}
		}
	}
	return sent
}
