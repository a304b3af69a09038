package telegramgw

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/gotd/td/tg"

	"github.com/greytg/bridge/internal/pkg/models"
	telegramsvc "github.com/greytg/bridge/services/telegram"
)

// Self returns the account that owns this session.
func (c *client) Self(ctx context.Context) (*models.Peer, error) {
	user, err := c.tgc.Self(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	peer := userToPeer(user)
	peer.Kind = models.PeerSelf
	return peer, nil
}

// ResolveUsername resolves a public @username to a user, chat or channel.
func (c *client) ResolveUsername(ctx context.Context, username string) (*models.Peer, error) {
	resolved, err := c.api.ContactsResolveUsername(ctx, username)
	if err != nil {
		return nil, mapError(err)
	}
	return resolvedToPeer(resolved)
}

// ResolvePhone resolves a phone number that is already reachable for this
// account (a contact or a user with public phone visibility).
func (c *client) ResolvePhone(ctx context.Context, phone string) (*models.Peer, error) {
	resolved, err := c.api.ContactsResolvePhone(ctx, phone)
	if err != nil {
		return nil, mapError(err)
	}
	return resolvedToPeer(resolved)
}

// ResolveUserID resolves a numeric user ID. This works only for users the
// session has already seen (contacts, bots, prior dialogs).
func (c *client) ResolveUserID(ctx context.Context, id int64) (*models.Peer, error) {
	users, err := c.api.UsersGetUsers(ctx, []tg.InputUserClass{
		&tg.InputUser{UserID: id},
	})
	if err != nil {
		return nil, mapError(err)
	}
	for _, u := range users {
		if user, ok := u.(*tg.User); ok && user.ID == id {
			return userToPeer(user), nil
		}
	}
	return nil, telegramsvc.NewError(telegramsvc.ErrPeerNotFound,
		fmt.Sprintf("No known user with ID %d.", id))
}

// ImportContact adds the phone to the account's contacts to make its owner
// addressable, then returns the resolved user.
func (c *client) ImportContact(ctx context.Context, phone string) (*models.Peer, error) {
	imported, err := c.api.ContactsImportContacts(ctx, []tg.InputPhoneContact{
		{
			ClientID:  randomID(),
			Phone:     phone,
			FirstName: phone,
		},
	})
	if err != nil {
		return nil, mapError(err)
	}

	for _, u := range imported.Users {
		if user, ok := u.(*tg.User); ok {
			return userToPeer(user), nil
		}
	}
	return nil, telegramsvc.NewError(telegramsvc.ErrPhoneNotOnTelegram,
		"Phone number is not registered on Telegram or cannot be imported.")
}

func userToPeer(user *tg.User) *models.Peer {
	return &models.Peer{
		Kind:       models.PeerUser,
		ID:         user.ID,
		AccessHash: user.AccessHash,
		Username:   user.Username,
		Phone:      user.Phone,
		FirstName:  user.FirstName,
	}
}

func resolvedToPeer(resolved *tg.ContactsResolvedPeer) (*models.Peer, error) {
	switch p := resolved.Peer.(type) {
	case *tg.PeerUser:
		for _, u := range resolved.Users {
			if user, ok := u.(*tg.User); ok && user.ID == p.UserID {
				return userToPeer(user), nil
			}
		}
	case *tg.PeerChat:
		for _, ch := range resolved.Chats {
			if chat, ok := ch.(*tg.Chat); ok && chat.ID == p.ChatID {
				return &models.Peer{Kind: models.PeerChat, ID: chat.ID}, nil
			}
		}
	case *tg.PeerChannel:
		for _, ch := range resolved.Chats {
			if channel, ok := ch.(*tg.Channel); ok && channel.ID == p.ChannelID {
				return &models.Peer{
					Kind:       models.PeerChannel,
					ID:         channel.ID,
					AccessHash: channel.AccessHash,
					Username:   channel.Username,
				}, nil
			}
		}
	}
	return nil, telegramsvc.NewError(telegramsvc.ErrPeerNotFound, "Resolved peer is not usable.")
}

func randomID() int64 {
	var buf [8]byte
	rand.Read(buf[:])
	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63))
}
