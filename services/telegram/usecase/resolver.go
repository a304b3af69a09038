package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/greytg/bridge/internal/pkg/models"
	"github.com/greytg/bridge/internal/utils"
	"github.com/greytg/bridge/services/telegram"
)

// resolvePeer turns a caller-supplied peer reference into a concrete entity.
// Accepted forms: "me"/"self" (any case), "@username", a bare username, a
// numeric user ID, or an E.164 phone number.
func (u *TelegramUC) resolvePeer(ctx context.Context, client telegram.NetworkClient, peerSpec string, allowImport bool) (*models.Peer, error) {
	spec := strings.TrimSpace(peerSpec)
	if spec == "" {
		return nil, telegram.NewError(telegram.ErrInvalidPeer, "Peer is required.")
	}

	if lower := strings.ToLower(spec); lower == "me" || lower == "self" {
		return client.Self(ctx)
	}

	if utils.IsPhoneNumber(spec) {
		return u.resolveByPhone(ctx, client, spec, allowImport)
	}

	if id, err := strconv.ParseInt(spec, 10, 64); err == nil {
		return client.ResolveUserID(ctx, id)
	}

	username := strings.TrimPrefix(spec, "@")
	if username == "" {
		return nil, telegram.NewError(telegram.ErrInvalidPeer, "Invalid peer reference.")
	}
	return client.ResolveUsername(ctx, username)
}

// resolveByPhone tries direct phone resolution first; when the phone is not
// reachable and the caller opted in, it imports the number as a contact.
func (u *TelegramUC) resolveByPhone(ctx context.Context, client telegram.NetworkClient, phone string, allowImport bool) (*models.Peer, error) {
	normalized, err := utils.NormalizeE164(phone)
	if err != nil {
		return nil, telegram.NewError(telegram.ErrInvalidPhone, err.Error())
	}

	peer, err := client.ResolvePhone(ctx, normalized)
	if err == nil {
		return peer, nil
	}
	if e, ok := telegram.AsError(err); ok && e.Kind == telegram.ErrFloodWait {
		return nil, err
	}

	if !allowImport {
		return nil, telegram.NewError(telegram.ErrPhoneNotInContacts,
			"Phone is not in contacts. Set allow_import_contact to add it.")
	}

	peer, err = client.ImportContact(ctx, normalized)
	if err != nil {
		if telegram.IsKind(err, telegram.ErrPhoneNotOnTelegram) {
			return nil, err
		}
		return nil, telegram.NewError(telegram.ErrPhoneNotOnTelegram,
			"Phone number is not registered on Telegram or cannot be imported.")
	}
	return peer, nil
}
