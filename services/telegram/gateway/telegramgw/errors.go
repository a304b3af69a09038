package telegramgw

import (
	"github.com/gotd/td/tgerr"

	telegramsvc "github.com/greytg/bridge/services/telegram"
)

// mapError translates MTProto RPC errors into domain errors. Errors with no
// domain meaning pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if d, ok := tgerr.AsFloodWait(err); ok {
		return telegramsvc.NewFloodWait(int(d.Seconds()))
	}

	switch {
	case tgerr.Is(err, "PHONE_NUMBER_INVALID"):
		return telegramsvc.NewError(telegramsvc.ErrInvalidPhone, "Telegram rejected the phone number.")
	case tgerr.Is(err, "PHONE_NUMBER_BANNED"):
		return telegramsvc.NewError(telegramsvc.ErrPhoneBanned, "This phone number is banned from Telegram.")
	case tgerr.Is(err, "PHONE_CODE_INVALID"):
		return telegramsvc.NewError(telegramsvc.ErrInvalidCode, "The code is incorrect.")
	case tgerr.Is(err, "PHONE_CODE_EXPIRED"):
		return telegramsvc.NewError(telegramsvc.ErrCodeExpired, "The code has expired. Request a new one.")
	case tgerr.Is(err, "PASSWORD_HASH_INVALID"):
		return telegramsvc.NewError(telegramsvc.ErrInvalidPassword, "The two-factor password is incorrect.")
	case tgerr.Is(err, "USERNAME_INVALID"):
		return telegramsvc.NewError(telegramsvc.ErrInvalidPeer, "Invalid username.")
	case tgerr.Is(err, "USERNAME_NOT_OCCUPIED"):
		return telegramsvc.NewError(telegramsvc.ErrPeerNotFound, "No user with that username.")
	case tgerr.Is(err, "AUTH_KEY_UNREGISTERED"):
		return telegramsvc.NewError(telegramsvc.ErrUnauthorized, "Session is no longer valid. Log in again.")
	}

	return err
}
