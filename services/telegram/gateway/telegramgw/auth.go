package telegramgw

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"

	"github.com/greytg/bridge/internal/pkg/models"
	telegramsvc "github.com/greytg/bridge/services/telegram"
)

// Authorized reports whether the session holds a valid authorization.
func (c *client) Authorized(ctx context.Context) (bool, error) {
	status, err := c.tgc.Auth().Status(ctx)
	if err != nil {
		return false, fmt.Errorf("auth status: %w", mapError(err))
	}
	return status.Authorized, nil
}

// SendCode requests a login code for the phone number.
func (c *client) SendCode(ctx context.Context, phone string) (*models.SentCode, error) {
	sent, err := c.tgc.Auth().SendCode(ctx, phone, auth.SendCodeOptions{})
	if err != nil {
		return nil, mapError(err)
	}
	return sentCodeFromClass(sent)
}

// ResendCode asks Telegram to resend the code for an open challenge,
// typically switching the delivery channel.
func (c *client) ResendCode(ctx context.Context, phone, codeHash string) (*models.SentCode, error) {
	sent, err := c.api.AuthResendCode(ctx, &tg.AuthResendCodeRequest{
		PhoneNumber:   phone,
		PhoneCodeHash: codeHash,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return sentCodeFromClass(sent)
}

// SignIn completes the login challenge with the received code.
func (c *client) SignIn(ctx context.Context, phone, code, codeHash string) error {
	_, err := c.tgc.Auth().SignIn(ctx, phone, code, codeHash)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordAuthNeeded) {
			return telegramsvc.NewError(telegramsvc.ErrTwoFactorRequired, "Two-factor password required.")
		}
		return mapError(err)
	}
	return nil
}

// SignInWithPassword completes a two-factor login.
func (c *client) SignInWithPassword(ctx context.Context, password string) error {
	if _, err := c.tgc.Auth().Password(ctx, password); err != nil {
		return mapError(err)
	}
	return nil
}

// LogOut invalidates the session on Telegram's side.
func (c *client) LogOut(ctx context.Context) error {
	if _, err := c.api.AuthLogOut(ctx); err != nil {
		return mapError(err)
	}
	return nil
}

func sentCodeFromClass(sent tg.AuthSentCodeClass) (*models.SentCode, error) {
	code, ok := sent.(*tg.AuthSentCode)
	if !ok {
		return nil, telegramsvc.NewError(telegramsvc.ErrAlreadyLoggedIn, "Session is already authorized.")
	}

	result := &models.SentCode{CodeHash: code.PhoneCodeHash}
	if timeout, ok := code.GetTimeout(); ok {
		result.TimeoutSeconds = timeout
	}

	switch code.Type.(type) {
	case *tg.AuthSentCodeTypeApp:
		result.Delivery = "telegram_app"
		result.Hint = "Check the Telegram app on your other devices for the code."
	case *tg.AuthSentCodeTypeSMS:
		result.Delivery = "sms"
		result.Hint = "The code was sent via SMS."
	case *tg.AuthSentCodeTypeCall, *tg.AuthSentCodeTypeFlashCall, *tg.AuthSentCodeTypeMissedCall:
		result.Delivery = "call"
		result.Hint = "You will receive a phone call carrying the code."
	default:
		result.Delivery = "unknown"
	}
	return result, nil
}
