package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the machine-readable error code surfaced to API callers.
type ErrorKind string

const (
	ErrInvalidPhone       ErrorKind = "invalid_phone"
	ErrInvalidPeer        ErrorKind = "invalid_peer"
	ErrPeerNotFound       ErrorKind = "peer_not_found"
	ErrPhoneNotInContacts ErrorKind = "PHONE_NOT_IN_CONTACTS"
	ErrPhoneNotOnTelegram ErrorKind = "PHONE_NOT_IN_CONTACTS_OR_NOT_ON_TELEGRAM"
	ErrFloodWait          ErrorKind = "flood_wait"
	ErrRateLimited        ErrorKind = "rate_limited"
	ErrCooldown           ErrorKind = "cooldown"
	ErrTwoFactorRequired  ErrorKind = "2fa_required"
	ErrInvalidCode        ErrorKind = "invalid_code"
	ErrCodeExpired        ErrorKind = "code_expired"
	ErrInvalidPassword    ErrorKind = "invalid_password"
	ErrNoCodeRequest      ErrorKind = "no_code_request"
	ErrPhoneMismatch      ErrorKind = "phone_mismatch"
	ErrPhoneBanned        ErrorKind = "phone_banned"
	ErrAlreadyLoggedIn    ErrorKind = "already_logged_in"
	ErrUnauthorized       ErrorKind = "unauthorized"
	ErrNotFound           ErrorKind = "not_found"
	ErrNoCallbackURL      ErrorKind = "no_callback_url"
	ErrCallbackFailed     ErrorKind = "callback_failed"
	ErrSessionUnavailable ErrorKind = "session_unavailable"
	ErrConnectFailed      ErrorKind = "connect_failed"
	ErrCannotSend         ErrorKind = "cannot_send"
	ErrSendFailed         ErrorKind = "send_failed"
)

// Error is the tagged domain error: a kind, a human-readable message and,
// for throttling kinds, the caller-actionable wait.
type Error struct {
	Kind       ErrorKind
	Message    string
	RetryAfter int // seconds; set for flood_wait, rate_limited, cooldown
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus maps the error kind to the HTTP status the API layer returns.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case ErrFloodWait, ErrRateLimited, ErrCooldown:
		return http.StatusTooManyRequests
	case ErrTwoFactorRequired:
		return http.StatusForbidden
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// NewError creates a tagged domain error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewFloodWait creates a flood_wait error carrying the protocol-reported wait.
func NewFloodWait(seconds int) *Error {
	return &Error{
		Kind:       ErrFloodWait,
		Message:    fmt.Sprintf("Telegram rate limit. Retry after %d seconds.", seconds),
		RetryAfter: seconds,
	}
}

// NewRateLimited creates a rate_limited error from the sliding-window limiter.
func NewRateLimited(retryAfter int) *Error {
	return &Error{
		Kind:       ErrRateLimited,
		Message:    "Too many requests. Retry later.",
		RetryAfter: retryAfter,
	}
}

// NewCooldown creates a cooldown error for premature code resends.
func NewCooldown(remaining int) *Error {
	return &Error{
		Kind:       ErrCooldown,
		Message:    fmt.Sprintf("Wait %d seconds before resending.", remaining),
		RetryAfter: remaining,
	}
}

// AsError unwraps err into a *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	if e, ok := AsError(err); ok {
		return e.Kind == kind
	}
	return false
}
