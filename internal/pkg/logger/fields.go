package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases zap.Field so callers log through this package without
// importing zap directly.
type Field = zap.Field

// String carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}
