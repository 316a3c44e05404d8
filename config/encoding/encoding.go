package encoding

import (
	"time"

	"code.peerswap.io/peerswap/logging"
)

// Duration is a wrapper over an actual duration so it can be
// represented as a string in configuration files.
type Duration struct {
	time.Duration
}

// Get returns the stored duration.
func (d *Duration) Get() time.Duration {
	return d.Duration
}

// UnmarshalText unmarshals a duration from bytes.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText marshals a duration into bytes.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LogLevel is a wrapper over the actual log level so levels can be
// specified as strings in configuration files.
type LogLevel struct {
	logging.Level
}

// Get returns the stored level.
func (l *LogLevel) Get() logging.Level {
	return l.Level
}

// UnmarshalText unmarshals a log level from bytes.
func (l *LogLevel) UnmarshalText(text []byte) error {
	var err error
	l.Level, err = logging.ParseLevel(string(text))
	return err
}

// MarshalText marshals a log level into bytes.
func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Bool is a wrapper over bool to keep flag/toml encodings uniform.
type Bool bool

// UnmarshalText unmarshals a bool from bytes.
func (b *Bool) UnmarshalText(text []byte) error {
	switch string(text) {
	case "true", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}

// MarshalText marshals a bool into bytes.
func (b Bool) MarshalText() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}
