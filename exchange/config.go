package exchange

import (
	"code.peerswap.io/peerswap/config/encoding"
	"code.peerswap.io/peerswap/logging"
)

const namedLogger = "exchange"

// Config represents the configuration of the exchange engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}
