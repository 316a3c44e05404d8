package fee

import (
	"code.peerswap.io/peerswap/config/encoding"
	"code.peerswap.io/peerswap/logging"
)

const namedLogger = "fee"

// Config represents the configuration of the fee engine. Fees are
// expressed as a rational factor applied to the transfer amount.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	ExchangeFeeNumerator   uint64 `long:"exchange-fee-numerator"`
	ExchangeFeeDenominator uint64 `long:"exchange-fee-denominator"`
	DiscountFeeNumerator   uint64 `long:"discount-fee-numerator"`
	DiscountFeeDenominator uint64 `long:"discount-fee-denominator"`
}

// NewDefaultConfig creates an instance of config with default values:
// a 2 per mille exchange fee, halved for discounted trades.
func NewDefaultConfig() Config {
	return Config{
		Level:                  encoding.LogLevel{Level: logging.InfoLevel},
		ExchangeFeeNumerator:   2,
		ExchangeFeeDenominator: 1000,
		DiscountFeeNumerator:   1,
		DiscountFeeDenominator: 1000,
	}
}
