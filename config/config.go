package config

import (
	"code.peerswap.io/peerswap/broker"
	"code.peerswap.io/peerswap/exchange"
	"code.peerswap.io/peerswap/fee"
	"code.peerswap.io/peerswap/ledger"
	"code.peerswap.io/peerswap/pool"
)

// Config ties together the configuration of all the engines.
type Config struct {
	Exchange exchange.Config `group:"Exchange" namespace:"exchange"`
	Pool     pool.Config     `group:"Pool" namespace:"pool"`
	Ledger   ledger.Config   `group:"Ledger" namespace:"ledger"`
	Fee      fee.Config      `group:"Fee" namespace:"fee"`
	Broker   broker.Config   `group:"Broker" namespace:"broker"`
}

// NewDefaultConfig returns the default configuration of every engine.
func NewDefaultConfig() Config {
	return Config{
		Exchange: exchange.NewDefaultConfig(),
		Pool:     pool.NewDefaultConfig(),
		Ledger:   ledger.NewDefaultConfig(),
		Fee:      fee.NewDefaultConfig(),
		Broker:   broker.NewDefaultConfig(),
	}
}
