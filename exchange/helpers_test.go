package exchange_test

import (
	"testing"

	"code.peerswap.io/peerswap/events"
	"code.peerswap.io/peerswap/exchange"
	"code.peerswap.io/peerswap/fee"
	"code.peerswap.io/peerswap/ledger"
	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/pool"

	"github.com/stretchr/testify/require"
)

// stubBroker records every event sent through it so tests can assert
// on the observation stream.
type stubBroker struct {
	evts []events.Event
}

func (b *stubBroker) Send(e events.Event) {
	b.evts = append(b.evts, e)
}

func (b *stubBroker) SendBatch(evts []events.Event) {
	b.evts = append(b.evts, evts...)
}

func (b *stubBroker) ofType(t events.Type) []events.Event {
	out := []events.Event{}
	for _, e := range b.evts {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// testEngine wires the exchange engine to real ledger, fee and pool
// engines, only the observation channel is stubbed.
type testEngine struct {
	*exchange.Engine
	log    *logging.Logger
	ledger *ledger.Engine
	pool   *pool.Engine
	fees   *fee.Engine
	broker *stubBroker
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	log := logging.NewTestLogger()
	led := ledger.New(log, ledger.NewDefaultConfig())
	fees, err := fee.New(log, fee.NewDefaultConfig())
	require.NoError(t, err)
	pl := pool.New(log, pool.NewDefaultConfig(), led, fees)
	brk := &stubBroker{}
	eng := exchange.New(log, exchange.NewDefaultConfig(), pl, pl, led, fees, brk)
	return &testEngine{
		Engine: eng,
		log:    log,
		ledger: led,
		pool:   pl,
		fees:   fees,
		broker: brk,
	}
}
