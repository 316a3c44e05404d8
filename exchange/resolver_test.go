package exchange_test

import (
	"context"
	"testing"

	"code.peerswap.io/peerswap/events"
	"code.peerswap.io/peerswap/exchange"
	"code.peerswap.io/peerswap/exchange/mocks"
	"code.peerswap.io/peerswap/fee"
	"code.peerswap.io/peerswap/ledger"
	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolution(t *testing.T) {
	t.Run("direct match with the excess carried to the pool", testResolveCarryForward)
	t.Run("exact match settles peer to peer only", testResolveExactMatch)
	t.Run("oversized counter trades its rest against the pool", testResolveCounterRest)
	t.Run("counters beyond an exhausted intention go to the pool", testResolveExhaustedBucket)
	t.Run("unmatched sell trades against the pool", testResolveSingleSell)
	t.Run("unmatched buy trades against the pool", testResolveSingleBuy)
}

func TestResolutionFailure(t *testing.T) {
	t.Run("earlier legs stay committed when the pool rejects", testResolveAbortKeepsCommitted)
	t.Run("a failed balance check aborts the resolution", testResolveBalanceCheck)
	t.Run("a failed quote aborts before any transfer", testResolveQuoteFailure)
}

// balanceEq asserts an exact ledger balance, failures print the
// offending account to keep the arithmetic debuggable.
func balanceEq(t *testing.T, eng *testEngine, asset, account string, want uint64) {
	t.Helper()
	got := eng.ledger.FreeBalance(asset, account)
	assert.True(t, got.EQUint64(want),
		"balance of %s in %s: got %s, want %d", account, asset, got.String(), want)
}

func testResolveCarryForward(t *testing.T) {
	eng := getTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.pool.Create("X", "Y", num.NewUint(1000000), num.NewUint(1000000)))
	eng.ledger.Deposit("Y", "alice", num.NewUint(200000))
	eng.ledger.Deposit("X", "bob", num.NewUint(100000))

	_, err := eng.SubmitSell(ctx, "alice", "Y", "X", num.NewUint(100000), false)
	require.NoError(t, err)
	_, err = eng.SubmitSell(ctx, "bob", "X", "Y", num.NewUint(40000), false)
	require.NoError(t, err)

	eng.OnRoundEnd(ctx)

	// bob settles fully peer to peer: 40000 against 40000 at the 1:1
	// quote, 80 fee on each leg. alice's remaining 60000 trades against
	// the pool after the fees landed on it, netting 56491 after the
	// pool fee of 113 on the 56604 output.
	pacc := eng.pool.PairAccount("X", "Y")
	balanceEq(t, eng, "Y", "alice", 100000)
	balanceEq(t, eng, "X", "alice", 96411)
	balanceEq(t, eng, "X", "bob", 60000)
	balanceEq(t, eng, "Y", "bob", 39920)
	balanceEq(t, eng, "X", pacc, 943589)
	balanceEq(t, eng, "Y", pacc, 1060080)

	trades := eng.broker.ofType(events.DirectTradeEvent)
	require.Len(t, trades, 1)
	trade := trades[0].(*events.DirectTrade)
	assert.Equal(t, "alice", trade.PartyA())
	assert.Equal(t, "bob", trade.PartyB())
	assert.True(t, trade.AmountA().EQUint64(39920))
	assert.True(t, trade.AmountB().EQUint64(39920))
	assert.True(t, trade.FeeA().EQUint64(80))
	assert.True(t, trade.FeeB().EQUint64(80))

	assert.Empty(t, eng.broker.ofType(events.InsufficientBalanceEvent))
	assert.Empty(t, eng.broker.ofType(events.AMMSellErrorEvent))
}

func testResolveExactMatch(t *testing.T) {
	eng := getTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.pool.Create("X", "Y", num.NewUint(1000000), num.NewUint(1000000)))
	eng.ledger.Deposit("Y", "alice", num.NewUint(50000))
	eng.ledger.Deposit("X", "bob", num.NewUint(50000))

	_, err := eng.SubmitSell(ctx, "alice", "Y", "X", num.NewUint(50000), false)
	require.NoError(t, err)
	_, err = eng.SubmitSell(ctx, "bob", "X", "Y", num.NewUint(50000), false)
	require.NoError(t, err)

	eng.OnRoundEnd(ctx)

	// both sides net out completely, the pool only collects the fees
	pacc := eng.pool.PairAccount("X", "Y")
	balanceEq(t, eng, "Y", "alice", 0)
	balanceEq(t, eng, "X", "alice", 49900)
	balanceEq(t, eng, "X", "bob", 0)
	balanceEq(t, eng, "Y", "bob", 49900)
	balanceEq(t, eng, "X", pacc, 1000100)
	balanceEq(t, eng, "Y", pacc, 1000100)

	require.Len(t, eng.broker.ofType(events.DirectTradeEvent), 1)
}

func testResolveCounterRest(t *testing.T) {
	eng := getTestEngine(t)
	ctx := context.Background()

	// a skewed pool, 4 Y per X
	require.NoError(t, eng.pool.Create("X", "Y", num.NewUint(1000000), num.NewUint(4000000)))
	eng.ledger.Deposit("Y", "alice", num.NewUint(100000))
	eng.ledger.Deposit("X", "bob", num.NewUint(50000))

	_, err := eng.SubmitSell(ctx, "alice", "Y", "X", num.NewUint(50000), false)
	require.NoError(t, err)
	_, err = eng.SubmitSell(ctx, "bob", "X", "Y", num.NewUint(20000), false)
	require.NoError(t, err)

	eng.OnRoundEnd(ctx)

	// alice's 50000 Y only covers 12500 of bob's X at the quote, bob's
	// remaining 7500 X sells to the pool for a net 29717 Y before the
	// peer legs settle
	pacc := eng.pool.PairAccount("X", "Y")
	balanceEq(t, eng, "Y", "alice", 50000)
	balanceEq(t, eng, "X", "alice", 12475)
	balanceEq(t, eng, "X", "bob", 30000)
	balanceEq(t, eng, "Y", "bob", 79617)
	balanceEq(t, eng, "X", pacc, 1007525)
	balanceEq(t, eng, "Y", pacc, 3970383)

	trades := eng.broker.ofType(events.DirectTradeEvent)
	require.Len(t, trades, 1)
	trade := trades[0].(*events.DirectTrade)
	assert.True(t, trade.AmountA().EQUint64(49900))
	assert.True(t, trade.AmountB().EQUint64(12475))
}

func testResolveSingleSell(t *testing.T) {
	eng := getTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.pool.Create("X", "Y", num.NewUint(1000000), num.NewUint(1000000)))
	eng.ledger.Deposit("Y", "alice", num.NewUint(10000))

	_, err := eng.SubmitSell(ctx, "alice", "Y", "X", num.NewUint(10000), false)
	require.NoError(t, err)

	eng.OnRoundEnd(ctx)

	pacc := eng.pool.PairAccount("X", "Y")
	balanceEq(t, eng, "Y", "alice", 0)
	balanceEq(t, eng, "X", "alice", 9881)
	balanceEq(t, eng, "Y", pacc, 1010000)
	balanceEq(t, eng, "X", pacc, 990119)

	assert.Empty(t, eng.broker.ofType(events.DirectTradeEvent))
}

func testResolveSingleBuy(t *testing.T) {
	eng := getTestEngine(t)
	ctx := context.Background()

	require.NoError(t, eng.pool.Create("X", "Y", num.NewUint(1000000), num.NewUint(1000000)))
	eng.ledger.Deposit("Y", "bob", num.NewUint(10000))

	_, err := eng.SubmitBuy(ctx, "bob", "X", "Y", num.NewUint(5000), false)
	require.NoError(t, err)

	eng.OnRoundEnd(ctx)

	// 5025 Y at constant product, 10 fee on top
	pacc := eng.pool.PairAccount("X", "Y")
	balanceEq(t, eng, "Y", "bob", 4965)
	balanceEq(t, eng, "X", "bob", 5000)
	balanceEq(t, eng, "Y", pacc, 1005035)
	balanceEq(t, eng, "X", pacc, 995000)
}

// mockedEngine wires the exchange engine to a mocked AMM, keeping the
// real ledger and fee engines underneath.
type mockedEngine struct {
	*exchange.Engine
	ctrl   *gomock.Controller
	amm    *mocks.MockAMMTrader
	ledger *ledger.Engine
	broker *stubBroker
}

func getMockedEngine(t *testing.T) *mockedEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logging.NewTestLogger()
	led := ledger.New(log, ledger.NewDefaultConfig())
	fees, err := fee.New(log, fee.NewDefaultConfig())
	require.NoError(t, err)
	amm := mocks.NewMockAMMTrader(ctrl)
	brk := &stubBroker{}
	eng := exchange.New(log, exchange.NewDefaultConfig(), mocks.NewMockTokenPool(ctrl), amm, led, fees, brk)
	return &mockedEngine{
		Engine: eng,
		ctrl:   ctrl,
		amm:    amm,
		ledger: led,
		broker: brk,
	}
}

func testResolveExhaustedBucket(t *testing.T) {
	eng := getMockedEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.ledger.Deposit("Y", "alice", num.NewUint(100000))
	eng.ledger.Deposit("X", "bob1", num.NewUint(30000))
	eng.ledger.Deposit("X", "bob2", num.NewUint(20000))
	eng.ledger.Deposit("X", "bob3", num.NewUint(10000))

	intention := &types.Intention{
		ID: 0, Party: "alice", AssetSell: "Y", AssetBuy: "X",
		Amount: num.NewUint(100000), Type: types.IntentionTypeSell,
	}
	matched := []*types.Intention{
		{ID: 1, Party: "bob1", AssetSell: "X", AssetBuy: "Y",
			Amount: num.NewUint(30000), Type: types.IntentionTypeSell},
		{ID: 2, Party: "bob2", AssetSell: "X", AssetBuy: "Y",
			Amount: num.NewUint(20000), Type: types.IntentionTypeSell},
		{ID: 3, Party: "bob3", AssetSell: "X", AssetBuy: "Y",
			Amount: num.NewUint(10000), Type: types.IntentionTypeSell, Discount: true},
	}

	// bob1 settles under the remaining amount, bob2 exhausts it with a
	// rest pushed to the pool, which must not strand bob3: the matcher
	// no longer holds it, its full amount trades against the pool
	gomock.InOrder(
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(100000)).Return(num.NewUint(100000), nil),
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(30000)).Return(num.NewUint(30000), nil),
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(70000)).Return(num.NewUint(15000), nil),
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(20000)).Return(num.NewUint(80000), nil),
		eng.amm.EXPECT().Sell(gomock.Any(), "bob2", "X", "Y", num.NewUint(5000), false).Return(nil),
		eng.amm.EXPECT().Sell(gomock.Any(), "bob3", "X", "Y", num.NewUint(10000), true).Return(nil),
	)

	ok := eng.Resolve(ctx, "pacc", intention, matched)
	assert.True(t, ok)

	// both peer settlements committed, alice's amount fully consumed
	balanceEq2(t, eng.ledger, "Y", "alice", 0)
	balanceEq2(t, eng.ledger, "X", "alice", 44910)
	balanceEq2(t, eng.ledger, "X", "bob1", 0)
	balanceEq2(t, eng.ledger, "Y", "bob1", 29940)
	balanceEq2(t, eng.ledger, "X", "bob2", 5000)
	balanceEq2(t, eng.ledger, "Y", "bob2", 69860)
	// bob3's legs move inside the pool trade, not the ledger here
	balanceEq2(t, eng.ledger, "X", "bob3", 10000)

	require.Len(t, eng.broker.ofType(events.DirectTradeEvent), 2)
	assert.Empty(t, eng.broker.ofType(events.AMMSellErrorEvent))
}

func testResolveAbortKeepsCommitted(t *testing.T) {
	eng := getMockedEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.ledger.Deposit("Y", "alice", num.NewUint(100000))
	eng.ledger.Deposit("X", "bob1", num.NewUint(30000))
	eng.ledger.Deposit("X", "bob2", num.NewUint(40000))
	eng.ledger.Deposit("Y", "pacc", num.NewUint(1000000))
	eng.ledger.Deposit("X", "pacc", num.NewUint(1000000))

	intention := &types.Intention{
		ID: 0, Party: "alice", AssetSell: "Y", AssetBuy: "X",
		Amount: num.NewUint(100000), Type: types.IntentionTypeSell,
	}
	matched := []*types.Intention{
		{ID: 1, Party: "bob1", AssetSell: "X", AssetBuy: "Y",
			Amount: num.NewUint(30000), Type: types.IntentionTypeSell},
		{ID: 2, Party: "bob2", AssetSell: "X", AssetBuy: "Y",
			Amount: num.NewUint(40000), Type: types.IntentionTypeSell},
	}

	// bob1 fits under the remaining amount and settles, bob2's rest is
	// pushed to the pool and rejected there
	gomock.InOrder(
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(100000)).Return(num.NewUint(100000), nil),
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(30000)).Return(num.NewUint(30000), nil),
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(70000)).Return(num.NewUint(35000), nil),
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(40000)).Return(num.NewUint(80000), nil),
		eng.amm.EXPECT().Sell(gomock.Any(), "bob2", "X", "Y", num.NewUint(5000), false).
			Return(errors.New("pool drained")),
	)

	ok := eng.Resolve(ctx, "pacc", intention, matched)
	assert.False(t, ok)

	// the bob1 legs are not rolled back
	balanceEq2(t, eng.ledger, "Y", "alice", 70000)
	balanceEq2(t, eng.ledger, "X", "alice", 29940)
	balanceEq2(t, eng.ledger, "X", "bob1", 0)
	balanceEq2(t, eng.ledger, "Y", "bob1", 29940)
	balanceEq2(t, eng.ledger, "X", "bob2", 40000)
	balanceEq2(t, eng.ledger, "Y", "bob2", 0)

	require.Len(t, eng.broker.ofType(events.DirectTradeEvent), 1)
	fails := eng.broker.ofType(events.AMMSellErrorEvent)
	require.Len(t, fails, 1)
	sellErr := fails[0].(*events.AMMError)
	assert.Equal(t, "bob2", sellErr.Party())
	assert.Equal(t, "X", sellErr.Asset())
	assert.True(t, sellErr.Amount().EQUint64(5000))
	assert.EqualValues(t, 2, sellErr.IntentionID())
}

func testResolveBalanceCheck(t *testing.T) {
	eng := getMockedEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.ledger.Deposit("Y", "alice", num.NewUint(100000))
	// bob cannot cover the full counter amount anymore
	eng.ledger.Deposit("X", "bob", num.NewUint(10000))

	intention := &types.Intention{
		ID: 0, Party: "alice", AssetSell: "Y", AssetBuy: "X",
		Amount: num.NewUint(100000), Type: types.IntentionTypeSell,
	}
	matched := []*types.Intention{
		{ID: 1, Party: "bob", AssetSell: "X", AssetBuy: "Y",
			Amount: num.NewUint(30000), Type: types.IntentionTypeSell},
	}

	gomock.InOrder(
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(100000)).Return(num.NewUint(100000), nil),
		eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), num.NewUint(30000)).Return(num.NewUint(30000), nil),
	)

	assert.False(t, eng.Resolve(ctx, "pacc", intention, matched))

	// nothing moved
	balanceEq2(t, eng.ledger, "Y", "alice", 100000)
	balanceEq2(t, eng.ledger, "X", "bob", 10000)

	fails := eng.broker.ofType(events.InsufficientBalanceEvent)
	require.Len(t, fails, 1)
	evt := fails[0].(*events.InsufficientBalance)
	assert.Equal(t, "bob", evt.Party())
	assert.Equal(t, "X", evt.Asset())
	assert.True(t, evt.Amount().EQUint64(30000))
	assert.EqualValues(t, 1, evt.IntentionID())
}

func testResolveQuoteFailure(t *testing.T) {
	eng := getMockedEngine(t)
	defer eng.ctrl.Finish()
	ctx := context.Background()

	eng.ledger.Deposit("Y", "alice", num.NewUint(100000))
	eng.ledger.Deposit("X", "bob", num.NewUint(30000))

	intention := &types.Intention{
		ID: 0, Party: "alice", AssetSell: "Y", AssetBuy: "X",
		Amount: num.NewUint(100000), Type: types.IntentionTypeSell,
	}
	matched := []*types.Intention{
		{ID: 1, Party: "bob", AssetSell: "X", AssetBuy: "Y",
			Amount: num.NewUint(30000), Type: types.IntentionTypeSell},
	}

	eng.amm.EXPECT().SpotPrice(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("zero reserve"))

	assert.False(t, eng.Resolve(ctx, "pacc", intention, matched))
	balanceEq2(t, eng.ledger, "Y", "alice", 100000)
	balanceEq2(t, eng.ledger, "X", "bob", 30000)
	assert.Empty(t, eng.broker.evts)
}

func balanceEq2(t *testing.T, led *ledger.Engine, asset, account string, want uint64) {
	t.Helper()
	got := led.FreeBalance(asset, account)
	assert.True(t, got.EQUint64(want),
		"balance of %s in %s: got %s, want %d", account, asset, got.String(), want)
}
