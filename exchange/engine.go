package exchange

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"code.peerswap.io/peerswap/events"
	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/metrics"
	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"
)

var (
	// ErrTokenPoolNotFound signals a submission for a pair without a pool.
	ErrTokenPoolNotFound = errors.New("token pool not found")
	// ErrInsufficientAssetBalance signals the submitter cannot cover the
	// amount it intends to sell.
	ErrInsufficientAssetBalance = errors.New("insufficient asset balance")
	// ErrZeroAmount signals a submission with a zero amount.
	ErrZeroAmount = errors.New("intention amount must be positive")
	// ErrSameAsset signals a submission selling an asset for itself.
	ErrSameAsset = errors.New("intention assets must differ")
)

// TokenPool is the pool registry lookup used at submission and at
// round end to locate the pair account.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/token_pool_mock.go -package mocks code.peerswap.io/peerswap/exchange TokenPool
type TokenPool interface {
	Exists(assetA, assetB string) bool
	PairAccount(assetA, assetB string) string
}

// AMMTrader quotes and executes trades against the pool reserves.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/amm_trader_mock.go -package mocks code.peerswap.io/peerswap/exchange AMMTrader
type AMMTrader interface {
	SpotPrice(reserveIn, reserveOut, amountIn *num.Uint) (*num.Uint, error)
	Sell(ctx context.Context, who, assetIn, assetOut string, amount *num.Uint, discount bool) error
	Buy(ctx context.Context, who, assetOut, assetIn string, amount *num.Uint, discount bool) error
}

// Ledger exposes queryable balances and the transfer primitive direct
// trades settle through.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/ledger_mock.go -package mocks code.peerswap.io/peerswap/exchange Ledger
type Ledger interface {
	FreeBalance(asset, account string) *num.Uint
	Transfer(from, to, asset string, amount *num.Uint) error
}

// FeeSchedule derives the fee amount retained on a direct trade leg.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/fee_schedule_mock.go -package mocks code.peerswap.io/peerswap/exchange FeeSchedule
type FeeSchedule interface {
	Fee(amount *num.Uint) *num.Uint
}

// Broker is the observation channel, emission is fire and forget.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.peerswap.io/peerswap/exchange Broker
type Broker interface {
	Send(event events.Event)
	SendBatch(evts []events.Event)
}

// IntentionMatcher pairs the two direction buckets of an asset pair
// and drives the resolver over the groups it forms.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/intention_matcher_mock.go -package mocks code.peerswap.io/peerswap/exchange IntentionMatcher
type IntentionMatcher interface {
	Group(ctx context.Context, pairAccount string, aSells, bSells []*types.Intention, res IntentionResolver) bool
}

// IntentionResolver settles one intention against the bucket of
// opposing intentions the matcher selected for it.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/intention_resolver_mock.go -package mocks code.peerswap.io/peerswap/exchange IntentionResolver
type IntentionResolver interface {
	Resolve(ctx context.Context, pairAccount string, intention *types.Intention, matched []*types.Intention) bool
	ResolveSingle(ctx context.Context, intention *types.Intention) bool
}

// Engine is the per-round intention registry and settlement engine.
// Intentions accumulate during a round and are resolved exactly once
// when the round ends, matched peer to peer where possible and routed
// to the AMM otherwise. All state is round scoped except the intention
// id counter, which is never reset.
type Engine struct {
	log *logging.Logger
	cfg Config

	pool   TokenPool
	amm    AMMTrader
	ledger Ledger
	fees   FeeSchedule
	broker Broker

	matcher  IntentionMatcher
	resolver IntentionResolver

	// ordered (sell, buy) pair -> intentions submitted this round
	intentions map[types.OrderedPair][]*types.Intention
	// unordered pair -> number of intentions this round, both directions
	counts map[types.AssetPair]uint64
	// intention id counter, monotonically increasing across rounds
	nonce uint64
	// trace id shared by every event of the current round
	traceID string
}

// New instantiates the exchange engine with the default greedy matcher,
// the engine itself acts as the resolver.
func New(
	log *logging.Logger,
	cfg Config,
	pool TokenPool,
	amm AMMTrader,
	ledger Ledger,
	fees FeeSchedule,
	broker Broker,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	e := &Engine{
		log:        log,
		cfg:        cfg,
		pool:       pool,
		amm:        amm,
		ledger:     ledger,
		fees:       fees,
		broker:     broker,
		intentions: map[types.OrderedPair][]*types.Intention{},
		counts:     map[types.AssetPair]uint64{},
	}
	e.matcher = NewMatcher(log)
	e.resolver = e
	return e
}

// ReloadConf updates the internal configuration of the exchange engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.cfg = cfg
}

// WithMatcher swaps the matcher implementation, used in tests.
func (e *Engine) WithMatcher(m IntentionMatcher) *Engine {
	e.matcher = m
	return e
}

// WithResolver swaps the resolver implementation, used in tests.
func (e *Engine) WithResolver(r IntentionResolver) *Engine {
	e.resolver = r
	return e
}

// SubmitSell enqueues an intention to sell amount of assetSell for
// assetBuy, returning the assigned intention id. No balance moves at
// submission, only a sufficiency check.
func (e *Engine) SubmitSell(ctx context.Context, party, assetSell, assetBuy string, amount *num.Uint, discount bool) (uint64, error) {
	return e.submit(ctx, party, assetSell, assetBuy, amount, discount, types.IntentionTypeSell)
}

// SubmitBuy enqueues an intention to buy amount of assetBuy paying
// with assetSell, returning the assigned intention id.
func (e *Engine) SubmitBuy(ctx context.Context, party, assetBuy, assetSell string, amount *num.Uint, discount bool) (uint64, error) {
	return e.submit(ctx, party, assetSell, assetBuy, amount, discount, types.IntentionTypeBuy)
}

func (e *Engine) submit(
	ctx context.Context,
	party, assetSell, assetBuy string,
	amount *num.Uint,
	discount bool,
	direction types.IntentionType,
) (uint64, error) {
	if amount == nil || amount.IsZero() {
		return 0, ErrZeroAmount
	}
	if assetSell == assetBuy {
		return 0, ErrSameAsset
	}
	if !e.pool.Exists(assetSell, assetBuy) {
		return 0, ErrTokenPoolNotFound
	}
	if e.ledger.FreeBalance(assetSell, party).LT(amount) {
		return 0, ErrInsufficientAssetBalance
	}
	ctx = e.roundCtx(ctx)

	intention := &types.Intention{
		ID:        e.nonce,
		Party:     party,
		AssetSell: assetSell,
		AssetBuy:  assetBuy,
		Amount:    amount.Clone(),
		Type:      direction,
		Discount:  discount,
	}
	e.nonce++

	ordered := types.OrderedPair{AssetSell: assetSell, AssetBuy: assetBuy}
	e.intentions[ordered] = append(e.intentions[ordered], intention)
	e.counts[types.NewAssetPair(assetSell, assetBuy)]++

	e.broker.Send(events.NewIntentionRegistered(ctx, *intention))
	metrics.IntentionRegisteredInc(direction.String())

	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("intention registered",
			logging.Uint64("id", intention.ID),
			logging.String("party", party),
			logging.String("asset-sell", assetSell),
			logging.String("asset-buy", assetBuy),
			logging.String("amount", amount.String()),
			logging.String("direction", direction.String()),
		)
	}
	return intention.ID, nil
}

// OnRoundEnd drains every pair with intentions this round through the
// matcher, then clears all round state. Clearing is unconditional, a
// failed pair does not survive into the next round.
func (e *Engine) OnRoundEnd(ctx context.Context) {
	defer e.clearRound()
	ctx = e.roundCtx(ctx)

	pairs := e.activePairs()
	metrics.ActivePairsSet(len(pairs))

	for _, pair := range pairs {
		account := e.pool.PairAccount(pair.AssetA, pair.AssetB)

		// intentions selling the second asset of the pair for the first
		// are the A side, mirroring the pair account orientation
		aSells := e.intentions[types.OrderedPair{AssetSell: pair.AssetB, AssetBuy: pair.AssetA}]
		bSells := e.intentions[types.OrderedPair{AssetSell: pair.AssetA, AssetBuy: pair.AssetB}]

		if !e.matcher.Group(ctx, account, aSells, bSells, e.resolver) {
			e.log.Warn("pair not fully resolved",
				logging.String("pair", pair.String()),
			)
		}
	}
}

// activePairs returns the pairs with a nonzero intention count, in a
// deterministic order so runs over the same round state replay
// identically.
func (e *Engine) activePairs() []types.AssetPair {
	pairs := make([]types.AssetPair, 0, len(e.counts))
	for pair, count := range e.counts {
		if count == 0 {
			continue
		}
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].AssetA != pairs[j].AssetA {
			return pairs[i].AssetA < pairs[j].AssetA
		}
		return pairs[i].AssetB < pairs[j].AssetB
	})
	return pairs
}

// roundCtx tags the context with the current round's trace ID so every
// event raised for the round, submissions included, correlates. The
// first call of a round adopts the id the incoming context carries, or
// mints one.
func (e *Engine) roundCtx(ctx context.Context) context.Context {
	if e.traceID == "" {
		ctx, e.traceID = events.TraceIDFromContext(ctx)
		return ctx
	}
	return events.WithTraceID(ctx, e.traceID)
}

func (e *Engine) clearRound() {
	e.intentions = map[types.OrderedPair][]*types.Intention{}
	e.counts = map[types.AssetPair]uint64{}
	e.traceID = ""
}

// IntentionCount returns the number of intentions submitted this round
// for the unordered pair, both directions summed.
func (e *Engine) IntentionCount(assetA, assetB string) uint64 {
	return e.counts[types.NewAssetPair(assetA, assetB)]
}

// Intentions returns the current round's bucket for the ordered
// direction, selling assetSell for assetBuy.
func (e *Engine) Intentions(assetSell, assetBuy string) []*types.Intention {
	bucket := e.intentions[types.OrderedPair{AssetSell: assetSell, AssetBuy: assetBuy}]
	out := make([]*types.Intention, 0, len(bucket))
	for _, in := range bucket {
		out = append(out, in.Clone())
	}
	return out
}
