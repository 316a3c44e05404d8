package pool

import (
	"context"

	"github.com/pkg/errors"

	"code.peerswap.io/peerswap/libs/crypto"
	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"
)

var (
	// ErrPoolAlreadyExists signals a Create for a pair that has a pool.
	ErrPoolAlreadyExists = errors.New("pool already exists")
	// ErrPoolNotFound signals a trade against a pair without a pool.
	ErrPoolNotFound = errors.New("pool not found")
	// ErrSameAsset signals a pool over a single asset.
	ErrSameAsset = errors.New("pool assets must differ")
	// ErrZeroReserve signals an empty reserve where liquidity is required.
	ErrZeroReserve = errors.New("zero reserve")
	// ErrInsufficientLiquidity signals a buy larger than the pool holds.
	ErrInsufficientLiquidity = errors.New("insufficient pool liquidity")
	// ErrZeroTradeAmount signals a trade that nets out to nothing.
	ErrZeroTradeAmount = errors.New("trade amount too small")
)

// Ledger is the balance store reserves and trade legs settle against.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/ledger_mock.go -package mocks code.peerswap.io/peerswap/pool Ledger
type Ledger interface {
	FreeBalance(asset, account string) *num.Uint
	Deposit(asset, account string, amount *num.Uint)
	Transfer(from, to, asset string, amount *num.Uint) error
}

// FeeSchedule derives the fee retained by the pool on a trade.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/fee_schedule_mock.go -package mocks code.peerswap.io/peerswap/pool FeeSchedule
type FeeSchedule interface {
	Fee(amount *num.Uint) *num.Uint
	DiscountFee(amount *num.Uint) *num.Uint
}

// Engine is the token pool registry and the constant product AMM
// trading against the registered pools' reserves. Reserves live in the
// ledger on the pair account, the engine holds no balances itself.
type Engine struct {
	log    *logging.Logger
	cfg    Config
	ledger Ledger
	fees   FeeSchedule

	pools map[types.AssetPair]string
}

// New instantiates a new pool engine.
func New(log *logging.Logger, cfg Config, ledger Ledger, fees FeeSchedule) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Engine{
		log:    log,
		cfg:    cfg,
		ledger: ledger,
		fees:   fees,
		pools:  map[types.AssetPair]string{},
	}
}

// ReloadConf updates the internal configuration of the pool engine.
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

// Create registers a pool for the pair and seeds its reserves on the
// derived pair account.
func (e *Engine) Create(assetA, assetB string, reserveA, reserveB *num.Uint) error {
	if assetA == assetB {
		return ErrSameAsset
	}
	if reserveA.IsZero() || reserveB.IsZero() {
		return ErrZeroReserve
	}
	pair := types.NewAssetPair(assetA, assetB)
	if _, ok := e.pools[pair]; ok {
		return errors.Wrap(ErrPoolAlreadyExists, pair.String())
	}
	account := e.PairAccount(assetA, assetB)
	e.pools[pair] = account
	e.ledger.Deposit(assetA, account, reserveA)
	e.ledger.Deposit(assetB, account, reserveB)

	e.log.Info("pool created",
		logging.String("pair", pair.String()),
		logging.String("account", account),
	)
	return nil
}

// Exists reports whether a pool is registered for the pair,
// in either asset order.
func (e *Engine) Exists(assetA, assetB string) bool {
	_, ok := e.pools[types.NewAssetPair(assetA, assetB)]
	return ok
}

// PairAccount derives the account holding the pair's reserves. The
// derivation is pure, the same pair always maps to the same account
// whether or not a pool exists yet.
func (e *Engine) PairAccount(assetA, assetB string) string {
	pair := types.NewAssetPair(assetA, assetB)
	return "pool-" + crypto.HashToHex([]byte(pair.String()))[:24]
}

// SpotPrice quotes amountIn of the reserveIn asset in the reserveOut
// asset at current reserves, without price impact:
// amountIn * reserveOut / reserveIn, rounded down.
func (e *Engine) SpotPrice(reserveIn, reserveOut, amountIn *num.Uint) (*num.Uint, error) {
	if reserveIn.IsZero() {
		return nil, ErrZeroReserve
	}
	price := reserveIn.ToDecimal()
	price = amountIn.ToDecimal().Mul(reserveOut.ToDecimal()).Div(price).Floor()
	out, _ := num.UintFromDecimal(price)
	return out, nil
}

// Sell swaps an exact amount of assetIn for assetOut against the
// pool's reserves, constant product pricing with the fee retained by
// the pool in the outgoing asset.
func (e *Engine) Sell(ctx context.Context, who, assetIn, assetOut string, amount *num.Uint, discount bool) error {
	account, ok := e.pools[types.NewAssetPair(assetIn, assetOut)]
	if !ok {
		return ErrPoolNotFound
	}
	if amount.IsZero() {
		return ErrZeroTradeAmount
	}
	reserveIn := e.ledger.FreeBalance(assetIn, account)
	reserveOut := e.ledger.FreeBalance(assetOut, account)
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return ErrZeroReserve
	}

	// amountOut = reserveOut * amount / (reserveIn + amount)
	denom := num.Sum(reserveIn, amount)
	amountOut := num.Zero().Mul(reserveOut, amount)
	amountOut.Div(amountOut, denom)

	fee := e.tradeFee(amountOut, discount)
	if amountOut.LTE(fee) {
		return ErrZeroTradeAmount
	}
	net := num.Zero().Sub(amountOut, fee)

	if err := e.ledger.Transfer(who, account, assetIn, amount); err != nil {
		return err
	}
	if err := e.ledger.Transfer(account, who, assetOut, net); err != nil {
		// the incoming leg is already committed, this only fails on a
		// drained pool which the reserve check rules out
		e.log.Panic("pool sell leg failed after reserve check", logging.Error(err))
	}

	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("pool sell executed",
			logging.String("who", who),
			logging.String("asset-in", assetIn),
			logging.String("asset-out", assetOut),
			logging.String("amount-in", amount.String()),
			logging.String("amount-out", net.String()),
			logging.Bool("discount", discount),
		)
	}
	return nil
}

// Buy swaps assetIn for an exact amount of assetOut against the pool's
// reserves, the fee is charged on top of the incoming leg.
func (e *Engine) Buy(ctx context.Context, who, assetOut, assetIn string, amount *num.Uint, discount bool) error {
	account, ok := e.pools[types.NewAssetPair(assetIn, assetOut)]
	if !ok {
		return ErrPoolNotFound
	}
	if amount.IsZero() {
		return ErrZeroTradeAmount
	}
	reserveIn := e.ledger.FreeBalance(assetIn, account)
	reserveOut := e.ledger.FreeBalance(assetOut, account)
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return ErrZeroReserve
	}
	if amount.GTE(reserveOut) {
		return ErrInsufficientLiquidity
	}

	// amountIn = reserveIn * amount / (reserveOut - amount)
	denom := num.Zero().Sub(reserveOut, amount)
	amountIn := num.Zero().Mul(reserveIn, amount)
	amountIn.Div(amountIn, denom)
	if amountIn.IsZero() {
		return ErrZeroTradeAmount
	}

	fee := e.tradeFee(amountIn, discount)
	gross := num.Sum(amountIn, fee)

	if err := e.ledger.Transfer(who, account, assetIn, gross); err != nil {
		return err
	}
	if err := e.ledger.Transfer(account, who, assetOut, amount); err != nil {
		e.log.Panic("pool buy leg failed after reserve check", logging.Error(err))
	}

	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("pool buy executed",
			logging.String("who", who),
			logging.String("asset-out", assetOut),
			logging.String("asset-in", assetIn),
			logging.String("amount-out", amount.String()),
			logging.String("amount-in", gross.String()),
			logging.Bool("discount", discount),
		)
	}
	return nil
}

func (e *Engine) tradeFee(amount *num.Uint, discount bool) *num.Uint {
	if discount {
		return e.fees.DiscountFee(amount)
	}
	return e.fees.Fee(amount)
}
