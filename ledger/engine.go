package ledger

import (
	"github.com/pkg/errors"

	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/types/num"
)

// ErrInsufficientFunds signals the source account cannot cover the
// transfer amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Engine is the in-memory multi-asset balance ledger. Rounds are
// processed on a single goroutine, so balances read immediately before
// a transfer stay valid until the transfer is applied.
type Engine struct {
	log *logging.Logger
	cfg Config

	// account -> asset -> balance
	balances map[string]map[string]*num.Uint
}

// New instantiates a new ledger engine.
func New(log *logging.Logger, cfg Config) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Engine{
		log:      log,
		cfg:      cfg,
		balances: map[string]map[string]*num.Uint{},
	}
}

// ReloadConf updates the internal configuration of the ledger engine.
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

// Deposit credits an account with the given amount, creating the
// account entry on first use.
func (e *Engine) Deposit(asset, account string, amount *num.Uint) {
	acc, ok := e.balances[account]
	if !ok {
		acc = map[string]*num.Uint{}
		e.balances[account] = acc
	}
	bal, ok := acc[asset]
	if !ok {
		bal = num.Zero()
		acc[asset] = bal
	}
	bal.AddSum(amount)
}

// FreeBalance returns the balance of the account in the given asset,
// zero for accounts or assets never seen. The returned value does not
// share storage with the ledger.
func (e *Engine) FreeBalance(asset, account string) *num.Uint {
	acc, ok := e.balances[account]
	if !ok {
		return num.Zero()
	}
	bal, ok := acc[asset]
	if !ok {
		return num.Zero()
	}
	return bal.Clone()
}

// Transfer moves amount of asset between the two accounts atomically:
// either both balances are updated or neither is. A zero amount is a
// valid no-op transfer.
func (e *Engine) Transfer(from, to, asset string, amount *num.Uint) error {
	if amount.IsZero() {
		return nil
	}
	fromBal := e.FreeBalance(asset, from)
	if fromBal.LT(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "account %s asset %s", from, asset)
	}
	// a self transfer is balance neutral, only the funds check applies
	if from == to {
		return nil
	}
	e.balances[from][asset].Sub(fromBal, amount)
	e.Deposit(asset, to, amount)

	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("transfer applied",
			logging.String("from", from),
			logging.String("to", to),
			logging.String("asset", asset),
			logging.String("amount", amount.String()),
		)
	}
	return nil
}
