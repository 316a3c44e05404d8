package fee

import (
	"github.com/pkg/errors"

	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/types/num"
)

// ErrInvalidFeeFactor signals a zero denominator in the configured factors.
var ErrInvalidFeeFactor = errors.New("invalid fee factor")

type factor struct {
	numerator   *num.Uint
	denominator *num.Uint
}

// Engine computes the amount retained as a fee on a transfer. The fee
// is always rounded down, a transfer smaller than the factor
// denominator pays no fee.
type Engine struct {
	log *logging.Logger
	cfg Config

	exchange factor
	discount factor
}

// New returns a fee engine with the factors from the given config.
func New(log *logging.Logger, cfg Config) (*Engine, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	e := &Engine{
		log: log,
	}
	if err := e.loadFactors(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// ReloadConf updates the internal configuration of the fee engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	if err := e.loadFactors(cfg); err != nil {
		e.log.Error("keeping previous fee factors", logging.Error(err))
	}
}

func (e *Engine) loadFactors(cfg Config) error {
	if cfg.ExchangeFeeDenominator == 0 || cfg.DiscountFeeDenominator == 0 {
		return ErrInvalidFeeFactor
	}
	e.exchange = factor{
		numerator:   num.NewUint(cfg.ExchangeFeeNumerator),
		denominator: num.NewUint(cfg.ExchangeFeeDenominator),
	}
	e.discount = factor{
		numerator:   num.NewUint(cfg.DiscountFeeNumerator),
		denominator: num.NewUint(cfg.DiscountFeeDenominator),
	}
	e.cfg = cfg
	return nil
}

// Fee returns the exchange fee for the given transfer amount.
func (e *Engine) Fee(amount *num.Uint) *num.Uint {
	return apply(amount, e.exchange)
}

// DiscountFee returns the reduced fee applied to discounted trades.
func (e *Engine) DiscountFee(amount *num.Uint) *num.Uint {
	return apply(amount, e.discount)
}

func apply(amount *num.Uint, f factor) *num.Uint {
	fee := num.Zero().Mul(amount, f.numerator)
	return fee.Div(fee, f.denominator)
}
