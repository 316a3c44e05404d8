package exchange

import (
	"context"

	"code.peerswap.io/peerswap/events"
	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/metrics"
	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"
)

// Resolve settles one intention against the matched bucket the matcher
// selected for it. Pool reserves are read once up front, the
// single-threaded round model keeps them valid for the whole call.
//
// Every counter is compared against the remaining amount at the AMM
// quote: the smaller side is fully settled peer to peer, the excess on
// either side goes back to the pool. Counters left in the bucket once
// the intention is exhausted trade their full amount against the pool,
// they are no longer on the matcher's unmatched list and would
// otherwise be lost for the round. A failed balance pre-check or AMM
// call aborts the resolution, legs already transferred for earlier
// counters in the bucket stay committed.
func (e *Engine) Resolve(
	ctx context.Context,
	pairAccount string,
	intention *types.Intention,
	matched []*types.Intention,
) bool {
	reserveSell := e.ledger.FreeBalance(intention.AssetSell, pairAccount)
	reserveBuy := e.ledger.FreeBalance(intention.AssetBuy, pairAccount)

	remaining := intention.Amount.Clone()

	for idx, counter := range matched {
		a := remaining.Clone()
		b := counter.Amount

		// quotedA: a of the sell asset priced in the buy asset
		// quotedB: b of the buy asset priced in the sell asset
		quotedA, err := e.amm.SpotPrice(reserveSell, reserveBuy, a)
		if err != nil {
			// quoting only fails on a drained pool, which pool
			// destruction is meant to rule out
			metrics.ResolutionFailureInc()
			return false
		}
		quotedB, err := e.amm.SpotPrice(reserveBuy, reserveSell, b)
		if err != nil {
			metrics.ResolutionFailureInc()
			return false
		}

		switch {
		case a.GT(quotedB):
			// the intention covers the whole counter, settle the
			// counter fully and carry the rest forward
			if !e.checkBalance(ctx, intention, intention.AssetSell, quotedB) ||
				!e.checkBalance(ctx, counter, intention.AssetBuy, b) {
				return false
			}
			e.directTrade(ctx, pairAccount, intention, counter, quotedB, b)
			remaining.Sub(remaining, quotedB)

		case a.LT(quotedB):
			// the counter is bigger, its unsatisfied rest goes to the
			// AMM on the counter's behalf before the peer legs settle
			if !e.checkBalance(ctx, intention, intention.AssetSell, a) ||
				!e.checkBalance(ctx, counter, intention.AssetBuy, quotedA) {
				return false
			}
			rest := num.Zero().Sub(b, quotedA)
			if !e.ammExchange(ctx, counter.Party, counter.Type, counter.ID, counter.AssetSell, counter.AssetBuy, rest, counter.Discount) {
				metrics.ResolutionFailureInc()
				return false
			}
			e.directTrade(ctx, pairAccount, intention, counter, a, quotedA)
			remaining = num.Zero()

		default:
			// exact match at quote
			e.directTrade(ctx, pairAccount, intention, counter, a, b)
			remaining = num.Zero()
		}

		if remaining.IsZero() {
			// the matcher already took the counters beyond this point
			// off its unmatched list, trading their full amount against
			// the pool is their only path to settlement
			return e.resolveRest(ctx, matched[idx+1:])
		}
	}

	// whatever the bucket did not absorb trades against the pool,
	// preserving the intention's direction and discount
	if !remaining.IsZero() {
		leftover := intention.Clone()
		leftover.Amount = remaining
		return e.ResolveSingle(ctx, leftover)
	}
	return true
}

// resolveRest settles the counters an exhausted intention no longer
// needs, each trading its full amount against the pool with direction
// and discount preserved.
func (e *Engine) resolveRest(ctx context.Context, counters []*types.Intention) bool {
	ok := true
	for _, counter := range counters {
		if !e.ResolveSingle(ctx, counter) {
			ok = false
		}
	}
	return ok
}

// ResolveSingle routes the full intention amount to the AMM, the
// degenerate case of a resolution with an empty matched bucket.
func (e *Engine) ResolveSingle(ctx context.Context, intention *types.Intention) bool {
	return e.ammExchange(
		ctx,
		intention.Party,
		intention.Type,
		intention.ID,
		intention.AssetSell,
		intention.AssetBuy,
		intention.Amount,
		intention.Discount,
	)
}

// checkBalance verifies the intention's owner can cover amount of the
// asset, emitting an InsufficientBalance observation when it cannot.
func (e *Engine) checkBalance(ctx context.Context, in *types.Intention, asset string, amount *num.Uint) bool {
	if e.ledger.FreeBalance(asset, in.Party).GTE(amount) {
		return true
	}
	e.broker.Send(events.NewInsufficientBalance(
		ctx, in.Party, asset, amount, in.Type, in.ID, ErrInsufficientAssetBalance,
	))
	metrics.ResolutionFailureInc()
	return false
}

// directTrade commits the two legs of a peer to peer settlement, fees
// on both legs go to the pool account. Balance checks have been done,
// a transfer failure here is an invariant violation, not a user error.
func (e *Engine) directTrade(
	ctx context.Context,
	pairAccount string,
	intention, counter *types.Intention,
	amountA, amountB *num.Uint,
) {
	feeA := e.fees.Fee(amountA)
	feeB := e.fees.Fee(amountB)
	netA := num.Zero().Sub(amountA, feeA)
	netB := num.Zero().Sub(amountB, feeB)

	e.mustTransfer(intention.Party, counter.Party, intention.AssetSell, netA)
	e.mustTransfer(counter.Party, intention.Party, intention.AssetBuy, netB)
	e.mustTransfer(intention.Party, pairAccount, intention.AssetSell, feeA)
	e.mustTransfer(counter.Party, pairAccount, intention.AssetBuy, feeB)

	e.broker.Send(events.NewDirectTrade(
		ctx,
		intention.Party, counter.Party,
		intention.AssetSell, intention.AssetBuy,
		netA, netB, feeA, feeB,
		intention.ID, counter.ID,
		pairAccount,
	))
	metrics.DirectTradeInc()
}

func (e *Engine) mustTransfer(from, to, asset string, amount *num.Uint) {
	if err := e.ledger.Transfer(from, to, asset, amount); err != nil {
		e.log.Panic("direct transfer failed after balance checks",
			logging.String("from", from),
			logging.String("to", to),
			logging.String("asset", asset),
			logging.String("amount", amount.String()),
			logging.Error(err),
		)
	}
}

// ammExchange dispatches to the AMM buy or sell entry point depending
// on the intention's direction. Failures are observed, never retried.
func (e *Engine) ammExchange(
	ctx context.Context,
	who string,
	direction types.IntentionType,
	intentionID uint64,
	assetSell, assetBuy string,
	amount *num.Uint,
	discount bool,
) bool {
	switch direction {
	case types.IntentionTypeSell:
		if err := e.amm.Sell(ctx, who, assetSell, assetBuy, amount, discount); err != nil {
			e.broker.Send(events.NewAMMSellError(ctx, who, assetSell, amount, direction, intentionID, err))
			return false
		}
	case types.IntentionTypeBuy:
		if err := e.amm.Buy(ctx, who, assetBuy, assetSell, amount, discount); err != nil {
			e.broker.Send(events.NewAMMBuyError(ctx, who, assetBuy, amount, direction, intentionID, err))
			return false
		}
	}
	metrics.AMMTradeInc(direction.String())
	return true
}
