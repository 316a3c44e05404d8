package events

import (
	"context"

	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"
)

// AMMError is the shared payload of the AMM sell/buy failure events,
// carrying the underlying adapter error for off-system auditing.
type AMMError struct {
	*Base
	party       string
	asset       string
	amount      *num.Uint
	direction   types.IntentionType
	intentionID uint64
	err         error
}

// NewAMMSellError is raised when the AMM adapter rejects a sell
// placed on behalf of an intention.
func NewAMMSellError(
	ctx context.Context,
	party, asset string,
	amount *num.Uint,
	direction types.IntentionType,
	intentionID uint64,
	err error,
) *AMMError {
	return newAMMError(ctx, AMMSellErrorEvent, party, asset, amount, direction, intentionID, err)
}

// NewAMMBuyError is raised when the AMM adapter rejects a buy
// placed on behalf of an intention.
func NewAMMBuyError(
	ctx context.Context,
	party, asset string,
	amount *num.Uint,
	direction types.IntentionType,
	intentionID uint64,
	err error,
) *AMMError {
	return newAMMError(ctx, AMMBuyErrorEvent, party, asset, amount, direction, intentionID, err)
}

func newAMMError(
	ctx context.Context,
	et Type,
	party, asset string,
	amount *num.Uint,
	direction types.IntentionType,
	intentionID uint64,
	err error,
) *AMMError {
	return &AMMError{
		Base:        newBase(ctx, et),
		party:       party,
		asset:       asset,
		amount:      amount.Clone(),
		direction:   direction,
		intentionID: intentionID,
		err:         err,
	}
}

func (e AMMError) Party() string { return e.party }

func (e AMMError) Asset() string { return e.asset }

func (e AMMError) Amount() *num.Uint { return e.amount.Clone() }

func (e AMMError) Direction() types.IntentionType { return e.direction }

func (e AMMError) IntentionID() uint64 { return e.intentionID }

func (e AMMError) Err() error { return e.err }
