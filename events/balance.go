package events

import (
	"context"

	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"
)

// InsufficientBalance is raised during resolution when a party fails
// the balance pre-check for a direct trade leg. The resolution it
// belongs to is aborted, earlier legs stay committed.
type InsufficientBalance struct {
	*Base
	party       string
	asset       string
	amount      *num.Uint
	direction   types.IntentionType
	intentionID uint64
	err         error
}

func NewInsufficientBalance(
	ctx context.Context,
	party, asset string,
	amount *num.Uint,
	direction types.IntentionType,
	intentionID uint64,
	err error,
) *InsufficientBalance {
	return &InsufficientBalance{
		Base:        newBase(ctx, InsufficientBalanceEvent),
		party:       party,
		asset:       asset,
		amount:      amount.Clone(),
		direction:   direction,
		intentionID: intentionID,
		err:         err,
	}
}

func (e InsufficientBalance) Party() string { return e.party }

func (e InsufficientBalance) Asset() string { return e.asset }

func (e InsufficientBalance) Amount() *num.Uint { return e.amount.Clone() }

func (e InsufficientBalance) Direction() types.IntentionType { return e.direction }

func (e InsufficientBalance) IntentionID() uint64 { return e.intentionID }

func (e InsufficientBalance) Err() error { return e.err }
