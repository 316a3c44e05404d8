package events

import (
	"context"

	"code.peerswap.io/peerswap/types/num"
)

// DirectTrade is raised for every peer-to-peer settlement between two
// matched intentions, carrying both legs and the fees paid to the pool.
type DirectTrade struct {
	*Base
	partyA      string
	partyB      string
	assetA      string
	assetB      string
	amountA     *num.Uint
	amountB     *num.Uint
	feeA        *num.Uint
	feeB        *num.Uint
	intentionA  uint64
	intentionB  uint64
	poolAccount string
}

func NewDirectTrade(
	ctx context.Context,
	partyA, partyB, assetA, assetB string,
	amountA, amountB, feeA, feeB *num.Uint,
	intentionA, intentionB uint64,
	poolAccount string,
) *DirectTrade {
	return &DirectTrade{
		Base:        newBase(ctx, DirectTradeEvent),
		partyA:      partyA,
		partyB:      partyB,
		assetA:      assetA,
		assetB:      assetB,
		amountA:     amountA.Clone(),
		amountB:     amountB.Clone(),
		feeA:        feeA.Clone(),
		feeB:        feeB.Clone(),
		intentionA:  intentionA,
		intentionB:  intentionB,
		poolAccount: poolAccount,
	}
}

func (e DirectTrade) IsParty(id string) bool {
	return e.partyA == id || e.partyB == id
}

func (e DirectTrade) PartyA() string { return e.partyA }

func (e DirectTrade) PartyB() string { return e.partyB }

func (e DirectTrade) AssetA() string { return e.assetA }

func (e DirectTrade) AssetB() string { return e.assetB }

// AmountA is the asset-A leg net of fee, paid by party A to party B.
func (e DirectTrade) AmountA() *num.Uint { return e.amountA.Clone() }

// AmountB is the asset-B leg net of fee, paid by party B to party A.
func (e DirectTrade) AmountB() *num.Uint { return e.amountB.Clone() }

func (e DirectTrade) FeeA() *num.Uint { return e.feeA.Clone() }

func (e DirectTrade) FeeB() *num.Uint { return e.feeB.Clone() }

func (e DirectTrade) IntentionA() uint64 { return e.intentionA }

func (e DirectTrade) IntentionB() uint64 { return e.intentionB }

func (e DirectTrade) PoolAccount() string { return e.poolAccount }
