package events

import (
	"context"

	"code.peerswap.io/peerswap/types"
)

// IntentionRegistered is raised when an intention is accepted into the
// current round.
type IntentionRegistered struct {
	*Base
	i types.Intention
}

func NewIntentionRegistered(ctx context.Context, i types.Intention) *IntentionRegistered {
	return &IntentionRegistered{
		Base: newBase(ctx, IntentionRegisteredEvent),
		i:    i,
	}
}

func (e IntentionRegistered) Intention() types.Intention {
	return e.i
}

func (e IntentionRegistered) IsParty(id string) bool {
	return e.i.Party == id
}

func (e IntentionRegistered) IntentionID() uint64 {
	return e.i.ID
}
