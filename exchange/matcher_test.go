package exchange_test

import (
	"context"
	"fmt"
	"testing"

	"code.peerswap.io/peerswap/exchange"
	"code.peerswap.io/peerswap/exchange/mocks"
	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMatcher(t *testing.T) {
	t.Run("groups greedily in descending amount order", testMatcherGreedyGrouping)
	t.Run("unselected counters fall through one by one", testMatcherLeftovers)
	t.Run("reports failed resolutions", testMatcherReportsFailure)
	t.Run("leaves the buckets untouched", testMatcherDoesNotMutate)
}

func sellIntention(id uint64, amount uint64) *types.Intention {
	return &types.Intention{
		ID:        id,
		Party:     fmt.Sprintf("party-%d", id),
		AssetSell: "Y",
		AssetBuy:  "X",
		Amount:    num.NewUint(amount),
		Type:      types.IntentionTypeSell,
	}
}

// withIDs matches a bucket of intentions by their ids, in order.
type withIDs []uint64

func (w withIDs) Matches(x interface{}) bool {
	bucket, ok := x.([]*types.Intention)
	if !ok || len(bucket) != len(w) {
		return false
	}
	for i, in := range bucket {
		if in.ID != w[i] {
			return false
		}
	}
	return true
}

func (w withIDs) String() string {
	return fmt.Sprintf("intentions with ids %v", []uint64(w))
}

func testMatcherGreedyGrouping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := exchange.NewMatcher(logging.NewTestLogger())
	res := mocks.NewMockIntentionResolver(ctrl)

	aSells := []*types.Intention{
		sellIntention(0, 30),
		sellIntention(1, 100),
		sellIntention(2, 50),
	}
	bSells := []*types.Intention{
		sellIntention(3, 40),
		sellIntention(4, 10),
		sellIntention(5, 60),
		sellIntention(6, 25),
	}

	// largest first: 100 takes 60 and 25, the scan skipping 40 as it
	// advances past the removal; 50 takes 40 but skips past 10 the same
	// way; 30 takes 10
	gomock.InOrder(
		res.EXPECT().Resolve(gomock.Any(), "acc", aSells[1], withIDs{5, 6}).Return(true),
		res.EXPECT().Resolve(gomock.Any(), "acc", aSells[2], withIDs{3}).Return(true),
		res.EXPECT().Resolve(gomock.Any(), "acc", aSells[0], withIDs{4}).Return(true),
	)

	ok := m.Group(context.Background(), "acc", aSells, bSells, res)
	assert.True(t, ok)
}

func testMatcherLeftovers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := exchange.NewMatcher(logging.NewTestLogger())
	res := mocks.NewMockIntentionResolver(ctrl)

	t.Run("a counter too big for every intention", func(t *testing.T) {
		aSells := []*types.Intention{sellIntention(0, 50)}
		bSells := []*types.Intention{
			sellIntention(1, 80),
			sellIntention(2, 30),
		}
		gomock.InOrder(
			res.EXPECT().Resolve(gomock.Any(), "acc", aSells[0], withIDs{2}).Return(true),
			res.EXPECT().ResolveSingle(gomock.Any(), bSells[0]).Return(true),
		)
		assert.True(t, m.Group(context.Background(), "acc", aSells, bSells, res))
	})

	t.Run("an empty intention side", func(t *testing.T) {
		bSells := []*types.Intention{
			sellIntention(3, 10),
			sellIntention(4, 20),
		}
		// drained from the tail of the descending order, smallest first
		gomock.InOrder(
			res.EXPECT().ResolveSingle(gomock.Any(), bSells[0]).Return(true),
			res.EXPECT().ResolveSingle(gomock.Any(), bSells[1]).Return(true),
		)
		assert.True(t, m.Group(context.Background(), "acc", nil, bSells, res))
	})
}

func testMatcherReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := exchange.NewMatcher(logging.NewTestLogger())
	res := mocks.NewMockIntentionResolver(ctrl)

	aSells := []*types.Intention{
		sellIntention(0, 100),
		sellIntention(1, 50),
	}
	bSells := []*types.Intention{sellIntention(2, 90)}

	// one failed resolution does not stop the remaining groups
	gomock.InOrder(
		res.EXPECT().Resolve(gomock.Any(), "acc", aSells[0], withIDs{2}).Return(false),
		res.EXPECT().Resolve(gomock.Any(), "acc", aSells[1], withIDs{}).Return(true),
	)

	assert.False(t, m.Group(context.Background(), "acc", aSells, bSells, res))
}

func testMatcherDoesNotMutate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := exchange.NewMatcher(logging.NewTestLogger())
	res := mocks.NewMockIntentionResolver(ctrl)
	res.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(true)
	res.EXPECT().ResolveSingle(gomock.Any(), gomock.Any()).AnyTimes().Return(true)

	aSells := []*types.Intention{
		sellIntention(0, 10),
		sellIntention(1, 90),
	}
	bSells := []*types.Intention{
		sellIntention(2, 20),
		sellIntention(3, 5),
	}

	m.Group(context.Background(), "acc", aSells, bSells, res)

	// submission order preserved in both buckets
	assert.EqualValues(t, 0, aSells[0].ID)
	assert.EqualValues(t, 1, aSells[1].ID)
	assert.EqualValues(t, 2, bSells[0].ID)
	assert.EqualValues(t, 3, bSells[1].ID)
}
