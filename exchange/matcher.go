package exchange

import (
	"context"
	"sort"

	"code.peerswap.io/peerswap/logging"
	"code.peerswap.io/peerswap/types"
	"code.peerswap.io/peerswap/types/num"
)

// matcher is the greedy batch matcher. For every A side intention, in
// descending amount order, it accumulates B side intentions whose
// amounts fit under the A amount in a single forward pass. This is an
// approximation chosen for throughput, not a global optimum: a
// combination that could net exactly may be left unmatched.
type matcher struct {
	log *logging.Logger
}

// NewMatcher returns the default greedy matcher.
func NewMatcher(log *logging.Logger) IntentionMatcher {
	return &matcher{
		log: log.Named("matcher"),
	}
}

// Group works on copies of both buckets, the registry's state is never
// mutated here. It reports false when any resolution did not fully
// settle, outcomes are otherwise only observable through balances and
// events.
func (m *matcher) Group(
	ctx context.Context,
	pairAccount string,
	aSells, bSells []*types.Intention,
	res IntentionResolver,
) bool {
	aCopy := sortedByAmountDesc(aSells)
	bCopy := sortedByAmountDesc(bSells)

	ok := true
	for _, intention := range aCopy {
		var matched []*types.Intention
		total := num.Zero()

		idx := 0
		for idx < len(bCopy) {
			candidate := bCopy[idx]
			if num.Sum(total, candidate.Amount).LTE(intention.Amount) {
				matched = append(matched, candidate)
				total.AddSum(candidate.Amount)
				bCopy = append(bCopy[:idx], bCopy[idx+1:]...)
			}
			// the scan always advances, whether or not the candidate
			// was consumed
			idx++
		}

		if !res.Resolve(ctx, pairAccount, intention, matched) {
			ok = false
		}
	}

	// B side intentions never selected fall through to the AMM one by
	// one, last remaining first
	for len(bCopy) > 0 {
		last := bCopy[len(bCopy)-1]
		bCopy = bCopy[:len(bCopy)-1]
		if !res.ResolveSingle(ctx, last) {
			ok = false
		}
	}
	return ok
}

// sortedByAmountDesc copies the bucket and orders it by descending
// amount, ties broken by intention id so equal amounts keep their
// submission order.
func sortedByAmountDesc(bucket []*types.Intention) []*types.Intention {
	cpy := make([]*types.Intention, len(bucket))
	copy(cpy, bucket)
	sort.Slice(cpy, func(i, j int) bool {
		if cpy[i].Amount.EQ(cpy[j].Amount) {
			return cpy[i].ID < cpy[j].ID
		}
		return cpy[i].Amount.GT(cpy[j].Amount)
	})
	return cpy
}
