package types

import (
	"fmt"

	"code.peerswap.io/peerswap/types/num"
)

// IntentionType is the direction of an intention, seen from the
// submitted amount: SELL amounts are denominated in the asset sold,
// BUY amounts in the asset bought.
type IntentionType int

const (
	IntentionTypeSell IntentionType = iota
	IntentionTypeBuy
)

func (t IntentionType) String() string {
	switch t {
	case IntentionTypeSell:
		return "SELL"
	case IntentionTypeBuy:
		return "BUY"
	}
	return "UNKNOWN"
}

// Intention is a single round's pending trade order. It lives for
// exactly one round: created at submission, consumed exactly once at
// round end, never persisted.
type Intention struct {
	ID        uint64
	Party     string
	AssetSell string
	AssetBuy  string
	Amount    *num.Uint
	Type      IntentionType
	Discount  bool
}

// Clone returns a deep copy, the amount does not share storage.
func (i Intention) Clone() *Intention {
	cpy := i
	cpy.Amount = i.Amount.Clone()
	return &cpy
}

func (i Intention) String() string {
	return fmt.Sprintf("%d %s %s %s->%s %s", i.ID, i.Party, i.Type.String(), i.AssetSell, i.AssetBuy, i.Amount.String())
}

// AssetPair identifies an unordered asset pair, the two assets are
// held in lexicographic order so (A,B) and (B,A) map to the same pair.
type AssetPair struct {
	AssetA string
	AssetB string
}

// NewAssetPair normalises the two assets into an unordered pair.
func NewAssetPair(a, b string) AssetPair {
	if b < a {
		a, b = b, a
	}
	return AssetPair{AssetA: a, AssetB: b}
}

func (p AssetPair) String() string {
	return p.AssetA + "/" + p.AssetB
}

// OrderedPair keys one direction bucket: intentions selling AssetSell
// for AssetBuy.
type OrderedPair struct {
	AssetSell string
	AssetBuy  string
}
