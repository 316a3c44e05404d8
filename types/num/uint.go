package num

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint is a wrapper for a 256 bit unsigned integer, the denomination of
// every amount, balance and reserve handled by the engines.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint holding the value of the uint64 passed in.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// Zero returns a new Uint set to 0.
func Zero() *Uint {
	return NewUint(0)
}

// Min returns the smallest of the 2 numbers.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a
	}
	return b
}

// Max returns the largest of the 2 numbers.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a
	}
	return b
}

// UintFromBig constructs a new Uint from a big.Int,
// the second return value is true if an overflow happened.
func UintFromBig(b *big.Int) (*Uint, bool) {
	u, overflow := uint256.FromBig(b)
	if overflow {
		return Zero(), true
	}
	return &Uint{*u}, false
}

// UintFromDecimal constructs a new Uint from the integer part of a
// Decimal, the second return value is true if an overflow happened.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	return UintFromBig(d.BigInt())
}

// UintFromString creates a new Uint from a string interpreted in the
// given base. Returns true if the string could not be parsed or overflowed.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return Zero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString is UintFromString for hardcoded values, it panics
// on a parse failure rather than returning the overflow flag.
func MustUintFromString(str string, base int) *Uint {
	u, overflow := UintFromString(str, base)
	if overflow {
		panic(fmt.Sprintf("invalid uint string: %s", str))
	}
	return u
}

// Sum adds all the given values together, equivalent to x + y + z.
func Sum(vals ...*Uint) *Uint {
	return Zero().AddSum(vals...)
}

// Set sets z to the value of oth, returning z.
func (z *Uint) Set(oth *Uint) *Uint {
	z.u.Set(&oth.u)
	return z
}

// Uint64 returns the value as a uint64, truncating on overflow.
func (z Uint) Uint64() uint64 {
	return z.u.Uint64()
}

// BigInt returns the value as a big.Int.
func (z Uint) BigInt() *big.Int {
	return z.u.ToBig()
}

// ToDecimal returns the value as a Decimal.
func (z *Uint) ToDecimal() Decimal {
	return DecimalFromUint(z)
}

// Add sets z to x + y and returns z.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds all the given values to z, so x.AddSum(y, z) is
// equivalent to x + y + z.
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// Sub sets z to x - y and returns z.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// SubOverflow sets z to x - y and returns z along with
// whether the subtraction underflowed.
func (z *Uint) SubOverflow(x, y *Uint) (*Uint, bool) {
	_, ok := z.u.SubOverflow(&x.u, &y.u)
	return z, ok
}

// Delta sets z to the absolute difference of x and y, the second
// return value is true when y was the larger of the two.
func (z *Uint) Delta(x, y *Uint) (*Uint, bool) {
	if y.GT(x) {
		_ = z.Sub(y, x)
		return z, true
	}
	_ = z.Sub(x, y)
	return z, false
}

// Mul sets z to x * y and returns z.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// Div sets z to x / y and returns z.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

// LT returns z < oth.
func (z Uint) LT(oth *Uint) bool {
	return z.u.Lt(&oth.u)
}

// LTE returns z <= oth.
func (z Uint) LTE(oth *Uint) bool {
	return z.u.Lt(&oth.u) || z.u.Eq(&oth.u)
}

// EQ returns z == oth.
func (z Uint) EQ(oth *Uint) bool {
	return z.u.Eq(&oth.u)
}

// EQUint64 returns z == oth.
func (z Uint) EQUint64(oth uint64) bool {
	return z.u.Eq(uint256.NewInt(oth))
}

// NEQ returns z != oth.
func (z Uint) NEQ(oth *Uint) bool {
	return !z.u.Eq(&oth.u)
}

// GT returns z > oth.
func (z Uint) GT(oth *Uint) bool {
	return z.u.Gt(&oth.u)
}

// GTE returns z >= oth.
func (z Uint) GTE(oth *Uint) bool {
	return z.u.Gt(&oth.u) || z.u.Eq(&oth.u)
}

// IsZero returns whether z == 0.
func (z Uint) IsZero() bool {
	return z.u.IsZero()
}

// Copy sets z to the value of x without sharing storage, returning z.
func (z *Uint) Copy(x *Uint) *Uint {
	z.u = x.u
	return z
}

// Clone returns a copy of z.
func (z Uint) Clone() *Uint {
	return &Uint{z.u}
}

// String returns the stored value as a base 10 string.
func (z Uint) String() string {
	return z.u.ToBig().String()
}

// Format implements fmt.Formatter.
func (z Uint) Format(s fmt.State, ch rune) {
	z.u.Format(s, ch)
}

// Bytes returns the value as a big endian [32]byte array.
func (z Uint) Bytes() [32]byte {
	return z.u.Bytes32()
}
