package num

import (
	"github.com/shopspring/decimal"
)

// Decimal is the arbitrary precision decimal used for price maths
// before results are floored back into Uint amounts.
type Decimal = decimal.Decimal

func NewDecimalFromFloat(f float64) Decimal {
	return decimal.NewFromFloat(f)
}

func DecimalFromUint(u *Uint) Decimal {
	return decimal.NewFromBigInt(u.BigInt(), 0)
}

func DecimalFromInt64(i int64) Decimal {
	return decimal.NewFromInt(i)
}

func DecimalZero() Decimal {
	return decimal.Zero
}

// MustDecimalFromString is for hardcoded values only, it panics when
// the string does not parse.
func MustDecimalFromString(f string) Decimal {
	d, err := decimal.NewFromString(f)
	if err != nil {
		panic(err)
	}
	return d
}

// MinD returns the smallest of the 2 decimals.
func MinD(a, b Decimal) Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// MaxD returns the largest of the 2 decimals.
func MaxD(a, b Decimal) Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
