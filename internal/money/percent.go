/*
SPDX-License-Identifier: Apache-2.0
*/

package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	zeroPercent = decimal.Zero
	onePercent  = decimal.New(1, 0)
)

// Percent is an exact ratio stored as a decimal fraction: 5% is 0.05.
// It never goes through floating point so every peer computes the same result.
type Percent struct {
	d decimal.Decimal
}

// NewPercent returns whole/100.
func NewPercent(whole int64) Percent {
	return Percent{d: decimal.New(whole, -2)}
}

// ParsePercent parses a decimal fraction such as "0.05".
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percent{d: d}, nil
}

// MustParsePercent is ParsePercent for constants.
func MustParsePercent(s string) Percent {
	p, err := ParsePercent(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Of returns a*p rounded down. The product is computed exactly before truncation.
func (p Percent) Of(a Amount) (Amount, error) {
	product := decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(a)), 0).Mul(p.d).Floor()
	v := product.BigInt()
	if v.Sign() < 0 {
		return 0, fmt.Errorf("%w: %s of %d", ErrUnderflow, p, a)
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s of %d", ErrOverflow, p, a)
	}
	return Amount(v.Uint64()), nil
}

// Add returns p+q.
func (p Percent) Add(q Percent) Percent {
	return Percent{d: p.d.Add(q.d)}
}

func (p Percent) IsZero() bool {
	return p.d.IsZero()
}

// IsFraction reports whether 0 <= p <= 100%.
func (p Percent) IsFraction() bool {
	return p.d.GreaterThanOrEqual(zeroPercent) && p.d.LessThanOrEqual(onePercent)
}

// IsPositiveFraction reports whether 0 < p <= 100%.
func (p Percent) IsPositiveFraction() bool {
	return p.d.GreaterThan(zeroPercent) && p.d.LessThanOrEqual(onePercent)
}

func (p Percent) GreaterThan(q Percent) bool {
	return p.d.GreaterThan(q.d)
}

func (p Percent) Equal(q Percent) bool {
	return p.d.Equal(q.d)
}

func (p Percent) String() string {
	return p.d.String()
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.d.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	return p.d.UnmarshalJSON(data)
}
