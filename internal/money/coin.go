/*
SPDX-License-Identifier: Apache-2.0
*/

package money

import "fmt"

// Coin is an amount of one denomination.
type Coin struct {
	Denom  string `json:"denom"`
	Amount Amount `json:"amount"`
}

func NewCoin(amount Amount, denom string) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) String() string {
	return fmt.Sprintf("%d%s", c.Amount, c.Denom)
}

// Funds are the coins attached to a transaction by the host.
type Funds []Coin
