/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// singleCoin returns the attached amount, requiring exactly one non-zero coin of denom.
func singleCoin(funds money.Funds, denom string) (money.Amount, error) {
	switch len(funds) {
	case 0:
		return 0, marketerrors.ErrEmptyFunds
	case 1:
	default:
		return 0, marketerrors.ErrMultipleDenoms
	}
	coin := funds[0]
	if coin.Denom != denom {
		return 0, fmt.Errorf("%w: got %q, want %q", marketerrors.ErrWrongDenom, coin.Denom, denom)
	}
	if coin.Amount.IsZero() {
		return 0, marketerrors.ErrZeroAmount
	}
	return coin.Amount, nil
}

// pay appends a currency transfer after the host deduction. Zero transfers are dropped.
func (m *Market) pay(res *Response, recipient string, amount money.Amount, denom string) error {
	if amount.IsZero() {
		return nil
	}
	coin, err := m.deductor.Deduct(money.NewCoin(amount, denom))
	if err != nil {
		return fmt.Errorf("failed to apply deduction to %d%s: %w", amount, denom, err)
	}
	if coin.Amount.IsZero() {
		return nil
	}
	res.add(transferCurrency(recipient, coin))
	return nil
}

// remaining is what must still be attached on top of escrowed to reach target.
func remaining(target, escrowed money.Amount) money.Amount {
	if escrowed >= target {
		return 0
	}
	return target - escrowed
}
