/*
SPDX-License-Identifier: Apache-2.0
*/

package market

//go:generate mockgen -source=resolver.go -destination=mock_resolver.go -package=market

import (
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// MinterResolver finds the principal that minted an asset. Royalties are keyed by it.
type MinterResolver interface {
	Minter(assetContract, assetID string) (string, error)
}

// Deductor is the host currency system's tax hook. It returns what will actually be sent.
type Deductor interface {
	Deduct(coin money.Coin) (money.Coin, error)
}

type noDeduction struct{}

func (noDeduction) Deduct(coin money.Coin) (money.Coin, error) {
	return coin, nil
}

type noMinter struct{}

func (noMinter) Minter(string, string) (string, error) {
	return "", nil
}
