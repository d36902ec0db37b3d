/*
SPDX-License-Identifier: Apache-2.0
*/

package auction

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/market"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

// AssetEnvelope is the payload an asset chaincode forwards with a transferred asset.
// Exactly one field must be set.
type AssetEnvelope struct {
	CreateAuction *market.CreateAuction `json:"create_auction,omitempty"`
}

// TokenEnvelope is the payload the reward token forwards with a deposit.
// Exactly one field must be set.
type TokenEnvelope struct {
	RegisterGatedSale *GatedSaleRegistration `json:"register_gated_sale,omitempty"`
}

type GatedSaleRegistration struct {
	AuctionID uint64 `json:"auction_id"`
}

// decodeAssetEnvelope turns an asset transfer notification into the operation it asks for.
func decodeAssetEnvelope(msgJSON string, sender string, assetID string) (market.Msg, error) {
	var envelope AssetEnvelope
	if errDecode := decodeStrict(msgJSON, &envelope); errDecode != nil {
		return nil, fmt.Errorf("could not decode asset message: %w", errDecode)
	}
	if envelope.CreateAuction == nil {
		return nil, fmt.Errorf("%w: asset message names no operation", marketerrors.ErrInvalidMessage)
	}
	msg := *envelope.CreateAuction
	msg.Creator = sender
	msg.AssetID = assetID
	return msg, nil
}

// decodeTokenEnvelope turns a token deposit notification into the operation it asks for.
// The amount is filled in once the deposit is confirmed.
func decodeTokenEnvelope(msgJSON string, sender string, depositID string) (market.RegisterGatedSale, error) {
	var envelope TokenEnvelope
	if errDecode := decodeStrict(msgJSON, &envelope); errDecode != nil {
		return market.RegisterGatedSale{}, fmt.Errorf("could not decode token message: %w", errDecode)
	}
	if envelope.RegisterGatedSale == nil {
		return market.RegisterGatedSale{}, fmt.Errorf("%w: token message names no operation", marketerrors.ErrInvalidMessage)
	}
	return market.RegisterGatedSale{
		AuctionID: envelope.RegisterGatedSale.AuctionID,
		Sender:    sender,
		DepositID: depositID,
	}, nil
}
