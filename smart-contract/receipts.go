/*
SPDX-License-Identifier: Apache-2.0
*/

package auction

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// AssetReceipt is what an asset chaincode answers to TransferReceipt: who holds the asset now
// and who handed it over.
type AssetReceipt struct {
	Owner         string `json:"owner"`
	PreviousOwner string `json:"previous_owner"`
}

// DepositReceipt is what the reward token chaincode answers to Deposit.
type DepositReceipt struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Amount money.Amount `json:"amount"`
}

// confirmAssetTransfer asks assetContract whether sender handed assetID over to escrow.
// A chaincode-to-chaincode call keeps the submitter's identity, so the asset contract's word is
// the only proof that the transfer happened.
func confirmAssetTransfer(stub shim.ChaincodeStubInterface, escrow string, assetContract string, assetID string, sender string) error {
	var receipt AssetReceipt
	if errQuery := queryChaincode(stub, assetContract, "TransferReceipt", &receipt, assetID); errQuery != nil {
		return fmt.Errorf("%w: %v", marketerrors.ErrTransferNotConfirmed, errQuery)
	}
	if receipt.Owner != escrow {
		return fmt.Errorf("%w: %s %s is held by %q", marketerrors.ErrTransferNotConfirmed, assetContract, assetID, receipt.Owner)
	}
	if receipt.PreviousOwner != sender {
		return fmt.Errorf("%w: %s %s was sent by %q", marketerrors.ErrTransferNotConfirmed, assetContract, assetID, receipt.PreviousOwner)
	}
	return nil
}

// confirmDeposit asks the reward token chaincode for depositID and returns its amount when
// sender paid it to escrow.
func confirmDeposit(stub shim.ChaincodeStubInterface, escrow string, token string, depositID string, sender string) (money.Amount, error) {
	if depositID == "" {
		return 0, fmt.Errorf("%w: no deposit id", marketerrors.ErrDepositNotConfirmed)
	}
	var receipt DepositReceipt
	if errQuery := queryChaincode(stub, token, "Deposit", &receipt, depositID); errQuery != nil {
		return 0, fmt.Errorf("%w: %v", marketerrors.ErrDepositNotConfirmed, errQuery)
	}
	if receipt.To != escrow {
		return 0, fmt.Errorf("%w: deposit %s was paid to %q", marketerrors.ErrDepositNotConfirmed, depositID, receipt.To)
	}
	if receipt.From != sender {
		return 0, fmt.Errorf("%w: deposit %s was paid by %q", marketerrors.ErrDepositNotConfirmed, depositID, receipt.From)
	}
	return receipt.Amount, nil
}
