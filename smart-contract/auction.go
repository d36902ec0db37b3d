/*
SPDX-License-Identifier: Apache-2.0
*/

package auction

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/sirupsen/logrus"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/market"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

// SmartContract is the NFT marketplace: ascending auctions with reserve, instant buy and
// gated sales, settled into currency, royalty and reward token instructions.
type SmartContract struct {
	contractapi.Contract
	log logrus.FieldLogger
}

// NewSmartContract returns a contract that logs to log.
func NewSmartContract(log logrus.FieldLogger) *SmartContract {
	return &SmartContract{log: log}
}

func (s *SmartContract) logger() logrus.FieldLogger {
	if s.log == nil {
		return logrus.StandardLogger()
	}
	return s.log
}

/**************** MARKETPLACE OWNER METHODS ****************/

// Instantiate stores the marketplace configuration and requests the reward token deployment.
// The submitting client becomes the owner.
func (s *SmartContract) Instantiate(ctx contractapi.TransactionContextInterface, msgJSON string) (string, error) {
	var msg market.Instantiate
	if errDecode := decodeStrict(msgJSON, &msg); errDecode != nil {
		return "", fmt.Errorf("could not decode instantiate message: %w", errDecode)
	}
	return s.execute(ctx, msg, "")
}

// Reply delivers the outcome of the reward token deployment.
func (s *SmartContract) Reply(ctx contractapi.TransactionContextInterface, tag uint64, resultJSON string) (string, error) {
	var result market.ReplyResult
	if errDecode := decodeStrict(resultJSON, &result); errDecode != nil {
		return "", fmt.Errorf("could not decode reply result: %w", errDecode)
	}
	return s.execute(ctx, market.Reply{Tag: tag, Result: result}, "")
}

// UpdateConfig changes the marketplace parameters present in msgJSON.
func (s *SmartContract) UpdateConfig(ctx contractapi.TransactionContextInterface, msgJSON string) (string, error) {
	var msg market.UpdateConfig
	if errDecode := decodeStrict(msgJSON, &msg); errDecode != nil {
		return "", fmt.Errorf("could not decode config update: %w", errDecode)
	}
	return s.execute(ctx, msg, "")
}

// UpdateCancellationPolicy sets the cancellation fee, a decimal fraction such as "0.1".
func (s *SmartContract) UpdateCancellationPolicy(ctx contractapi.TransactionContextInterface, fee string) (string, error) {
	feePercentage, errFee := parsePercent(fee)
	if errFee != nil {
		return "", errFee
	}
	return s.execute(ctx, market.UpdateCancellationPolicy{FeePercentage: feePercentage}, "")
}

/**************** ASSET AND TOKEN CALLBACKS ****************/

// ReceiveAsset lists assetID after the submitting client transferred it from assetContract to the
// marketplace escrow. assetContract must confirm the transfer. msgJSON says what to do with the asset.
func (s *SmartContract) ReceiveAsset(ctx contractapi.TransactionContextInterface, assetContract string, assetID string, msgJSON string) (string, error) {
	env, errEnv := environment(ctx, "")
	if errEnv != nil {
		return "", errEnv
	}
	msg, errDecode := decodeAssetEnvelope(msgJSON, env.Caller, assetID)
	if errDecode != nil {
		return "", errDecode
	}
	cfg, errConfig := s.newMarket(ctx).Config()
	if errConfig != nil {
		return "", fmt.Errorf("could not %s: %w", market.Action(msg), errConfig)
	}
	if errConfirm := confirmAssetTransfer(ctx.GetStub(), cfg.EscrowAccount, assetContract, assetID, env.Caller); errConfirm != nil {
		return "", fmt.Errorf("could not %s: %w", market.Action(msg), errConfirm)
	}
	env.Caller = assetContract
	return s.run(ctx, env, msg)
}

// ReceiveToken registers the submitting client for a gated sale with the reward token deposit
// depositID. The reward token chaincode must confirm the deposit, and each deposit registers once.
func (s *SmartContract) ReceiveToken(ctx contractapi.TransactionContextInterface, depositID string, msgJSON string) (string, error) {
	env, errEnv := environment(ctx, "")
	if errEnv != nil {
		return "", errEnv
	}
	msg, errDecode := decodeTokenEnvelope(msgJSON, env.Caller, depositID)
	if errDecode != nil {
		return "", errDecode
	}
	m := s.newMarket(ctx)
	state, errState := m.State()
	if errState != nil {
		return "", fmt.Errorf("could not %s: %w", market.Action(msg), errState)
	}
	if state.Phase != market.Ready {
		return "", fmt.Errorf("could not %s: %w", market.Action(msg), marketerrors.ErrRewardTokenNotReady)
	}
	cfg, errConfig := m.Config()
	if errConfig != nil {
		return "", fmt.Errorf("could not %s: %w", market.Action(msg), errConfig)
	}
	amount, errConfirm := confirmDeposit(ctx.GetStub(), cfg.EscrowAccount, state.RewardToken, depositID, env.Caller)
	if errConfirm != nil {
		return "", fmt.Errorf("could not %s: %w", market.Action(msg), errConfirm)
	}
	msg.Amount = amount
	env.Caller = state.RewardToken
	return s.run(ctx, env, msg)
}

/**************** AUCTION SELLER METHODS ****************/

// CancelAuction ends an open auction early. fundsJSON must carry exactly the cancellation fee.
func (s *SmartContract) CancelAuction(ctx contractapi.TransactionContextInterface, auctionID uint64, fundsJSON string) (string, error) {
	return s.execute(ctx, market.CancelAuction{AuctionID: auctionID}, fundsJSON)
}

// UpdateRoyalty sets the royalty the submitting client earns on resales of the assets it minted.
// An empty recipient pays the client itself.
func (s *SmartContract) UpdateRoyalty(ctx contractapi.TransactionContextInterface, fee string, recipient string) (string, error) {
	feePercentage, errFee := parsePercent(fee)
	if errFee != nil {
		return "", errFee
	}
	return s.execute(ctx, market.UpdateRoyalty{FeePercentage: feePercentage, Recipient: recipient}, "")
}

// WithdrawAsset settles an ended auction. Anyone can trigger it.
func (s *SmartContract) WithdrawAsset(ctx contractapi.TransactionContextInterface, auctionID uint64) (string, error) {
	return s.execute(ctx, market.WithdrawAsset{AuctionID: auctionID}, "")
}

/**************** AUCTION BIDDER METHODS ****************/

// PlaceBid adds the attached funds to the client's escrow, which becomes its new bid.
func (s *SmartContract) PlaceBid(ctx contractapi.TransactionContextInterface, auctionID uint64, fundsJSON string) (string, error) {
	return s.execute(ctx, market.PlaceBid{AuctionID: auctionID}, fundsJSON)
}

// InstantBuy ends the auction in the client's favour. Escrow plus attached funds must equal the
// instant buy price.
func (s *SmartContract) InstantBuy(ctx contractapi.TransactionContextInterface, auctionID uint64, fundsJSON string) (string, error) {
	return s.execute(ctx, market.InstantBuy{AuctionID: auctionID}, fundsJSON)
}

// RetractBid refunds the client's escrow after the auction has ended.
func (s *SmartContract) RetractBid(ctx contractapi.TransactionContextInterface, auctionID uint64) (string, error) {
	return s.execute(ctx, market.RetractBid{AuctionID: auctionID}, "")
}
