/*
SPDX-License-Identifier: Apache-2.0
*/

package auction

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// GetEvaluateTransactions lists the functions that only read the world state.
func (s *SmartContract) GetEvaluateTransactions() []string {
	return []string{
		"GetAuction",
		"GetBid",
		"GetHistory",
		"GetHistoryForBidder",
		"ListAuctions",
		"GetConfig",
		"GetState",
		"GetRoyalty",
		"GetCancellationPolicy",
		"GetContractInfo",
	}
}

func (s *SmartContract) GetAuction(ctx contractapi.TransactionContextInterface, auctionID uint64) (string, error) {
	auction, err := s.newMarket(ctx).Auction(auctionID)
	return queryResult(auction, err, fmt.Sprintf("auction %d", auctionID))
}

// GetBid returns the escrow record of bidder on the auction.
func (s *SmartContract) GetBid(ctx contractapi.TransactionContextInterface, auctionID uint64, bidder string) (string, error) {
	bid, err := s.newMarket(ctx).Bid(auctionID, bidder)
	return queryResult(bid, err, "the bid")
}

// GetHistory returns every accepted bid on the auction, oldest first.
func (s *SmartContract) GetHistory(ctx contractapi.TransactionContextInterface, auctionID uint64) (string, error) {
	history, err := s.newMarket(ctx).History(auctionID)
	return queryResult(history, err, "the bid history")
}

func (s *SmartContract) GetHistoryForBidder(ctx contractapi.TransactionContextInterface, auctionID uint64, bidder string) (string, error) {
	history, err := s.newMarket(ctx).HistoryForBidder(auctionID, bidder)
	return queryResult(history, err, "the bid history")
}

// ListAuctions pages through the auctions with an id above startAfter. A zero limit returns ten.
func (s *SmartContract) ListAuctions(ctx contractapi.TransactionContextInterface, startAfter uint64, limit uint32) (string, error) {
	auctions, err := s.newMarket(ctx).ListAuctions(startAfter, limit)
	return queryResult(auctions, err, "auctions")
}

func (s *SmartContract) GetConfig(ctx contractapi.TransactionContextInterface) (string, error) {
	cfg, err := s.newMarket(ctx).Config()
	return queryResult(cfg, err, "the config")
}

func (s *SmartContract) GetState(ctx contractapi.TransactionContextInterface) (string, error) {
	state, err := s.newMarket(ctx).State()
	return queryResult(state, err, "the state")
}

// GetRoyalty returns the royalty of a minter. Minters without one get a zero fee.
func (s *SmartContract) GetRoyalty(ctx contractapi.TransactionContextInterface, minter string) (string, error) {
	royalty, err := s.newMarket(ctx).Royalty(minter)
	return queryResult(royalty, err, "the royalty")
}

func (s *SmartContract) GetCancellationPolicy(ctx contractapi.TransactionContextInterface) (string, error) {
	policy, err := s.newMarket(ctx).CancellationPolicy()
	return queryResult(policy, err, "the cancellation policy")
}

func (s *SmartContract) GetContractInfo(ctx contractapi.TransactionContextInterface) (string, error) {
	info, err := s.newMarket(ctx).ContractInfo()
	return queryResult(info, err, "the contract info")
}
