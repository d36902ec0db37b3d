/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

func loadConfig(s ledger.Store) (*Config, error) {
	var cfg Config
	found, err := ledger.GetJSON(s, ledger.ConfigKey, &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, marketerrors.ErrNotInitialized
	}
	return &cfg, nil
}

func saveConfig(s ledger.Store, cfg *Config) error {
	return ledger.PutJSON(s, ledger.ConfigKey, cfg)
}

func loadState(s ledger.Store) (*State, error) {
	var state State
	found, err := ledger.GetJSON(s, ledger.StateKey, &state)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, marketerrors.ErrNotInitialized
	}
	return &state, nil
}

func saveState(s ledger.Store, state *State) error {
	return ledger.PutJSON(s, ledger.StateKey, state)
}

// rewardToken returns the reward token address, failing while initialization is incomplete.
func rewardToken(s ledger.Store) (string, error) {
	state, err := loadState(s)
	if err != nil {
		return "", err
	}
	if state.Phase != Ready || state.RewardToken == "" {
		return "", marketerrors.ErrRewardTokenNotReady
	}
	return state.RewardToken, nil
}

func loadCancellationPolicy(s ledger.Store) (*CancellationPolicy, error) {
	var policy CancellationPolicy
	found, err := ledger.GetJSON(s, ledger.CancellationPolicyKey, &policy)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, marketerrors.ErrNotInitialized
	}
	return &policy, nil
}

func loadAuction(s ledger.Store, id uint64) (*Auction, error) {
	var auction Auction
	found, err := ledger.GetJSON(s, ledger.AuctionKey(id), &auction)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("auction %d: %w", id, marketerrors.ErrNotFound)
	}
	return &auction, nil
}

func saveAuction(s ledger.Store, auction *Auction) error {
	return ledger.PutJSON(s, ledger.AuctionKey(auction.ID), auction)
}

// loadBid returns the bidder's record, or a zero record and false when none exists.
func loadBid(s ledger.Store, auctionID uint64, bidder string) (*BidRecord, bool, error) {
	key, err := ledger.BidKey(s, auctionID, bidder)
	if err != nil {
		return nil, false, err
	}
	var bid BidRecord
	found, err := ledger.GetJSON(s, key, &bid)
	if err != nil {
		return nil, false, err
	}
	return &bid, found, nil
}

func saveBid(s ledger.Store, auctionID uint64, bidder string, bid *BidRecord) error {
	key, err := ledger.BidKey(s, auctionID, bidder)
	if err != nil {
		return err
	}
	return ledger.PutJSON(s, key, bid)
}

// appendHistory writes entry to the auction log at auctionSeq and to the bidder log at bidderSeq.
func appendHistory(s ledger.Store, auctionID, auctionSeq, bidderSeq uint64, entry HistoryEntry) error {
	key, err := ledger.HistoryKey(s, auctionID, auctionSeq)
	if err != nil {
		return err
	}
	if err := ledger.PutJSON(s, key, entry); err != nil {
		return err
	}
	key, err = ledger.BidderHistoryKey(s, auctionID, entry.Bidder, bidderSeq)
	if err != nil {
		return err
	}
	return ledger.PutJSON(s, key, entry)
}

func loadRoyalty(s ledger.Store, principal string) (*Royalty, bool, error) {
	var royalty Royalty
	found, err := ledger.GetJSON(s, ledger.RoyaltyKey(principal), &royalty)
	if err != nil {
		return nil, false, err
	}
	return &royalty, found, nil
}

// listedAuction returns the id of the auction that last listed the asset, if any.
func listedAuction(s ledger.Store, assetContract, assetID string) (uint64, bool, error) {
	key, err := ledger.ListingKey(s, assetContract, assetID)
	if err != nil {
		return 0, false, err
	}
	var id uint64
	found, err := ledger.GetJSON(s, key, &id)
	return id, found, err
}

func saveListing(s ledger.Store, a *Auction) error {
	key, err := ledger.ListingKey(s, a.AssetContract, a.AssetID)
	if err != nil {
		return err
	}
	return ledger.PutJSON(s, key, a.ID)
}

// spendDeposit marks the deposit as used, failing if it already was.
func spendDeposit(s ledger.Store, token, depositID string, use DepositUse) error {
	key, err := ledger.DepositKey(s, token, depositID)
	if err != nil {
		return err
	}
	var previous DepositUse
	found, err := ledger.GetJSON(s, key, &previous)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("%w: deposit %s registered %s on auction %d", marketerrors.ErrDepositAlreadyUsed, depositID, previous.Sender, previous.AuctionID)
	}
	return ledger.PutJSON(s, key, &use)
}
