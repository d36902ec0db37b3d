/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 30
)

func (m *Market) Auction(id uint64) (*Auction, error) {
	return loadAuction(m.store, id)
}

func (m *Market) Bid(auctionID uint64, bidder string) (*BidRecord, error) {
	bid, found, err := loadBid(m.store, auctionID, bidder)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("bid of %s on auction %d: %w", bidder, auctionID, marketerrors.ErrNotFound)
	}
	return bid, nil
}

// History returns every accepted bid on the auction in acceptance order.
func (m *Market) History(auctionID uint64) ([]HistoryEntry, error) {
	if _, err := loadAuction(m.store, auctionID); err != nil {
		return nil, err
	}
	return m.history(ledger.HistoryObjectType, ledger.EncodeID(auctionID))
}

// HistoryForBidder returns the bidder's accepted bids on the auction in acceptance order.
func (m *Market) HistoryForBidder(auctionID uint64, bidder string) ([]HistoryEntry, error) {
	if _, err := loadAuction(m.store, auctionID); err != nil {
		return nil, err
	}
	return m.history(ledger.BidderHistoryObjectType, ledger.EncodeID(auctionID), bidder)
}

func (m *Market) history(objectType string, keys ...string) ([]HistoryEntry, error) {
	iter, err := m.store.GetStateByPartialCompositeKey(objectType, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", objectType, err)
	}
	entries := []HistoryEntry{}
	err = ledger.Each(iter, func(_ string, e HistoryEntry) bool {
		entries = append(entries, e)
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListAuctions pages through the catalog in id order. A zero limit means DefaultListLimit;
// larger limits are clamped to MaxListLimit.
func (m *Market) ListAuctions(startAfter uint64, limit uint32) ([]AuctionEntry, error) {
	n := int(limit)
	if n == 0 {
		n = DefaultListLimit
	}
	if n > MaxListLimit {
		n = MaxListLimit
	}

	start, end := ledger.AuctionRange(startAfter)
	iter, err := m.store.GetStateByRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query auctions: %w", err)
	}
	entries := []AuctionEntry{}
	err = ledger.Each(iter, func(_ string, a Auction) bool {
		entries = append(entries, AuctionEntry{ID: a.ID, Auction: a})
		return len(entries) < n
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (m *Market) Config() (*Config, error) {
	return loadConfig(m.store)
}

func (m *Market) State() (*State, error) {
	return loadState(m.store)
}

// Royalty returns the principal's royalty, or a zero fee paying the principal when none is set.
func (m *Market) Royalty(principal string) (*Royalty, error) {
	royalty, found, err := loadRoyalty(m.store, principal)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Royalty{Recipient: principal}, nil
	}
	return royalty, nil
}

func (m *Market) CancellationPolicy() (*CancellationPolicy, error) {
	return loadCancellationPolicy(m.store)
}

func (m *Market) ContractInfo() (*ContractInfo, error) {
	var info ContractInfo
	found, err := ledger.GetJSON(m.store, ledger.ContractInfoKey, &info)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, marketerrors.ErrNotInitialized
	}
	return &info, nil
}
