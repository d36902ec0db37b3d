/*
SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// World state key layout. Simple keys hold singletons and the auction catalog;
// composite keys hold per-bidder records and the history logs.
const (
	ConfigKey             = "config"
	StateKey              = "state"
	CancellationPolicyKey = "cancellation_policy"
	ContractInfoKey       = "contract_info"

	auctionPrefix = "auction_"
	auctionEnd    = auctionPrefix + "~"
	royaltyPrefix = "royalty_"

	BidObjectType           = "bid"
	HistoryObjectType       = "history"
	BidderHistoryObjectType = "bidder_history"
	ListingObjectType       = "listing"
	DepositObjectType       = "deposit"
)

// EncodeID renders id as fixed-width big-endian hex so that lexical order is numeric order.
func EncodeID(id uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	return hex.EncodeToString(buf[:])
}

// DecodeID reverses EncodeID.
func DecodeID(s string) (uint64, error) {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 8 {
		return 0, fmt.Errorf("malformed id %q", s)
	}
	return binary.BigEndian.Uint64(raw), nil
}

// AuctionKey is the world state key for an auction.
func AuctionKey(id uint64) string {
	return auctionPrefix + EncodeID(id)
}

// AuctionIDFromKey extracts the id from an AuctionKey.
func AuctionIDFromKey(key string) (uint64, error) {
	if !strings.HasPrefix(key, auctionPrefix) {
		return 0, fmt.Errorf("not an auction key: %q", key)
	}
	return DecodeID(strings.TrimPrefix(key, auctionPrefix))
}

// AuctionRange returns the [start, end) range of auction keys with id > startAfter.
func AuctionRange(startAfter uint64) (string, string) {
	if startAfter == ^uint64(0) {
		return auctionEnd, auctionEnd
	}
	return AuctionKey(startAfter + 1), auctionEnd
}

// RoyaltyKey is the world state key for a creator's royalty record.
func RoyaltyKey(principal string) string {
	return royaltyPrefix + principal
}

// BidKey is the composite key of the (auction, bidder) escrow record.
func BidKey(s Store, auctionID uint64, bidder string) (string, error) {
	return s.CreateCompositeKey(BidObjectType, []string{EncodeID(auctionID), bidder})
}

// HistoryKey is the composite key of the seq-th entry of an auction's bid log.
func HistoryKey(s Store, auctionID, seq uint64) (string, error) {
	return s.CreateCompositeKey(HistoryObjectType, []string{EncodeID(auctionID), EncodeID(seq)})
}

// BidderHistoryKey is the composite key of the seq-th entry of one bidder's log on an auction.
func BidderHistoryKey(s Store, auctionID uint64, bidder string, seq uint64) (string, error) {
	return s.CreateCompositeKey(BidderHistoryObjectType, []string{EncodeID(auctionID), bidder, EncodeID(seq)})
}

// ListingKey maps an external asset to the auction that last listed it.
func ListingKey(s Store, assetContract, assetID string) (string, error) {
	return s.CreateCompositeKey(ListingObjectType, []string{assetContract, assetID})
}

// DepositKey marks a reward token deposit as spent.
func DepositKey(s Store, token, depositID string) (string, error) {
	return s.CreateCompositeKey(DepositObjectType, []string{token, depositID})
}
