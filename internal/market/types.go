/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// Status is derived from an auction's times and flags; it is never stored.
type Status int

const (
	Scheduled      Status = iota // start time not reached
	Open                         // accepting bids
	EndedUnsettled               // end time passed, withdraw not yet run
	Cancelled                    // ended early by the creator, withdraw not yet run
	Resolved                     // settled, terminal
)

func (s Status) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Open:
		return "open"
	case EndedUnsettled:
		return "ended"
	case Cancelled:
		return "cancelled"
	case Resolved:
		return "resolved"
	}
	return "unknown"
}

// Charity receives a share of the net proceeds.
type Charity struct {
	Address       string        `json:"address"`
	FeePercentage money.Percent `json:"fee_percentage"`
}

// Auction is one listing of an external asset.
type Auction struct {
	ID              uint64        `json:"id"`
	Creator         string        `json:"creator"`
	AssetContract   string        `json:"asset_contract"`
	AssetID         string        `json:"asset_id"`
	StartPrice      *money.Amount `json:"start_price,omitempty"`
	StartTime       uint64        `json:"start_time"`
	EndTime         uint64        `json:"end_time"`
	HighestBid      *money.Amount `json:"highest_bid,omitempty"`
	HighestBidder   *string       `json:"highest_bidder,omitempty"`
	TotalBidCount   uint64        `json:"total_bid_count"`
	InstantBuyPrice *money.Amount `json:"instant_buy_price,omitempty"`
	ReservePrice    *money.Amount `json:"reserve_price,omitempty"`
	IsGated         bool          `json:"is_gated"`
	Charity         *Charity      `json:"charity,omitempty"`
	Cancelled       bool          `json:"cancelled"`
	Resolved        bool          `json:"resolved"`
}

// Status returns the lifecycle state at time now.
func (a *Auction) Status(now uint64) Status {
	switch {
	case a.Resolved:
		return Resolved
	case a.Cancelled:
		return Cancelled
	case now < a.StartTime:
		return Scheduled
	case now < a.EndTime:
		return Open
	}
	return EndedUnsettled
}

// MeetsReserve reports whether the current highest bid satisfies the reserve price.
func (a *Auction) MeetsReserve() bool {
	if a.HighestBid == nil {
		return false
	}
	return a.ReservePrice == nil || *a.HighestBid >= *a.ReservePrice
}

// Winner returns the principal that receives the asset at settlement, if any.
func (a *Auction) Winner() (string, bool) {
	if a.HighestBidder == nil || !a.MeetsReserve() {
		return "", false
	}
	return *a.HighestBidder, true
}

// BidRecord is the escrow account of one bidder on one auction.
type BidRecord struct {
	BidCount         uint64        `json:"bid_count"`
	TotalEscrowed    money.Amount  `json:"total_escrowed_amount"`
	GatedDepositUsed *money.Amount `json:"gated_deposit_used,omitempty"`
	Resolved         bool          `json:"resolved"`
}

// HistoryEntry is one accepted bid or instant buy. Amount is the bidder's cumulative total.
type HistoryEntry struct {
	Bidder       string       `json:"bidder"`
	Amount       money.Amount `json:"amount"`
	Time         uint64       `json:"time"`
	IsInstantBuy bool         `json:"is_instant_buy"`
}

// Royalty is a creator's resale fee and its payout address.
type Royalty struct {
	FeePercentage money.Percent `json:"fee_percentage"`
	Recipient     string        `json:"recipient,omitempty"`
}

// Config holds the marketplace parameters. It is written by Instantiate and UpdateConfig only.
type Config struct {
	Owner            string        `json:"owner"`
	Denom            string        `json:"denom"`
	BidMargin        money.Percent `json:"bid_margin"`
	PlatformFee      money.Percent `json:"platform_fee"`
	GatedPlatformFee money.Percent `json:"gated_platform_fee"`
	FeeCollector     string        `json:"fee_collector"`
	FullReward       money.Percent `json:"full_reward"`
	PartialReward    money.Percent `json:"partial_reward"`
	GatedMinOpening  money.Amount  `json:"gated_min_opening"`
	GatedFeeAccrual  money.Percent `json:"gated_fee_accrual"`
	MaxRoyalty       money.Percent `json:"max_royalty"`
	MinDuration      uint64        `json:"min_duration"`
	MaxDuration      uint64        `json:"max_duration"`
	SnipeWindow      uint64        `json:"snipe_window"`
	SnipeExtension   uint64        `json:"snipe_extension"`
	MinterIndexer    string        `json:"minter_indexer,omitempty"`
	// EscrowAccount is the account the marketplace holds assets and deposits under
	// in the asset and token contracts.
	EscrowAccount string `json:"escrow_account"`
}

// CancellationPolicy is kept apart from Config so it can be changed on its own.
type CancellationPolicy struct {
	FeePercentage money.Percent `json:"fee_percentage"`
}

// Phase tracks the two-step initialization.
type Phase string

const (
	AwaitingRewardToken Phase = "awaiting_reward_token"
	Ready               Phase = "ready"
)

// State is the marketplace singleton.
type State struct {
	NextAuctionID   uint64 `json:"next_auction_id"`
	Phase           Phase  `json:"phase"`
	PendingReplyTag uint64 `json:"pending_reply_tag"`
	RewardToken     string `json:"reward_token,omitempty"`
}

// ContractInfo records what was instantiated.
type ContractInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// AuctionEntry pairs an id with its auction in listings.
type AuctionEntry struct {
	ID      uint64  `json:"id"`
	Auction Auction `json:"auction"`
}

// DepositUse records which registration consumed a reward token deposit.
type DepositUse struct {
	AuctionID uint64 `json:"auction_id"`
	Sender    string `json:"sender"`
}
