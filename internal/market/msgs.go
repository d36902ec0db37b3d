/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// Env is what the host supplies with every operation.
type Env struct {
	TxID   string
	Now    uint64 // trusted clock, unix seconds
	Caller string // authenticated principal
	Funds  money.Funds
}

// Msg is one of the operations below. The unexported method closes the set.
type Msg interface {
	action() string
}

// Instantiate configures the marketplace and asks the host to deploy the reward token.
type Instantiate struct {
	Denom            string        `json:"denom"`
	BidMargin        money.Percent `json:"bid_margin"`
	PlatformFee      money.Percent `json:"platform_fee"`
	GatedPlatformFee money.Percent `json:"gated_platform_fee"`
	FeeCollector     string        `json:"fee_collector"`
	FullReward       money.Percent `json:"full_reward"`
	PartialReward    money.Percent `json:"partial_reward"`
	GatedMinOpening  money.Amount  `json:"gated_min_opening"`
	GatedFeeAccrual  money.Percent `json:"gated_fee_accrual"`
	CancellationFee  money.Percent `json:"cancellation_fee"`
	RewardTokenLabel string        `json:"reward_token_label"`
	MinterIndexer    string        `json:"minter_indexer,omitempty"`
	EscrowAccount    string        `json:"escrow_account,omitempty"`

	// Optional overrides of the built-in bounds; zero keeps the default.
	MaxRoyalty     *money.Percent `json:"max_royalty,omitempty"`
	MinDuration    uint64         `json:"min_duration,omitempty"`
	MaxDuration    uint64         `json:"max_duration,omitempty"`
	SnipeWindow    uint64         `json:"snipe_window,omitempty"`
	SnipeExtension uint64         `json:"snipe_extension,omitempty"`
}

// ReplyResult is the outcome reported by the host for a tagged instruction.
type ReplyResult struct {
	Address string `json:"address,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Reply delivers the result of an instruction emitted with a reply tag.
type Reply struct {
	Tag    uint64      `json:"tag"`
	Result ReplyResult `json:"result"`
}

// CreateAuction lists an asset that has just been transferred in.
// The caller is the asset contract; Creator is the principal that sent the asset.
// An asset can be held by one unresolved auction at a time.
type CreateAuction struct {
	Creator      string        `json:"-"`
	AssetID      string        `json:"-"`
	StartPrice   *money.Amount `json:"start_price,omitempty"`
	StartTime    *uint64       `json:"start_time,omitempty"`
	EndTime      uint64        `json:"end_time"`
	Charity      *Charity      `json:"charity,omitempty"`
	InstantBuy   *money.Amount `json:"instant_buy,omitempty"`
	ReservePrice *money.Amount `json:"reserve_price,omitempty"`
	Gated        bool          `json:"gated"`
}

// RegisterGatedSale records a gating deposit. The caller is the reward token contract.
// A non-empty DepositID can be spent only once.
type RegisterGatedSale struct {
	AuctionID uint64       `json:"auction_id"`
	Sender    string       `json:"-"`
	Amount    money.Amount `json:"-"`
	DepositID string       `json:"-"`
}

type PlaceBid struct {
	AuctionID uint64 `json:"auction_id"`
}

type InstantBuy struct {
	AuctionID uint64 `json:"auction_id"`
}

type RetractBid struct {
	AuctionID uint64 `json:"auction_id"`
}

type WithdrawAsset struct {
	AuctionID uint64 `json:"auction_id"`
}

type CancelAuction struct {
	AuctionID uint64 `json:"auction_id"`
}

// UpdateRoyalty sets the caller's royalty. An empty recipient pays the caller.
type UpdateRoyalty struct {
	FeePercentage money.Percent `json:"fee_percentage"`
	Recipient     string        `json:"recipient,omitempty"`
}

// UpdateConfig changes marketplace parameters. Nil fields are left as they are.
type UpdateConfig struct {
	Owner            *string        `json:"owner,omitempty"`
	BidMargin        *money.Percent `json:"bid_margin,omitempty"`
	PlatformFee      *money.Percent `json:"platform_fee,omitempty"`
	GatedPlatformFee *money.Percent `json:"gated_platform_fee,omitempty"`
	FeeCollector     *string        `json:"fee_collector,omitempty"`
	FullReward       *money.Percent `json:"full_reward,omitempty"`
	PartialReward    *money.Percent `json:"partial_reward,omitempty"`
	GatedMinOpening  *money.Amount  `json:"gated_min_opening,omitempty"`
	GatedFeeAccrual  *money.Percent `json:"gated_fee_accrual,omitempty"`
	MinterIndexer    *string        `json:"minter_indexer,omitempty"`
}

type UpdateCancellationPolicy struct {
	FeePercentage money.Percent `json:"fee_percentage"`
}

func (Instantiate) action() string              { return "instantiate" }
func (Reply) action() string                    { return "reply" }
func (CreateAuction) action() string            { return "create_auction" }
func (RegisterGatedSale) action() string        { return "register_gated_sale" }
func (PlaceBid) action() string                 { return "place_bid" }
func (InstantBuy) action() string               { return "instant_buy" }
func (RetractBid) action() string               { return "retract_bid" }
func (WithdrawAsset) action() string            { return "withdraw_asset" }
func (CancelAuction) action() string            { return "cancel_auction" }
func (UpdateRoyalty) action() string            { return "update_royalty" }
func (UpdateConfig) action() string             { return "update_config" }
func (UpdateCancellationPolicy) action() string { return "update_cancellation_policy" }

// Action is the name an operation is logged and announced under.
func Action(msg Msg) string {
	return msg.action()
}
