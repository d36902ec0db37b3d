/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// RequiredDeposit is the gated sale deposit at the auction's current highest bid:
// the minimum opening plus the fee accrual on that bid.
func RequiredDeposit(cfg *Config, a *Auction) (money.Amount, error) {
	accrued, err := cfg.GatedFeeAccrual.Of(money.Value(a.HighestBid))
	if err != nil {
		return 0, err
	}
	return cfg.GatedMinOpening.Add(accrued)
}

// registerGatedSale admits msg.Sender to a gated auction. The reward token contract calls it
// after receiving the deposit, which is burned.
func (m *Market) registerGatedSale(s ledger.Store, env Env, msg RegisterGatedSale) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	token, err := rewardToken(s)
	if err != nil {
		return nil, err
	}
	if env.Caller != token {
		return nil, marketerrors.ErrWrongCaller
	}
	auction, err := loadAuction(s, msg.AuctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsGated {
		return nil, marketerrors.ErrNotGated
	}
	if err := requireOpen(auction, env.Now); err != nil {
		return nil, err
	}
	if msg.Sender == auction.Creator {
		return nil, marketerrors.ErrSelfBid
	}
	_, found, err := loadBid(s, auction.ID, msg.Sender)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, marketerrors.ErrAlreadyRegistered
	}
	required, err := RequiredDeposit(cfg, auction)
	if err != nil {
		return nil, err
	}
	if msg.Amount != required {
		return nil, marketerrors.WithRequired(marketerrors.ErrWrongDeposit, required)
	}

	if msg.DepositID != "" {
		if err := spendDeposit(s, token, msg.DepositID, DepositUse{AuctionID: auction.ID, Sender: msg.Sender}); err != nil {
			return nil, err
		}
	}
	if err := saveBid(s, auction.ID, msg.Sender, &BidRecord{GatedDepositUsed: required.Ptr()}); err != nil {
		return nil, err
	}
	auction.TotalBidCount++
	if err := saveAuction(s, auction); err != nil {
		return nil, err
	}

	return newResponse(msg.action()).
		attr("auction_id", auction.ID).
		attr("sender", msg.Sender).
		attr("amount_required", required).
		add(burnReward(token, required)), nil
}
