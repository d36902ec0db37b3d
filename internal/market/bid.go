/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// MinimumBid is the lowest cumulative bid the auction accepts next.
func MinimumBid(cfg *Config, a *Auction) (money.Amount, error) {
	highest := money.Value(a.HighestBid)
	base := money.Max(money.Value(a.StartPrice), highest)
	margin, err := cfg.BidMargin.Of(base)
	if err != nil {
		return 0, err
	}
	minBid, err := base.Add(margin)
	if err != nil {
		return 0, err
	}
	// a zero margin must still strictly raise the highest bid
	if a.HighestBid != nil && minBid <= highest {
		return highest.Add(1)
	}
	return minBid, nil
}

// admitBidder loads the caller's escrow record, enforcing gated registration.
func admitBidder(s ledger.Store, cfg *Config, a *Auction, bidder string) (*BidRecord, error) {
	if bidder == a.Creator {
		return nil, marketerrors.ErrSelfBid
	}
	bid, found, err := loadBid(s, a.ID, bidder)
	if err != nil {
		return nil, err
	}
	if a.IsGated && !found {
		required, err := RequiredDeposit(cfg, a)
		if err != nil {
			return nil, err
		}
		return nil, marketerrors.WithRequired(marketerrors.ErrRegistrationRequired, required)
	}
	return bid, nil
}

func (m *Market) placeBid(s ledger.Store, env Env, msg PlaceBid) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	auction, err := loadAuction(s, msg.AuctionID)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(auction, env.Now); err != nil {
		return nil, err
	}
	bid, err := admitBidder(s, cfg, auction, env.Caller)
	if err != nil {
		return nil, err
	}
	sent, err := singleCoin(env.Funds, cfg.Denom)
	if err != nil {
		return nil, err
	}

	total, err := bid.TotalEscrowed.Add(sent)
	if err != nil {
		return nil, err
	}
	minBid, err := MinimumBid(cfg, auction)
	if err != nil {
		return nil, err
	}
	if total < minBid {
		return nil, marketerrors.WithRequired(marketerrors.ErrBidTooLow, remaining(minBid, bid.TotalEscrowed))
	}
	if price := auction.InstantBuyPrice; price != nil && total >= *price {
		return nil, marketerrors.WithRequired(marketerrors.ErrUseInstantBuy, remaining(*price, bid.TotalEscrowed))
	}

	bid.BidCount++
	bid.TotalEscrowed = total
	auction.HighestBid = total.Ptr()
	auction.HighestBidder = &env.Caller
	auction.TotalBidCount++

	extended := false
	if auction.EndTime-env.Now < cfg.SnipeWindow {
		end := auction.EndTime + cfg.SnipeExtension
		if end < auction.EndTime {
			return nil, fmt.Errorf("%w: end time %d + %d", money.ErrOverflow, auction.EndTime, cfg.SnipeExtension)
		}
		auction.EndTime = end
		extended = true
	}

	if err := saveBid(s, auction.ID, env.Caller, bid); err != nil {
		return nil, err
	}
	entry := HistoryEntry{Bidder: env.Caller, Amount: total, Time: env.Now}
	if err := appendHistory(s, auction.ID, auction.TotalBidCount, bid.BidCount, entry); err != nil {
		return nil, err
	}
	if err := saveAuction(s, auction); err != nil {
		return nil, err
	}

	res := newResponse(msg.action()).
		attr("auction_id", auction.ID).
		attr("bidder", env.Caller).
		attr("sent", sent).
		attr("total_bid", total)
	if extended {
		res.attr("end_time", auction.EndTime)
	}
	return res, nil
}

func (m *Market) instantBuy(s ledger.Store, env Env, msg InstantBuy) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	auction, err := loadAuction(s, msg.AuctionID)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(auction, env.Now); err != nil {
		return nil, err
	}
	price := auction.InstantBuyPrice
	if price == nil {
		return nil, marketerrors.ErrInstantBuyDisabled
	}
	bid, err := admitBidder(s, cfg, auction, env.Caller)
	if err != nil {
		return nil, err
	}
	sent, err := singleCoin(env.Funds, cfg.Denom)
	if err != nil {
		return nil, err
	}
	total, err := bid.TotalEscrowed.Add(sent)
	if err != nil {
		return nil, err
	}
	if total != *price {
		return nil, marketerrors.WithRequired(marketerrors.ErrInaccurateFunds, remaining(*price, bid.TotalEscrowed))
	}

	bid.BidCount++
	bid.TotalEscrowed = total
	auction.HighestBid = total.Ptr()
	auction.HighestBidder = &env.Caller
	auction.TotalBidCount++
	auction.EndTime = env.Now

	if err := saveBid(s, auction.ID, env.Caller, bid); err != nil {
		return nil, err
	}
	entry := HistoryEntry{Bidder: env.Caller, Amount: total, Time: env.Now, IsInstantBuy: true}
	if err := appendHistory(s, auction.ID, auction.TotalBidCount, bid.BidCount, entry); err != nil {
		return nil, err
	}
	if err := saveAuction(s, auction); err != nil {
		return nil, err
	}

	return newResponse(msg.action()).
		attr("auction_id", auction.ID).
		attr("buyer", env.Caller).
		attr("price", total), nil
}

// retractBid refunds a losing bidder once the auction is over. When the reserve was not met,
// the refunded amount also earns the partial reward. A cancelled auction whose highest bid met
// the reserve pays no reward.
func (m *Market) retractBid(s ledger.Store, env Env, msg RetractBid) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	token, err := rewardToken(s)
	if err != nil {
		return nil, err
	}
	auction, err := loadAuction(s, msg.AuctionID)
	if err != nil {
		return nil, err
	}
	if env.Now < auction.EndTime {
		return nil, fmt.Errorf("auction %d ends at %d: %w", auction.ID, auction.EndTime, marketerrors.ErrNotEnded)
	}
	bid, found, err := loadBid(s, auction.ID, env.Caller)
	if err != nil {
		return nil, err
	}
	switch {
	case !found:
		return nil, fmt.Errorf("bid of %s on auction %d: %w", env.Caller, auction.ID, marketerrors.ErrNotFound)
	case bid.Resolved:
		return nil, marketerrors.ErrAlreadyRetracted
	case bid.TotalEscrowed.IsZero():
		return nil, marketerrors.ErrNothingToRetract
	}
	winner, sold := auction.Winner()
	if sold && winner == env.Caller {
		return nil, marketerrors.ErrWinnerCannotRetract
	}

	refund := bid.TotalEscrowed
	bid.TotalEscrowed = 0
	bid.Resolved = true
	if err := saveBid(s, auction.ID, env.Caller, bid); err != nil {
		return nil, err
	}

	res := newResponse(msg.action()).
		attr("auction_id", auction.ID).
		attr("bidder", env.Caller).
		attr("refund", refund)
	if err := m.pay(res, env.Caller, refund, cfg.Denom); err != nil {
		return nil, err
	}
	if !auction.MeetsReserve() {
		reward, err := cfg.PartialReward.Of(refund)
		if err != nil {
			return nil, err
		}
		if !reward.IsZero() {
			res.attr("reward", reward).add(mintReward(token, env.Caller, reward))
		}
	}
	return res, nil
}
