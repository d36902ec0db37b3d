/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// CancellationFee is what the creator must attach to cancel the auction now.
func CancellationFee(policy *CancellationPolicy, a *Auction) (money.Amount, error) {
	return policy.FeePercentage.Of(money.Value(a.HighestBid))
}

// cancelAuction ends an open auction early. The fee is split between the highest bidder and
// the platform; ownership is left for withdraw and escrow for each bidder to retract.
func (m *Market) cancelAuction(s ledger.Store, env Env, msg CancelAuction) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	policy, err := loadCancellationPolicy(s)
	if err != nil {
		return nil, err
	}
	auction, err := loadAuction(s, msg.AuctionID)
	if err != nil {
		return nil, err
	}
	if env.Caller != auction.Creator {
		return nil, marketerrors.ErrNotCreator
	}
	if err := requireOpen(auction, env.Now); err != nil {
		return nil, err
	}

	fee, err := CancellationFee(policy, auction)
	if err != nil {
		return nil, err
	}
	if fee.IsZero() {
		if len(env.Funds) > 0 {
			return nil, marketerrors.WithRequired(marketerrors.ErrInaccurateFunds, 0)
		}
	} else {
		sent, err := singleCoin(env.Funds, cfg.Denom)
		if err != nil {
			return nil, marketerrors.WithRequired(err, fee)
		}
		if sent != fee {
			return nil, marketerrors.WithRequired(marketerrors.ErrInaccurateFunds, fee)
		}
	}

	res := newResponse(msg.action()).
		attr("auction_id", auction.ID).
		attr("cancellation_fee", fee)
	if bidder := auction.HighestBidder; bidder != nil {
		toBidder, toPlatform := fee.Half()
		if err := m.pay(res, *bidder, toBidder, cfg.Denom); err != nil {
			return nil, err
		}
		if err := m.pay(res, cfg.FeeCollector, toPlatform, cfg.Denom); err != nil {
			return nil, err
		}
	} else if err := m.pay(res, cfg.FeeCollector, fee, cfg.Denom); err != nil {
		return nil, err
	}

	auction.EndTime = env.Now
	auction.HighestBidder = nil
	auction.Cancelled = true
	if err := saveAuction(s, auction); err != nil {
		return nil, err
	}
	return res, nil
}
