/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// Split is how a winning bid is distributed. The parts always sum to the bid.
type Split struct {
	Royalty     money.Amount `json:"royalty"`
	PlatformFee money.Amount `json:"platform_fee"`
	Charity     money.Amount `json:"charity"`
	Net         money.Amount `json:"net"`
}

type payout struct {
	recipient string
	amount    money.Amount
}

// ComputeSplit takes the royalty and the platform fee from the gross bid, then the charity
// share from what is left. Every share is rounded down so the creator's net absorbs the remainder.
func ComputeSplit(bid money.Amount, royalty, platformFee money.Percent, charity *money.Percent) (Split, error) {
	var split Split
	var err error
	if split.Royalty, err = royalty.Of(bid); err != nil {
		return Split{}, err
	}
	if split.PlatformFee, err = platformFee.Of(bid); err != nil {
		return Split{}, err
	}
	if split.Net, err = bid.Sub(split.Royalty); err != nil {
		return Split{}, err
	}
	if split.Net, err = split.Net.Sub(split.PlatformFee); err != nil {
		return Split{}, err
	}
	if charity != nil {
		if split.Charity, err = charity.Of(split.Net); err != nil {
			return Split{}, err
		}
		if split.Net, err = split.Net.Sub(split.Charity); err != nil {
			return Split{}, err
		}
	}
	return split, nil
}

// royaltyFor returns the royalty owed on the asset, keyed by its minter. An asset whose
// minter cannot be resolved pays no royalty. Fees above the current maximum are capped.
func (m *Market) royaltyFor(s ledger.Store, cfg *Config, a *Auction) (money.Percent, string, error) {
	log := m.log.WithFields(logrus.Fields{
		"auction_id":     a.ID,
		"asset_contract": a.AssetContract,
		"asset_id":       a.AssetID,
	})
	minter, err := m.minters.Minter(a.AssetContract, a.AssetID)
	if err != nil {
		log.WithError(err).Warn("minter lookup failed, settling without royalty")
		return money.Percent{}, "", nil
	}
	if minter == "" {
		log.Debug("asset has no known minter, settling without royalty")
		return money.Percent{}, "", nil
	}
	royalty, found, err := loadRoyalty(s, minter)
	if err != nil {
		return money.Percent{}, "", err
	}
	if !found {
		return money.Percent{}, minter, nil
	}
	recipient := royalty.Recipient
	if recipient == "" {
		recipient = minter
	}
	if royalty.FeePercentage.GreaterThan(cfg.MaxRoyalty) {
		return cfg.MaxRoyalty, recipient, nil
	}
	return royalty.FeePercentage, recipient, nil
}

// withdrawAsset settles an ended auction exactly once. Without a winner the asset goes back
// to the creator and no money moves.
func (m *Market) withdrawAsset(s ledger.Store, env Env, msg WithdrawAsset) (*Response, error) {
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
	if auction.Resolved {
		return nil, marketerrors.ErrAlreadyResolved
	}
	if env.Now < auction.EndTime {
		return nil, fmt.Errorf("auction %d ends at %d: %w", auction.ID, auction.EndTime, marketerrors.ErrNotEnded)
	}
	auction.Resolved = true

	res := newResponse(msg.action()).attr("auction_id", auction.ID)
	winner, sold := auction.Winner()
	if !sold || winner == auction.Creator {
		res.attr("recipient", auction.Creator).
			add(transferAsset(auction.AssetContract, auction.Creator, auction.AssetID))
		if err := saveAuction(s, auction); err != nil {
			return nil, err
		}
		return res, nil
	}

	bid := *auction.HighestBid
	royaltyFee, royaltyRecipient, err := m.royaltyFor(s, cfg, auction)
	if err != nil {
		return nil, err
	}
	platformFee := cfg.PlatformFee
	if auction.IsGated {
		platformFee = cfg.GatedPlatformFee
	}
	var charityFee *money.Percent
	if auction.Charity != nil {
		charityFee = &auction.Charity.FeePercentage
	}
	split, err := ComputeSplit(bid, royaltyFee, platformFee, charityFee)
	if err != nil {
		return nil, err
	}
	reward, err := cfg.FullReward.Of(bid)
	if err != nil {
		return nil, err
	}

	res.attr("recipient", winner).
		attr("winning_bid", bid).
		attr("net", split.Net).
		attr("platform_fee", split.PlatformFee).
		attr("royalty", split.Royalty).
		attr("charity", split.Charity).
		add(transferAsset(auction.AssetContract, winner, auction.AssetID))
	if !reward.IsZero() {
		res.add(mintReward(token, auction.Creator, reward)).
			add(mintReward(token, winner, reward))
	}
	payouts := []payout{
		{auction.Creator, split.Net},
		{cfg.FeeCollector, split.PlatformFee},
		{royaltyRecipient, split.Royalty},
	}
	if auction.Charity != nil {
		payouts = append(payouts, payout{auction.Charity.Address, split.Charity})
	}
	for _, p := range payouts {
		if err := m.pay(res, p.recipient, p.amount, cfg.Denom); err != nil {
			return nil, err
		}
	}

	record, found, err := loadBid(s, auction.ID, winner)
	if err != nil {
		return nil, err
	}
	if found {
		record.Resolved = true
		if err := saveBid(s, auction.ID, winner, record); err != nil {
			return nil, err
		}
	}
	if err := saveAuction(s, auction); err != nil {
		return nil, err
	}
	return res, nil
}
