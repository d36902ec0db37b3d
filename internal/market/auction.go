/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

// createAuction lists an asset that the asset contract (the caller) has just handed over.
func (m *Market) createAuction(s ledger.Store, env Env, msg CreateAuction) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	state, err := loadState(s)
	if err != nil {
		return nil, err
	}
	if env.Caller == "" || msg.Creator == "" {
		return nil, fmt.Errorf("%w: asset contract and creator are required", marketerrors.ErrInvalidAddress)
	}
	if msg.AssetID == "" {
		return nil, fmt.Errorf("%w: asset id is required", marketerrors.ErrInvalidMessage)
	}

	now := env.Now
	if msg.EndTime <= now {
		return nil, marketerrors.ErrEndTimeExpired
	}
	startTime := now
	if msg.StartTime != nil && *msg.StartTime > now {
		startTime = *msg.StartTime
	}
	if msg.EndTime <= startTime {
		return nil, fmt.Errorf("%w: end time %d is not after start time %d", marketerrors.ErrInvalidDuration, msg.EndTime, startTime)
	}
	if d := msg.EndTime - startTime; d < cfg.MinDuration || d > cfg.MaxDuration {
		return nil, fmt.Errorf("%w: %ds is outside [%d, %d]", marketerrors.ErrInvalidDuration, d, cfg.MinDuration, cfg.MaxDuration)
	}

	if err := validatePrices(msg); err != nil {
		return nil, err
	}
	if msg.Charity != nil {
		if msg.Charity.Address == "" {
			return nil, fmt.Errorf("%w: charity address is required", marketerrors.ErrInvalidAddress)
		}
		if !msg.Charity.FeePercentage.IsPositiveFraction() {
			return nil, fmt.Errorf("%w: charity fee %s", marketerrors.ErrInvalidPercentage, msg.Charity.FeePercentage)
		}
	}

	listed, found, err := listedAuction(s, env.Caller, msg.AssetID)
	if err != nil {
		return nil, err
	}
	if found {
		previous, err := loadAuction(s, listed)
		if err != nil {
			return nil, err
		}
		if !previous.Resolved {
			return nil, fmt.Errorf("%w: auction %d", marketerrors.ErrAssetAlreadyListed, previous.ID)
		}
	}

	auction := &Auction{
		ID:              state.NextAuctionID,
		Creator:         msg.Creator,
		AssetContract:   env.Caller,
		AssetID:         msg.AssetID,
		StartPrice:      msg.StartPrice,
		StartTime:       startTime,
		EndTime:         msg.EndTime,
		InstantBuyPrice: msg.InstantBuy,
		ReservePrice:    msg.ReservePrice,
		IsGated:         msg.Gated,
		Charity:         msg.Charity,
	}
	state.NextAuctionID++
	if state.NextAuctionID == 0 {
		return nil, fmt.Errorf("auction id counter exhausted")
	}
	if err := saveAuction(s, auction); err != nil {
		return nil, err
	}
	if err := saveListing(s, auction); err != nil {
		return nil, err
	}
	if err := saveState(s, state); err != nil {
		return nil, err
	}

	return newResponse(msg.action()).
		attr("auction_id", auction.ID).
		attr("creator", auction.Creator).
		attr("asset_contract", auction.AssetContract).
		attr("asset_id", auction.AssetID).
		attr("start_time", auction.StartTime).
		attr("end_time", auction.EndTime).
		attr("gated", auction.IsGated), nil
}

func validatePrices(msg CreateAuction) error {
	if msg.InstantBuy != nil && msg.InstantBuy.IsZero() {
		return fmt.Errorf("%w: instant buy price", marketerrors.ErrZeroAmount)
	}
	if msg.ReservePrice != nil && msg.ReservePrice.IsZero() {
		return fmt.Errorf("%w: reserve price", marketerrors.ErrZeroAmount)
	}
	start, instant, reserve := msg.StartPrice, msg.InstantBuy, msg.ReservePrice
	switch {
	case start != nil && instant != nil && *start >= *instant:
		return fmt.Errorf("%w: start price %d must be below instant buy price %d", marketerrors.ErrInvalidPriceOrder, *start, *instant)
	case start != nil && reserve != nil && *start > *reserve:
		return fmt.Errorf("%w: start price %d exceeds reserve price %d", marketerrors.ErrInvalidPriceOrder, *start, *reserve)
	case instant != nil && reserve != nil && *instant < *reserve:
		return fmt.Errorf("%w: instant buy price %d is below reserve price %d", marketerrors.ErrInvalidPriceOrder, *instant, *reserve)
	}
	return nil
}

// requireOpen distinguishes an auction that has not opened yet from one that is over.
func requireOpen(a *Auction, now uint64) error {
	switch a.Status(now) {
	case Open:
		return nil
	case Scheduled:
		return fmt.Errorf("auction %d opens at %d: %w", a.ID, a.StartTime, marketerrors.ErrNotStarted)
	}
	return fmt.Errorf("auction %d: %w", a.ID, marketerrors.ErrClosed)
}
