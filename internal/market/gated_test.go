package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

func register(auctionID uint64, sender string, amount money.Amount) RegisterGatedSale {
	return RegisterGatedSale{AuctionID: auctionID, Sender: sender, Amount: amount}
}

func TestRequiredDeposit(t *testing.T) {
	cfg := &Config{GatedMinOpening: 100, GatedFeeAccrual: money.NewPercent(10)}
	got, err := RequiredDeposit(cfg, &Auction{})
	require.NoError(t, err)
	require.Equal(t, money.Amount(100), got)

	got, err = RequiredDeposit(cfg, &Auction{HighestBid: money.Amount(105).Ptr()})
	require.NoError(t, err)
	require.Equal(t, money.Amount(110), got)
}

func TestGatedSale_Admission(t *testing.T) {
	h := newReadyHarness(t)
	id := h.createAuction("asset-1", func(msg *CreateAuction) {
		msg.Gated = true
		msg.InstantBuy = money.Amount(1000).Ptr()
	})
	open := h.createAuction("asset-2", nil)

	_, err := h.exec(alice, PlaceBid{AuctionID: id}, coin(105))
	requireRequired(t, err, marketerrors.ErrRegistrationRequired, 100)
	_, err = h.exec(alice, InstantBuy{AuctionID: id}, coin(1000))
	requireRequired(t, err, marketerrors.ErrRegistrationRequired, 100)

	_, err = h.exec(alice, register(id, alice, 100))
	require.ErrorIs(t, err, marketerrors.ErrWrongCaller)
	_, err = h.exec(rewardTokenID, register(open, alice, 100))
	require.ErrorIs(t, err, marketerrors.ErrNotGated)
	_, err = h.exec(rewardTokenID, register(id, creator, 100))
	require.ErrorIs(t, err, marketerrors.ErrSelfBid)
	_, err = h.exec(rewardTokenID, register(id, alice, 99))
	requireRequired(t, err, marketerrors.ErrWrongDeposit, 100)

	res := h.mustExec(rewardTokenID, register(id, alice, 100))
	require.Equal(t, []Instruction{burnReward(rewardTokenID, 100)}, res.Instructions)
	required, _ := res.Attribute("amount_required")
	require.Equal(t, "100", required)
	require.Equal(t, BidRecord{GatedDepositUsed: money.Amount(100).Ptr()}, *h.bid(id, alice))
	require.Equal(t, uint64(1), h.auction(id).TotalBidCount)

	_, err = h.exec(rewardTokenID, register(id, alice, 100))
	require.ErrorIs(t, err, marketerrors.ErrAlreadyRegistered)

	h.mustExec(alice, PlaceBid{AuctionID: id}, coin(105))
	require.Equal(t, uint64(2), h.auction(id).TotalBidCount)

	// late registrants pay the accrual on the current highest bid
	_, err = h.exec(bob, PlaceBid{AuctionID: id}, coin(110))
	requireRequired(t, err, marketerrors.ErrRegistrationRequired, 110)
	_, err = h.exec(rewardTokenID, register(id, bob, 100))
	requireRequired(t, err, marketerrors.ErrWrongDeposit, 110)
	h.mustExec(rewardTokenID, register(id, bob, 110))
	h.mustExec(bob, PlaceBid{AuctionID: id}, coin(110))
	require.Equal(t, uint64(4), h.auction(id).TotalBidCount)

	h.now += 1000
	_, err = h.exec(rewardTokenID, register(id, "carol", 100))
	require.ErrorIs(t, err, marketerrors.ErrClosed)
}

func TestGatedSale_RegistrantWithoutBids(t *testing.T) {
	h := newReadyHarness(t)
	id := h.createAuction("asset-1", func(msg *CreateAuction) { msg.Gated = true })
	h.mustExec(rewardTokenID, register(id, alice, 100))

	h.now += 1000
	_, err := h.exec(alice, RetractBid{AuctionID: id})
	require.ErrorIs(t, err, marketerrors.ErrNothingToRetract)
}

func TestGatedSale_SettlesWithGatedFee(t *testing.T) {
	h := newReadyHarness(t)
	id := h.createAuction("asset-1", func(msg *CreateAuction) { msg.Gated = true })
	h.mustExec(rewardTokenID, register(id, alice, 100))
	h.mustExec(alice, PlaceBid{AuctionID: id}, coin(1000))

	h.now += 1000
	res := h.mustExec(bob, WithdrawAsset{AuctionID: id})
	require.Equal(t, []Instruction{transferCurrency(creator, coin(900)), transferCurrency(collector, coin(100))},
		res.InstructionsOf(TransferCurrency))
}

func TestGatedSale_DepositSpentOnce(t *testing.T) {
	h := newReadyHarness(t)
	first := h.createAuction("asset-1", func(msg *CreateAuction) { msg.Gated = true })
	second := h.createAuction("asset-2", func(msg *CreateAuction) { msg.Gated = true })

	deposit := register(first, alice, 100)
	deposit.DepositID = "deposit-1"
	h.mustExec(rewardTokenID, deposit)

	before := h.snapshot()
	deposit.AuctionID = second
	_, err := h.exec(rewardTokenID, deposit)
	require.ErrorIs(t, err, marketerrors.ErrDepositAlreadyUsed)
	require.Equal(t, before, h.snapshot())

	deposit.DepositID = "deposit-2"
	h.mustExec(rewardTokenID, deposit)
	require.Equal(t, money.Amount(100), money.Value(h.bid(second, alice).GatedDepositUsed))
}
