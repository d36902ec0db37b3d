package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

func TestInstantiate_TwoPhase(t *testing.T) {
	h := newHarness(t)

	res := h.mustExec(owner, testInstantiate())
	require.Len(t, res.Instructions, 1)
	instr := res.Instructions[0]
	require.Equal(t, InstantiateRewardToken, instr.Kind)
	require.Equal(t, "MKT", instr.Label)
	require.NotNil(t, instr.ReplyTag)
	require.Equal(t, RewardTokenReplyTag, *instr.ReplyTag)
	require.Len(t, res.Digest, 64)

	state, err := h.market.State()
	require.NoError(t, err)
	require.Equal(t, State{NextAuctionID: 1, Phase: AwaitingRewardToken}, *state)

	cfg, err := h.market.Config()
	require.NoError(t, err)
	require.Equal(t, owner, cfg.Owner)
	require.Equal(t, DefaultMinDuration, cfg.MinDuration)
	require.Equal(t, DefaultSnipeExtension, cfg.SnipeExtension)
	require.True(t, cfg.MaxRoyalty.Equal(DefaultMaxRoyalty))

	info, err := h.market.ContractInfo()
	require.NoError(t, err)
	require.Equal(t, ContractInfo{Name: ContractName, Version: ContractVersion}, *info)

	// operations that need the reward token are held back until the reply
	id := h.createAuction("asset-1", nil)
	h.now += 1000
	_, err = h.exec(alice, WithdrawAsset{AuctionID: id})
	require.ErrorIs(t, err, marketerrors.ErrRewardTokenNotReady)

	_, err = h.exec(alice, Reply{Tag: RewardTokenReplyTag, Result: ReplyResult{Address: rewardTokenID}})
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)

	_, err = h.exec(owner, Reply{Tag: 7, Result: ReplyResult{Address: rewardTokenID}})
	require.ErrorIs(t, err, marketerrors.ErrUnknownReplyTag)

	before := h.snapshot()
	_, err = h.exec(owner, Reply{Tag: RewardTokenReplyTag, Result: ReplyResult{Error: "out of gas"}})
	require.ErrorIs(t, err, marketerrors.ErrReplyFailed)
	require.Equal(t, before, h.snapshot())

	h.mustExec(owner, Reply{Tag: RewardTokenReplyTag, Result: ReplyResult{Address: rewardTokenID}})
	state, err = h.market.State()
	require.NoError(t, err)
	require.Equal(t, Ready, state.Phase)
	require.Equal(t, rewardTokenID, state.RewardToken)

	// the tag is consumed
	_, err = h.exec(owner, Reply{Tag: RewardTokenReplyTag, Result: ReplyResult{Address: "other"}})
	require.ErrorIs(t, err, marketerrors.ErrUnknownReplyTag)

	h.mustExec(alice, WithdrawAsset{AuctionID: id})
}

func TestInstantiate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*Instantiate)
		wantErr error
	}{
		{
			name:    "missing_denom",
			edit:    func(msg *Instantiate) { msg.Denom = "" },
			wantErr: marketerrors.ErrInvalidMessage,
		},
		{
			name:    "missing_fee_collector",
			edit:    func(msg *Instantiate) { msg.FeeCollector = "" },
			wantErr: marketerrors.ErrInvalidAddress,
		},
		{
			name:    "margin_above_one",
			edit:    func(msg *Instantiate) { msg.BidMargin = money.MustParsePercent("1.5") },
			wantErr: marketerrors.ErrInvalidPercentage,
		},
		{
			name:    "fee_plus_royalty_above_one",
			edit:    func(msg *Instantiate) { msg.PlatformFee = money.MustParsePercent("0.95") },
			wantErr: marketerrors.ErrInvalidPercentage,
		},
		{
			name:    "negative_cancellation_fee",
			edit:    func(msg *Instantiate) { msg.CancellationFee = money.MustParsePercent("-0.1") },
			wantErr: marketerrors.ErrInvalidPercentage,
		},
		{
			name:    "zero_gated_opening",
			edit:    func(msg *Instantiate) { msg.GatedMinOpening = 0 },
			wantErr: marketerrors.ErrZeroAmount,
		},
		{
			name: "inverted_durations",
			edit: func(msg *Instantiate) {
				msg.MinDuration = 3600
				msg.MaxDuration = 60
			},
			wantErr: marketerrors.ErrInvalidDuration,
		},
		{
			name: "snipe_extension_above_max_duration",
			edit: func(msg *Instantiate) {
				msg.MaxDuration = 3600
				msg.SnipeExtension = 3601
			},
			wantErr: marketerrors.ErrInvalidDuration,
		},
		{
			name: "snipe_window_above_max_duration",
			edit: func(msg *Instantiate) {
				msg.MaxDuration = 3600
				msg.SnipeWindow = 3601
			},
			wantErr: marketerrors.ErrInvalidDuration,
		},
		{
			name:    "missing_token_label",
			edit:    func(msg *Instantiate) { msg.RewardTokenLabel = "" },
			wantErr: marketerrors.ErrInvalidMessage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			msg := testInstantiate()
			tc.edit(&msg)
			_, err := h.exec(owner, msg)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, h.stub.State)
		})
	}
}

func TestInstantiate_Twice(t *testing.T) {
	h := newReadyHarness(t)
	_, err := h.exec(owner, testInstantiate())
	require.ErrorIs(t, err, marketerrors.ErrAlreadyInitialized)
}

func TestOperationsBeforeInstantiate(t *testing.T) {
	h := newHarness(t)
	_, err := h.exec(assetContract, CreateAuction{Creator: creator, AssetID: "asset-1", EndTime: h.now + 1000})
	require.ErrorIs(t, err, marketerrors.ErrNotInitialized)
	_, err = h.market.Config()
	require.ErrorIs(t, err, marketerrors.ErrNotInitialized)
}

func TestUpdateConfig(t *testing.T) {
	h := newReadyHarness(t)

	margin := money.MustParsePercent("0.1")
	_, err := h.exec(alice, UpdateConfig{BidMargin: &margin})
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)

	tooHigh := money.MustParsePercent("0.95")
	_, err = h.exec(owner, UpdateConfig{PlatformFee: &tooHigh})
	require.ErrorIs(t, err, marketerrors.ErrInvalidPercentage)

	newOwner := "new-owner"
	h.mustExec(owner, UpdateConfig{BidMargin: &margin, Owner: &newOwner})
	cfg, err := h.market.Config()
	require.NoError(t, err)
	require.True(t, cfg.BidMargin.Equal(margin))
	require.Equal(t, newOwner, cfg.Owner)
	require.Equal(t, collector, cfg.FeeCollector)

	_, err = h.exec(owner, UpdateConfig{BidMargin: &margin})
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
}

func TestUpdateCancellationPolicy(t *testing.T) {
	h := newReadyHarness(t)

	fee := money.MustParsePercent("0.2")
	_, err := h.exec(alice, UpdateCancellationPolicy{FeePercentage: fee})
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)

	_, err = h.exec(owner, UpdateCancellationPolicy{FeePercentage: money.MustParsePercent("1.2")})
	require.ErrorIs(t, err, marketerrors.ErrInvalidPercentage)

	h.mustExec(owner, UpdateCancellationPolicy{FeePercentage: fee})
	policy, err := h.market.CancellationPolicy()
	require.NoError(t, err)
	require.True(t, policy.FeePercentage.Equal(fee))
}

func TestUpdateRoyalty(t *testing.T) {
	h := newReadyHarness(t)

	_, err := h.exec(creator, UpdateRoyalty{FeePercentage: money.MustParsePercent("0.11")})
	require.ErrorIs(t, err, marketerrors.ErrInvalidPercentage)

	royalty, err := h.market.Royalty(creator)
	require.NoError(t, err)
	require.True(t, royalty.FeePercentage.IsZero())
	require.Equal(t, creator, royalty.Recipient)

	h.mustExec(creator, UpdateRoyalty{FeePercentage: money.MustParsePercent("0.1")})
	royalty, err = h.market.Royalty(creator)
	require.NoError(t, err)
	require.True(t, royalty.FeePercentage.Equal(money.NewPercent(10)))
	require.Equal(t, creator, royalty.Recipient)

	h.mustExec(creator, UpdateRoyalty{FeePercentage: money.NewPercent(3), Recipient: "studio"})
	royalty, err = h.market.Royalty(creator)
	require.NoError(t, err)
	require.True(t, royalty.FeePercentage.Equal(money.NewPercent(3)))
	require.Equal(t, "studio", royalty.Recipient)
}
