package market

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

const (
	owner         = "owner"
	collector     = "collector"
	creator       = "creator"
	alice         = "alice"
	bob           = "bob"
	assetContract = "asset-contract"
	rewardTokenID = "reward-token"
	denom         = "uusd"

	genesis uint64 = 1_700_000_000
)

type harness struct {
	t      *testing.T
	stub   *shimtest.MockStub
	market *Market
	logs   *logtest.Hook
	now    uint64
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	stub := shimtest.NewMockStub("marketplace", nil)
	opts = append([]Option{WithLogger(logger)}, opts...)
	return &harness{
		t:      t,
		stub:   stub,
		market: New(stub, opts...),
		logs:   hook,
		now:    genesis,
	}
}

// newReadyHarness returns a marketplace that has been instantiated and has its reward token.
func newReadyHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := newHarness(t, opts...)
	h.mustExec(owner, testInstantiate())
	h.mustExec(owner, Reply{Tag: RewardTokenReplyTag, Result: ReplyResult{Address: rewardTokenID}})
	return h
}

func testInstantiate() Instantiate {
	return Instantiate{
		Denom:            denom,
		BidMargin:        money.MustParsePercent("0.05"),
		PlatformFee:      money.MustParsePercent("0.05"),
		GatedPlatformFee: money.MustParsePercent("0.1"),
		FeeCollector:     collector,
		FullReward:       money.MustParsePercent("0.1"),
		PartialReward:    money.MustParsePercent("0.01"),
		GatedMinOpening:  100,
		GatedFeeAccrual:  money.MustParsePercent("0.1"),
		CancellationFee:  money.MustParsePercent("0.1"),
		RewardTokenLabel: "MKT",
	}
}

func (h *harness) exec(caller string, msg Msg, funds ...money.Coin) (*Response, error) {
	h.t.Helper()
	txID := uuid.NewString()
	h.stub.MockTransactionStart(txID)
	defer h.stub.MockTransactionEnd(txID)
	return h.market.Execute(Env{TxID: txID, Now: h.now, Caller: caller, Funds: funds}, msg)
}

func (h *harness) mustExec(caller string, msg Msg, funds ...money.Coin) *Response {
	h.t.Helper()
	res, err := h.exec(caller, msg, funds...)
	require.NoError(h.t, err)
	return res
}

// createAuction lists asset for the creator, ending 1000s from now with a start price of 100.
func (h *harness) createAuction(asset string, edit func(*CreateAuction)) uint64 {
	h.t.Helper()
	msg := CreateAuction{
		Creator:    creator,
		AssetID:    asset,
		StartPrice: money.Amount(100).Ptr(),
		EndTime:    h.now + 1000,
	}
	if edit != nil {
		edit(&msg)
	}
	res := h.mustExec(assetContract, msg)
	attr, ok := res.Attribute("auction_id")
	require.True(h.t, ok)
	id, err := strconv.ParseUint(attr, 10, 64)
	require.NoError(h.t, err)
	return id
}

func (h *harness) auction(id uint64) *Auction {
	h.t.Helper()
	a, err := h.market.Auction(id)
	require.NoError(h.t, err)
	return a
}

func (h *harness) bid(id uint64, bidder string) *BidRecord {
	h.t.Helper()
	b, err := h.market.Bid(id, bidder)
	require.NoError(h.t, err)
	return b
}

// snapshot copies the world state so rejected operations can be shown to leave it untouched.
func (h *harness) snapshot() map[string]string {
	out := make(map[string]string, len(h.stub.State))
	for k, v := range h.stub.State {
		out[k] = string(v)
	}
	return out
}

func coin(amount money.Amount) money.Coin {
	return money.NewCoin(amount, denom)
}

func requireRequired(t *testing.T, err error, target error, required money.Amount) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
	got, ok := marketerrors.RequiredAmount(err)
	require.True(t, ok, "error carries no required amount: %v", err)
	require.Equal(t, required, got)
}
