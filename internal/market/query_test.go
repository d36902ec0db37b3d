package market

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

func ids(t *testing.T, entries []AuctionEntry) []uint64 {
	t.Helper()
	out := make([]uint64, 0, len(entries))
	for _, e := range entries {
		require.Equal(t, e.ID, e.Auction.ID)
		out = append(out, e.ID)
	}
	return out
}

func span(from, to uint64) []uint64 {
	var out []uint64
	for id := from; id <= to; id++ {
		out = append(out, id)
	}
	return out
}

func TestListAuctions(t *testing.T) {
	h := newReadyHarness(t)
	for i := 0; i < 35; i++ {
		h.createAuction(fmt.Sprintf("asset-%d", i), nil)
	}

	tests := []struct {
		name       string
		startAfter uint64
		limit      uint32
		want       []uint64
	}{
		{name: "default_limit", want: span(1, 10)},
		{name: "page", startAfter: 10, limit: 5, want: span(11, 15)},
		{name: "clamped", limit: 100, want: span(1, 30)},
		{name: "tail", startAfter: 33, limit: 10, want: span(34, 35)},
		{name: "past_the_end", startAfter: 35, want: []uint64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := h.market.ListAuctions(tc.startAfter, tc.limit)
			require.NoError(t, err)
			require.Equal(t, tc.want, ids(t, got))
		})
	}
}

func TestQueries_NotFound(t *testing.T) {
	h := newReadyHarness(t)
	id := h.createAuction("asset-1", nil)

	_, err := h.market.Auction(id + 1)
	require.ErrorIs(t, err, marketerrors.ErrNotFound)
	_, err = h.market.Bid(id, alice)
	require.ErrorIs(t, err, marketerrors.ErrNotFound)
	_, err = h.market.History(id + 1)
	require.ErrorIs(t, err, marketerrors.ErrNotFound)

	history, err := h.market.History(id)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestHistory_SeparatesAuctions(t *testing.T) {
	h := newReadyHarness(t)
	first := h.createAuction("asset-1", nil)
	second := h.createAuction("asset-2", nil)

	h.mustExec(alice, PlaceBid{AuctionID: first}, coin(105))
	h.mustExec(alice, PlaceBid{AuctionID: second}, coin(300))
	h.mustExec(bob, PlaceBid{AuctionID: second}, coin(400))

	history, err := h.market.History(first)
	require.NoError(t, err)
	require.Len(t, history, 1)

	history, err = h.market.History(second)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, bob, history[1].Bidder)

	mine, err := h.market.HistoryForBidder(second, bob)
	require.NoError(t, err)
	require.Equal(t, []HistoryEntry{{Bidder: bob, Amount: 400, Time: h.now}}, mine)
}
