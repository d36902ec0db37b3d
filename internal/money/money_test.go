package money

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount_CheckedArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		op      func() (Amount, error)
		want    Amount
		wantErr error
	}{
		{name: "add", op: func() (Amount, error) { return Amount(40).Add(2) }, want: 42},
		{name: "add_overflow", op: func() (Amount, error) { return Amount(math.MaxUint64).Add(1) }, wantErr: ErrOverflow},
		{name: "sub", op: func() (Amount, error) { return Amount(50).Sub(8) }, want: 42},
		{name: "sub_to_zero", op: func() (Amount, error) { return Amount(8).Sub(8) }, want: 0},
		{name: "sub_underflow", op: func() (Amount, error) { return Amount(1).Sub(2) }, wantErr: ErrUnderflow},
		{name: "mul", op: func() (Amount, error) { return Amount(6).Mul(7) }, want: 42},
		{name: "mul_overflow", op: func() (Amount, error) { return Amount(math.MaxUint64 / 2).Mul(3) }, wantErr: ErrOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op()
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAmount_Half(t *testing.T) {
	first, second := Amount(101).Half()
	require.Equal(t, Amount(50), first)
	require.Equal(t, Amount(51), second)

	first, second = Amount(100).Half()
	require.Equal(t, Amount(50), first)
	require.Equal(t, Amount(50), second)
}

func TestPercent_OfTruncates(t *testing.T) {
	tests := []struct {
		name    string
		percent Percent
		amount  Amount
		want    Amount
	}{
		{name: "five_percent", percent: NewPercent(5), amount: 1000, want: 50},
		{name: "rounds_down", percent: NewPercent(5), amount: 39, want: 1},
		{name: "below_one_unit", percent: NewPercent(5), amount: 19, want: 0},
		{name: "fractional_percent", percent: MustParsePercent("0.025"), amount: 1000, want: 25},
		{name: "full", percent: NewPercent(100), amount: 777, want: 777},
		{name: "zero", percent: Percent{}, amount: 777, want: 0},
		{name: "large_amount", percent: NewPercent(50), amount: math.MaxUint64, want: math.MaxUint64 / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.percent.Of(tc.amount)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPercent_OfOverflow(t *testing.T) {
	_, err := NewPercent(200).Of(math.MaxUint64)
	require.True(t, errors.Is(err, ErrOverflow))

	_, err = MustParsePercent("-0.1").Of(100)
	require.True(t, errors.Is(err, ErrUnderflow))
}

func TestPercent_Ranges(t *testing.T) {
	require.True(t, NewPercent(0).IsFraction())
	require.False(t, NewPercent(0).IsPositiveFraction())
	require.True(t, NewPercent(100).IsPositiveFraction())
	require.False(t, NewPercent(101).IsFraction())
	require.False(t, MustParsePercent("-0.01").IsFraction())
	require.True(t, NewPercent(10).Add(NewPercent(5)).Equal(NewPercent(15)))
}

func TestPercent_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Fee Percent `json:"fee"`
	}{Fee: NewPercent(5)})
	require.NoError(t, err)
	require.JSONEq(t, `{"fee":"0.05"}`, string(data))

	var decoded struct {
		Fee Percent `json:"fee"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fee":"0.125"}`), &decoded))
	require.True(t, decoded.Fee.Equal(MustParsePercent("0.125")))

	_, err = ParsePercent("five")
	require.Error(t, err)
}
