/*
SPDX-License-Identifier: Apache-2.0
*/

package marketerrors

import (
	"errors"
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// Validation errors
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidMessage      = errors.New("invalid message")
	ErrInvalidDuration     = errors.New("invalid auction duration")
	ErrInvalidPriceOrder   = errors.New("invalid price ordering")
	ErrInvalidPercentage   = errors.New("invalid percentage")
	ErrZeroAmount          = errors.New("amount cannot be zero")
	ErrInstantBuyDisabled  = errors.New("instant buy is not enabled for this auction")
	ErrNotGated            = errors.New("auction is not a gated sale")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrUnknownReplyTag     = errors.New("unknown reply tag")
	ErrAlreadyInitialized  = errors.New("marketplace already initialized")
	ErrNotInitialized      = errors.New("marketplace not initialized")
	ErrRewardTokenNotReady = errors.New("reward token address not yet known")
	ErrAssetAlreadyListed  = errors.New("asset is already held by an open auction")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrSelfBid      = errors.New("creator cannot bid on own auction")
	ErrNotCreator   = errors.New("only the auction creator can do this")
	ErrWrongCaller  = errors.New("unexpected caller")

	// The asset or token contract did not confirm the transfer the caller claims.
	ErrTransferNotConfirmed = errors.New("asset transfer not confirmed")
	ErrDepositNotConfirmed  = errors.New("token deposit not confirmed")
)

// Timing errors
var (
	ErrNotStarted     = errors.New("auction has not started yet")
	ErrClosed         = errors.New("auction is closed")
	ErrNotEnded       = errors.New("auction has not ended yet")
	ErrEndTimeExpired = errors.New("end time already expired")
)

// Economic errors
var (
	ErrEmptyFunds           = errors.New("no funds attached")
	ErrWrongDenom           = errors.New("wrong denomination")
	ErrMultipleDenoms       = errors.New("multiple denominations attached")
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrUseInstantBuy        = errors.New("bid reaches the instant buy price, use instant buy")
	ErrInaccurateFunds      = errors.New("attached funds do not match the required amount")
	ErrRegistrationRequired = errors.New("gated sale registration required")
	ErrWrongDeposit         = errors.New("gated sale deposit does not match the required amount")
	ErrAlreadyRegistered    = errors.New("already registered for this gated sale")
	ErrDepositAlreadyUsed   = errors.New("deposit has already been used for a registration")
	ErrAlreadyRetracted     = errors.New("bid already retracted or paid out")
	ErrNothingToRetract     = errors.New("no escrowed amount to retract")
	ErrWinnerCannotRetract  = errors.New("winning bidder cannot retract")
	ErrAlreadyResolved      = errors.New("auction already resolved")
	ErrReplyFailed          = errors.New("external service reported failure")
)

// AmountError is an economic rejection that carries the amount the caller must supply to retry.
type AmountError struct {
	Err      error
	Required money.Amount
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("%v: required %d", e.Err, e.Required)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}

// WithRequired wraps err with the required amount.
func WithRequired(err error, required money.Amount) error {
	return &AmountError{Err: err, Required: required}
}

// RequiredAmount extracts the required amount from an error chain.
func RequiredAmount(err error) (money.Amount, bool) {
	var amountErr *AmountError
	if errors.As(err, &amountErr) {
		return amountErr.Required, true
	}
	return 0, false
}
