/*
SPDX-License-Identifier: Apache-2.0
*/

// Package money holds the amount and percentage types used for every ledger balance.
package money

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

var (
	ErrOverflow  = errors.New("arithmetic overflow")
	ErrUnderflow = errors.New("arithmetic underflow")
)

// Amount is a non-negative quantity of the smallest unit of a denomination.
type Amount uint64

func (a Amount) IsZero() bool {
	return a == 0
}

// Add returns a+b or ErrOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return Amount(sum), nil
}

// Sub returns a-b or ErrUnderflow.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%w: %d - %d", ErrUnderflow, a, b)
	}
	return Amount(diff), nil
}

// Mul returns a*b or ErrOverflow.
func (a Amount) Mul(b Amount) (Amount, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return Amount(lo), nil
}

// Half splits a into two parts whose sum is exactly a; the odd unit goes to the second part.
func (a Amount) Half() (first, second Amount) {
	first = a / 2
	return first, a - first
}

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// Ptr returns a pointer to a copy of a, for optional fields.
func (a Amount) Ptr() *Amount {
	return &a
}

// Max returns the larger of a and b.
func Max(a, b Amount) Amount {
	if a > b {
		return a
	}
	return b
}

// Value dereferences an optional amount, treating nil as zero.
func Value(a *Amount) Amount {
	if a == nil {
		return 0
	}
	return *a
}
