/*
SPDX-License-Identifier: Apache-2.0
*/

// Package market implements the auction lifecycle, escrow accounting and settlement
// of the marketplace on top of a ledger.Store.
package market

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

// Market runs operations against one world state. Operations are expected to arrive one at
// a time in the order the host has agreed on; Market does no locking of its own.
type Market struct {
	store    ledger.Store
	minters  MinterResolver
	deductor Deductor
	log      logrus.FieldLogger
}

type Option func(*Market)

func WithMinterResolver(r MinterResolver) Option {
	return func(m *Market) { m.minters = r }
}

func WithDeductor(d Deductor) Option {
	return func(m *Market) { m.deductor = d }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Market) { m.log = l }
}

func New(store ledger.Store, opts ...Option) *Market {
	m := &Market{
		store:    store,
		minters:  noMinter{},
		deductor: noDeduction{},
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Execute runs msg as a single all-or-nothing operation. On error no state is written
// and no instructions are returned.
func (m *Market) Execute(env Env, msg Msg) (*Response, error) {
	log := m.log.WithFields(logrus.Fields{
		"action": msg.action(),
		"caller": env.Caller,
		"tx_id":  env.TxID,
	})

	batch := ledger.NewBatch(m.store)
	res, err := m.dispatch(batch, env, msg)
	if err != nil {
		log.WithError(err).Warn("operation rejected")
		return nil, err
	}
	if err := res.seal(env.TxID); err != nil {
		return nil, err
	}
	writes := batch.Len()
	if err := batch.Commit(); err != nil {
		log.WithError(err).Error("commit failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"writes":       writes,
		"instructions": len(res.Instructions),
		"digest":       res.Digest,
	}).Info("operation committed")
	return res, nil
}

func (m *Market) dispatch(s ledger.Store, env Env, msg Msg) (*Response, error) {
	switch msg := msg.(type) {
	case Instantiate:
		return m.instantiate(s, env, msg)
	case Reply:
		return m.reply(s, env, msg)
	case CreateAuction:
		return m.createAuction(s, env, msg)
	case RegisterGatedSale:
		return m.registerGatedSale(s, env, msg)
	case PlaceBid:
		return m.placeBid(s, env, msg)
	case InstantBuy:
		return m.instantBuy(s, env, msg)
	case RetractBid:
		return m.retractBid(s, env, msg)
	case WithdrawAsset:
		return m.withdrawAsset(s, env, msg)
	case CancelAuction:
		return m.cancelAuction(s, env, msg)
	case UpdateRoyalty:
		return m.updateRoyalty(s, env, msg)
	case UpdateConfig:
		return m.updateConfig(s, env, msg)
	case UpdateCancellationPolicy:
		return m.updateCancellationPolicy(s, env, msg)
	}
	return nil, fmt.Errorf("%w: unsupported operation %T", marketerrors.ErrInvalidMessage, msg)
}
