/*
SPDX-License-Identifier: Apache-2.0
*/

// Package ledger adapts the Fabric world state to the marketplace ledgers.
package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// Store is the part of the chaincode stub the marketplace reads and writes.
// shim.ChaincodeStubInterface and shimtest.MockStub satisfy it.
type Store interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	CreateCompositeKey(objectType string, attributes []string) (string, error)
	GetStateByRange(startKey, endKey string) (shim.StateQueryIteratorInterface, error)
	GetStateByPartialCompositeKey(objectType string, keys []string) (shim.StateQueryIteratorInterface, error)
}

// GetJSON loads key into v. It reports false when the key is absent.
func GetJSON(s Store, key string, v interface{}) (bool, error) {
	data, err := s.GetState(key)
	if err != nil {
		return false, fmt.Errorf("failed to read %q from world state: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

// PutJSON stores v under key.
func PutJSON(s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := s.PutState(key, data); err != nil {
		return fmt.Errorf("failed to write %q to world state: %w", key, err)
	}
	return nil
}

// Each decodes every value yielded by iter into a fresh T and passes it to fn, closing iter.
// Iteration stops early when fn returns false.
func Each[T any](iter shim.StateQueryIteratorInterface, fn func(key string, v T) bool) error {
	defer iter.Close()
	for iter.HasNext() {
		kv, err := iter.Next()
		if err != nil {
			return fmt.Errorf("failed to iterate world state: %w", err)
		}
		var v T
		if err := json.Unmarshal(kv.Value, &v); err != nil {
			return fmt.Errorf("failed to decode %q: %w", kv.Key, err)
		}
		if !fn(kv.Key, v) {
			return nil
		}
	}
	return nil
}
