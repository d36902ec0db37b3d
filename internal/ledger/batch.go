/*
SPDX-License-Identifier: Apache-2.0
*/

package ledger

import "fmt"

// Batch buffers the writes of one operation on top of a Store.
// Reads see the buffered writes. Nothing reaches the underlying store until Commit,
// so an operation that fails part way leaves the world state untouched.
// Range and composite-key scans go to the underlying store and do not see buffered writes.
type Batch struct {
	Store
	pending map[string][]byte
	order   []string
}

func NewBatch(s Store) *Batch {
	return &Batch{Store: s, pending: make(map[string][]byte)}
}

func (b *Batch) GetState(key string) ([]byte, error) {
	if v, ok := b.pending[key]; ok {
		return v, nil
	}
	return b.Store.GetState(key)
}

func (b *Batch) PutState(key string, value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("refusing to write empty value for %q", key)
	}
	if _, ok := b.pending[key]; !ok {
		b.order = append(b.order, key)
	}
	b.pending[key] = value
	return nil
}

// Len is the number of distinct keys waiting to be committed.
func (b *Batch) Len() int {
	return len(b.order)
}

// Commit writes the buffered values in first-write order.
func (b *Batch) Commit() error {
	for _, key := range b.order {
		if err := b.Store.PutState(key, b.pending[key]); err != nil {
			return fmt.Errorf("failed to commit %q: %w", key, err)
		}
	}
	b.pending = make(map[string][]byte)
	b.order = nil
	return nil
}
