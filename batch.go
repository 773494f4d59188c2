// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texhead

import (
	"context"
	"fmt"

	"github.com/gogpu/texhead/internal/cache"
	"github.com/gogpu/texhead/internal/parallel"
)

// minParallelBatch is the batch size below which EncodeBatch stays on the
// calling goroutine.
const minParallelBatch = 64

// EncodeBatch encodes every descriptor and returns the outputs in input
// order. Encoding fans out over GOMAXPROCS workers for large batches.
//
// If any descriptor fails, EncodeBatch returns the error of the lowest
// failing index and no outputs. ctx is checked before each descriptor.
func (e *Encoder) EncodeBatch(ctx context.Context, descs []Descriptor) ([]*Output, error) {
	out := make([]*Output, len(descs))
	errs := make([]error, len(descs))

	encodeOne := func(i int) {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			return
		}
		out[i], errs[i] = e.Encode(&descs[i])
	}

	if len(descs) < minParallelBatch {
		for i := range descs {
			encodeOne(i)
		}
	} else {
		pool := parallel.NewWorkerPool(0)
		work := make([]func(), len(descs))
		for i := range work {
			work[i] = func() { encodeOne(i) }
		}
		pool.ExecuteAll(work)
		pool.Close()
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("texhead: descriptor %d: %w", i, err)
		}
	}
	return out, nil
}

// Memo is an Encoder that remembers recent results. Encoding is a pure
// function of the descriptor, so a hit returns the same bits a fresh
// encode would.
//
// Memo is safe for concurrent use.
type Memo struct {
	enc   *Encoder
	cache *cache.Cache[Descriptor, Output]
}

// MemoStats reports memo effectiveness.
type MemoStats struct {
	Entries   int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first encode.
	HitRate float64
}

// NewMemo wraps enc with an LRU of the given capacity.
func NewMemo(enc *Encoder, capacity int) *Memo {
	return &Memo{
		enc:   enc,
		cache: cache.New[Descriptor, Output](capacity),
	}
}

// Encode returns the cached output for d, encoding it on a miss. Errors are
// not cached. Each call returns its own copy of the output.
func (m *Memo) Encode(d *Descriptor) (*Output, error) {
	if d == nil {
		return nil, ErrNotValidated
	}
	if cached, ok := m.cache.Get(*d); ok {
		return &cached, nil
	}

	out, err := m.enc.Encode(d)
	if err != nil {
		return nil, err
	}
	m.cache.Set(*d, *out)
	return out, nil
}

// Encoder returns the wrapped encoder.
func (m *Memo) Encoder() *Encoder {
	return m.enc
}

// Stats returns hit and miss counters and the hit rate.
func (m *Memo) Stats() MemoStats {
	s := m.cache.Stats()
	return MemoStats{
		Entries:   s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   s.HitRate,
	}
}
