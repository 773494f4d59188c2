// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package upload stores encoded texture headers and samplers in GPU
// buffers.
//
// A [Pool] owns two storage buffers: a header pool and a sampler pool,
// indexed the same way. Slot i of the header pool holds the 32-byte
// texture header for texture i; slot i of the sampler pool holds its
// sampler words.
package upload

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/texhead"
	"github.com/gogpu/texhead/layout"
)

// Slot sizes in bytes.
const (
	HeaderStride  = layout.HeaderSize
	SamplerStride = 32
)

var (
	// ErrIndexOutOfRange is returned for a slot beyond the pool capacity.
	ErrIndexOutOfRange = errors.New("upload: index out of range")

	// ErrPoolClosed is returned by writes after Close.
	ErrPoolClosed = errors.New("upload: pool closed")

	// ErrNoHAL is returned by NewFromProvider when the provider does not
	// expose HAL device and queue handles.
	ErrNoHAL = errors.New("upload: provider does not expose HAL types")
)

// Allocator creates and destroys buffers. hal.Device satisfies it.
type Allocator interface {
	CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error)
	DestroyBuffer(buffer hal.Buffer)
}

// Writer copies bytes into a buffer. hal.Queue satisfies it.
type Writer interface {
	WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) error
}

// Pool is a pair of header and sampler buffers. It is safe for concurrent
// use.
type Pool struct {
	mu       sync.Mutex
	alloc    Allocator
	queue    Writer
	headers  hal.Buffer
	samplers hal.Buffer
	capacity int
	closed   bool
}

// New creates buffers for capacity textures.
func New(alloc Allocator, queue Writer, capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("upload: capacity %d must be positive", capacity)
	}

	usage := gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst

	headers, err := alloc.CreateBuffer(&hal.BufferDescriptor{
		Label: "texhead_headers",
		Size:  uint64(capacity) * HeaderStride,
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("upload: create header pool: %w", err)
	}

	samplers, err := alloc.CreateBuffer(&hal.BufferDescriptor{
		Label: "texhead_samplers",
		Size:  uint64(capacity) * SamplerStride,
		Usage: usage,
	})
	if err != nil {
		alloc.DestroyBuffer(headers)
		return nil, fmt.Errorf("upload: create sampler pool: %w", err)
	}

	texhead.Logger().Debug("upload: pool created",
		"capacity", capacity,
		"header_bytes", capacity*HeaderStride,
		"sampler_bytes", capacity*SamplerStride)

	return &Pool{
		alloc:    alloc,
		queue:    queue,
		headers:  headers,
		samplers: samplers,
		capacity: capacity,
	}, nil
}

// NewFromProvider creates a pool on a device shared by a gogpu provider.
// The provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func NewFromProvider(provider gpucontext.DeviceProvider, capacity int) (*Pool, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return New(device, queue, capacity)
}

// Write stores out in slot index.
func (p *Pool) Write(index int, out *texhead.Output) error {
	return p.WriteRange(index, []*texhead.Output{out})
}

// WriteRange stores outs in consecutive slots starting at first, with one
// buffer write per pool. Headers are written before samplers. If the sampler
// write fails, the slots hold the new headers with their old samplers and
// the error says so; callers should rewrite the range.
func (p *Pool) WriteRange(first int, outs []*texhead.Output) error {
	if len(outs) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	if first < 0 || first+len(outs) > p.capacity {
		return fmt.Errorf("%w: slots [%d, %d) in pool of %d", ErrIndexOutOfRange, first, first+len(outs), p.capacity)
	}

	headers := make([]byte, 0, len(outs)*HeaderStride)
	samplers := make([]byte, len(outs)*SamplerStride)
	for i, out := range outs {
		if out == nil {
			return fmt.Errorf("upload: nil output for slot %d", first+i)
		}
		headers = append(headers, out.Bytes()...)
		copy(samplers[i*SamplerStride:], out.SamplerBytes())
	}

	if err := p.queue.WriteBuffer(p.headers, uint64(first)*HeaderStride, headers); err != nil {
		return fmt.Errorf("upload: write headers: %w", err)
	}
	if err := p.queue.WriteBuffer(p.samplers, uint64(first)*SamplerStride, samplers); err != nil {
		return fmt.Errorf("upload: write samplers (headers for slots [%d, %d) already written): %w",
			first, first+len(outs), err)
	}
	return nil
}

// HeaderBuffer returns the header pool buffer for binding.
func (p *Pool) HeaderBuffer() hal.Buffer {
	return p.headers
}

// SamplerBuffer returns the sampler pool buffer for binding.
func (p *Pool) SamplerBuffer() hal.Buffer {
	return p.samplers
}

// Capacity returns the number of slots.
func (p *Pool) Capacity() int {
	return p.capacity
}

// Close destroys both buffers. It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.alloc.DestroyBuffer(p.headers)
	p.alloc.DestroyBuffer(p.samplers)
}
