// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pushbuf encodes channel method writes as a push buffer word
// stream.
//
// Small values fit in a single immediate-data header. Larger values use an
// incrementing method header with a count of one, followed by the value.
package pushbuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/texhead/channel"
)

// Header opcodes, bits 31:29.
const (
	OpIncMethod uint32 = 1
	OpImmediate uint32 = 4
)

// MaxImmediate is the largest value an immediate-data header can carry.
const MaxImmediate = 1<<13 - 1

const (
	opShift      = 29
	dataShift    = 16
	dataMask     = 0x1FFF
	subchShift   = 13
	subchMask    = 0x7
	addressMask  = 0xFFF
	methodToAddr = 2
)

// ErrMalformed is returned by Decode for a word stream it cannot parse.
var ErrMalformed = errors.New("pushbuf: malformed stream")

// PushBuffer is an ordered word stream. It implements channel.Emitter.
// PushBuffer is safe for concurrent use; writes are serialized.
type PushBuffer struct {
	mu    sync.Mutex
	words []uint32
}

var _ channel.Emitter = (*PushBuffer)(nil)

// New returns an empty push buffer.
func New() *PushBuffer {
	return &PushBuffer{}
}

// EmitImmediate appends one method write.
func (p *PushBuffer) EmitImmediate(subchannel, method, value uint32) {
	p.mu.Lock()
	p.words = appendMethod(p.words, subchannel, method, value)
	p.mu.Unlock()
}

func appendMethod(words []uint32, subchannel, method, value uint32) []uint32 {
	addr := (method >> methodToAddr) & addressMask
	subch := (subchannel & subchMask) << subchShift
	if value <= MaxImmediate {
		return append(words, OpImmediate<<opShift|value<<dataShift|subch|addr)
	}
	return append(words, OpIncMethod<<opShift|1<<dataShift|subch|addr, value)
}

// Words returns a copy of the stream.
func (p *PushBuffer) Words() []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uint32(nil), p.words...)
}

// Bytes returns the stream as little-endian bytes.
func (p *PushBuffer) Bytes() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	b := make([]byte, 0, len(p.words)*4)
	for _, w := range p.words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

// Len returns the number of words in the stream.
func (p *PushBuffer) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.words)
}

// Reset empties the stream, keeping its storage.
func (p *PushBuffer) Reset() {
	p.mu.Lock()
	p.words = p.words[:0]
	p.mu.Unlock()
}

// Decode turns a word stream back into commands. Incrementing headers with
// a count above one expand into consecutive methods.
func Decode(words []uint32) ([]channel.Command, error) {
	var cmds []channel.Command
	for i := 0; i < len(words); {
		h := words[i]
		subch := (h >> subchShift) & subchMask
		method := (h & addressMask) << methodToAddr
		data := (h >> dataShift) & dataMask

		switch h >> opShift {
		case OpImmediate:
			cmds = append(cmds, channel.Command{Subchannel: subch, Method: method, Value: data})
			i++
		case OpIncMethod:
			count := int(data)
			if count == 0 || i+count >= len(words) {
				return nil, fmt.Errorf("%w: header %#08x at word %d needs %d values", ErrMalformed, h, i, count)
			}
			for j := range count {
				cmds = append(cmds, channel.Command{
					Subchannel: subch,
					Method:     method + uint32(j)<<methodToAddr,
					Value:      words[i+1+j],
				})
			}
			i += 1 + count
		default:
			return nil, fmt.Errorf("%w: unknown opcode %d at word %d", ErrMalformed, h>>opShift, i)
		}
	}
	return cmds, nil
}
