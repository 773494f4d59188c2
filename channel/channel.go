// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package channel

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gogpu/texhead"
	"github.com/gogpu/texhead/layout"
)

// ErrNotInitialized is returned by Channel.Encoder before Initialize.
var ErrNotInitialized = errors.New("channel: not initialized")

// Emitter writes one immediate method value to the channel. Calls from a
// single Initialize arrive in order and must reach the hardware in order.
type Emitter interface {
	EmitImmediate(subchannel, method, value uint32)
}

// Option configures a Channel.
type Option func(*options)

type options struct {
	subchannel uint32
}

func defaultOptions() options {
	return options{subchannel: Subchannel3D}
}

// WithSubchannel binds the 3D engine to subchannel s instead of
// Subchannel3D. Only the low 3 bits are meaningful.
func WithSubchannel(s uint32) Option {
	return func(o *options) {
		o.subchannel = s & 7
	}
}

// Channel is a command channel and the header layout version its
// initialization selected. It is safe for concurrent use.
type Channel struct {
	mu      sync.RWMutex
	emit    Emitter
	opts    options
	gen     Generation
	version layout.Version
}

// New returns an uninitialized channel writing through emit.
func New(emit Emitter, opts ...Option) *Channel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Channel{emit: emit, opts: o}
}

// Initialize emits the full generation chain for gen and makes its header
// layout version active. Running it again re-emits the same commands.
// Initializing with a different generation replaces the active state.
//
// Initialize panics if gen is not a known generation.
func (c *Channel) Initialize(gen Generation) {
	cmds := Commands(gen)
	version := HeaderVersion(gen)

	c.mu.Lock()
	defer c.mu.Unlock()

	log := texhead.Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	for _, cmd := range cmds {
		cmd.Subchannel = c.opts.subchannel
		if debug {
			log.Debug("channel: emit", "generation", gen, "command", cmd)
		}
		c.emit.EmitImmediate(cmd.Subchannel, cmd.Method, cmd.Value)
	}

	if c.gen != gen {
		log.Info("channel: initialized",
			"generation", gen,
			"previous", c.gen,
			"header_version", version,
			"commands", len(cmds))
	}
	c.gen = gen
	c.version = version
}

// Generation returns the active generation, or 0 before Initialize.
func (c *Channel) Generation() Generation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// HeaderVersion returns the active header layout version, or 0 before
// Initialize.
func (c *Channel) HeaderVersion() layout.Version {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Encoder returns an encoder for the active header layout version.
func (c *Channel) Encoder(opts ...texhead.EncoderOption) (*texhead.Encoder, error) {
	v := c.HeaderVersion()
	if v == 0 {
		return nil, ErrNotInitialized
	}
	return texhead.NewEncoder(v, opts...)
}

// Recorder is an Emitter that keeps every command in memory.
// The zero value is ready to use.
type Recorder struct {
	mu   sync.Mutex
	cmds []Command
}

// EmitImmediate records one command.
func (r *Recorder) EmitImmediate(subchannel, method, value uint32) {
	r.mu.Lock()
	r.cmds = append(r.cmds, Command{Subchannel: subchannel, Method: method, Value: value})
	r.mu.Unlock()
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Command(nil), r.cmds...)
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.cmds = r.cmds[:0]
	r.mu.Unlock()
}
