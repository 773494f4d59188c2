// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package channel initializes a GPU command channel for a hardware
// generation and tracks the texture header layout version it selects.
//
// Each generation is a delta over the one before it: initializing Hopper
// emits everything Turing emits and then Hopper's own commands. The chain
// is data, not code, so the commands for any generation can be inspected
// with [Commands] without touching a channel.
//
//	pb := pushbuf.New()
//	ch := channel.New(pb)
//	ch.Initialize(channel.Hopper)
//	enc, err := ch.Encoder()
//
// Commands leave the package only through an [Emitter]. [Recorder] collects
// them in memory; package pushbuf encodes them as method headers.
package channel
