// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texhead encodes hardware-independent texture descriptions into
// the texture headers and sampler words a GPU texture unit reads.
//
// # Overview
//
// A [Descriptor] names a component layout, numeric type, swizzle, memory
// layout class, address, size and sampling state. An [Encoder] bound to a
// header layout version turns it into an [Output]: a 256-bit header and two
// sampler words, ready to be copied into GPU memory.
//
// The header layout version is chosen by the channel, not the caller: run
// the generation initializer in package channel once, then ask the channel
// for an encoder.
//
//	rec := &channel.Recorder{}
//	ch := channel.New(rec)
//	ch.Initialize(channel.Hopper)
//
//	enc, err := ch.Encoder()
//	if err != nil {
//	    return err
//	}
//	out, err := enc.Encode(&texhead.Descriptor{
//	    Components: texhead.ComponentsA8B8G8R8,
//	    DataType:   texhead.UNORM,
//	    Source:     texhead.IdentitySwizzle,
//	    Type:       texhead.TwoDTiled,
//	    Address:    0x1_0000_0200,
//	    Width:      256,
//	    Height:     256,
//	    Wrap:       texhead.Wrap,
//	    Filter:     texhead.Linear,
//	    Validated:  true,
//	})
//
// # Errors
//
// An unrecognized component layout is a contract violation: Encode returns
// a [*ContractError] and no output. Out-of-domain numeric types, swizzle
// sources, wrap and filter modes leave their bits at zero and log a
// warning, unless the encoder is created [WithStrictDomains].
//
// # Concurrency
//
// Encoders are immutable. Encode, [Encoder.EncodeBatch] and [Memo.Encode]
// are safe to call from any number of goroutines.
//
// # Packages
//
//   - layout: field positions per header layout version
//   - channel: generation-chained channel initialization
//   - pushbuf: ordered method stream implementing channel.Emitter
//   - gpuadapt: descriptors from gogpu/gputypes texture and sampler state
//   - upload: header and sampler pools in GPU buffers via gogpu/wgpu/hal
package texhead
