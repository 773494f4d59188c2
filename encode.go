// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texhead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/texhead/layout"
)

// Output is one encoded texture: the header image and its sampler words.
// Both are copied verbatim into GPU memory by the caller.
type Output struct {
	Version layout.Version
	Header  layout.Header
	Sampler layout.Sampler
}

// Bytes returns the header memory image.
func (o *Output) Bytes() []byte {
	return o.Header.Bytes()
}

// SamplerBytes returns the sampler memory image.
func (o *Output) SamplerBytes() []byte {
	return o.Sampler.Bytes()
}

// Encoder turns descriptors into texture headers for one header layout
// version. An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	version layout.Version
	head    *layout.TexHead
	samp    *layout.SamplerLayout
	opts    encoderOptions
}

// NewEncoder returns an encoder for header layout version v.
func NewEncoder(v layout.Version, opts ...EncoderOption) (*Encoder, error) {
	head := layout.For(v)
	samp := layout.SamplerFor(v)
	if head == nil || samp == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVersion, v)
	}

	o := defaultEncoderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Encoder{
		version: v,
		head:    head,
		samp:    samp,
		opts:    o,
	}, nil
}

// Encode encodes d with a default encoder for version v.
func Encode(v layout.Version, d *Descriptor) (*Output, error) {
	e, err := NewEncoder(v)
	if err != nil {
		return nil, err
	}
	return e.Encode(d)
}

// Version returns the header layout version e encodes for.
func (e *Encoder) Version() layout.Version {
	return e.version
}

// Strict reports whether out-of-domain values are rejected.
func (e *Encoder) Strict() bool {
	return e.opts.strict
}

// Encode builds the texture header and sampler words for d.
//
// An unknown component layout always fails with a *ContractError and no
// output. Other out-of-domain enum values leave their bits at zero unless
// the encoder was created WithStrictDomains.
func (e *Encoder) Encode(d *Descriptor) (*Output, error) {
	if d == nil || !d.Validated {
		return nil, ErrNotValidated
	}

	out := &Output{Version: e.version}
	h := out.Header[:]
	s := out.Sampler[:]
	l := e.head
	sl := e.samp

	sizes, ok := componentSizes[d.Components]
	if !ok {
		return nil, &ContractError{Field: "component layout", Value: d.Components}
	}
	l.Components.Set(h, uint64(sizes))

	if dt, ok := dataTypes[d.DataType]; ok {
		for _, f := range l.DataType {
			f.Set(h, uint64(dt))
		}
	} else if err := e.gap("numeric type", d.DataType); err != nil {
		return nil, err
	}

	swizzle := [4]struct {
		name  string
		src   ChannelSource
		field layout.Field
	}{
		{"x source", d.Source.X, l.XSource},
		{"y source", d.Source.Y, l.YSource},
		{"z source", d.Source.Z, l.ZSource},
		{"w source", d.Source.W, l.WSource},
	}
	for _, sw := range swizzle {
		if v, ok := channelSources[sw.src]; ok {
			sw.field.Set(h, uint64(v))
		} else if err := e.gap(sw.name, sw.src); err != nil {
			return nil, err
		}
	}

	// Edge clamping on every axis until the wrap mode says otherwise.
	sl.AddressU.Set(s, uint64(layout.AddressClampToEdge))
	sl.AddressV.Set(s, uint64(layout.AddressClampToEdge))
	sl.AddressP.Set(s, uint64(layout.AddressClampToEdge))

	if body := newBody(d); body != nil {
		body.pack(l, &out.Header)
	} else if err := e.gap("layout class", d.Type); err != nil {
		return nil, err
	}

	// U and V only: P keeps the edge clamp from above.
	if addr, ok := wrapAddressing[d.Wrap]; ok {
		sl.AddressU.Set(s, uint64(addr))
		sl.AddressV.Set(s, uint64(addr))
	} else if err := e.gap("wrap mode", d.Wrap); err != nil {
		return nil, err
	}

	if fs, ok := filterStates[d.Filter]; ok {
		out.Sampler[1] = sl.MagFilter.Word(fs.mag) |
			sl.MinFilter.Word(fs.min) |
			sl.MipFilter.Word(fs.mip)
		if fs.aniso {
			sl.MaxAnisotropy.Set(s, uint64(fs.level))
			l.MaxAnisotropy.Set(h, uint64(fs.level))
			l.AnisoFineSpreadModifier.Set(h, uint64(layout.SpreadModifierConstTwo))
		}
	} else if err := e.gap("filter mode", d.Filter); err != nil {
		return nil, err
	}

	if lg := Logger(); lg.Enabled(context.Background(), slog.LevelDebug) {
		lg.Debug("texhead: encoded texture",
			"version", e.version,
			"class", d.Type,
			"components", d.Components,
			"width", d.Width,
			"height", d.Height)
	}

	return out, nil
}

// gap handles an out-of-domain value whose bits the hardware driver leaves
// untouched. In strict mode it becomes a contract violation.
func (e *Encoder) gap(field string, v fmt.Stringer) error {
	if e.opts.strict {
		return &ContractError{Field: field, Value: v}
	}
	Logger().Warn("texhead: value outside domain left unencoded",
		"field", field,
		"value", v.String(),
		"version", e.version)
	return nil
}
