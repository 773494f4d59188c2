// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuadapt builds texture descriptors from WebGPU texture and
// sampler descriptions.
//
// [FromGPUTypes] maps a gputypes.TextureDescriptor and
// gputypes.SamplerDescriptor onto a [texhead.Descriptor]. [Validate] then
// checks the geometry rules the encoder assumes and marks the descriptor
// as validated.
package gpuadapt

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texhead"
)

var (
	// ErrUnsupportedFormat is returned for a texture format with no header
	// encoding.
	ErrUnsupportedFormat = errors.New("gpuadapt: unsupported texture format")

	// ErrUnsupportedSampler is returned for sampler state the header
	// cannot express.
	ErrUnsupportedSampler = errors.New("gpuadapt: unsupported sampler state")

	// ErrInvalidGeometry is returned by Validate for sizes, addresses or
	// pitches the hardware cannot address.
	ErrInvalidGeometry = errors.New("gpuadapt: invalid texture geometry")
)

// Alignment requirements, in bytes.
const (
	TiledAlignment = 512
	PitchAlignment = 32
)

// Largest extent a pitch or block-linear header can describe.
const maxExtent = 1 << 16

// maxPitch is the largest pitch, in bytes, whose pitch >> 5 fits the PITCH
// field of every header layout.
const maxPitch = 0xFFFF << 5

// Source is a WebGPU-style texture with the placement details the header
// needs.
type Source struct {
	Texture gputypes.TextureDescriptor
	Sampler gputypes.SamplerDescriptor

	// Address is the GPU virtual address of the texel data.
	Address uint64

	// Pitch is the row stride of a pitch-linear 2D texture. Zero selects
	// block-linear tiling.
	Pitch uint32

	// Tiling is the log2 GOBs-per-block shape of a block-linear texture.
	Tiling texhead.BlockShape

	// RawBuffer marks a 1D texture as a raw buffer view.
	RawBuffer bool
}

// FromGPUTypes maps src onto a descriptor. The result is not yet
// validated; pass it to Validate before encoding.
func FromGPUTypes(src Source) (texhead.Descriptor, error) {
	var d texhead.Descriptor

	info, ok := formats[src.Texture.Format]
	if !ok {
		return d, fmt.Errorf("%w: %v", ErrUnsupportedFormat, src.Texture.Format)
	}
	d.Components = info.components
	d.DataType = info.numeric
	d.Source = info.swizzle

	class, err := layoutClass(src)
	if err != nil {
		return d, err
	}
	d.Type = class

	wrap, err := wrapMode(src.Sampler)
	if err != nil {
		return d, err
	}
	d.Wrap = wrap

	filter, err := filterMode(src.Sampler)
	if err != nil {
		return d, err
	}
	d.Filter = filter

	d.Address = src.Address
	d.Width = src.Texture.Size.Width
	d.Height = max(src.Texture.Size.Height, 1)
	d.Pitch = src.Pitch
	d.Log2GobsPerBlock = src.Tiling
	d.NormalizedCoords = true

	texhead.Logger().Debug("gpuadapt: mapped texture",
		"label", src.Texture.Label,
		"format", src.Texture.Format,
		"class", d.Type,
		"wrap", d.Wrap,
		"filter", d.Filter)

	return d, nil
}

func layoutClass(src Source) (texhead.LayoutClass, error) {
	switch src.Texture.Dimension {
	case gputypes.TextureDimension1D:
		if src.RawBuffer {
			return texhead.OneDRawBuffer, nil
		}
		return texhead.OneD, nil
	case gputypes.TextureDimension2D:
		if src.Texture.Size.DepthOrArrayLayers > 1 {
			return 0, fmt.Errorf("%w: 2D arrays are not supported", ErrInvalidGeometry)
		}
		if src.Pitch != 0 {
			return texhead.TwoDPitchLinear, nil
		}
		return texhead.TwoDTiled, nil
	default:
		return 0, fmt.Errorf("%w: dimension %v", ErrInvalidGeometry, src.Texture.Dimension)
	}
}

var addressModes = map[gputypes.AddressMode]texhead.WrapMode{
	gputypes.AddressModeUndefined:    texhead.ClampToEdge,
	gputypes.AddressModeClampToEdge:  texhead.ClampToEdge,
	gputypes.AddressModeRepeat:       texhead.Wrap,
	gputypes.AddressModeMirrorRepeat: texhead.Mirror,
}

// wrapMode maps the U and V address modes. The header carries a single
// mode for both axes, so they must agree.
func wrapMode(s gputypes.SamplerDescriptor) (texhead.WrapMode, error) {
	u, ok := addressModes[s.AddressModeU]
	if !ok {
		return 0, fmt.Errorf("%w: address mode %v", ErrUnsupportedSampler, s.AddressModeU)
	}
	v, ok := addressModes[s.AddressModeV]
	if !ok {
		return 0, fmt.Errorf("%w: address mode %v", ErrUnsupportedSampler, s.AddressModeV)
	}
	if u != v {
		return 0, fmt.Errorf("%w: U %v and V %v differ", ErrUnsupportedSampler, s.AddressModeU, s.AddressModeV)
	}
	return u, nil
}

// filterMode picks the filter from the minification state. Anisotropy
// above 1 rounds down to the nearest supported level.
func filterMode(s gputypes.SamplerDescriptor) (texhead.FilterMode, error) {
	switch {
	case s.MaxAnisotropy >= 16:
		return texhead.Aniso16X, nil
	case s.MaxAnisotropy >= 8:
		return texhead.Aniso8X, nil
	case s.MaxAnisotropy >= 4:
		return texhead.Aniso4X, nil
	case s.MaxAnisotropy >= 2:
		return texhead.Aniso2X, nil
	}

	switch s.MinFilter {
	case gputypes.FilterModeUndefined, gputypes.FilterModeNearest:
		return texhead.Nearest, nil
	case gputypes.FilterModeLinear:
		return texhead.Linear, nil
	default:
		return 0, fmt.Errorf("%w: filter mode %v", ErrUnsupportedSampler, s.MinFilter)
	}
}

// Validate checks d against the rules the encoder relies on and marks it
// validated. d is left unchanged on error.
func Validate(d *texhead.Descriptor) error {
	if err := checkGeometry(d); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGeometry, err)
	}
	d.Validated = true
	return nil
}

func checkGeometry(d *texhead.Descriptor) error {
	bpp, ok := bytesPerTexel[d.Components]
	if !ok {
		return fmt.Errorf("unknown component layout %v", d.Components)
	}
	if d.Width == 0 || d.Height == 0 {
		return fmt.Errorf("zero extent %dx%d", d.Width, d.Height)
	}

	switch d.Type {
	case texhead.OneDRawBuffer:
		if d.Height != 1 {
			return fmt.Errorf("raw buffer height %d, want 1", d.Height)
		}
	case texhead.OneD:
		if d.Height != 1 {
			return fmt.Errorf("1D height %d, want 1", d.Height)
		}
		fallthrough
	case texhead.TwoDTiled:
		if d.Address%TiledAlignment != 0 {
			return fmt.Errorf("tiled address %#x not %d-byte aligned", d.Address, TiledAlignment)
		}
		if d.Width > maxExtent || d.Height > maxExtent {
			return fmt.Errorf("extent %dx%d exceeds %d", d.Width, d.Height, maxExtent)
		}
	case texhead.TwoDPitchLinear:
		if d.Address%PitchAlignment != 0 {
			return fmt.Errorf("pitch address %#x not %d-byte aligned", d.Address, PitchAlignment)
		}
		if d.Pitch%PitchAlignment != 0 {
			return fmt.Errorf("pitch %d not a multiple of %d", d.Pitch, PitchAlignment)
		}
		if d.Pitch > maxPitch {
			return fmt.Errorf("pitch %d exceeds %d", d.Pitch, maxPitch)
		}
		if uint64(d.Pitch) < uint64(d.Width)*uint64(bpp) {
			return fmt.Errorf("pitch %d below row size %d", d.Pitch, d.Width*bpp)
		}
		if d.Width > maxExtent || d.Height > maxExtent {
			return fmt.Errorf("extent %dx%d exceeds %d", d.Width, d.Height, maxExtent)
		}
	default:
		return fmt.Errorf("unknown layout class %v", d.Type)
	}
	return nil
}
