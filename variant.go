// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texhead

import "github.com/gogpu/texhead/layout"

// headerBody is the layout-class specific part of a texture header. Each
// implementation owns the fields of one header variant and writes only
// those, so a pitch header never carries block-linear fields and vice versa.
type headerBody interface {
	class() LayoutClass
	pack(l *layout.TexHead, h *layout.Header)
}

type rawBufferBody struct {
	address       uint64
	widthMinusOne uint32
}

func (rawBufferBody) class() LayoutClass { return OneDRawBuffer }

func (b rawBufferBody) pack(l *layout.TexHead, h *layout.Header) {
	f := &l.RawBuffer
	f.AddressLo.Set(h[:], b.address&0xFFFFFFFF)
	l.HeaderVersion.Set(h[:], uint64(l.Tags.OneDRaw))
	f.AddressHi.Set(h[:], b.address>>32)
	f.WidthMinusOne.Set(h[:], uint64(b.widthMinusOne))
}

type pitchBody struct {
	address        uint64
	pitch          uint32
	widthMinusOne  uint32
	heightMinusOne uint32
	normalized     bool
}

func (pitchBody) class() LayoutClass { return TwoDPitchLinear }

func (b pitchBody) pack(l *layout.TexHead, h *layout.Header) {
	f := &l.Pitch
	f.AddressLo.Set(h[:], b.address>>5)
	l.HeaderVersion.Set(h[:], uint64(l.Tags.Pitch))
	f.AddressHi.Set(h[:], b.address>>32)
	f.Pitch.Set(h[:], uint64(b.pitch>>5))
	f.TextureType.Set(h[:], uint64(layout.TextureTypeTwoDNoMipmap))
	f.WidthMinusOne.Set(h[:], uint64(b.widthMinusOne))
	f.BorderSource.Set(h[:], uint64(layout.BorderSourceBorderColor))
	f.HeightMinusOne.Set(h[:], uint64(b.heightMinusOne))
	f.NormalizedCoords.Set(h[:], boolBit(b.normalized))
}

type blockLinearBody struct {
	address        uint64
	oneD           bool
	gobs           BlockShape
	widthMinusOne  uint32
	heightMinusOne uint32
	normalized     bool
}

func (b blockLinearBody) class() LayoutClass {
	if b.oneD {
		return OneD
	}
	return TwoDTiled
}

func (b blockLinearBody) pack(l *layout.TexHead, h *layout.Header) {
	f := &l.BlockLinear
	textureType := layout.TextureTypeTwoDNoMipmap
	if b.oneD {
		textureType = layout.TextureTypeOneD
	}
	f.TextureType.Set(h[:], uint64(textureType))
	f.AddressLo.Set(h[:], b.address>>9)
	l.HeaderVersion.Set(h[:], uint64(l.Tags.BlockLinear))
	f.AddressHi.Set(h[:], b.address>>32)
	f.GobsPerBlockWidth.Set(h[:], uint64(b.gobs.X))
	f.GobsPerBlockHeight.Set(h[:], uint64(b.gobs.Y))
	f.GobsPerBlockDepth.Set(h[:], uint64(b.gobs.Z))
	f.WidthMinusOne.Set(h[:], uint64(b.widthMinusOne))
	f.BorderSource.Set(h[:], uint64(layout.BorderSourceBorderColor))
	f.HeightMinusOne.Set(h[:], uint64(b.heightMinusOne))
	// Single slice only.
	f.DepthMinusOne.Set(h[:], 0)
	f.NormalizedCoords.Set(h[:], boolBit(b.normalized))
}

// newBody builds the variant for d.Type. It returns nil for an unknown
// layout class, which is reported as a domain gap instead of being encoded
// as block linear.
func newBody(d *Descriptor) headerBody {
	switch d.Type {
	case OneDRawBuffer:
		return rawBufferBody{
			address:       d.Address,
			widthMinusOne: d.Width - 1,
		}
	case TwoDPitchLinear:
		return pitchBody{
			address:        d.Address,
			pitch:          d.Pitch,
			widthMinusOne:  d.Width - 1,
			heightMinusOne: d.Height - 1,
			normalized:     d.NormalizedCoords,
		}
	case TwoDTiled, OneD:
		return blockLinearBody{
			address:        d.Address,
			oneD:           d.Type == OneD,
			gobs:           d.Log2GobsPerBlock,
			widthMinusOne:  d.Width - 1,
			heightMinusOne: d.Height - 1,
			normalized:     d.NormalizedCoords,
		}
	default:
		return nil
	}
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
