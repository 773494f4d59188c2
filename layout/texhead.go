// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"encoding/binary"
	"fmt"
)

// Version identifies a texture header binary layout.
type Version uint8

const (
	// V1 is the Maxwell-era layout, implied when the channel never selects
	// a header version.
	V1 Version = iota + 1

	// V2 is the Hopper layout, selected with SET_TEXTURE_HEADER_VERSION = 1.
	// Its bit positions are representative of the Hopper header, not
	// copied from the hardware class headers.
	V2
)

// String returns the version name.
func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	case V2:
		return "V2"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

// Valid reports whether v names a known layout.
func (v Version) Valid() bool {
	return v == V1 || v == V2
}

// SelectValue is the SET_TEXTURE_HEADER_VERSION argument for v.
func (v Version) SelectValue() uint32 {
	if v == V2 {
		return 1
	}
	return 0
}

// HeaderWords is the number of 32-bit words in a texture header.
const HeaderWords = 8

// HeaderSize is the texture header size in bytes.
const HeaderSize = HeaderWords * 4

// SamplerWords is the number of sampler-state words produced per texture.
const SamplerWords = 2

// Header is a texture header image.
type Header [HeaderWords]uint32

// Bytes returns the little-endian memory image of h.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	for i, w := range h {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

// Sampler is the pair of sampler-state words.
type Sampler [SamplerWords]uint32

// Bytes returns the little-endian memory image of s.
func (s *Sampler) Bytes() []byte {
	b := make([]byte, SamplerWords*4)
	binary.LittleEndian.PutUint32(b[0:], s[0])
	binary.LittleEndian.PutUint32(b[4:], s[1])
	return b
}

// COMPONENTS values.
const (
	SizesR32G32B32A32 uint32 = 0x01
	SizesR16G16B16A16 uint32 = 0x03
	SizesA8B8G8R8     uint32 = 0x08
	SizesA2B10G10R10  uint32 = 0x09
	SizesR32          uint32 = 0x0f
	SizesA1B5G5R5     uint32 = 0x14
	SizesB5G6R5       uint32 = 0x15
	SizesG8R8         uint32 = 0x18
	SizesR16          uint32 = 0x1b
	SizesY8Video      uint32 = 0x1c
	SizesR8           uint32 = 0x1d
)

// DATA_TYPE values.
const (
	DataTypeSNORM uint32 = 1
	DataTypeUNORM uint32 = 2
	DataTypeSINT  uint32 = 3
	DataTypeUINT  uint32 = 4
	DataTypeFLOAT uint32 = 7
)

// X/Y/Z/W_SOURCE values.
const (
	SourceZero     uint32 = 0
	SourceR        uint32 = 2
	SourceG        uint32 = 3
	SourceB        uint32 = 4
	SourceA        uint32 = 5
	SourceOneInt   uint32 = 6
	SourceOneFloat uint32 = 7
)

// TEXTURE_TYPE values.
const (
	TextureTypeOneD         uint32 = 0
	TextureTypeTwoD         uint32 = 1
	TextureTypeThreeD       uint32 = 2
	TextureTypeCubemap      uint32 = 3
	TextureTypeOneDArray    uint32 = 4
	TextureTypeTwoDArray    uint32 = 5
	TextureTypeOneDBuffer   uint32 = 6
	TextureTypeTwoDNoMipmap uint32 = 7
	TextureTypeCubemapArray uint32 = 8
)

// BORDER_SOURCE values.
const (
	BorderSourceBorderTexture uint32 = 0
	BorderSourceBorderColor   uint32 = 1
)

// ANISO_FINE_SPREAD_MODIFIER values.
const (
	SpreadModifierNone     uint32 = 0
	SpreadModifierConstOne uint32 = 1
	SpreadModifierConstTwo uint32 = 2
	SpreadModifierSqrt     uint32 = 3
)

// MAX_ANISOTROPY values, shared by the header and sampler word 0.
const (
	Aniso1To1  uint32 = 0
	Aniso2To1  uint32 = 1
	Aniso4To1  uint32 = 2
	Aniso6To1  uint32 = 3
	Aniso8To1  uint32 = 4
	Aniso10To1 uint32 = 5
	Aniso12To1 uint32 = 6
	Aniso16To1 uint32 = 7
)

// HeaderVersionTags holds the HEADER_VERSION selector for each variant.
type HeaderVersionTags struct {
	OneDRaw     uint32
	Pitch       uint32
	BlockLinear uint32
}

// BlockLinearFields are written for tiled 2D and 1D textures.
type BlockLinearFields struct {
	AddressLo          Field // address >> 9
	AddressHi          Field // address >> 32
	GobsPerBlockWidth  Field
	GobsPerBlockHeight Field
	GobsPerBlockDepth  Field
	TextureType        Field
	WidthMinusOne      Field
	BorderSource       Field
	HeightMinusOne     Field
	DepthMinusOne      Field
	NormalizedCoords   Field
}

// PitchFields are written for pitch-linear 2D textures.
type PitchFields struct {
	AddressLo        Field // address >> 5
	AddressHi        Field // address >> 32
	Pitch            Field // pitch >> 5
	TextureType      Field
	WidthMinusOne    Field
	BorderSource     Field
	HeightMinusOne   Field
	NormalizedCoords Field
}

// RawBufferFields are written for 1D raw typed buffers.
type RawBufferFields struct {
	AddressLo     Field // address bits 31..0
	AddressHi     Field // address >> 32
	WidthMinusOne Field
}

// TexHead is the complete texture header layout of one version.
type TexHead struct {
	Version Version

	// Common to every variant.
	Components              Field
	DataType                []Field // one per channel (V1) or a single field (V2)
	XSource                 Field
	YSource                 Field
	ZSource                 Field
	WSource                 Field
	HeaderVersion           Field
	MaxAnisotropy           Field
	AnisoFineSpreadModifier Field

	Tags HeaderVersionTags

	BlockLinear BlockLinearFields
	Pitch       PitchFields
	RawBuffer   RawBufferFields
}

var texHeadV1 = TexHead{
	Version:    V1,
	Components: MW(6, 0),
	DataType: []Field{
		MW(9, 7),   // R
		MW(12, 10), // G
		MW(15, 13), // B
		MW(18, 16), // A
	},
	XSource:                 MW(21, 19),
	YSource:                 MW(24, 22),
	ZSource:                 MW(27, 25),
	WSource:                 MW(30, 28),
	HeaderVersion:           MW(87, 85),
	MaxAnisotropy:           MW(221, 219),
	AnisoFineSpreadModifier: MW(223, 222),

	Tags: HeaderVersionTags{
		OneDRaw:     0,
		Pitch:       2,
		BlockLinear: 3,
	},

	BlockLinear: BlockLinearFields{
		AddressLo:          MW(63, 41),
		AddressHi:          MW(79, 64),
		GobsPerBlockWidth:  MW(98, 96),
		GobsPerBlockHeight: MW(101, 99),
		GobsPerBlockDepth:  MW(104, 102),
		TextureType:        MW(154, 151),
		WidthMinusOne:      MW(143, 128),
		HeightMinusOne:     MW(175, 160),
		DepthMinusOne:      MW(189, 176),
		NormalizedCoords:   MW(191, 191),
	},
	Pitch: PitchFields{
		AddressLo:        MW(63, 37),
		AddressHi:        MW(79, 64),
		Pitch:            MW(111, 96),
		TextureType:      MW(154, 151),
		WidthMinusOne:    MW(143, 128),
		HeightMinusOne:   MW(175, 160),
		NormalizedCoords: MW(191, 191),
	},
	RawBuffer: RawBufferFields{
		AddressLo: MW(63, 32),
		AddressHi: MW(79, 64),
		// WIDTH_MINUS_ONE_BITS15TO0 and WIDTH_MINUS_ONE_BITS31TO16.
		WidthMinusOne: Split(Range{Hi: 143, Lo: 128}, Range{Hi: 111, Lo: 96}),
	},
}

// texHeadV2 is the V2 field table. The positions are representative, not
// authoritative register definitions.
var texHeadV2 = TexHead{
	Version:                 V2,
	Components:              MW(70, 64),
	DataType:                []Field{MW(73, 71)},
	XSource:                 MW(76, 74),
	YSource:                 MW(79, 77),
	ZSource:                 MW(82, 80),
	WSource:                 MW(85, 83),
	HeaderVersion:           MW(90, 88),
	MaxAnisotropy:           MW(221, 219),
	AnisoFineSpreadModifier: MW(223, 222),

	Tags: HeaderVersionTags{
		OneDRaw:     5,
		Pitch:       6,
		BlockLinear: 7,
	},

	BlockLinear: BlockLinearFields{
		AddressLo:          MW(31, 9),
		AddressHi:          MW(56, 32),
		GobsPerBlockWidth:  MW(98, 96),
		GobsPerBlockHeight: MW(101, 99),
		GobsPerBlockDepth:  MW(104, 102),
		TextureType:        MW(147, 144),
		WidthMinusOne:      MW(143, 128),
		BorderSource:       MW(148, 148),
		HeightMinusOne:     MW(175, 160),
		DepthMinusOne:      MW(189, 176),
		NormalizedCoords:   MW(191, 191),
	},
	Pitch: PitchFields{
		AddressLo:        MW(31, 5),
		AddressHi:        MW(56, 32),
		Pitch:            MW(112, 96),
		TextureType:      MW(147, 144),
		WidthMinusOne:    MW(143, 128),
		BorderSource:     MW(148, 148),
		HeightMinusOne:   MW(175, 160),
		NormalizedCoords: MW(191, 191),
	},
	RawBuffer: RawBufferFields{
		AddressLo:     MW(31, 0),
		AddressHi:     MW(63, 32),
		WidthMinusOne: MW(159, 128),
	},
}

// For returns the texture header layout of v. It returns nil for an
// unknown version. The returned layout is shared and must not be modified.
func For(v Version) *TexHead {
	switch v {
	case V1:
		return &texHeadV1
	case V2:
		return &texHeadV2
	default:
		return nil
	}
}
