// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texhead

import "fmt"

// ComponentLayout is the channel count and bit width of each texel.
type ComponentLayout uint8

// Component layouts. The zero value is not a valid layout.
const (
	ComponentsA8B8G8R8 ComponentLayout = iota + 1
	ComponentsA2B10G10R10
	ComponentsB5G6R5
	ComponentsA1B5G5R5
	ComponentsR8
	ComponentsR32
	ComponentsR16
	ComponentsG8R8
	ComponentsR16G16B16A16
	ComponentsR32G32B32A32
	ComponentsY8Video
)

var componentNames = map[ComponentLayout]string{
	ComponentsA8B8G8R8:     "A8B8G8R8",
	ComponentsA2B10G10R10:  "A2B10G10R10",
	ComponentsB5G6R5:       "B5G6R5",
	ComponentsA1B5G5R5:     "A1B5G5R5",
	ComponentsR8:           "R8",
	ComponentsR32:          "R32",
	ComponentsR16:          "R16",
	ComponentsG8R8:         "G8R8",
	ComponentsR16G16B16A16: "R16G16B16A16",
	ComponentsR32G32B32A32: "R32G32B32A32",
	ComponentsY8Video:      "Y8_VIDEO",
}

func (c ComponentLayout) String() string {
	if s, ok := componentNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ComponentLayout(%d)", uint8(c))
}

// NumericType is how raw component bits are interpreted.
type NumericType uint8

// Numeric types.
const (
	UNORM NumericType = iota + 1
	UINT
	FLOAT
	SNORM
	SINT
)

func (n NumericType) String() string {
	switch n {
	case UNORM:
		return "UNORM"
	case UINT:
		return "UINT"
	case FLOAT:
		return "FLOAT"
	case SNORM:
		return "SNORM"
	case SINT:
		return "SINT"
	default:
		return fmt.Sprintf("NumericType(%d)", uint8(n))
	}
}

// ChannelSource selects what feeds one output channel.
type ChannelSource uint8

// Channel sources.
const (
	FromA ChannelSource = iota + 1
	FromR
	FromG
	FromB
	Zero
	OneFloat
)

func (s ChannelSource) String() string {
	switch s {
	case FromA:
		return "A"
	case FromR:
		return "R"
	case FromG:
		return "G"
	case FromB:
		return "B"
	case Zero:
		return "0"
	case OneFloat:
		return "1.0"
	default:
		return fmt.Sprintf("ChannelSource(%d)", uint8(s))
	}
}

// Swizzle maps the X, Y, Z and W outputs to their sources.
type Swizzle struct {
	X, Y, Z, W ChannelSource
}

// IdentitySwizzle passes R, G, B and A through unchanged.
var IdentitySwizzle = Swizzle{X: FromR, Y: FromG, Z: FromB, W: FromA}

// LayoutClass selects how the texture is laid out in memory.
type LayoutClass uint8

// Layout classes.
const (
	OneD LayoutClass = iota + 1
	OneDRawBuffer
	TwoDPitchLinear
	TwoDTiled
)

func (l LayoutClass) String() string {
	switch l {
	case OneD:
		return "1D"
	case OneDRawBuffer:
		return "1D raw buffer"
	case TwoDPitchLinear:
		return "2D pitch linear"
	case TwoDTiled:
		return "2D tiled"
	default:
		return fmt.Sprintf("LayoutClass(%d)", uint8(l))
	}
}

// WrapMode is the sampler addressing mode for U and V.
type WrapMode uint8

// Wrap modes.
const (
	Wrap WrapMode = iota + 1
	ClampToEdge
	Mirror
	BorderColor
)

func (w WrapMode) String() string {
	switch w {
	case Wrap:
		return "wrap"
	case ClampToEdge:
		return "clamp-to-edge"
	case Mirror:
		return "mirror"
	case BorderColor:
		return "border"
	default:
		return fmt.Sprintf("WrapMode(%d)", uint8(w))
	}
}

// FilterMode is the sampler filtering mode.
type FilterMode uint8

// Filter modes.
const (
	Nearest FilterMode = iota + 1
	Linear
	Aniso2X
	Aniso4X
	Aniso8X
	Aniso16X
)

func (f FilterMode) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case Aniso2X:
		return "aniso2x"
	case Aniso4X:
		return "aniso4x"
	case Aniso8X:
		return "aniso8x"
	case Aniso16X:
		return "aniso16x"
	default:
		return fmt.Sprintf("FilterMode(%d)", uint8(f))
	}
}

// BlockShape is the log2 of the GOBs per block in x, y and z. Only tiled
// and 1D textures use it.
type BlockShape struct {
	X, Y, Z uint8
}

// Descriptor is a hardware-independent texture description.
//
// Descriptor is a comparable value; it can key a map.
type Descriptor struct {
	Components ComponentLayout
	DataType   NumericType
	Source     Swizzle
	Type       LayoutClass

	// Address is the GPU virtual address of texel (0, 0). It must be
	// 512-byte aligned for tiled and 1D textures, 32-byte aligned for
	// pitch-linear textures.
	Address uint64

	// Width and Height are in texels and must be at least 1.
	Width  uint32
	Height uint32

	// Pitch is the row stride in bytes, pitch-linear only. Multiple of 32.
	Pitch uint32

	Log2GobsPerBlock BlockShape
	NormalizedCoords bool
	Wrap             WrapMode
	Filter           FilterMode

	// Validated is set by the upstream validation pass. Encode refuses
	// descriptors that were never validated.
	Validated bool
}
