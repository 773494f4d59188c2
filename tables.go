// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texhead

import "github.com/gogpu/texhead/layout"

// Each table maps one descriptor enum to the constant stored in its field.
// A missing key is an out-of-domain value.

var componentSizes = map[ComponentLayout]uint32{
	ComponentsA8B8G8R8:     layout.SizesA8B8G8R8,
	ComponentsA2B10G10R10:  layout.SizesA2B10G10R10,
	ComponentsB5G6R5:       layout.SizesB5G6R5,
	ComponentsA1B5G5R5:     layout.SizesA1B5G5R5,
	ComponentsR8:           layout.SizesR8,
	ComponentsR32:          layout.SizesR32,
	ComponentsR16:          layout.SizesR16,
	ComponentsG8R8:         layout.SizesG8R8,
	ComponentsR16G16B16A16: layout.SizesR16G16B16A16,
	ComponentsR32G32B32A32: layout.SizesR32G32B32A32,
	ComponentsY8Video:      layout.SizesY8Video,
}

// SNORM shares the FLOAT encoding on this hardware family.
var dataTypes = map[NumericType]uint32{
	UNORM: layout.DataTypeUNORM,
	UINT:  layout.DataTypeUINT,
	FLOAT: layout.DataTypeFLOAT,
	SNORM: layout.DataTypeFLOAT,
	SINT:  layout.DataTypeSINT,
}

var channelSources = map[ChannelSource]uint32{
	FromA:    layout.SourceA,
	FromR:    layout.SourceR,
	FromG:    layout.SourceG,
	FromB:    layout.SourceB,
	Zero:     layout.SourceZero,
	OneFloat: layout.SourceOneFloat,
}

var wrapAddressing = map[WrapMode]uint32{
	Wrap:        layout.AddressWrap,
	ClampToEdge: layout.AddressClampToEdge,
	Mirror:      layout.AddressMirror,
	BorderColor: layout.AddressBorder,
}

// filterState is the sampler word 1 filter triple plus the anisotropy
// level. aniso is false for point and linear filtering.
type filterState struct {
	mag, min, mip uint32
	aniso         bool
	level         uint32
}

var filterStates = map[FilterMode]filterState{
	Nearest:  {mag: layout.MagPoint, min: layout.MinPoint, mip: layout.MipNone},
	Linear:   {mag: layout.MagLinear, min: layout.MinLinear, mip: layout.MipNone},
	Aniso2X:  {mag: layout.MagLinear, min: layout.MinAniso, mip: layout.MipNone, aniso: true, level: layout.Aniso2To1},
	Aniso4X:  {mag: layout.MagLinear, min: layout.MinAniso, mip: layout.MipNone, aniso: true, level: layout.Aniso4To1},
	Aniso8X:  {mag: layout.MagLinear, min: layout.MinAniso, mip: layout.MipNone, aniso: true, level: layout.Aniso8To1},
	Aniso16X: {mag: layout.MagLinear, min: layout.MinAniso, mip: layout.MipNone, aniso: true, level: layout.Aniso16To1},
}
