// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuadapt

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/texhead"
)

// formatInfo is how one WebGPU format is laid out in a texture header.
type formatInfo struct {
	components texhead.ComponentLayout
	numeric    texhead.NumericType
	swizzle    texhead.Swizzle
}

var (
	swizzleR    = texhead.Swizzle{X: texhead.FromR, Y: texhead.Zero, Z: texhead.Zero, W: texhead.OneFloat}
	swizzleRG   = texhead.Swizzle{X: texhead.FromR, Y: texhead.FromG, Z: texhead.Zero, W: texhead.OneFloat}
	swizzleRGBA = texhead.IdentitySwizzle
	swizzleBGRA = texhead.Swizzle{X: texhead.FromB, Y: texhead.FromG, Z: texhead.FromR, W: texhead.FromA}
)

// formats lists every gputypes format with a header encoding. sRGB,
// depth/stencil and block-compressed formats have none.
var formats = map[gputypes.TextureFormat]formatInfo{
	gputypes.TextureFormatR8Unorm: {texhead.ComponentsR8, texhead.UNORM, swizzleR},
	gputypes.TextureFormatR8Snorm: {texhead.ComponentsR8, texhead.SNORM, swizzleR},
	gputypes.TextureFormatR8Uint:  {texhead.ComponentsR8, texhead.UINT, swizzleR},
	gputypes.TextureFormatR8Sint:  {texhead.ComponentsR8, texhead.SINT, swizzleR},

	gputypes.TextureFormatR16Unorm: {texhead.ComponentsR16, texhead.UNORM, swizzleR},
	gputypes.TextureFormatR16Snorm: {texhead.ComponentsR16, texhead.SNORM, swizzleR},
	gputypes.TextureFormatR16Uint:  {texhead.ComponentsR16, texhead.UINT, swizzleR},
	gputypes.TextureFormatR16Sint:  {texhead.ComponentsR16, texhead.SINT, swizzleR},
	gputypes.TextureFormatR16Float: {texhead.ComponentsR16, texhead.FLOAT, swizzleR},

	gputypes.TextureFormatRG8Unorm: {texhead.ComponentsG8R8, texhead.UNORM, swizzleRG},
	gputypes.TextureFormatRG8Snorm: {texhead.ComponentsG8R8, texhead.SNORM, swizzleRG},
	gputypes.TextureFormatRG8Uint:  {texhead.ComponentsG8R8, texhead.UINT, swizzleRG},
	gputypes.TextureFormatRG8Sint:  {texhead.ComponentsG8R8, texhead.SINT, swizzleRG},

	gputypes.TextureFormatR32Float: {texhead.ComponentsR32, texhead.FLOAT, swizzleR},
	gputypes.TextureFormatR32Uint:  {texhead.ComponentsR32, texhead.UINT, swizzleR},
	gputypes.TextureFormatR32Sint:  {texhead.ComponentsR32, texhead.SINT, swizzleR},

	gputypes.TextureFormatRGBA8Unorm: {texhead.ComponentsA8B8G8R8, texhead.UNORM, swizzleRGBA},
	gputypes.TextureFormatRGBA8Snorm: {texhead.ComponentsA8B8G8R8, texhead.SNORM, swizzleRGBA},
	gputypes.TextureFormatRGBA8Uint:  {texhead.ComponentsA8B8G8R8, texhead.UINT, swizzleRGBA},
	gputypes.TextureFormatRGBA8Sint:  {texhead.ComponentsA8B8G8R8, texhead.SINT, swizzleRGBA},
	gputypes.TextureFormatBGRA8Unorm: {texhead.ComponentsA8B8G8R8, texhead.UNORM, swizzleBGRA},

	gputypes.TextureFormatRGB10A2Unorm: {texhead.ComponentsA2B10G10R10, texhead.UNORM, swizzleRGBA},
	gputypes.TextureFormatRGB10A2Uint:  {texhead.ComponentsA2B10G10R10, texhead.UINT, swizzleRGBA},

	gputypes.TextureFormatRGBA16Unorm: {texhead.ComponentsR16G16B16A16, texhead.UNORM, swizzleRGBA},
	gputypes.TextureFormatRGBA16Snorm: {texhead.ComponentsR16G16B16A16, texhead.SNORM, swizzleRGBA},
	gputypes.TextureFormatRGBA16Uint:  {texhead.ComponentsR16G16B16A16, texhead.UINT, swizzleRGBA},
	gputypes.TextureFormatRGBA16Sint:  {texhead.ComponentsR16G16B16A16, texhead.SINT, swizzleRGBA},
	gputypes.TextureFormatRGBA16Float: {texhead.ComponentsR16G16B16A16, texhead.FLOAT, swizzleRGBA},

	gputypes.TextureFormatRGBA32Float: {texhead.ComponentsR32G32B32A32, texhead.FLOAT, swizzleRGBA},
	gputypes.TextureFormatRGBA32Uint:  {texhead.ComponentsR32G32B32A32, texhead.UINT, swizzleRGBA},
	gputypes.TextureFormatRGBA32Sint:  {texhead.ComponentsR32G32B32A32, texhead.SINT, swizzleRGBA},
}

// bytesPerTexel is the storage size of one texel per component layout.
var bytesPerTexel = map[texhead.ComponentLayout]uint32{
	texhead.ComponentsA8B8G8R8:     4,
	texhead.ComponentsA2B10G10R10:  4,
	texhead.ComponentsB5G6R5:       2,
	texhead.ComponentsA1B5G5R5:     2,
	texhead.ComponentsR8:           1,
	texhead.ComponentsR32:          4,
	texhead.ComponentsR16:          2,
	texhead.ComponentsG8R8:         2,
	texhead.ComponentsR16G16B16A16: 8,
	texhead.ComponentsR32G32B32A32: 16,
	texhead.ComponentsY8Video:      1,
}

// Supported reports whether f has a header encoding.
func Supported(f gputypes.TextureFormat) bool {
	_, ok := formats[f]
	return ok
}
