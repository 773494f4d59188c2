// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout describes where each texture header and sampler field
// lives, for every texture header layout version a channel can select.
//
// A texture header is a 256-bit image ([Header]) that the texture unit reads
// to interpret a memory region as a texture. A sampler is a pair of 32-bit
// words ([Sampler]) controlling addressing and filtering. The header field
// positions change between layout versions, the values stored in those
// fields (component sizes, data types, swizzle sources, ...) do not.
//
// The V2 field positions are representative. Check them against the
// hardware class headers before programming real hardware.
//
// # Header variants
//
// Three field sets share the header image and overlap each other:
//
//   - block linear, also used for 1D textures
//   - pitch linear
//   - 1D raw buffer
//
// Exactly one of them is written per header, selected by the
// HEADER_VERSION field. Format, swizzle and anisotropy fields sit outside
// the overlapping area and are common to all three.
//
// # Usage
//
//	l := layout.For(layout.V2)
//	var h layout.Header
//	l.Components.Set(h[:], layout.SizesA8B8G8R8)
//	l.BlockLinear.WidthMinusOne.Set(h[:], 255)
package layout
