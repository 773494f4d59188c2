// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

// ADDRESS_U/V/P values.
const (
	AddressWrap        uint32 = 0
	AddressMirror      uint32 = 1
	AddressClampToEdge uint32 = 2
	AddressBorder      uint32 = 3
	AddressClampOGL    uint32 = 4
)

// MAG_FILTER values.
const (
	MagPoint  uint32 = 1
	MagLinear uint32 = 2
)

// MIN_FILTER values.
const (
	MinPoint  uint32 = 1
	MinLinear uint32 = 2
	MinAniso  uint32 = 3
)

// MIP_FILTER values.
const (
	MipNone   uint32 = 1
	MipPoint  uint32 = 2
	MipLinear uint32 = 3
)

// SamplerLayout locates the sampler fields. Positions are absolute across
// both words, so word 1 starts at bit 32.
type SamplerLayout struct {
	AddressU      Field
	AddressV      Field
	AddressP      Field
	MaxAnisotropy Field

	MagFilter Field
	MinFilter Field
	MipFilter Field
}

// The sampler words did not move between V1 and V2.
var samplerLayout = SamplerLayout{
	AddressU:      MW(2, 0),
	AddressV:      MW(5, 3),
	AddressP:      MW(8, 6),
	MaxAnisotropy: MW(22, 20),

	MagFilter: MW(34, 32),
	MinFilter: MW(37, 36),
	MipFilter: MW(39, 38),
}

// SamplerFor returns the sampler layout used alongside header version v,
// or nil for an unknown version.
func SamplerFor(v Version) *SamplerLayout {
	if !v.Valid() {
		return nil
	}
	return &samplerLayout
}

// Word returns a value with only field f set to v. It is the equivalent of
// building one sampler word from constants; f must live in a single word.
func (f Field) Word(v uint32) uint32 {
	var w [SamplerWords]uint32
	f.Set(w[:], uint64(v))
	return w[0] | w[1]
}
