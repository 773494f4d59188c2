// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"testing"
)

func TestFieldSetGet(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value uint64
		want  uint64
	}{
		{"single bit", MW(191, 191), 1, 1},
		{"low word", MW(6, 0), 0x08, 0x08},
		{"truncated", MW(2, 0), 0xF, 0x7},
		{"word aligned", MW(63, 32), 0xDEADBEEF, 0xDEADBEEF},
		{"crosses word", MW(40, 28), 0x1ABC, 0x1ABC},
		{"split", Split(Range{Hi: 143, Lo: 128}, Range{Hi: 111, Lo: 96}), 0x12345678, 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Header
			tt.field.Set(h[:], tt.value)
			if got := tt.field.Get(h[:]); got != tt.want {
				t.Errorf("Get() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestFieldSetPreservesNeighbours(t *testing.T) {
	var h Header
	for i := range h {
		h[i] = 0xFFFFFFFF
	}

	f := MW(40, 28)
	f.Set(h[:], 0)

	if h[0] != 0x0FFFFFFF {
		t.Errorf("word 0 = %#x, want %#x", h[0], 0x0FFFFFFF)
	}
	if h[1] != 0xFFFFFE00 {
		t.Errorf("word 1 = %#x, want %#x", h[1], 0xFFFFFE00)
	}
	if h[2] != 0xFFFFFFFF {
		t.Errorf("word 2 = %#x, want untouched", h[2])
	}
}

func TestSplitFieldPlacement(t *testing.T) {
	var h Header
	f := Split(Range{Hi: 143, Lo: 128}, Range{Hi: 111, Lo: 96})
	f.Set(h[:], 0xAAAA5555)

	if h[4] != 0x5555 {
		t.Errorf("word 4 = %#x, want 0x5555", h[4])
	}
	if h[3] != 0xAAAA {
		t.Errorf("word 3 = %#x, want 0xAAAA", h[3])
	}
}

func TestUndefinedField(t *testing.T) {
	var f Field
	var h Header
	f.Set(h[:], 0xFFFF)

	if f.Defined() {
		t.Error("nil field reports Defined() = true")
	}
	if h != (Header{}) {
		t.Errorf("setting an undefined field modified the header: %v", h)
	}
	if got := f.Get(h[:]); got != 0 {
		t.Errorf("Get() = %d, want 0", got)
	}
}

func TestFieldClear(t *testing.T) {
	var h Header
	f := MW(21, 19)
	f.Set(h[:], 7)
	f.Clear(h[:])
	if h[0] != 0 {
		t.Errorf("word 0 = %#x after Clear, want 0", h[0])
	}
}

func TestFieldWidthAndMax(t *testing.T) {
	tests := []struct {
		field Field
		width uint
		max   uint64
	}{
		{MW(0, 0), 1, 1},
		{MW(63, 41), 23, 1<<23 - 1},
		{MW(112, 96), 17, 1<<17 - 1},
		{Split(Range{Hi: 143, Lo: 128}, Range{Hi: 111, Lo: 96}), 32, 1<<32 - 1},
	}

	for _, tt := range tests {
		if got := tt.field.Width(); got != tt.width {
			t.Errorf("%v.Width() = %d, want %d", tt.field, got, tt.width)
		}
		if got := tt.field.Max(); got != tt.max {
			t.Errorf("%v.Max() = %#x, want %#x", tt.field, got, tt.max)
		}
	}
}

// variantFields collects the fields written together for one header variant.
func variantFields(l *TexHead) map[string][]Field {
	common := append([]Field{
		l.Components, l.XSource, l.YSource, l.ZSource, l.WSource,
		l.HeaderVersion, l.MaxAnisotropy, l.AnisoFineSpreadModifier,
	}, l.DataType...)

	bl := l.BlockLinear
	p := l.Pitch
	r := l.RawBuffer
	return map[string][]Field{
		"blocklinear": append(append([]Field(nil), common...),
			bl.AddressLo, bl.AddressHi, bl.GobsPerBlockWidth, bl.GobsPerBlockHeight,
			bl.GobsPerBlockDepth, bl.TextureType, bl.WidthMinusOne, bl.BorderSource,
			bl.HeightMinusOne, bl.DepthMinusOne, bl.NormalizedCoords),
		"pitch": append(append([]Field(nil), common...),
			p.AddressLo, p.AddressHi, p.Pitch, p.TextureType, p.WidthMinusOne,
			p.BorderSource, p.HeightMinusOne, p.NormalizedCoords),
		"raw": append(append([]Field(nil), common...),
			r.AddressLo, r.AddressHi, r.WidthMinusOne),
	}
}

func TestVariantFieldsDoNotOverlap(t *testing.T) {
	for _, v := range []Version{V1, V2} {
		l := For(v)
		for name, fields := range variantFields(l) {
			var used [HeaderWords * 32]bool
			for _, f := range fields {
				for _, r := range f {
					if r.Hi >= HeaderWords*32 || r.Lo > r.Hi {
						t.Fatalf("%v %s: bad range %v", v, name, r)
					}
					for b := r.Lo; b <= r.Hi; b++ {
						if used[b] {
							t.Errorf("%v %s: bit %d claimed twice", v, name, b)
						}
						used[b] = true
					}
				}
			}
		}
	}
}

func TestHeaderVersionTagsDistinct(t *testing.T) {
	for _, v := range []Version{V1, V2} {
		tags := For(v).Tags
		if tags.OneDRaw == tags.Pitch || tags.Pitch == tags.BlockLinear || tags.OneDRaw == tags.BlockLinear {
			t.Errorf("%v: header version tags collide: %+v", v, tags)
		}
		limit := For(v).HeaderVersion.Max()
		for _, tag := range []uint32{tags.OneDRaw, tags.Pitch, tags.BlockLinear} {
			if uint64(tag) > limit {
				t.Errorf("%v: tag %d does not fit HEADER_VERSION", v, tag)
			}
		}
	}
}

func TestForUnknownVersion(t *testing.T) {
	if For(Version(0)) != nil {
		t.Error("For(0) != nil")
	}
	if SamplerFor(Version(9)) != nil {
		t.Error("SamplerFor(9) != nil")
	}
	if Version(9).Valid() {
		t.Error("Version(9).Valid() = true")
	}
}

func TestVersionSelectValue(t *testing.T) {
	if got := V1.SelectValue(); got != 0 {
		t.Errorf("V1.SelectValue() = %d, want 0", got)
	}
	if got := V2.SelectValue(); got != 1 {
		t.Errorf("V2.SelectValue() = %d, want 1", got)
	}
}

func TestSamplerWord(t *testing.T) {
	s := SamplerFor(V2)
	if got := s.AddressV.Word(AddressMirror); got != 1<<3 {
		t.Errorf("AddressV.Word(Mirror) = %#x, want %#x", got, 1<<3)
	}
	if got := s.MinFilter.Word(MinAniso); got != 3<<4 {
		t.Errorf("MinFilter.Word(Aniso) = %#x, want %#x", got, 3<<4)
	}
}

func TestHeaderBytesLittleEndian(t *testing.T) {
	h := Header{0x04030201}
	b := h.Bytes()
	if len(b) != HeaderSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), HeaderSize)
	}
	for i, want := range []byte{1, 2, 3, 4} {
		if b[i] != want {
			t.Errorf("Bytes()[%d] = %d, want %d", i, b[i], want)
		}
	}

	s := Sampler{0, 0xAABBCCDD}
	sb := s.Bytes()
	if sb[4] != 0xDD || sb[7] != 0xAA {
		t.Errorf("Sampler.Bytes() = %x", sb)
	}
}
