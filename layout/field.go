// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

// Range is an inclusive bit range inside a multi-word register image.
// Bit positions are absolute: bit 32 is bit 0 of word 1.
type Range struct {
	Hi, Lo uint16
}

// Width returns the number of bits covered by r.
func (r Range) Width() uint {
	return uint(r.Hi-r.Lo) + 1
}

// Field is a value stored in one or more bit ranges. The first range
// receives the least significant bits of the value, the next range the
// following bits, and so on.
//
// A nil Field is "not present in this layout". Setting it is a no-op and
// reading it yields zero.
type Field []Range

// MW returns a single-range field covering bits hi..lo.
func MW(hi, lo uint16) Field {
	return Field{{Hi: hi, Lo: lo}}
}

// Split returns a field whose value is scattered over several ranges,
// low-order range first.
func Split(ranges ...Range) Field {
	return Field(ranges)
}

// Defined reports whether f is present in the layout.
func (f Field) Defined() bool {
	return len(f) > 0
}

// Width returns the total number of bits the field holds.
func (f Field) Width() uint {
	var w uint
	for _, r := range f {
		w += r.Width()
	}
	return w
}

// Max returns the largest value that fits in f.
func (f Field) Max() uint64 {
	w := f.Width()
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

// Set writes v into words, truncating v to the field width. Bits outside
// the field are preserved.
func (f Field) Set(words []uint32, v uint64) {
	v &= f.Max()
	for _, r := range f {
		w := r.Width()
		setRange(words, r.Lo, w, v)
		v >>= w
	}
}

// Get reads the field value back out of words.
func (f Field) Get(words []uint32) uint64 {
	var v uint64
	var shift uint
	for _, r := range f {
		w := r.Width()
		v |= getRange(words, r.Lo, w) << shift
		shift += w
	}
	return v
}

// Clear zeroes every bit of the field.
func (f Field) Clear(words []uint32) {
	for _, r := range f {
		setRange(words, r.Lo, r.Width(), 0)
	}
}

// setRange writes the low w bits of v starting at absolute bit lo.
// The range may cross a word boundary.
func setRange(words []uint32, lo uint16, w uint, v uint64) {
	bit := uint(lo)
	for w > 0 {
		idx := bit / 32
		off := bit % 32
		n := 32 - off
		if n > w {
			n = w
		}
		mask := uint32((uint64(1)<<n)-1) << off
		words[idx] = (words[idx] &^ mask) | (uint32(v<<off) & mask)
		v >>= n
		bit += n
		w -= n
	}
}

// getRange reads w bits starting at absolute bit lo.
func getRange(words []uint32, lo uint16, w uint) uint64 {
	var v uint64
	var shift uint
	bit := uint(lo)
	for w > 0 {
		idx := bit / 32
		off := bit % 32
		n := 32 - off
		if n > w {
			n = w
		}
		chunk := uint64(words[idx]>>off) & ((uint64(1) << n) - 1)
		v |= chunk << shift
		shift += n
		bit += n
		w -= n
	}
	return v
}
