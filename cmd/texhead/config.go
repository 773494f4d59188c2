// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/texhead"
	"github.com/gogpu/texhead/gpuadapt"
)

// textureFile is the TOML description of one texture.
//
// Either Format names a WebGPU texture format, or Components and DataType
// name the header encoding directly.
type textureFile struct {
	Format     string   `toml:"format"`
	Components string   `toml:"components"`
	DataType   string   `toml:"data_type"`
	Swizzle    []string `toml:"swizzle"`

	Layout     string  `toml:"layout"`
	Address    uint64  `toml:"address"`
	Width      uint32  `toml:"width"`
	Height     uint32  `toml:"height"`
	Pitch      uint32  `toml:"pitch"`
	Gobs       []uint8 `toml:"gobs"`
	Normalized *bool   `toml:"normalized"`

	Wrap   string `toml:"wrap"`
	Filter string `toml:"filter"`
}

// decodeTexture reads a texture file. Unknown keys are an error.
func decodeTexture(r io.Reader) (*textureFile, error) {
	var f textureFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return &f, nil
}

// lookup finds the enum value in [1, last] whose String matches name.
func lookup[T interface {
	~uint8
	fmt.Stringer
}](kind, name string, last T) (T, error) {
	for v := T(1); v <= last; v++ {
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, name)
}

var layoutNames = map[string]texhead.LayoutClass{
	"1d":    texhead.OneD,
	"raw":   texhead.OneDRawBuffer,
	"pitch": texhead.TwoDPitchLinear,
	"tiled": texhead.TwoDTiled,
}

// lastFormat bounds the gputypes format scan.
const lastFormat = gputypes.TextureFormatASTC12x12UnormSrgb

func parseFormat(name string) (gputypes.TextureFormat, error) {
	for f := gputypes.TextureFormat(1); f <= lastFormat; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

// descriptor converts the file into an unvalidated descriptor.
func (f *textureFile) descriptor() (texhead.Descriptor, error) {
	d := texhead.Descriptor{
		Source:           texhead.IdentitySwizzle,
		Address:          f.Address,
		Width:            f.Width,
		Height:           max(f.Height, 1),
		Pitch:            f.Pitch,
		NormalizedCoords: f.Normalized == nil || *f.Normalized,
		Wrap:             texhead.ClampToEdge,
		Filter:           texhead.Linear,
	}

	var err error
	switch {
	case f.Format != "" && (f.Components != "" || f.DataType != ""):
		return d, fmt.Errorf("format and components/data_type are exclusive")
	case f.Format != "":
		format, err := parseFormat(f.Format)
		if err != nil {
			return d, err
		}
		mapped, err := gpuadapt.FromGPUTypes(gpuadapt.Source{
			Texture: gputypes.TextureDescriptor{
				Size:      gputypes.Extent3D{Width: f.Width, Height: d.Height, DepthOrArrayLayers: 1},
				Dimension: gputypes.TextureDimension2D,
				Format:    format,
			},
		})
		if err != nil {
			return d, err
		}
		d.Components, d.DataType, d.Source = mapped.Components, mapped.DataType, mapped.Source
	default:
		if d.Components, err = lookup("components", f.Components, texhead.ComponentsY8Video); err != nil {
			return d, err
		}
		if d.DataType, err = lookup("data type", f.DataType, texhead.SINT); err != nil {
			return d, err
		}
	}

	if len(f.Swizzle) > 0 {
		if len(f.Swizzle) != 4 {
			return d, fmt.Errorf("swizzle needs 4 sources, got %d", len(f.Swizzle))
		}
		var src [4]texhead.ChannelSource
		for i, name := range f.Swizzle {
			if src[i], err = lookup("channel source", name, texhead.OneFloat); err != nil {
				return d, err
			}
		}
		d.Source = texhead.Swizzle{X: src[0], Y: src[1], Z: src[2], W: src[3]}
	}

	class, ok := layoutNames[strings.ToLower(f.Layout)]
	if !ok {
		return d, fmt.Errorf("unknown layout %q", f.Layout)
	}
	d.Type = class

	if len(f.Gobs) > 0 {
		if len(f.Gobs) != 3 {
			return d, fmt.Errorf("gobs needs x, y and z, got %d values", len(f.Gobs))
		}
		d.Log2GobsPerBlock = texhead.BlockShape{X: f.Gobs[0], Y: f.Gobs[1], Z: f.Gobs[2]}
	}

	if f.Wrap != "" {
		if d.Wrap, err = lookup("wrap mode", f.Wrap, texhead.BorderColor); err != nil {
			return d, err
		}
	}
	if f.Filter != "" {
		if d.Filter, err = lookup("filter mode", f.Filter, texhead.Aniso16X); err != nil {
			return d, err
		}
	}
	return d, nil
}
