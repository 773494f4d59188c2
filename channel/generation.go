// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"
	"strings"

	"github.com/gogpu/texhead/layout"
)

// Generation is a GPU hardware generation, oldest first.
type Generation uint8

// Generations in chain order.
const (
	Maxwell Generation = iota + 1
	Pascal
	Volta
	Turing
	Hopper
)

var generationNames = [...]string{
	Maxwell: "Maxwell",
	Pascal:  "Pascal",
	Volta:   "Volta",
	Turing:  "Turing",
	Hopper:  "Hopper",
}

func (g Generation) String() string {
	if g.Valid() {
		return generationNames[g]
	}
	return fmt.Sprintf("Generation(%d)", uint8(g))
}

// Valid reports whether g is a known generation.
func (g Generation) Valid() bool {
	return g >= Maxwell && g <= Hopper
}

// Previous returns the generation g builds on, or 0 for the root.
func (g Generation) Previous() Generation {
	if g <= Maxwell || !g.Valid() {
		return 0
	}
	return g - 1
}

// ParseGeneration looks a generation up by name, ignoring case.
func ParseGeneration(s string) (Generation, error) {
	for g := Maxwell; g <= Hopper; g++ {
		if strings.EqualFold(s, generationNames[g]) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("channel: unknown generation %q", s)
}

// Subchannel3D is the subchannel the 3D engine is bound to.
const Subchannel3D uint32 = 0

// 3D engine methods written during initialization. Values are byte offsets
// into the class method space, chosen for this package rather than taken
// from the hardware class headers.
const (
	MethodSelectMaxwellTextureHeaders uint32 = 0x0f10
	MethodTextureHeaderVersion        uint32 = 0x0f14
	MethodBindlessTexture             uint32 = 0x2608
)

// Command is one immediate method write.
type Command struct {
	Subchannel uint32
	Method     uint32
	Value      uint32
}

func (c Command) String() string {
	return fmt.Sprintf("subch %d method %#05x = %#x", c.Subchannel, c.Method, c.Value)
}

// Delta is what one generation adds on top of the previous one.
// HeaderVersion is zero when the generation keeps the inherited version.
type Delta struct {
	Generation    Generation
	Commands      []Command
	HeaderVersion layout.Version
}

// deltas is the generation chain, oldest first. deltas[i] belongs to
// Generation(i+1).
var deltas = []Delta{
	{
		Generation: Maxwell,
		Commands: []Command{
			{Subchannel3D, MethodSelectMaxwellTextureHeaders, 1},
			{Subchannel3D, MethodBindlessTexture, 0},
		},
		HeaderVersion: layout.V1,
	},
	{Generation: Pascal},
	{Generation: Volta},
	{Generation: Turing},
	{
		Generation: Hopper,
		Commands: []Command{
			{Subchannel3D, MethodTextureHeaderVersion, layout.V2.SelectValue()},
		},
		HeaderVersion: layout.V2,
	},
}

// DeltaFor returns the commands gen adds over its predecessor.
// It panics if gen is not a known generation.
func DeltaFor(gen Generation) Delta {
	d := chain(gen)[gen-1]
	d.Commands = append([]Command(nil), d.Commands...)
	return d
}

// Commands returns every command initialization of gen emits, in order:
// the root generation's commands first, gen's own deltas last.
// It panics if gen is not a known generation.
func Commands(gen Generation) []Command {
	var cmds []Command
	for _, d := range chain(gen) {
		cmds = append(cmds, d.Commands...)
	}
	return cmds
}

// HeaderVersion returns the texture header layout version active after
// initializing gen. It panics if gen is not a known generation.
func HeaderVersion(gen Generation) layout.Version {
	var v layout.Version
	for _, d := range chain(gen) {
		if d.HeaderVersion != 0 {
			v = d.HeaderVersion
		}
	}
	return v
}

// chain returns the deltas from the root through gen.
func chain(gen Generation) []Delta {
	if !gen.Valid() {
		panic(fmt.Sprintf("channel: unknown generation %v", gen))
	}
	return deltas[:gen]
}
