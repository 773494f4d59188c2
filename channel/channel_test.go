// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package channel

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/texhead"
	"github.com/gogpu/texhead/layout"
)

var generations = []Generation{Maxwell, Pascal, Volta, Turing, Hopper}

func TestGenerationString(t *testing.T) {
	tests := []struct {
		gen  Generation
		want string
	}{
		{Maxwell, "Maxwell"},
		{Turing, "Turing"},
		{Hopper, "Hopper"},
		{0, "Generation(0)"},
		{Hopper + 1, "Generation(6)"},
	}
	for _, tt := range tests {
		if got := tt.gen.String(); got != tt.want {
			t.Errorf("Generation(%d).String() = %q, want %q", uint8(tt.gen), got, tt.want)
		}
	}
}

func TestParseGeneration(t *testing.T) {
	for _, g := range generations {
		got, err := ParseGeneration(g.String())
		if err != nil || got != g {
			t.Errorf("ParseGeneration(%q) = %v, %v", g.String(), got, err)
		}
	}
	if got, err := ParseGeneration("hopper"); err != nil || got != Hopper {
		t.Errorf("ParseGeneration(hopper) = %v, %v", got, err)
	}
	if _, err := ParseGeneration("kepler"); err == nil {
		t.Error("ParseGeneration(kepler) succeeded")
	}
}

func TestPrevious(t *testing.T) {
	if Maxwell.Previous() != 0 {
		t.Errorf("Maxwell.Previous() = %v, want 0", Maxwell.Previous())
	}
	for i := 1; i < len(generations); i++ {
		if got := generations[i].Previous(); got != generations[i-1] {
			t.Errorf("%v.Previous() = %v, want %v", generations[i], got, generations[i-1])
		}
	}
}

// Each generation emits exactly its predecessor's commands followed by its
// own delta.
func TestCommandsExtendPredecessor(t *testing.T) {
	for _, g := range generations {
		var want []Command
		if prev := g.Previous(); prev != 0 {
			want = Commands(prev)
		}
		want = append(want, DeltaFor(g).Commands...)

		if got := Commands(g); !slices.Equal(got, want) {
			t.Errorf("Commands(%v) = %v, want %v", g, got, want)
		}
	}
}

func TestHopperDelta(t *testing.T) {
	turing := Commands(Turing)
	hopper := Commands(Hopper)

	if len(hopper) != len(turing)+1 {
		t.Fatalf("Hopper emits %d commands, want Turing's %d plus one", len(hopper), len(turing))
	}
	want := Command{Subchannel: Subchannel3D, Method: MethodTextureHeaderVersion, Value: 1}
	if got := hopper[len(hopper)-1]; got != want {
		t.Errorf("last Hopper command = %v, want %v", got, want)
	}
}

func TestHeaderVersion(t *testing.T) {
	tests := []struct {
		gen  Generation
		want layout.Version
	}{
		{Maxwell, layout.V1},
		{Pascal, layout.V1},
		{Volta, layout.V1},
		{Turing, layout.V1},
		{Hopper, layout.V2},
	}
	for _, tt := range tests {
		if got := HeaderVersion(tt.gen); got != tt.want {
			t.Errorf("HeaderVersion(%v) = %v, want %v", tt.gen, got, tt.want)
		}
	}
}

func TestDeltaForReturnsCopy(t *testing.T) {
	d := DeltaFor(Maxwell)
	d.Commands[0].Value = 99
	if DeltaFor(Maxwell).Commands[0].Value == 99 {
		t.Error("DeltaFor exposed the shared delta table")
	}
}

func TestUnknownGenerationPanics(t *testing.T) {
	for _, g := range []Generation{0, Hopper + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Commands(%v) did not panic", g)
				}
			}()
			Commands(g)
		}()
	}
}

func TestInitialize(t *testing.T) {
	for _, g := range generations {
		t.Run(g.String(), func(t *testing.T) {
			rec := &Recorder{}
			ch := New(rec)

			if ch.Generation() != 0 || ch.HeaderVersion() != 0 {
				t.Fatal("new channel already reports a generation")
			}

			ch.Initialize(g)

			if got := rec.Commands(); !slices.Equal(got, Commands(g)) {
				t.Errorf("emitted %v, want %v", got, Commands(g))
			}
			if ch.Generation() != g {
				t.Errorf("Generation() = %v, want %v", ch.Generation(), g)
			}
			if ch.HeaderVersion() != HeaderVersion(g) {
				t.Errorf("HeaderVersion() = %v, want %v", ch.HeaderVersion(), HeaderVersion(g))
			}
		})
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	rec := &Recorder{}
	ch := New(rec)

	ch.Initialize(Hopper)
	first := rec.Commands()
	rec.Reset()
	ch.Initialize(Hopper)

	if got := rec.Commands(); !slices.Equal(got, first) {
		t.Errorf("second Initialize emitted %v, want %v", got, first)
	}
	if ch.HeaderVersion() != layout.V2 {
		t.Errorf("HeaderVersion() = %v, want V2", ch.HeaderVersion())
	}
}

func TestReinitializeReplacesState(t *testing.T) {
	ch := New(&Recorder{})
	ch.Initialize(Hopper)
	ch.Initialize(Maxwell)

	if ch.Generation() != Maxwell || ch.HeaderVersion() != layout.V1 {
		t.Errorf("after re-init: %v / %v, want Maxwell / V1", ch.Generation(), ch.HeaderVersion())
	}
}

func TestWithSubchannel(t *testing.T) {
	rec := &Recorder{}
	New(rec, WithSubchannel(5)).Initialize(Hopper)

	for _, c := range rec.Commands() {
		if c.Subchannel != 5 {
			t.Errorf("command %v on subchannel %d, want 5", c, c.Subchannel)
		}
	}
}

func TestEncoder(t *testing.T) {
	ch := New(&Recorder{})
	if _, err := ch.Encoder(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Encoder() before Initialize error = %v, want ErrNotInitialized", err)
	}

	ch.Initialize(Hopper)
	enc, err := ch.Encoder(texhead.WithStrictDomains())
	if err != nil {
		t.Fatalf("Encoder() error = %v", err)
	}
	if enc.Version() != layout.V2 {
		t.Errorf("encoder version = %v, want V2", enc.Version())
	}
	if !enc.Strict() {
		t.Error("encoder options were not forwarded")
	}

	ch.Initialize(Volta)
	enc, _ = ch.Encoder()
	if enc.Version() != layout.V1 {
		t.Errorf("encoder version after Volta = %v, want V1", enc.Version())
	}
}

func TestInitializeConcurrent(t *testing.T) {
	rec := &Recorder{}
	ch := New(rec)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ch.Initialize(Hopper)
		}()
		go func() {
			defer wg.Done()
			_, _ = ch.Encoder()
		}()
	}
	wg.Wait()

	// Whole runs never interleave.
	per := Commands(Hopper)
	got := rec.Commands()
	if len(got) != 16*len(per) {
		t.Fatalf("recorded %d commands, want %d", len(got), 16*len(per))
	}
	for i := 0; i < len(got); i += len(per) {
		if !slices.Equal(got[i:i+len(per)], per) {
			t.Fatalf("run at %d interleaved: %v", i, got[i:i+len(per)])
		}
	}
}
