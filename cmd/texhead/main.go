// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command texhead encodes a TOML-described texture for a GPU generation and
// prints the channel initialization stream, texture header and sampler
// words.
//
//	texhead -gen hopper -in texture.toml
//
// Example texture.toml:
//
//	format  = "BGRA8Unorm"
//	layout  = "tiled"
//	address = 0x100000200
//	width   = 256
//	height  = 256
//	gobs    = [0, 4, 0]
//	wrap    = "mirror"
//	filter  = "aniso8x"
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/texhead"
	"github.com/gogpu/texhead/channel"
	"github.com/gogpu/texhead/gpuadapt"
	"github.com/gogpu/texhead/pushbuf"
)

func main() {
	var (
		gen     = flag.String("gen", "hopper", "GPU generation (maxwell, pascal, volta, turing, hopper)")
		in      = flag.String("in", "", "texture description file (TOML), - for stdin")
		strict  = flag.Bool("strict", false, "reject out-of-domain values instead of passing them through")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	texhead.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(os.Stdout, *gen, *in, *strict); err != nil {
		fmt.Fprintln(os.Stderr, "texhead:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, genName, path string, strict bool) error {
	g, err := channel.ParseGeneration(genName)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	tf, err := decodeTexture(r)
	if err != nil {
		return err
	}
	d, err := tf.descriptor()
	if err != nil {
		return err
	}
	if err := gpuadapt.Validate(&d); err != nil {
		return err
	}

	pb := pushbuf.New()
	ch := channel.New(pb)
	ch.Initialize(g)

	var opts []texhead.EncoderOption
	if strict {
		opts = append(opts, texhead.WithStrictDomains())
	}
	enc, err := ch.Encoder(opts...)
	if err != nil {
		return err
	}
	out, err := enc.Encode(&d)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "generation %v, header layout %v\n", g, ch.HeaderVersion())
	fmt.Fprintln(w, "channel:")
	for _, word := range pb.Words() {
		fmt.Fprintf(w, "  %08x\n", word)
	}
	fmt.Fprintln(w, "header:")
	for i, word := range out.Header {
		fmt.Fprintf(w, "  [%d] %08x\n", i, word)
	}
	fmt.Fprintln(w, "sampler:")
	for i, word := range out.Sampler {
		fmt.Fprintf(w, "  [%d] %08x\n", i, word)
	}
	return nil
}
