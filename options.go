// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texhead

// EncoderOption configures an Encoder during creation.
//
// Example:
//
//	enc, err := texhead.NewEncoder(layout.V2, texhead.WithStrictDomains())
type EncoderOption func(*encoderOptions)

// encoderOptions holds optional configuration for Encoder creation.
type encoderOptions struct {
	strict bool
}

// defaultEncoderOptions returns the default encoder options.
func defaultEncoderOptions() encoderOptions {
	return encoderOptions{
		strict: false, // out-of-domain values pass through untouched
	}
}

// WithStrictDomains makes out-of-domain numeric type, swizzle, wrap, filter
// and layout class values fail with a *ContractError, the same way an
// unknown component layout always does.
//
// Without it those values leave their header and sampler bits at zero and
// the encoder logs a warning, matching the hardware driver bit for bit.
func WithStrictDomains() EncoderOption {
	return func(o *encoderOptions) {
		o.strict = true
	}
}
