// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texhead

import (
	"errors"
	"fmt"
)

var (
	// ErrNotValidated is returned when a descriptor did not pass the
	// upstream validation step.
	ErrNotValidated = errors.New("texhead: descriptor not validated")

	// ErrContractViolation marks a descriptor value the encoder has no
	// encoding for. It signals a bug in the caller or its validation pass
	// and must not be retried.
	ErrContractViolation = errors.New("texhead: contract violation")

	// ErrUnknownVersion is returned for a header layout version the
	// encoder has no tables for.
	ErrUnknownVersion = errors.New("texhead: unknown header layout version")
)

// ContractError reports which descriptor field held an out-of-domain value.
// It matches ErrContractViolation with errors.Is.
type ContractError struct {
	Field string
	Value fmt.Stringer
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("texhead: contract violation: unrecognized %s %v", e.Field, e.Value)
}

// Unwrap returns ErrContractViolation.
func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}
