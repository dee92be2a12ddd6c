// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation at the
// transport boundary.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - FieldErrors: the failed rules of a request, one entry per field, in
//     declaration order.
//
// Rules are declared with go-playground/validator `validate` struct tags and
// reported under the fields' JSON names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input.
	Validate(context.Context, any) error
}
