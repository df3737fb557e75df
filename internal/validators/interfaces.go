// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the requests accepted by
// the development API.
//
// A [Validator] checks a value and may be restricted to a subset of named
// fields. Every failed field is reported, so handlers can render the full
// list in a 422 response.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
