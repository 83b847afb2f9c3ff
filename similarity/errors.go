// SPDX-License-Identifier: MIT
// Package similarity: sentinel error set, matched via errors.Is.

package similarity

import "errors"

var (
	// ErrInvalidReference indicates a reference that does not resolve to
	// exactly one row of finite, non-negative counts. Construction fails
	// outright; no partial Reference is returned.
	ErrInvalidReference = errors.New("similarity: reference must be a single row of valid counts")

	// ErrEmptyReference indicates a reference with no subgroups or zero
	// total population; its fractions would be undefined.
	ErrEmptyReference = errors.New("similarity: reference has no population")

	// ErrMismatchedColumns indicates that a compared table's count columns
	// do not match the reference's subgroups. Comparing different schemas
	// silently would misalign every fraction.
	ErrMismatchedColumns = errors.New("similarity: table columns do not match reference groups")
)
