// SPDX-License-Identifier: MIT
// Package frame: sentinel error set. All table and grouping operations
// return these sentinels and tests check them via errors.Is. Operations
// never panic on user-triggered conditions.

package frame

import "errors"

var (
	// ErrNilTable indicates a nil *Table receiver or argument.
	ErrNilTable = errors.New("frame: table is nil")

	// ErrUnknownColumn indicates that a referenced column name is absent
	// from the table schema, or is not of the kind the operation requires
	// (e.g. a count column named where a key column is expected).
	// Surfaced before any computation, never deferred into an empty result.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrDuplicateColumn indicates that a column name was declared twice,
	// across key and count columns combined.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrNoCountColumns indicates a table schema with no count columns;
	// there is nothing any metric could measure.
	ErrNoCountColumns = errors.New("frame: no count columns")

	// ErrRowLength indicates that an appended row does not match the
	// declared schema width.
	ErrRowLength = errors.New("frame: row length mismatch")

	// ErrNegativeCount indicates a negative value in a count column.
	// Subgroup populations are counts or count-like magnitudes.
	ErrNegativeCount = errors.New("frame: negative count")

	// ErrNotFinite indicates a NaN or ±Inf value in a count column.
	// Rejecting these at ingestion keeps every downstream NaN attributable
	// to a defined numeric policy rather than to dirty input.
	ErrNotFinite = errors.New("frame: count is NaN or Inf")

	// ErrUnknownKey indicates a group key value absent from a Result.
	ErrUnknownKey = errors.New("frame: unknown group key")
)
