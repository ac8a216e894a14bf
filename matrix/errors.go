// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with an operation
// tag); callers match them with errors.Is. No function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *Distances was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyID indicates an empty vertex ID in the index table.
	ErrEmptyID = errors.New("matrix: empty vertex id")

	// ErrDuplicateID indicates the same vertex ID appears twice in the index table.
	ErrDuplicateID = errors.New("matrix: duplicate vertex id")

	// ErrNegativeWeight indicates a negative value written into a distance cell.
	ErrNegativeWeight = errors.New("matrix: negative distance")
)

// matrixErrorf tags err with the operation name while keeping errors.Is intact.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
