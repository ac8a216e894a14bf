// SPDX-License-Identifier: MIT
//
// File: distances.go
// Role: Dense int64 distance matrix with an id ↔ index table.
// Policy:
//   - Row-major flat buffer; At/Set validate indices and never panic.
//   - Inf (math.MaxInt64) is the "no path" sentinel. AddSat saturates at Inf.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Inf is the distance sentinel for unreachable pairs.
const Inf int64 = math.MaxInt64

// IsInf reports whether v carries the unreachable sentinel.
func IsInf(v int64) bool { return v >= Inf }

// AddSat returns a+b for non-negative operands, saturating at Inf.
// Any Inf operand yields Inf.
func AddSat(a, b int64) int64 {
	if a >= Inf || b >= Inf || a > Inf-b {
		return Inf
	}

	return a + b
}

// Distances is a square distance matrix over a fixed vertex set.
//
// IDs maps index → vertex ID; Index maps vertex ID → index. Both are owned by
// the matrix; callers must retain them for index ↔ id translation in later
// pipeline stages and must not mutate them.
type Distances struct {
	n    int
	data []int64

	// IDs lists vertex IDs by dense index.
	IDs []string

	// Index is the inverse of IDs.
	Index map[string]int
}

// NewDistances allocates an n×n matrix for ids with 0 on the diagonal and Inf
// elsewhere. A zero-length ids slice yields a valid empty matrix.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID.
//
// Complexity: O(n²).
func NewDistances(ids []string) (*Distances, error) {
	n := len(ids)
	d := &Distances{
		n:     n,
		data:  make([]int64, n*n),
		IDs:   make([]string, n),
		Index: make(map[string]int, n),
	}

	var i int
	for i = 0; i < n; i++ {
		if ids[i] == "" {
			return nil, matrixErrorf("NewDistances", ErrEmptyID)
		}
		if _, dup := d.Index[ids[i]]; dup {
			return nil, matrixErrorf("NewDistances", ErrDuplicateID)
		}
		d.IDs[i] = ids[i]
		d.Index[ids[i]] = i
	}

	// Fill row by row: diagonal 0, off-diagonal Inf.
	for i = range d.data {
		if i/n != i%n {
			d.data[i] = Inf
		}
	}

	return d, nil
}

// N returns the matrix order.
func (d *Distances) N() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns dist[i][j].
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity: O(1).
func (d *Distances) At(i, j int) (int64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, ErrOutOfRange
	}

	return d.data[i*d.n+j], nil
}

// Set writes dist[i][j] = v. Negative values are rejected.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNegativeWeight.
//
// Complexity: O(1).
func (d *Distances) Set(i, j int, v int64) error {
	if d == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return ErrOutOfRange
	}
	if v < 0 {
		return ErrNegativeWeight
	}
	d.data[i*d.n+j] = v

	return nil
}

// IndexOf returns the dense index of vertex id.
func (d *Distances) IndexOf(id string) (int, bool) {
	if d == nil {
		return 0, false
	}
	i, ok := d.Index[id]

	return i, ok
}

// IDAt returns the vertex ID at dense index i.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func (d *Distances) IDAt(i int) (string, error) {
	if d == nil {
		return "", ErrNilMatrix
	}
	if i < 0 || i >= d.n {
		return "", ErrOutOfRange
	}

	return d.IDs[i], nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func (d *Distances) Row(i int) ([]int64, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= d.n {
		return nil, ErrOutOfRange
	}
	out := make([]int64, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out, nil
}

// Clone returns a deep copy; the index tables are copied too.
func (d *Distances) Clone() *Distances {
	if d == nil {
		return nil
	}
	c := &Distances{
		n:     d.n,
		data:  make([]int64, len(d.data)),
		IDs:   make([]string, len(d.IDs)),
		Index: make(map[string]int, len(d.Index)),
	}
	copy(c.data, d.data)
	copy(c.IDs, d.IDs)
	for id, i := range d.Index {
		c.Index[id] = i
	}

	return c
}

// String renders the matrix one row per line with "∞" for Inf, for tests
// and debug output.
func (d *Distances) String() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteString(d.IDs[i])
		sb.WriteByte(':')
		for j := 0; j < d.n; j++ {
			sb.WriteByte(' ')
			if v := d.data[i*d.n+j]; IsInf(v) {
				sb.WriteString("∞")
			} else {
				sb.WriteString(strconv.FormatInt(v, 10))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
