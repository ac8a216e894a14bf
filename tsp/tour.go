// Tour utilities for package tsp.
//
// Helpers that operate on tour structure (index sequences) and their cost:
//   - ValidateTour: enforce closed Hamiltonian tour invariants.
//   - TourCost: saturating sum of consecutive legs.
//   - DebugString: compact printable form for tests and debug output.
//
// No logging, no panics on user input; only sentinel errors from types.go.

package tsp

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/routeopt/matrix"
)

// ValidateTour enforces:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each v ∈ [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums d[tour[i]][tour[i+1]] saturating at matrix.Inf.
//
// Errors:
//   - ErrDimensionMismatch: len(tour) < 2 or an index outside [0, n).
//
// Complexity: O(len(tour)).
func TourCost(d *matrix.Distances, tour []int) (int64, error) {
	if d.N() == 0 || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		total int64
		leg   int64
		err   error
	)
	for i := 0; i+1 < len(tour); i++ {
		if leg, err = d.At(tour[i], tour[i+1]); err != nil {
			return 0, ErrDimensionMismatch
		}
		total = matrix.AddSat(total, leg)
	}

	return total, nil
}

// DebugString renders a tour like "[0 1 2 | 0]", where the bar marks the closure.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var sb strings.Builder
	n := len(tour) - 1
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[n]))
	sb.WriteByte(']')

	return sb.String()
}
