// SPDX-License-Identifier: MIT

package core

import (
	"math"
	"strconv"
	"strings"
)

// MaxWeight is the largest road cost ParseWeight accepts. math.MaxInt64 is
// reserved as the unreachable sentinel of distance matrices.
const MaxWeight int64 = math.MaxInt64 - 1

// ParseWeight interprets an edge label as a road cost.
//
// The label is trimmed; an empty label weighs 0. Otherwise it is parsed as a
// strict base-10 integer in [0, MaxWeight]. Anything else ("abc", "12km",
// "-5", "1.5", "9223372036854775807") reports ok == false: the edge then
// contributes no adjacency to distance computations but stays in the store
// as a real edge.
//
// Complexity: O(len(label)).
func ParseWeight(label string) (w int64, ok bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(label, 10, 64)
	if err != nil || v < 0 || v > MaxWeight {
		return 0, false
	}

	return v, true
}

// FormatWeight renders a cost in the label wire format.
func FormatWeight(w int64) string {
	return strconv.FormatInt(w, 10)
}
