// SPDX-License-Identifier: MIT
//
// File: ids.go
// Role: ID generation for nodes and edges.
// Policy:
//   - Node IDs look like map cities: one letter A..Z followed by 0..99 ("K42").
//   - That space is small, so collisions are retried and finally resolved with a UUID.
//   - Edge IDs are "e-" + UUID.

package core

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

const (
	cityLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	citySuffixes = 100
	edgeIDPrefix = "e-"
)

// cityID returns a random short city identifier.
func cityID() string {
	b := make([]byte, 0, 3)
	b = append(b, cityLetters[rand.IntN(len(cityLetters))])
	b = strconv.AppendInt(b, int64(rand.IntN(citySuffixes)), 10)

	return string(b)
}

// newNodeID draws candidates from the configured source until one is free.
// Caller must hold g.mu (write).
func (g *Graph) newNodeID() (string, error) {
	var id string
	for i := 0; i < g.idAttempts; i++ {
		id = g.nextNodeID()
		if id != "" && !reserved(id) && !g.taken(id) {
			return id, nil
		}
	}
	// The short space is crowded; a UUID never merges two nodes.
	id = uuid.NewString()
	if g.taken(id) {
		return "", ErrIDExhausted
	}

	return id, nil
}

// newEdgeID returns a fresh edge identifier.
// Caller must hold g.mu (write).
func (g *Graph) newEdgeID() (string, error) {
	id := edgeIDPrefix + uuid.NewString()
	if g.taken(id) {
		return "", ErrIDExhausted
	}

	return id, nil
}
