// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package rest

import "encoding/json"

// Array is a slice that serializes to JSON as '[]' not 'null' for a nil value.
type Array[T any] []T

func (a Array[T]) MarshalJSON() ([]byte, error) {
	if a == nil {
		return json.Marshal([]T{})
	}
	return json.Marshal([]T(a))
}

// ProblemInfo describes one solvable problem.
type ProblemInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SolveRequest selects a problem instance and an algorithm to solve it with.
type SolveRequest struct {
	Problem   string            `json:"problem" binding:"required"`
	Algorithm string            `json:"algorithm" binding:"required"`
	Config    map[string]string `json:"config,omitempty"`    // Problem parameters, e.g. {"shuffle": "10"}.
	Increment int               `json:"increment,omitempty"` // Depth increment for iddfs.
	MaxDepth  int               `json:"maxDepth,omitempty"`  // Depth bound for iddfs, 0 for the server default.
	MaxSteps  int               `json:"maxSteps,omitempty"`  // Step bound for random, 0 for the server default.
	Seed      *int64            `json:"seed,omitempty"`      // Random-walk seed.
	Revisits  bool              `json:"revisits,omitempty"`  // Disable duplicate suppression.
}

// SolveResponse reports the outcome of a completed search.
type SolveResponse struct {
	Algorithm string        `json:"algorithm"`
	Success   bool          `json:"success"`
	Reason    string        `json:"reason,omitempty"`
	Operators Array[string] `json:"operators"`
	Expanded  int           `json:"expanded"`
	Initial   string        `json:"initial,omitempty"` // Rendered initial state.
	Goal      string        `json:"goal,omitempty"`    // Rendered goal state.
}
