// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search

import "github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"

// Picker is the sole extension point distinguishing the blind fringe-based strategies:
// it selects which fringe node is expanded next.
type Picker interface {
	Name() string
	// Pick returns the index of the node to remove from nodes. nodes is never empty
	// and must not be modified.
	Pick(nodes []*statespace.Node, space *statespace.GoalSpace) int
}

// BFS removes the oldest inserted node first. Guarantees shortest operator sequences
// in spaces with uniform operator cost.
type BFS struct{}

func (BFS) Name() string { return "breadth-first search" }

func (BFS) Pick([]*statespace.Node, *statespace.GoalSpace) int { return 0 }

// DFS removes the most recently inserted node first. No shortest-path guarantee.
type DFS struct{}

func (DFS) Name() string { return "depth-first search" }

func (DFS) Pick(nodes []*statespace.Node, _ *statespace.GoalSpace) int { return len(nodes) - 1 }

// BestFirst greedily removes the node closest to the goal. Ties keep the first minimal
// node in scan order (strict < comparison). Myopic, non-optimal in general.
type BestFirst struct{}

func (BestFirst) Name() string { return "best-first search" }

func (BestFirst) Pick(nodes []*statespace.Node, space *statespace.GoalSpace) int {
	best, bestVal := 0, space.GoalDistance(nodes[0])
	for i, n := range nodes[1:] {
		if v := space.GoalDistance(n); v < bestVal {
			best, bestVal = i+1, v
		}
	}
	return best
}

// AStar removes the node minimizing goal distance plus depth, the path cost already
// paid. Ties keep the last minimal node in scan order (<= comparison), the opposite
// tie-break of [BestFirst].
type AStar struct{}

func (AStar) Name() string { return "A* search" }

func (AStar) Pick(nodes []*statespace.Node, space *statespace.GoalSpace) int {
	f := func(n *statespace.Node) float64 { return space.GoalDistance(n) + float64(n.Depth()) }
	best, bestVal := 0, f(nodes[0])
	for i, n := range nodes[1:] {
		if v := f(n); v <= bestVal {
			best, bestVal = i+1, v
		}
	}
	return best
}
