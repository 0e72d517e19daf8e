// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/search"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace/mock"
)

// opNames extracts operator names from an outcome for compact assertions.
func opNames(o search.Outcome) []string {
	var names []string
	for _, op := range o.Operators() {
		names = append(names, op.Name())
	}
	return names
}

func TestSearch_SingleStep(t *testing.T) {
	// The smallest nontrivial space: one expansion of the initial state finds the goal.
	for _, algorithm := range []string{"bfs", "dfs", "best", "astar"} {
		t.Run(algorithm, func(t *testing.T) {
			solver, err := search.New(algorithm, mock.Space("a", "b", "a", "b"))
			require.NoError(t, err)
			outcome, err := solver.Solve()
			require.NoError(t, err)
			assert.True(t, outcome.Success())
			assert.Equal(t, []string{"a->b"}, opNames(outcome))
			assert.Equal(t, 1, outcome.Expanded)
		})
	}
}

func TestSearch_Chain(t *testing.T) {
	for _, algorithm := range []string{"bfs", "dfs", "best", "astar"} {
		t.Run(algorithm, func(t *testing.T) {
			space := mock.Space("a", "d", "a", "b", "b", "c", "c", "d")
			solver, err := search.New(algorithm, space)
			require.NoError(t, err)
			outcome, err := solver.Solve()
			require.NoError(t, err)
			assert.True(t, outcome.Success())
			assert.Empty(t, outcome.Reason)
			assert.Equal(t, []string{"a->b", "b->c", "c->d"}, opNames(outcome))
			assert.Equal(t, 3, outcome.Expanded)
		})
	}
}

func TestSearch_InitialIsGoal(t *testing.T) {
	for _, algorithm := range search.Algorithms() {
		t.Run(algorithm, func(t *testing.T) {
			space := mock.Space("a", "a", "a", "b")
			solver, err := search.New(algorithm, space)
			require.NoError(t, err)
			outcome, err := solver.Solve()
			require.NoError(t, err)
			assert.True(t, outcome.Success())
			assert.Empty(t, outcome.Operators())
			assert.Equal(t, 0, outcome.Expanded)
		})
	}
}

func TestSearch_Unreachable(t *testing.T) {
	for _, algorithm := range []string{"bfs", "dfs", "best", "astar", "iddfs"} {
		t.Run(algorithm, func(t *testing.T) {
			space := mock.Space("a", "z", "a", "b", "b", "c")
			solver, err := search.New(algorithm, space)
			require.NoError(t, err)
			outcome, err := solver.Solve()
			require.NoError(t, err)
			assert.False(t, outcome.Success())
			assert.Equal(t, "all reachable states were searched and no solution was found", outcome.Reason)
			assert.Nil(t, outcome.Operators())
		})
	}
}

func TestSearch_BFSFindsShortestPath(t *testing.T) {
	// Two routes to the goal: a 2-step one through b and a 3-step one through c, d.
	space := mock.Space("a", "z",
		"a", "b", "b", "z",
		"a", "c", "c", "d", "d", "z")
	solver, err := search.New("bfs", space)
	require.NoError(t, err)
	outcome, err := solver.Solve()
	require.NoError(t, err)
	require.True(t, outcome.Success())
	assert.Equal(t, []string{"a->b", "b->z"}, opNames(outcome))
}

func TestSearch_DFSExpandsNewestFirst(t *testing.T) {
	// Same space as the BFS test: depth-first commits to the last-generated branch.
	space := mock.Space("a", "z",
		"a", "b", "b", "z",
		"a", "c", "c", "d", "d", "z")
	solver, err := search.New("dfs", space)
	require.NoError(t, err)
	outcome, err := solver.Solve()
	require.NoError(t, err)
	require.True(t, outcome.Success())
	assert.Equal(t, []string{"a->c", "c->d", "d->z"}, opNames(outcome))
}

func TestSearch_CycleTerminates(t *testing.T) {
	// Without duplicate suppression the a<->b cycle would regenerate states forever.
	space := mock.Space("a", "z", "a", "b", "b", "a")
	solver, err := search.New("bfs", space)
	require.NoError(t, err)
	outcome, err := solver.Solve()
	require.NoError(t, err)
	assert.False(t, outcome.Success())
	assert.Equal(t, 2, outcome.Expanded)
}

func TestSearch_Revisits(t *testing.T) {
	space := mock.Space("a", "c", "a", "b", "b", "c")
	solver, err := search.New("bfs", space, search.Revisits())
	require.NoError(t, err)
	s := solver.(*search.Search)
	assert.False(t, s.MinimizeAccesses())
	outcome, err := solver.Solve()
	require.NoError(t, err)
	assert.True(t, outcome.Success())
	assert.Equal(t, []string{"a->b", "b->c"}, opNames(outcome))
}
