// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/search"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace/mock"
)

func TestAlgorithms(t *testing.T) {
	assert.Equal(t, []string{"astar", "best", "bfs", "dfs", "iddfs", "random"}, search.Algorithms())
}

func TestNew(t *testing.T) {
	space := mock.Space("a", "b", "a", "b")
	for _, name := range search.Algorithms() {
		solver, err := search.New(name, space)
		require.NoError(t, err, name)
		assert.NotEmpty(t, solver.Name())
	}
	// Lookup is case-insensitive.
	solver, err := search.New("BFS", space)
	require.NoError(t, err)
	assert.Equal(t, "breadth-first search", solver.Name())
}

func TestNew_NotFound(t *testing.T) {
	_, err := search.New("simulated-annealing", mock.Space("a", "b", "a", "b"))
	require.Error(t, err)
	assert.True(t, search.IsAlgorithmNotFoundError(err))
	assert.EqualError(t, err, `algorithm not found: "simulated-annealing"`)
}
