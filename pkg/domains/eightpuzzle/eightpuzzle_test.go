// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package eightpuzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/domains/eightpuzzle"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/search"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

func TestOrdered(t *testing.T) {
	g := eightpuzzle.Ordered(3, 3)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Len(t, g.Tiles(), 9)
	empty := g.Empty()
	assert.Equal(t, 0, empty.X)
	assert.Equal(t, 0, empty.Y)
	one, ok := g.At(1, 0)
	require.True(t, ok)
	assert.Equal(t, "1", one.Value)
	eight, ok := g.At(2, 2)
	require.True(t, ok)
	assert.Equal(t, "8", eight.Value)
}

func TestNewGrid_Validation(t *testing.T) {
	for _, x := range []struct {
		name  string
		tiles []eightpuzzle.Tile
	}{
		{name: "no empty", tiles: []eightpuzzle.Tile{{Value: "1"}}},
		{name: "two empties", tiles: []eightpuzzle.Tile{
			{Value: eightpuzzle.EmptyValue},
			{Value: eightpuzzle.EmptyValue, X: 1},
		}},
		{name: "out of bounds", tiles: []eightpuzzle.Tile{
			{Value: eightpuzzle.EmptyValue},
			{Value: "1", X: 5, Y: 0},
		}},
	} {
		t.Run(x.name, func(t *testing.T) {
			_, err := eightpuzzle.NewGrid(x.tiles, 2, 2)
			require.Error(t, err)
			assert.True(t, statespace.IsConfigurationError(err))
		})
	}
}

func TestOperators_CornerApplicability(t *testing.T) {
	// The empty slot starts at the origin: only the neighbors at (1,0) and (0,1) exist.
	g := eightpuzzle.Ordered(3, 3)
	applicable := map[string]bool{"RIGHT": true, "UP": false, "LEFT": false, "DOWN": true}
	for _, op := range eightpuzzle.Operators() {
		assert.Equal(t, applicable[op.Name()], op.Applicable(g), op.Name())
	}
}

func TestOperators_Slide(t *testing.T) {
	g := eightpuzzle.Ordered(3, 3)
	var right statespace.Operator
	for _, op := range eightpuzzle.Operators() {
		if op.Name() == "RIGHT" {
			right = op
		}
	}
	next := right.Apply(g).(eightpuzzle.Grid)

	moved, ok := next.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, "1", moved.Value)
	assert.Equal(t, 1, next.Empty().X)
	assert.Equal(t, 0, next.Empty().Y)
	// The original grid is unchanged.
	assert.Equal(t, 0, g.Empty().X)

	// One slide displaces two tiles by one position each.
	space := eightpuzzle.New(g, next)
	assert.Equal(t, 2.0, space.GoalDistance(space.Initial()))
}

func TestSolveShuffled(t *testing.T) {
	shuffler, err := eightpuzzle.Shuffle(6, 3, 3, 42)
	require.NoError(t, err)
	space, err := shuffler.Shuffle()
	require.NoError(t, err)

	solver, err := search.New("astar", space)
	require.NoError(t, err)
	outcome, err := solver.Solve()
	require.NoError(t, err)
	require.True(t, outcome.Success())

	// Replaying the solution from the initial state must land on the goal.
	n := space.Initial()
	for _, op := range outcome.Operators() {
		n, err = n.Apply(op)
		require.NoError(t, err)
	}
	assert.True(t, space.IsGoal(n))
}

func TestProblem_Space(t *testing.T) {
	p := eightpuzzle.Problem{}
	space, err := p.Space(problem.Config{"shuffle": "4", "seed": "1"})
	require.NoError(t, err)
	assert.Len(t, space.Operators(), 4)
	assert.NotEmpty(t, p.Render(space.Initial().State()))

	_, err = p.Space(problem.Config{"width": "wide"})
	require.Error(t, err)
	assert.True(t, statespace.IsConfigurationError(err))

	_, err = p.Space(problem.Config{"shuffle": "-1"})
	require.Error(t, err)
	assert.True(t, statespace.IsConfigurationError(err))
}
