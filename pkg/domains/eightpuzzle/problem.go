// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package eightpuzzle

import (
	"time"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

// Problem makes the puzzle reachable by name from drivers.
// Parameters: width (3), height (3), shuffle (25), seed (wall clock).
type Problem struct{}

func (Problem) Name() string { return "eightpuzzle" }

func (Problem) Description() string {
	return "Sliding-tile puzzle on a rectangular grid, shuffled backward from the solved state."
}

func (Problem) Space(cfg problem.Config) (*statespace.GoalSpace, error) {
	width, err := cfg.Int("width", 3)
	if err != nil {
		return nil, err
	}
	height, err := cfg.Int("height", 3)
	if err != nil {
		return nil, err
	}
	grade, err := cfg.Int("shuffle", 25)
	if err != nil {
		return nil, err
	}
	seed, err := cfg.Int64("seed", time.Now().UnixNano())
	if err != nil {
		return nil, err
	}
	shuffler, err := Shuffle(grade, width, height, seed)
	if err != nil {
		return nil, err
	}
	return shuffler.Shuffle()
}

func (Problem) Render(s statespace.State) string { return s.(Grid).String() }
