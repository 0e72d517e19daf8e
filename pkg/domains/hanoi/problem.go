// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package hanoi

import (
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

// Problem makes the puzzle reachable by name from drivers.
// Parameters: disks (3), sticks (3).
type Problem struct{}

func (Problem) Name() string { return "hanoi" }

func (Problem) Description() string {
	return "Disk-transfer puzzle: move a tower of disks between sticks, never placing a larger disk on a smaller one."
}

func (Problem) Space(cfg problem.Config) (*statespace.GoalSpace, error) {
	disks, err := cfg.Int("disks", 3)
	if err != nil {
		return nil, err
	}
	sticks, err := cfg.Int("sticks", 3)
	if err != nil {
		return nil, err
	}
	return New(disks, sticks)
}

func (Problem) Render(s statespace.State) string { return s.(Board).String() }
