// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search

import (
	"fmt"
	"math/rand"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

// RandomWalk is a degenerate, non-fringe-based strategy useful as a statistical
// baseline: it repeatedly applies a uniformly chosen applicable operator to the
// current state until it stumbles onto the goal. It keeps no fringe and no closed set,
// so with no [MaxSteps] an unreachable goal means the walk never terminates.
type RandomWalk struct {
	space    *statespace.GoalSpace
	rand     *rand.Rand
	maxSteps int

	steps          int
	applicableSeen int
}

var _ Solver = &RandomWalk{}

// NewRandomWalk creates a random walk over space. Use [Seed] for reproducible runs and
// [MaxSteps] to bound the walk.
func NewRandomWalk(space *statespace.GoalSpace, opts ...Option) *RandomWalk {
	cfg := newConfig(opts...)
	return &RandomWalk{
		space:    space,
		rand:     rand.New(rand.NewSource(cfg.randomSeed())),
		maxSteps: cfg.maxSteps,
	}
}

func (w *RandomWalk) Name() string { return "random operator walk" }

// ApplicableSeen returns the cumulative count of applicable operators observed across
// all steps of the walk.
func (w *RandomWalk) ApplicableSeen() int { return w.applicableSeen }

// Solve walks until the current state is at zero distance from the goal, a dead end is
// reached, or the optional step bound is exceeded.
func (w *RandomWalk) Solve() (Outcome, error) {
	operators := w.space.Operators()
	current := w.space.Initial()
	for !w.space.IsGoal(current) {
		if w.maxSteps > 0 && w.steps >= w.maxSteps {
			return failure(w.Name(), fmt.Sprintf("no solution within %v steps", w.maxSteps), w.steps), nil
		}
		applicable := current.FilterApplicable(operators)
		if len(applicable) == 0 {
			return failure(w.Name(), "dead end: no operator is applicable", w.steps), nil
		}
		w.applicableSeen += len(applicable)
		next, err := current.Apply(applicable[w.rand.Intn(len(applicable))])
		if err != nil {
			return Outcome{}, err
		}
		current = next
		w.steps++
		log.V(3).Info("stepped", "algorithm", w.Name(), "step", w.steps, "applicable", len(applicable))
	}
	return success(w.Name(), current, w.steps), nil
}
