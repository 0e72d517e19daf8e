// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package statespace

import (
	"fmt"
	"math/rand"
	"slices"
)

// Shuffler builds a randomized goal-oriented space by walking backward from a goal
// state: it applies a number of randomly chosen applicable operators to the goal and
// declares the state it ends up in as the new initial state. A problem built this way
// is guaranteed solvable as long as its operators are reversible.
type Shuffler struct {
	goal      State
	operators []Operator
	evaluator Evaluator
	grade     int
	rand      *rand.Rand
	applied   []Operator
}

// NewShuffler creates a Shuffler that performs grade random operator applications.
// A negative grade is a ConfigurationError.
func NewShuffler(goal State, operators []Operator, evaluator Evaluator, grade int, seed int64) (*Shuffler, error) {
	if grade < 0 {
		return nil, ConfigurationError{Reason: fmt.Sprintf("shuffle grade cannot be negative: %v", grade)}
	}
	return &Shuffler{
		goal:      goal,
		operators: slices.Clone(operators),
		evaluator: evaluator,
		grade:     grade,
		rand:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Grade returns the number of random steps the shuffle performs.
func (s *Shuffler) Grade() int { return s.grade }

// Applied returns the operators applied during the most recent Shuffle, in order.
func (s *Shuffler) Applied() []Operator { return slices.Clone(s.applied) }

// Shuffle walks backward from the goal and returns a goal-oriented space whose initial
// state is the shuffled one, re-rooted so it carries no parent history.
// The walk stops early if it reaches a state with no applicable operator.
func (s *Shuffler) Shuffle() (*GoalSpace, error) {
	s.applied = nil
	current := NewRoot(s.goal)
	for i := 0; i < s.grade; i++ {
		applicable := current.FilterApplicable(s.operators)
		if len(applicable) == 0 {
			break
		}
		op := applicable[s.rand.Intn(len(applicable))]
		next, err := current.Apply(op)
		if err != nil {
			return nil, err
		}
		s.applied = append(s.applied, op)
		current = next
	}
	// NewGoal re-roots the shuffled state, discarding the backward walk's history.
	return NewGoal(current.State(), s.operators, s.evaluator, s.goal), nil
}
