// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package search implements generic state-space search strategies.
//
// All fringe-based strategies (breadth-first, depth-first, greedy best-first, A*) share
// one [Search] loop and differ only in the [Picker] that selects the next node to
// expand. [Deepening] (iterative-deepening depth-first) and [RandomWalk] have their own
// loop shapes but reuse the same contracts.
//
// A solver reports exactly one of two normal outcomes, success or failure, as an
// [Outcome] value. The error return of Solve is reserved for defects such as an
// inapplicable operator leaking out of a problem domain.
package search

import (
	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/logging"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

var log = logging.Log()

// Outcome is the termination signal of a completed search: Success carrying the final
// node, or Failure carrying a diagnostic reason. Failure is a valid domain outcome
// (state space exhausted), not an error.
type Outcome struct {
	Algorithm string           // Name of the algorithm that terminated.
	Final     *statespace.Node // Terminal node on success, nil on failure.
	Reason    string           // Diagnostic message on failure.
	Expanded  int              // Nodes expanded (steps taken, for RandomWalk).
}

// Success reports whether the search found the goal.
func (o Outcome) Success() bool { return o.Final != nil }

// Operators returns the solution's operator sequence, nil on failure.
func (o Outcome) Operators() []statespace.Operator {
	if o.Final == nil {
		return nil
	}
	return o.Final.Path()
}

func success(algorithm string, final *statespace.Node, expanded int) Outcome {
	return Outcome{Algorithm: algorithm, Final: final, Expanded: expanded}
}

func failure(algorithm, reason string, expanded int) Outcome {
	return Outcome{Algorithm: algorithm, Reason: reason, Expanded: expanded}
}

// Solver is a search strategy bound to a goal-oriented space.
type Solver interface {
	Name() string
	// Solve runs to completion and reports the outcome.
	// The error channel carries defects only, never a failed search.
	Solve() (Outcome, error)
}

// Search is the shared fringe-and-closed-set loop behind the blind goal-oriented
// strategies. The fringe holds nodes pending expansion, the closed set holds nodes
// already expanded; both are owned exclusively by this instance for one Solve run.
type Search struct {
	space    *statespace.GoalSpace
	picker   Picker
	minimize bool
	fringe   *nodeList
	closed   *nodeList
	expanded int
}

var _ Solver = &Search{}

// NewSearch creates a fringe-based search over space with the given selection policy.
// Duplicate suppression ("minimize accesses") is on unless [Revisits] is given.
func NewSearch(space *statespace.GoalSpace, picker Picker, opts ...Option) *Search {
	cfg := newConfig(opts...)
	e := space.Evaluator()
	return &Search{
		space:    space,
		picker:   picker,
		minimize: !cfg.revisits,
		fringe:   newNodeList(e, space.Initial()),
		closed:   newNodeList(e),
	}
}

func (s *Search) Name() string { return s.picker.Name() }

// MinimizeAccesses reports whether duplicate suppression is active.
func (s *Search) MinimizeAccesses() bool { return s.minimize }

// Expanded returns the number of nodes expanded so far.
func (s *Search) Expanded() int { return s.expanded }

// Solve runs the search loop:
//
//  1. If the initial state already equals the goal, succeed with it immediately.
//  2. Otherwise pull nodes from the fringe by the selection policy, skip any node whose
//     equal is already closed, expand the rest, and succeed the moment a generated
//     child is at zero distance from the goal. Children are recognized as goals at
//     generation time, one level before they would be dequeued.
//  3. Fail when the fringe empties: the reachable space is exhausted.
func (s *Search) Solve() (Outcome, error) {
	if s.space.InitialIsGoal() {
		return success(s.Name(), s.space.Initial(), s.expanded), nil
	}
	operators := s.space.Operators()
	for !s.fringe.Empty() {
		current := s.fringe.RemoveAt(s.picker.Pick(s.fringe.Nodes(), s.space))
		if s.minimize && s.closed.Contains(current) {
			continue
		}
		children, err := current.ApplyAll(operators)
		if err != nil {
			return Outcome{}, err
		}
		s.expanded++
		log.V(3).Info("expanded", "algorithm", s.Name(), "depth", current.Depth(), "children", len(children), "fringe", s.fringe.Len())
		for _, child := range children {
			if s.space.IsGoal(child) {
				log.V(2).Info("solution found", "algorithm", s.Name(), "operators", child.Depth(), "expanded", s.expanded)
				return success(s.Name(), child, s.expanded), nil
			}
		}
		if s.minimize {
			for _, child := range children {
				s.fringe.PushUnique(child)
			}
			s.closed.PushUnique(current)
		} else {
			for _, child := range children {
				s.fringe.Push(child)
			}
			s.closed.Push(current)
		}
	}
	log.V(2).Info("state space exhausted", "algorithm", s.Name(), "expanded", s.expanded)
	return failure(s.Name(), "all reachable states were searched and no solution was found", s.expanded), nil
}
