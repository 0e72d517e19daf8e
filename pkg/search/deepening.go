// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search

import (
	"fmt"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

const defaultIncrement = 8

// Deepening is iterative-deepening depth-first search. It runs depth-first passes
// under an increasing depth limit: children generated at the limit are deferred and
// seed the fringe of the next, deeper pass. Unlike [Search], the goal check happens
// when a node is removed from the fringe, not when it is generated.
//
// With no [MaxDepth] the outer loop never gives up on its own unless the whole
// reachable space has been explored, in which case it fails like the other strategies.
type Deepening struct {
	space    *statespace.GoalSpace
	minimize bool

	increment int
	maxDepth  int

	fringe   *nodeList
	closed   *nodeList
	deferred []*statespace.Node
	expanded int
	passes   int
}

var _ Solver = &Deepening{}

// NewDeepening creates an iterative-deepening search. The depth increment (default 8,
// set with [Increment]) must be at least 1 or construction fails with a
// ConfigurationError.
func NewDeepening(space *statespace.GoalSpace, opts ...Option) (*Deepening, error) {
	cfg := newConfig(opts...)
	if cfg.increment < 1 {
		return nil, statespace.ConfigurationError{
			Reason: fmt.Sprintf("depth increment cannot be less than 1: %v", cfg.increment),
		}
	}
	e := space.Evaluator()
	return &Deepening{
		space:     space,
		minimize:  !cfg.revisits,
		increment: cfg.increment,
		maxDepth:  cfg.maxDepth,
		fringe:    newNodeList(e, space.Initial()),
		closed:    newNodeList(e),
	}, nil
}

func (d *Deepening) Name() string { return "iterative-deepening depth-first search" }

// Increment returns the depth-limit step added by each outer pass.
func (d *Deepening) Increment() int { return d.increment }

// Expanded returns the number of nodes expanded so far.
func (d *Deepening) Expanded() int { return d.expanded }

// Passes returns the number of outer passes started.
func (d *Deepening) Passes() int { return d.passes }

// Solve runs deepening passes until the goal is dequeued, the reachable space is
// exhausted, or the optional maximum depth is hit.
func (d *Deepening) Solve() (Outcome, error) {
	operators := d.space.Operators()
	limit := 0
	for {
		limit += d.increment
		d.passes++
		for _, n := range d.deferred {
			d.fringe.PushUnique(n)
		}
		d.deferred = d.deferred[:0]
		log.V(3).Info("deepening pass", "algorithm", d.Name(), "pass", d.passes, "limit", limit, "fringe", d.fringe.Len())

		for !d.fringe.Empty() {
			current := d.fringe.RemoveAt(d.fringe.Len() - 1) // depth-first removal
			if d.minimize && d.closed.Contains(current) {
				continue
			}
			if d.space.IsGoal(current) {
				log.V(2).Info("solution found", "algorithm", d.Name(), "pass", d.passes, "operators", current.Depth(), "expanded", d.expanded)
				return success(d.Name(), current, d.expanded), nil
			}
			children, err := current.ApplyAll(operators)
			if err != nil {
				return Outcome{}, err
			}
			d.expanded++
			switch {
			case current.Depth() >= limit:
				// At the edge of this pass's limit: hand the children to the next pass.
				d.deferred = append(d.deferred, children...)
			case d.minimize:
				for _, child := range children {
					d.fringe.PushUnique(child)
				}
				d.closed.PushUnique(current)
			default:
				for _, child := range children {
					d.fringe.Push(child)
				}
				d.closed.Push(current)
			}
		}

		if len(d.deferred) == 0 {
			return failure(d.Name(), "all reachable states were searched and no solution was found", d.expanded), nil
		}
		if d.maxDepth > 0 && limit >= d.maxDepth {
			return failure(d.Name(), fmt.Sprintf("no solution within depth limit %v", d.maxDepth), d.expanded), nil
		}
	}
}
