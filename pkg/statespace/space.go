// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package statespace

import "slices"

// Space is an immutable bundle of an initial state, a fixed ordered operator set and
// the evaluator used for every state comparison within the space.
type Space struct {
	initial   *Node
	operators []Operator
	evaluator Evaluator
}

// New creates a Space rooted at the initial state.
func New(initial State, operators []Operator, evaluator Evaluator) *Space {
	return &Space{
		initial:   NewRoot(initial),
		operators: slices.Clone(operators),
		evaluator: evaluator,
	}
}

// Initial returns the root node of the space.
func (s *Space) Initial() *Node { return s.initial }

// Operators returns the ordered operator set.
func (s *Space) Operators() []Operator { return slices.Clone(s.operators) }

// Evaluator returns the evaluator used for comparisons in this space.
func (s *Space) Evaluator() Evaluator { return s.evaluator }

// Difference is the evaluator distance between the payloads of two nodes.
func (s *Space) Difference(a, b *Node) float64 {
	return s.evaluator.Difference(a.State(), b.State())
}

// Same reports whether two nodes carry logically equal states.
func (s *Space) Same(a, b *Node) bool { return s.Difference(a, b) == 0 }

// FromInitial is the distance of a node from the initial state.
func (s *Space) FromInitial(n *Node) float64 { return s.Difference(s.initial, n) }

// GoalSpace is a Space augmented with a designated goal state against which progress
// is measured.
type GoalSpace struct {
	Space
	goal *Node
}

// NewGoal creates a goal-oriented space.
func NewGoal(initial State, operators []Operator, evaluator Evaluator, goal State) *GoalSpace {
	return &GoalSpace{Space: *New(initial, operators, evaluator), goal: NewRoot(goal)}
}

// Goal returns the goal node.
func (s *GoalSpace) Goal() *Node { return s.goal }

// GoalDistance is the evaluator distance between a node and the goal.
func (s *GoalSpace) GoalDistance(n *Node) float64 { return s.Difference(n, s.goal) }

// IsGoal reports whether the node is at zero distance from the goal.
func (s *GoalSpace) IsGoal(n *Node) bool { return s.GoalDistance(n) == 0 }

// InitialIsGoal reports whether the problem is already solved at construction.
func (s *GoalSpace) InitialIsGoal() bool { return s.IsGoal(s.initial) }
