// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package mock is a minimal problem domain for testing.
// States are plain string labels, operators are single edges between labels, and the
// evaluator is the discrete metric (0 for equal labels, 1 otherwise).
// This keeps tests declarative: a state space is just a list of "a->b" edges.
package mock

import (
	"math"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

var (
	// Validate implementation of interfaces.
	_ statespace.Operator  = Rule{}
	_ statespace.Evaluator = Evaluator{}
	_ statespace.Evaluator = NumericEvaluator{}
)

// Rule is an operator applicable to exactly one label, mapping it to another.
type Rule struct{ from, to string }

func NewRule(from, to string) Rule { return Rule{from: from, to: to} }

func (r Rule) Name() string                          { return r.from + "->" + r.to }
func (r Rule) Applicable(s statespace.State) bool    { return s == statespace.State(r.from) }
func (r Rule) Apply(statespace.State) statespace.State { return r.to }

// Rules builds operators from "from->to" pairs: Rules("a","b", "b","c").
func Rules(pairs ...string) []statespace.Operator {
	var ops []statespace.Operator
	for i := 0; i+1 < len(pairs); i += 2 {
		ops = append(ops, NewRule(pairs[i], pairs[i+1]))
	}
	return ops
}

// Evaluator is the discrete metric on labels: zero for equal labels, one otherwise.
type Evaluator struct{}

func (Evaluator) Difference(a, b statespace.State) float64 {
	if a == b {
		return 0
	}
	return 1
}

// Space builds a goal-oriented label space from "from->to" edge pairs.
func Space(initial, goal string, pairs ...string) *statespace.GoalSpace {
	return statespace.NewGoal(initial, Rules(pairs...), Evaluator{}, goal)
}

// NumericEvaluator measures the absolute difference of float64 payloads.
// Useful for exercising distance-ordered strategies with a non-degenerate metric.
type NumericEvaluator struct{}

func (NumericEvaluator) Difference(a, b statespace.State) float64 {
	return math.Abs(a.(float64) - b.(float64))
}
