// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package statespace contains the contracts and data model for state-space search problems.
//
// A 'problem domain' is a package that provides a [State] payload type, a set of [Operator]
// implementations and an [Evaluator]. The framework is problem-agnostic: it never inspects
// the payload, it only applies operators and measures differences.
//
// Once a domain is available, the search strategies in
// [github.com/vojtechpavlu/StateSpaceFW/pkg/search] can:
// - expand states by applying the domain's operators.
// - detect the goal by evaluator distance, not by structural equality.
// - reconstruct the operator sequence of a solution from parent links.
package statespace

// State is the domain-specific configuration payload.
//
// State can be any Go type. It does not require any special methods.
// The framework treats states as opaque values: all domain knowledge lives in the
// [Operator] and [Evaluator] implementations, which may type-assert their own payload type.
//
// States must be treated as immutable: an operator produces a new State, it never
// modifies the one it was applied to.
type State = any

// Operator is a named, stateless transition rule mapping one state to another.
//
// Must be implemented by a problem domain.
// An Operator is constructed once per problem instance and reused across arbitrarily
// many states.
type Operator interface {
	// Name of the operator, for humans and for solution listings.
	Name() string
	// Applicable reports whether the operator can be applied to the state.
	Applicable(State) bool
	// Apply produces the successor state. Must only be called when Applicable holds;
	// the framework guards every call through [Node.Apply].
	Apply(State) State
}

// Evaluator quantifies the dissimilarity of two states.
//
// Must be implemented by a problem domain.
// The result is a non-negative number and zero means the two states are logically
// equal. Symmetry and identity-of-indiscernibles are assumed by callers, not enforced.
// Containers in the framework use evaluator distance, never pointer or structural
// equality, to decide whether two states are the same.
type Evaluator interface {
	Difference(a, b State) float64
}

// Same reports whether two states are equal under the evaluator, i.e. at zero distance.
func Same(e Evaluator, a, b State) bool { return e.Difference(a, b) == 0 }
