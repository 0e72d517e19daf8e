// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package statespace

import "slices"

// Node is a state produced during a search run. It carries the domain payload plus a
// non-owning back-reference to the node it was produced from and the operator that
// produced it, so the full operator sequence of a solution can be reconstructed.
//
// Nodes form a DAG: children always point at older nodes, multiple children may share
// one parent, and no cycles can form. A Node is never modified after creation.
// Invariant: parent and operator are both nil (a root) or both non-nil.
type Node struct {
	state  State
	parent *Node
	op     Operator
}

// NewRoot creates a root node with no parent and no producing operator.
func NewRoot(state State) *Node { return &Node{state: state} }

// State returns the domain payload.
func (n *Node) State() State { return n.state }

// Parent returns the node this one was produced from, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Operator returns the operator applied to the parent, nil for a root.
func (n *Node) Operator() Operator { return n.op }

// Root returns a fresh root node carrying the same payload.
// Used to re-declare a shuffled state as the start of a new problem.
func (n *Node) Root() *Node { return NewRoot(n.state) }

// Depth is the number of operator applications from the root to this node,
// equal to the length of its operator sequence.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the ordered operator sequence from the root to this node.
func (n *Node) Path() []Operator {
	var ops []Operator
	for c := n; c.parent != nil; c = c.parent {
		ops = append(ops, c.op)
	}
	slices.Reverse(ops)
	return ops
}

// Ancestry returns the nodes from the root to this node, including this node.
func (n *Node) Ancestry() []*Node {
	var nodes []*Node
	for c := n; c != nil; c = c.parent {
		nodes = append(nodes, c)
	}
	slices.Reverse(nodes)
	return nodes
}

// FilterApplicable returns the sub-sequence of operators applicable to this node's
// state, preserving the input order.
func (n *Node) FilterApplicable(operators []Operator) []Operator {
	var applicable []Operator
	for _, op := range operators {
		if op.Applicable(n.state) {
			applicable = append(applicable, op)
		}
	}
	return applicable
}

// Apply produces the child node that results from applying op to this node's state.
// Returns an [InapplicableOperatorError] if op is not applicable, which indicates a
// defect in the problem domain, not a normal search outcome.
func (n *Node) Apply(op Operator) (*Node, error) {
	if !op.Applicable(n.state) {
		return nil, InapplicableOperatorError{Operator: op, State: n.state}
	}
	return &Node{state: op.Apply(n.state), parent: n, op: op}, nil
}

// ApplyAll applies every applicable operator from the given set, in order, and returns
// the resulting children. The node itself is never modified by expansion.
func (n *Node) ApplyAll(operators []Operator) ([]*Node, error) {
	var children []*Node
	for _, op := range n.FilterApplicable(operators) {
		child, err := n.Apply(op)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
