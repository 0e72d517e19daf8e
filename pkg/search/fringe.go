// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search

import "github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"

// nodeList is an ordered collection of nodes whose membership test uses evaluator
// distance, not pointer identity: two distinct node objects that represent the same
// logical configuration count as the same element.
//
// Membership is a linear scan. The evaluator's notion of equality cannot be reduced to
// a comparable map key without assuming a canonical state encoding, which the framework
// does not require of domains.
type nodeList struct {
	evaluator statespace.Evaluator
	nodes     []*statespace.Node
}

func newNodeList(evaluator statespace.Evaluator, nodes ...*statespace.Node) *nodeList {
	return &nodeList{evaluator: evaluator, nodes: nodes}
}

func (l *nodeList) Len() int    { return len(l.nodes) }
func (l *nodeList) Empty() bool { return len(l.nodes) == 0 }

// Nodes returns the backing slice, oldest first. Callers must not modify it.
func (l *nodeList) Nodes() []*statespace.Node { return l.nodes }

// Contains reports whether a node at zero distance from n is already present.
func (l *nodeList) Contains(n *statespace.Node) bool {
	for _, m := range l.nodes {
		if statespace.Same(l.evaluator, m.State(), n.State()) {
			return true
		}
	}
	return false
}

// Push appends n unconditionally.
func (l *nodeList) Push(n *statespace.Node) { l.nodes = append(l.nodes, n) }

// PushUnique appends n only if no equal node is present, and reports whether it was added.
func (l *nodeList) PushUnique(n *statespace.Node) bool {
	if l.Contains(n) {
		return false
	}
	l.Push(n)
	return true
}

// RemoveAt removes and returns the node at index i, preserving the order of the rest.
func (l *nodeList) RemoveAt(i int) *statespace.Node {
	n := l.nodes[i]
	l.nodes = append(l.nodes[:i], l.nodes[i+1:]...)
	return n
}
