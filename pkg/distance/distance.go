// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package distance provides stock difference evaluators over vector-shaped states.
//
// A domain opts in by giving its state payload a Vector method that projects the
// configuration onto a fixed-dimension float vector; any of the metrics here then
// works as its [statespace.Evaluator]. All three satisfy the metric axioms:
// non-negative, symmetric, zero exactly on equal vectors, triangle inequality.
package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

var (
	_ statespace.Evaluator = Hamming{}
	_ statespace.Evaluator = Manhattan{}
	_ statespace.Evaluator = Euclidean{}
)

// Vector is implemented by state payloads comparable through the metrics here.
// All states of one problem must project to vectors of the same dimension.
type Vector interface {
	Vector() []float64
}

// vectors projects both states, panicking on non-Vector payloads or mismatched
// dimensions: either is a defect in the problem domain, not a run-time condition.
func vectors(a, b statespace.State) ([]float64, []float64) {
	va, ok := a.(Vector)
	if !ok {
		panic(fmt.Sprintf("distance: state of type %T has no vector projection", a))
	}
	vb, ok := b.(Vector)
	if !ok {
		panic(fmt.Sprintf("distance: state of type %T has no vector projection", b))
	}
	x, y := va.Vector(), vb.Vector()
	if len(x) != len(y) {
		panic(fmt.Sprintf("distance: cannot compare states of different dimensions: %v != %v", len(x), len(y)))
	}
	return x, y
}

// Hamming counts the coordinates in which two vectors differ.
type Hamming struct{}

func (Hamming) Difference(a, b statespace.State) float64 {
	x, y := vectors(a, b)
	d := 0.0
	for i := range x {
		if x[i] != y[i] {
			d++
		}
	}
	return d
}

// Manhattan is the taxicab distance, the sum of absolute coordinate differences.
type Manhattan struct{}

func (Manhattan) Difference(a, b statespace.State) float64 {
	x, y := vectors(a, b)
	return floats.Distance(x, y, 1)
}

// Euclidean is the straight-line L2 distance.
type Euclidean struct{}

func (Euclidean) Difference(a, b statespace.State) float64 {
	x, y := vectors(a, b)
	return floats.Distance(x, y, 2)
}
