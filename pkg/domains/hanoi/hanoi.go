// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package hanoi implements the multi-peg disk-transfer puzzle as a problem domain.
//
// A state is an ordered set of sticks holding disks of distinct sizes, larger never
// above smaller; an operator moves the top disk of one stick onto another. The stock
// Hamming evaluator counts the disks sitting on the wrong stick, because [Board]
// projects each disk's stick index onto a vector.
package hanoi

import (
	"fmt"
	"strings"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/distance"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

var (
	_ statespace.Operator = MoveOperator{}
	_ distance.Vector     = Board{}
	_ problem.Problem     = Problem{}
)

// Board is the puzzle state: disk sizes per stick, bottom to top. Disk sizes are
// 1..disks and each disk appears exactly once. Boards are immutable; operators
// produce new boards.
type Board struct {
	sticks [][]int
	disks  int
}

// NewBoard creates a board and checks it is well formed: every stick strictly
// decreasing bottom to top and every size 1..disks present exactly once.
func NewBoard(sticks [][]int, disks int) (Board, error) {
	seen := make([]bool, disks+1)
	for i, stick := range sticks {
		for j, size := range stick {
			if size < 1 || size > disks {
				return Board{}, statespace.ConfigurationError{
					Reason: fmt.Sprintf("disk size out of range on stick %v: %v", i+1, size),
				}
			}
			if seen[size] {
				return Board{}, statespace.ConfigurationError{
					Reason: fmt.Sprintf("duplicate disk of size %v", size),
				}
			}
			seen[size] = true
			if j > 0 && stick[j-1] <= size {
				return Board{}, statespace.ConfigurationError{
					Reason: fmt.Sprintf("stick %v holds a larger disk above a smaller one", i+1),
				}
			}
		}
	}
	for size := 1; size <= disks; size++ {
		if !seen[size] {
			return Board{}, statespace.ConfigurationError{Reason: fmt.Sprintf("missing disk of size %v", size)}
		}
	}
	b := Board{sticks: make([][]int, len(sticks)), disks: disks}
	for i, stick := range sticks {
		b.sticks[i] = append([]int(nil), stick...)
	}
	return b, nil
}

// Stacked returns a board with all disks, largest at the bottom, on the stick at the
// given index and the remaining sticks empty.
func Stacked(disks, sticks, at int) Board {
	all := make([][]int, sticks)
	for size := disks; size >= 1; size-- {
		all[at] = append(all[at], size)
	}
	b, _ := NewBoard(all, disks) // A single full stack is always valid.
	return b
}

// Disks returns the number of disks on the board.
func (b Board) Disks() int { return b.disks }

// StickCount returns the number of sticks.
func (b Board) StickCount() int { return len(b.sticks) }

// Stick returns a copy of the disk sizes on the stick at index i, bottom to top.
func (b Board) Stick(i int) []int { return append([]int(nil), b.sticks[i]...) }

// Top returns the topmost disk size of stick i, or false if the stick is empty.
func (b Board) Top(i int) (int, bool) {
	stick := b.sticks[i]
	if len(stick) == 0 {
		return 0, false
	}
	return stick[len(stick)-1], true
}

// StickOf returns the index of the stick holding the disk of the given size.
func (b Board) StickOf(size int) int {
	for i, stick := range b.sticks {
		for _, s := range stick {
			if s == size {
				return i
			}
		}
	}
	panic(fmt.Sprintf("hanoi: no disk of size %v", size)) // NewBoard guarantees presence.
}

// move returns a new board with the top disk of stick from moved onto stick to.
func (b Board) move(from, to int) Board {
	next := Board{sticks: make([][]int, len(b.sticks)), disks: b.disks}
	for i := range b.sticks {
		next.sticks[i] = append([]int(nil), b.sticks[i]...)
	}
	top := next.sticks[from][len(next.sticks[from])-1]
	next.sticks[from] = next.sticks[from][:len(next.sticks[from])-1]
	next.sticks[to] = append(next.sticks[to], top)
	return next
}

// Vector projects each disk's stick index in disk-size order, so two boards differ in
// exactly the coordinates of the disks sitting on different sticks.
func (b Board) Vector() []float64 {
	v := make([]float64, b.disks)
	for size := 1; size <= b.disks; size++ {
		v[size-1] = float64(b.StickOf(size))
	}
	return v
}

// String renders the board one stick per segment.
func (b Board) String() string {
	var parts []string
	for i, stick := range b.sticks {
		parts = append(parts, fmt.Sprintf("[%v: %v]", i+1, stick))
	}
	return strings.Join(parts, " ")
}

// MoveOperator moves the top disk of one stick onto another. Stick indexes are 0-based,
// the operator name shows them 1-based.
type MoveOperator struct{ from, to int }

func (o MoveOperator) Name() string { return fmt.Sprintf("%v->%v", o.from+1, o.to+1) }

// Applicable reports whether the source stick has a disk and the move keeps sticks
// well formed: onto an empty stick, or onto a strictly larger disk.
func (o MoveOperator) Applicable(s statespace.State) bool {
	b := s.(Board)
	fromTop, ok := b.Top(o.from)
	if !ok {
		return false
	}
	toTop, ok := b.Top(o.to)
	return !ok || fromTop < toTop
}

// Apply moves the top disk.
func (o MoveOperator) Apply(s statespace.State) statespace.State {
	return s.(Board).move(o.from, o.to)
}

// Operators returns a move operator for every ordered pair of distinct sticks.
func Operators(sticks int) []statespace.Operator {
	var ops []statespace.Operator
	for from := 0; from < sticks; from++ {
		for to := 0; to < sticks; to++ {
			if from != to {
				ops = append(ops, MoveOperator{from: from, to: to})
			}
		}
	}
	return ops
}

// New builds the classic instance: all disks start on the first stick and must end on
// the last one. Needs at least one disk and two sticks.
func New(disks, sticks int) (*statespace.GoalSpace, error) {
	if disks < 1 {
		return nil, statespace.ConfigurationError{Reason: fmt.Sprintf("need at least 1 disk, got %v", disks)}
	}
	if sticks < 2 {
		return nil, statespace.ConfigurationError{Reason: fmt.Sprintf("need at least 2 sticks, got %v", sticks)}
	}
	initial := Stacked(disks, sticks, 0)
	goal := Stacked(disks, sticks, sticks-1)
	return statespace.NewGoal(initial, Operators(sticks), distance.Hamming{}, goal), nil
}
