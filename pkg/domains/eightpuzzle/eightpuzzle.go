// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package eightpuzzle implements the sliding-tile puzzle as a problem domain.
//
// A state is a rectangular grid of value-labeled tiles with one empty slot; an
// operator slides a neighboring tile into the empty slot. The stock Manhattan
// evaluator serves as the heuristic because [Grid] projects each tile's coordinates
// onto a canonical vector.
package eightpuzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/distance"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

// EmptyValue labels the empty slot of the grid.
const EmptyValue = "_"

var (
	_ statespace.Operator = MoveOperator{}
	_ distance.Vector     = Grid{}
	_ problem.Problem     = Problem{}
)

// Tile is one value at a grid position.
type Tile struct {
	Value string
	X, Y  int
}

// Grid is the puzzle state: a set of tiles, one of which is the empty slot.
// Grids are immutable; operators produce new grids.
type Grid struct {
	tiles         []Tile
	width, height int
}

// NewGrid creates a grid from tiles. The tile set must contain exactly one
// [EmptyValue] tile and only in-bounds coordinates.
func NewGrid(tiles []Tile, width, height int) (Grid, error) {
	empties := 0
	for _, t := range tiles {
		if t.X < 0 || t.X >= width || t.Y < 0 || t.Y >= height {
			return Grid{}, statespace.ConfigurationError{
				Reason: fmt.Sprintf("tile %q out of bounds: [%v, %v]", t.Value, t.X, t.Y),
			}
		}
		if t.Value == EmptyValue {
			empties++
		}
	}
	if empties != 1 {
		return Grid{}, statespace.ConfigurationError{
			Reason: fmt.Sprintf("grid needs exactly one empty slot, got %v", empties),
		}
	}
	g := Grid{tiles: make([]Tile, len(tiles)), width: width, height: height}
	copy(g.tiles, tiles)
	return g, nil
}

// Ordered returns the solved grid: the empty slot at the origin, tiles 1..n in
// row-major order.
func Ordered(width, height int) Grid {
	tiles := []Tile{{Value: EmptyValue}}
	i := 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 && y == 0 {
				continue
			}
			tiles = append(tiles, Tile{Value: fmt.Sprint(i), X: x, Y: y})
			i++
		}
	}
	g, _ := NewGrid(tiles, width, height) // Ordered tiles are always valid.
	return g
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

// Tiles returns a copy of the tile set.
func (g Grid) Tiles() []Tile {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return tiles
}

// Empty returns the empty-slot tile.
func (g Grid) Empty() Tile {
	t, _ := g.byValue(EmptyValue) // NewGrid guarantees presence.
	return t
}

func (g Grid) byValue(value string) (Tile, bool) {
	for _, t := range g.tiles {
		if t.Value == value {
			return t, true
		}
	}
	return Tile{}, false
}

// At returns the tile at the given coordinates.
func (g Grid) At(x, y int) (Tile, bool) {
	for _, t := range g.tiles {
		if t.X == x && t.Y == y {
			return t, true
		}
	}
	return Tile{}, false
}

// Has reports whether any tile occupies the given coordinates.
func (g Grid) Has(x, y int) bool {
	_, ok := g.At(x, y)
	return ok
}

// slide returns a new grid with the tile at (x, y) moved into the empty slot.
func (g Grid) slide(x, y int) Grid {
	empty := g.Empty()
	next := Grid{tiles: g.Tiles(), width: g.width, height: g.height}
	for i, t := range next.tiles {
		switch {
		case t.Value == EmptyValue:
			next.tiles[i].X, next.tiles[i].Y = x, y
		case t.X == x && t.Y == y:
			next.tiles[i].X, next.tiles[i].Y = empty.X, empty.Y
		}
	}
	return next
}

// Vector projects tile coordinates in canonical (sorted-by-value) order, so any two
// grids of the same shape are comparable by the stock vector metrics.
func (g Grid) Vector() []float64 {
	tiles := g.Tiles()
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Value < tiles[j].Value })
	v := make([]float64, 0, 2*len(tiles))
	for _, t := range tiles {
		v = append(v, float64(t.X), float64(t.Y))
	}
	return v
}

// String renders the grid row by row.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			t, _ := g.At(x, y)
			fmt.Fprintf(&b, "%-3v ", t.Value)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MoveOperator slides the tile adjacent to the empty slot in one direction.
type MoveOperator struct {
	name   string
	dx, dy int
}

func (o MoveOperator) Name() string { return o.name }

// Applicable reports whether a tile exists at the empty slot's neighbor position.
func (o MoveOperator) Applicable(s statespace.State) bool {
	g := s.(Grid)
	empty := g.Empty()
	return g.Has(empty.X+o.dx, empty.Y+o.dy)
}

// Apply slides the neighbor tile into the empty slot.
func (o MoveOperator) Apply(s statespace.State) statespace.State {
	g := s.(Grid)
	empty := g.Empty()
	return g.slide(empty.X+o.dx, empty.Y+o.dy)
}

// Operators returns the four sliding directions, named for the direction the empty
// slot moves.
func Operators() []statespace.Operator {
	return []statespace.Operator{
		MoveOperator{name: "RIGHT", dx: 1, dy: 0},
		MoveOperator{name: "UP", dx: 0, dy: -1},
		MoveOperator{name: "LEFT", dx: -1, dy: 0},
		MoveOperator{name: "DOWN", dx: 0, dy: 1},
	}
}

// New builds a goal-oriented space from an initial and a goal grid, using the
// Manhattan distance of tile positions as the evaluator.
func New(initial, goal Grid) *statespace.GoalSpace {
	return statespace.NewGoal(initial, Operators(), distance.Manhattan{}, goal)
}

// Shuffle builds a solvable random instance by walking grade moves backward from the
// ordered grid.
func Shuffle(grade, width, height int, seed int64) (*statespace.Shuffler, error) {
	return statespace.NewShuffler(Ordered(width, height), Operators(), distance.Manhattan{}, grade, seed)
}
