// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

// AlgorithmNotFoundError reports an unknown algorithm name passed to [New].
type AlgorithmNotFoundError struct{ Name string }

func (e AlgorithmNotFoundError) Error() string {
	return fmt.Sprintf("algorithm not found: %q", e.Name)
}

func IsAlgorithmNotFoundError(err error) bool {
	return statespace.IsErrorType[AlgorithmNotFoundError](err)
}

type builder func(*statespace.GoalSpace, ...Option) (Solver, error)

var algorithms = map[string]builder{
	"bfs": func(s *statespace.GoalSpace, opts ...Option) (Solver, error) {
		return NewSearch(s, BFS{}, opts...), nil
	},
	"dfs": func(s *statespace.GoalSpace, opts ...Option) (Solver, error) {
		return NewSearch(s, DFS{}, opts...), nil
	},
	"best": func(s *statespace.GoalSpace, opts ...Option) (Solver, error) {
		return NewSearch(s, BestFirst{}, opts...), nil
	},
	"astar": func(s *statespace.GoalSpace, opts ...Option) (Solver, error) {
		return NewSearch(s, AStar{}, opts...), nil
	},
	"iddfs": func(s *statespace.GoalSpace, opts ...Option) (Solver, error) {
		return NewDeepening(s, opts...)
	},
	"random": func(s *statespace.GoalSpace, opts ...Option) (Solver, error) {
		return NewRandomWalk(s, opts...), nil
	},
}

// New builds a solver by its registry name: bfs, dfs, best, astar, iddfs or random.
func New(name string, space *statespace.GoalSpace, opts ...Option) (Solver, error) {
	b, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return nil, AlgorithmNotFoundError{Name: name}
	}
	return b(space, opts...)
}

// Algorithms lists the registry names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
