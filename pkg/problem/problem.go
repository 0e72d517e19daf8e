// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package problem names and configures the problem domains a driver can solve.
package problem

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
)

// Config is a map of name:value parameters used to build a problem instance.
// The recognized names and values depend on the problem.
type Config map[string]string

// Int returns the named parameter as an int, or def when absent.
func (c Config) Int(key string, def int) (int, error) {
	v, ok := c[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, statespace.ConfigurationError{Reason: fmt.Sprintf("parameter %v: %v is not an integer", key, v)}
	}
	return n, nil
}

// Int64 returns the named parameter as an int64, or def when absent.
func (c Config) Int64(key string, def int64) (int64, error) {
	v, ok := c[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, statespace.ConfigurationError{Reason: fmt.Sprintf("parameter %v: %v is not an integer", key, v)}
	}
	return n, nil
}

// Problem builds goal-oriented state spaces for one named puzzle.
//
// Must be implemented by a problem domain that wants to be reachable by name from the
// CLI and REST drivers; domains used as plain libraries do not need it.
type Problem interface {
	Name() string        // Short name used to select the problem.
	Description() string // Description for human-readable documentation.
	// Space builds a problem instance from configuration parameters.
	Space(Config) (*statespace.GoalSpace, error)
	// Render returns a human-readable rendering of a state of this problem.
	Render(statespace.State) string
}

// NotFoundError reports an unknown problem name.
type NotFoundError struct{ Name string }

func (e NotFoundError) Error() string { return fmt.Sprintf("problem not found: %q", e.Name) }

// Registry is an immutable name->Problem lookup, built once by a driver.
type Registry struct{ problems map[string]Problem }

// NewRegistry creates a registry of the given problems.
func NewRegistry(problems ...Problem) *Registry {
	m := map[string]Problem{}
	for _, p := range problems {
		m[p.Name()] = p
	}
	return &Registry{problems: m}
}

// Get returns the named problem or a NotFoundError.
func (r *Registry) Get(name string) (Problem, error) {
	p, ok := r.problems[name]
	if !ok {
		return nil, NotFoundError{Name: name}
	}
	return p, nil
}

// All returns the problems sorted by name.
func (r *Registry) All() []Problem {
	all := make([]Problem, 0, len(r.problems))
	for _, p := range r.problems {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}
