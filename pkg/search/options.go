// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package search

import "time"

// Option configures a solver. Options that do not apply to the solver being built are
// ignored, so one option list can be passed through a generic construction path.
type Option func(*config)

type config struct {
	revisits  bool
	increment int
	maxDepth  int
	maxSteps  int
	seed      int64
	seeded    bool
}

func newConfig(opts ...Option) config {
	cfg := config{increment: defaultIncrement}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Revisits disables duplicate suppression: every generated child enters the fringe and
// every expanded node enters the closed set unconditionally, allowing unbounded
// re-visiting of logically equal states.
func Revisits() Option { return func(c *config) { c.revisits = true } }

// Increment sets the depth-limit increment for [Deepening]. Must be at least 1.
func Increment(n int) Option { return func(c *config) { c.increment = n } }

// MaxDepth bounds [Deepening]: once the depth limit reaches n the search terminates
// with a failure outcome instead of deepening further. Zero means unbounded.
func MaxDepth(n int) Option { return func(c *config) { c.maxDepth = n } }

// MaxSteps bounds [RandomWalk]: after n operator applications the walk terminates with
// a failure outcome. Zero means unbounded.
func MaxSteps(n int) Option { return func(c *config) { c.maxSteps = n } }

// Seed fixes the random source of [RandomWalk] for reproducible runs.
func Seed(seed int64) Option { return func(c *config) { c.seed, c.seeded = seed, true } }

func (c config) randomSeed() int64 {
	if c.seeded {
		return c.seed
	}
	return time.Now().UnixNano()
}
