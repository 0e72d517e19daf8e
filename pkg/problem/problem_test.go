// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package problem_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/statespace/mock"
)

type fake string

func (f fake) Name() string        { return string(f) }
func (f fake) Description() string { return "fake problem " + string(f) }
func (f fake) Space(problem.Config) (*statespace.GoalSpace, error) {
	return mock.Space("a", "b", "a", "b"), nil
}
func (f fake) Render(s statespace.State) string { return fmt.Sprint(s) }

func TestConfig_Int(t *testing.T) {
	cfg := problem.Config{"n": "5", "bad": "five"}

	n, err := cfg.Int("n", 1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = cfg.Int("absent", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = cfg.Int("bad", 0)
	require.Error(t, err)
	assert.True(t, statespace.IsConfigurationError(err))

	i, err := cfg.Int64("n", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), i)
	_, err = cfg.Int64("bad", 0)
	require.Error(t, err)
	assert.True(t, statespace.IsConfigurationError(err))
}

func TestRegistry(t *testing.T) {
	r := problem.NewRegistry(fake("zebra"), fake("aardvark"))

	p, err := r.Get("zebra")
	require.NoError(t, err)
	assert.Equal(t, "zebra", p.Name())

	_, err = r.Get("unicorn")
	require.Error(t, err)
	assert.True(t, statespace.IsErrorType[problem.NotFoundError](err))
	assert.EqualError(t, err, `problem not found: "unicorn"`)

	var names []string
	for _, p := range r.All() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"aardvark", "zebra"}, names)
}
