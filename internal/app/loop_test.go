package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopStopsBeforeNextIteration(t *testing.T) {
	var iterations int
	closing := false

	err := loop(func() bool { return closing }, func() error {
		iterations++
		if iterations == 3 {
			// A close request seen mid-iteration: this iteration still
			// completes, the next one must not start.
			closing = true
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, iterations)
}

func TestLoopNeverStartsWhenAlreadyClosed(t *testing.T) {
	var iterations int

	err := loop(func() bool { return true }, func() error {
		iterations++
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, iterations)
}

func TestLoopPropagatesIterationError(t *testing.T) {
	boom := errors.New("boom")
	var iterations int

	err := loop(func() bool { return false }, func() error {
		iterations++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, iterations)
}
