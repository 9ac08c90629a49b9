package siteswap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siteswap"
	"github.com/katalvlaran/siteswap/orbit"
	"github.com/katalvlaran/siteswap/schedule"
)

func oneHand(values ...int) schedule.Schedule {
	s := make(schedule.Schedule, len(values))
	for i, v := range values {
		s[i] = schedule.Action{{{Value: v, From: 0, To: 0}}}
	}

	return s
}

func TestNew(t *testing.T) {
	t.Parallel()

	p, err := siteswap.New(oneHand(5, 3, 1), "531")
	require.NoError(t, err)
	assert.Equal(t, "531", p.Notation())
	assert.Equal(t, 5, p.GreatestValue())
	assert.Equal(t, 3, p.Period())
	assert.Equal(t, 1, p.Hands())
	assert.Equal(t, oneHand(5, 3, 1), p.Throws())
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	_, err := siteswap.New(nil, nil)
	require.ErrorIs(t, err, schedule.ErrStructure)

	_, err = siteswap.New(schedule.Schedule{{{{Value: 1, From: 0, To: 1}}, {}}}, nil)
	require.ErrorIs(t, err, schedule.ErrBalance)
}

func TestPattern_OrbitsSingle(t *testing.T) {
	t.Parallel()

	p, err := siteswap.New(oneHand(3), "3")
	require.NoError(t, err)

	orbits, err := p.Orbits()
	require.NoError(t, err)
	require.Len(t, orbits, 1)
	assert.Same(t, p, orbits[0])
}

func TestPattern_OrbitsZero(t *testing.T) {
	t.Parallel()

	p, err := siteswap.New(oneHand(0), "0")
	require.NoError(t, err)
	assert.Equal(t, 0, p.GreatestValue())

	orbits, err := p.Orbits()
	require.NoError(t, err)
	require.Len(t, orbits, 1)
	assert.Same(t, p, orbits[0])
}

func TestPattern_OrbitsSplit(t *testing.T) {
	t.Parallel()

	notation := struct{ Text string }{"531"}
	p, err := siteswap.New(oneHand(5, 3, 1), notation)
	require.NoError(t, err)

	orbits, err := p.Orbits()
	require.NoError(t, err)
	require.Len(t, orbits, 2)

	assert.Equal(t, oneHand(5, 0, 1), orbits[0].Throws())
	assert.Equal(t, oneHand(0, 3, 0), orbits[1].Throws())
	assert.Equal(t, 5, orbits[0].GreatestValue())
	assert.Equal(t, 3, orbits[1].GreatestValue())
	for _, o := range orbits {
		assert.Equal(t, notation, o.Notation())
		assert.NotSame(t, p, o)
	}
}

func TestPattern_OrbitsRebuild(t *testing.T) {
	t.Parallel()

	p, err := siteswap.New(oneHand(3), "3")
	require.NoError(t, err)

	orbits, err := p.Orbits(orbit.WithRebuild())
	require.NoError(t, err)
	require.Len(t, orbits, 1)
	assert.NotSame(t, p, orbits[0])
	assert.True(t, p.Throws().Equal(orbits[0].Throws()))
}
