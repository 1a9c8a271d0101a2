package domain

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func fixedClock() time.Time {
	return time.Unix(1_700_000_000, 0)
}

func TestNamer_Next(t *testing.T) {
	namer := NewNamer(WithClock(fixedClock))

	seen := make(map[string]struct{})

	for range 200 {
		name, err := namer.Next("run")
		require.NoError(t, err)

		assert.Len(t, name, 64)
		assert.True(t, name[0] >= 'a' && name[0] <= 'z', "name %q must start with a letter", name)

		_, dup := seen[name]
		assert.False(t, dup, "duplicate name %q", name)
		seen[name] = struct{}{}
	}
}

func TestNamer_NextSalted(t *testing.T) {
	namer := NewNamer(WithClock(fixedClock), WithRandom(bytes.NewReader(bytes.Repeat([]byte{7}, 64))))

	a, err := namer.NextSalted("count")
	require.NoError(t, err)

	b, err := namer.NextSalted("count")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNamer_NextSaltedEntropyFailure(t *testing.T) {
	namer := NewNamer(WithRandom(failingReader{}))

	_, err := namer.NextSalted("count")
	require.Error(t, err)
}

func TestNamer_ReservedNamesAreSkipped(t *testing.T) {
	probe := NewNamer(WithClock(fixedClock))
	first, err := probe.Next("run")
	require.NoError(t, err)

	namer := NewNamer(WithClock(fixedClock))
	namer.Reserve(first)

	name, err := namer.Next("run")
	require.NoError(t, err)
	assert.NotEqual(t, first, name)
}

func TestForceLeadingLetter(t *testing.T) {
	sum := []byte{0, 0, 0, 0, 0, 0, 0, 27}

	assert.Equal(t, "bcdef", forceLeadingLetter("0cdef", sum))
}

func TestNamer_GivesUpAfterRepeatedCollisions(t *testing.T) {
	probe := NewNamer(WithClock(fixedClock))
	namer := NewNamer(WithClock(fixedClock))

	for range maxNameAttempts {
		name, err := probe.Next("run")
		require.NoError(t, err)
		namer.Reserve(name)
	}

	_, err := namer.Next("run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 8 attempts")
}
