package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestWrapAround(t *testing.T) {
	r := NewRotator(3, DefaultInterval, t0)

	assert.Equal(t, 1, r.Next(t0))
	assert.Equal(t, 2, r.Next(t0))
	assert.Equal(t, 0, r.Next(t0), "next past the last slide wraps to the first")

	assert.Equal(t, 2, r.Prev(t0), "prev from the first slide wraps to the last")
}

func TestAutoplayAdvancesAfterInterval(t *testing.T) {
	r := NewRotator(3, 5*time.Second, t0)

	assert.False(t, r.Tick(t0.Add(4*time.Second)))
	assert.Equal(t, 0, r.Index())

	assert.True(t, r.Tick(t0.Add(5*time.Second)))
	assert.Equal(t, 1, r.Index())
}

func TestManualNavigationRestartsTimer(t *testing.T) {
	r := NewRotator(3, 5*time.Second, t0)

	r.Next(t0.Add(3 * time.Second))
	assert.Equal(t, 1, r.Index())

	// Only 4s since the manual advance, not since t0.
	assert.False(t, r.Tick(t0.Add(7*time.Second)))
	assert.True(t, r.Tick(t0.Add(8*time.Second)))
}

func TestVideoSuspendsAutoplay(t *testing.T) {
	r := NewRotator(3, 5*time.Second, t0)

	r.SetVideoActive(true, t0)
	assert.False(t, r.Tick(t0.Add(time.Minute)), "no advance while video plays")
	assert.Equal(t, 0, r.Index())

	// Stopping the video restarts the interval from the stop time.
	stop := t0.Add(time.Minute)
	r.SetVideoActive(false, stop)
	assert.False(t, r.Tick(stop.Add(4*time.Second)))
	assert.True(t, r.Tick(stop.Add(5*time.Second)))
}

func TestSingleSlideNeverAdvances(t *testing.T) {
	r := NewRotator(1, 5*time.Second, t0)
	assert.False(t, r.Tick(t0.Add(time.Hour)))
	assert.Equal(t, 0, r.Index())

	empty := NewRotator(0, 5*time.Second, t0)
	assert.False(t, empty.Tick(t0.Add(time.Hour)))
	assert.Equal(t, 0, empty.Next(t0))
}

func TestSetCountClampsIndex(t *testing.T) {
	r := NewRotator(4, 5*time.Second, t0)
	r.Select(3, t0)

	r.SetCount(2, t0)
	assert.Equal(t, 0, r.Index(), "index out of range resets to the first slide")

	r.SetCount(5, t0)
	assert.Equal(t, 0, r.Index())
}

func TestSelectIgnoresOutOfRange(t *testing.T) {
	r := NewRotator(3, 5*time.Second, t0)
	assert.Equal(t, 2, r.Select(2, t0))
	assert.Equal(t, 2, r.Select(7, t0))
	assert.Equal(t, 2, r.Select(-1, t0))
}
