// Package carousel implements the home page media rotation. The
// rotator advances on a fixed autoplay interval, wraps around at the
// ends, and holds still while the slide's video is playing.
package carousel

import (
	"sync"
	"time"
)

// DefaultInterval is the autoplay cadence for the home carousel.
const DefaultInterval = 5 * time.Second

// Rotator tracks the active slide. All mutating calls take the time
// they happen at so tests can drive the autoplay clock directly.
type Rotator struct {
	mu          sync.Mutex
	count       int
	index       int
	interval    time.Duration
	videoActive bool
	lastChange  time.Time
}

// NewRotator returns a rotator over count slides starting at slide 0.
func NewRotator(count int, interval time.Duration, now time.Time) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		count:      count,
		interval:   interval,
		lastChange: now,
	}
}

// Index returns the active slide.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Next advances one slide, wrapping from the last back to the first,
// and restarts the autoplay timer.
func (r *Rotator) Next(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step(1, now)
}

// Prev steps back one slide, wrapping from the first to the last, and
// restarts the autoplay timer.
func (r *Rotator) Prev(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.step(-1, now)
}

// Select jumps to slide i. Out-of-range values are ignored.
func (r *Rotator) Select(i int, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i >= 0 && i < r.count {
		r.index = i
		r.lastChange = now
	}
	return r.index
}

// SetVideoActive marks whether the current slide's video is playing.
// Autoplay is suspended while active; when the video stops the timer
// restarts from now rather than crediting time that passed during
// playback.
func (r *Rotator) SetVideoActive(active bool, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.videoActive && !active {
		r.lastChange = now
	}
	r.videoActive = active
}

// SetCount updates the slide count after the media list changes. The
// active index is clamped into range.
func (r *Rotator) SetCount(count int, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count = count
	if r.index >= count {
		r.index = 0
		r.lastChange = now
	}
}

// Tick advances the carousel if a full autoplay interval has elapsed
// since the last change and no video is playing. It reports whether
// the slide moved.
func (r *Rotator) Tick(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.videoActive || r.count < 2 {
		return false
	}
	if now.Sub(r.lastChange) < r.interval {
		return false
	}
	r.step(1, now)
	return true
}

func (r *Rotator) step(delta int, now time.Time) int {
	if r.count == 0 {
		return 0
	}
	r.index = ((r.index+delta)%r.count + r.count) % r.count
	r.lastChange = now
	return r.index
}
