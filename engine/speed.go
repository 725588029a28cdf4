package engine

import (
	"sync/atomic"
	"time"
)

// SpeedLevels is the number of playback speed steps. Level 1 is
// slowest, SpeedLevels is fastest.
const SpeedLevels = 20

// baseDelay is the per-event delay at the fastest level. Slower levels
// scale it quadratically, so the slow end stretches far more than the
// fast end compresses.
const baseDelay = 10 * time.Microsecond

// Speed is the playback speed control. The render worker reads it
// every event; the input path adjusts it concurrently, so the level is
// atomic.
type Speed struct {
	level atomic.Int64
}

// NewSpeed returns a speed control calibrated to the grid size: small
// grids start slow so individual steps are watchable, large grids
// start fast so runs still finish in reasonable time. The mapping is
// quadratic in the grid's fraction of the maximum supported area.
func NewSpeed(width, height, maxDim int) *Speed {
	frac := float64(width*height) / float64(maxDim*maxDim)
	level := 1 + int64(frac*frac*float64(SpeedLevels-1))
	if level > SpeedLevels {
		level = SpeedLevels
	}
	s := &Speed{}
	s.level.Store(level)
	return s
}

// Level returns the current speed level in [1, SpeedLevels].
func (s *Speed) Level() int {
	return int(s.level.Load())
}

// Up increases playback speed by one level, saturating at the top.
func (s *Speed) Up() {
	for {
		cur := s.level.Load()
		if cur >= SpeedLevels {
			return
		}
		if s.level.CompareAndSwap(cur, cur+1) {
			return
		}
	}
}

// Down decreases playback speed by one level, saturating at the
// bottom.
func (s *Speed) Down() {
	for {
		cur := s.level.Load()
		if cur <= 1 {
			return
		}
		if s.level.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// Delay returns the per-event sleep for the current level:
// baseDelay * ((SpeedLevels - level) + 1)^2.
func (s *Speed) Delay() time.Duration {
	inv := int64(SpeedLevels) - s.level.Load() + 1
	return baseDelay * time.Duration(inv*inv)
}

// Batch returns how many events the render worker coalesces into one
// repaint at the current level. High speeds repaint once per batch so
// the terminal is not the bottleneck.
func (s *Speed) Batch() int {
	level := s.level.Load()
	if level >= SpeedLevels-2 {
		return 16
	}
	if level >= SpeedLevels-6 {
		return 4
	}
	return 1
}
