package core

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomSource is the randomness capability used during generation.
// IntRange returns a uniform integer in [low, high], both inclusive.
type RandomSource interface {
	Seed(seed int64)
	IntRange(low, high int) int
}

// TimeSource draws from math/rand. It starts seeded from the clock
// and can be reseeded for reproducible runs.
type TimeSource struct {
	random *rand.Rand
}

// NewTimeSource creates a source seeded from the current time
func NewTimeSource() *TimeSource {
	return &TimeSource{random: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Seed resets the generator state
func (s *TimeSource) Seed(seed int64) {
	s.random.Seed(seed)
}

// IntRange panics if high < low, like rand.Intn does for n <= 0
func (s *TimeSource) IntRange(low, high int) int {
	if high < low {
		panic(fmt.Sprintf("invalid range [%d, %d]", low, high))
	}
	return low + s.random.Intn(high-low+1)
}

// MinSource always returns the lower bound of the requested range.
// Output generated with it is fully reproducible.
type MinSource struct{}

// Seed is a no-op
func (MinSource) Seed(int64) {}

// IntRange returns low
func (MinSource) IntRange(low, high int) int {
	return low
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// Values are clamped into the requested range. Seeds are recorded.
type SequenceSource struct {
	Values []int
	Seeds  []int64
	next   int
}

// NewSequenceSource creates a source replaying values
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{Values: values}
}

// Seed records the seed and restarts the sequence
func (s *SequenceSource) Seed(seed int64) {
	s.Seeds = append(s.Seeds, seed)
	s.next = 0
}

// IntRange returns the next value clamped to [low, high]; low when no values are set
func (s *SequenceSource) IntRange(low, high int) int {
	if len(s.Values) == 0 {
		return low
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return max(low, min(high, v))
}
