package core

import "time"

// Stats tracks throughput and a smoothed population for a running sim.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts the runtime clock.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation that took duration to compute. Both
// GenerationsPerSecond and AveragePopulation are exponential moving averages.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = smooth(s.GenerationsPerSecond, 1.0/duration.Seconds())
	}
	s.AveragePopulation = smooth(s.AveragePopulation, float64(population))
}

func smooth(avg, sample float64) float64 {
	if avg == 0 {
		return sample
	}
	return (avg * 0.9) + (sample * 0.1)
}

// Runtime returns the wall time since the stats were created.
func (s *Stats) Runtime() time.Duration { return time.Since(s.StartTime) }
