package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	BoundingBoxSize      int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. boxSize is the area of the world's
// bounding box.
func (s *Stats) Update(generation, population, boxSize int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.BoundingBoxSize = boxSize
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Density returns the share of the bounding box that is alive, in percent
func (s *Stats) Density() float64 {
	if s.BoundingBoxSize == 0 {
		return 0
	}
	return float64(s.ActiveCells) / float64(s.BoundingBoxSize) * 100
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
