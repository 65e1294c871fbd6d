package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "golife"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	BoundingBoxSize      int

	generations  prometheus.Counter
	population   prometheus.Gauge
	boundingBox  prometheus.Gauge
	stepDuration prometheus.Histogram
}

// NewStats creates Stats and registers its collectors on reg.
// A nil reg keeps the collectors unregistered.
func NewStats(reg prometheus.Registerer) *Stats {
	s := &Stats{
		StartTime: time.Now(),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Number of generations computed.",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "population",
			Help:      "Live cells in the latest generation.",
		}),
		boundingBox: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "bounding_box_area",
			Help:      "Area of the bounding box of the latest generation.",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "step_duration_seconds",
			Help:      "Time spent computing one generation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(s.generations, s.population, s.boundingBox, s.stepDuration)
	}
	return s
}

// Update records one generation. Generation 0 is the initial pattern and is
// not counted as a computed step.
func (s *Stats) Update(generation, population, boundingBoxSize int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.BoundingBoxSize = boundingBoxSize
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if generation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.population.Set(float64(population))
	s.boundingBox.Set(float64(boundingBoxSize))
	if generation > 0 {
		s.generations.Inc()
		s.stepDuration.Observe(duration.Seconds())
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
