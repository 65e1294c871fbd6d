package utils

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsUpdate(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewStats(reg)

	s.Update(0, 10, 20, 0)
	assert.Equal(t, 10.0, s.AveragePopulation)
	assert.Equal(t, 0.0, testutil.ToFloat64(s.generations), "the initial pattern is not a computed step")

	s.Update(1, 20, 30, 100*time.Millisecond)
	assert.InDelta(t, 11.0, s.AveragePopulation, 1e-9)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.Equal(t, 20, s.ActiveCells)
	assert.Equal(t, 30, s.BoundingBoxSize)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.generations))
	assert.Equal(t, 20.0, testutil.ToFloat64(s.population))
	assert.Equal(t, 30.0, testutil.ToFloat64(s.boundingBox))

	count, err := testutil.GatherAndCount(reg, "golife_step_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewStatsWithoutRegistry(t *testing.T) {
	s := NewStats(nil)
	s.Update(0, 3, 9, 0)
	assert.Equal(t, 3.0, testutil.ToFloat64(s.population))
	assert.GreaterOrEqual(t, s.Runtime(), time.Duration(0))
}
