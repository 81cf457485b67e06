package integrity

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestDetectBursts_SteadyRate(t *testing.T) {
	base := time.Date(2026, 8, 20, 0, 30, 0, 0, time.UTC)

	var timestamps []time.Time
	for i := 0; i < 10; i++ {
		timestamps = append(timestamps, base.Add(time.Duration(i)*time.Hour))
	}

	result := DetectBursts(timestamps, time.Hour)

	assert.Equal(t, false, result.IsBurst)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 1, result.MaxRatePerWindow)
	assert.Equal(t, 1.0, result.MeanRate)
}

func TestDetectBursts_SpikeDetected(t *testing.T) {
	base := time.Date(2026, 8, 20, 0, 30, 0, 0, time.UTC)

	var timestamps []time.Time
	for i := 0; i < 10; i++ {
		timestamps = append(timestamps, base.Add(time.Duration(i)*time.Hour))
	}
	// 31 posts landing inside hour 10
	spike := base.Add(10 * time.Hour)
	for i := 0; i < 31; i++ {
		timestamps = append(timestamps, spike.Add(time.Duration(i)*time.Second))
	}

	result := DetectBursts(timestamps, time.Hour)

	assert.Equal(t, true, result.IsBurst)
	assert.Equal(t, 31, result.MaxRatePerWindow)
	assert.Equal(t, true, result.Score > 0.5)
}

func TestDetectBursts_EmptyWindowsLowerTheMean(t *testing.T) {
	base := time.Date(2026, 8, 20, 0, 30, 0, 0, time.UTC)

	// Two posts five hours apart leave four empty windows between them.
	result := DetectBursts([]time.Time{base, base.Add(5 * time.Hour)}, time.Hour)

	assert.Equal(t, 1, result.MaxRatePerWindow)
	assert.Equal(t, 0.33, result.MeanRate)
}

func TestDetectBursts_SinglePost(t *testing.T) {
	result := DetectBursts([]time.Time{time.Now()}, time.Hour)

	assert.Equal(t, false, result.IsBurst)
	assert.Equal(t, 0.0, result.Score)
}

func TestDetectBursts_Empty(t *testing.T) {
	result := DetectBursts(nil, time.Hour)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, false, result.IsBurst)
	assert.Equal(t, 0, result.MaxRatePerWindow)
}
