package integrity

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

type BurstResult struct {
	Score            float64
	IsBurst          bool
	MaxRatePerWindow int
	MeanRate         float64
}

const burstZScoreThreshold = 2.5

// DetectBursts buckets post timestamps into fixed windows and scores how far
// the busiest window sits above the mean rate. The z-score is normalized so
// that 4 standard deviations maps to 1.0.
func DetectBursts(timestamps []time.Time, window time.Duration) BurstResult {
	if len(timestamps) == 0 || window <= 0 {
		return BurstResult{}
	}

	minBucket := timestamps[0].Truncate(window)
	maxBucket := minBucket
	buckets := make(map[time.Time]int)

	for _, ts := range timestamps {
		bucket := ts.Truncate(window)
		buckets[bucket]++
		if bucket.Before(minBucket) {
			minBucket = bucket
		}
		if bucket.After(maxBucket) {
			maxBucket = bucket
		}
	}

	// Include empty intermediate windows so quiet periods pull the mean down.
	var counts []float64
	for b := minBucket; !b.After(maxBucket); b = b.Add(window) {
		counts = append(counts, float64(buckets[b]))
	}

	mean := stat.Mean(counts, nil)
	maxRate := 0.0
	for _, c := range counts {
		if c > maxRate {
			maxRate = c
		}
	}

	stdDev := 0.0
	if len(counts) > 1 {
		stdDev = stat.StdDev(counts, nil)
	}

	zScore := 0.0
	if stdDev > 0 {
		zScore = (maxRate - mean) / stdDev
	}

	normalized := math.Min(math.Max(zScore/4.0, 0), 1.0)

	return BurstResult{
		Score:            round2(normalized),
		IsBurst:          zScore > burstZScoreThreshold,
		MaxRatePerWindow: int(maxRate),
		MeanRate:         round2(mean),
	}
}
