// Package indices computes the composite discourse scores shown on the
// dashboard: trust, volatility and escalation risk. All three are weighted
// sums over per-post sentiment and emotion features, scaled to 0-100.
package indices

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"civicpulse/pkg/nlp"
)

type SentimentSample struct {
	Compound float64
	Label    string
}

// Trust combines sentiment balance (30%), organic integrity (40%) and the
// share of non-negative posts (30%) into a 0-100 score. An empty corpus
// yields the neutral midpoint.
func Trust(samples []SentimentSample, amplificationScore float64) float64 {
	if len(samples) == 0 {
		return 50.0
	}

	sum := 0.0
	nonNegative := 0
	for _, s := range samples {
		sum += s.Compound
		if s.Label != nlp.LabelNegative {
			nonNegative++
		}
	}

	avgCompound := sum / float64(len(samples))
	sentimentScore := (avgCompound + 1) / 2
	integrityScore := 1.0 - amplificationScore
	civilityScore := float64(nonNegative) / float64(len(samples))

	raw := sentimentScore*0.3 + integrityScore*0.4 + civilityScore*0.3
	return round1(raw * 100)
}

// Volatility measures how widely compound sentiment swings across the batch.
// The standard deviation of compounds in [-1, 1] maxes out at 1.0, which maps
// to a score of 100.
func Volatility(samples []SentimentSample) float64 {
	if len(samples) < 2 {
		return 0.0
	}

	compounds := make([]float64, len(samples))
	for i, s := range samples {
		compounds[i] = s.Compound
	}

	stdDev := stat.PopStdDev(compounds, nil)
	return round1(math.Min(stdDev*100, 100.0))
}

type RiskDrivers struct {
	Negativity float64
	Arousal    float64
	Momentum   float64
}

type RiskResult struct {
	Score   float64
	Level   string
	Drivers RiskDrivers
}

// EscalationRisk weighs negativity (30%), high-arousal emotion density (30%)
// and burstiness (40%). Anger and fear densities rarely sum past 0.5 in
// normal text, hence the 2x normalization before clamping.
func EscalationRisk(samples []SentimentSample, emotions map[string]float64, burstScore float64) RiskResult {
	if len(samples) == 0 {
		return RiskResult{Score: 0.0, Level: "Low"}
	}

	negative := 0
	for _, s := range samples {
		if s.Label == nlp.LabelNegative {
			negative++
		}
	}
	negRatio := float64(negative) / float64(len(samples))

	arousal := math.Min((emotions["anger"]+emotions["fear"])*2, 1.0)

	riskVal := negRatio*0.3 + arousal*0.3 + burstScore*0.4
	score := round1(riskVal * 100)

	return RiskResult{
		Score: score,
		Level: RiskLevel(score),
		Drivers: RiskDrivers{
			Negativity: round2(negRatio),
			Arousal:    round2(arousal),
			Momentum:   round2(burstScore),
		},
	}
}

func RiskLevel(score float64) string {
	switch {
	case score < 30:
		return "Low"
	case score < 60:
		return "Moderate"
	case score < 85:
		return "High"
	default:
		return "Critical"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
