// Package forecast projects sentiment and escalation risk a few days ahead
// from stored daily aggregates.
package forecast

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	// Minimum days of history before a real forecast is attempted.
	minHistoryDays = 7

	// Direction changes smaller than this count as stable.
	directionThreshold = 0.05
)

type DailyPoint struct {
	Date  time.Time
	Value float64
}

type SentimentForecast struct {
	Dates     []time.Time
	Predicted []float64
	Upper     []float64
	Lower     []float64
	Direction string
	Method    string
	Note      string
}

// Sentiment fits a least-squares line through daily average compound
// sentiment and projects it daysAhead days forward, with a 1.96 sigma
// confidence band from the historical spread.
func Sentiment(history []DailyPoint, daysAhead int) SentimentForecast {
	if len(history) < minHistoryDays {
		return defaultSentimentForecast(daysAhead)
	}

	origin := history[0].Date
	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, p := range history {
		xs[i] = p.Date.Sub(origin).Hours() / 24
		ys[i] = p.Value
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	sigma := stat.PopStdDev(ys, nil)

	last := history[len(history)-1].Date
	lastX := last.Sub(origin).Hours() / 24

	f := SentimentForecast{
		Dates:     make([]time.Time, daysAhead),
		Predicted: make([]float64, daysAhead),
		Upper:     make([]float64, daysAhead),
		Lower:     make([]float64, daysAhead),
		Method:    "linear_regression",
	}

	for i := 0; i < daysAhead; i++ {
		x := lastX + float64(i+1)
		predicted := alpha + beta*x
		f.Dates[i] = last.AddDate(0, 0, i+1)
		f.Predicted[i] = predicted
		f.Upper[i] = predicted + 1.96*sigma
		f.Lower[i] = predicted - 1.96*sigma
	}

	f.Direction = direction(f.Predicted[0], f.Predicted[daysAhead-1])
	return f
}

func direction(start, end float64) string {
	change := end - start
	switch {
	case change > directionThreshold:
		return "improving"
	case change < -directionThreshold:
		return "declining"
	default:
		return "stable"
	}
}

func defaultSentimentForecast(daysAhead int) SentimentForecast {
	f := SentimentForecast{
		Dates:     make([]time.Time, daysAhead),
		Predicted: make([]float64, daysAhead),
		Upper:     make([]float64, daysAhead),
		Lower:     make([]float64, daysAhead),
		Direction: "stable",
		Method:    "default",
		Note:      "Insufficient historical data for accurate forecasting",
	}

	now := time.Now()
	for i := 0; i < daysAhead; i++ {
		f.Dates[i] = now.AddDate(0, 0, i+1)
		f.Upper[i] = 0.2
		f.Lower[i] = -0.2
	}
	return f
}

type RiskForecast struct {
	PredictedRisk string
	RiskScore     float64
	Trend         string
	Confidence    string
	Note          string
}

// Risk projects the escalation risk score (0-100) by extending the dampened
// difference between the recent week and the older window.
func Risk(history []DailyPoint) RiskForecast {
	if len(history) < minHistoryDays {
		return RiskForecast{
			PredictedRisk: "medium",
			RiskScore:     50.0,
			Trend:         "stable",
			Confidence:    "low",
			Note:          "Insufficient historical data",
		}
	}

	scores := make([]float64, len(history))
	for i, p := range history {
		scores[i] = p.Value
	}

	recent := scores[len(scores)-minHistoryDays:]
	recentAvg := stat.Mean(recent, nil)

	olderAvg := recentAvg
	if len(scores) > minHistoryDays {
		older := scores[:len(scores)-minHistoryDays]
		olderAvg = stat.Mean(older, nil)
	}

	trendDelta := recentAvg - olderAvg
	predicted := math.Max(0, math.Min(100, recentAvg+trendDelta*0.5))

	level := "low"
	if predicted >= 70 {
		level = "high"
	} else if predicted >= 40 {
		level = "medium"
	}

	trend := "stable"
	if trendDelta > 5 {
		trend = "increasing"
	} else if trendDelta < -5 {
		trend = "decreasing"
	}

	confidence := "low"
	if len(history) >= 14 {
		confidence = "medium"
	}

	return RiskForecast{
		PredictedRisk: level,
		RiskScore:     predicted,
		Trend:         trend,
		Confidence:    confidence,
	}
}
