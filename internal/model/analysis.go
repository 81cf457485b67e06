package model

import "time"

type PostAnalysis struct {
	ID         string
	PostID     string
	Compound   float64
	Positive   float64
	Neutral    float64
	Negative   float64
	Label      string
	Emotions   map[string]float64
	AnalyzedAt time.Time
}

// DailySentiment is a per-day aggregate of compound sentiment, used by the
// forecasting endpoints.
type DailySentiment struct {
	Date        time.Time
	AvgCompound float64
	PostCount   int
}

// RiskPoint is a historical escalation risk sample from stored summaries.
type RiskPoint struct {
	CreatedAt time.Time
	Score     float64
}
