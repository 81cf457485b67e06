package nlp

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Compound thresholds follow the standard VADER convention.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

type SentimentResult struct {
	Compound float64
	Positive float64
	Neutral  float64
	Negative float64
	Label    string
}

func AnalyzeSentiment(text string) SentimentResult {
	if strings.TrimSpace(text) == "" {
		return SentimentResult{Label: LabelNeutral}
	}

	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed)

	return SentimentResult{
		Compound: score.Compound,
		Positive: score.Positive,
		Neutral:  score.Neutral,
		Negative: score.Negative,
		Label:    labelFor(score.Compound),
	}
}

func labelFor(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return LabelPositive
	case compound <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
