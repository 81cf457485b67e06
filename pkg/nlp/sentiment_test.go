package nlp

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAnalyzeSentiment_Positive(t *testing.T) {
	result := AnalyzeSentiment("This is great, wonderful progress and excellent news")

	assert.Equal(t, LabelPositive, result.Label)
	assert.Equal(t, true, result.Compound >= 0.05)
}

func TestAnalyzeSentiment_Negative(t *testing.T) {
	result := AnalyzeSentiment("This is terrible, horrible and a complete disaster")

	assert.Equal(t, LabelNegative, result.Label)
	assert.Equal(t, true, result.Compound <= -0.05)
}

func TestAnalyzeSentiment_Neutral(t *testing.T) {
	result := AnalyzeSentiment("The committee meets on Tuesday at noon")

	assert.Equal(t, LabelNeutral, result.Label)
}

func TestAnalyzeSentiment_EmptyText(t *testing.T) {
	result := AnalyzeSentiment("   ")

	assert.Equal(t, LabelNeutral, result.Label)
	assert.Equal(t, 0.0, result.Compound)
	assert.Equal(t, 0.0, result.Positive)
	assert.Equal(t, 0.0, result.Negative)
}

func TestLabelFor_Boundaries(t *testing.T) {
	assert.Equal(t, LabelPositive, labelFor(0.05))
	assert.Equal(t, LabelNegative, labelFor(-0.05))
	assert.Equal(t, LabelNeutral, labelFor(0.04))
	assert.Equal(t, LabelNeutral, labelFor(-0.04))
	assert.Equal(t, LabelNeutral, labelFor(0))
}
