package brief

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGenerate_TemplateNarrative(t *testing.T) {
	g := NewGenerator(nil)

	b := g.Generate(Input{
		TrustIndex: 55.2,
		RiskScore:  42.0,
		RiskLevel:  "Moderate",
		Negativity: 0.4,
		Arousal:    0.2,
		Momentum:   0.3,
	})

	assert.Equal(t, true, strings.Contains(b.ExecutiveSummary, "Moderate"))
	assert.Equal(t, true, strings.Contains(b.ExecutiveSummary, "42.0"))
	assert.Equal(t, false, b.GeneratedAt.IsZero())
}

func TestGenerate_ActionsByRiskLevel(t *testing.T) {
	g := NewGenerator(nil)

	low := g.Generate(Input{RiskLevel: "Low"})
	assert.Equal(t, 1, len(low.RecommendedActions))
	assert.Equal(t, true, strings.HasPrefix(low.RecommendedActions[0], "Monitor:"))

	high := g.Generate(Input{RiskLevel: "High"})
	assert.Equal(t, 2, len(high.RecommendedActions))
	assert.Equal(t, true, strings.HasPrefix(high.RecommendedActions[0], "Immediate:"))

	critical := g.Generate(Input{RiskLevel: "Critical"})
	assert.Equal(t, 2, len(critical.RecommendedActions))
}

func TestGenerate_MinistryMapping(t *testing.T) {
	g := NewGenerator(nil)

	b := g.Generate(Input{
		RiskLevel: "Low",
		Issues: []Issue{
			{Label: "Issue: education, exams, schools", Keywords: []string{"education", "exams"}},
			{Label: "Issue: water, supply, pipeline", Keywords: []string{"water", "supply"}},
		},
	})

	assert.Equal(t, 2, len(b.ResponsibleMinistries))
	assert.Equal(t, true, contains(b.ResponsibleMinistries, "Ministry of Education"))
	assert.Equal(t, true, contains(b.ResponsibleMinistries, "Ministry of Jal Shakti"))
}

func TestGenerate_MinistryFallback(t *testing.T) {
	g := NewGenerator(nil)

	b := g.Generate(Input{
		RiskLevel: "Low",
		Issues:    []Issue{{Label: "Issue: cricket, match, stadium"}},
	})

	assert.Equal(t, []string{"Prime Minister's Office (General Oversight)"}, b.ResponsibleMinistries)
}

func TestGenerate_DeduplicatesMinistries(t *testing.T) {
	g := NewGenerator(nil)

	b := g.Generate(Input{
		RiskLevel: "Low",
		Issues: []Issue{
			{Label: "Issue: education, reform"},
			{Label: "Issue: education, budget"},
		},
	})

	assert.Equal(t, []string{"Ministry of Education"}, b.ResponsibleMinistries)
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
