// Package brief turns the latest dashboard state into a policy brief:
// an executive summary, recommended actions and the institutions likely
// responsible for the dominant issues.
package brief

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"civicpulse/pkg/llm"
)

type Issue struct {
	Label    string
	Keywords []string
}

type Input struct {
	TrustIndex float64
	Volatility float64
	RiskScore  float64
	RiskLevel  string
	Negativity float64
	Arousal    float64
	Momentum   float64
	Issues     []Issue
}

type Brief struct {
	ExecutiveSummary      string
	RecommendedActions    []string
	ResponsibleMinistries []string
	GeneratedAt           time.Time
}

// Issue keyword to ministry mapping used for the responsibility section.
var responsibilityMap = map[string]string{
	"infrastructure": "Ministry of Road Transport and Highways",
	"education":      "Ministry of Education",
	"environment":    "Ministry of Environment, Forest and Climate Change",
	"payment":        "Ministry of Finance / RBI",
	"digital":        "MeitY",
	"health":         "Ministry of Health and Family Welfare",
	"water":          "Ministry of Jal Shakti",
}

type Generator struct {
	writer llm.Client
}

// NewGenerator builds a brief generator. writer may be nil, in which case the
// executive summary falls back to the deterministic template.
func NewGenerator(writer llm.Client) *Generator {
	return &Generator{writer: writer}
}

func (g *Generator) Generate(input Input) Brief {
	return Brief{
		ExecutiveSummary:      g.executiveSummary(input),
		RecommendedActions:    recommendedActions(input.RiskLevel),
		ResponsibleMinistries: responsibleMinistries(input.Issues),
		GeneratedAt:           time.Now(),
	}
}

func (g *Generator) executiveSummary(input Input) string {
	if g.writer != nil {
		issues := make([]string, 0, len(input.Issues))
		for _, issue := range input.Issues {
			issues = append(issues, issue.Label)
		}

		result, err := g.writer.WriteBrief(llm.BriefInput{
			TrustIndex: input.TrustIndex,
			RiskScore:  input.RiskScore,
			RiskLevel:  input.RiskLevel,
			Volatility: input.Volatility,
			TopIssues:  issues,
		})
		if err == nil && result.Narrative != "" {
			return result.Narrative
		}
		if err != nil {
			slog.Warn("LLM brief narrative failed, using template", "error", err)
		}
	}

	return fmt.Sprintf(
		"National discourse risk is currently %s (Score: %.1f). Trust Index is %.1f. Primary drivers are negativity %.2f, arousal %.2f, momentum %.2f.",
		input.RiskLevel, input.RiskScore, input.TrustIndex,
		input.Negativity, input.Arousal, input.Momentum,
	)
}

func recommendedActions(riskLevel string) []string {
	if riskLevel == "High" || riskLevel == "Critical" {
		return []string{
			"Immediate: Deploy strategic comms to address rising volatility.",
			"Immediate: Verify coordinated amplification vectors.",
		}
	}
	return []string{"Monitor: Maintain surveillance on emerging issues."}
}

func responsibleMinistries(issues []Issue) []string {
	seen := make(map[string]struct{})
	var ministries []string

	for _, issue := range issues {
		text := strings.ToLower(issue.Label + " " + strings.Join(issue.Keywords, " "))
		for key, ministry := range responsibilityMap {
			if strings.Contains(text, key) {
				if _, ok := seen[ministry]; !ok {
					seen[ministry] = struct{}{}
					ministries = append(ministries, ministry)
				}
			}
		}
	}

	if len(ministries) == 0 {
		ministries = append(ministries, "Prime Minister's Office (General Oversight)")
	}
	return ministries
}
