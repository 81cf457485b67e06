package llm

import (
	"fmt"
	"strings"
)

const briefSystemPrompt = `You are a policy analyst writing for government decision makers. Given current public discourse metrics, write a short executive summary.

Rules:
- Two to three sentences, neutral and factual
- Reference the risk level and trust index explicitly
- Mention the dominant issues by name
- No speculation beyond the provided metrics, no alarmism

Output as JSON only, no other text:
{
  "narrative": "executive summary text"
}`

func formatBriefInput(input BriefInput) string {
	issues := "none identified"
	if len(input.TopIssues) > 0 {
		issues = strings.Join(input.TopIssues, "; ")
	}

	return fmt.Sprintf(
		"Trust Index: %.1f/100\nEscalation Risk: %.1f (%s)\nVolatility: %.1f/100\nTop Issues: %s",
		input.TrustIndex, input.RiskScore, input.RiskLevel, input.Volatility, issues,
	)
}
