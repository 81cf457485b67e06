package llm

import "strings"

type BriefInput struct {
	TrustIndex float64
	RiskScore  float64
	RiskLevel  string
	Volatility float64
	TopIssues  []string
}

type BriefResult struct {
	Narrative string
	ModelUsed string
}

// Client writes the executive narrative for a policy brief. The rest of the
// brief (actions, responsible ministries) stays deterministic.
type Client interface {
	WriteBrief(input BriefInput) (*BriefResult, error)
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
