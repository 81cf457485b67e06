package handler

type RiskDriversResponse struct {
	Negativity float64 `json:"negativity"`
	Arousal    float64 `json:"arousal"`
	Momentum   float64 `json:"momentum"`
}

type EscalationRiskResponse struct {
	Score   float64             `json:"score"`
	Level   string              `json:"level"`
	Drivers RiskDriversResponse `json:"drivers"`
}

type AmplificationResponse struct {
	Score            float64 `json:"score"`
	RepeatedMessages int     `json:"repeated_messages"`
	TotalRepeats     int     `json:"total_repeats"`
}

type CoordinationResponse struct {
	BurstScore       float64 `json:"burst_score"`
	IsBurst          bool    `json:"is_burst"`
	MaxRatePerWindow int     `json:"max_rate_per_window"`
	MeanRate         float64 `json:"mean_rate"`
}

type IntegrityMetricsResponse struct {
	Amplification AmplificationResponse `json:"amplification"`
	Coordination  CoordinationResponse  `json:"coordination"`
}

type SummaryResponse struct {
	TrustIndex       float64                  `json:"trust_index"`
	VolatilityIndex  float64                  `json:"volatility_index"`
	EscalationRisk   EscalationRiskResponse   `json:"escalation_risk"`
	IntegrityMetrics IntegrityMetricsResponse `json:"integrity_metrics"`
	TotalPosts       int                      `json:"total_posts"`
	TotalClusters    int                      `json:"total_clusters"`
	UpdatedAt        string                   `json:"updated_at"`
}

type IssueResponse struct {
	ClusterID    int      `json:"cluster_id"`
	Label        string   `json:"label"`
	TopKeywords  []string `json:"top_keywords"`
	Size         int      `json:"size"`
	AvgSentiment float64  `json:"avg_sentiment"`
	Trend        string   `json:"trend"`
}

type TrendPointResponse struct {
	Timestamp string `json:"timestamp"`
	Value     int    `json:"value"`
	Region    string `json:"region"`
}

type TrendsResponse struct {
	Keywords map[string][]TrendPointResponse `json:"keywords"`
	Days     int                             `json:"days"`
}

type DailySentimentResponse struct {
	Date        string  `json:"date"`
	AvgCompound float64 `json:"avg_compound"`
	PostCount   int     `json:"post_count"`
}

type SentimentHistoryResponse struct {
	Daily []DailySentimentResponse `json:"daily"`
	Days  int                      `json:"days"`
}

type BriefResponse struct {
	ExecutiveSummary      string   `json:"executive_summary"`
	RecommendedActions    []string `json:"recommended_actions"`
	ResponsibleMinistries []string `json:"responsible_ministries"`
	GeneratedAt           string   `json:"generated_at"`
}

type SentimentForecastResponse struct {
	Dates     []string  `json:"dates"`
	Predicted []float64 `json:"predicted"`
	Upper     []float64 `json:"upper_bound"`
	Lower     []float64 `json:"lower_bound"`
	Direction string    `json:"direction"`
	Method    string    `json:"method"`
	Note      string    `json:"note,omitempty"`
}

type RiskForecastResponse struct {
	PredictedRisk string  `json:"predicted_risk"`
	RiskScore     float64 `json:"risk_score"`
	Trend         string  `json:"trend"`
	Confidence    string  `json:"confidence"`
	Note          string  `json:"note,omitempty"`
}

type AlertStatusResponse struct {
	RiskScore        float64 `json:"risk_score"`
	RiskLevel        string  `json:"risk_level"`
	Status           string  `json:"status"`
	CanSend          bool    `json:"can_send"`
	LastAlertAt      string  `json:"last_alert_at,omitempty"`
	SecondsUntilNext int     `json:"seconds_until_next"`
}

type AlertConfigResponse struct {
	Threshold       float64  `json:"threshold"`
	CooldownMinutes int      `json:"cooldown_minutes"`
	EmailConfigured bool     `json:"email_configured"`
	Recipients      []string `json:"recipients"`
}
