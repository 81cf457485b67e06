package model

import "time"

type RiskDrivers struct {
	Negativity float64
	Arousal    float64
	Momentum   float64
}

type DashboardSummary struct {
	ID                 string
	TrustIndex         float64
	VolatilityIndex    float64
	RiskScore          float64
	RiskLevel          string
	Drivers            RiskDrivers
	AmplificationScore float64
	RepeatedMessages   int
	TotalRepeats       int
	BurstScore         float64
	IsBurst            bool
	MaxRatePerWindow   int
	MeanRate           float64
	TotalPosts         int
	TotalClusters      int
	CreatedAt          time.Time
}

type IssueCluster struct {
	ID           string
	ClusterID    int
	Label        string
	TopKeywords  []string
	Size         int
	AvgSentiment float64
	Trend        string
	CreatedAt    time.Time
}

type TrendPoint struct {
	ID            string
	Keyword       string
	Timestamp     time.Time
	InterestValue int
	Region        string
}
