package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"civicpulse/internal/model"
	"civicpulse/pkg/brief"
	"civicpulse/pkg/forecast"
)

type DashboardStore interface {
	GetLatestSummary() (*model.DashboardSummary, error)
	GetLatestClusters() ([]model.IssueCluster, error)
	GetRecentTrends(days int) ([]model.TrendPoint, error)
	GetDailySentiment(days int) ([]model.DailySentiment, error)
	GetRiskHistory(days int) ([]model.RiskPoint, error)
	CountPosts() (int, error)
}

type Refresher interface {
	Refresh() (time.Time, error)
}

type DashboardHandler struct {
	repository DashboardStore
	refresher  Refresher
	briefs     *brief.Generator
}

func NewDashboardHandler(repository DashboardStore, refresher Refresher, briefs *brief.Generator) *DashboardHandler {
	return &DashboardHandler{
		repository: repository,
		refresher:  refresher,
		briefs:     briefs,
	}
}

func toSummaryResponse(s model.DashboardSummary) SummaryResponse {
	return SummaryResponse{
		TrustIndex:      s.TrustIndex,
		VolatilityIndex: s.VolatilityIndex,
		EscalationRisk: EscalationRiskResponse{
			Score: s.RiskScore,
			Level: s.RiskLevel,
			Drivers: RiskDriversResponse{
				Negativity: s.Drivers.Negativity,
				Arousal:    s.Drivers.Arousal,
				Momentum:   s.Drivers.Momentum,
			},
		},
		IntegrityMetrics: IntegrityMetricsResponse{
			Amplification: AmplificationResponse{
				Score:            s.AmplificationScore,
				RepeatedMessages: s.RepeatedMessages,
				TotalRepeats:     s.TotalRepeats,
			},
			Coordination: CoordinationResponse{
				BurstScore:       s.BurstScore,
				IsBurst:          s.IsBurst,
				MaxRatePerWindow: s.MaxRatePerWindow,
				MeanRate:         s.MeanRate,
			},
		},
		TotalPosts:    s.TotalPosts,
		TotalClusters: s.TotalClusters,
		UpdatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.repository.GetLatestSummary()
	if err != nil {
		slog.Error("error fetching summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if summary == nil {
		c.JSON(http.StatusOK, defaultSummaryResponse())
		return
	}

	c.JSON(http.StatusOK, toSummaryResponse(*summary))
}

// Neutral baseline shown before the first aggregation run.
func defaultSummaryResponse() SummaryResponse {
	return SummaryResponse{
		TrustIndex: 50.0,
		EscalationRisk: EscalationRiskResponse{
			Level: "Low",
		},
		UpdatedAt: time.Now().Format(time.RFC3339),
	}
}

func (h *DashboardHandler) GetIssues(c *gin.Context) {
	clusters, err := h.repository.GetLatestClusters()
	if err != nil {
		slog.Error("error fetching issue clusters", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]IssueResponse, len(clusters))
	for i, cl := range clusters {
		res[i] = IssueResponse{
			ClusterID:    cl.ClusterID,
			Label:        cl.Label,
			TopKeywords:  cl.TopKeywords,
			Size:         cl.Size,
			AvgSentiment: cl.AvgSentiment,
			Trend:        cl.Trend,
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *DashboardHandler) GetTrends(c *gin.Context) {
	days := getQueryDays(c, 7)

	points, err := h.repository.GetRecentTrends(days)
	if err != nil {
		slog.Error("error fetching trends", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	keywords := make(map[string][]TrendPointResponse)
	for _, p := range points {
		keywords[p.Keyword] = append(keywords[p.Keyword], TrendPointResponse{
			Timestamp: p.Timestamp.Format(time.RFC3339),
			Value:     p.InterestValue,
			Region:    p.Region,
		})
	}

	c.JSON(http.StatusOK, TrendsResponse{Keywords: keywords, Days: days})
}

func (h *DashboardHandler) GetSentimentHistory(c *gin.Context) {
	days := getQueryDays(c, 30)

	daily, err := h.repository.GetDailySentiment(days)
	if err != nil {
		slog.Error("error fetching sentiment history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := SentimentHistoryResponse{
		Daily: make([]DailySentimentResponse, len(daily)),
		Days:  days,
	}
	for i, d := range daily {
		res.Daily[i] = DailySentimentResponse{
			Date:        d.Date.Format("2006-01-02"),
			AvgCompound: d.AvgCompound,
			PostCount:   d.PostCount,
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *DashboardHandler) Refresh(c *gin.Context) {
	refreshedAt, err := h.refresher.Refresh()
	if err != nil {
		slog.Error("error refreshing dashboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"refreshed_at": refreshedAt.Format(time.RFC3339),
	})
}

func (h *DashboardHandler) GetBrief(c *gin.Context) {
	summary, err := h.repository.GetLatestSummary()
	if err != nil {
		slog.Error("error fetching summary for brief", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No summary available. Trigger a refresh first."})
		return
	}

	clusters, err := h.repository.GetLatestClusters()
	if err != nil {
		slog.Error("error fetching clusters for brief", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	issues := make([]brief.Issue, len(clusters))
	for i, cl := range clusters {
		issues[i] = brief.Issue{Label: cl.Label, Keywords: cl.TopKeywords}
	}

	b := h.briefs.Generate(brief.Input{
		TrustIndex: summary.TrustIndex,
		Volatility: summary.VolatilityIndex,
		RiskScore:  summary.RiskScore,
		RiskLevel:  summary.RiskLevel,
		Negativity: summary.Drivers.Negativity,
		Arousal:    summary.Drivers.Arousal,
		Momentum:   summary.Drivers.Momentum,
		Issues:     issues,
	})

	c.JSON(http.StatusOK, BriefResponse{
		ExecutiveSummary:      b.ExecutiveSummary,
		RecommendedActions:    b.RecommendedActions,
		ResponsibleMinistries: b.ResponsibleMinistries,
		GeneratedAt:           b.GeneratedAt.Format(time.RFC3339),
	})
}

func (h *DashboardHandler) GetSentimentForecast(c *gin.Context) {
	daysAhead := getQueryInt("days_ahead", 7, c)
	if daysAhead < 1 || daysAhead > 14 {
		daysAhead = 7
	}

	daily, err := h.repository.GetDailySentiment(30)
	if err != nil {
		slog.Error("error fetching sentiment history for forecast", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	history := make([]forecast.DailyPoint, len(daily))
	for i, d := range daily {
		history[i] = forecast.DailyPoint{Date: d.Date, Value: d.AvgCompound}
	}

	f := forecast.Sentiment(history, daysAhead)

	dates := make([]string, len(f.Dates))
	for i, d := range f.Dates {
		dates[i] = d.Format("2006-01-02")
	}

	c.JSON(http.StatusOK, SentimentForecastResponse{
		Dates:     dates,
		Predicted: f.Predicted,
		Upper:     f.Upper,
		Lower:     f.Lower,
		Direction: f.Direction,
		Method:    f.Method,
		Note:      f.Note,
	})
}

func (h *DashboardHandler) GetRiskForecast(c *gin.Context) {
	riskPoints, err := h.repository.GetRiskHistory(30)
	if err != nil {
		slog.Error("error fetching risk history for forecast", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	history := make([]forecast.DailyPoint, len(riskPoints))
	for i, p := range riskPoints {
		history[i] = forecast.DailyPoint{Date: p.CreatedAt, Value: p.Score}
	}

	f := forecast.Risk(history)

	c.JSON(http.StatusOK, RiskForecastResponse{
		PredictedRisk: f.PredictedRisk,
		RiskScore:     f.RiskScore,
		Trend:         f.Trend,
		Confidence:    f.Confidence,
		Note:          f.Note,
	})
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.CountPosts()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
