package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"civicpulse/db"
	"civicpulse/internal/handler"
	"civicpulse/internal/pipeline"
	"civicpulse/internal/repository"
	"civicpulse/pkg/alert"
	"civicpulse/pkg/brief"
	"civicpulse/pkg/llm"
	"civicpulse/pkg/social"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	postRepo := repository.NewPostRepository(db.DB)
	analysisRepo := repository.NewAnalysisRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)

	sources, fallback := buildSources()

	pipe := pipeline.New(
		postRepo,
		analysisRepo,
		dashboardRepo,
		sources,
		fallback,
		social.NewTrendsClient(os.Getenv("TRENDS_REGION")),
		targetSubreddits(),
	)

	briefs := brief.NewGenerator(buildBriefWriter())
	dashboardHandler := handler.NewDashboardHandler(newDashboardStore(dashboardRepo, analysisRepo, postRepo), pipe, briefs)

	threshold := getEnvFloat("ALERT_THRESHOLD", 70)
	cooldown := time.Duration(getEnvInt("ALERT_COOLDOWN_MINUTES", 15)) * time.Minute

	history := alert.NewHistory(cooldown)
	if last, err := dashboardRepo.GetLastAlertEvent(); err != nil {
		slog.Error("error loading last alert event", "error", err)
	} else if last != nil {
		history.Seed(last.SentAt)
	}

	mailer := alert.NewMailer(
		os.Getenv("EMAIL_HOST"),
		getEnvInt("EMAIL_PORT", 587),
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_APP_PASSWORD"),
		alert.ParseRecipients(os.Getenv("EMAIL_RECIPIENTS")),
	)

	alertHandler := handler.NewAlertHandler(dashboardRepo, history, mailer, threshold)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	v1 := r.Group("/api/v1")
	{
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetSummary)
			dashboard.GET("/issues", dashboardHandler.GetIssues)
			dashboard.GET("/trends", dashboardHandler.GetTrends)
			dashboard.GET("/sentiment/history", dashboardHandler.GetSentimentHistory)
			dashboard.GET("/brief", dashboardHandler.GetBrief)
			dashboard.GET("/predictions/sentiment", dashboardHandler.GetSentimentForecast)
			dashboard.GET("/predictions/risk", dashboardHandler.GetRiskForecast)
			dashboard.POST("/refresh", dashboardHandler.Refresh)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("/status", alertHandler.GetStatus)
			alerts.GET("/config", alertHandler.GetConfig)
			alerts.POST("/send-manual", alertHandler.SendAlert)
			alerts.POST("/test-email", alertHandler.SendTest)
		}
	}

	r.GET("/health", dashboardHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// dashboardStore combines the three repositories behind the read interface
// the dashboard handler needs.
type dashboardStore struct {
	*repository.DashboardRepository
	*repository.AnalysisRepository
	*repository.PostRepository
}

func newDashboardStore(d *repository.DashboardRepository, a *repository.AnalysisRepository, p *repository.PostRepository) *dashboardStore {
	return &dashboardStore{d, a, p}
}

// buildSources returns the live discourse sources plus the synthetic
// generator used when a live fetch fails or comes back empty. The fallback is
// on by default; SYNTHETIC_FALLBACK=false disables it.
func buildSources() ([]social.Client, social.Client) {
	var sources []social.Client

	if os.Getenv("REDDIT_ENABLED") != "false" {
		sources = append(sources, social.NewRedditClient(os.Getenv("REDDIT_USER_AGENT")))
	}

	var fallback social.Client
	if os.Getenv("SYNTHETIC_FALLBACK") != "false" {
		fallback = social.NewSyntheticClient()
	}

	return sources, fallback
}

func targetSubreddits() []string {
	raw := os.Getenv("TARGET_SUBREDDITS")
	if raw == "" {
		raw = "india,IndiaSpeaks,indianews"
	}

	var subs []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			subs = append(subs, s)
		}
	}
	return subs
}

func buildBriefWriter() llm.Client {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIClient(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}

	slog.Warn("no LLM API key configured, briefs will use the template narrative")
	return nil
}

func getEnvInt(name string, defaultValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "name", name, "value", raw, "error", err)
		return defaultValue
	}
	return parsed
}

func getEnvFloat(name string, defaultValue float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "name", name, "value", raw, "error", err)
		return defaultValue
	}
	return parsed
}
