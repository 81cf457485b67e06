package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"civicpulse/db"
	"civicpulse/internal/model"
	"civicpulse/internal/pipeline"
	"civicpulse/internal/repository"
	"civicpulse/pkg/alert"
	"civicpulse/pkg/social"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	dashboardRepo := repository.NewDashboardRepository(db.DB)

	pipe := pipeline.New(
		repository.NewPostRepository(db.DB),
		repository.NewAnalysisRepository(db.DB),
		dashboardRepo,
		nil,
		nil,
		social.NewTrendsClient(os.Getenv("TRENDS_REGION")),
		nil,
	)

	summary, err := pipe.Aggregate()
	if err != nil {
		log.Fatalf("error aggregating dashboard: %v", err)
	}

	threshold := getEnvFloat("ALERT_THRESHOLD", 70)
	if summary.RiskScore < threshold {
		return
	}

	cooldown := time.Duration(getEnvInt("ALERT_COOLDOWN_MINUTES", 15)) * time.Minute
	history := alert.NewHistory(cooldown)
	if last, err := dashboardRepo.GetLastAlertEvent(); err != nil {
		slog.Error("error loading last alert event", "error", err)
		return
	} else if last != nil {
		history.Seed(last.SentAt)
	}

	if !history.CanSend() {
		slog.Info("risk above threshold but alert cooldown active", "risk_score", summary.RiskScore)
		return
	}

	mailer := alert.NewMailer(
		os.Getenv("EMAIL_HOST"),
		getEnvInt("EMAIL_PORT", 587),
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_APP_PASSWORD"),
		alert.ParseRecipients(os.Getenv("EMAIL_RECIPIENTS")),
	)

	if !mailer.Configured() {
		slog.Warn("risk above threshold but email is not configured", "risk_score", summary.RiskScore)
		return
	}

	if err := mailer.SendAlert(summary.RiskScore, false); err != nil {
		slog.Error("error sending alert email", "error", err, "risk_score", summary.RiskScore)
		return
	}

	event := model.AlertEvent{RiskScore: summary.RiskScore, Manual: false}
	if err := dashboardRepo.SaveAlertEvent(&event); err != nil {
		slog.Error("error saving alert event", "error", err)
	}

	slog.Info("escalation alert sent", "risk_score", summary.RiskScore, "threshold", threshold)
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
