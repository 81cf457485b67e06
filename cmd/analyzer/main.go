package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"civicpulse/db"
	"civicpulse/internal/model"
	"civicpulse/internal/pipeline"
	"civicpulse/internal/repository"
	"civicpulse/pkg/social"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const maxRetries = 3

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	postRepo := repository.NewPostRepository(db.DB)
	analysisRepo := repository.NewAnalysisRepository(db.DB)

	pipe := pipeline.New(
		postRepo,
		analysisRepo,
		repository.NewDashboardRepository(db.DB),
		nil,
		nil,
		social.NewTrendsClient(os.Getenv("TRENDS_REGION")),
		nil,
	)

	for {
		id, err := db.PopFromQueue(db.AnalyzeQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		errorCount, err := postRepo.GetErrorCount(id)
		if err != nil {
			slog.Error("error getting error count", "error", err, "post_id", id)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("post exceeded max retries, marking as failed", "post_id", id, "error_count", errorCount)
			postRepo.UpdateStatus(id, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		post, err := postRepo.GetPostByID(id)
		if err != nil {
			slog.Error("error getting post from DB", "error", err, "post_id", id)
			continue
		}

		if post == nil {
			slog.Warn("post not found in DB", "post_id", id)
			continue
		}

		if err := pipe.AnalyzePost(post); err != nil {
			slog.Error("error analyzing post", "error", err, "post_id", id)

			postRepo.SaveError(id, err.Error(), "analysis_error")

			db.PushToQueue(db.AnalyzeQueueKey, id)

			time.Sleep(5 * time.Second)
			continue
		}

		slog.Info("post analyzed successfully", "post_id", id)
	}
}
