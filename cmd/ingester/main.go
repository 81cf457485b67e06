package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"civicpulse/db"
	"civicpulse/internal/pipeline"
	"civicpulse/internal/repository"
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

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	sources, fallback := buildSources()
	if len(sources) == 0 && fallback == nil {
		slog.Error("no discourse sources configured")
		return
	}

	pipe := pipeline.New(
		repository.NewPostRepository(db.DB),
		repository.NewAnalysisRepository(db.DB),
		repository.NewDashboardRepository(db.DB),
		sources,
		fallback,
		social.NewTrendsClient(os.Getenv("TRENDS_REGION")),
		targetSubreddits(),
	)

	newIDs, err := pipe.Ingest()
	if err != nil {
		log.Fatalf("error ingesting posts: %v", err)
	}

	var queued, errors int
	for _, id := range newIDs {
		if err := db.PushToQueue(db.AnalyzeQueueKey, id); err != nil {
			slog.Error("error pushing to Redis queue", "error", err, "post_id", id)
			errors++
			continue
		}
		queued++
	}

	depth, err := db.GetQueueLength(db.AnalyzeQueueKey)
	if err != nil {
		slog.Error("error reading queue length", "error", err)
		depth = -1
	}

	slog.Info("ingest run complete", "new", len(newIDs), "queued", queued, "errors", errors, "queue_depth", depth)
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
