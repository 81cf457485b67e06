// Package pipeline wires ingestion, analysis and aggregation into the
// refresh flow: fetch posts, score them, then fold the batch into the
// dashboard indices and issue clusters.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"civicpulse/internal/model"
	"civicpulse/pkg/cluster"
	"civicpulse/pkg/indices"
	"civicpulse/pkg/integrity"
	"civicpulse/pkg/nlp"
	"civicpulse/pkg/prep"
	"civicpulse/pkg/social"
)

const (
	postsPerSubreddit  = 30
	aggregateWindow    = 500
	clusterCount       = 5
	trendDays          = 7
	maxAnalyzeAttempts = 3
)

// Keywords used for the trend series when no clusters exist yet.
var fallbackTrendKeywords = []string{"India", "Policy", "Economy"}

// PostStore is the slice of the post repository the pipeline writes through.
type PostStore interface {
	SavePost(post *model.SocialPost) (bool, error)
	GetPendingPosts(limit int) ([]model.SocialPost, error)
	GetRecentCompletedPosts(limit int) ([]model.SocialPost, error)
	UpdateStatus(id string, status string) error
	SaveError(postID string, message string, errorType string) error
	GetErrorCount(postID string) (int, error)
}

type AnalysisStore interface {
	SaveAnalysisAndComplete(analysis *model.PostAnalysis) error
	GetAnalysesByPostIDs(postIDs []string) ([]model.PostAnalysis, error)
}

type SummaryStore interface {
	SaveSummary(s *model.DashboardSummary) error
	ReplaceClusters(clusters []model.IssueCluster) error
	SaveTrendPoints(points []model.TrendPoint) error
}

type Pipeline struct {
	posts      PostStore
	analyses   AnalysisStore
	dash       SummaryStore
	sources    []social.Client
	fallback   social.Client
	trends     *social.TrendsClient
	subreddits []string
}

func New(
	posts PostStore,
	analyses AnalysisStore,
	dash SummaryStore,
	sources []social.Client,
	fallback social.Client,
	trends *social.TrendsClient,
	subreddits []string,
) *Pipeline {
	return &Pipeline{
		posts:      posts,
		analyses:   analyses,
		dash:       dash,
		sources:    sources,
		fallback:   fallback,
		trends:     trends,
		subreddits: subreddits,
	}
}

// Ingest pulls recent posts from every configured source, redacts and cleans
// them, drops near-duplicates and persists the rest. Subreddits where no live
// source produced anything fall back to the synthetic generator, so the
// pipeline keeps moving when Reddit is down or unconfigured. Returns the IDs
// of newly saved posts.
func (p *Pipeline) Ingest() ([]string, error) {
	var fetched []social.Post

	for _, sub := range p.subreddits {
		var subPosts []social.Post
		for _, source := range p.sources {
			posts, err := source.Fetch(sub, postsPerSubreddit)
			if err != nil {
				slog.Error("error fetching posts", "source", source.Name(), "subreddit", sub, "error", err)
				continue
			}
			subPosts = append(subPosts, posts...)
		}

		if len(subPosts) == 0 && p.fallback != nil {
			posts, err := p.fallback.Fetch(sub, postsPerSubreddit)
			if err != nil {
				slog.Error("error fetching fallback posts", "source", p.fallback.Name(), "subreddit", sub, "error", err)
			} else {
				slog.Warn("no live posts, using synthetic fallback", "subreddit", sub, "count", len(posts))
				subPosts = posts
			}
		}

		fetched = append(fetched, subPosts...)
	}

	for i := range fetched {
		fetched[i].Body = prep.CleanText(prep.RedactPII(fetched[i].Body))
		fetched[i].Title = prep.CleanText(fetched[i].Title)
	}
	fetched = prep.Deduplicate(fetched)

	var newIDs []string
	for _, post := range fetched {
		saved := model.SocialPost{
			ID:          post.ID,
			Source:      post.Source,
			Subreddit:   post.Subreddit,
			Title:       post.Title,
			Body:        post.Body,
			URL:         post.URL,
			Score:       post.Score,
			UpvoteRatio: post.UpvoteRatio,
			NumComments: post.NumComments,
			IsSynthetic: post.IsSynthetic,
			PostedAt:    post.PostedAt,
		}

		isNew, err := p.posts.SavePost(&saved)
		if err != nil {
			slog.Error("error saving post", "post_id", post.ID, "error", err)
			continue
		}
		if isNew {
			newIDs = append(newIDs, saved.ID)
		}
	}

	slog.Info("ingest complete", "fetched", len(fetched), "new", len(newIDs))
	return newIDs, nil
}

// AnalyzePost scores a single post and stores the result. The post is marked
// processing for the duration and reverted to pending if the result cannot be
// saved, so a later run can pick it up again.
func (p *Pipeline) AnalyzePost(post *model.SocialPost) error {
	if err := p.posts.UpdateStatus(post.ID, model.StatusProcessing); err != nil {
		return fmt.Errorf("marking post processing: %w", err)
	}

	sentiment := nlp.AnalyzeSentiment(post.Body)
	emotions := nlp.AnalyzeEmotions(post.Body)

	analysis := model.PostAnalysis{
		PostID:   post.ID,
		Compound: sentiment.Compound,
		Positive: sentiment.Positive,
		Neutral:  sentiment.Neutral,
		Negative: sentiment.Negative,
		Label:    sentiment.Label,
		Emotions: emotions,
	}

	if err := p.analyses.SaveAnalysisAndComplete(&analysis); err != nil {
		if revertErr := p.posts.UpdateStatus(post.ID, model.StatusPending); revertErr != nil {
			slog.Error("error reverting post to pending", "post_id", post.ID, "error", revertErr)
		}
		return err
	}
	return nil
}

// AnalyzePending drains the pending posts without going through the queue.
// Used by the synchronous refresh path. Posts that keep failing are recorded
// in the error ledger and marked failed after maxAnalyzeAttempts, which keeps
// the drain loop finite.
func (p *Pipeline) AnalyzePending() (int, error) {
	analyzed := 0
	for {
		pending, err := p.posts.GetPendingPosts(100)
		if err != nil {
			return analyzed, err
		}
		if len(pending) == 0 {
			return analyzed, nil
		}

		for i := range pending {
			id := pending[i].ID

			attempts, err := p.posts.GetErrorCount(id)
			if err != nil {
				return analyzed, fmt.Errorf("loading error count for %s: %w", id, err)
			}
			if attempts >= maxAnalyzeAttempts {
				slog.Warn("post exceeded max analysis attempts, marking as failed", "post_id", id, "attempts", attempts)
				if err := p.posts.UpdateStatus(id, model.StatusFailed); err != nil {
					return analyzed, fmt.Errorf("marking post %s failed: %w", id, err)
				}
				continue
			}

			if err := p.AnalyzePost(&pending[i]); err != nil {
				slog.Error("error analyzing post", "post_id", id, "error", err)
				if saveErr := p.posts.SaveError(id, err.Error(), "analysis_error"); saveErr != nil {
					return analyzed, fmt.Errorf("recording analysis error for %s: %w", id, saveErr)
				}
				continue
			}
			analyzed++
		}
	}
}

// Aggregate folds the recent analyzed window into a dashboard summary
// snapshot, replaces the issue clusters and appends a fresh trend series.
func (p *Pipeline) Aggregate() (*model.DashboardSummary, error) {
	posts, err := p.posts.GetRecentCompletedPosts(aggregateWindow)
	if err != nil {
		return nil, fmt.Errorf("loading recent posts: %w", err)
	}

	ids := make([]string, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}

	analyses, err := p.analyses.GetAnalysesByPostIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("loading analyses: %w", err)
	}

	byPost := make(map[string]*model.PostAnalysis, len(analyses))
	for i := range analyses {
		byPost[analyses[i].PostID] = &analyses[i]
	}

	var (
		samples    []indices.SentimentSample
		texts      []string
		docs       []string
		timestamps []time.Time
	)
	emotionSums := make(map[string]float64)

	for _, post := range posts {
		analysis, ok := byPost[post.ID]
		if !ok {
			continue
		}

		samples = append(samples, indices.SentimentSample{
			Compound: analysis.Compound,
			Label:    analysis.Label,
		})
		texts = append(texts, post.Body)
		docs = append(docs, post.Title+" "+post.Body)
		timestamps = append(timestamps, post.PostedAt)

		for emotion, score := range analysis.Emotions {
			emotionSums[emotion] += score
		}
	}

	emotions := make(map[string]float64, len(emotionSums))
	if len(samples) > 0 {
		for emotion, sum := range emotionSums {
			emotions[emotion] = sum / float64(len(samples))
		}
	}

	amp := integrity.DetectAmplification(texts)
	burst := integrity.DetectBursts(timestamps, time.Hour)

	issueClusters, err := cluster.ClusterIssues(docs, clusterCount)
	if err != nil {
		slog.Error("error clustering issues", "error", err)
		issueClusters = nil
	}

	risk := indices.EscalationRisk(samples, emotions, burst.Score)

	summary := &model.DashboardSummary{
		TrustIndex:         indices.Trust(samples, amp.Score),
		VolatilityIndex:    indices.Volatility(samples),
		RiskScore:          risk.Score,
		RiskLevel:          risk.Level,
		Drivers:            model.RiskDrivers(risk.Drivers),
		AmplificationScore: amp.Score,
		RepeatedMessages:   amp.RepeatedMessages,
		TotalRepeats:       amp.TotalRepeats,
		BurstScore:         burst.Score,
		IsBurst:            burst.IsBurst,
		MaxRatePerWindow:   burst.MaxRatePerWindow,
		MeanRate:           burst.MeanRate,
		TotalPosts:         len(samples),
		TotalClusters:      len(issueClusters),
	}

	if err := p.dash.SaveSummary(summary); err != nil {
		return nil, fmt.Errorf("saving summary: %w", err)
	}

	stored := make([]model.IssueCluster, 0, len(issueClusters))
	for _, c := range issueClusters {
		stored = append(stored, model.IssueCluster{
			ClusterID:    c.ClusterID,
			Label:        c.Label,
			TopKeywords:  c.TopKeywords,
			Size:         c.Size,
			AvgSentiment: avgSentiment(c.Members, samples),
			Trend:        "stable",
		})
	}

	if err := p.dash.ReplaceClusters(stored); err != nil {
		return nil, fmt.Errorf("saving clusters: %w", err)
	}

	if err := p.saveTrends(issueClusters); err != nil {
		slog.Error("error saving trends", "error", err)
	}

	slog.Info("aggregate complete",
		"posts", summary.TotalPosts,
		"clusters", summary.TotalClusters,
		"trust", summary.TrustIndex,
		"risk", summary.RiskScore,
		"risk_level", summary.RiskLevel,
	)

	return summary, nil
}

// Refresh runs the full pipeline synchronously and returns the snapshot time.
func (p *Pipeline) Refresh() (time.Time, error) {
	if _, err := p.Ingest(); err != nil {
		return time.Time{}, err
	}

	if _, err := p.AnalyzePending(); err != nil {
		return time.Time{}, err
	}

	summary, err := p.Aggregate()
	if err != nil {
		return time.Time{}, err
	}

	return summary.CreatedAt, nil
}

func (p *Pipeline) saveTrends(issueClusters []cluster.Cluster) error {
	keywords := fallbackTrendKeywords
	if len(issueClusters) > 0 {
		keywords = nil
		for i, c := range issueClusters {
			if i == 3 {
				break
			}
			if len(c.TopKeywords) > 0 {
				keywords = append(keywords, c.TopKeywords[0])
			}
		}
		if len(keywords) == 0 {
			keywords = fallbackTrendKeywords
		}
	}

	series := p.trends.InterestOverTime(keywords, trendDays)

	points := make([]model.TrendPoint, len(series))
	for i, pt := range series {
		points[i] = model.TrendPoint{
			Keyword:       pt.Keyword,
			Timestamp:     pt.Timestamp,
			InterestValue: pt.Interest,
			Region:        pt.Region,
		}
	}

	return p.dash.SaveTrendPoints(points)
}

func avgSentiment(members []int, samples []indices.SentimentSample) float64 {
	if len(members) == 0 {
		return 0
	}

	sum := 0.0
	for _, idx := range members {
		if idx >= 0 && idx < len(samples) {
			sum += samples[idx].Compound
		}
	}
	return sum / float64(len(members))
}
