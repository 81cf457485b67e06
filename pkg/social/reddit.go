package social

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type RedditClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewRedditClient(userAgent string) *RedditClient {
	if userAgent == "" {
		userAgent = "civicpulse:discourse-monitor:v1.0"
	}
	return &RedditClient{
		baseURL:    "https://www.reddit.com",
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *RedditClient) Name() string {
	return "reddit"
}

func (c *RedditClient) Fetch(subreddit string, limit int) ([]Post, error) {
	url := fmt.Sprintf("%s/r/%s/new.json?limit=%d", c.baseURL, subreddit, limit)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("reddit request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit fetch: unexpected status %d", resp.StatusCode)
	}

	var raw redditListing
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reddit decode: %w", err)
	}

	posts := make([]Post, 0, len(raw.Data.Children))
	for _, child := range raw.Data.Children {
		item := child.Data
		if item.Stickied {
			continue
		}

		posts = append(posts, Post{
			ID:          item.ID,
			Source:      c.Name(),
			Subreddit:   item.Subreddit,
			Title:       item.Title,
			Body:        item.Selftext,
			URL:         item.URL,
			Score:       item.Score,
			UpvoteRatio: item.UpvoteRatio,
			NumComments: item.NumComments,
			PostedAt:    time.Unix(int64(item.CreatedUTC), 0),
		})
	}

	return posts, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID          string  `json:"id"`
	Subreddit   string  `json:"subreddit"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Stickied    bool    `json:"stickied"`
}
