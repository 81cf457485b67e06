package social

import (
	"fmt"
	"math/rand"
	"time"
)

var syntheticTopics = []string{
	"Infrastructure development in Tier 2 cities",
	"New policy on digital payments",
	"Environmental concerns in the Himalayas",
	"Educational reform and NEP implementation",
	"Startups ecosystem growth",
	"Public transport challenges",
	"Traffic regulations in metro cities",
	"Water conservation initiatives",
}

// SyntheticClient generates plausible discourse posts so the pipeline keeps
// producing data when no live source is reachable.
type SyntheticClient struct {
	rng *rand.Rand
}

func NewSyntheticClient() *SyntheticClient {
	return &SyntheticClient{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (c *SyntheticClient) Name() string {
	return "reddit_mock"
}

func (c *SyntheticClient) Fetch(subreddit string, limit int) ([]Post, error) {
	posts := make([]Post, 0, limit)
	now := time.Now()

	for i := 0; i < limit; i++ {
		topic := syntheticTopics[c.rng.Intn(len(syntheticTopics))]
		posts = append(posts, Post{
			ID:          fmt.Sprintf("synth_%s_%d_%d", subreddit, now.Unix(), i),
			Source:      c.Name(),
			Subreddit:   subreddit,
			Title:       fmt.Sprintf("Update on %s", topic),
			Body:        fmt.Sprintf("Discussion regarding %s and its impact on the general public. What are your thoughts?", topic),
			URL:         fmt.Sprintf("http://mock.reddit.com/%s/%d", subreddit, i),
			Score:       5 + c.rng.Intn(496),
			UpvoteRatio: 0.6 + c.rng.Float64()*0.39,
			NumComments: c.rng.Intn(101),
			PostedAt:    now.Add(-time.Duration(c.rng.Intn(72)) * time.Hour),
			IsSynthetic: true,
		})
	}

	return posts, nil
}
