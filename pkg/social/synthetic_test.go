package social

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSyntheticFetch_GeneratesRequestedCount(t *testing.T) {
	client := NewSyntheticClient()

	posts, err := client.Fetch("india", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 10, len(posts))

	seen := make(map[string]struct{})
	for _, p := range posts {
		assert.Equal(t, "reddit_mock", p.Source)
		assert.Equal(t, "india", p.Subreddit)
		assert.Equal(t, true, p.IsSynthetic)
		assert.NotEqual(t, "", p.Title)
		assert.NotEqual(t, "", p.Body)
		assert.Equal(t, true, p.UpvoteRatio >= 0.6 && p.UpvoteRatio <= 1.0)

		_, dup := seen[p.ID]
		assert.Equal(t, false, dup)
		seen[p.ID] = struct{}{}
	}
}

func TestTrendsInterestOverTime_SeriesShape(t *testing.T) {
	client := NewTrendsClient("")

	points := client.InterestOverTime([]string{"metro", "education"}, 7)

	assert.Equal(t, 14, len(points))
	for _, p := range points {
		assert.Equal(t, "IN", p.Region)
		assert.Equal(t, true, p.Interest >= 0 && p.Interest <= 100)
	}
}

func TestTrendsInterestOverTime_CustomRegion(t *testing.T) {
	client := NewTrendsClient("US")

	points := client.InterestOverTime([]string{"metro"}, 3)

	assert.Equal(t, 3, len(points))
	assert.Equal(t, "US", points[0].Region)
}
