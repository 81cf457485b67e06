package social

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const redditFixture = `{
	"data": {
		"children": [
			{"data": {
				"id": "abc1",
				"subreddit": "india",
				"title": "Metro fares increased again",
				"selftext": "The fare hike hits daily commuters hardest.",
				"url": "https://reddit.com/r/india/abc1",
				"score": 120,
				"upvote_ratio": 0.91,
				"num_comments": 45,
				"created_utc": 1755600000,
				"stickied": false
			}},
			{"data": {
				"id": "abc2",
				"subreddit": "india",
				"title": "Monthly sticky thread",
				"stickied": true
			}}
		]
	}
}`

func TestRedditFetch_ParsesListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/india/new.json", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.NotEqual(t, "", r.Header.Get("User-Agent"))
		w.Write([]byte(redditFixture))
	}))
	defer server.Close()

	client := NewRedditClient("")
	client.baseURL = server.URL

	posts, err := client.Fetch("india", 25)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(posts))
	assert.Equal(t, "abc1", posts[0].ID)
	assert.Equal(t, "reddit", posts[0].Source)
	assert.Equal(t, "Metro fares increased again", posts[0].Title)
	assert.Equal(t, 120, posts[0].Score)
	assert.Equal(t, 0.91, posts[0].UpvoteRatio)
	assert.Equal(t, 45, posts[0].NumComments)
	assert.Equal(t, false, posts[0].IsSynthetic)
}

func TestRedditFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewRedditClient("")
	client.baseURL = server.URL

	_, err := client.Fetch("india", 25)

	assert.NotEqual(t, nil, err)
}

func TestRedditFetch_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewRedditClient("")
	client.baseURL = server.URL

	_, err := client.Fetch("india", 25)

	assert.NotEqual(t, nil, err)
}
