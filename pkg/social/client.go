package social

import "time"

type Post struct {
	ID          string
	Source      string
	Subreddit   string
	Title       string
	Body        string
	URL         string
	Score       int
	UpvoteRatio float64
	NumComments int
	PostedAt    time.Time
	IsSynthetic bool
}

type Client interface {
	Fetch(subreddit string, limit int) ([]Post, error)
	Name() string
}
