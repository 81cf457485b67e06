package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type SocialPost struct {
	ID          string
	Source      string
	Subreddit   string
	Title       string
	Body        string
	URL         string
	Score       int
	UpvoteRatio float64
	NumComments int
	IsSynthetic bool
	Status      string
	PostedAt    time.Time
	IngestedAt  time.Time
}

type AnalysisError struct {
	ID           int64
	PostID       string
	ErrorMessage string
	ErrorType    string
	CreatedAt    time.Time
}
