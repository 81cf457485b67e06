package repository

import (
	"database/sql"

	"civicpulse/internal/model"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) SavePost(post *model.SocialPost) (bool, error) {
	var id string
	err := r.db.QueryRow(`
		INSERT INTO social_post(id, source, subreddit, title, body, url, score, upvote_ratio, num_comments, is_synthetic, status, posted_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`, post.ID, post.Source, post.Subreddit, post.Title, post.Body, post.URL,
		post.Score, post.UpvoteRatio, post.NumComments, post.IsSynthetic,
		model.StatusPending, post.PostedAt).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *PostRepository) GetPostByID(id string) (*model.SocialPost, error) {
	var p model.SocialPost
	err := r.db.QueryRow(`
		SELECT id, source, subreddit, title, body, url, score, COALESCE(upvote_ratio, 0), num_comments, is_synthetic, status, posted_at, ingested_at
		FROM social_post
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Source, &p.Subreddit, &p.Title, &p.Body, &p.URL,
		&p.Score, &p.UpvoteRatio, &p.NumComments, &p.IsSynthetic, &p.Status,
		&p.PostedAt, &p.IngestedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PostRepository) GetPendingPosts(limit int) ([]model.SocialPost, error) {
	rows, err := r.db.Query(`
		SELECT id, source, subreddit, title, body, url, score, COALESCE(upvote_ratio, 0), num_comments, is_synthetic, status, posted_at, ingested_at
		FROM social_post
		WHERE status = $1
		ORDER BY ingested_at ASC
		LIMIT $2
	`, model.StatusPending, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) GetRecentCompletedPosts(limit int) ([]model.SocialPost, error) {
	rows, err := r.db.Query(`
		SELECT id, source, subreddit, title, body, url, score, COALESCE(upvote_ratio, 0), num_comments, is_synthetic, status, posted_at, ingested_at
		FROM social_post
		WHERE status = $1
		ORDER BY posted_at DESC
		LIMIT $2
	`, model.StatusCompleted, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) UpdateStatus(id string, status string) error {
	_, err := r.db.Exec(`
		UPDATE social_post SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *PostRepository) CountPosts() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM social_post`).Scan(&count)
	return count, err
}

func (r *PostRepository) SaveError(postID string, message string, errorType string) error {
	_, err := r.db.Exec(`
		INSERT INTO analysis_error(post_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, postID, message, errorType)
	return err
}

func (r *PostRepository) GetErrorCount(postID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM analysis_error WHERE post_id = $1
	`, postID).Scan(&count)
	return count, err
}

func scanPosts(rows *sql.Rows) ([]model.SocialPost, error) {
	var posts []model.SocialPost
	for rows.Next() {
		var p model.SocialPost
		err := rows.Scan(&p.ID, &p.Source, &p.Subreddit, &p.Title, &p.Body, &p.URL,
			&p.Score, &p.UpvoteRatio, &p.NumComments, &p.IsSynthetic, &p.Status,
			&p.PostedAt, &p.IngestedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
