package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"civicpulse/internal/model"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// SaveAnalysisAndComplete replaces any previous analysis for the post and
// marks the post completed in the same transaction.
func (r *AnalysisRepository) SaveAnalysisAndComplete(analysis *model.PostAnalysis) error {
	emotions, err := json.Marshal(analysis.Emotions)
	if err != nil {
		return err
	}

	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM post_analysis WHERE post_id = $1
	`, analysis.PostID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO post_analysis(id, post_id, compound, positive, neutral, negative, label, emotion_scores)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
	`, analysis.ID, analysis.PostID, analysis.Compound, analysis.Positive,
		analysis.Neutral, analysis.Negative, analysis.Label, emotions)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE social_post SET status = $1 WHERE id = $2
	`, model.StatusCompleted, analysis.PostID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AnalysisRepository) GetAnalysesByPostIDs(postIDs []string) ([]model.PostAnalysis, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(`
		SELECT id, post_id, compound, positive, neutral, negative, label, emotion_scores, analyzed_at
		FROM post_analysis
		WHERE post_id = ANY($1)
	`, pq.Array(postIDs))

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []model.PostAnalysis
	for rows.Next() {
		var a model.PostAnalysis
		var emotions []byte
		err := rows.Scan(&a.ID, &a.PostID, &a.Compound, &a.Positive, &a.Neutral,
			&a.Negative, &a.Label, &emotions, &a.AnalyzedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(emotions, &a.Emotions); err != nil {
			return nil, err
		}

		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analyses, nil
}

func (r *AnalysisRepository) GetDailySentiment(days int) ([]model.DailySentiment, error) {
	rows, err := r.db.Query(`
		SELECT DATE(analyzed_at) AS day, AVG(compound), COUNT(*)
		FROM post_analysis
		WHERE analyzed_at >= NOW() - ($1 || ' days')::interval
		GROUP BY DATE(analyzed_at)
		ORDER BY day ASC
	`, days)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var daily []model.DailySentiment
	for rows.Next() {
		var d model.DailySentiment
		err := rows.Scan(&d.Date, &d.AvgCompound, &d.PostCount)
		if err != nil {
			return nil, err
		}
		daily = append(daily, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return daily, nil
}
