package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"civicpulse/internal/model"
)

type DashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) SaveSummary(s *model.DashboardSummary) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	return r.db.QueryRow(`
		INSERT INTO dashboard_summary(
			id, trust_index, volatility_index, risk_score, risk_level,
			driver_negativity, driver_arousal, driver_momentum,
			amplification_score, repeated_messages, total_repeats,
			burst_score, is_burst, max_rate_per_window, mean_rate,
			total_posts, total_clusters)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at
	`, s.ID, s.TrustIndex, s.VolatilityIndex, s.RiskScore, s.RiskLevel,
		s.Drivers.Negativity, s.Drivers.Arousal, s.Drivers.Momentum,
		s.AmplificationScore, s.RepeatedMessages, s.TotalRepeats,
		s.BurstScore, s.IsBurst, s.MaxRatePerWindow, s.MeanRate,
		s.TotalPosts, s.TotalClusters).Scan(&s.CreatedAt)
}

func (r *DashboardRepository) GetLatestSummary() (*model.DashboardSummary, error) {
	var s model.DashboardSummary
	err := r.db.QueryRow(`
		SELECT id, trust_index, volatility_index, risk_score, risk_level,
			driver_negativity, driver_arousal, driver_momentum,
			amplification_score, repeated_messages, total_repeats,
			burst_score, is_burst, max_rate_per_window, mean_rate,
			total_posts, total_clusters, created_at
		FROM dashboard_summary
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&s.ID, &s.TrustIndex, &s.VolatilityIndex, &s.RiskScore, &s.RiskLevel,
		&s.Drivers.Negativity, &s.Drivers.Arousal, &s.Drivers.Momentum,
		&s.AmplificationScore, &s.RepeatedMessages, &s.TotalRepeats,
		&s.BurstScore, &s.IsBurst, &s.MaxRatePerWindow, &s.MeanRate,
		&s.TotalPosts, &s.TotalClusters, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *DashboardRepository) GetRiskHistory(days int) ([]model.RiskPoint, error) {
	rows, err := r.db.Query(`
		SELECT created_at, risk_score
		FROM dashboard_summary
		WHERE created_at >= NOW() - ($1 || ' days')::interval
		ORDER BY created_at ASC
	`, days)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.RiskPoint
	for rows.Next() {
		var p model.RiskPoint
		if err := rows.Scan(&p.CreatedAt, &p.Score); err != nil {
			return nil, err
		}
		history = append(history, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// ReplaceClusters swaps the stored cluster set for the latest run.
func (r *DashboardRepository) ReplaceClusters(clusters []model.IssueCluster) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM issue_cluster`); err != nil {
		return err
	}

	for i := range clusters {
		c := &clusters[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}

		keywords, err := json.Marshal(c.TopKeywords)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO issue_cluster(id, cluster_id, label, top_keywords, size, avg_sentiment, trend)
			VALUES($1, $2, $3, $4, $5, $6, $7)
		`, c.ID, c.ClusterID, c.Label, keywords, c.Size, c.AvgSentiment, c.Trend)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *DashboardRepository) GetLatestClusters() ([]model.IssueCluster, error) {
	rows, err := r.db.Query(`
		SELECT id, cluster_id, label, top_keywords, size, COALESCE(avg_sentiment, 0), trend, created_at
		FROM issue_cluster
		ORDER BY size DESC
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clusters []model.IssueCluster
	for rows.Next() {
		var c model.IssueCluster
		var keywords []byte
		err := rows.Scan(&c.ID, &c.ClusterID, &c.Label, &keywords, &c.Size,
			&c.AvgSentiment, &c.Trend, &c.CreatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(keywords, &c.TopKeywords); err != nil {
			return nil, err
		}

		clusters = append(clusters, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clusters, nil
}

func (r *DashboardRepository) SaveTrendPoints(points []model.TrendPoint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range points {
		p := &points[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		_, err := tx.Exec(`
			INSERT INTO trend_point(id, keyword, ts, interest_value, region)
			VALUES($1, $2, $3, $4, $5)
		`, p.ID, p.Keyword, p.Timestamp, p.InterestValue, p.Region)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *DashboardRepository) GetRecentTrends(days int) ([]model.TrendPoint, error) {
	rows, err := r.db.Query(`
		SELECT id, keyword, ts, interest_value, region
		FROM trend_point
		WHERE ts >= NOW() - ($1 || ' days')::interval
		ORDER BY keyword ASC, ts ASC
	`, days)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.TrendPoint
	for rows.Next() {
		var p model.TrendPoint
		err := rows.Scan(&p.ID, &p.Keyword, &p.Timestamp, &p.InterestValue, &p.Region)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

func (r *DashboardRepository) SaveAlertEvent(e *model.AlertEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	return r.db.QueryRow(`
		INSERT INTO alert_event(id, risk_score, manual)
		VALUES($1, $2, $3)
		RETURNING sent_at
	`, e.ID, e.RiskScore, e.Manual).Scan(&e.SentAt)
}

func (r *DashboardRepository) GetLastAlertEvent() (*model.AlertEvent, error) {
	var e model.AlertEvent
	err := r.db.QueryRow(`
		SELECT id, risk_score, manual, sent_at
		FROM alert_event
		ORDER BY sent_at DESC
		LIMIT 1
	`).Scan(&e.ID, &e.RiskScore, &e.Manual, &e.SentAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &e, nil
}
