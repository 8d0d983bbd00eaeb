// api/store/analytics_store.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"portfolio/api/models"
)

type AnalyticsStore struct {
	db *sql.DB
}

func NewAnalyticsStore(db *sql.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// RecordPageView appends a page_views row and upserts the visitor inside one
// transaction. The upsert is a single atomic statement: first_visit is
// preserved, last_visit advances, and both counters increment.
func (s *AnalyticsStore) RecordPageView(ctx context.Context, pv models.PageView) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin page view transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO page_views (page_path, visitor_id, session_id, user_agent, referrer, ip_address)
		VALUES (?, ?, ?, ?, ?, ?);
	`, pv.PagePath, pv.VisitorID, pv.SessionID, pv.UserAgent, pv.Referrer, pv.IPAddress)
	if err != nil {
		return fmt.Errorf("failed to insert page view: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO visitors (visitor_id, first_visit, last_visit, total_visits, total_page_views)
		VALUES (?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, 1, 1)
		ON CONFLICT(visitor_id) DO UPDATE SET
			last_visit = CURRENT_TIMESTAMP,
			total_visits = total_visits + 1,
			total_page_views = total_page_views + 1;
	`, pv.VisitorID)
	if err != nil {
		return fmt.Errorf("failed to upsert visitor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit page view transaction: %w", err)
	}
	return nil
}

// RecordEngagement appends one engagement_metrics row. Rows are never updated
// or deleted afterwards.
func (s *AnalyticsStore) RecordEngagement(ctx context.Context, em models.EngagementData) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO engagement_metrics (visitor_id, session_id, page_path, time_on_page, scroll_depth, interactions, exit_page)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`, em.VisitorID, em.SessionID, em.PagePath, em.TimeOnPage, em.ScrollDepth, em.Interactions,
		models.BoolFrom(em.ExitPage))
	if err != nil {
		return fmt.Errorf("failed to insert engagement metric: %w", err)
	}
	return nil
}

// Visitor returns the aggregate row for one visitor token.
func (s *AnalyticsStore) Visitor(ctx context.Context, visitorID string) (models.Visitor, error) {
	var v models.Visitor
	err := s.db.QueryRowContext(ctx, `
		SELECT id, visitor_id, first_visit, last_visit, total_visits, total_page_views
		FROM visitors
		WHERE visitor_id = ?;
	`, visitorID).Scan(&v.ID, &v.VisitorID, &v.FirstVisit, &v.LastVisit, &v.TotalVisits, &v.TotalPageViews)
	if err != nil {
		if err == sql.ErrNoRows {
			return v, ErrNotFound
		}
		return v, fmt.Errorf("failed to get visitor: %w", err)
	}
	return v, nil
}

// Stats recomputes the full rollup tree from the raw event rows. Windowed
// visitor counts use last_visit, i.e. visitors active in the window, not
// visitors first seen in it.
func (s *AnalyticsStore) Stats(ctx context.Context) (models.StatsData, error) {
	data := models.StatsData{
		TopPages:       []models.TopPage{},
		RecentVisitors: []models.RecentVisitor{},
	}

	counts := []struct {
		dst   *int
		query string
	}{
		{&data.Total.PageViews, `SELECT COUNT(*) FROM page_views;`},
		{&data.Total.Visitors, `SELECT COUNT(*) FROM visitors;`},
		{&data.Today.PageViews, `SELECT COUNT(*) FROM page_views WHERE DATE(created_at) = DATE('now');`},
		{&data.Today.Visitors, `SELECT COUNT(*) FROM visitors WHERE DATE(last_visit) = DATE('now');`},
		{&data.Week.PageViews, `SELECT COUNT(*) FROM page_views WHERE created_at >= DATE('now', '-7 days');`},
		{&data.Week.Visitors, `SELECT COUNT(*) FROM visitors WHERE last_visit >= DATE('now', '-7 days');`},
		{&data.Month.PageViews, `SELECT COUNT(*) FROM page_views WHERE created_at >= DATE('now', 'start of month');`},
		{&data.Month.Visitors, `SELECT COUNT(*) FROM visitors WHERE last_visit >= DATE('now', 'start of month');`},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return data, fmt.Errorf("failed to query analytics counts: %w", err)
		}
	}

	var avgTime, avgScroll, avgInteractions sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT AVG(time_on_page), AVG(scroll_depth), AVG(interactions)
		FROM engagement_metrics;
	`).Scan(&avgTime, &avgScroll, &avgInteractions)
	if err != nil {
		return data, fmt.Errorf("failed to query engagement averages: %w", err)
	}
	data.Engagement = models.EngagementStats{
		AvgTimeOnPage:   roundAverage(avgTime),
		AvgScrollDepth:  roundAverage(scaled(avgScroll, 100)),
		AvgInteractions: roundAverage(avgInteractions),
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT page_path, COUNT(*) as views
		FROM page_views
		GROUP BY page_path
		ORDER BY views DESC
		LIMIT 5;
	`)
	if err != nil {
		return data, fmt.Errorf("failed to query top pages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tp models.TopPage
		if err := rows.Scan(&tp.PagePath, &tp.Views); err != nil {
			return data, fmt.Errorf("failed to scan top page row: %w", err)
		}
		data.TopPages = append(data.TopPages, tp)
	}
	if err := rows.Err(); err != nil {
		return data, fmt.Errorf("row error while querying top pages: %w", err)
	}

	visitorRows, err := s.db.QueryContext(ctx, `
		SELECT visitor_id, last_visit, total_visits, total_page_views
		FROM visitors
		ORDER BY last_visit DESC
		LIMIT 10;
	`)
	if err != nil {
		return data, fmt.Errorf("failed to query recent visitors: %w", err)
	}
	defer visitorRows.Close()

	for visitorRows.Next() {
		var rv models.RecentVisitor
		if err := visitorRows.Scan(&rv.VisitorID, &rv.LastVisit, &rv.TotalVisits, &rv.TotalPageViews); err != nil {
			return data, fmt.Errorf("failed to scan recent visitor row: %w", err)
		}
		data.RecentVisitors = append(data.RecentVisitors, rv)
	}
	if err := visitorRows.Err(); err != nil {
		return data, fmt.Errorf("row error while querying recent visitors: %w", err)
	}

	return data, nil
}

// roundAverage turns a nullable SQL average into the rounded integer the
// dashboard renders. NULL (no rows) and NaN both become 0.
func roundAverage(v sql.NullFloat64) int {
	if !v.Valid || math.IsNaN(v.Float64) {
		return 0
	}
	return int(math.Round(v.Float64))
}

func scaled(v sql.NullFloat64, factor float64) sql.NullFloat64 {
	if !v.Valid {
		return v
	}
	return sql.NullFloat64{Float64: v.Float64 * factor, Valid: true}
}
