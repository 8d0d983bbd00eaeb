// api/models/analytics.go
package models

import "encoding/json"

// Track event type discriminators accepted by the ingest endpoint.
const (
	EventPageView   = "page_view"
	EventEngagement = "engagement"
)

// TrackRequest is the envelope posted by the tracker. Data is decoded into
// PageViewData or EngagementData depending on Type.
type TrackRequest struct {
	Type string          `json:"type" binding:"required"`
	Data json.RawMessage `json:"data" binding:"required"`
}

type PageViewData struct {
	PagePath  string `json:"page_path" binding:"required"`
	VisitorID string `json:"visitor_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

type EngagementData struct {
	VisitorID    string  `json:"visitor_id" binding:"required"`
	SessionID    string  `json:"session_id" binding:"required"`
	PagePath     string  `json:"page_path" binding:"required"`
	TimeOnPage   int     `json:"time_on_page" binding:"min=0"`
	ScrollDepth  float64 `json:"scroll_depth" binding:"min=0,max=1"`
	Interactions int     `json:"interactions" binding:"min=0"`
	ExitPage     bool    `json:"exit_page"`
}

// PageView is one immutable page_views row, enriched server-side with
// request headers and the client network address.
type PageView struct {
	PagePath  string
	VisitorID string
	SessionID string
	UserAgent string
	Referrer  string
	IPAddress string
}

// Visitor is the durable per-client aggregate keyed by the opaque visitor
// token. Counters only ever increase; first_visit never changes after insert.
type Visitor struct {
	ID             int    `json:"id"`
	VisitorID      string `json:"visitor_id"`
	FirstVisit     string `json:"first_visit"`
	LastVisit      string `json:"last_visit"`
	TotalVisits    int    `json:"total_visits"`
	TotalPageViews int    `json:"total_page_views"`
}

// StatsData is the aggregation rollup tree. Every field defaults to zero so
// dashboards render "0" instead of handling absence.
type StatsData struct {
	Total          WindowCounts    `json:"total"`
	Today          WindowCounts    `json:"today"`
	Week           WindowCounts    `json:"week"`
	Month          WindowCounts    `json:"month"`
	Engagement     EngagementStats `json:"engagement"`
	TopPages       []TopPage       `json:"topPages"`
	RecentVisitors []RecentVisitor `json:"recentVisitors"`
}

type WindowCounts struct {
	PageViews int `json:"pageViews"`
	Visitors  int `json:"visitors"`
}

type EngagementStats struct {
	AvgTimeOnPage   int `json:"avgTimeOnPage"`
	AvgScrollDepth  int `json:"avgScrollDepth"`
	AvgInteractions int `json:"avgInteractions"`
}

type TopPage struct {
	PagePath string `json:"page_path"`
	Views    int    `json:"views"`
}

type RecentVisitor struct {
	VisitorID      string `json:"visitor_id"`
	LastVisit      string `json:"last_visit"`
	TotalVisits    int    `json:"total_visits"`
	TotalPageViews int    `json:"total_page_views"`
}
