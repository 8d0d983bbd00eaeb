// Package tracker is the first-party analytics client. It establishes a
// durable visitor identity, batches page-view and engagement signals, and
// ships them to the ingest endpoint with local rate-limiting. Delivery is
// strictly best-effort: failures are logged and swallowed, never retried,
// never surfaced to the host application.
package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio/api/models"
)

// VisitorIDFile is the durable client-side key holding the opaque visitor
// token. It is the only state that survives restarts.
const VisitorIDFile = "portfolio_visitor_id"

// Rate-limit cooldowns and the periodic flush interval.
const (
	PageViewCooldown   = 5 * time.Second
	EngagementCooldown = 30 * time.Second
	DefaultFlushEvery  = 30 * time.Second
)

const deliverTimeout = 10 * time.Second

type Config struct {
	// Endpoint is the full URL of the track endpoint.
	Endpoint string

	// StateDir is where the visitor token file is kept.
	StateDir string

	// FlushEvery overrides the periodic engagement flush interval.
	FlushEvery time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client

	Logger *zap.SugaredLogger
}

// Tracker is a single long-lived client instance with a New → Start → Stop
// lifecycle. All state lives on the instance; a mutex stands in for the
// single-threaded event loop the browser gave the original design.
type Tracker struct {
	mu             sync.Mutex
	visitorID      string
	sessionID      string
	currentPath    string
	startTime      time.Time
	interactions   int
	maxScrollDepth float64
	lastPageView   time.Time
	lastEngagement time.Time
	tracking       bool

	endpoint   string
	flushEvery time.Duration
	client     *http.Client
	log        *zap.SugaredLogger
	stop       chan struct{}
	wg         sync.WaitGroup
}

// New resolves or creates the durable visitor identity and generates a fresh
// session id. The session id is never persisted; every instance gets its own.
func New(cfg Config) (*Tracker, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("tracker endpoint is required")
	}

	visitorID, err := loadOrCreateVisitorID(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: deliverTimeout}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.S()
	}
	flushEvery := cfg.FlushEvery
	if flushEvery == 0 {
		flushEvery = DefaultFlushEvery
	}

	return &Tracker{
		visitorID:  visitorID,
		sessionID:  newToken("session"),
		startTime:  time.Now(),
		endpoint:   cfg.Endpoint,
		flushEvery: flushEvery,
		client:     client,
		log:        log,
		stop:       make(chan struct{}),
	}, nil
}

// Start flushes the first page view for path and begins the periodic
// engagement flush. Calling Start twice is a no-op.
func (t *Tracker) Start(path string) {
	t.mu.Lock()
	if t.tracking {
		t.mu.Unlock()
		return
	}
	t.tracking = true
	t.currentPath = path
	t.mu.Unlock()

	t.TrackPageView(path)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.flushEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.mu.Lock()
				path := t.currentPath
				t.mu.Unlock()
				t.TrackEngagement(path, false)
			case <-t.stop:
				return
			}
		}
	}()
}

// Stop performs the exit engagement flush and tears the tracker down. Exit
// flushes bypass the cooldown so the final signal is never dropped.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if !t.tracking {
		t.mu.Unlock()
		return
	}
	t.tracking = false
	path := t.currentPath
	t.mu.Unlock()

	close(t.stop)
	t.wg.Wait()
	t.TrackEngagement(path, true)
}

// VisitorID returns the durable visitor token.
func (t *Tracker) VisitorID() string {
	return t.visitorID
}

// SessionID returns this instance's session token.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// TrackPageView reports a navigation to path. Calls within the page-view
// cooldown window are suppressed.
func (t *Tracker) TrackPageView(path string) {
	t.mu.Lock()
	now := time.Now()
	if now.Sub(t.lastPageView) < PageViewCooldown {
		t.mu.Unlock()
		return
	}
	t.lastPageView = now
	t.currentPath = path
	payload := models.TrackRequest{Type: models.EventPageView}
	data, _ := json.Marshal(models.PageViewData{
		PagePath:  path,
		VisitorID: t.visitorID,
		SessionID: t.sessionID,
	})
	payload.Data = data
	t.mu.Unlock()

	t.deliver(payload)
}

// TrackEngagement flushes the accumulated engagement counters for path.
// Non-exit flushes honor the engagement cooldown; exit flushes always go out.
func (t *Tracker) TrackEngagement(path string, exitPage bool) {
	t.mu.Lock()
	now := time.Now()
	if !exitPage && now.Sub(t.lastEngagement) < EngagementCooldown {
		t.mu.Unlock()
		return
	}
	t.lastEngagement = now

	timeOnPage := int(math.Round(now.Sub(t.startTime).Seconds()))
	payload := models.TrackRequest{Type: models.EventEngagement}
	data, _ := json.Marshal(models.EngagementData{
		VisitorID:    t.visitorID,
		SessionID:    t.sessionID,
		PagePath:     path,
		TimeOnPage:   timeOnPage,
		ScrollDepth:  t.maxScrollDepth,
		Interactions: t.interactions,
		ExitPage:     exitPage,
	})
	payload.Data = data
	t.mu.Unlock()

	t.deliver(payload)
}

// RecordInteraction counts one click/keypress-grade interaction.
func (t *Tracker) RecordInteraction() {
	t.mu.Lock()
	t.interactions++
	t.mu.Unlock()
}

// RecordScroll observes a scroll position as a fraction of the scrollable
// height. Only the maximum is kept; it never decreases within a view.
func (t *Tracker) RecordScroll(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	t.mu.Lock()
	if fraction > t.maxScrollDepth {
		t.maxScrollDepth = fraction
	}
	t.mu.Unlock()
}

// Hidden flushes engagement without resetting the counters, mirroring the
// page going to the background.
func (t *Tracker) Hidden() {
	t.mu.Lock()
	path := t.currentPath
	t.mu.Unlock()
	t.TrackEngagement(path, false)
}

// Visible resets the rolling markers: a new view session starts when the
// page returns to the foreground.
func (t *Tracker) Visible() {
	t.mu.Lock()
	t.startTime = time.Now()
	t.interactions = 0
	t.maxScrollDepth = 0
	t.mu.Unlock()
}

// deliver is the single fire-and-forget delivery path. Any marshal, network,
// or HTTP-status failure is logged at warn level and swallowed; the host
// application never sees an error and nothing is retried.
func (t *Tracker) deliver(payload models.TrackRequest) {
	body, err := json.Marshal(payload)
	if err != nil {
		t.log.Warnf("Analytics tracking failed: %v", err)
		return
	}

	resp, err := t.client.Post(t.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		t.log.Warnf("Analytics tracking failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.log.Warnf("Analytics tracking failed: status %d", resp.StatusCode)
	}
}

// loadOrCreateVisitorID reads the persisted visitor token, generating and
// persisting a new one on first run.
func loadOrCreateVisitorID(stateDir string) (string, error) {
	if stateDir == "" {
		stateDir = "."
	}
	path := filepath.Join(stateDir, VisitorIDFile)

	if raw, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(raw)); id != "" {
			return id, nil
		}
	}

	id := newToken("visitor")
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create tracker state dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(id), 0o644); err != nil {
		return "", fmt.Errorf("failed to persist visitor id: %w", err)
	}
	return id, nil
}

// newToken builds an opaque token from a random component and the current
// time, e.g. visitor_4f9a21c3_1712131415161.
func newToken(prefix string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%d", prefix, random, time.Now().UnixMilli())
}
