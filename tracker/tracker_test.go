package tracker

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/models"
)

type captureServer struct {
	mu       sync.Mutex
	requests []models.TrackRequest
	srv      *httptest.Server
}

func newCaptureServer(t *testing.T) *captureServer {
	t.Helper()
	cs := &captureServer{}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req models.TrackRequest
		require.NoError(t, json.Unmarshal(body, &req))
		cs.mu.Lock()
		cs.requests = append(cs.requests, req)
		cs.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func (cs *captureServer) all() []models.TrackRequest {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]models.TrackRequest, len(cs.requests))
	copy(out, cs.requests)
	return out
}

func (cs *captureServer) ofType(eventType string) []models.TrackRequest {
	var out []models.TrackRequest
	for _, req := range cs.all() {
		if req.Type == eventType {
			out = append(out, req)
		}
	}
	return out
}

func newTestTracker(t *testing.T, cs *captureServer, stateDir string) *Tracker {
	t.Helper()
	tr, err := New(Config{
		Endpoint: cs.srv.URL + "/api/analytics/track",
		StateDir: stateDir,
	})
	require.NoError(t, err)
	return tr
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New(Config{StateDir: t.TempDir()})
	assert.Error(t, err)
}

func TestVisitorIDPersistsAcrossInstances(t *testing.T) {
	cs := newCaptureServer(t)
	dir := t.TempDir()

	first := newTestTracker(t, cs, dir)
	second := newTestTracker(t, cs, dir)

	assert.True(t, strings.HasPrefix(first.VisitorID(), "visitor_"))
	assert.Equal(t, first.VisitorID(), second.VisitorID(), "visitor id must survive restarts")
	assert.NotEqual(t, first.SessionID(), second.SessionID(), "each instance gets a fresh session")
}

func TestPageViewCooldownSuppressesBursts(t *testing.T) {
	cs := newCaptureServer(t)
	tr := newTestTracker(t, cs, t.TempDir())

	for i := 0; i < 5; i++ {
		tr.TrackPageView("/")
	}

	views := cs.ofType(models.EventPageView)
	require.Len(t, views, 1, "rapid page views within the cooldown collapse to one")

	var data models.PageViewData
	require.NoError(t, json.Unmarshal(views[0].Data, &data))
	assert.Equal(t, "/", data.PagePath)
	assert.Equal(t, tr.VisitorID(), data.VisitorID)
	assert.Equal(t, tr.SessionID(), data.SessionID)
}

func TestEngagementCooldownAndExitBypass(t *testing.T) {
	cs := newCaptureServer(t)
	tr := newTestTracker(t, cs, t.TempDir())

	tr.RecordInteraction()
	tr.RecordInteraction()
	tr.RecordScroll(0.4)
	tr.RecordScroll(0.9)
	tr.RecordScroll(0.2)

	tr.TrackEngagement("/projects", false)
	tr.TrackEngagement("/projects", false)
	require.Len(t, cs.ofType(models.EventEngagement), 1, "second flush inside the cooldown is suppressed")

	tr.TrackEngagement("/projects", true)
	flushes := cs.ofType(models.EventEngagement)
	require.Len(t, flushes, 2, "exit flush bypasses the cooldown")

	var data models.EngagementData
	require.NoError(t, json.Unmarshal(flushes[1].Data, &data))
	assert.True(t, data.ExitPage)
	assert.Equal(t, 2, data.Interactions)
	assert.Equal(t, 0.9, data.ScrollDepth, "only the maximum scroll position is reported")
}

func TestScrollRecordingClamps(t *testing.T) {
	cs := newCaptureServer(t)
	tr := newTestTracker(t, cs, t.TempDir())

	tr.RecordScroll(3.5)
	tr.TrackEngagement("/", true)

	flushes := cs.ofType(models.EventEngagement)
	require.Len(t, flushes, 1)

	var data models.EngagementData
	require.NoError(t, json.Unmarshal(flushes[0].Data, &data))
	assert.Equal(t, 1.0, data.ScrollDepth)
}

func TestStartAndStopLifecycle(t *testing.T) {
	cs := newCaptureServer(t)
	tr := newTestTracker(t, cs, t.TempDir())

	tr.Start("/home")
	tr.Start("/home") // second Start is a no-op
	tr.Stop()
	tr.Stop() // second Stop is a no-op

	views := cs.ofType(models.EventPageView)
	require.Len(t, views, 1, "Start flushes exactly one page view")

	flushes := cs.ofType(models.EventEngagement)
	require.Len(t, flushes, 1, "Stop flushes exactly one exit engagement")

	var data models.EngagementData
	require.NoError(t, json.Unmarshal(flushes[0].Data, &data))
	assert.True(t, data.ExitPage)
	assert.Equal(t, "/home", data.PagePath)
}

func TestVisibleResetsRollingCounters(t *testing.T) {
	cs := newCaptureServer(t)
	tr := newTestTracker(t, cs, t.TempDir())

	tr.RecordInteraction()
	tr.RecordScroll(0.7)
	tr.Visible()
	tr.TrackEngagement("/", true)

	flushes := cs.ofType(models.EventEngagement)
	require.Len(t, flushes, 1)

	var data models.EngagementData
	require.NoError(t, json.Unmarshal(flushes[0].Data, &data))
	assert.Equal(t, 0, data.Interactions)
	assert.Equal(t, 0.0, data.ScrollDepth)
}

func TestDeliveryFailuresAreSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr, err := New(Config{Endpoint: srv.URL, StateDir: t.TempDir()})
	require.NoError(t, err)

	// None of these may panic or surface an error to the caller.
	tr.TrackPageView("/")
	tr.TrackEngagement("/", true)

	srv.Close()
	tr.TrackEngagement("/", true)
}
