package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/database"
	"portfolio/api/middleware"
	"portfolio/api/store"
	"portfolio/api/utils"
)

// setupRouter builds a router over a temp database with the same route table
// the server uses, minus CORS and rate limiting.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "portfolio_test.db"))
	require.NoError(t, err)
	t.Cleanup(client.Close)
	require.NoError(t, database.Migrate(client.DB))

	skillHandlers := NewSkillHandlers(store.NewSkillStore(client.DB))
	projectHandlers := NewProjectHandlers(store.NewProjectStore(client.DB))
	contactHandlers := NewContactHandlers(store.NewContactStore(client.DB))
	analyticsHandlers := NewAnalyticsHandlers(store.NewAnalyticsStore(client.DB))
	authHandlers := NewAuthHandlers()

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/skills", skillHandlers.List)
		api.GET("/projects", projectHandlers.List)
		api.GET("/projects/count", projectHandlers.Count)
		api.POST("/contact", contactHandlers.Create)
		api.POST("/analytics/track", analyticsHandlers.Track)
		api.POST("/admin/login", authHandlers.Login)
		api.POST("/admin/logout", authHandlers.Logout)

		protected := api.Group("/")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/skills", skillHandlers.Create)
			protected.PUT("/skills/:id", skillHandlers.Update)
			protected.DELETE("/skills/:id", skillHandlers.Delete)
			protected.GET("/contact", contactHandlers.List)
			protected.PUT("/contact/:id", contactHandlers.UpdateRead)
			protected.GET("/analytics/stats", analyticsHandlers.Stats)
		}
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateSessionToken("admin")
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookieName, Value: token}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTrackPageViewFeedsStats(t *testing.T) {
	r := setupRouter(t)
	cookie := sessionCookie(t)

	payload := `{"type":"page_view","data":{"page_path":"/","visitor_id":"visitor_a","session_id":"session_a"}}`
	w := doJSON(t, r, http.MethodPost, "/api/analytics/track", payload, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, r, http.MethodGet, "/api/analytics/stats", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	total, ok := data["total"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), total["pageViews"])
	assert.Equal(t, float64(1), total["visitors"])
}

func TestTrackRejectsBadPayloads(t *testing.T) {
	r := setupRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing data", `{"type":"page_view"}`},
		{"unknown type", `{"type":"click","data":{}}`},
		{"page view without visitor", `{"type":"page_view","data":{"page_path":"/","session_id":"s"}}`},
		{"scroll depth above one", `{"type":"engagement","data":{"visitor_id":"v","session_id":"s","page_path":"/","scroll_depth":1.5}}`},
		{"negative time on page", `{"type":"engagement","data":{"visitor_id":"v","session_id":"s","page_path":"/","time_on_page":-1}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/analytics/track", tc.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, decodeBody(t, w)["success"])
		})
	}
}

func TestTrackAcceptsEngagement(t *testing.T) {
	r := setupRouter(t)

	payload := `{"type":"engagement","data":{"visitor_id":"v","session_id":"s","page_path":"/projects","time_on_page":42,"scroll_depth":0.8,"interactions":3,"exit_page":true}}`
	w := doJSON(t, r, http.MethodPost, "/api/analytics/track", payload, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestContactFlow(t *testing.T) {
	r := setupRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodPost, "/api/contact", `{"name":"Jo","email":"jo@example.com","subject":"Hi","message":"Nice site"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/contact", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	msgs := decodeBody(t, w)["data"].([]any)
	require.Len(t, msgs, 1)
	first := msgs[0].(map[string]any)
	assert.Equal(t, float64(0), first["read"])

	id := int(first["id"].(float64))
	w = doJSON(t, r, http.MethodPut, "/api/contact/"+strconv.Itoa(id), `{"read":true}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/contact", "", cookie)
	msgs = decodeBody(t, w)["data"].([]any)
	assert.Equal(t, float64(1), msgs[0].(map[string]any)["read"])
}

func TestContactRejectsIncompleteSubmission(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/contact", `{"name":"Jo"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, w)["error"])
}

func TestContactReadRequiresBoolean(t *testing.T) {
	r := setupRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodPut, "/api/contact/1", `{"read":"yes"}`, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Read field must be a boolean", decodeBody(t, w)["error"])
}

func TestLogin(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", `{"username":"owner","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", decodeBody(t, w)["message"])

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookieName && c.Value != "" {
			found = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "login must set the session cookie")

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", `{"username":"owner","password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", `{"username":"owner"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := setupRouter(t)

	for _, route := range []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/skills", `{"name":"Go","category":"backend"}`},
		{http.MethodGet, "/api/contact", ""},
		{http.MethodGet, "/api/analytics/stats", ""},
	} {
		w := doJSON(t, r, route.method, route.path, route.body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s must require a session", route.method, route.path)
	}

	bad := &http.Cookie{Name: utils.SessionCookieName, Value: "tampered"}
	w := doJSON(t, r, http.MethodGet, "/api/contact", "", bad)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSkillWriteThenPublicRead(t *testing.T) {
	r := setupRouter(t)
	cookie := sessionCookie(t)

	w := doJSON(t, r, http.MethodPost, "/api/skills", `{"name":"Go","category":"backend","proficiency":90}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/skills", `{"name":"Go"}`, cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and category are required", decodeBody(t, w)["error"])

	w = doJSON(t, r, http.MethodGet, "/api/skills", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	skills := decodeBody(t, w)["data"].([]any)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].(map[string]any)["name"])
}

func TestProjectCountEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/projects/count", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(0), data["total"])
	assert.Equal(t, float64(0), data["featured"])
}

