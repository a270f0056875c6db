package api_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"Postcraft/internal/api"
	"Postcraft/internal/api/config"
	"Postcraft/internal/api/handler"
	"Postcraft/internal/model"
	"Postcraft/internal/pkg/llm"
	"Postcraft/internal/pkg/mail"
	"Postcraft/internal/pkg/redis"
	"Postcraft/internal/pkg/social"
	"Postcraft/internal/repository"
	"Postcraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubSource struct{}

func (stubSource) Generate(context.Context, string) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, 20, 10)), nil
}

type stubBrander struct{}

func (stubBrander) Apply(src image.Image) *image.NRGBA {
	return image.NewNRGBA(src.Bounds())
}

type failingCaptions struct{}

func (failingCaptions) Generate(context.Context, string, string) (*llm.Captions, error) {
	return nil, errors.New("model unavailable")
}

type stubPublisher struct{}

func (stubPublisher) Publish(_ context.Context, platforms []string, _ map[string]string, _ string) social.Results {
	results := make(social.Results)
	for _, p := range platforms {
		results[p] = social.Outcome{Platform: p, OK: p != social.PlatformFacebook, Message: "token expired"}
	}
	return results
}

type stubMailer struct {
	err error
}

func (m *stubMailer) SendLead(context.Context, mail.Lead) error {
	return m.err
}

type testApp struct {
	router *gin.Engine
	repo   repository.PostRepo
	mailer *stubMailer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Post{}))

	root := t.TempDir()
	cfg := &config.Config{Server: config.ServerConfig{
		BaseURL:      "https://studio.example.com",
		UploadDir:    filepath.Join(root, "uploads"),
		ProcessedDir: filepath.Join(root, "processed"),
	}}

	repo := repository.NewPostRepository(db)
	cache := redis.NopCache{}
	mailer := &stubMailer{}
	dashboardSvc := service.NewDashboardService(repo, cache, time.Minute)

	group := &api.HandlersGroup{
		PageHandler:    handler.NewPageHandler(dashboardSvc),
		BookingHandler: handler.NewBookingHandler(service.NewBookingService(mailer)),
		GenerateHandler: handler.NewGenerateHandler(service.NewGenerateService(
			stubSource{}, stubBrander{},
			service.LocalImageHost{BaseURL: cfg.Server.BaseURL, Prefix: api.ProcessedPrefix},
			failingCaptions{}, cfg.Server.UploadDir, cfg.Server.ProcessedDir)),
		PostHandler: handler.NewPostHandler(service.NewPostService(repo, stubPublisher{}, cache), dashboardSvc),
	}

	return &testApp{router: api.SetupRouter(cfg, group), repo: repo, mailer: mailer}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(path string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestChatGenerateWithoutInput(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	w := app.do(httptest.NewRequest(http.MethodPost, "/api/chat_generate", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Provide file or text"}`, w.Body.String())

	w = app.do(postForm("/api/chat_generate", url.Values{"prompt": {""}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestChatGenerateFromPromptUsesFallbackCaptions(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	w := app.do(postForm("/api/chat_generate", url.Values{"prompt": {"newborn portraits"}}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		ImageURL string            `json:"image_url"`
		Captions map[string]string `json:"captions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.ImageURL, "https://studio.example.com/static/processed/gen_"))
	assert.Equal(t, llm.FallbackCaptions().Map(), body.Captions)

	// 本地托管的成品图可以通过静态路径访问
	path := strings.TrimPrefix(body.ImageURL, "https://studio.example.com")
	img := app.do(httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "image/png", img.Header().Get("Content-Type"))
}

func TestConfirmPostFlow(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	w := app.do(postJSON("/api/confirm_post", map[string]any{
		"action":    "instant",
		"platforms": []string{"linkedin", "facebook"},
		"captions":  map[string]string{"linkedin": "li", "facebook": "fb"},
		"image_url": "https://media.example.com/gen.png",
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Status     string            `json:"status"`
		PostStatus string            `json:"post_status"`
		Details    map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "Failed", res.PostStatus)
	assert.Equal(t, "✅ Posted", res.Details["linkedin"])
	assert.Equal(t, "❌ Failed: token expired", res.Details["facebook"])

	w = app.do(postJSON("/api/confirm_post", map[string]any{
		"action":    "schedule",
		"platforms": []string{"instagram"},
		"captions":  map[string]string{"instagram": "ig"},
		"time":      "2026-04-01T10:00",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"post_status":"Scheduled: 2026-04-01T10:00"`)
	assert.Contains(t, w.Body.String(), `"system":"Queued"`)

	w = app.do(httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active_campaigns":1`)
	assert.Contains(t, w.Body.String(), `"li_pct":1`)

	w = app.do(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 2)

	w = app.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Scheduled: 2026-04-01T10:00")
	assert.Contains(t, w.Body.String(), `class="failed"`)
}

func TestConfirmPostBadRequests(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	w := app.do(postJSON("/api/confirm_post", map[string]any{"action": "instant", "platforms": []string{}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	req := httptest.NewRequest(http.MethodPost, "/api/confirm_post", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w = app.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	posts, err := app.repo.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSubmitBooking(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	w := app.do(postForm("/api/submit_booking", url.Values{"name": {"Ana"}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	form := url.Values{"name": {"Ana"}, "phone": {"555-0101"}, "date": {"2026-05-01"}}
	w = app.do(postForm("/api/submit_booking", form))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you!")

	app.mailer.err = errors.New("smtp down")
	w = app.do(postForm("/api/submit_booking", form))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error sending email.", w.Body.String())
}

func TestPagesAndMetrics(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	for _, path := range []string{"/", "/booking", "/dashboard", "/metrics", "/api/ping"} {
		w := app.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := app.do(httptest.NewRequest(http.MethodGet, "/booking", nil))
	assert.NotContains(t, w.Body.String(), "Thank you!")
	assert.Contains(t, app.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil)).Body.String(), "No posts yet.")
}
