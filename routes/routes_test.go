package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adamsai/video-summarizer/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	root := t.TempDir()
	cfg := config.Config{
		VideosDir:           filepath.Join(root, "videos"),
		AudiosDir:           filepath.Join(root, "audios"),
		MaxUploadSizeMB:     500,
		DefaultAudioBitrate: "192k",
		LLMProvider:         "openrouter",
		DefaultLLMModel:     "anthropic/claude-3.5-sonnet",
		DefaultWhisperModel: "whisper-1",
		DefaultLanguage:     "ko",
		DownloadThreads:     2,
		ExtractTimeout:      time.Minute,
		TranscribeTimeout:   time.Minute,
		SummarizeTimeout:    time.Minute,
		DownloadTimeout:     time.Minute,
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return SetupRouter(gin.New(), db, cfg, log)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestPromptTemplateCRUD(t *testing.T) {
	r := newTestRouter(t)

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/prompt-templates", gin.H{
		"name":    "meeting-notes",
		"content": "Summarize this meeting: {transcript}",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "meeting-notes", created["name"])
	assert.Equal(t, true, created["is_active"])
	assert.Equal(t, "general", created["category"])
	id := int(created["id"].(float64))

	// Duplicate name is rejected
	w = doJSON(t, r, http.MethodPost, "/api/prompt-templates", gin.H{
		"name":    "meeting-notes",
		"content": "{transcript}",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	// Get by id and by name
	w = doJSON(t, r, http.MethodGet, "/api/prompt-templates/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/prompt-templates/name/meeting-notes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// List
	w = doJSON(t, r, http.MethodGet, "/api/prompt-templates?is_active=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listing map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, float64(1), listing["total"])

	// Toggle off
	w = doJSON(t, r, http.MethodPatch, "/api/prompt-templates/"+strconv.Itoa(id)+"/toggle?is_active=false", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var toggled map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.Equal(t, false, toggled["is_active"])

	// Delete, then the get is a 404
	w = doJSON(t, r, http.MethodDelete, "/api/prompt-templates/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/prompt-templates/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVideoNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/videos/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["kind"])
	assert.Contains(t, body["error"], "Video not found with id: 999")
}

func TestVideoListEmpty(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/videos", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["total"])
}

func TestDownloadRequiresValidURL(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/videos/download", gin.H{"url": "not-a-url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid URL")
}

func TestExtractUnknownVideo(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/audios/extract", gin.H{"video_id": 42})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

