package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lasudevlab/learnhub-backend/internal/handlers"
	"github.com/lasudevlab/learnhub-backend/internal/logger"
	"github.com/lasudevlab/learnhub-backend/internal/middleware"
)

func newTestRouter(t *testing.T, mediaRoot string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init failed: %v", err)
	}
	return NewRouter(RouterConfig{
		MediaRoot:       mediaRoot,
		AuthHandler:     handlers.NewAuthHandler(nil),
		AuthMiddleware:  middleware.NewAuthMiddleware(log, nil),
		ProfileHandler:  handlers.NewProfileHandler(nil, nil),
		LearningHandler: handlers.NewLearningHandler(log, nil, nil),
	})
}

func TestRouterServesMediaRoot(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "user_avatar", "abc123")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "1.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	router := newTestRouter(t, root)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/media/user_avatar/abc123/1.png", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if w.Body.String() != "png-bytes" {
		t.Fatalf("got body %q, want stored file contents", w.Body.String())
	}
}

func TestRouterHealthcheck(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
}
