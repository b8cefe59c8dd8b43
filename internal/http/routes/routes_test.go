package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phambaophuc/pdf-watermarking/internal/config"
	"github.com/phambaophuc/pdf-watermarking/internal/http/handlers"
	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/processor"
	"github.com/phambaophuc/pdf-watermarking/internal/services/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEngine(t *testing.T, maxBodySize int64) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodySize: maxBodySize},
	}

	store, err := storage.NewStorageService(cfg)
	require.NoError(t, err)

	h := handlers.NewWatermarkHandler(
		processor.NewDocumentProcessor(fonts.NewLoader("")),
		store,
		nil,
		zap.NewNop(),
		cfg,
	)

	return NewRouter(h, zap.NewNop(), cfg).SetupRoutes()
}

func TestRootLiveness(t *testing.T) {
	t.Parallel()

	router := testEngine(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status": "OK", "message": "PDF watermarking is running"}`, w.Body.String())
	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestWatermarkRoutesAreWired(t *testing.T) {
	t.Parallel()

	router := testEngine(t, 1<<20)

	for _, path := range []string{"/addWatermark", "/api/v1/documents/watermark"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, path)
		require.JSONEq(t, `{"error": "PDF data (pdfBase64) is required."}`, w.Body.String(), path)
	}
}

func TestPreflightHandled(t *testing.T) {
	t.Parallel()

	router := testEngine(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/addWatermark", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOversizedBodyRejected(t *testing.T) {
	t.Parallel()

	router := testEngine(t, 128)

	body := `{"pdfBase64": "` + strings.Repeat("QUFB", 256) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/addWatermark", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	require.JSONEq(t, `{"error": "Request body exceeds the size limit."}`, w.Body.String())
}
