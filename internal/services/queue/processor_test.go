package queue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phambaophuc/pdf-watermarking/internal/config"
	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/processor"
	"github.com/phambaophuc/pdf-watermarking/internal/services/storage"
	"github.com/phambaophuc/pdf-watermarking/internal/testutil"
)

// testQueueService builds a service without a broker connection. Only the
// processing path is exercised here, publishing and consuming need a live
// RabbitMQ.
func testQueueService(t *testing.T) *QueueService {
	t.Helper()

	store, err := storage.NewStorageService(&config.Config{})
	require.NoError(t, err)

	return &QueueService{
		logger:    zap.NewNop(),
		queueName: watermarkQueue,
		processor: processor.NewDocumentProcessor(fonts.NewLoader("")),
		storage:   store,
	}
}

func TestFetchDocumentInline(t *testing.T) {
	t.Parallel()

	q := testQueueService(t)
	want := testutil.MinimalPDF(testutil.LetterPage())

	job := &models.WatermarkJob{
		ID:      "job-1",
		Request: models.WatermarkRequest{PDFBase64: testutil.MinimalPDFBase64(testutil.LetterPage())},
	}

	data, err := q.fetchDocument(context.Background(), job)
	require.NoError(t, err)
	require.Equal(t, want, data)
}

func TestFetchDocumentFromURL(t *testing.T) {
	t.Parallel()

	payload := testutil.MinimalPDF(testutil.LetterPage())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	q := testQueueService(t)
	job := &models.WatermarkJob{
		ID:      "job-2",
		Request: models.WatermarkRequest{PDFURL: srv.URL},
	}

	data, err := q.fetchDocument(context.Background(), job)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestFetchDocumentPrefersInlineData(t *testing.T) {
	t.Parallel()

	q := testQueueService(t)
	job := &models.WatermarkJob{
		ID: "job-3",
		Request: models.WatermarkRequest{
			PDFBase64: testutil.MinimalPDFBase64(testutil.LetterPage()),
			PDFURL:    "http://127.0.0.1:1/unreachable",
		},
	}

	data, err := q.fetchDocument(context.Background(), job)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestFetchDocumentNoSource(t *testing.T) {
	t.Parallel()

	q := testQueueService(t)
	job := &models.WatermarkJob{ID: "job-4"}

	_, err := q.fetchDocument(context.Background(), job)
	require.ErrorContains(t, err, "no document source")
}

func TestProcessJobInvalidBase64(t *testing.T) {
	t.Parallel()

	q := testQueueService(t)
	job := &models.WatermarkJob{
		ID:      "job-5",
		Request: models.WatermarkRequest{PDFBase64: "@@broken@@"},
	}

	_, err := q.processJob(context.Background(), job)
	require.ErrorContains(t, err, "failed to decode document")
}

func TestProcessJobWithoutStorageBackend(t *testing.T) {
	t.Parallel()

	q := testQueueService(t)
	job := &models.WatermarkJob{
		ID:      "job-6",
		Request: models.WatermarkRequest{PDFBase64: testutil.MinimalPDFBase64(testutil.LetterPage())},
	}

	// Stamping succeeds, the upload step fails with storage unconfigured.
	_, err := q.processJob(context.Background(), job)
	require.ErrorContains(t, err, "failed to save watermarked document")
}
