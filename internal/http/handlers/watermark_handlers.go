package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phambaophuc/pdf-watermarking/internal/config"
	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/phambaophuc/pdf-watermarking/internal/services/processor"
	"github.com/phambaophuc/pdf-watermarking/internal/services/queue"
	"github.com/phambaophuc/pdf-watermarking/internal/services/storage"
	"go.uber.org/zap"
)

// Client-facing messages. The watermark endpoint strings are part of the
// wire contract, callers match on them.
const (
	msgMissingDocument     = "PDF data (pdfBase64) is required."
	msgMissingSource       = "PDF data (pdfBase64 or pdfUrl) is required."
	msgFontUnavailable     = "Watermark font is not available."
	msgProcessingFailed    = "Failed to process PDF document."
	msgBodyTooLarge        = "Request body exceeds the size limit."
	msgQueueUnavailable    = "Queue service is not available."
	msgJobStoreUnavailable = "Job store is not available."
	msgJobNotFound         = "Job not found."
	msgPublishFailed       = "Failed to queue the document."
)

type WatermarkHandler struct {
	processor *processor.DocumentProcessor
	storage   *storage.StorageService
	queue     *queue.QueueService
	logger    *zap.Logger
	config    *config.Config
}

func NewWatermarkHandler(
	processor *processor.DocumentProcessor,
	storage *storage.StorageService,
	queue *queue.QueueService,
	logger *zap.Logger,
	config *config.Config,
) *WatermarkHandler {
	return &WatermarkHandler{
		processor: processor,
		storage:   storage,
		queue:     queue,
		logger:    logger,
		config:    config,
	}
}

// === MAIN API ENDPOINTS ===

// AddWatermark stamps the watermark onto a base64 encoded document and
// returns the stamped document, base64 encoded again.
func (h *WatermarkHandler) AddWatermark(c *gin.Context) {
	req, ok := h.bindWatermarkRequest(c)
	if !ok {
		return
	}

	if req.PDFBase64 == "" {
		h.respondError(c, http.StatusBadRequest, msgMissingDocument)
		return
	}

	if err := h.checkDocumentSize(req.PDFBase64); err != nil {
		h.respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid document: %v", err))
		return
	}

	// Check cache first
	cacheKey, cached := h.tryCachedResult(c, req)
	if cached != "" {
		c.JSON(http.StatusOK, models.WatermarkResponse{
			Success:              true,
			WatermarkedPDFBase64: cached,
		})
		return
	}

	result, pages, err := h.processor.ProcessBase64(req.PDFBase64, req)
	if err != nil {
		h.respondProcessingError(c, err)
		return
	}

	h.logger.Info("Document watermarked",
		zap.Int("page_count", pages),
		zap.Int("result_size", len(result)))

	// Cache the result
	h.storeCachedResult(c.Request.Context(), cacheKey, result)

	c.JSON(http.StatusOK, models.WatermarkResponse{
		Success:              true,
		WatermarkedPDFBase64: result,
	})
}

// AddWatermarkAsync queues the document for background watermarking and
// responds with a job id to poll.
func (h *WatermarkHandler) AddWatermarkAsync(c *gin.Context) {
	if h.queue == nil {
		h.respondError(c, http.StatusServiceUnavailable, msgQueueUnavailable)
		return
	}

	req, ok := h.bindWatermarkRequest(c)
	if !ok {
		return
	}

	if req.PDFBase64 == "" && req.PDFURL == "" {
		h.respondError(c, http.StatusBadRequest, msgMissingSource)
		return
	}

	job := &models.WatermarkJob{
		ID:        uuid.New().String(),
		Request:   *req,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	// Record the pending job before it becomes visible to workers
	h.persistJob(c.Request.Context(), job)

	if err := h.queue.PublishJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to publish job",
			zap.String("job_id", job.ID),
			zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, msgPublishFailed)
		return
	}

	c.JSON(http.StatusAccepted, models.APIResponse{
		Success: true,
		Data: gin.H{
			"job_id": job.ID,
			"status": job.Status,
		},
	})
}

// GetJobStatus returns the stored state of a background job.
func (h *WatermarkHandler) GetJobStatus(c *gin.Context) {
	jobID := c.Param("id")

	job, err := h.storage.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.logger.Error("Failed to load job",
			zap.String("job_id", jobID),
			zap.Error(err))
		h.respondError(c, http.StatusServiceUnavailable, msgJobStoreUnavailable)
		return
	}

	if job == nil {
		h.respondError(c, http.StatusNotFound, msgJobNotFound)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

// HealthCheck
func (h *WatermarkHandler) HealthCheck(c *gin.Context) {
	services := h.storage.HealthCheck(c.Request.Context())

	if h.queue != nil {
		services["queue"] = h.queue.HealthCheck()
	} else {
		services["queue"] = "not configured"
	}

	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

// GetStats returns API statistics
func (h *WatermarkHandler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"timestamp": time.Now(),
	}

	if h.queue != nil {
		queueStats, err := h.queue.GetQueueStats()
		if err != nil {
			h.logger.Error("Failed to get queue stats", zap.Error(err))
		} else {
			stats["queue"] = queueStats
		}
	}

	cacheStats, err := h.storage.GetCacheStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get cache stats", zap.Error(err))
	} else {
		stats["cache"] = cacheStats
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    stats,
	})
}
