package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/processor"
	"go.uber.org/zap"
)

// === REQUEST PARSING ===

func (h *WatermarkHandler) bindWatermarkRequest(c *gin.Context) (*models.WatermarkRequest, bool) {
	var req models.WatermarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(c, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return nil, false
		}

		// An unreadable body carries no document data
		h.respondError(c, http.StatusBadRequest, msgMissingDocument)
		return nil, false
	}

	return &req, true
}

// checkDocumentSize rejects documents whose decoded size would exceed the
// configured ceiling, without decoding them. A zero ceiling disables the
// check.
func (h *WatermarkHandler) checkDocumentSize(encoded string) error {
	maxSize := h.config.Watermark.MaxDocumentSize
	if maxSize <= 0 {
		return nil
	}

	if size := int64(base64.StdEncoding.DecodedLen(len(encoded))); size > maxSize {
		return fmt.Errorf("document size %d exceeds maximum allowed size %d", size, maxSize)
	}

	return nil
}

// === RESPONSE HANDLING ===

func (h *WatermarkHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.ErrorResponse{
		Error: message,
	})
}

func (h *WatermarkHandler) respondErrorDetails(c *gin.Context, statusCode int, message, details string) {
	c.JSON(statusCode, models.ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// respondProcessingError maps processing failures onto the wire contract.
// Font failures have their own message, everything else raised while
// handling the document reports as a processing failure with details.
func (h *WatermarkHandler) respondProcessingError(c *gin.Context, err error) {
	if errors.Is(err, fonts.ErrUnavailable) {
		h.logger.Error("Watermark font unavailable", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, msgFontUnavailable)
		return
	}

	var docErr *processor.DocumentError
	if errors.As(err, &docErr) {
		h.logger.Error("Document processing failed",
			zap.String("op", docErr.Op),
			zap.Error(docErr.Err))
		h.respondErrorDetails(c, http.StatusInternalServerError, msgProcessingFailed, docErr.Error())
		return
	}

	h.logger.Error("Document processing failed", zap.Error(err))
	h.respondErrorDetails(c, http.StatusInternalServerError, msgProcessingFailed, err.Error())
}

// === CACHE OPERATIONS ===

// tryCachedResult returns the cache key for the request and the cached
// result when present. Cache errors only log, the request still processes.
func (h *WatermarkHandler) tryCachedResult(c *gin.Context, req *models.WatermarkRequest) (string, string) {
	if h.storage == nil {
		return "", ""
	}

	cacheKey := h.storage.CacheKey([]byte(req.PDFBase64), req)

	cached, err := h.storage.GetCachedResult(c.Request.Context(), cacheKey)
	if err != nil {
		h.logger.Warn("Cache lookup failed", zap.Error(err))
		return cacheKey, ""
	}
	if cached == nil {
		return cacheKey, ""
	}

	h.logger.Info("Cache hit", zap.String("cache_key", cacheKey))
	return cacheKey, string(cached)
}

func (h *WatermarkHandler) storeCachedResult(ctx context.Context, cacheKey, result string) {
	if h.storage == nil || cacheKey == "" {
		return
	}

	if err := h.storage.SetCachedResult(ctx, cacheKey, []byte(result)); err != nil {
		h.logger.Warn("Failed to cache result",
			zap.String("cache_key", cacheKey),
			zap.Error(err))
	}
}

// === JOB OPERATIONS ===

func (h *WatermarkHandler) persistJob(ctx context.Context, job *models.WatermarkJob) {
	if h.storage == nil {
		return
	}

	if err := h.storage.SaveJob(ctx, job); err != nil {
		h.logger.Warn("Failed to persist job state",
			zap.String("job_id", job.ID),
			zap.Error(err))
	}
}

// === UTILITY METHODS ===

func (h *WatermarkHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}
