package queue

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/phambaophuc/pdf-watermarking/pkg/utils"
)

// maxDocumentSize caps documents fetched for background jobs.
const maxDocumentSize = 32 << 20

func (q *QueueService) processJob(ctx context.Context, job *models.WatermarkJob) (*models.JobResult, error) {
	// Fetch the document bytes
	data, err := q.fetchDocument(ctx, job)
	if err != nil {
		return nil, err
	}

	if err := q.processor.ValidateDocument(data, maxDocumentSize); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	// Stamp the watermark onto the document
	buffer, pages, err := q.processor.ProcessDocument(data, &job.Request)
	if err != nil {
		return nil, fmt.Errorf("failed to process document: %w", err)
	}

	// Save the watermarked document
	filename := utils.GenerateFilename(job.ID)
	url, err := q.storage.UploadDocument(ctx, buffer.Bytes(), filename)
	if err != nil {
		return nil, fmt.Errorf("failed to save watermarked document: %w", err)
	}

	// Create result
	result := &models.JobResult{
		URL:         url,
		FileSize:    int64(buffer.Len()),
		PageCount:   pages,
		ProcessedAt: time.Now(),
	}

	return result, nil
}

func (q *QueueService) fetchDocument(ctx context.Context, job *models.WatermarkJob) ([]byte, error) {
	if job.Request.PDFBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(job.Request.PDFBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		return data, nil
	}

	if job.Request.PDFURL != "" {
		data, err := utils.DownloadDocument(ctx, job.Request.PDFURL, maxDocumentSize)
		if err != nil {
			return nil, fmt.Errorf("failed to download document: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("job has no document source")
}
