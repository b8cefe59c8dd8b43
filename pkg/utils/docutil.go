package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func DownloadDocument(ctx context.Context, documentURL string, maxSize int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download document: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read document data: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty document data")
	}

	if !IsPDFData(data) {
		return nil, fmt.Errorf("downloaded data is not a PDF document")
	}

	return data, nil
}

// IsPDFData checks the PDF file header
func IsPDFData(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// GenerateFilename generates a unique filename for a watermarked document
func GenerateFilename(jobID string) string {
	timestamp := time.Now().Unix()
	return fmt.Sprintf("watermarked_%s_%d.pdf", jobID, timestamp)
}

func GenerateStorageKey(filename string) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	timestamp := time.Now().Unix()
	uuid := uuid.New().String()[:8]

	return fmt.Sprintf("watermarked/%s_%d_%s%s", name, timestamp, uuid, ext)
}
