package storage

import (
	"bytes"
	"context"
	"fmt"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/phambaophuc/pdf-watermarking/pkg/utils"
)

// UploadDocument uploads a watermarked document to Supabase Storage and
// returns its public URL.
func (s *StorageService) UploadDocument(ctx context.Context, data []byte, filename string) (string, error) {
	if s.sbClient == nil {
		return "", fmt.Errorf("document storage is not configured")
	}

	key := utils.GenerateStorageKey(filename)
	contentType := "application/pdf"

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	publicURL := s.sbClient.GetPublicUrl(s.bucket, key)
	return publicURL.SignedURL, nil
}
