package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phambaophuc/pdf-watermarking/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestCacheKeyIsDeterministic(t *testing.T) {
	t.Parallel()

	s := &StorageService{}
	doc := []byte("%PDF-1.4 fake document")
	req := &models.WatermarkRequest{FirstName: "Jane", LastName: "Doe"}

	first := s.CacheKey(doc, req)
	second := s.CacheKey(doc, req)

	require.Equal(t, first, second)
	require.True(t, strings.HasPrefix(first, "wm_cache:"))
}

func TestCacheKeyVariesWithInputs(t *testing.T) {
	t.Parallel()

	s := &StorageService{}
	doc := []byte("%PDF-1.4 fake document")
	base := &models.WatermarkRequest{FirstName: "Jane", LastName: "Doe"}

	tests := []struct {
		name string
		doc  []byte
		req  *models.WatermarkRequest
	}{
		{
			name: "different document",
			doc:  []byte("%PDF-1.4 another document"),
			req:  base,
		},
		{
			name: "different name",
			doc:  doc,
			req:  &models.WatermarkRequest{FirstName: "John", LastName: "Doe"},
		},
		{
			name: "custom title",
			doc:  doc,
			req:  &models.WatermarkRequest{FirstName: "Jane", LastName: "Doe", WatermarkLine1: "DRAFT"},
		},
		{
			name: "size override",
			doc:  doc,
			req: &models.WatermarkRequest{
				FirstName: "Jane",
				LastName:  "Doe",
				Options:   &models.WatermarkOptions{Size: floatPtr(80)},
			},
		},
		{
			name: "rotation override",
			doc:  doc,
			req: &models.WatermarkRequest{
				FirstName: "Jane",
				LastName:  "Doe",
				Options:   &models.WatermarkOptions{Rotate: floatPtr(0)},
			},
		},
	}

	baseKey := s.CacheKey(doc, base)
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.NotEqual(t, baseKey, s.CacheKey(tc.doc, tc.req))
		})
	}
}

func TestCacheKeyIgnoresNilOptions(t *testing.T) {
	t.Parallel()

	s := &StorageService{}
	doc := []byte("%PDF-1.4 fake document")

	withNil := s.CacheKey(doc, &models.WatermarkRequest{FirstName: "Jane"})
	withEmpty := s.CacheKey(doc, &models.WatermarkRequest{FirstName: "Jane", Options: &models.WatermarkOptions{}})

	// An options object with no overrides hashes like no options at all.
	require.Equal(t, withNil, withEmpty)
}
