package processor

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/pdf"
	"github.com/phambaophuc/pdf-watermarking/internal/testutil"
)

func testProcessor(t *testing.T) *DocumentProcessor {
	t.Helper()

	return NewDocumentProcessor(fonts.NewLoader(""))
}

func floatPtr(v float64) *float64 { return &v }

func TestProcessDocumentStampsEveryPage(t *testing.T) {
	t.Parallel()

	p := testProcessor(t)
	input := testutil.MinimalPDF(testutil.LetterPage(), testutil.LetterPage(), testutil.LetterPage())

	buffer, pages, err := p.ProcessDocument(input, &models.WatermarkRequest{
		FirstName: "John",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	require.Equal(t, 3, pages)
	require.True(t, strings.HasPrefix(buffer.String(), "%PDF-"))

	// The rewritten document must itself parse with the same page count.
	doc, err := pdf.Load(buffer.Bytes())
	require.NoError(t, err)
	require.Equal(t, 3, doc.PageCount())
}

func TestProcessDocumentWithCustomOptions(t *testing.T) {
	t.Parallel()

	p := testProcessor(t)
	input := testutil.MinimalPDF(testutil.LetterPage())

	buffer, pages, err := p.ProcessDocument(input, &models.WatermarkRequest{
		WatermarkLine1: "INTERNAL DRAFT",
		Options: &models.WatermarkOptions{
			Size:         floatPtr(120),
			Opacity:      floatPtr(0),
			Rotate:       floatPtr(0),
			SizeSubtitle: floatPtr(8),
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, pages)
	require.NotZero(t, buffer.Len())
}

func TestProcessDocumentRerunKeepsShape(t *testing.T) {
	t.Parallel()

	p := testProcessor(t)
	input := testutil.MinimalPDF(testutil.LetterPage(), testutil.LetterPage())
	request := &models.WatermarkRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Options: &models.WatermarkOptions{
			Opacity: floatPtr(0.4),
		},
	}

	first, firstPages, err := p.ProcessDocument(input, request)
	require.NoError(t, err)
	second, secondPages, err := p.ProcessDocument(input, request)
	require.NoError(t, err)

	// Serialization metadata may differ between runs, the document shape
	// must not.
	require.Equal(t, firstPages, secondPages)

	firstDoc, err := pdf.Load(first.Bytes())
	require.NoError(t, err)
	secondDoc, err := pdf.Load(second.Bytes())
	require.NoError(t, err)
	require.Equal(t, firstDoc.PageCount(), secondDoc.PageCount())
}

func TestProcessDocumentFontUnavailable(t *testing.T) {
	t.Parallel()

	p := NewDocumentProcessor(fonts.NewLoader(filepath.Join(t.TempDir(), "missing.ttf")))

	_, _, err := p.ProcessDocument(testutil.MinimalPDF(testutil.LetterPage()), &models.WatermarkRequest{})
	require.ErrorIs(t, err, fonts.ErrUnavailable)

	// Font failures are reported as such, not as document failures.
	var docErr *DocumentError
	require.False(t, errors.As(err, &docErr))
}

func TestProcessBase64FontUnavailableBeforeDecode(t *testing.T) {
	t.Parallel()

	p := NewDocumentProcessor(fonts.NewLoader(filepath.Join(t.TempDir(), "missing.ttf")))

	// With the font missing and the payload broken, the font failure wins.
	_, _, err := p.ProcessBase64("@@not-base64@@", &models.WatermarkRequest{})
	require.ErrorIs(t, err, fonts.ErrUnavailable)

	var docErr *DocumentError
	require.False(t, errors.As(err, &docErr))
}

func TestProcessDocumentRejectsGarbage(t *testing.T) {
	t.Parallel()

	p := testProcessor(t)
	_, _, err := p.ProcessDocument([]byte("not a pdf at all"), &models.WatermarkRequest{})

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	require.Equal(t, "load document", docErr.Op)
}

func TestProcessBase64RoundTrip(t *testing.T) {
	t.Parallel()

	p := testProcessor(t)

	encoded, pages, err := p.ProcessBase64(testutil.MinimalPDFBase64(testutil.LetterPage()), &models.WatermarkRequest{
		WatermarkLine1: "DRAFT",
	})
	require.NoError(t, err)
	require.Equal(t, 1, pages)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(decoded), "%PDF-"))
}

func TestProcessBase64RejectsInvalidEncoding(t *testing.T) {
	t.Parallel()

	p := testProcessor(t)
	_, _, err := p.ProcessBase64("@@not-base64@@", &models.WatermarkRequest{})

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	require.Equal(t, "decode document", docErr.Op)
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	p := testProcessor(t)
	valid := testutil.MinimalPDF(testutil.LetterPage())

	tests := []struct {
		name    string
		data    []byte
		maxSize int64
		wantErr string
	}{
		{name: "valid document", data: valid, maxSize: 1 << 20},
		{name: "empty data", data: nil, maxSize: 1 << 20, wantErr: "empty document data"},
		{name: "oversized document", data: valid, maxSize: 16, wantErr: "exceeds maximum allowed size"},
		{name: "missing header", data: []byte("<html></html>"), maxSize: 1 << 20, wantErr: "not a PDF document"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := p.ValidateDocument(tc.data, tc.maxSize)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDocumentErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("xref table corrupt")
	err := &DocumentError{Op: "load document", Err: cause}

	require.Equal(t, "failed to load document: xref table corrupt", err.Error())
	require.ErrorIs(t, err, cause)
}
