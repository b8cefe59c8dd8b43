package processor

import (
	"bytes"
	"encoding/base64"

	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/pdf"
)

type DocumentProcessor struct {
	fonts *fonts.Loader
}

func NewDocumentProcessor(fonts *fonts.Loader) *DocumentProcessor {
	return &DocumentProcessor{fonts: fonts}
}

// ProcessDocument stamps the watermark text onto every page of the document
// and returns the rewritten PDF together with its page count.
func (p *DocumentProcessor) ProcessDocument(data []byte, request *models.WatermarkRequest) (*bytes.Buffer, int, error) {
	// Resolve the watermark font before touching the document
	font, err := p.fonts.Ensure()
	if err != nil {
		return nil, 0, err
	}

	// Parse the document
	doc, err := pdf.Load(data)
	if err != nil {
		return nil, 0, &DocumentError{Op: "load document", Err: err}
	}

	// Register the font once, shared by every page
	if err := doc.EmbedFont(font); err != nil {
		return nil, 0, &DocumentError{Op: "embed watermark font", Err: err}
	}

	// Stamp all pages
	if err := p.stampPages(doc, font, request); err != nil {
		return nil, 0, &DocumentError{Op: "stamp pages", Err: err}
	}

	// Serialize back to a PDF
	out, err := doc.Save()
	if err != nil {
		return nil, 0, &DocumentError{Op: "write document", Err: err}
	}

	return bytes.NewBuffer(out), doc.PageCount(), nil
}

// ProcessBase64 decodes a base64 encoded document, stamps it and returns the
// result base64 encoded again.
func (p *DocumentProcessor) ProcessBase64(encoded string, request *models.WatermarkRequest) (string, int, error) {
	// Font availability decides the failure class before any decoding
	if _, err := p.fonts.Ensure(); err != nil {
		return "", 0, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", 0, &DocumentError{Op: "decode document", Err: err}
	}

	buffer, pages, err := p.ProcessDocument(data, request)
	if err != nil {
		return "", 0, err
	}

	return base64.StdEncoding.EncodeToString(buffer.Bytes()), pages, nil
}
