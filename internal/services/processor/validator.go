package processor

import (
	"bytes"
	"fmt"
)

func (p *DocumentProcessor) ValidateDocument(data []byte, maxSize int64) error {
	// Check document size
	if len(data) == 0 {
		return fmt.Errorf("empty document data")
	}

	if int64(len(data)) > maxSize {
		return fmt.Errorf("document size %d exceeds maximum allowed size %d", len(data), maxSize)
	}

	// Check the PDF header before handing the data to the parser
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return fmt.Errorf("data is not a PDF document")
	}

	return nil
}
