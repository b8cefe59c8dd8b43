// Package testutil builds minimal PDF fixtures in memory so tests do not
// depend on binary files.
package testutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// PageSpec describes one page of a generated document. A page with empty
// Content is written without a Contents entry.
type PageSpec struct {
	Width   float64
	Height  float64
	Content string
}

// LetterPage returns a letter-sized page carrying a small graphics stream.
func LetterPage() PageSpec {
	return PageSpec{
		Width:   612,
		Height:  792,
		Content: "1 0 0 RG 2 w 72 72 468 648 re S",
	}
}

// MinimalPDF writes a single-xref PDF with the given pages. Offsets are
// computed while writing, so the result is byte-exact and parses without
// repair.
func MinimalPDF(pages ...PageSpec) []byte {
	if len(pages) == 0 {
		pages = []PageSpec{LetterPage()}
	}

	// Objects: 1 catalog, 2 page tree, then per page the page dict followed
	// by its content stream when present.
	type pageObjs struct {
		page    int
		content int
	}
	layout := make([]pageObjs, len(pages))
	next := 3
	for i, p := range pages {
		layout[i].page = next
		next++
		if p.Content != "" {
			layout[i].content = next
			next++
		}
	}
	objCount := next

	var buf bytes.Buffer
	offsets := make([]int, objCount)

	buf.WriteString("%PDF-1.4\n")

	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<</Type/Catalog/Pages 2 0 R>>\nendobj\n")

	offsets[2] = buf.Len()
	buf.WriteString("2 0 obj\n<</Type/Pages/Kids[")
	for i := range pages {
		if i > 0 {
			buf.WriteString(" ")
		}
		fmt.Fprintf(&buf, "%d 0 R", layout[i].page)
	}
	fmt.Fprintf(&buf, "]/Count %d>>\nendobj\n", len(pages))

	for i, p := range pages {
		offsets[layout[i].page] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<</Type/Page/Parent 2 0 R/MediaBox[0 0 %g %g]/Resources<<>>",
			layout[i].page, p.Width, p.Height)
		if layout[i].content != 0 {
			fmt.Fprintf(&buf, "/Contents %d 0 R", layout[i].content)
		}
		buf.WriteString(">>\nendobj\n")

		if layout[i].content != 0 {
			offsets[layout[i].content] = buf.Len()
			fmt.Fprintf(&buf, "%d 0 obj\n<</Length %d>>\nstream\n%s\nendstream\nendobj\n",
				layout[i].content, len(p.Content), p.Content)
		}
	}

	xrefOffset := buf.Len()
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", objCount)
	fmt.Fprintf(&buf, "%010d %05d f \r\n", 0, 65535)
	for i := 1; i < objCount; i++ {
		fmt.Fprintf(&buf, "%010d %05d n \r\n", offsets[i], 0)
	}

	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF", objCount, xrefOffset)

	return buf.Bytes()
}

// MinimalPDFBase64 is MinimalPDF encoded the way requests carry documents.
func MinimalPDFBase64(pages ...PageSpec) string {
	return base64.StdEncoding.EncodeToString(MinimalPDF(pages...))
}
