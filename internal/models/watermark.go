package models

// WatermarkOptions uses pointer fields so an absent override can be told
// apart from an explicit zero when merging with the defaults.
type WatermarkOptions struct {
	Size         *float64 `json:"size,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty" binding:"omitempty,min=0,max=1"`
	Rotate       *float64 `json:"rotate,omitempty"`
	SizeSubtitle *float64 `json:"sizesubtitle,omitempty"`
}

type WatermarkRequest struct {
	PDFBase64      string            `json:"pdfBase64,omitempty"`
	PDFURL         string            `json:"pdfUrl,omitempty"`
	FirstName      string            `json:"firstName,omitempty"`
	LastName       string            `json:"lastName,omitempty"`
	WatermarkLine1 string            `json:"watermarkLine1,omitempty"`
	Options        *WatermarkOptions `json:"watermarkOptions,omitempty"`
}

type WatermarkResponse struct {
	Success              bool   `json:"success"`
	WatermarkedPDFBase64 string `json:"watermarkedPdfBase64"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
