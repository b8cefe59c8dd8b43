package processor

import (
	"github.com/phambaophuc/pdf-watermarking/internal/models"
	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/pdf"
	"github.com/phambaophuc/pdf-watermarking/internal/services/watermark"
)

func (p *DocumentProcessor) stampPages(doc *pdf.Document, font *fonts.Resource, request *models.WatermarkRequest) error {
	opts := watermark.MergeOptions(request.Options)
	title := watermark.TitleLine(request.WatermarkLine1)
	subtitle := watermark.SubtitleLine(request.FirstName, request.LastName)

	for number := 1; number <= doc.PageCount(); number++ {
		page, err := doc.Page(number)
		if err != nil {
			return err
		}

		width, height := page.Size()
		placement := watermark.Compute(watermark.Page{Width: width, Height: height}, title, subtitle, opts, font)

		if err := page.DrawText(placement.Title, placement.Subtitle); err != nil {
			return err
		}
	}

	return nil
}
