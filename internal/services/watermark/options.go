package watermark

import "github.com/phambaophuc/pdf-watermarking/internal/models"

// DefaultTitle is drawn when a request does not name its own first line.
const DefaultTitle = "CONFIDENTIAL"

// Options is the resolved appearance of a watermark. Size and SizeSubtitle
// are font sizes in points, Rotate is in degrees with counterclockwise
// positive, Opacity runs from 0 to 1.
type Options struct {
	Size         float64
	Opacity      float64
	Rotate       float64
	SizeSubtitle float64
}

func DefaultOptions() Options {
	return Options{
		Size:         65,
		Opacity:      0.2,
		Rotate:       -45,
		SizeSubtitle: 40,
	}
}

// MergeOptions overlays request overrides onto the defaults field by field.
// A nil overrides keeps every default; an explicit zero wins over a default.
func MergeOptions(overrides *models.WatermarkOptions) Options {
	opts := DefaultOptions()
	if overrides == nil {
		return opts
	}
	if overrides.Size != nil {
		opts.Size = *overrides.Size
	}
	if overrides.Opacity != nil {
		opts.Opacity = *overrides.Opacity
	}
	if overrides.Rotate != nil {
		opts.Rotate = *overrides.Rotate
	}
	if overrides.SizeSubtitle != nil {
		opts.SizeSubtitle = *overrides.SizeSubtitle
	}
	return opts
}

// TitleLine picks the first watermark line, falling back to DefaultTitle.
func TitleLine(custom string) string {
	if custom != "" {
		return custom
	}
	return DefaultTitle
}

// SubtitleLine joins the recipient's names with a single space. Empty names
// stay in the result, so two empty names yield a lone space.
func SubtitleLine(firstName, lastName string) string {
	return firstName + " " + lastName
}
