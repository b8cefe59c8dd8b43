package watermark

// Measurer reports rendered text width in points at a given font size.
type Measurer interface {
	TextWidth(text string, size float64) float64
}

// Page holds the dimensions a placement is computed against, in points.
type Page struct {
	Width  float64
	Height float64
}

type RGB struct {
	R float64
	G float64
	B float64
}

// Gray is the fill color every watermark line is drawn with.
var Gray = RGB{R: 0.5, G: 0.5, B: 0.5}

// Text is one positioned watermark line. X and Y anchor the start of the
// baseline and double as the rotation pivot.
type Text struct {
	Value   string
	X       float64
	Y       float64
	Size    float64
	Rotate  float64
	Opacity float64
	Color   RGB
}

// Placement is the full two-line watermark for a single page.
type Placement struct {
	Title    Text
	Subtitle Text
}

// The subtitle sits below and left of the title at a fixed offset,
// regardless of its own width.
const (
	subtitleOffsetX = -20.0
	subtitleOffsetY = -30.0
)

// Compute centers the title's unrotated bounding box on the page, treating
// the box height as the font size, and anchors the subtitle relative to the
// title. Rotation pivots at the returned origin, not the box center, and
// origins may fall outside the page when the text is wider than it.
func Compute(page Page, title, subtitle string, opts Options, m Measurer) Placement {
	titleWidth := m.TextWidth(title, opts.Size)

	x := page.Width/2 - titleWidth/2
	y := page.Height/2 - opts.Size/2

	return Placement{
		Title: Text{
			Value:   title,
			X:       x,
			Y:       y,
			Size:    opts.Size,
			Rotate:  opts.Rotate,
			Opacity: opts.Opacity,
			Color:   Gray,
		},
		Subtitle: Text{
			Value:   subtitle,
			X:       x + subtitleOffsetX,
			Y:       y + subtitleOffsetY,
			Size:    opts.SizeSubtitle,
			Rotate:  opts.Rotate,
			Opacity: opts.Opacity,
			Color:   Gray,
		},
	}
}
