package fonts

import (
	"fmt"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Resource is a parsed TrueType font together with the raw bytes that get
// embedded into documents. Descriptor metrics are in 1000-per-em units.
// A Resource is safe for concurrent use; every call uses its own sfnt.Buffer.
type Resource struct {
	data       []byte
	font       *sfnt.Font
	unitsPerEm sfnt.Units
	ppem       fixed.Int26_6

	postScriptName string
	ascent         float64
	descent        float64
	capHeight      float64
	italicAngle    float64
	bbox           [4]float64
}

func NewResource(data []byte) (*Resource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	upem := f.UnitsPerEm()
	if upem == 0 {
		return nil, fmt.Errorf("font reports zero units per em")
	}

	r := &Resource{
		data:       data,
		font:       f,
		unitsPerEm: upem,
		ppem:       fixed.Int26_6(int32(upem) << 6),
	}

	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDPostScript)
	if err != nil || name == "" {
		name = "EmbeddedFont"
	}
	r.postScriptName = name

	metrics, err := f.Metrics(&buf, r.ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read font metrics: %w", err)
	}
	bounds, err := f.Bounds(&buf, r.ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read font bounds: %w", err)
	}

	r.ascent = r.toThousandths(metrics.Ascent)
	r.descent = -r.toThousandths(metrics.Descent)
	r.capHeight = r.toThousandths(metrics.CapHeight)
	if r.capHeight == 0 {
		r.capHeight = r.ascent
	}
	if post := f.PostTable(); post != nil {
		r.italicAngle = post.ItalicAngle
	}

	// Bounds is y-down; the descriptor box is y-up.
	r.bbox = [4]float64{
		r.toThousandths(bounds.Min.X),
		-r.toThousandths(bounds.Max.Y),
		r.toThousandths(bounds.Max.X),
		-r.toThousandths(bounds.Min.Y),
	}

	return r, nil
}

// TextWidth measures text at the given size in points. Text is measured over
// its WinAnsi encoding, so the result matches what drawing the same string
// produces.
func (r *Resource) TextWidth(text string, size float64) float64 {
	var buf sfnt.Buffer
	var total fixed.Int26_6
	var prev sfnt.GlyphIndex
	hasPrev := false

	for _, c := range Encode(text) {
		rn, ok := runeForCode(c)
		if !ok {
			continue
		}
		gi, err := r.font.GlyphIndex(&buf, rn)
		if err != nil {
			continue
		}
		adv, err := r.font.GlyphAdvance(&buf, gi, r.ppem, xfont.HintingNone)
		if err != nil {
			continue
		}
		if hasPrev {
			if kern, err := r.font.Kern(&buf, prev, gi, r.ppem, xfont.HintingNone); err == nil {
				total += kern
			}
		}
		total += adv
		prev, hasPrev = gi, true
	}

	return float64(total) / 64 * size / float64(r.unitsPerEm)
}

// Widths returns advances for WinAnsi codes 32 through 255 in 1000-per-em
// units, in the order a simple font's Widths array expects. Undefined codes
// and missing glyphs get zero.
func (r *Resource) Widths() []int {
	var buf sfnt.Buffer
	widths := make([]int, 0, 256-32)

	for code := 32; code <= 255; code++ {
		rn, ok := runeForCode(byte(code))
		if !ok {
			widths = append(widths, 0)
			continue
		}
		gi, err := r.font.GlyphIndex(&buf, rn)
		if err != nil || gi == 0 {
			widths = append(widths, 0)
			continue
		}
		adv, err := r.font.GlyphAdvance(&buf, gi, r.ppem, xfont.HintingNone)
		if err != nil {
			widths = append(widths, 0)
			continue
		}
		widths = append(widths, int(math.Round(r.toThousandths(adv))))
	}

	return widths
}

func (r *Resource) Data() []byte           { return r.data }
func (r *Resource) PostScriptName() string { return r.postScriptName }
func (r *Resource) Ascent() float64        { return r.ascent }
func (r *Resource) Descent() float64       { return r.descent }
func (r *Resource) CapHeight() float64     { return r.capHeight }
func (r *Resource) ItalicAngle() float64   { return r.italicAngle }
func (r *Resource) BBox() [4]float64       { return r.bbox }

func (r *Resource) toThousandths(v fixed.Int26_6) float64 {
	return float64(v) * 1000 / (64 * float64(r.unitsPerEm))
}
