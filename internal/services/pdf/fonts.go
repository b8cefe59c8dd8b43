package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
)

// EmbedFont registers font as a simple TrueType font for every subsequent
// DrawText call. The full font program is embedded as a FontFile2 stream
// and declared with WinAnsiEncoding.
func (d *Document) EmbedFont(font *fonts.Resource) error {
	data := font.Data()

	sd, err := d.ctx.NewStreamDictForBuf(data)
	if err != nil {
		return fmt.Errorf("failed to create font stream: %w", err)
	}
	sd.Dict["Length1"] = types.Integer(len(data))
	if err := sd.Encode(); err != nil {
		return fmt.Errorf("failed to encode font stream: %w", err)
	}
	fileRef, err := d.ctx.IndRefForNewObject(*sd)
	if err != nil {
		return fmt.Errorf("failed to register font stream: %w", err)
	}

	bbox := font.BBox()
	descriptor := types.Dict{
		"Type":     types.Name("FontDescriptor"),
		"FontName": types.Name(font.PostScriptName()),
		"Flags":    types.Integer(32),
		"FontBBox": types.Array{
			types.Float(bbox[0]),
			types.Float(bbox[1]),
			types.Float(bbox[2]),
			types.Float(bbox[3]),
		},
		"ItalicAngle": types.Float(font.ItalicAngle()),
		"Ascent":      types.Float(font.Ascent()),
		"Descent":     types.Float(font.Descent()),
		"CapHeight":   types.Float(font.CapHeight()),
		"StemV":       types.Integer(70),
		"FontFile2":   *fileRef,
	}
	descRef, err := d.ctx.IndRefForNewObject(descriptor)
	if err != nil {
		return fmt.Errorf("failed to register font descriptor: %w", err)
	}

	widths := make(types.Array, 0, 256-32)
	for _, w := range font.Widths() {
		widths = append(widths, types.Integer(w))
	}

	fontDict := types.Dict{
		"Type":           types.Name("Font"),
		"Subtype":        types.Name("TrueType"),
		"BaseFont":       types.Name(font.PostScriptName()),
		"FirstChar":      types.Integer(32),
		"LastChar":       types.Integer(255),
		"Widths":         widths,
		"Encoding":       types.Name("WinAnsiEncoding"),
		"FontDescriptor": *descRef,
	}
	fontRef, err := d.ctx.IndRefForNewObject(fontDict)
	if err != nil {
		return fmt.Errorf("failed to register font: %w", err)
	}

	d.fontRef = fontRef
	return nil
}

// extGState returns an ExtGState carrying the given fill and stroke alpha,
// reusing one object per distinct opacity. Values are clamped to [0, 1].
func (d *Document) extGState(opacity float64) (*types.IndirectRef, error) {
	if ref, ok := d.gsRefs[opacity]; ok {
		return ref, nil
	}

	alpha := opacity
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}

	gs := types.Dict{
		"Type": types.Name("ExtGState"),
		"ca":   types.Float(alpha),
		"CA":   types.Float(alpha),
	}
	ref, err := d.ctx.IndRefForNewObject(gs)
	if err != nil {
		return nil, fmt.Errorf("failed to register graphics state: %w", err)
	}

	d.gsRefs[opacity] = ref
	return ref, nil
}
