package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/phambaophuc/pdf-watermarking/internal/services/fonts"
	"github.com/phambaophuc/pdf-watermarking/internal/services/watermark"
)

// Page is one page of an open Document.
type Page struct {
	doc    *Document
	number int
	dict   types.Dict
	inh    *model.InheritedPageAttrs
}

// Page returns the page with the given 1-based number.
func (d *Document) Page(number int) (*Page, error) {
	dict, _, inh, err := d.ctx.PageDict(number, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", number, err)
	}
	if dict == nil {
		return nil, fmt.Errorf("page %d has no dictionary", number)
	}
	if inh.MediaBox == nil && inh.CropBox == nil {
		return nil, fmt.Errorf("page %d has no media box", number)
	}

	return &Page{doc: d, number: number, dict: dict, inh: inh}, nil
}

// Size returns the page's media box dimensions in points. Page rotation is
// not applied; coordinates stay in the pre-rotation space.
func (p *Page) Size() (width, height float64) {
	box := p.inh.MediaBox
	if box == nil {
		box = p.inh.CropBox
	}
	return box.Width(), box.Height()
}

// DrawText appends the given lines to the page in a single overlay. The
// original content is wrapped in q/Q so the overlay starts from a clean
// graphics state. EmbedFont must have been called first.
func (p *Page) DrawText(texts ...watermark.Text) error {
	if len(texts) == 0 {
		return nil
	}
	if p.doc.fontRef == nil {
		return errors.New("no watermark font embedded")
	}

	resources, err := p.localResources()
	if err != nil {
		return err
	}
	fontRes, err := p.localSubDict(resources, "Font")
	if err != nil {
		return err
	}
	gsRes, err := p.localSubDict(resources, "ExtGState")
	if err != nil {
		return err
	}

	fontName := uniqueName(fontRes, "Fwm")
	fontRes[fontName] = *p.doc.fontRef

	var ops bytes.Buffer
	gsNames := make(map[float64]string)
	for _, text := range texts {
		gsName, ok := gsNames[text.Opacity]
		if !ok {
			ref, err := p.doc.extGState(text.Opacity)
			if err != nil {
				return err
			}
			gsName = uniqueName(gsRes, "GSwm")
			gsRes[gsName] = *ref
			gsNames[text.Opacity] = gsName
		}
		writeTextOps(&ops, fontName, gsName, text)
	}

	return p.appendContent(ops.Bytes())
}

// localResources makes the page's Resources entry a page-local direct dict,
// copying inherited or shared entries so other pages stay untouched.
func (p *Page) localResources() (types.Dict, error) {
	src := p.inh.Resources
	if obj, found := p.dict.Find("Resources"); found {
		dict, err := p.doc.ctx.DereferenceDict(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve page resources: %w", err)
		}
		src = dict
	}

	out := types.Dict{}
	for k, v := range src {
		out[k] = v
	}
	p.dict["Resources"] = out
	return out, nil
}

func (p *Page) localSubDict(resources types.Dict, key string) (types.Dict, error) {
	out := types.Dict{}
	if obj, found := resources.Find(key); found {
		src, err := p.doc.ctx.DereferenceDict(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s resources: %w", key, err)
		}
		for k, v := range src {
			out[k] = v
		}
	}
	resources[key] = out
	return out, nil
}

// appendContent rewrites the page's content as the original stream wrapped
// in q/Q followed by ops.
func (p *Page) appendContent(ops []byte) error {
	var buf bytes.Buffer

	content, err := p.doc.ctx.PageContent(p.dict)
	if err != nil && !errors.Is(err, model.ErrNoContent) {
		return fmt.Errorf("failed to read page content: %w", err)
	}
	if len(content) > 0 {
		buf.WriteString("q\n")
		buf.Write(content)
		buf.WriteString("\nQ\n")
	}
	buf.Write(ops)

	sd, err := p.doc.ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to create content stream: %w", err)
	}
	if err := sd.Encode(); err != nil {
		return fmt.Errorf("failed to encode content stream: %w", err)
	}
	ref, err := p.doc.ctx.IndRefForNewObject(*sd)
	if err != nil {
		return fmt.Errorf("failed to register content stream: %w", err)
	}

	p.dict["Contents"] = *ref
	return nil
}

func uniqueName(dict types.Dict, prefix string) string {
	if _, found := dict.Find(prefix); !found {
		return prefix
	}
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s%d", prefix, i)
		if _, found := dict.Find(name); !found {
			return name
		}
	}
}

func writeTextOps(buf *bytes.Buffer, fontName, gsName string, text watermark.Text) {
	rad := text.Rotate * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	fmt.Fprintf(buf, "q /%s gs BT /%s %.2f Tf %.5f %.5f %.5f %.5f %.5f %.5f Tm %.2f %.2f %.2f rg (",
		gsName, fontName, text.Size,
		cos, sin, -sin, cos, text.X, text.Y,
		text.Color.R, text.Color.G, text.Color.B)
	buf.Write(escapeText(text.Value))
	buf.WriteString(") Tj ET Q\n")
}

// escapeText encodes a string as a literal PDF string operand over the
// WinAnsi code page.
func escapeText(s string) []byte {
	encoded := fonts.Encode(s)
	out := make([]byte, 0, len(encoded)+4)
	for _, b := range encoded {
		switch b {
		case '(', ')', '\\':
			out = append(out, '\\', b)
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, b)
		}
	}
	return out
}
