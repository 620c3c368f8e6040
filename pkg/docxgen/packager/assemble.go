package packager

import (
	"bytes"
	"fmt"
	"image"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/imaging"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/model"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/xml"
)

const (
	contentTypeMain      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	contentTypeStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	contentTypeNumbering = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	contentTypeSettings  = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	contentTypeCore      = "application/vnd.openxmlformats-package.core-properties+xml"
	contentTypeApp       = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// assembler converts one document and collects the media and
// relationships it references.
type assembler struct {
	p     *Packager
	rels  *xml.Relationships
	media []Part
	// formats holds the media extensions in first-use order.
	formats []imaging.Format
}

func newAssembler(p *Packager) *assembler {
	rels := xml.NewRelationships()
	rels.Add(xml.RelTypeStyles, "styles.xml")
	rels.Add(xml.RelTypeNumbering, "numbering.xml")
	rels.Add(xml.RelTypeSettings, "settings.xml")
	return &assembler{p: p, rels: rels}
}

func (a *assembler) body(doc *model.Document) *xml.Body {
	page := a.p.page()
	body := &xml.Body{
		SectionProperties: &xml.SectionProperties{
			PageWidth:  page.Width,
			PageHeight: page.Height,
			Margin:     a.p.margin(),
		},
	}

	for _, block := range doc.Blocks() {
		switch b := block.(type) {
		case *model.Paragraph:
			body.Elements = append(body.Elements, a.paragraph(b))
		case *model.Table:
			if b.IsDegenerate() {
				continue
			}
			body.Elements = append(body.Elements, a.table(b))
		}
	}
	return body
}

func (a *assembler) paragraph(p *model.Paragraph) *xml.Paragraph {
	out := &xml.Paragraph{}

	props := &xml.ParagraphProperties{}
	if p.Numbering != nil {
		props.Style = &xml.Style{Val: styleListParagraph}
		props.Numbering = &xml.NumberingProperties{Level: p.Numbering.Level, NumID: p.Numbering.ListID}
	}
	if p.HasAlignment {
		props.Alignment = &xml.Alignment{Val: justification(p.Alignment)}
	}
	out.Properties = props

	for _, r := range p.Runs {
		out.Runs = append(out.Runs, a.run(r))
	}
	return out
}

// justification maps an alignment to its w:jc value.
func justification(al model.Alignment) string {
	switch al {
	case model.AlignCenter:
		return "center"
	case model.AlignRight:
		return "right"
	case model.AlignJustify:
		return "both"
	default:
		return "left"
	}
}

func (a *assembler) run(r model.Run) xml.Run {
	if r.IsImage() {
		return xml.Run{Drawing: a.picture(r.Image)}
	}

	out := xml.Run{Text: &xml.Text{Content: r.Text}}
	props := &xml.RunProperties{}
	if r.Bold {
		props.Bold = &xml.Empty{}
	}
	if r.Italic {
		props.Italic = &xml.Empty{}
	}
	if r.Color != "" {
		props.Color = &xml.Color{Val: r.Color}
	}
	if r.Size > 0 {
		props.Size = &xml.Size{Val: int(r.Size)}
		props.SizeCs = &xml.Size{Val: int(r.Size)}
	}
	if r.Underline && a.p.RenderUnderline {
		props.Underline = &xml.UnderlineStyle{Val: "single"}
	}
	out.Properties = props
	return out
}

// picture stores img as word/media/imageN.<ext> and returns the drawing
// that references it.
func (a *assembler) picture(img *model.Image) *xml.Drawing {
	n := len(a.media) + 1
	format, ok := imaging.FormatFor(img.ContentType)
	if !ok {
		format = imaging.DetectFormat(img.Data)
	}
	target := fmt.Sprintf("%simage%d.%s", mediaDir, n, format.Extension)

	relID := a.rels.Add(xml.RelTypeImage, target)
	a.media = append(a.media, Part{Name: wordDir + target, Content: img.Data})
	a.addFormat(format)

	w, h := displaySize(img)
	return xml.NewInlinePicture(n, fmt.Sprintf("Picture %d", n), relID, w, h)
}

func (a *assembler) addFormat(f imaging.Format) {
	for _, known := range a.formats {
		if known.Extension == f.Extension {
			return
		}
	}
	a.formats = append(a.formats, f)
}

// displaySize returns the declared size. A zero dimension is taken from the
// encoded pixels, scaled to keep the aspect ratio when the other is set.
func displaySize(img *model.Image) (uint, uint) {
	w, h := img.Width, img.Height
	if w > 0 && h > 0 {
		return w, h
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return max(w, 1), max(h, 1)
	}
	pw, ph := uint(cfg.Width), uint(cfg.Height)
	switch {
	case w == 0 && h == 0:
		return pw, ph
	case w == 0:
		return max(h*pw/ph, 1), h
	default:
		return w, max(w*ph/pw, 1)
	}
}

func (a *assembler) table(t *model.Table) *xml.Table {
	cols := t.ColumnCount()
	page := a.p.page()
	textWidth := page.Width - 2*a.p.margin()
	colWidth := max(textWidth/cols, 1)

	out := &xml.Table{
		Properties: &xml.TableProperties{
			Style:   &xml.Style{Val: styleTableGrid},
			Width:   &xml.Width{Type: "dxa", Val: colWidth * cols},
			Borders: xml.SingleBorders(),
			Layout:  &xml.TableLayout{Type: "fixed"},
			Look:    &xml.TableLook{Val: "04A0", FirstRow: true, FirstColumn: true, NoVBand: true},
		},
		Grid: &xml.TableGrid{},
	}
	for i := 0; i < cols; i++ {
		out.Grid.Columns = append(out.Grid.Columns, xml.GridColumn{Width: colWidth})
	}

	for _, row := range t.Rows {
		tr := xml.TableRow{}
		for _, cell := range row {
			tc := xml.TableCell{
				Properties: &xml.TableCellProperties{Width: &xml.Width{Type: "dxa", Val: colWidth}},
			}
			for i := range cell.Paragraphs {
				tc.Paragraphs = append(tc.Paragraphs, *a.paragraph(&cell.Paragraphs[i]))
			}
			tr.Cells = append(tr.Cells, tc)
		}
		out.Rows = append(out.Rows, tr)
	}
	return out
}

func (a *assembler) contentTypes() *xml.ContentTypes {
	ct := xml.NewContentTypes()
	for _, f := range a.formats {
		ct.AddDefault(f.Extension, f.ContentType)
	}
	ct.AddOverride("/"+PartDocument, contentTypeMain)
	ct.AddOverride("/"+PartStyles, contentTypeStyles)
	ct.AddOverride("/"+PartNumbering, contentTypeNumbering)
	ct.AddOverride("/"+PartSettings, contentTypeSettings)
	ct.AddOverride("/"+PartCore, contentTypeCore)
	ct.AddOverride("/"+PartApp, contentTypeApp)
	return ct
}

func rootRelationships() *xml.Relationships {
	rels := xml.NewRelationships()
	rels.Add(xml.RelTypeOfficeDocument, PartDocument)
	rels.Add(xml.RelTypeCoreProperties, PartCore)
	rels.Add(xml.RelTypeExtended, PartApp)
	return rels
}
