package xml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Table represents a table in the document
type Table struct {
	Properties *TableProperties
	Grid       *TableGrid
	Rows       []TableRow
}

// isBodyElement implements the BodyElement interface
func (t Table) isBodyElement() {}

// MarshalXML implements custom XML marshaling for Table to ensure proper namespacing
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tbl")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if t.Properties != nil {
		if err := e.EncodeElement(t.Properties, xml.StartElement{Name: name("w:tblPr")}); err != nil {
			return err
		}
	}

	if t.Grid != nil {
		if err := e.EncodeElement(t.Grid, xml.StartElement{Name: name("w:tblGrid")}); err != nil {
			return err
		}
	}

	for i := range t.Rows {
		if err := e.EncodeElement(&t.Rows[i], xml.StartElement{Name: name("w:tr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableProperties represents table formatting properties
type TableProperties struct {
	Style   *Style
	Width   *Width
	Borders *TableBorders
	Layout  *TableLayout
	Look    *TableLook
}

// MarshalXML implements custom XML marshaling for TableProperties
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tblPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: name("w:tblStyle")}); err != nil {
			return err
		}
	}

	if p.Width != nil {
		if err := e.EncodeElement(p.Width, xml.StartElement{Name: name("w:tblW")}); err != nil {
			return err
		}
	}

	if p.Borders != nil {
		if err := e.EncodeElement(p.Borders, xml.StartElement{Name: name("w:tblBorders")}); err != nil {
			return err
		}
	}

	if p.Layout != nil {
		if err := emptyElement(e, "w:tblLayout", attr("w:type", p.Layout.Type)); err != nil {
			return err
		}
	}

	if p.Look != nil {
		if err := e.EncodeElement(p.Look, xml.StartElement{Name: name("w:tblLook")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableLayout represents table layout mode (fixed or autofit)
type TableLayout struct {
	Type string
}

// TableLook represents table style options
type TableLook struct {
	Val         string
	FirstRow    bool
	FirstColumn bool
	NoVBand     bool
}

// MarshalXML implements custom XML marshaling for TableLook
func (t TableLook) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tblLook")
	start.Attr = []xml.Attr{
		attr("w:val", t.Val),
		attr("w:firstRow", onOff(t.FirstRow)),
		attr("w:firstColumn", onOff(t.FirstColumn)),
		attr("w:noVBand", onOff(t.NoVBand)),
	}
	return e.EncodeElement(struct{}{}, start)
}

func onOff(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// TableGrid represents table column definitions
type TableGrid struct {
	Columns []GridColumn
}

// MarshalXML implements custom XML marshaling for TableGrid
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tblGrid")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, col := range g.Columns {
		if err := emptyElement(e, "w:gridCol", intAttr("w:w", int64(col.Width))); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GridColumn represents a table column
type GridColumn struct {
	Width int
}

// TableRow represents a row in a table
type TableRow struct {
	Cells []TableCell
}

// MarshalXML implements custom XML marshaling for TableRow to ensure proper namespacing
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for i := range r.Cells {
		if err := e.EncodeElement(&r.Cells[i], xml.StartElement{Name: name("w:tc")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell represents a cell in a table
type TableCell struct {
	Properties *TableCellProperties
	Paragraphs []Paragraph
}

// MarshalXML implements custom XML marshaling for TableCell.
// A cell must end with a paragraph, so an empty one is written if needed.
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tc")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if c.Properties != nil {
		if err := e.EncodeElement(c.Properties, xml.StartElement{Name: name("w:tcPr")}); err != nil {
			return err
		}
	}

	paragraphs := c.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = []Paragraph{{}}
	}
	for i := range paragraphs {
		if err := e.EncodeElement(&paragraphs[i], xml.StartElement{Name: name("w:p")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the concatenated text of all paragraphs in a cell
func (c *TableCell) GetText() string {
	var texts []string
	for i := range c.Paragraphs {
		if text := c.Paragraphs[i].GetText(); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n")
}

// TableCellProperties represents cell properties
type TableCellProperties struct {
	Width *Width
}

// MarshalXML implements custom XML marshaling for TableCellProperties
func (p TableCellProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tcPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Width != nil {
		if err := e.EncodeElement(p.Width, xml.StartElement{Name: name("w:tcW")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Width represents width settings (type is dxa, pct or auto)
type Width struct {
	Type string
	Val  int
}

// MarshalXML implements custom XML marshaling for Width
func (w Width) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		attr("w:w", strconv.Itoa(w.Val)),
		attr("w:type", w.Type),
	}
	return e.EncodeElement(struct{}{}, start)
}

// TableBorders represents borders for a table (w:tblBorders)
// This includes inner borders (insideH, insideV) in addition to outer borders
type TableBorders struct {
	Top     *BorderProperties
	Left    *BorderProperties
	Bottom  *BorderProperties
	Right   *BorderProperties
	InsideH *BorderProperties
	InsideV *BorderProperties
}

// SingleBorders returns borders with a thin single line on every edge.
func SingleBorders() *TableBorders {
	line := func() *BorderProperties {
		return &BorderProperties{Val: "single", Sz: "4", Space: "0", Color: "auto"}
	}
	return &TableBorders{
		Top: line(), Left: line(), Bottom: line(), Right: line(),
		InsideH: line(), InsideV: line(),
	}
}

// MarshalXML implements custom XML marshaling for TableBorders
func (b TableBorders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:tblBorders")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	// Order matters in Word XML
	edges := []struct {
		local  string
		border *BorderProperties
	}{
		{"w:top", b.Top},
		{"w:left", b.Left},
		{"w:bottom", b.Bottom},
		{"w:right", b.Right},
		{"w:insideH", b.InsideH},
		{"w:insideV", b.InsideV},
	}
	for _, edge := range edges {
		if edge.border == nil {
			continue
		}
		if err := e.EncodeElement(edge.border, xml.StartElement{Name: name(edge.local)}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// BorderProperties represents border styling
type BorderProperties struct {
	Val   string
	Sz    string
	Space string
	Color string
}

// MarshalXML implements custom XML marshaling for BorderProperties
func (b BorderProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{}

	if b.Val != "" {
		start.Attr = append(start.Attr, attr("w:val", b.Val))
	}
	if b.Sz != "" {
		start.Attr = append(start.Attr, attr("w:sz", b.Sz))
	}
	if b.Space != "" {
		start.Attr = append(start.Attr, attr("w:space", b.Space))
	}
	if b.Color != "" {
		start.Attr = append(start.Attr, attr("w:color", b.Color))
	}

	// Self-closing element
	return e.EncodeElement(struct{}{}, start)
}
