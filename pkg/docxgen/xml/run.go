package xml

import (
	"encoding/xml"
	"strconv"
)

// Run represents a run of text or a picture with common properties
type Run struct {
	Properties *RunProperties
	Text       *Text
	Drawing    *Drawing
}

// MarshalXML implements custom XML marshaling for Run to ensure proper namespacing
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:r")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties != nil && !r.Properties.isEmpty() {
		if err := e.EncodeElement(r.Properties, xml.StartElement{Name: name("w:rPr")}); err != nil {
			return err
		}
	}

	if r.Text != nil {
		if err := e.EncodeElement(r.Text, xml.StartElement{Name: name("w:t")}); err != nil {
			return err
		}
	}

	if r.Drawing != nil {
		if err := e.EncodeElement(r.Drawing, xml.StartElement{Name: name("w:drawing")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the text content of a run
func (r *Run) GetText() string {
	if r.Text == nil {
		return ""
	}
	return r.Text.Content
}

// RunProperties represents run formatting properties.
// Elements are written in schema order: b, i, color, sz, szCs, u.
type RunProperties struct {
	Bold      *Empty
	Italic    *Empty
	Color     *Color
	Size      *Size
	SizeCs    *Size // Complex script size
	Underline *UnderlineStyle
}

func (p *RunProperties) isEmpty() bool {
	return p.Bold == nil && p.Italic == nil && p.Color == nil &&
		p.Size == nil && p.SizeCs == nil && p.Underline == nil
}

// MarshalXML implements custom XML marshaling for RunProperties
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:rPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Bold != nil {
		if err := emptyElement(e, "w:b"); err != nil {
			return err
		}
	}
	if p.Italic != nil {
		if err := emptyElement(e, "w:i"); err != nil {
			return err
		}
	}
	if p.Color != nil {
		if err := valElement(e, "w:color", p.Color.Val); err != nil {
			return err
		}
	}
	if p.Size != nil {
		if err := e.EncodeElement(p.Size, xml.StartElement{Name: name("w:sz")}); err != nil {
			return err
		}
	}
	if p.SizeCs != nil {
		if err := e.EncodeElement(p.SizeCs, xml.StartElement{Name: name("w:szCs")}); err != nil {
			return err
		}
	}
	if p.Underline != nil {
		if err := valElement(e, "w:u", p.Underline.Val); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text represents text content
type Text struct {
	Content string
}

// MarshalXML implements custom XML marshaling for Text to ensure proper namespacing.
// Whitespace is always preserved.
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:t")
	start.Attr = []xml.Attr{{
		Name:  xml.Name{Space: "http://www.w3.org/XML/1998/namespace", Local: "space"},
		Value: "preserve",
	}}
	return e.EncodeElement(t.Content, start)
}

// Color represents text color
type Color struct {
	Val string
}

// Size represents font size in half-points
type Size struct {
	Val int
}

// MarshalXML implements custom XML marshaling for Size
func (s Size) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{attr("w:val", strconv.Itoa(s.Val))}
	return e.EncodeElement(struct{}{}, start)
}

// UnderlineStyle represents underline formatting
type UnderlineStyle struct {
	Val string
}
