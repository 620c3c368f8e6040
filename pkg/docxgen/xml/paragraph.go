package xml

import (
	"encoding/xml"
	"strings"
)

// Paragraph represents a paragraph in the document
type Paragraph struct {
	Properties *ParagraphProperties
	Runs       []Run
}

// isBodyElement implements the BodyElement interface
func (p Paragraph) isBodyElement() {}

// MarshalXML implements custom XML marshaling for Paragraph to ensure proper namespacing
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:p")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Properties != nil && !p.Properties.isEmpty() {
		if err := e.EncodeElement(p.Properties, xml.StartElement{Name: name("w:pPr")}); err != nil {
			return err
		}
	}

	for i := range p.Runs {
		if err := e.EncodeElement(&p.Runs[i], xml.StartElement{Name: name("w:r")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the concatenated text of all runs in a paragraph
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for i := range p.Runs {
		sb.WriteString(p.Runs[i].GetText())
	}
	return sb.String()
}

// ParagraphProperties represents paragraph formatting properties.
// Elements are written in schema order: pStyle, numPr, ind, jc.
type ParagraphProperties struct {
	Style       *Style
	Numbering   *NumberingProperties
	Indentation *Indentation
	Alignment   *Alignment
}

func (p *ParagraphProperties) isEmpty() bool {
	return p.Style == nil && p.Numbering == nil && p.Indentation == nil && p.Alignment == nil
}

// MarshalXML implements custom XML marshaling for ParagraphProperties
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:pPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: name("w:pStyle")}); err != nil {
			return err
		}
	}

	if p.Numbering != nil {
		if err := e.EncodeElement(p.Numbering, xml.StartElement{Name: name("w:numPr")}); err != nil {
			return err
		}
	}

	if p.Indentation != nil {
		if err := e.EncodeElement(p.Indentation, xml.StartElement{Name: name("w:ind")}); err != nil {
			return err
		}
	}

	if p.Alignment != nil {
		if err := e.EncodeElement(p.Alignment, xml.StartElement{Name: name("w:jc")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// NumberingProperties links a paragraph to a numbering instance
type NumberingProperties struct {
	Level int
	NumID int
}

// MarshalXML implements custom XML marshaling for NumberingProperties
func (n NumberingProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:numPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := emptyElement(e, "w:ilvl", intAttr("w:val", int64(n.Level))); err != nil {
		return err
	}
	if err := emptyElement(e, "w:numId", intAttr("w:val", int64(n.NumID))); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Alignment represents text alignment (left, center, right, both)
type Alignment struct {
	Val string
}

// MarshalXML implements custom XML marshaling for Alignment
func (a Alignment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:jc")
	start.Attr = []xml.Attr{attr("w:val", a.Val)}
	return e.EncodeElement(struct{}{}, start)
}

// Indentation represents paragraph indentation in twentieths of a point
type Indentation struct {
	Left    int
	Hanging int
}

// MarshalXML implements custom XML marshaling for Indentation
func (i Indentation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:ind")
	start.Attr = []xml.Attr{intAttr("w:left", int64(i.Left))}
	if i.Hanging != 0 {
		start.Attr = append(start.Attr, intAttr("w:hanging", int64(i.Hanging)))
	}
	return e.EncodeElement(struct{}{}, start)
}
