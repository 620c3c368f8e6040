package xml

import (
	"bytes"
	"encoding/xml"
)

// Document represents the word/document.xml part
type Document struct {
	Body *Body
}

// MarshalXML writes the w:document root with every namespace the body may use
func (doc Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:document")
	start.Attr = []xml.Attr{
		attr("xmlns:w", NamespaceW),
		attr("xmlns:r", NamespaceR),
		attr("xmlns:wp", NamespaceWP),
		attr("xmlns:a", NamespaceA),
		attr("xmlns:pic", NamespacePic),
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	body := doc.Body
	if body == nil {
		body = &Body{}
	}
	if err := e.EncodeElement(body, xml.StartElement{Name: name("w:body")}); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Bytes encodes the document with the XML declaration.
func (doc *Document) Bytes() ([]byte, error) {
	return Encode(doc)
}

// Body represents the document body
type Body struct {
	// Elements maintains the order of all body elements
	Elements []BodyElement
	// SectionProperties at the end of the body (critical for Word compatibility)
	SectionProperties *SectionProperties
}

// MarshalXML implements custom XML marshaling to preserve element order
func (b Body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:body")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, elem := range b.Elements {
		switch el := elem.(type) {
		case *Paragraph:
			if err := e.EncodeElement(el, xml.StartElement{Name: name("w:p")}); err != nil {
				return err
			}
		case *Table:
			if err := e.EncodeElement(el, xml.StartElement{Name: name("w:tbl")}); err != nil {
				return err
			}
		}
	}

	if b.SectionProperties != nil {
		if err := e.EncodeElement(b.SectionProperties, xml.StartElement{Name: name("w:sectPr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// SectionProperties sets the page geometry. Sizes are in twentieths of a point.
type SectionProperties struct {
	PageWidth  int
	PageHeight int
	Margin     int
}

// MarshalXML implements custom XML marshaling for SectionProperties
func (s SectionProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:sectPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := emptyElement(e, "w:pgSz",
		intAttr("w:w", int64(s.PageWidth)),
		intAttr("w:h", int64(s.PageHeight)),
	); err != nil {
		return err
	}

	m := int64(s.Margin)
	if err := emptyElement(e, "w:pgMar",
		intAttr("w:top", m),
		intAttr("w:right", m),
		intAttr("w:bottom", m),
		intAttr("w:left", m),
		intAttr("w:header", 720),
		intAttr("w:footer", 720),
		intAttr("w:gutter", 0),
	); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Encode marshals v after the standard XML declaration.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
