package xml

import (
	"encoding/xml"
	"strconv"
)

// Namespace URIs used by the main document part.
const (
	NamespaceW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NamespaceWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	NamespaceA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NamespacePic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
)

// Header is the XML declaration written at the top of every part.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// BodyElement represents any element that can appear in a document body
type BodyElement interface {
	isBodyElement()
}

// Empty represents an empty element (used for boolean properties)
type Empty struct{}

// Style represents a style reference
type Style struct {
	Val string `xml:"val,attr"`
}

// MarshalXML implements custom XML marshaling for Style
func (s Style) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	// The element name depends on the context (pStyle, tblStyle, etc.)
	// so we keep the provided name
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: s.Val},
	}
	return e.EncodeElement(struct{}{}, start)
}

func name(local string) xml.Name {
	return xml.Name{Local: local}
}

func attr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: local}, Value: value}
}

func intAttr(local string, value int64) xml.Attr {
	return attr(local, strconv.FormatInt(value, 10))
}

// emptyElement writes <local attrs.../>.
func emptyElement(e *xml.Encoder, local string, attrs ...xml.Attr) error {
	return e.EncodeElement(struct{}{}, xml.StartElement{Name: name(local), Attr: attrs})
}

// valElement writes <local w:val="val"/>.
func valElement(e *xml.Encoder, local, val string) error {
	return emptyElement(e, local, attr("w:val", val))
}
