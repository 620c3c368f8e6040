package xml

import (
	"encoding/xml"
)

// Numbering represents the word/numbering.xml part
type Numbering struct {
	AbstractNums []AbstractNum
	Nums         []Num
}

// MarshalXML implements custom XML marshaling for Numbering.
// All abstract definitions must precede the num instances.
func (n Numbering) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:numbering")
	start.Attr = []xml.Attr{attr("xmlns:w", NamespaceW)}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for i := range n.AbstractNums {
		if err := e.EncodeElement(&n.AbstractNums[i], xml.StartElement{Name: name("w:abstractNum")}); err != nil {
			return err
		}
	}
	for i := range n.Nums {
		if err := e.EncodeElement(&n.Nums[i], xml.StartElement{Name: name("w:num")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// AbstractNum is a list definition shared by num instances
type AbstractNum struct {
	ID     int
	Levels []Level
}

// MarshalXML implements custom XML marshaling for AbstractNum
func (a AbstractNum) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:abstractNum")
	start.Attr = []xml.Attr{intAttr("w:abstractNumId", int64(a.ID))}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := valElement(e, "w:multiLevelType", "hybridMultilevel"); err != nil {
		return err
	}
	for i := range a.Levels {
		if err := e.EncodeElement(&a.Levels[i], xml.StartElement{Name: name("w:lvl")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Level is one indent level of a list definition
type Level struct {
	Ilvl   int
	Start  int
	Format string // bullet, decimal, lowerLetter, ...
	Text   string // level text such as "%1." or a bullet glyph
	Indent Indentation
	Font   string // optional symbol font for bullets
}

// MarshalXML implements custom XML marshaling for Level
func (l Level) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:lvl")
	start.Attr = []xml.Attr{intAttr("w:ilvl", int64(l.Ilvl))}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := emptyElement(e, "w:start", intAttr("w:val", int64(l.Start))); err != nil {
		return err
	}
	if err := valElement(e, "w:numFmt", l.Format); err != nil {
		return err
	}
	if err := valElement(e, "w:lvlText", l.Text); err != nil {
		return err
	}
	if err := valElement(e, "w:lvlJc", "left"); err != nil {
		return err
	}

	if err := e.EncodeToken(xml.StartElement{Name: name("w:pPr")}); err != nil {
		return err
	}
	if err := e.EncodeElement(l.Indent, xml.StartElement{Name: name("w:ind")}); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: name("w:pPr")}); err != nil {
		return err
	}

	if l.Font != "" {
		if err := e.EncodeToken(xml.StartElement{Name: name("w:rPr")}); err != nil {
			return err
		}
		if err := emptyElement(e, "w:rFonts",
			attr("w:ascii", l.Font), attr("w:hAnsi", l.Font), attr("w:hint", "default"),
		); err != nil {
			return err
		}
		if err := e.EncodeToken(xml.EndElement{Name: name("w:rPr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Num is a numbering instance referenced from paragraphs by NumID
type Num struct {
	NumID         int
	AbstractNumID int
}

// MarshalXML implements custom XML marshaling for Num
func (n Num) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:num")
	start.Attr = []xml.Attr{intAttr("w:numId", int64(n.NumID))}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := emptyElement(e, "w:abstractNumId", intAttr("w:val", int64(n.AbstractNumID))); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
