package xml

import (
	"encoding/xml"
)

// Styles represents the word/styles.xml part
type Styles struct {
	// DefaultFont and DefaultSize (half-points) seed w:docDefaults
	DefaultFont string
	DefaultSize int
	Styles      []StyleDefinition
}

// StyleDefinition is a single w:style entry
type StyleDefinition struct {
	Type      string // paragraph, character, table, numbering
	ID        string
	Name      string
	BasedOn   string
	IsDefault bool
	Paragraph *ParagraphProperties
	Run       *RunProperties
	Table     *TableProperties
}

// MarshalXML implements custom XML marshaling for Styles
func (s Styles) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:styles")
	start.Attr = []xml.Attr{attr("xmlns:w", NamespaceW)}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	w := &tokenWriter{e: e}
	w.open("w:docDefaults")
	w.open("w:rPrDefault")
	w.open("w:rPr")
	if s.DefaultFont != "" {
		w.empty("w:rFonts",
			attr("w:ascii", s.DefaultFont),
			attr("w:hAnsi", s.DefaultFont),
			attr("w:eastAsia", s.DefaultFont),
			attr("w:cs", s.DefaultFont))
	}
	if s.DefaultSize > 0 {
		w.empty("w:sz", intAttr("w:val", int64(s.DefaultSize)))
		w.empty("w:szCs", intAttr("w:val", int64(s.DefaultSize)))
	}
	w.close("w:rPr")
	w.close("w:rPrDefault")
	w.open("w:pPrDefault")
	w.open("w:pPr")
	w.empty("w:spacing", attr("w:after", "160"), attr("w:line", "259"), attr("w:lineRule", "auto"))
	w.close("w:pPr")
	w.close("w:pPrDefault")
	w.close("w:docDefaults")
	if w.err != nil {
		return w.err
	}

	for i := range s.Styles {
		if err := e.EncodeElement(&s.Styles[i], xml.StartElement{Name: name("w:style")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// MarshalXML implements custom XML marshaling for StyleDefinition
func (s StyleDefinition) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:style")
	start.Attr = []xml.Attr{attr("w:type", s.Type)}
	if s.IsDefault {
		start.Attr = append(start.Attr, attr("w:default", "1"))
	}
	start.Attr = append(start.Attr, attr("w:styleId", s.ID))
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := valElement(e, "w:name", s.Name); err != nil {
		return err
	}
	if s.BasedOn != "" {
		if err := valElement(e, "w:basedOn", s.BasedOn); err != nil {
			return err
		}
	}
	if err := emptyElement(e, "w:qFormat"); err != nil {
		return err
	}

	if s.Paragraph != nil && !s.Paragraph.isEmpty() {
		if err := e.EncodeElement(s.Paragraph, xml.StartElement{Name: name("w:pPr")}); err != nil {
			return err
		}
	}
	if s.Run != nil && !s.Run.isEmpty() {
		if err := e.EncodeElement(s.Run, xml.StartElement{Name: name("w:rPr")}); err != nil {
			return err
		}
	}
	if s.Table != nil {
		if err := e.EncodeElement(s.Table, xml.StartElement{Name: name("w:tblPr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Settings represents the word/settings.xml part
type Settings struct {
	DefaultTabStop int
}

// MarshalXML implements custom XML marshaling for Settings
func (s Settings) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = name("w:settings")
	start.Attr = []xml.Attr{attr("xmlns:w", NamespaceW)}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	tab := s.DefaultTabStop
	if tab <= 0 {
		tab = 720
	}
	if err := emptyElement(e, "w:defaultTabStop", intAttr("w:val", int64(tab))); err != nil {
		return err
	}
	if err := valElement(e, "w:characterSpacingControl", "doNotCompress"); err != nil {
		return err
	}
	if err := emptyElement(e, "w:compat"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
