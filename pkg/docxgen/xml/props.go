package xml

import (
	"encoding/xml"
	"strconv"
	"time"
)

// CoreProperties represents docProps/core.xml
type CoreProperties struct {
	Title    string
	Creator  string
	Created  time.Time
	Modified time.Time
}

// MarshalXML implements custom XML marshaling for CoreProperties
func (c CoreProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	w := &tokenWriter{e: e}
	w.open("cp:coreProperties",
		attr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"),
		attr("xmlns:dc", "http://purl.org/dc/elements/1.1/"),
		attr("xmlns:dcterms", "http://purl.org/dc/terms/"),
		attr("xmlns:dcmitype", "http://purl.org/dc/dcmitype/"),
		attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"),
	)
	w.text("dc:title", c.Title)
	w.text("dc:creator", c.Creator)
	w.text("cp:lastModifiedBy", c.Creator)
	w.text("cp:revision", "1")
	if !c.Created.IsZero() {
		w.text("dcterms:created", c.Created.UTC().Format(time.RFC3339), attr("xsi:type", "dcterms:W3CDTF"))
	}
	if !c.Modified.IsZero() {
		w.text("dcterms:modified", c.Modified.UTC().Format(time.RFC3339), attr("xsi:type", "dcterms:W3CDTF"))
	}
	w.close("cp:coreProperties")
	return w.err
}

// AppProperties represents docProps/app.xml
type AppProperties struct {
	Application string
	Pages       int
}

// MarshalXML implements custom XML marshaling for AppProperties
func (a AppProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	pages := a.Pages
	if pages < 1 {
		pages = 1
	}
	w := &tokenWriter{e: e}
	w.open("Properties",
		attr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"),
		attr("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"),
	)
	w.text("Application", a.Application)
	w.text("DocSecurity", "0")
	w.text("Pages", strconv.Itoa(pages))
	w.text("ScaleCrop", "false")
	w.text("LinksUpToDate", "false")
	w.text("SharedDoc", "false")
	w.text("HyperlinksChanged", "false")
	w.close("Properties")
	return w.err
}

func (w *tokenWriter) text(local, content string, attrs ...xml.Attr) {
	w.open(local, attrs...)
	if w.err == nil && content != "" {
		w.err = w.e.EncodeToken(xml.CharData(content))
	}
	w.close(local)
}
