package packager

import (
	"archive/zip"
	"bytes"
	"io"
	"time"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/model"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/xml"
)

// Part names written to every package.
const (
	PartContentTypes  = "[Content_Types].xml"
	PartRootRels      = "_rels/.rels"
	PartCore          = "docProps/core.xml"
	PartApp           = "docProps/app.xml"
	PartDocument      = "word/document.xml"
	PartDocumentRels  = "word/_rels/document.xml.rels"
	PartStyles        = "word/styles.xml"
	PartNumbering     = "word/numbering.xml"
	PartSettings      = "word/settings.xml"
	mediaDir          = "media/"
	wordDir           = "word/"
	applicationName   = "docxgen"
	defaultPageMargin = DefaultMargin
)

// Part is a named entry of the package.
type Part struct {
	Name    string
	Content []byte
}

// Packager serializes documents. The zero value writes A4 pages with
// one-inch margins.
type Packager struct {
	Page PageSize
	// Margin is the page margin in twentieths of a point.
	Margin int
	// RenderUnderline writes w:u for runs that carry the underline flag.
	// Off by default: underline is recorded in the model but not rendered.
	RenderUnderline bool
	Title           string
	Creator         string
	// Now stamps docProps/core.xml. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Packager for the given page size.
func New(page PageSize) *Packager {
	return &Packager{Page: page, Margin: DefaultMargin}
}

// Serialize writes doc to w as a DOCX package. A nil doc is written as an
// empty document.
func (p *Packager) Serialize(doc *model.Document, w io.Writer) error {
	parts, err := p.Parts(doc)
	if err != nil {
		return err
	}

	// Assemble the archive in memory so a failure never leaves half a zip in w.
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	modified := p.now()
	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return partError(part.Name, err)
		}
		if _, err := fw.Write(part.Content); err != nil {
			return partError(part.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return partError("zip", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return partError("zip", err)
	}
	return nil
}

// Parts returns every part of the package in archive order.
func (p *Packager) Parts(doc *model.Document) ([]Part, error) {
	a := newAssembler(p)
	body := a.body(doc)

	documentXML, err := xml.Encode(&xml.Document{Body: body})
	if err != nil {
		return nil, partError(PartDocument, err)
	}

	parts := make([]Part, 0, 9+len(a.media))
	add := func(name string, v any) error {
		content, err := xml.Encode(v)
		if err != nil {
			return partError(name, err)
		}
		parts = append(parts, Part{Name: name, Content: content})
		return nil
	}

	if err := add(PartContentTypes, a.contentTypes()); err != nil {
		return nil, err
	}
	if err := add(PartRootRels, rootRelationships()); err != nil {
		return nil, err
	}
	created := p.now()
	if err := add(PartCore, &xml.CoreProperties{
		Title:    p.Title,
		Creator:  p.creator(),
		Created:  created,
		Modified: created,
	}); err != nil {
		return nil, err
	}
	if err := add(PartApp, &xml.AppProperties{Application: applicationName}); err != nil {
		return nil, err
	}
	parts = append(parts, Part{Name: PartDocument, Content: documentXML})
	if err := add(PartDocumentRels, a.rels); err != nil {
		return nil, err
	}
	if err := add(PartStyles, defaultStyles()); err != nil {
		return nil, err
	}
	if err := add(PartNumbering, defaultNumbering()); err != nil {
		return nil, err
	}
	if err := add(PartSettings, &xml.Settings{}); err != nil {
		return nil, err
	}

	return append(parts, a.media...), nil
}

func (p *Packager) page() PageSize {
	if p.Page.Width <= 0 || p.Page.Height <= 0 {
		return PageA4
	}
	return p.Page
}

func (p *Packager) margin() int {
	if p.Margin <= 0 {
		return defaultPageMargin
	}
	return p.Margin
}

func (p *Packager) creator() string {
	if p.Creator == "" {
		return applicationName
	}
	return p.Creator
}

func (p *Packager) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
