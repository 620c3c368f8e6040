package xml

import (
	"encoding/xml"
	"strconv"
)

// EMUPerPixel converts 96 DPI pixels to English Metric Units.
const EMUPerPixel = 9525

// Drawing is an inline picture anchored in a run
type Drawing struct {
	// ID is the drawing object id, unique within the document.
	ID int
	// Name is the picture name shown by word processors.
	Name string
	// RelID is the relationship id of the media part.
	RelID string
	// Width and Height are the display extents in EMU.
	Width  int64
	Height int64
}

// NewInlinePicture returns a drawing displayed at widthPx x heightPx pixels.
func NewInlinePicture(id int, name, relID string, widthPx, heightPx uint) *Drawing {
	return &Drawing{
		ID:     id,
		Name:   name,
		RelID:  relID,
		Width:  int64(widthPx) * EMUPerPixel,
		Height: int64(heightPx) * EMUPerPixel,
	}
}

// MarshalXML writes w:drawing/wp:inline/a:graphic/pic:pic
func (d Drawing) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	cx := strconv.FormatInt(d.Width, 10)
	cy := strconv.FormatInt(d.Height, 10)
	id := strconv.Itoa(d.ID)

	w := &tokenWriter{e: e}
	w.open("w:drawing")
	w.open("wp:inline",
		attr("distT", "0"), attr("distB", "0"), attr("distL", "0"), attr("distR", "0"))
	w.empty("wp:extent", attr("cx", cx), attr("cy", cy))
	w.empty("wp:effectExtent", attr("l", "0"), attr("t", "0"), attr("r", "0"), attr("b", "0"))
	w.empty("wp:docPr", attr("id", id), attr("name", d.Name))
	w.open("wp:cNvGraphicFramePr")
	w.empty("a:graphicFrameLocks", attr("noChangeAspect", "1"))
	w.close("wp:cNvGraphicFramePr")

	w.open("a:graphic")
	w.open("a:graphicData", attr("uri", NamespacePic))
	w.open("pic:pic")

	w.open("pic:nvPicPr")
	w.empty("pic:cNvPr", attr("id", id), attr("name", d.Name))
	w.empty("pic:cNvPicPr")
	w.close("pic:nvPicPr")

	w.open("pic:blipFill")
	w.empty("a:blip", attr("r:embed", d.RelID))
	w.open("a:stretch")
	w.empty("a:fillRect")
	w.close("a:stretch")
	w.close("pic:blipFill")

	w.open("pic:spPr")
	w.open("a:xfrm")
	w.empty("a:off", attr("x", "0"), attr("y", "0"))
	w.empty("a:ext", attr("cx", cx), attr("cy", cy))
	w.close("a:xfrm")
	w.open("a:prstGeom", attr("prst", "rect"))
	w.empty("a:avLst")
	w.close("a:prstGeom")
	w.close("pic:spPr")

	w.close("pic:pic")
	w.close("a:graphicData")
	w.close("a:graphic")
	w.close("wp:inline")
	w.close("w:drawing")
	return w.err
}

// tokenWriter writes a flat sequence of tokens and keeps the first error.
type tokenWriter struct {
	e   *xml.Encoder
	err error
}

func (w *tokenWriter) open(local string, attrs ...xml.Attr) {
	if w.err != nil {
		return
	}
	w.err = w.e.EncodeToken(xml.StartElement{Name: name(local), Attr: attrs})
}

func (w *tokenWriter) close(local string) {
	if w.err != nil {
		return
	}
	w.err = w.e.EncodeToken(xml.EndElement{Name: name(local)})
}

func (w *tokenWriter) empty(local string, attrs ...xml.Attr) {
	w.open(local, attrs...)
	w.close(local)
}
