package imaging

import (
	"bytes"
	"image"
	"net/http"
	"strings"
)

// Format is a media type known to the packager.
type Format struct {
	Extension   string
	ContentType string
}

var formats = map[string]Format{
	"png":  {Extension: "png", ContentType: "image/png"},
	"jpeg": {Extension: "jpeg", ContentType: "image/jpeg"},
	"gif":  {Extension: "gif", ContentType: "image/gif"},
	"bmp":  {Extension: "bmp", ContentType: "image/bmp"},
	"tiff": {Extension: "tiff", ContentType: "image/tiff"},
	"webp": {Extension: "webp", ContentType: "image/webp"},
}

// FormatFor returns the known format with the given content type.
func FormatFor(contentType string) (Format, bool) {
	for _, f := range formats {
		if strings.EqualFold(f.ContentType, contentType) {
			return f, true
		}
	}
	return Format{}, false
}

// DetectFormat sniffs the media type of data. Unknown data is reported as PNG,
// which is what a word processor tries first anyway.
func DetectFormat(data []byte) Format {
	if _, name, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		if f, ok := formats[name]; ok {
			return f
		}
	}

	ct := http.DetectContentType(data)
	if name, ok := strings.CutPrefix(ct, "image/"); ok {
		if name == "x-icon" || name == "svg+xml" {
			return formats["png"]
		}
		if f, ok := formats[name]; ok {
			return f
		}
	}
	return formats["png"]
}
