package model

// Run is the smallest unit of styled content. It carries either text with
// formatting or a single image, never both.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	// Underline is recorded but not rendered by the packager.
	Underline bool
	// Size is the font size in half-points. Zero means unset.
	Size uint
	// Color is a hex RGB code such as "FF0000". Empty means unset.
	Color string
	Image *Image
}

// TextRun returns an unstyled text run.
func TextRun(text string) Run {
	return Run{Text: text}
}

// ImageRun returns a run that embeds img.
func ImageRun(img *Image) Run {
	return Run{Image: img}
}

// IsImage reports whether the run carries an image.
func (r Run) IsImage() bool {
	return r.Image != nil
}

// Image is an embedded picture. Width and Height are the display size in
// pixels at 96 DPI and are not checked against the encoded pixel data.
type Image struct {
	Data   []byte
	Width  uint
	Height uint
	// ContentType is the media type of Data. Empty means it is sniffed
	// from Data when the package is written.
	ContentType string
}
