package docxgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/imaging"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/model"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/packager"
)

// Serializer turns a finished document into a package.
type Serializer interface {
	Serialize(doc *model.Document, w io.Writer) error
}

// Option configures a Builder.
type Option func(*Builder)

// WithConfig sets the configuration. Unset fields take their defaults.
func WithConfig(config *Config) Option {
	return func(b *Builder) {
		b.config = NewConfigWithDefaults(config)
	}
}

// WithLogger sets the logger used for operation and failure lines.
func WithLogger(logger *Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithSerializer replaces the default DOCX packager.
func WithSerializer(s Serializer) Option {
	return func(b *Builder) {
		b.serializer = s
	}
}

// WithIngestor replaces the image ingestor built from the configuration.
func WithIngestor(in *imaging.Ingestor) Option {
	return func(b *Builder) {
		b.ingestor = in
	}
}

// Builder accumulates a document one block at a time.
//
// A Builder is not safe for concurrent use. Every append replaces the held
// document with a new one, so a failed operation never leaves a partially
// added block behind.
type Builder struct {
	doc        *model.Document
	config     *Config
	logger     *Logger
	serializer Serializer
	ingestor   *imaging.Ingestor
}

// log returns the logger set with WithLogger, or the process-wide logger at
// the time of the call.
func (b *Builder) log() *Logger {
	if b.logger != nil {
		return b.logger
	}
	return GetLogger()
}

// New returns a Builder holding an empty document.
func New(opts ...Option) *Builder {
	b := &Builder{doc: model.NewDocument()}
	for _, opt := range opts {
		opt(b)
	}

	if b.config == nil {
		b.config = GetGlobalConfig()
	}
	if b.ingestor == nil {
		b.ingestor = &imaging.Ingestor{
			Threshold: b.config.CompressionThreshold,
			Quality:   b.config.JPEGQuality,
		}
	}
	if b.serializer == nil {
		p := packager.New(b.config.Page())
		p.RenderUnderline = b.config.RenderUnderline
		b.serializer = p
	}
	return b
}

// Len returns the number of blocks in the current document.
func (b *Builder) Len() int {
	return b.doc.Len()
}

// Document returns the current document. Later appends do not affect it.
func (b *Builder) Document() *model.Document {
	return b.doc
}

func (b *Builder) append(block model.Block) {
	b.doc = b.doc.Append(block)
}

// AddText appends a paragraph holding one unstyled run.
func (b *Builder) AddText(text string) bool {
	b.log().Debug("add text: %q", text)
	b.append(model.NewParagraph(model.TextRun(text)))
	return true
}

// AddFormattedText appends a paragraph holding one styled run. fontSize is in
// points, 0 leaves the size unset, and an empty color leaves the color unset.
// The underline flag is recorded but only rendered when RenderUnderline is on.
func (b *Builder) AddFormattedText(text string, bold, italic, underline bool, fontSize uint, color string) bool {
	b.log().WithFields(Fields{
		"bold":      bold,
		"italic":    italic,
		"underline": underline,
		"size":      fontSize,
		"color":     color,
	}).Debug("add formatted text: %q", text)

	b.append(model.NewParagraph(model.Run{
		Text:      text,
		Bold:      bold,
		Italic:    italic,
		Underline: underline,
		Size:      fontSize * 2,
		Color:     color,
	}))
	return true
}

// AddParagraphWithAlignment appends a paragraph aligned by name. Names other
// than center, right and justify (in any case) align left.
func (b *Builder) AddParagraphWithAlignment(text, alignment string) bool {
	al := model.ParseAlignment(alignment)
	b.log().Debug("add paragraph: %q aligned %s", text, al)
	b.append(model.NewParagraph(model.TextRun(text)).WithAlignment(al))
	return true
}

// AddBulletItem appends a paragraph to the bullet list.
func (b *Builder) AddBulletItem(text string) bool {
	b.log().Debug("add bullet item: %q", text)
	b.append(model.NewParagraph(model.TextRun(text)).WithNumbering(model.BulletList, 0))
	return true
}

// AddNumberedItem appends a paragraph to the numbered list.
func (b *Builder) AddNumberedItem(text string) bool {
	b.log().Debug("add numbered item: %q", text)
	b.append(model.NewParagraph(model.TextRun(text)).WithNumbering(model.NumberedList, 0))
	return true
}

// AddTable appends a rows x cols table of empty cells. A zero dimension is
// accepted and yields an empty table.
func (b *Builder) AddTable(rows, cols uint) bool {
	b.log().Debug("add table: %dx%d", rows, cols)
	b.append(model.NewTable(rows, cols))
	return true
}

// AddCustomTable appends a table filled from a JSON array of rows, each an
// array of cell strings. It returns false and leaves the document unchanged
// when the JSON is malformed.
func (b *Builder) AddCustomTable(data string) bool {
	if err := b.AppendCustomTable(data); err != nil {
		b.log().WithField("error", err).Error("failed to add custom table")
		return false
	}
	return true
}

// AppendCustomTable is AddCustomTable with the failure returned.
func (b *Builder) AppendCustomTable(data string) error {
	var rows [][]string
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return NewDocumentError("parse table data", "", err)
	}
	b.log().Debug("add custom table: %d rows", len(rows))
	b.append(model.NewTableFromText(rows))
	return nil
}

// AddImage appends a paragraph holding the picture at path, displayed at
// width x height pixels. It returns false and leaves the document unchanged
// when the file cannot be read.
func (b *Builder) AddImage(path string, width, height uint) bool {
	if err := b.AppendImageFile(path, width, height); err != nil {
		b.log().WithFields(Fields{"path": path, "error": err}).Error("failed to add image")
		return false
	}
	return true
}

// AppendImageFile is AddImage with the failure returned. Pictures above the
// compression threshold are re-encoded; when that fails the original bytes
// are embedded and no error is returned.
func (b *Builder) AppendImageFile(path string, width, height uint) error {
	b.log().Debug("add image: %s at %dx%d", path, width, height)

	raw, err := os.ReadFile(path)
	if err != nil {
		return NewDocumentError("read image", path, err)
	}

	res := b.ingestor.Ingest(raw, width, height)
	log := b.log().WithField("path", path)
	switch {
	case res.Err != nil:
		log.WithField("error", imageError(res.Err)).Warn("compression failed, embedding original %d bytes", res.OriginalSize)
	case res.Compressed:
		log.Debug("compressed image from %d to %d bytes", res.OriginalSize, len(res.Data))
	}

	b.append(model.NewParagraph(model.ImageRun(&model.Image{
		Data:        res.Data,
		Width:       width,
		Height:      height,
		ContentType: res.Format.ContentType,
	})))
	return nil
}

func imageError(err error) error {
	var se *imaging.StageError
	if errors.As(err, &se) {
		return &ImageError{Stage: se.Stage, Cause: se.Err}
	}
	return &ImageError{Stage: "compress", Cause: err}
}

// GenerateDocx writes the document to destination and starts a fresh one.
// It returns false when the package cannot be produced; the document is kept
// so the call can be retried.
func (b *Builder) GenerateDocx(destination string) bool {
	if err := b.Finalize(destination); err != nil {
		b.log().WithFields(Fields{"path": destination, "error": err}).Error("failed to generate document")
		return false
	}
	return true
}

// Finalize is GenerateDocx with the failure returned.
//
// The package is written to a temporary file next to destination and renamed
// into place only once it is complete, so a failure never leaves a partial
// file at destination.
func (b *Builder) Finalize(destination string) error {
	b.log().Debug("finalize: %d blocks to %s", b.doc.Len(), destination)

	tmp, err := createTemp(filepath.Dir(destination))
	if err != nil {
		return NewDocumentError("create", destination, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err := b.serializer.Serialize(b.doc, tmp); err != nil {
		cleanup()
		return packageError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return NewDocumentError("write", destination, err)
	}
	if err := os.Rename(tmpName, destination); err != nil {
		os.Remove(tmpName)
		return NewDocumentError("rename", destination, err)
	}

	b.log().Info("wrote %s", destination)
	b.doc = model.NewDocument()
	return nil
}

// createTemp opens a new file in dir with mode 0666 before umask, the same
// mode os.Create would give destination.
func createTemp(dir string) (*os.File, error) {
	for range 10000 {
		name := filepath.Join(dir, ".docxgen-"+strconv.FormatUint(uint64(rand.Uint32()), 10)+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: dir, Err: fs.ErrExist}
}

// WriteTo serializes the current document to w without consuming it.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := b.serializer.Serialize(b.doc, &buf); err != nil {
		return 0, packageError(err)
	}
	return buf.WriteTo(w)
}

func packageError(err error) error {
	var pe *packager.PartError
	if errors.As(err, &pe) {
		return &PackageError{Part: pe.Part, Cause: pe.Err}
	}
	return &PackageError{Cause: err}
}
