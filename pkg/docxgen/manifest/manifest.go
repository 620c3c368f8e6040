// Package manifest describes a document as a YAML list of blocks and replays
// it onto a builder.
//
//	output: report.docx
//	blocks:
//	  - type: text
//	    text: Hello
//	  - type: formatted
//	    text: Important
//	    bold: true
//	    size: 14
//	    color: C00000
//	  - type: paragraph
//	    text: Centered
//	    align: center
//	  - type: bullet
//	    text: first point
//	  - type: table
//	    rows: 2
//	    cols: 3
//	  - type: custom_table
//	    cells: [[a, b], [c, d]]
//	  - type: image
//	    path: chart.png
//	    width: 400
//	    height: 300
//
// Relative image paths are resolved against the manifest's directory.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Block types.
const (
	TypeText        = "text"
	TypeFormatted   = "formatted"
	TypeParagraph   = "paragraph"
	TypeBullet      = "bullet"
	TypeNumbered    = "numbered"
	TypeTable       = "table"
	TypeCustomTable = "custom_table"
	TypeImage       = "image"
)

// Manifest is a decoded document description.
type Manifest struct {
	// Output is the default destination, relative to BaseDir.
	Output string  `yaml:"output"`
	Blocks []Block `yaml:"blocks"`

	// BaseDir resolves relative paths. Set by Load.
	BaseDir string `yaml:"-"`
}

// Block is one step of a manifest. Which fields apply depends on Type.
type Block struct {
	Type      string     `yaml:"type"`
	Text      string     `yaml:"text,omitempty"`
	Bold      bool       `yaml:"bold,omitempty"`
	Italic    bool       `yaml:"italic,omitempty"`
	Underline bool       `yaml:"underline,omitempty"`
	Size      uint       `yaml:"size,omitempty"`
	Color     string     `yaml:"color,omitempty"`
	Align     string     `yaml:"align,omitempty"`
	Rows      uint       `yaml:"rows,omitempty"`
	Cols      uint       `yaml:"cols,omitempty"`
	Cells     [][]string `yaml:"cells,omitempty"`
	Path      string     `yaml:"path,omitempty"`
	Width     uint       `yaml:"width,omitempty"`
	Height    uint       `yaml:"height,omitempty"`
}

// Target is the builder surface a manifest is replayed onto.
type Target interface {
	AddText(text string) bool
	AddFormattedText(text string, bold, italic, underline bool, fontSize uint, color string) bool
	AddParagraphWithAlignment(text, alignment string) bool
	AddBulletItem(text string) bool
	AddNumberedItem(text string) bool
	AddTable(rows, cols uint) bool
	AddCustomTable(data string) bool
	AddImage(path string, width, height uint) bool
}

// ErrStepFailed is wrapped by StepError when the builder rejected a block.
var ErrStepFailed = errors.New("builder rejected block")

// StepError reports the first block that could not be applied.
type StepError struct {
	Index int
	Type  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("block %d (%s): %v", e.Index, e.Type, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.BaseDir = filepath.Dir(path)
	return m, nil
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty manifest")
		}
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every block has a known type and the fields it needs.
func (m *Manifest) Validate() error {
	for i, b := range m.Blocks {
		b.Type = strings.ToLower(b.Type)
		m.Blocks[i].Type = b.Type

		var err error
		switch b.Type {
		case TypeText, TypeFormatted, TypeParagraph, TypeBullet, TypeNumbered, TypeTable, TypeCustomTable:
		case TypeImage:
			if b.Path == "" {
				err = errors.New("image block needs a path")
			}
		case "":
			err = errors.New("missing type")
		default:
			err = fmt.Errorf("unknown type %q", b.Type)
		}
		if err != nil {
			return &StepError{Index: i, Type: b.Type, Err: err}
		}
	}
	return nil
}

// OutputPath returns Output resolved against BaseDir, or "" when unset.
func (m *Manifest) OutputPath() string {
	return m.resolve(m.Output)
}

func (m *Manifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || m.BaseDir == "" {
		return path
	}
	return filepath.Join(m.BaseDir, path)
}

// Apply replays every block onto t in order and stops at the first block t
// rejects. Blocks before it stay applied.
func Apply(t Target, m *Manifest) error {
	for i, b := range m.Blocks {
		ok, err := apply(t, m, b)
		if err == nil && !ok {
			err = ErrStepFailed
		}
		if err != nil {
			return &StepError{Index: i, Type: b.Type, Err: err}
		}
	}
	return nil
}

func apply(t Target, m *Manifest, b Block) (bool, error) {
	switch b.Type {
	case TypeText:
		return t.AddText(b.Text), nil
	case TypeFormatted:
		return t.AddFormattedText(b.Text, b.Bold, b.Italic, b.Underline, b.Size, b.Color), nil
	case TypeParagraph:
		return t.AddParagraphWithAlignment(b.Text, b.Align), nil
	case TypeBullet:
		return t.AddBulletItem(b.Text), nil
	case TypeNumbered:
		return t.AddNumberedItem(b.Text), nil
	case TypeTable:
		return t.AddTable(b.Rows, b.Cols), nil
	case TypeCustomTable:
		cells := b.Cells
		if cells == nil {
			cells = [][]string{}
		}
		data, err := json.Marshal(cells)
		if err != nil {
			return false, err
		}
		return t.AddCustomTable(string(data)), nil
	case TypeImage:
		return t.AddImage(m.resolve(b.Path), b.Width, b.Height), nil
	default:
		return false, fmt.Errorf("unknown type %q", b.Type)
	}
}
