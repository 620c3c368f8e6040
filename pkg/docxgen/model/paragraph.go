package model

import "strings"

// Alignment is the horizontal justification of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlignment matches s case-insensitively against center, right and
// justify. Anything else, including the empty string, is left alignment.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(s) {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	case "justify":
		return AlignJustify
	default:
		return AlignLeft
	}
}

// List ids of the two predefined numbering definitions.
const (
	BulletList   = 1
	NumberedList = 2
)

// NumberingRef places a paragraph in a list.
type NumberingRef struct {
	ListID int
	Level  int
}

// Paragraph is a sequence of runs with optional alignment and numbering.
type Paragraph struct {
	Runs      []Run
	Alignment Alignment
	// HasAlignment is false when the paragraph carries no explicit alignment.
	HasAlignment bool
	Numbering    *NumberingRef
}

func (*Paragraph) isBlock() {}

// NewParagraph returns a paragraph holding the given runs.
func NewParagraph(runs ...Run) *Paragraph {
	return &Paragraph{Runs: runs}
}

// WithAlignment sets an explicit alignment and returns p.
func (p *Paragraph) WithAlignment(a Alignment) *Paragraph {
	p.Alignment = a
	p.HasAlignment = true
	return p
}

// WithNumbering places p in list listID at the given indent level and returns p.
func (p *Paragraph) WithNumbering(listID, level int) *Paragraph {
	p.Numbering = &NumberingRef{ListID: listID, Level: level}
	return p
}

// Text returns the concatenated text of all text runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph has no runs.
func (p *Paragraph) IsEmpty() bool {
	return len(p.Runs) == 0
}

func (p *Paragraph) images() []*Image {
	var images []*Image
	for i := range p.Runs {
		if p.Runs[i].Image != nil {
			images = append(images, p.Runs[i].Image)
		}
	}
	return images
}
